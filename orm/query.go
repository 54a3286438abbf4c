package orm

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr quorum.Iterator) ([]quorum.Model, error) {
	defer itr.Close()

	var res []quorum.Model
	for itr.Valid() {
		res = append(res, quorum.Pair(itr.Key(), itr.Value()))
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func queryPrefix(db quorum.ReadOnlyKVStore, prefix []byte) ([]quorum.Model, error) {
	itr, err := db.Iterator(prefix, quorum.PrefixEnd(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// RegisterQuery will register a root query (literal keys)
// under "/"
func RegisterQuery(qr quorum.QueryRouter) {
	qr.Register("/", rawQuery{})
}

// rawQuery looks up literal keys, without any bucket prefix.
type rawQuery struct{}

var _ quorum.QueryHandler = rawQuery{}

func (rawQuery) Query(db quorum.ReadOnlyKVStore, mod string, data []byte) ([]quorum.Model, error) {
	switch mod {
	case quorum.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []quorum.Model{quorum.Pair(data, value)}, nil
	case quorum.PrefixQueryMod:
		return queryPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown mod: %s", mod)
	}
}
