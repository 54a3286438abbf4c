package store

import (
	"bytes"

	"github.com/iov-one/quorum/errors"
)

// source marks where the current item comes from
type source int32

const (
	none source = iota
	us
	parent
	both
)

// cacheIterator merges a snapshot of the cached items with the iterator of
// the backing store. Cached items shadow parent entries with the same key and
// deleted items hide them.
type cacheIterator struct {
	items   []keyer
	pos     int
	parent  Iterator
	reverse bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []keyer, parent Iterator, reverse bool) (*cacheIterator, error) {
	it := &cacheIterator{
		items:   items,
		parent:  parent,
		reverse: reverse,
	}
	if err := it.skipDeleted(); err != nil {
		it.Close()
		return nil, err
	}
	return it, nil
}

// Valid implements Iterator and returns true iff it can be read
func (i *cacheIterator) Valid() bool {
	return i.current() != none
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
//
// If Valid returns false, this method will panic.
func (i *cacheIterator) Next() error {
	switch i.current() {
	case us:
		i.pos++
	case both:
		i.pos++
		if err := i.parent.Next(); err != nil {
			return err
		}
	case parent:
		if err := i.parent.Next(); err != nil {
			return err
		}
	default:
		panic("advanced past the end")
	}
	return i.skipDeleted()
}

// Key returns the key of the cursor.
func (i *cacheIterator) Key() []byte {
	switch i.current() {
	case us, both:
		return i.items[i.pos].Key()
	case parent:
		return i.parent.Key()
	default:
		panic("advanced past the end")
	}
}

// Value returns the value of the cursor.
func (i *cacheIterator) Value() []byte {
	switch i.current() {
	case us, both:
		return i.items[i.pos].(setItem).value
	case parent:
		return i.parent.Value()
	default:
		panic("advanced past the end")
	}
}

// Close releases the Iterator.
func (i *cacheIterator) Close() {
	i.items = nil
	i.parent.Close()
}

// skipDeleted moves over all deleted entries of the cache, together with
// the parent entries they hide.
func (i *cacheIterator) skipDeleted() error {
	for {
		src := i.current()
		if src != us && src != both {
			return nil
		}
		if _, ok := i.items[i.pos].(deletedItem); !ok {
			return nil
		}
		i.pos++
		if src == both {
			if err := i.parent.Next(); err != nil {
				return errors.Wrap(err, "parent iterator")
			}
		}
	}
}

// current selects the iterator that holds the next key in the iteration
// order, if any.
func (i *cacheIterator) current() source {
	usValid := i.pos < len(i.items)
	parentValid := i.parent != nil && i.parent.Valid()

	switch {
	case !usValid && !parentValid:
		return none
	case !parentValid:
		return us
	case !usValid:
		return parent
	}

	cmp := bytes.Compare(i.parent.Key(), i.items[i.pos].Key())
	if i.reverse {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}
