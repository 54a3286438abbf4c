package app

import "github.com/gogo/protobuf/proto"

type txCodec Tx

func (m *txCodec) Reset()         { *m = txCodec{} }
func (m *txCodec) String() string { return proto.CompactTextString(m) }
func (*txCodec) ProtoMessage()    {}

// Marshal encodes the transaction using the protobuf wire format.
func (tx *Tx) Marshal() ([]byte, error) { return proto.Marshal((*txCodec)(tx)) }

// Unmarshal decodes a protobuf encoded transaction.
func (tx *Tx) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*txCodec)(tx)) }
