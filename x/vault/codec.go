package vault

import "github.com/gogo/protobuf/proto"

type accountCodec Account

func (m *accountCodec) Reset()         { *m = accountCodec{} }
func (m *accountCodec) String() string { return proto.CompactTextString(m) }
func (*accountCodec) ProtoMessage()    {}

func (a *Account) Marshal() ([]byte, error)  { return proto.Marshal((*accountCodec)(a)) }
func (a *Account) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*accountCodec)(a)) }

type depositMsgCodec DepositMsg

func (m *depositMsgCodec) Reset()         { *m = depositMsgCodec{} }
func (m *depositMsgCodec) String() string { return proto.CompactTextString(m) }
func (*depositMsgCodec) ProtoMessage()    {}

func (m *DepositMsg) Marshal() ([]byte, error)  { return proto.Marshal((*depositMsgCodec)(m)) }
func (m *DepositMsg) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*depositMsgCodec)(m)) }
