package proposals

import "github.com/gogo/protobuf/proto"

type proposalCodec Proposal

func (m *proposalCodec) Reset()         { *m = proposalCodec{} }
func (m *proposalCodec) String() string { return proto.CompactTextString(m) }
func (*proposalCodec) ProtoMessage()    {}

// Marshal encodes the proposal using the protobuf wire format.
func (p *Proposal) Marshal() ([]byte, error) { return proto.Marshal((*proposalCodec)(p)) }

// Unmarshal decodes a protobuf encoded proposal.
func (p *Proposal) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*proposalCodec)(p)) }

type configurationCodec Configuration

func (m *configurationCodec) Reset()         { *m = configurationCodec{} }
func (m *configurationCodec) String() string { return proto.CompactTextString(m) }
func (*configurationCodec) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationCodec)(c)) }
func (c *Configuration) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*configurationCodec)(c))
}

type proposeMsgCodec ProposeMsg

func (m *proposeMsgCodec) Reset()         { *m = proposeMsgCodec{} }
func (m *proposeMsgCodec) String() string { return proto.CompactTextString(m) }
func (*proposeMsgCodec) ProtoMessage()    {}

func (m *ProposeMsg) Marshal() ([]byte, error)  { return proto.Marshal((*proposeMsgCodec)(m)) }
func (m *ProposeMsg) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*proposeMsgCodec)(m)) }

type approveMsgCodec ApproveMsg

func (m *approveMsgCodec) Reset()         { *m = approveMsgCodec{} }
func (m *approveMsgCodec) String() string { return proto.CompactTextString(m) }
func (*approveMsgCodec) ProtoMessage()    {}

func (m *ApproveMsg) Marshal() ([]byte, error)  { return proto.Marshal((*approveMsgCodec)(m)) }
func (m *ApproveMsg) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*approveMsgCodec)(m)) }

type revokeMsgCodec RevokeMsg

func (m *revokeMsgCodec) Reset()         { *m = revokeMsgCodec{} }
func (m *revokeMsgCodec) String() string { return proto.CompactTextString(m) }
func (*revokeMsgCodec) ProtoMessage()    {}

func (m *RevokeMsg) Marshal() ([]byte, error)  { return proto.Marshal((*revokeMsgCodec)(m)) }
func (m *RevokeMsg) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*revokeMsgCodec)(m)) }

type executeMsgCodec ExecuteMsg

func (m *executeMsgCodec) Reset()         { *m = executeMsgCodec{} }
func (m *executeMsgCodec) String() string { return proto.CompactTextString(m) }
func (*executeMsgCodec) ProtoMessage()    {}

func (m *ExecuteMsg) Marshal() ([]byte, error)  { return proto.Marshal((*executeMsgCodec)(m)) }
func (m *ExecuteMsg) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*executeMsgCodec)(m)) }
