package validators

import "github.com/gogo/protobuf/proto"

type electorateCodec Electorate

func (m *electorateCodec) Reset()         { *m = electorateCodec{} }
func (m *electorateCodec) String() string { return proto.CompactTextString(m) }
func (*electorateCodec) ProtoMessage()    {}

// Marshal encodes the electorate using the protobuf wire format.
func (e *Electorate) Marshal() ([]byte, error) { return proto.Marshal((*electorateCodec)(e)) }

// Unmarshal decodes a protobuf encoded electorate.
func (e *Electorate) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*electorateCodec)(e)) }

type changeQuorumMsgCodec ChangeQuorumMsg

func (m *changeQuorumMsgCodec) Reset()         { *m = changeQuorumMsgCodec{} }
func (m *changeQuorumMsgCodec) String() string { return proto.CompactTextString(m) }
func (*changeQuorumMsgCodec) ProtoMessage()    {}

func (m *ChangeQuorumMsg) Marshal() ([]byte, error) { return proto.Marshal((*changeQuorumMsgCodec)(m)) }
func (m *ChangeQuorumMsg) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*changeQuorumMsgCodec)(m))
}

type addValidatorMsgCodec AddValidatorMsg

func (m *addValidatorMsgCodec) Reset()         { *m = addValidatorMsgCodec{} }
func (m *addValidatorMsgCodec) String() string { return proto.CompactTextString(m) }
func (*addValidatorMsgCodec) ProtoMessage()    {}

func (m *AddValidatorMsg) Marshal() ([]byte, error) { return proto.Marshal((*addValidatorMsgCodec)(m)) }
func (m *AddValidatorMsg) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*addValidatorMsgCodec)(m))
}

type removeValidatorMsgCodec RemoveValidatorMsg

func (m *removeValidatorMsgCodec) Reset()         { *m = removeValidatorMsgCodec{} }
func (m *removeValidatorMsgCodec) String() string { return proto.CompactTextString(m) }
func (*removeValidatorMsgCodec) ProtoMessage()    {}

func (m *RemoveValidatorMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*removeValidatorMsgCodec)(m))
}
func (m *RemoveValidatorMsg) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*removeValidatorMsgCodec)(m))
}

type governanceInstructionCodec GovernanceInstruction

func (m *governanceInstructionCodec) Reset()         { *m = governanceInstructionCodec{} }
func (m *governanceInstructionCodec) String() string { return proto.CompactTextString(m) }
func (*governanceInstructionCodec) ProtoMessage()    {}

// Marshal encodes the instruction using the protobuf wire format.
func (m *GovernanceInstruction) Marshal() ([]byte, error) {
	return proto.Marshal((*governanceInstructionCodec)(m))
}

// Unmarshal decodes a protobuf encoded instruction.
func (m *GovernanceInstruction) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*governanceInstructionCodec)(m))
}
