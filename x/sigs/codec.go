package sigs

import "github.com/gogo/protobuf/proto"

type userDataCodec UserData

func (m *userDataCodec) Reset()         { *m = userDataCodec{} }
func (m *userDataCodec) String() string { return proto.CompactTextString(m) }
func (*userDataCodec) ProtoMessage()    {}

// Marshal encodes the user using the protobuf wire format.
func (u *UserData) Marshal() ([]byte, error) { return proto.Marshal((*userDataCodec)(u)) }

// Unmarshal decodes a protobuf encoded user.
func (u *UserData) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*userDataCodec)(u)) }

type stdSignatureCodec StdSignature

func (m *stdSignatureCodec) Reset()         { *m = stdSignatureCodec{} }
func (m *stdSignatureCodec) String() string { return proto.CompactTextString(m) }
func (*stdSignatureCodec) ProtoMessage()    {}

func (s *StdSignature) Marshal() ([]byte, error) { return proto.Marshal((*stdSignatureCodec)(s)) }
func (s *StdSignature) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*stdSignatureCodec)(s))
}
