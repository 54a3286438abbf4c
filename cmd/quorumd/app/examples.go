package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/commands"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/x/proposals"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/iov-one/quorum/x/validators"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	user := &sigs.UserData{
		Pubkey:   pub,
		Sequence: 17,
	}

	other := crypto.GenPrivKeyEd25519().PublicKey().Address()
	electorate := &validators.Electorate{
		Members: []quorum.Address{pub.Address(), other},
		Quorum:  2,
	}

	instruction, err := validators.NewInstruction(&validators.RemoveValidatorMsg{Validator: other})
	if err != nil {
		panic(err)
	}
	payload, err := instruction.Marshal()
	if err != nil {
		panic(err)
	}

	engine := proposals.EngineCondition.Address()
	proposeMsg := &proposals.ProposeMsg{
		Target:  engine,
		Payload: payload,
	}
	id := proposals.Keccak256ID(pub.Address(), engine, payload)
	proposal := &proposals.Proposal{
		Proposer:  pub.Address(),
		Target:    engine,
		Payload:   payload,
		Approvers: []quorum.Address{pub.Address()},
	}

	unsigned := Tx{ProposeMsg: proposeMsg}
	tx := unsigned
	sig, err := sigs.SignTx(priv, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "priv_key", Obj: priv},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "electorate", Obj: electorate},
		{Filename: "instruction", Obj: instruction},
		{Filename: "proposal", Obj: proposal},
		{Filename: "propose_msg", Obj: proposeMsg},
		{Filename: "approve_msg", Obj: &proposals.ApproveMsg{ProposalID: id}},
		{Filename: "execute_msg", Obj: &proposals.ExecuteMsg{ProposalID: id}},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
