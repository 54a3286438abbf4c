package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519Signing(t *testing.T) {
	private := GenPrivKeyEd25519()
	public := private.PublicKey()

	msg := []byte("foobar")
	msg2 := []byte("dingbooms")

	sig, err := private.Sign(msg)
	require.NoError(t, err)
	sig2, err := private.Sign(msg2)
	require.NoError(t, err)

	bz, err := sig.Marshal()
	require.NoError(t, err)
	bz2, err := sig2.Marshal()
	require.NoError(t, err)

	if bytes.Equal(bz, bz2) {
		t.Fatal("marshaling different signatures produce the same binary representation")
	}

	assert.True(t, public.Verify(msg, sig))
	assert.True(t, public.Verify(msg2, sig2))
	assert.False(t, public.Verify(msg, sig2), "verified message signature of the wrong message")
	assert.False(t, public.Verify(msg2, sig), "verified message signature of the wrong message")
	assert.False(t, public.Verify(msg, &Signature{}), "verified an empty signature")
	assert.False(t, public.Verify(msg, nil), "verified a nil signature")
}

func TestEd25519Condition(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	pub2 := GenPrivKeyEd25519().PublicKey()
	empty := PublicKey{}

	assert.NoError(t, pub.Condition().Validate())
	assert.NoError(t, pub2.Condition().Validate())
	assert.False(t, pub.Condition().Equals(pub2.Condition()))
	assert.NoError(t, pub.Address().Validate())
	assert.Nil(t, empty.Condition())
	assert.Error(t, empty.Validate())
}

func TestEd25519PrivateKeySign(t *testing.T) {
	pk := &PrivateKey{Ed25519: make([]byte, 64)}
	sig, err := pk.Sign([]byte("foo bar"))
	require.NoError(t, err)

	want := []byte("\273\363\352\214\365\004\271\371|}\272G\316\316K\005\337Bm\340\322\007W\224-9\272\371\226\375DB\325\325\373#e\321^\030\367]\370\334\372\017\223`\036\236Ue\211\244\220\002\004\026K\227\306i\002\017")
	assert.Equal(t, want, sig.Ed25519)

	_, err = (&PrivateKey{}).Sign([]byte("foo"))
	assert.Error(t, err)
}

func TestKeySerialization(t *testing.T) {
	priv := PrivKeyEd25519FromSeed(bytes.Repeat([]byte{7}, 32))
	pub := priv.PublicKey()

	raw, err := pub.Marshal()
	require.NoError(t, err)
	var back PublicKey
	require.NoError(t, back.Unmarshal(raw))
	assert.Equal(t, pub.Ed25519, back.Ed25519)

	raw, err = priv.Marshal()
	require.NoError(t, err)
	var privBack PrivateKey
	require.NoError(t, privBack.Unmarshal(raw))
	assert.Equal(t, priv.Ed25519, privBack.Ed25519)

	// seed based keys are deterministic
	assert.Equal(t, pub.Ed25519, PrivKeyEd25519FromSeed(bytes.Repeat([]byte{7}, 32)).PublicKey().Ed25519)
}
