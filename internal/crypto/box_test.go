package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"urchat/internal/crypto"
	"urchat/internal/domain"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	alice, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	bob, err := crypto.GenerateKeypair()
	require.NoError(t, err)

	sealed, err := crypto.Seal(alice.Private, bob.Public, "hello")
	require.NoError(t, err)

	got, err := crypto.Open(bob.Private, alice.Public, sealed)
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestOpen_WrongKeyPairing(t *testing.T) {
	alice, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	bob, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	eve, err := crypto.GenerateKeypair()
	require.NoError(t, err)

	sealed, err := crypto.Seal(alice.Private, bob.Public, "for bob only")
	require.NoError(t, err)

	_, err = crypto.Open(eve.Private, alice.Public, sealed)
	require.ErrorIs(t, err, domain.ErrAuthentication)

	_, err = crypto.Open(bob.Private, eve.Public, sealed)
	require.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestOpen_Tampered(t *testing.T) {
	alice, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	bob, err := crypto.GenerateKeypair()
	require.NoError(t, err)

	sealed, err := crypto.Seal(alice.Private, bob.Public, "payload")
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0x01
	_, err = crypto.Open(bob.Private, alice.Public, sealed)
	require.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestOpen_TooShort(t *testing.T) {
	alice, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	bob, err := crypto.GenerateKeypair()
	require.NoError(t, err)

	_, err = crypto.Open(bob.Private, alice.Public, []byte("short"))
	require.ErrorIs(t, err, domain.ErrFormat)
}

func TestOpen_InvalidUTF8(t *testing.T) {
	alice, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	bob, err := crypto.GenerateKeypair()
	require.NoError(t, err)

	// A Go string can carry arbitrary bytes; the plaintext contract is
	// UTF-8, so Open must reject this after authentication succeeds.
	sealed, err := crypto.Seal(alice.Private, bob.Public, string([]byte{0xff, 0xfe, 0xfd}))
	require.NoError(t, err)

	_, err = crypto.Open(bob.Private, alice.Public, sealed)
	require.ErrorIs(t, err, domain.ErrDecode)
}

func TestGenerateKeypair_Distinct(t *testing.T) {
	a, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	b, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	require.NotEqual(t, a.Public, b.Public)
	require.NotEqual(t, a.Private, b.Private)
}
