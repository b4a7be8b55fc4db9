package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferTokensRoundTrip(t *testing.T) {
	env := newTestEnv()
	alice := env.register("alice-pubkey", "alice")
	bob := env.register("bob-pubkey", "bob")
	alice.Tokens = 100
	bob.Tokens = 50

	require.NoError(t, env.tokenLogic.TransferTokens("alice-pubkey", "bob-pubkey", 30))
	assert.Equal(t, uint64(70), alice.Tokens)
	assert.Equal(t, uint64(80), bob.Tokens)

	// Transferring back restores both balances
	require.NoError(t, env.tokenLogic.TransferTokens("bob-pubkey", "alice-pubkey", 30))
	assert.Equal(t, uint64(100), alice.Tokens)
	assert.Equal(t, uint64(50), bob.Tokens)
}

func TestTransferTokensInsufficientBalance(t *testing.T) {
	env := newTestEnv()
	alice := env.register("alice-pubkey", "alice")
	bob := env.register("bob-pubkey", "bob")
	alice.Tokens = 10

	err := env.tokenLogic.TransferTokens("alice-pubkey", "bob-pubkey", 11)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, uint64(10), alice.Tokens)
	assert.Zero(t, bob.Tokens)
}

func TestTransferTokensRequiresRegistration(t *testing.T) {
	env := newTestEnv()
	alice := env.register("alice-pubkey", "alice")
	alice.Tokens = 10

	err := env.tokenLogic.TransferTokens("alice-pubkey", "ghost", 5)
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.Equal(t, uint64(10), alice.Tokens)

	err = env.tokenLogic.TransferTokens("ghost", "alice-pubkey", 5)
	assert.ErrorIs(t, err, ErrNotRegistered)
}
