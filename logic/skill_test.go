package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramcharan1706/SkillSwap/config"
)

func TestListSkillAssignsMonotonicIDs(t *testing.T) {
	env := newTestEnv()
	env.register("alice-pubkey", "alice")

	id1, err := env.skillLogic.ListSkill("alice-pubkey", "", "Guitar", "acoustic basics", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id1)

	// A failing call from an unregistered teacher does not disturb the counter
	_, err = env.skillLogic.ListSkill("ghost", "", "Piano", "", 20)
	assert.ErrorIs(t, err, ErrNotRegistered)

	id2, err := env.skillLogic.ListSkill("alice-pubkey", "", "Singing", "", 15)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id2)

	id3, err := env.skillLogic.ListSkill("alice-pubkey", "", "Drums", "", 25)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), id3)
}

func TestListSkillStoresListing(t *testing.T) {
	env := newTestEnv()
	env.register("alice-pubkey", "alice")

	id, err := env.skillLogic.ListSkill("alice-pubkey", "payments-pubkey", "Guitar", "acoustic basics", 10)
	require.NoError(t, err)

	skill, err := env.skillLogic.GetSkill(id)
	require.NoError(t, err)
	assert.Equal(t, "alice-pubkey", skill.Teacher)
	assert.Equal(t, "payments-pubkey", skill.Receiver)
	assert.Equal(t, "Guitar", skill.Name)
	assert.Equal(t, uint64(10), skill.HourlyRate)
	assert.True(t, skill.Available)
}

func TestGetSkillNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.skillLogic.GetSkill(99)
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestSetAvailability(t *testing.T) {
	env := newTestEnv()
	env.register("alice-pubkey", "alice")
	env.register("bob-pubkey", "bob")

	id, err := env.skillLogic.ListSkill("alice-pubkey", "", "Guitar", "", 10)
	require.NoError(t, err)

	err = env.skillLogic.SetAvailability("bob-pubkey", id, false)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, env.skillLogic.SetAvailability("alice-pubkey", id, false))

	skill, err := env.skillLogic.GetSkill(id)
	require.NoError(t, err)
	assert.False(t, skill.Available)
}

func TestSetSkillTokenAdminOnly(t *testing.T) {
	config.GlobalConfig.Admin.Pubkey = "admin-pubkey"
	env := newTestEnv()

	err := env.skillLogic.SetSkillToken("alice-pubkey", 7)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, env.skillLogic.SetSkillToken("admin-pubkey", 7))

	tokenID, err := env.state.GetSkillTokenID()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), tokenID)
}
