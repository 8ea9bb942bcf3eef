package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleListener.Valid())
	assert.True(t, RoleArtist.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}

func TestRoleCanPublish(t *testing.T) {
	assert.False(t, RoleListener.CanPublish())
	assert.True(t, RoleArtist.CanPublish())
	assert.True(t, RoleAdmin.CanPublish())
}

func TestUserJSON_HidesPasswordHash(t *testing.T) {
	data, err := json.Marshal(&User{ID: 1, Nickname: "ana", PasswordHash: "bcrypt-hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "bcrypt-hash")
}
