package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeUsernameMovesPrograms(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, env.users.ChangeUsername(ctx, "alice", "alicia"))

	_, err = env.users.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)

	programs, err := env.programs.List(ctx, "alicia")
	require.NoError(t, err)
	require.Len(t, programs, 2)
	for _, p := range programs {
		assert.Equal(t, "alicia", p.Owner)
	}
}

func TestChangeUsernameConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	_, _, err = env.auth.Register(ctx, "bob", "secret2")
	require.NoError(t, err)

	assert.ErrorIs(t, env.users.ChangeUsername(ctx, "alice", "bob"), ErrUserAlreadyExists)
	assert.ErrorIs(t, env.users.ChangeUsername(ctx, "nobody", "carol"), ErrUserNotFound)
	assert.ErrorIs(t, env.users.ChangeUsername(ctx, "alice", "a/b"), ErrInvalidInput)
}

func TestChangePasswordRequiresReauthentication(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	err = env.users.ChangePassword(ctx, "alice", "wrong-current", "newsecret")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	require.NoError(t, env.users.ChangePassword(ctx, "alice", "secret1", "newsecret"))

	_, err = env.auth.Login(ctx, "alice", "secret1")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	_, err = env.auth.Login(ctx, "alice", "newsecret")
	assert.NoError(t, err)
}

func TestSetMetabolismFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, env.users.SetWeight(ctx, "alice", 70))
	require.NoError(t, env.users.SetHeight(ctx, "alice", 178))
	require.NoError(t, env.users.SetAge(ctx, "alice", 31))
	require.NoError(t, env.users.SetSex(ctx, "alice", "F"))

	user, err := env.users.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 70, user.Metabolism.Weight)
	assert.Equal(t, 178, user.Metabolism.Height)
	assert.Equal(t, 31, user.Metabolism.Age)
	assert.Equal(t, "F", user.Metabolism.Sex)

	assert.ErrorIs(t, env.users.SetWeight(ctx, "nobody", 70), ErrUserNotFound)
}

func TestDeleteAccountCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	_, _, err = env.auth.Register(ctx, "bob", "secret2")
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteAccount(ctx, "alice"))

	_, err = env.users.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = env.programs.List(ctx, "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Bob's programs survive Alice's deletion.
	programs, err := env.programs.List(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, programs, 2)

	assert.ErrorIs(t, env.users.DeleteAccount(ctx, "alice"), ErrUserNotFound)
}
