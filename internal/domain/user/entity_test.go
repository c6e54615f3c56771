//go:build unit

package user_test

import (
	"testing"
	"time"

	"servemart/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := user.NewUser("alice", "alice@example.com", "hash", user.RoleClient, "tutor-to-be", now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "alice", actual.Username())
		assert.Equal(t, user.RoleClient, actual.Role())
		assert.False(t, actual.IsProvider())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name     string
			username string
			email    string
			role     user.Role
			errIs    error
		}{
			{name: "empty username", username: "", email: "a@example.com", role: user.RoleClient, errIs: user.ErrEmptyUsername},
			{name: "whitespace username", username: "   ", email: "a@example.com", role: user.RoleClient, errIs: user.ErrEmptyUsername},
			{name: "bad email", username: "alice", email: "not-an-email", role: user.RoleClient, errIs: user.ErrInvalidEmail},
			{name: "unknown role", username: "alice", email: "a@example.com", role: user.Role("admin"), errIs: user.ErrInvalidUserRole},
			{name: "provider is valid", username: "bob", email: "b@example.com", role: user.RoleProvider},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := user.NewUser(tc.username, tc.email, "hash", tc.role, "", now)

				if tc.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, tc.errIs)
				}
			})
		}
	})

	t.Run("username is trimmed", func(t *testing.T) {
		actual, err := user.NewUser("  alice  ", "alice@example.com", "hash", user.RoleClient, "", now)
		require.NoError(t, err)
		assert.Equal(t, "alice", actual.Username())
	})
}

func TestParseRole(t *testing.T) {
	testCases := []struct {
		in      string
		want    user.Role
		wantErr bool
	}{
		{in: "client", want: user.RoleClient},
		{in: "provider", want: user.RoleProvider},
		{in: "admin", wantErr: true},
		{in: "", wantErr: true},
		{in: "Client", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := user.ParseRole(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
