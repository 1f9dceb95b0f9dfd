//go:build unit

package user_test

import (
	"testing"

	"weekly-menu/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  user.Role
		errIs error
	}{
		{name: "user role", input: "user", want: user.RoleUser},
		{name: "admin role", input: "admin", want: user.RoleAdmin},
		{name: "unknown role", input: "moderator", errIs: user.ErrInvalidRole},
		{name: "empty role", input: "", errIs: user.ErrInvalidRole},
		{name: "case sensitive", input: "Admin", errIs: user.ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := user.NewRole(tc.input)

			if tc.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.want, actual)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}
