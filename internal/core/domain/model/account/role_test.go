package account_test

import (
	"fmt"
	"testing"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(account.Unknown))
		assert.Equal(t, 1, int(account.Customer))
		assert.Equal(t, 2, int(account.Staff))
		assert.Equal(t, 3, int(account.Rider))
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate valid roles", func(t *testing.T) {
		validRoles := []account.Role{
			account.Customer,
			account.Staff,
			account.Rider,
		}

		for _, role := range validRoles {
			t.Run(fmt.Sprintf("should validate %s role", role.String()), func(t *testing.T) {
				require.NoError(t, role.Validate())
			})
		}
	})

	t.Run("should reject Unknown role", func(t *testing.T) {
		err := account.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range role", func(t *testing.T) {
		err := account.Role(42).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_String(t *testing.T) {
	testCases := []struct {
		role     account.Role
		expected string
	}{
		{account.Unknown, "unknown"},
		{account.Customer, "customer"},
		{account.Staff, "staff"},
		{account.Rider, "rider"},
		{account.Role(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("role %d is %q", int(tc.role), tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.role.String())
		})
	}
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid role names", func(t *testing.T) {
		testCases := map[string]account.Role{
			"customer": account.Customer,
			"staff":    account.Staff,
			"rider":    account.Rider,
		}

		for input, expected := range testCases {
			role, err := account.RoleFromString(input)

			require.NoError(t, err)
			assert.Equal(t, expected, role)
		}
	})

	t.Run("should reject invalid role names", func(t *testing.T) {
		for _, input := range []string{"", "admin", "CUSTOMER", "Rider", "unknown"} {
			role, err := account.RoleFromString(input)

			require.Error(t, err, "expected error for input: %q", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, account.Unknown, role)
		}
	})
}
