package pricing

import (
	"testing"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestResolveDescription_UniversalWins(t *testing.T) {
	d := Descriptions{
		Universal: "Hallmarked 22 karat",
		Client:    "Premium gold jewelry",
	}

	resolved := ResolveDescription(d, enum.RoleClient)
	assert.Equal(t, "Hallmarked 22 karat", resolved.Content)
	assert.Equal(t, DescriptionSourceUniversal, resolved.Source)
	assert.Empty(t, resolved.Role)
	assert.Equal(t, 1, resolved.Priority)
}

func TestResolveDescription_FallsBackToRole(t *testing.T) {
	d := Descriptions{
		Admin:     "Wholesale margin 5%",
		Manager:   "Check the stamp before quoting",
		ProClient: "Bulk rates available",
		Client:    "Premium gold jewelry",
	}

	cases := []struct {
		role enum.Role
		want string
	}{
		{enum.RoleAdmin, "Wholesale margin 5%"},
		{enum.RoleManager, "Check the stamp before quoting"},
		{enum.RoleProClient, "Bulk rates available"},
		{enum.RoleClient, "Premium gold jewelry"},
	}
	for _, tc := range cases {
		resolved := ResolveDescription(d, tc.role)
		assert.Equal(t, tc.want, resolved.Content, "role %s", tc.role)
		assert.Equal(t, DescriptionSourceRole, resolved.Source)
		assert.Equal(t, tc.role.String(), resolved.Role)
		assert.Equal(t, 2, resolved.Priority)
	}
}

func TestResolveDescription_SuperAdminSeesAdminDescription(t *testing.T) {
	d := Descriptions{Admin: "Wholesale margin 5%"}

	resolved := ResolveDescription(d, enum.RoleSuperAdmin)
	assert.Equal(t, "Wholesale margin 5%", resolved.Content)
	assert.Equal(t, DescriptionSourceRole, resolved.Source)
}

func TestResolveDescription_WhitespaceOnlyIsEmpty(t *testing.T) {
	d := Descriptions{
		Universal: "   ",
		Client:    "  trimmed  ",
	}

	resolved := ResolveDescription(d, enum.RoleClient)
	assert.Equal(t, "trimmed", resolved.Content)
	assert.Equal(t, DescriptionSourceRole, resolved.Source)
}

func TestResolveDescription_NothingConfigured(t *testing.T) {
	resolved := ResolveDescription(Descriptions{}, enum.RoleManager)
	assert.Empty(t, resolved.Content)
	assert.Equal(t, DescriptionSourceNone, resolved.Source)
	assert.Equal(t, 0, resolved.Priority)
}

func TestListDescriptions_OrderAndFiltering(t *testing.T) {
	d := Descriptions{
		Universal: "For everyone",
		Manager:   "For managers",
		Client:    "For clients",
	}

	list := ListDescriptions(d)
	assert.Equal(t, []RoleDescription{
		{Role: "universal", Content: "For everyone"},
		{Role: "manager", Content: "For managers"},
		{Role: "client", Content: "For clients"},
	}, list)
}

func TestListDescriptions_Empty(t *testing.T) {
	assert.Empty(t, ListDescriptions(Descriptions{}))
}
