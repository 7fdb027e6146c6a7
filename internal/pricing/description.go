package pricing

import (
	"strings"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/pkg/apperror"
)

// Descriptions is the role-keyed description bag of a category. The shape is
// fixed rather than a map so resolution stays exhaustive: adding a role means
// the compiler points at every place that must handle it.
type Descriptions struct {
	Universal string `json:"universal,omitempty"`
	Admin     string `json:"admin,omitempty"`
	Manager   string `json:"manager,omitempty"`
	ProClient string `json:"pro_client,omitempty"`
	Client    string `json:"client,omitempty"`
}

// Description sources, in priority order.
const (
	DescriptionSourceUniversal = "universal"
	DescriptionSourceRole      = "role"
	DescriptionSourceNone      = "none"
)

// ResolvedDescription is the outcome of picking the description to show.
type ResolvedDescription struct {
	Content  string `json:"content"`
	Source   string `json:"source"`
	Role     string `json:"role,omitempty"`
	Priority int    `json:"priority"`
}

// ResolveDescription picks which description a role sees: a non-empty
// universal description always wins, then the role-mapped one, then nothing.
// Pure function; super_admin resolves like admin.
func ResolveDescription(d Descriptions, role enum.Role) ResolvedDescription {
	if s := strings.TrimSpace(d.Universal); s != "" {
		return ResolvedDescription{Content: s, Source: DescriptionSourceUniversal, Priority: 1}
	}
	if s := strings.TrimSpace(d.forRole(role)); s != "" {
		return ResolvedDescription{Content: s, Source: DescriptionSourceRole, Role: role.String(), Priority: 2}
	}
	return ResolvedDescription{Source: DescriptionSourceNone}
}

func (d Descriptions) forRole(role enum.Role) string {
	switch role {
	case enum.RoleSuperAdmin, enum.RoleAdmin:
		return d.Admin
	case enum.RoleManager:
		return d.Manager
	case enum.RoleProClient:
		return d.ProClient
	case enum.RoleClient:
		return d.Client
	}
	return ""
}

// RoleDescription pairs a description with the audience it targets.
type RoleDescription struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ListDescriptions returns every non-empty description with its role label,
// universal first, then in role seniority order.
func ListDescriptions(d Descriptions) []RoleDescription {
	ordered := []struct {
		role    string
		content string
	}{
		{"universal", d.Universal},
		{enum.RoleAdmin.String(), d.Admin},
		{enum.RoleManager.String(), d.Manager},
		{enum.RoleProClient.String(), d.ProClient},
		{enum.RoleClient.String(), d.Client},
	}

	var out []RoleDescription
	for _, entry := range ordered {
		if s := strings.TrimSpace(entry.content); s != "" {
			out = append(out, RoleDescription{Role: entry.role, Content: s})
		}
	}
	return out
}

// Validate bounds each description at the configured maximum length.
func (d Descriptions) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	check := func(field, value string) {
		if len(value) > maxDescriptionLen {
			errs = append(errs, apperror.FieldError{Field: "descriptions." + field, Message: "must be at most 500 characters"})
		}
	}
	check("universal", d.Universal)
	check("admin", d.Admin)
	check("manager", d.Manager)
	check("pro_client", d.ProClient)
	check("client", d.Client)
	return errs
}
