package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

var (
	nonSlugChars = regexp.MustCompile("[^a-z0-9-]")
	multiHyphen  = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeCategoryCode canonicalizes a stamp code for uniqueness checks.
// Codes are compared case-insensitively within a shop.
func NormalizeCategoryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GenerateShopSlug derives a subdomain slug from a shop name, falling back
// to a random suffix when the name slugifies to nothing.
func GenerateShopSlug(name string) string {
	slug := Slugify(name)
	if slug == "" {
		slug = "shop-" + strings.ToLower(uuid.New().String()[:8])
	}
	return slug
}
