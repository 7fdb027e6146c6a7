package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sri Lakshmi Jewellers", "sri-lakshmi-jewellers"},
		{"  Gold & Sons  ", "gold-sons"},
		{"UPPER", "upper"},
		{"already-a-slug", "already-a-slug"},
		{"many    spaces", "many-spaces"},
		{"trailing-", "trailing"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeCategoryCode(t *testing.T) {
	assert.Equal(t, "916HM", NormalizeCategoryCode("916hm"))
	assert.Equal(t, "916HM", NormalizeCategoryCode("  916Hm  "))
	assert.Equal(t, "", NormalizeCategoryCode("   "))
}

func TestGenerateShopSlug(t *testing.T) {
	assert.Equal(t, "sri-lakshmi-jewellers", GenerateShopSlug("Sri Lakshmi Jewellers"))

	// A name with no usable characters still yields a non-empty slug
	slug := GenerateShopSlug("###")
	assert.True(t, strings.HasPrefix(slug, "shop-"))
	assert.Len(t, slug, len("shop-")+8)
}
