package campaignmgmt

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/tapp-eng/campaign-core/repository"
)

// Slugify lowercases the name and collapses every non alphanumeric run into
// a single dash.
func Slugify(name string) string {
	var builder strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			builder.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(builder.String(), "-")
}

// uniqueSlug appends -1, -2, ... until the slug is free.
func uniqueSlug(ctx context.Context, campaigns repository.Campaign, base string) (string, error) {
	if base == "" {
		base = "campaign"
	}
	slug := base
	for count := 1; ; count++ {
		exists, err := campaigns.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, count)
	}
}
