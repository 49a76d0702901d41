// Package plugin carries the naming rules and handles that plugin
// generation and the feature generators share.
package plugin

import (
	"regexp"
	"strings"

	"github.com/trelliskit/cli/internal/casing"
)

// nameRE accepts lowercase kebab names such as "reviews" or "product-feed".
var nameRE = regexp.MustCompile(`^[a-z][a-z-0-9]+$`)

// suffixRE strips one trailing plugin suffix, with or without a separator.
var suffixRE = regexp.MustCompile(`(?i)-?plugin$`)

// ValidName reports whether a raw plugin name is acceptable input.
func ValidName(name string) bool {
	return nameRE.MatchString(name)
}

// Normalize maps a name to its canonical kebab form carrying exactly one
// -plugin suffix. The transform is idempotent: normalizing an already
// normalized name returns it unchanged.
func Normalize(name string) string {
	base := baseName(name)
	if base == "" {
		return ""
	}
	return base + "-plugin"
}

func baseName(name string) string {
	kebab := casing.Kebab(name)
	return strings.TrimSuffix(suffixRE.ReplaceAllString(kebab, ""), "-")
}

// NameContext holds every derived spelling of one plugin name. Derive it
// once and pass it around; the fields never change afterwards.
type NameContext struct {
	// Raw is the name as the user typed it.
	Raw string
	// Kebab is the normalized kebab name, e.g. "reviews-plugin".
	Kebab string
	// Base is the kebab name without the plugin suffix, e.g. "reviews".
	// Directory and file names derive from it.
	Base string
	// Pascal names the generated plugin type, e.g. "ReviewsPlugin".
	Pascal string
	// OptionsConst names the injection token var, e.g.
	// "REVIEWS_PLUGIN_OPTIONS".
	OptionsConst string
	// Package is the Go package name for the generated files, the base
	// with separators removed, e.g. "productfeed" for "product-feed".
	Package string
	// FileBase is the base with separators flattened to underscores, used
	// for the plugin source file name, e.g. "product_feed".
	FileBase string
}

// NewNameContext derives all spellings from a raw name. Callers validate
// the raw name first; an unusable name yields a zero context.
func NewNameContext(raw string) NameContext {
	normalized := Normalize(raw)
	if normalized == "" {
		return NameContext{}
	}
	base := strings.TrimSuffix(normalized, "-plugin")
	return NameContext{
		Raw:          raw,
		Kebab:        normalized,
		Base:         base,
		Pascal:       casing.Pascal(normalized),
		OptionsConst: casing.Constant(normalized) + "_OPTIONS",
		Package:      strings.ReplaceAll(base, "-", ""),
		FileBase:     strings.ReplaceAll(base, "-", "_"),
	}
}
