// Package casing converts identifiers between kebab-case, PascalCase,
// and CONSTANT_CASE.
package casing

import (
	"strings"
	"unicode"
)

// Kebab converts a string to lower-kebab-case.
// "ProductReview" and "product review" both become "product-review".
func Kebab(s string) string {
	return strings.Join(lower(words(s)), "-")
}

// Pascal converts a string to PascalCase.
// "product-review" becomes "ProductReview".
func Pascal(s string) string {
	parts := words(s)
	var b strings.Builder
	for _, w := range parts {
		r := []rune(strings.ToLower(w))
		if len(r) == 0 {
			continue
		}
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// Constant converts a string to CONSTANT_CASE.
// "product-review" becomes "PRODUCT_REVIEW".
func Constant(s string) string {
	parts := words(s)
	for i, w := range parts {
		parts[i] = strings.ToUpper(w)
	}
	return strings.Join(parts, "_")
}

// words splits a string into its word segments. Boundaries are runs of
// non-alphanumeric characters, transitions from a lowercase letter or digit
// to an uppercase letter, and the last uppercase letter of an uppercase run
// followed by a lowercase letter ("HTTPServer" splits as "HTTP", "Server").
func words(s string) []string {
	var out []string
	runes := []rune(s)
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = nil
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			lowerOrDigit := unicode.IsLower(prev) || unicode.IsDigit(prev)
			if lowerOrDigit && unicode.IsUpper(r) {
				flush()
			} else if unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
		}

		cur = append(cur, r)
	}
	flush()

	return out
}

func lower(parts []string) []string {
	for i, w := range parts {
		parts[i] = strings.ToLower(w)
	}
	return parts
}
