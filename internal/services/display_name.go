package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const FallbackDisplayName = "PlaceHub Member"

var upper = cases.Upper(language.Und)

// DeriveDisplayName resolves a human-friendly poster name. Precedence:
//  1. profile full name, trimmed, when non-empty
//  2. the email local part, split on runs of '.', '_' or '-', each segment
//     capitalized ("jane.doe@x.edu" -> "Jane Doe")
//  3. the literal fallback "PlaceHub Member"
func DeriveDisplayName(profileName, email string) string {
	if name := strings.TrimSpace(profileName); name != "" {
		return name
	}
	if email != "" {
		handle, _, _ := strings.Cut(email, "@")
		if handle != "" {
			segments := strings.FieldsFunc(handle, func(r rune) bool {
				return r == '.' || r == '_' || r == '-'
			})
			if len(segments) > 0 {
				parts := make([]string, 0, len(segments))
				for _, seg := range segments {
					parts = append(parts, capitalize(seg))
				}
				return strings.Join(parts, " ")
			}
		}
	}
	return FallbackDisplayName
}

// capitalize upcases the first rune only; the remainder keeps its case.
func capitalize(s string) string {
	r := []rune(s)
	return upper.String(string(r[0])) + string(r[1:])
}
