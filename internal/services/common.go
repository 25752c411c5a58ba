package services

import "strings"

// likeContains builds a case-insensitive containment pattern for LIKE
// against a LOWER()ed column.
func likeContains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// likeRaw builds a containment pattern preserving case, used for fields
// where case has no meaning (phone numbers).
func likeRaw(s string) string {
	return "%" + s + "%"
}
