package entity

import "strings"

// NormalizeSlug lower-cases s and keeps only ASCII letters and digits.
// "Exam Adda!", "exam-adda" and "EXAMADDA" all normalize to "examadda".
func NormalizeSlug(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
