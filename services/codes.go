package services

import (
	"math/rand"
	"strings"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// The shared top-level source keeps concurrent calls from seeding identical
// sequences, so uniqueness retries actually draw fresh candidates.
func randomCodeChars(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

// codePrefix derives up to n characters from the local part of an email,
// uppercased and stripped to the code charset, padded with random characters
// when the local part is too short.
func codePrefix(email string, n int) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	local = strings.ToUpper(local)

	var b strings.Builder
	for _, r := range local {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == n {
			break
		}
	}
	if b.Len() < n {
		b.WriteString(randomCodeChars(n - b.Len()))
	}
	return b.String()
}
