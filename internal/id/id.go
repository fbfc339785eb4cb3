package id

import "crypto/rand"

const (
	chars  = "abcdefghijklmnopqrstuvwxyz0123456789"
	length = 16
)

// New creates a unique 16-character alphanumeric identifier, used for quiz
// sessions.
func New() string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}
