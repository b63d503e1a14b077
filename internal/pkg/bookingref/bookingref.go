// Package bookingref issues the human-facing booking references shown on
// tickets and vouchers. References are random, not time-derived: concurrent
// bookings within the same clock tick must still get distinct values, and the
// store's unique index is the final arbiter.
package bookingref

import (
	"crypto/rand"
	"fmt"
)

// No 0/1/O/I to keep references readable over the phone.
const alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const codeLen = 10

// New returns a reference like "MMT7KQ2XR9ZD4" (3-char prefix + 10 code
// characters). Collisions are possible in
// principle (32^10 space), so callers insert under a unique constraint and
// regenerate on conflict.
func New() (string, error) {
	buf := make([]byte, codeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("bookingref: %w", err)
	}
	code := make([]byte, codeLen)
	for i, b := range buf {
		code[i] = alphabet[int(b)%len(alphabet)]
	}
	return "MMT" + string(code), nil
}
