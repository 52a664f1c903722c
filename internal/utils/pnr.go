package utils

import (
	"crypto/rand"
	"fmt"
)

// pnrAlphabet is the character set for reservation codes.  Uppercase
// letters and digits keep codes unambiguous when read over the phone.
const pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PNRLength is the fixed length of a reservation code.
const PNRLength = 6

// NewPNR generates a random 6-character reservation code.  The result
// is not guaranteed unique; the booking store retries against the
// store's unique constraint on collision.
func NewPNR() (string, error) {
	// 252 is the largest multiple of 36 below 256.  Bytes at or above
	// it are discarded so every alphabet character is equally likely.
	const limit = 7 * len(pnrAlphabet)

	out := make([]byte, 0, PNRLength)
	buf := make([]byte, PNRLength)
	for len(out) < PNRLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate pnr: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, pnrAlphabet[int(b)%len(pnrAlphabet)])
			if len(out) == PNRLength {
				break
			}
		}
	}
	return string(out), nil
}
