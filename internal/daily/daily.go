package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic generator seed for a date using
// HMAC(salt, YYYY-MM-DD). Everyone who plays the daily on the same
// date gets the same puzzle.
func Seed(date time.Time, salt string) int64 {
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes; keep it positive so seed 0 ("pick random")
	// can never come out of here
	n := binary.BigEndian.Uint64(sum[:8])
	s := int64(n &^ (1 << 63))
	if s == 0 {
		s = 1
	}
	return s
}
