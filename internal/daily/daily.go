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

// Challenge returns the deterministic level index and shuffle seed for a
// date, using HMAC(salt, YYYY-MM-DD). Everyone playing the same date with
// the same salt gets the same board.
func Challenge(date time.Time, salt string, levelCount int) (levelIndex int, seed int64) {
	if levelCount <= 0 {
		return 0, 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// first 8 bytes pick the level, next 8 seed the shuffle
	levelIndex = int(binary.BigEndian.Uint64(sum[:8]) % uint64(levelCount))
	seed = int64(binary.BigEndian.Uint64(sum[8:16]))
	return levelIndex, seed
}
