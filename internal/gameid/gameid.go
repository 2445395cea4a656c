// Package gameid generates unique identifiers for simulated games.
//
// IDs are UUIDv7 values rendered as 26 characters of Crockford base32,
// so they sort by creation time and stay grep-friendly in logs and
// result files.
package gameid

import (
	"crypto/rand"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New returns a fresh game ID.
func New() string {
	return encode(newUUIDv7())
}

// newUUIDv7 builds a 128-bit UUIDv7: 48-bit millisecond timestamp,
// version and variant bits, and 74 bits of randomness.
func newUUIDv7() [16]byte {
	var u [16]byte

	now := time.Now().UnixMilli()
	u[0] = byte(now >> 40)
	u[1] = byte(now >> 32)
	u[2] = byte(now >> 24)
	u[3] = byte(now >> 16)
	u[4] = byte(now >> 8)
	u[5] = byte(now)

	if _, err := rand.Read(u[6:]); err != nil {
		panic("gameid: failed to read random bytes: " + err.Error())
	}

	u[6] = (u[6] & 0x0f) | 0x70 // version 7
	u[8] = (u[8] & 0x3f) | 0x80 // variant 10

	return u
}

// encode renders 128 bits as 26 base32 characters, most significant
// first. Two zero bits are prepended so the 130 bits divide evenly into
// 5-bit groups, which keeps the first character in [0,7].
func encode(u [16]byte) string {
	var out [26]byte

	acc := uint(0)
	bits := 2
	i := 0
	for _, b := range u {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= 5 {
			out[i] = alphabet[(acc>>(bits-5))&0x1f]
			bits -= 5
			i++
		}
	}

	return string(out[:])
}
