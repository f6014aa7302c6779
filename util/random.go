package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max.
func RandomInt(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// RandomString generates a random lowercase string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for range n {
		sb.WriteByte(alphabet[rand.IntN(k)])
	}

	return sb.String()
}
