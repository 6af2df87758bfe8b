package ids

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// New returns a store-assigned 24-character hexadecimal identifier:
// 4 bytes of unix seconds followed by 8 random bytes.
func New() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// Valid reports whether s is a well-formed identifier.
func Valid(s string) bool {
	return idPattern.MatchString(s)
}
