// Package runid generates sortable identifiers for batch runs.
package runid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lowercase.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded run ID.
const Length = 26

// New returns a UUIDv7 encoded as a 26-character base32 string. IDs created
// later sort after earlier ones.
func New() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("runid: %w", err)
	}
	return encode(id), nil
}

// NewFromReader is New with the random bits read from r.
func NewFromReader(r io.Reader) (string, error) {
	id, err := uuid.NewV7FromReader(r)
	if err != nil {
		return "", fmt.Errorf("runid: %w", err)
	}
	return encode(id), nil
}

// encode writes the 128 bits five at a time, with two zero bits of padding
// at the front so the first character is at most '7'.
func encode(id uuid.UUID) string {
	var b strings.Builder
	b.Grow(Length)

	// 130 bits total; bit i of the padded value is bit i-2 of the UUID.
	bit := func(i int) byte {
		i -= 2
		if i < 0 {
			return 0
		}
		return (id[i/8] >> (7 - i%8)) & 1
	}

	for c := 0; c < Length; c++ {
		var v byte
		for k := 0; k < 5; k++ {
			v = v<<1 | bit(c*5+k)
		}
		b.WriteByte(alphabet[v])
	}
	return b.String()
}

// Validate checks if a run ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("run ID must be exactly %d characters, got %d", Length, len(id))
	}

	if id[0] > '7' {
		return fmt.Errorf("run ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
