// Package random provides the seedable random source shared by game engines.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

//crypto seed, for runs without a fixed one
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
