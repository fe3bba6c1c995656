// Package seedcode turns level seeds into short shareable codes and back.
package seedcode

import (
	"encoding/binary"

	"github.com/mr-tron/base58"

	"github.com/rigterw/PCG/pkg/engine/errors"
)

const seedBytes = 8

// Encode returns the base58 code for seed: the 8 big-endian bytes of the
// seed, so every int64 has exactly one code.
func Encode(seed int64) string {
	var buf [seedBytes]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seed))
	return base58.Encode(buf[:])
}

// Decode parses a code produced by Encode
func Decode(code string) (int64, error) {
	if code == "" {
		return 0, errors.InvalidArgumentf("seed code is empty")
	}
	raw, err := base58.Decode(code)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInvalidArgument, "seed code is not base58").
			WithMeta("code", code)
	}
	if len(raw) > seedBytes {
		return 0, errors.InvalidArgumentf("seed code %q is too long", code).WithMeta("code", code)
	}

	var buf [seedBytes]byte
	copy(buf[seedBytes-len(raw):], raw)
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}
