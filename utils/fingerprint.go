package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// ContentKey names a generated file after its content so that printing the
// same report twice overwrites one object instead of piling up copies.
func ContentKey(prefix string, content []byte, ext string) string {
	sum := blake2b.Sum256(content)
	return prefix + "_" + hex.EncodeToString(sum[:12]) + ext
}
