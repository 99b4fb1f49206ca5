package types

import (
	"crypto/sha256"
	"encoding/binary"
)

// Denom is the single fungible denomination this vault custodies.
const Denom = "usdx"

// HashBytes digests the actual UTF-8 bytes of s. spec.md §9 documents a
// source bug where the index of each character was fed into the digest
// instead of the byte itself, which makes any two equal-length inputs hash
// identically; that bug is intentionally not reproduced here.
func HashBytes(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}

// ClaimKey is the idempotency token for claim_inheritance_plan:
// sha256(plan_id_be_bytes || hashed_email).
func ClaimKey(planID uint64, hashedEmail []byte) []byte {
	buf := make([]byte, 8+len(hashedEmail))
	binary.BigEndian.PutUint64(buf[:8], planID)
	copy(buf[8:], hashedEmail)
	sum := sha256.Sum256(buf)
	return sum[:]
}
