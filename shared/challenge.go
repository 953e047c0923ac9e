package shared

import "github.com/spacemeshos/sha256-simd"

// Challenge is a VDF input encoded as a little-endian byte buffer.
type Challenge []byte

// ChallengeFromMessage derives a byteLen wide challenge from an arbitrary
// message. The digest occupies the low-order bytes and the rest is zero.
// Narrower widths keep only the first byteLen bytes of the digest.
func ChallengeFromMessage(msg []byte, byteLen int) Challenge {
	digest := sha256.Sum256(msg)
	ch := make(Challenge, byteLen)
	copy(ch, digest[:])
	return ch
}
