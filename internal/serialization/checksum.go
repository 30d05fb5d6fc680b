package serialization

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// ComputeChecksum returns the SHA-256 of the little-endian float64 bits of every
// weight value, then every bias value, in layer and row-major order.
func ComputeChecksum(weights, biases [][][]float64) [32]byte {
	h := sha256.New()
	var buf [8]byte
	for _, group := range [][][][]float64{weights, biases} {
		for _, m := range group {
			for _, row := range m {
				for _, v := range row {
					binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
					h.Write(buf[:])
				}
			}
		}
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// ValidateChecksum compares the document parameters against its stored checksum.
// An empty stored checksum is not checked.
func ValidateChecksum(doc *Document) error {
	if doc.Checksum == "" {
		return nil
	}
	stored, err := hex.DecodeString(doc.Checksum)
	if err != nil || len(stored) != sha256.Size {
		return ErrChecksumMismatch
	}
	computed := ComputeChecksum(doc.Weights, doc.Biases)
	if [32]byte(stored) != computed {
		return ErrChecksumMismatch
	}
	return nil
}
