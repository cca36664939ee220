package zkpauth

import "math/big"

// SerializeBigInt encodes a non-negative integer as unsigned big-endian
// bytes, minimal length. Zero serializes to the empty slice.
func SerializeBigInt(n *big.Int) []byte {
	return n.Bytes()
}

// DeserializeBigInt decodes unsigned big-endian bytes into a non-negative
// integer. Leading zero bytes are accepted, though SerializeBigInt never
// produces them.
func DeserializeBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
