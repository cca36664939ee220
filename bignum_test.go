package zkpauth

import (
	"math/big"
	"testing"
)

func TestSerializeZero(t *testing.T) {
	b := SerializeBigInt(big.NewInt(0))
	if len(b) != 0 {
		t.Fatalf("Serialize(0) = %v, want empty slice", b)
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	vals := []int64{0, 1, 255, 256, 65535, 1 << 30}
	for _, v := range vals {
		n := big.NewInt(v)
		got := DeserializeBigInt(SerializeBigInt(n))
		if got.Cmp(n) != 0 {
			t.Fatalf("round trip for %d produced %s", v, got)
		}
	}

	// P itself, a 2048-bit value, must round-trip too.
	got := DeserializeBigInt(SerializeBigInt(P))
	if got.Cmp(P) != 0 {
		t.Fatal("round trip for P failed")
	}
}

func TestDeserializeAcceptsLeadingZeroes(t *testing.T) {
	padded := append([]byte{0x00, 0x00}, SerializeBigInt(big.NewInt(42))...)
	got := DeserializeBigInt(padded)
	if got.Cmp(big.NewInt(42)) != 0 {
		t.Fatalf("DeserializeBigInt with leading zeroes = %s, want 42", got)
	}
}
