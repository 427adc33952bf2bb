package vector

import (
	"errors"
	"testing"
)

func TestEncodeDecodeEmbedding_RoundTrip(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75}

	b := EncodeEmbedding(orig)
	if len(b) != 16 {
		t.Fatalf("EncodeEmbedding length = %d, want 16", len(b))
	}
	decoded, err := DecodeEmbedding(b)
	if err != nil {
		t.Fatalf("DecodeEmbedding failed: %v", err)
	}
	if !equal(decoded, orig) {
		t.Fatalf("decoded = %v, want %v", decoded, orig)
	}
}

func TestEncodeDecodeEmbedding_Empty(t *testing.T) {
	if b := EncodeEmbedding(nil); len(b) != 0 {
		t.Fatalf("expected empty blob for nil slice, got len=%d", len(b))
	}
	vec, err := DecodeEmbedding(nil)
	if err != nil {
		t.Fatalf("DecodeEmbedding(nil) failed: %v", err)
	}
	if len(vec) != 0 {
		t.Fatalf("expected empty slice for nil blob, got len=%d", len(vec))
	}
}

func TestDecodeEmbedding_InvalidLength(t *testing.T) {
	if _, err := DecodeEmbedding([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("DecodeEmbedding error = %v, want ErrInvalidArgument", err)
	}
}
