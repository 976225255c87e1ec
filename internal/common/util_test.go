package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("decrement stock: %w", ErrInsufficientStock)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("wrapped error must match ErrInsufficientStock")
	}
	if errors.Is(err, ErrorNotFound) {
		t.Fatalf("unexpected match with ErrorNotFound")
	}
}
