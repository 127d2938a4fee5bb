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

func TestSentinels_SurviveWrapping(t *testing.T) {
	sentinels := []error{
		ErrValidation, ErrNotFound, ErrAlreadyRegistered, ErrUnauthorized,
		ErrLoginAttemptsExhausted, ErrStorage, ErrStoreCorrupt, ErrExternalService,
	}
	for _, s := range sentinels {
		wrapped := fmt.Errorf("outer: %w", s)
		if !errors.Is(wrapped, s) {
			t.Fatalf("errors.Is lost %v through wrapping", s)
		}
	}
}
