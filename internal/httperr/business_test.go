package httperr

import (
	"fmt"
	"testing"
)

func TestIsBusinessThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create reservation: %w", ErrBusiness(CodeProductUnavailable))

	if !IsBusiness(err, CodeProductUnavailable) {
		t.Fatalf("expected wrapped business error to match")
	}
	if IsBusiness(err, CodeProductNotFound) {
		t.Fatalf("unexpected match on other code")
	}
	if got := CodeOf(err); got != CodeProductUnavailable {
		t.Fatalf("CodeOf = %q", got)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != "" {
		t.Fatalf("CodeOf(plain) = %q", got)
	}
}
