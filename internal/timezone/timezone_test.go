package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBack(t *testing.T) {
	if IsValid("") || IsValid("Not/AZone") {
		t.Fatalf("invalid zones accepted")
	}
	if got := Location("Not/AZone"); got == nil {
		t.Fatalf("nil location")
	}
	if !IsValid("UTC") {
		t.Fatalf("UTC rejected")
	}
	if got := Location("UTC"); got != time.UTC && got.String() != "UTC" {
		t.Fatalf("Location(UTC) = %v", got)
	}
}
