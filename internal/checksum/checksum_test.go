package checksum

import "testing"

func TestSum(t *testing.T) {
	// SHA-256 of the empty input.
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Sum(nil); got != empty {
		t.Errorf("Sum(nil) = %s", got)
	}
	if String("yield") != Sum([]byte("yield")) {
		t.Error("String and Sum disagree")
	}
	if String("yield") == String("Yield") {
		t.Error("checksum must be case sensitive")
	}
}
