package money

import (
	"strings"
	"testing"
)

// The exact spacing and digit grouping come from the CLDR data shipped with
// x/text, so assertions stay loose: symbol present, digits present.
func TestFormatCRC(t *testing.T) {
	got := FormatCRC(2000)
	if !strings.Contains(got, "₡") {
		t.Errorf("FormatCRC(2000) = %q, want colón symbol", got)
	}
	if !strings.Contains(got, "2") || !strings.Contains(got, "000") {
		t.Errorf("FormatCRC(2000) = %q, want the amount digits", got)
	}
}

func TestFormatCRC_Zero(t *testing.T) {
	if got := FormatCRC(0); got == "" {
		t.Error("FormatCRC(0) returned empty string")
	}
}
