package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(fmt.Errorf("boom")); got != "Error: boom" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	if got := Formatf("bad date %q", "2025-13-01"); got != `Error: bad date "2025-13-01"` {
		t.Errorf("Formatf = %q", got)
	}
}
