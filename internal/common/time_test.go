package common

import (
	"testing"
	"time"
)

func TestRFC3339MicrosConstant(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC)
	formatted := ts.Format(RFC3339Micros)
	if formatted != "2024-01-15T10:30:00.123456Z" {
		t.Fatalf("unexpected micros formatting: %s", formatted)
	}
}
