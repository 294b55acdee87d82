package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies helper key stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, RunID("r1")},
		{"Stage", KeyStage, Stage("containment")},
		{"Longname", KeyLongname, Longname("Foo#bar")},
		{"Kind", KeyKind, Kind("class")},
		{"File", KeyFile, File("a.js")},
		{"Path", KeyPath, Path("/tmp/out")},
		{"Page", KeyPage, Page("Foo.html")},
		{"Target", KeyTarget, Target("Base")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
	}
}

func TestNumericAndErrorHelpers(t *testing.T) {
	if got := Count(3); got.Value.Int64() != 3 {
		t.Fatalf("expected count 3, got %v", got.Value)
	}
	if got := DurationMS(1.5); got.Value.Float64() != 1.5 {
		t.Fatalf("expected 1.5, got %v", got.Value)
	}
	if got := Error(nil); got.Value.String() != "" {
		t.Fatalf("expected empty error string, got %q", got.Value.String())
	}
	if got := Error(errors.New("boom")); got.Value.String() != "boom" {
		t.Fatalf("expected boom, got %q", got.Value.String())
	}
}
