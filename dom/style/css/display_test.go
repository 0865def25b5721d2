package css

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDisplayModes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	for _, k := range []string{"none", "block", "inline", "inline-block", "list-item",
		"flow-root", "table", "inline-table"} {
		d, err := ParseDisplay(k)
		if err != nil {
			t.Fatalf("expected %q to be a display mode: %v", k, err)
		}
		if d.String() != k {
			t.Errorf("expected display mode to print as %q, is %q", k, d.String())
		}
	}
	blocks := map[string]bool{"block": true, "list-item": true, "table": true,
		"flow-root": true, "inline": false, "inline-block": false, "none": false}
	for k, isBlock := range blocks {
		d, _ := ParseDisplay(k)
		if d.IsBlockLevel() != isBlock {
			t.Errorf("expected %q block-level = %v", k, isBlock)
		}
	}
	if _, err := ParseDisplay("flex-box"); err == nil {
		t.Errorf("expected unknown display mode to be rejected")
	}
	d, _ := ParseDisplay("none")
	if !d.IsNone() {
		t.Errorf("expected 'none' to suppress display")
	}
}
