package shaders

import (
	"strings"
	"testing"
)

func TestUberWGSL_Embedded(t *testing.T) {
	if UberWGSL == "" {
		t.Fatal("uber shader source is empty")
	}

	// Entry points and bindings the pipeline layout relies on.
	for _, want := range []string{
		"fn vs_main",
		"fn fs_main",
		"@group(0) @binding(0)",
		"@group(0) @binding(1)",
		"@group(0) @binding(2)",
		"@group(1) @binding(0)",
		"channel_mixing",
	} {
		if !strings.Contains(UberWGSL, want) {
			t.Errorf("uber shader missing %q", want)
		}
	}
}

func TestUberWGSL_FixedChainOrder(t *testing.T) {
	// Channel mixing must be applied before tonemapping in fs_main.
	mixIdx := strings.Index(UberWGSL, "uber.channel_mixing *")
	toneIdx := strings.Index(UberWGSL, "aces_film(mixed)")
	if mixIdx < 0 || toneIdx < 0 {
		t.Fatal("fragment chain statements not found")
	}
	if mixIdx > toneIdx {
		t.Error("channel mixing must come before tonemapping")
	}
}
