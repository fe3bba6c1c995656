package locales

import "testing"

func TestGet(t *testing.T) {
	if got := Get("OBJECT_KEY"); got != "Key" {
		t.Errorf("Get(OBJECT_KEY) = %q, want %q", got, "Key")
	}
	if got := Getf("LEVEL_WRITTEN", "out.json"); got != "Level written to out.json" {
		t.Errorf("Getf(LEVEL_WRITTEN) = %q", got)
	}
	if got := Getf("LEVEL_SEED_CODE", int64(5), "6"); got != "Seed 5 (code 6)" {
		t.Errorf("Getf(LEVEL_SEED_CODE) = %q", got)
	}
	if got := Get("LEVEL_WRITTEN"); got != "Level written to %s" {
		t.Errorf("Get should not format: %q", got)
	}
	if got := Get("NO_SUCH_KEY"); got != "NO_SUCH_KEY" {
		t.Errorf("unknown key came back as %q", got)
	}
}

func TestSetLanguage_Unknown(t *testing.T) {
	if SetLanguage("xx_XX") {
		t.Error("SetLanguage should refuse a language with no catalogue")
	}
	if got := Get("OBJECT_GOAL"); got != "Goal" {
		t.Errorf("catalogue changed after a refused switch: %q", got)
	}
}
