package presets

import "testing"

func TestResolveSkipsUnknownIDs(t *testing.T) {
	got := Resolve([]string{"hedge-twice", "not-a-preset", "no-lists"})
	if len(got) != 2 {
		t.Fatalf("resolved %d instructions, want 2", len(got))
	}
	if got[1] != "Force continuous prose; remove bullets/numbering." {
		t.Fatalf("unexpected instruction: %q", got[1])
	}
}

func TestDefaultSampleExists(t *testing.T) {
	s, ok := SampleByID(DefaultSampleID)
	if !ok {
		t.Fatalf("default sample %q missing from catalog", DefaultSampleID)
	}
	if s.Content == "" || s.Category != "Content-Neutral" {
		t.Fatalf("default sample malformed: %+v", s)
	}
}

func TestTierLookup(t *testing.T) {
	tier, ok := TierByID("zhi1_5")
	if !ok {
		t.Fatal("zhi1_5 missing")
	}
	if tier.Credits != 4275000 || tier.PriceUSD != 5 {
		t.Fatalf("zhi1_5 = %+v", tier)
	}
	if _, ok := TierByID("zhi9_5"); ok {
		t.Fatal("unknown tier resolved")
	}
	if len(Tiers()) != 20 {
		t.Fatalf("tiers = %d, want 20", len(Tiers()))
	}
}
