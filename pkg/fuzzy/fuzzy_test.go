package fuzzy

import "testing"

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"  Algebra   Quiz ": "algebra quiz",
		"Math-Quiz #1":      "math quiz 1",
		"":                  "",
		"ÉTUDE":             "étude",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio("quiz", "quiz"); got != 100 {
		t.Errorf("identical strings: got %d", got)
	}
	if got := Ratio("", ""); got != 100 {
		t.Errorf("two empty strings: got %d", got)
	}
	if got := Ratio("abc", "xyz"); got != 0 {
		t.Errorf("disjoint strings: got %d", got)
	}
	if got := Ratio("", "abc"); got != 0 {
		t.Errorf("empty vs non-empty: got %d", got)
	}
}

func TestTokenSetRatio_ExactMatchIs100(t *testing.T) {
	if got := TokenSetRatio("Algebra Quiz", "Algebra Quiz"); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestTokenSetRatio_OrderAndCaseInsensitive(t *testing.T) {
	if got := TokenSetRatio("quiz ALGEBRA", "Algebra Quiz"); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestTokenSetRatio_SubsetIs100(t *testing.T) {
	if got := TokenSetRatio("algebra", "Algebra Quiz for Beginners"); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestTokenSetRatio_EmptyIsLow(t *testing.T) {
	for _, name := range []string{"Algebra Quiz", "Reading", "x"} {
		if got := TokenSetRatio("", name); got != 0 {
			t.Errorf("TokenSetRatio(\"\", %q) = %d, want 0", name, got)
		}
	}
}

func TestTokenSetRatio_PartialOverlapBelowThreshold(t *testing.T) {
	got := TokenSetRatio("math quiz", "Algebra Quiz")
	if got >= 85 {
		t.Errorf("expected partial overlap below 85, got %d", got)
	}
	if got <= 0 {
		t.Errorf("expected a positive score for a shared token, got %d", got)
	}
}

func TestTokenSetRatio_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"photosynthesis lab", "photo lab"},
		{"reading comprehension", "comprehension reading test"},
		{"a", "bbbbbbbbbbbb"},
	}
	for _, p := range pairs {
		got := TokenSetRatio(p[0], p[1])
		if got < MinScore || got > MaxScore {
			t.Errorf("TokenSetRatio(%q, %q) = %d out of range", p[0], p[1], got)
		}
	}
}

func TestTokenSetRatio_IsSymmetric(t *testing.T) {
	a, b := "intro to fractions", "fractions basics"
	if TokenSetRatio(a, b) != TokenSetRatio(b, a) {
		t.Errorf("expected symmetric score")
	}
}
