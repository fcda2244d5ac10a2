package fuzzy

import "testing"

func TestLongestCommonSubstring(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "writein", "writein", 7},
		{"transposed letters", "wrtiein", "writein", 3},
		{"missing hyphen", "writein", "writeins", 7},
		{"plural total", "totals", "total", 5},
		{"unrelated name", "johnsmith", "writein", 2},
		{"empty first", "", "total", 0},
		{"empty second", "total", "", 0},
		{"both empty", "", "", 0},
		{"no shared runes", "abc", "xyz", 0},
		{"shared suffix", "undervotes", "overvotes", 7},
		{"multibyte runes", "zürich", "zürichsee", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongestCommonSubstring(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("LongestCommonSubstring(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLongestCommonSubstring_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"overvotes", "undervotes"},
		{"wrtiein", "writein"},
		{"totl", "total"},
	}

	for _, p := range pairs {
		ab := LongestCommonSubstring(p[0], p[1])
		ba := LongestCommonSubstring(p[1], p[0])
		if ab != ba {
			t.Errorf("expected symmetric result for %q/%q, got %d and %d", p[0], p[1], ab, ba)
		}
	}
}

func TestLongestMatch_Offsets(t *testing.T) {
	m := LongestMatch("xxtotal", "totalyy")

	if m.Size != 5 {
		t.Fatalf("expected size 5, got %d", m.Size)
	}
	if m.A != 2 || m.B != 0 {
		t.Errorf("expected offsets (2, 0), got (%d, %d)", m.A, m.B)
	}
}

func TestLongestMatch_EarliestTie(t *testing.T) {
	// "ab" and "cd" both have length 2; the block earliest in a wins.
	m := LongestMatch("abcd", "cdab")

	if m.Size != 2 {
		t.Fatalf("expected size 2, got %d", m.Size)
	}
	if m.A != 0 || m.B != 2 {
		t.Errorf("expected offsets (0, 2), got (%d, %d)", m.A, m.B)
	}
}

func TestExceeds(t *testing.T) {
	if !Exceeds("totals", "total", 4) {
		t.Error("expected a five rune block to exceed 4")
	}
	if Exceeds("totl", "total", 4) {
		t.Error("expected a three rune block not to exceed 4")
	}
	if Exceeds("tota", "total", 4) {
		t.Error("expected a four rune block not to exceed 4")
	}
}

func TestLongestMatch_PicksLargestBlock(t *testing.T) {
	// Two separate blocks; the later one is longer.
	m := LongestMatch("abxovervotes", "abyovervotes")

	if m.Size != 9 {
		t.Fatalf("expected size 9, got %d", m.Size)
	}
	if m.A != 3 || m.B != 3 {
		t.Errorf("expected offsets (3, 3), got (%d, %d)", m.A, m.B)
	}
}
