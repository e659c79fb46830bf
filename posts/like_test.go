package posts

import (
	"slices"
	"testing"
)

func TestLikeToggle(t *testing.T) {
	cases := []struct {
		name      string
		likes     []string
		userID    string
		wantLike  bool
		wantAfter []string
	}{
		{"first like", []string{}, "u1", true, []string{"u1"}},
		{"like with others", []string{"u2", "u3"}, "u1", true, []string{"u2", "u3", "u1"}},
		{"unlike", []string{"u1"}, "u1", false, []string{}},
		{"unlike keeps others", []string{"u2", "u1", "u3"}, "u1", false, []string{"u2", "u3"}},
	}

	for _, c := range cases {
		liking, after := LikeToggle(c.likes, c.userID)
		if liking != c.wantLike {
			t.Errorf("%s: liking = %v, want %v", c.name, liking, c.wantLike)
		}
		if !slices.Equal(after, c.wantAfter) {
			t.Errorf("%s: after = %v, want %v", c.name, after, c.wantAfter)
		}
	}
}

func TestLikeToggleTwiceRestoresOriginal(t *testing.T) {
	originals := [][]string{
		{},
		{"u2"},
		{"u2", "u1", "u3"},
	}

	for _, original := range originals {
		_, once := LikeToggle(original, "u1")
		_, twice := LikeToggle(once, "u1")

		if slices.Contains(original, "u1") != slices.Contains(twice, "u1") {
			t.Errorf("membership not restored: %v -> %v", original, twice)
		}
		if len(twice) != len(original) {
			t.Errorf("count not restored: %v -> %v", original, twice)
		}
	}
}

func TestLikeToggleNeverDuplicates(t *testing.T) {
	likes := []string{"u2"}
	for i := 0; i < 5; i++ {
		_, likes = LikeToggle(likes, "u1")
		seen := map[string]bool{}
		for _, id := range likes {
			if seen[id] {
				t.Fatalf("duplicate %q after %d toggles: %v", id, i+1, likes)
			}
			seen[id] = true
		}
	}
}
