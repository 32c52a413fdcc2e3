package course

import (
	"errors"
	"fmt"
	"testing"
)

func TestFNV1a32KnownVectors(t *testing.T) {
	// Published 32-bit FNV-1a vectors; the client hashes with the same
	// constants, so these pin the exact algorithm.
	cases := []struct {
		in   string
		want uint32
	}{
		{"", 0x811c9dc5},
		{"a", 0xe40c292c},
		{"foobar", 0xbf9cf968},
	}
	for _, tc := range cases {
		if got := fnv1a32(tc.in); got != tc.want {
			t.Errorf("fnv1a32(%q) = %#x, want %#x", tc.in, got, tc.want)
		}
	}
}

func TestTierForHoleNumber(t *testing.T) {
	for n := 1; n <= 5; n++ {
		if got := TierForHoleNumber(n); got != n {
			t.Errorf("hole %d maps to tier %d, want %d", n, got, n)
		}
	}
	for _, n := range []int{6, 7, 19} {
		if got := TierForHoleNumber(n); got != TierOvertime {
			t.Errorf("hole %d maps to tier %d, want overtime", n, got)
		}
	}
}

func TestSelectHoleIDIndexesSortedIDs(t *testing.T) {
	lib := mustLoad(t, map[string]int{"t1-c": 1, "t1-a": 1, "t1-b": 1})

	ids := lib.HolesByTier(1)
	if len(ids) != 3 || ids[0] != "t1-a" || ids[1] != "t1-b" || ids[2] != "t1-c" {
		t.Fatalf("tier ids not sorted ascending: %v", ids)
	}

	matchID := "match-422"
	got, err := lib.SelectHoleID(1, matchID, 1)
	if err != nil {
		t.Fatalf("SelectHoleID: %v", err)
	}
	h := fnv1a32(fmt.Sprintf("%s:%d", matchID, 1))
	if want := ids[int(h%3)]; got != want {
		t.Errorf("selected %q, want %q (hash %#x)", got, want, h)
	}
}

func TestSelectionIsDeterministic(t *testing.T) {
	lib := mustLoad(t, map[string]int{
		"t1-a": 1, "t1-b": 1, "t2-a": 2, "t3-a": 3, "t4-a": 4, "t5-a": 5,
		"t6-a": 6, "t6-b": 6, "t6-c": 6,
	})

	first, err := lib.GenerateMatchSequence("match-7", 0)
	if err != nil {
		t.Fatalf("GenerateMatchSequence: %v", err)
	}
	second, _ := lib.GenerateMatchSequence("match-7", 0)

	if len(first) != DefaultMaxHoles {
		t.Fatalf("sequence length %d, want %d", len(first), DefaultMaxHoles)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("hole %d diverged: %q vs %q", i+1, first[i], second[i])
		}
	}
}

func TestSequenceRespectsTiers(t *testing.T) {
	lib := mustLoad(t, map[string]int{
		"t1-a": 1, "t2-a": 2, "t3-a": 3, "t4-a": 4, "t5-a": 5,
		"t6-a": 6, "t6-b": 6,
	})

	seq, err := lib.GenerateMatchSequence("match-1", 8)
	if err != nil {
		t.Fatalf("GenerateMatchSequence: %v", err)
	}
	for i, id := range seq {
		hole, err := lib.GetHole(id)
		if err != nil {
			t.Fatalf("hole %d: %v", i+1, err)
		}
		if want := TierForHoleNumber(i + 1); hole.Tier != want {
			t.Errorf("hole %d is tier %d, want %d", i+1, hole.Tier, want)
		}
	}
}

func TestDifferentMatchesGetDifferentSequences(t *testing.T) {
	lib := mustLoad(t, map[string]int{
		"t1-a": 1, "t1-b": 1, "t1-c": 1,
		"t2-a": 2, "t2-b": 2, "t3-a": 3, "t3-b": 3,
		"t4-a": 4, "t4-b": 4, "t5-a": 5, "t5-b": 5,
		"t6-a": 6, "t6-b": 6, "t6-c": 6,
	})

	a, _ := lib.GenerateMatchSequence("match-aaa", 0)
	b, _ := lib.GenerateMatchSequence("match-bbb", 0)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("two different match ids produced identical 15-hole sequences")
	}
}

func TestHoleForMatch(t *testing.T) {
	lib := mustLoad(t, map[string]int{"t1-a": 1, "t2-a": 2})

	hole, err := lib.HoleForMatch("m", 2)
	if err != nil {
		t.Fatalf("HoleForMatch: %v", err)
	}
	if hole.HoleID != "t2-a" {
		t.Errorf("hole 2 resolved to %q, want the only tier-2 hole", hole.HoleID)
	}

	if _, err := lib.HoleForMatch("m", 0); err == nil {
		t.Error("hole number 0 accepted")
	}
}

func TestEmptyTierFailsLoudly(t *testing.T) {
	lib := mustLoad(t, map[string]int{"t1-a": 1})

	if _, err := lib.SelectHoleID(6, "m", 6); !errors.Is(err, ErrEmptyTier) {
		t.Errorf("err = %v, want ErrEmptyTier", err)
	}
	if _, err := lib.GenerateMatchSequence("m", 2); !errors.Is(err, ErrEmptyTier) {
		t.Errorf("sequence over a gappy pack: err = %v, want ErrEmptyTier", err)
	}
}
