package domain

import "testing"

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		input string
		want  SortKey
	}{
		{"deadline", SortDeadline},
		{" Amount ", SortAmount},
		{"TITLE", SortTitle},
		{"default", SortDefault},
		{"", SortDefault},
		{"popularity", SortDefault},
	}
	for _, c := range cases {
		if got := ParseSortKey(c.input); got != c.want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestSortKeyNextCycles(t *testing.T) {
	k := SortDefault
	seen := map[SortKey]bool{}
	for i := 0; i < len(SortKeys); i++ {
		seen[k] = true
		k = k.Next()
	}
	if k != SortDefault {
		t.Fatalf("expected to wrap back to default, got %q", k)
	}
	if len(seen) != len(SortKeys) {
		t.Fatalf("expected to visit every key, got %v", seen)
	}
}

func TestQueryIsEmpty(t *testing.T) {
	if !(Query{SearchTerm: "   "}).IsEmpty() {
		t.Fatalf("whitespace search should be empty")
	}
	if (Query{Category: "ukri"}).IsEmpty() {
		t.Fatalf("category query is not empty")
	}
}
