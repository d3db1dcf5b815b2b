package domain

import "testing"

func TestNewRepositoryKeepsOrderAndDropsDuplicates(t *testing.T) {
	recs := []FundingRecord{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
		{ID: "a", Title: "Duplicate"},
		{ID: "", Title: "No id"},
	}

	repo, dropped := NewRepositoryWithDuplicates(recs, RepositoryMeta{Source: "test"})

	if repo.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", repo.Len())
	}
	if len(dropped) != 1 || dropped[0] != "a" {
		t.Fatalf("expected duplicate a dropped, got %v", dropped)
	}
	if repo.Meta().Dropped != 1 {
		t.Fatalf("expected meta.Dropped=1, got %d", repo.Meta().Dropped)
	}

	got := repo.Records()
	if got[0].Title != "First" || got[1].Title != "Second" || got[2].Title != "No id" {
		t.Fatalf("unexpected order: %+v", got)
	}

	rec, ok := repo.Get("a")
	if !ok || rec.Title != "First" {
		t.Fatalf("expected first occurrence of a, got %+v ok=%v", rec, ok)
	}
}

func TestRepositoryRecordsIsACopy(t *testing.T) {
	repo := NewRepository([]FundingRecord{{ID: "a", Title: "Original"}}, RepositoryMeta{})

	got := repo.Records()
	got[0].Title = "Changed"

	again := repo.Records()
	if again[0].Title != "Original" {
		t.Fatalf("repository content changed through Records()")
	}
}

func TestRepositoryRevision(t *testing.T) {
	a := NewRepository([]FundingRecord{{ID: "a"}, {ID: "b"}}, RepositoryMeta{Source: "x"})
	b := NewRepository([]FundingRecord{{ID: "a"}, {ID: "b"}}, RepositoryMeta{Source: "y"})
	c := NewRepository([]FundingRecord{{ID: "b"}, {ID: "a"}}, RepositoryMeta{})

	if a.Revision() != b.Revision() {
		t.Fatalf("equal content should share a revision")
	}
	if a.Revision() == c.Revision() {
		t.Fatalf("different order should change the revision")
	}
}

func TestEmptyRepository(t *testing.T) {
	repo := EmptyRepository()
	if repo.Len() != 0 {
		t.Fatalf("expected empty")
	}
	if recs := repo.Records(); recs == nil || len(recs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", recs)
	}
	if _, ok := repo.Get("x"); ok {
		t.Fatalf("expected miss")
	}

	var nilRepo *Repository
	if nilRepo.Len() != 0 || nilRepo.Revision() != repo.Revision() {
		t.Fatalf("nil repository should behave as empty")
	}
}
