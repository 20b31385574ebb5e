package services

import (
	"context"
	"testing"

	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/db/seeders"
	"github.com/jainam01/four-kids-updated-sub000/app/repositories"
)

func newWatchlistFixture(t *testing.T) *WatchlistService {
	t.Helper()

	categoryRepo := repositories.NewCategoryRepository()
	productRepo := repositories.NewProductRepository()
	if err := seeders.SeedCatalog(context.Background(), categoryRepo, productRepo); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}
	return NewWatchlistService(repositories.NewWatchlistRepository(), productRepo)
}

func TestWatchlistAddIsIdempotent(t *testing.T) {
	svc := newWatchlistFixture(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, "s1", 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Add(ctx, "s1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Fatalf("duplicate add minted a new entry: %d then %d", first.ID, second.ID)
	}

	entries, err := svc.List(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
	if entries[0].Product == nil || entries[0].Product.Name != "Denim Jacket" {
		t.Fatalf("entry not joined with its product: %+v", entries[0])
	}
}

func TestWatchlistMembershipTracksAddAndRemove(t *testing.T) {
	svc := newWatchlistFixture(t)
	ctx := context.Background()

	in, err := svc.IsInWatchlist(ctx, "s1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if in {
		t.Fatal("fresh session should not have memberships")
	}

	entry, err := svc.Add(ctx, "s1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if in, _ = svc.IsInWatchlist(ctx, "s1", 1); !in {
		t.Fatal("membership should hold immediately after add")
	}

	if _, err := svc.Remove(ctx, "s1", entry.ID); err != nil {
		t.Fatal(err)
	}
	if in, _ = svc.IsInWatchlist(ctx, "s1", 1); in {
		t.Fatal("membership should drop immediately after remove")
	}
}

func TestWatchlistAddUnknownProductIsNotFound(t *testing.T) {
	svc := newWatchlistFixture(t)

	if _, err := svc.Add(context.Background(), "s1", 9999); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestWatchlistAddMissingProductIDIsValidation(t *testing.T) {
	svc := newWatchlistFixture(t)

	if _, err := svc.Add(context.Background(), "s1", 0); apperrors.AsValidation(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWatchlistRemoveUnknownEntryIsNotFound(t *testing.T) {
	svc := newWatchlistFixture(t)

	if _, err := svc.Remove(context.Background(), "s1", 4242); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestWatchlistClearRemovesOnlyTheSession(t *testing.T) {
	svc := newWatchlistFixture(t)
	ctx := context.Background()

	for _, productID := range []int{1, 2, 3} {
		if _, err := svc.Add(ctx, "s1", productID); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.Add(ctx, "s2", 1); err != nil {
		t.Fatal(err)
	}

	if err := svc.Clear(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	s1, err := svc.List(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(s1) != 0 {
		t.Fatalf("expected cleared watchlist, got %d entries", len(s1))
	}

	s2, err := svc.List(ctx, "s2")
	if err != nil {
		t.Fatal(err)
	}
	if len(s2) != 1 {
		t.Fatal("clear leaked into another session")
	}
}
