package localstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/verdantly/wellspring/internal/adapters/kv"
	"github.com/verdantly/wellspring/internal/domain"
	"github.com/verdantly/wellspring/internal/ports"
)

func TestRecommendationStore_SaveAndGet(t *testing.T) {
	store := NewRecommendationStore(kv.NewMemory(), testLogger{})
	ctx := context.Background()

	rec := domain.Recommendation{
		ID:        "r1",
		UserEmail: "a@example.com",
		Sessions:  domain.GeneratePlan(domain.Profile{}),
		Created:   time.Now(),
	}
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.GetByID(ctx, "r1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Sessions) != 7 {
		t.Errorf("stored plan has %d days", len(got.Sessions))
	}

	_, err = store.GetByID(ctx, "missing")
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestRecommendationStore_ListByUserNewestFirst(t *testing.T) {
	store := NewRecommendationStore(kv.NewMemory(), testLogger{})
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "new", "other"} {
		rec := domain.Recommendation{ID: id, UserEmail: "a@example.com", Created: base.AddDate(0, 0, i)}
		if id == "other" {
			rec.UserEmail = "b@example.com"
		}
		if err := store.Save(ctx, rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := store.ListByUser(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "new" || got[1].ID != "old" {
		t.Errorf("order = %s, %s", got[0].ID, got[1].ID)
	}
}

func TestRecommendationStore_MalformedDegradesToEmpty(t *testing.T) {
	mem := kv.NewMemory()
	store := NewRecommendationStore(mem, testLogger{})
	ctx := context.Background()

	if err := mem.Set(ctx, ports.KeyRecommendations, []byte("[]")); err != nil {
		t.Fatal(err)
	}

	got, err := store.ListByUser(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
