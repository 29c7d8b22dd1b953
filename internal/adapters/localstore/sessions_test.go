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

type testLogger struct{}

func (testLogger) Debug(string) {}
func (testLogger) Error(string) {}

func newSessionStore() (*SessionStore, *kv.Memory) {
	mem := kv.NewMemory()
	return NewSessionStore(mem, testLogger{}), mem
}

func TestSessionStore_AppendAssignsIDAndTimestamp(t *testing.T) {
	store, _ := newSessionStore()

	got, err := store.Append(context.Background(), domain.SessionInput{UserID: "a@example.com"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got.ID == "" {
		t.Error("no id assigned")
	}
	if got.OccurredAt.IsZero() {
		t.Error("no timestamp assigned")
	}
	if got.Title != domain.DefaultTitle || got.DurationMinutes != domain.DefaultDurationMinutes {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestSessionStore_AppendKeepsSuppliedFields(t *testing.T) {
	store, _ := newSessionStore()
	at := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	got, err := store.Append(context.Background(), domain.SessionInput{
		ID:         "custom-id",
		UserID:     "a@example.com",
		OccurredAt: at,
		Style:      domain.StyleYoga,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got.ID != "custom-id" {
		t.Errorf("ID = %q", got.ID)
	}
	if !got.OccurredAt.Equal(at) {
		t.Errorf("OccurredAt = %v", got.OccurredAt)
	}
}

func TestSessionStore_AppendRequiresUser(t *testing.T) {
	store, _ := newSessionStore()

	_, err := store.Append(context.Background(), domain.SessionInput{})
	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestSessionStore_ListByUser(t *testing.T) {
	store, _ := newSessionStore()
	ctx := context.Background()

	for _, in := range []domain.SessionInput{
		{UserID: "a@example.com", Title: "first"},
		{UserID: "b@example.com", Title: "other owner"},
		{UserID: "a@example.com", Title: "second"},
	} {
		if _, err := store.Append(ctx, in); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := store.ListByUser(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Errorf("insertion order not preserved: %q, %q", got[0].Title, got[1].Title)
	}

	unknown, err := store.ListByUser(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("ListByUser unknown: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unknown user yielded %d sessions", len(unknown))
	}
}

func TestSessionStore_MalformedLogDegradesToEmpty(t *testing.T) {
	store, mem := newSessionStore()
	ctx := context.Background()

	if err := mem.Set(ctx, ports.KeySessions, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	got, err := store.ListByUser(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("ListByUser on malformed data: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}

	// Appending over malformed data starts a fresh log.
	if _, err := store.Append(ctx, domain.SessionInput{UserID: "a@example.com"}); err != nil {
		t.Fatalf("Append over malformed data: %v", err)
	}
	got, _ = store.ListByUser(ctx, "a@example.com")
	if len(got) != 1 {
		t.Errorf("len after append = %d, want 1", len(got))
	}
}
