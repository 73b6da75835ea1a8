package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shinyyama/omnicopy-backend/internal/model"
)

func TestMemoryStoreListRecent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})

	for i := 0; i < 12; i++ {
		rec := &model.ProductDescription{
			UserID:   "u1",
			Platform: model.PlatformShopify,
			Content:  model.GeneratedContent{Title: fmt.Sprintf("t%d", i), Description: "d"},
		}
		if err := store.Create(ctx, rec); err != nil {
			t.Fatalf("create: %v", err)
		}
		if rec.ID == "" || rec.CreatedAt.IsZero() {
			t.Fatalf("record not stamped: %+v", rec)
		}
	}
	_ = store.Create(ctx, &model.ProductDescription{UserID: "u2", Content: model.GeneratedContent{Title: "other"}})

	recs, err := store.ListRecent(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != RecentLimit {
		t.Fatalf("len=%d", len(recs))
	}
	if recs[0].Content.Title != "t11" || recs[9].Content.Title != "t2" {
		t.Fatalf("order: first=%s last=%s", recs[0].Content.Title, recs[9].Content.Title)
	}
	for _, r := range recs {
		if r.UserID != "u1" {
			t.Fatalf("leaked record of %s", r.UserID)
		}
	}

	recs, _ = store.ListRecent(ctx, "u1", 3)
	if len(recs) != 3 {
		t.Fatalf("limit: len=%d", len(recs))
	}
}

func TestMemoryStoreSameTimestampNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return fixed })
	for _, title := range []string{"a", "b", "c"} {
		_ = store.Create(ctx, &model.ProductDescription{UserID: "u1", Content: model.GeneratedContent{Title: title}})
	}
	recs, _ := store.ListRecent(ctx, "u1", 10)
	if recs[0].Content.Title != "c" || recs[2].Content.Title != "a" {
		t.Fatalf("order=%v", []string{recs[0].Content.Title, recs[1].Content.Title, recs[2].Content.Title})
	}
}

func TestMemoryStoreFindByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	rec := &model.ProductDescription{UserID: "u1", Content: model.GeneratedContent{Title: "t"}}
	_ = store.Create(ctx, rec)

	got, err := store.FindByID(ctx, "u1", rec.ID)
	if err != nil || got.Content.Title != "t" {
		t.Fatalf("got=%v err=%v", got, err)
	}
	if _, err := store.FindByID(ctx, "u2", rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other user must not see record, err=%v", err)
	}
}

func TestMemoryStoreEnsureIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	first, err := store.Ensure(ctx, &model.UserProfile{UID: "u1", Email: "a@example.com", CreditBalance: 99})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if first.CreditBalance != model.InitialCreditBalance {
		t.Fatalf("balance=%d", first.CreditBalance)
	}
	second, _ := store.Ensure(ctx, &model.UserProfile{UID: "u1", Email: "changed@example.com"})
	if second.Email != "a@example.com" {
		t.Fatalf("profile overwritten: %+v", second)
	}
}
