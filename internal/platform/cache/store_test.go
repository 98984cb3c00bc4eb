package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStoreSetGet(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatal("got a hit for a missing key")
	}

	store.Set(ctx, "key", "value")
	got, ok := store.Get(ctx, "key")
	if !ok || got != "value" {
		t.Fatalf("Get = %v/%v, want value/true", got, ok)
	}

	store.Set(ctx, "", "dropped")
	if _, ok := store.Get(ctx, ""); ok {
		t.Fatal("empty key should never store")
	}
}

func TestStoreExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "key", "value")
	if _, ok := store.Get(ctx, "key"); !ok {
		t.Fatal("entry missing before expiry")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatal("entry survived past its ttl")
	}
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()

	store.Set(ctx, "key", "value")
	time.Sleep(5 * time.Millisecond)
	if _, ok := store.Get(ctx, "key"); !ok {
		t.Fatal("entry expired with ttl disabled")
	}
}

func TestStoreDeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "matches:calendar:member-1:2026-03", 1)
	store.Set(ctx, "matches:calendar:member-1:2026-04", 2)
	store.Set(ctx, "matches:calendar:member-2:2026-03", 3)

	store.DeletePrefix(ctx, "matches:calendar:member-1")

	if _, ok := store.Get(ctx, "matches:calendar:member-1:2026-03"); ok {
		t.Fatal("prefixed entry survived")
	}
	if _, ok := store.Get(ctx, "matches:calendar:member-1:2026-04"); ok {
		t.Fatal("prefixed entry survived")
	}
	if _, ok := store.Get(ctx, "matches:calendar:member-2:2026-03"); !ok {
		t.Fatal("unrelated entry was dropped")
	}
}

func TestStoreGetOrLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	loads := 0

	loader := func(context.Context) (any, error) {
		loads++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		got, err := store.GetOrLoad(ctx, "key", loader)
		if err != nil {
			t.Fatalf("GetOrLoad %d: %v", i, err)
		}
		if got != "loaded" {
			t.Fatalf("GetOrLoad %d = %v", i, got)
		}
	}
	if loads != 1 {
		t.Fatalf("loader ran %d times, want 1", loads)
	}
}

func TestStoreGetOrLoadErrorNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	wantErr := errors.New("upstream down")
	loads := 0

	failing := func(context.Context) (any, error) {
		loads++
		return nil, wantErr
	}

	if _, err := store.GetOrLoad(ctx, "key", failing); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if _, err := store.GetOrLoad(ctx, "key", failing); !errors.Is(err, wantErr) {
		t.Fatalf("second err = %v, want %v", err, wantErr)
	}
	if loads != 2 {
		t.Fatalf("loader ran %d times, want 2 (errors are not cached)", loads)
	}
}
