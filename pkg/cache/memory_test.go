package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(10))
	defer mc.Close()
	ctx := context.Background()

	in := map[string]float64{"sun": 280.5, "moon": 17.25}
	if err := mc.Set(ctx, "positions:1", in, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var out map[string]float64
	if err := mc.Get(ctx, "positions:1", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if out["sun"] != 280.5 || out["moon"] != 17.25 {
		t.Errorf("round trip mismatch: %v", out)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	var out string
	err := mc.Get(context.Background(), "absent", &out)
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("got %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k", "v", time.Nanosecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	var out string
	if err := mc.Get(ctx, "k", &out); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expired key returned %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheEviction(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer mc.Close()
	ctx := context.Background()

	mc.Set(ctx, "a", 1, time.Minute)
	time.Sleep(2 * time.Millisecond)
	mc.Set(ctx, "b", 2, time.Minute)
	time.Sleep(2 * time.Millisecond)
	mc.Set(ctx, "c", 3, time.Minute) // evicts "a"

	if ok, _ := mc.Exists(ctx, "a"); ok {
		t.Error("oldest key survived eviction")
	}
	if ok, _ := mc.Exists(ctx, "c"); !ok {
		t.Error("newest key missing")
	}
}

func TestKeyBuilder(t *testing.T) {
	if got := Key("lons", "swiss", 1234); got != "lons:swiss:1234" {
		t.Errorf("Key = %q", got)
	}
}
