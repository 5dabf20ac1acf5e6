package cache

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pvoronin/newsgauge/internal/model"
)

func TestKey(t *testing.T) {
	k1 := Key("https://example.com/a")
	k2 := Key("https://example.com/b")

	if !strings.HasPrefix(k1, "newsgauge:v1:") {
		t.Errorf("key = %q", k1)
	}
	if k1 == k2 {
		t.Error("distinct URLs produced the same key")
	}
	if k1 != Key("https://example.com/a") {
		t.Error("key is not stable")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("unexpected hit")
	}
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	val, found := c.Get("k")
	if !found || !bytes.Equal(val, []byte("v")) {
		t.Errorf("got %q, %v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("k"); found {
		t.Error("hit after delete")
	}

	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("a"); found {
		t.Error("hit after clear")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("unexpected hit")
	}
	if err := c.Set(Key("https://example.com"), []byte("page"), 0); err != nil {
		t.Fatal(err)
	}

	// A second handle over the same directory sees the entry.
	reopened := NewDiskCache(dir, time.Minute)
	val, found := reopened.Get(Key("https://example.com"))
	if !found || string(val) != "page" {
		t.Errorf("got %q, %v", val, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("k"); found {
		t.Error("hit on expired entry")
	}
	// The expired file is removed on read.
	if _, found := c.Get("k"); found {
		t.Error("hit after removal")
	}
}

func TestLayeredCache_Promote(t *testing.T) {
	dir := t.TempDir()

	// Seed disk only, then read through a fresh layered cache.
	if err := NewDiskCache(dir, time.Minute).Set("k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("got %q, %v", val, found)
	}

	// The promoted entry now survives disk deletion.
	if err := c.disk.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("k"); !found {
		t.Error("expected memory hit after promotion")
	}
}

func TestNew(t *testing.T) {
	if c := New(model.CacheConfig{Enabled: false}); c != nil {
		t.Error("expected nil cache when disabled")
	}

	c := New(model.CacheConfig{Enabled: true, MemoryTTL: time.Minute})
	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("expected memory cache, got %T", c)
	}

	dir := filepath.Join(t.TempDir(), "cache")
	c = New(model.CacheConfig{Enabled: true, MemoryTTL: time.Minute, Dir: dir, DiskTTL: time.Hour})
	if _, ok := c.(*LayeredCache); !ok {
		t.Errorf("expected layered cache, got %T", c)
	}
}
