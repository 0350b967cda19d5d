package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/contractlens/internal/model"
)

func TestKey(t *testing.T) {
	a := Key("The Tenant shall pay rent.", "")
	b := Key("The Tenant shall pay rent.", "")
	if a != b {
		t.Errorf("Expected stable keys, got %s and %s", a, b)
	}
	if !strings.HasPrefix(a, "contractlens:") {
		t.Errorf("Unexpected key prefix: %s", a)
	}
	if Key("The Tenant shall pay rent.", "LEASE") != a+":lease" {
		t.Errorf("Expected hint suffix, got %s", Key("The Tenant shall pay rent.", "LEASE"))
	}
	if Key("Different text.", "") == a {
		t.Error("Expected different text to produce a different key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	value := []byte("report")
	if err := c.Set("k", value, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value[0] = 'X'

	got, ok := c.Get("k")
	if !ok || string(got) != "report" {
		t.Fatalf("Expected stored copy, got %q (found=%v)", got, ok)
	}
	got[0] = 'Y'
	if again, _ := c.Get("k"); string(again) != "report" {
		t.Errorf("Get must return a copy, got %q", again)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}

	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("short", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("Expected entry to expire")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	key := Key("contract text", "nda")

	if _, ok := c.Get(key); ok {
		t.Fatal("Expected miss on empty cache")
	}
	if err := c.Set(key, []byte(`{"id":"CR-1"}`), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := c.Get(key)
	if !ok || string(got) != `{"id":"CR-1"}` {
		t.Fatalf("Unexpected value %q (found=%v)", got, ok)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "*"))
	if len(files) != 1 || strings.Contains(filepath.Base(files[0]), ":") {
		t.Errorf("Expected one entry file without colons, got %v", files)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("Deleting a missing key should succeed, got %v", err)
	}
}

func TestDiskCache_ExpiryAndPrune(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	_ = c.Set("old", []byte("a"), time.Millisecond)
	_ = c.Set("fresh", []byte("b"), time.Hour)
	if err := os.WriteFile(filepath.Join(dir, "corrupt"+entrySuffix), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	removed, err := c.Prune()
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("Expected expired and corrupt entries pruned, got %d", removed)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("Expected fresh entry to survive")
	}
	if _, ok := c.Get("old"); ok {
		t.Error("Expected expired entry to miss")
	}
}

func TestDiskCache_ClearKeepsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	foreign := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(foreign, []byte("keep"), 0o600); err != nil {
		t.Fatal(err)
	}

	c := NewDiskCache(dir, time.Hour)
	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Expected entries removed")
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Errorf("Expected foreign file kept, got %v", err)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Hour)
	if err := layered.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A second instance over the same directory starts with a cold memory layer
	cold := NewLayeredCache(time.Minute, dir, time.Hour)
	if got, ok := cold.Get("k"); !ok || string(got) != "v" {
		t.Fatalf("Expected disk hit, got %q (found=%v)", got, ok)
	}
	if got, ok := cold.memory.Get("k"); !ok || string(got) != "v" {
		t.Error("Expected disk hit promoted to memory")
	}

	if err := cold.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := cold.Get("k"); ok {
		t.Error("Expected miss after clear")
	}
}

func TestReports(t *testing.T) {
	store := NewReports(NewMemoryCache(time.Minute, time.Minute), 0)
	report := &model.Report{
		ID:           "CR-ABCDEF12",
		ContractInfo: model.ContractInfo{ContractType: model.ContractNDA, WordCount: 120},
	}

	key := Key("nda text", "")
	if err := store.Put(key, report); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, ok := store.Get(key)
	if !ok {
		t.Fatal("Expected report hit")
	}
	if got.ID != report.ID || got.ContractInfo.ContractType != model.ContractNDA || got.ContractInfo.WordCount != 120 {
		t.Errorf("Unexpected report: %+v", got.ContractInfo)
	}
}

func TestReports_CorruptEntryIsDropped(t *testing.T) {
	mem := NewMemoryCache(time.Minute, time.Minute)
	_ = mem.Set("k", []byte("not json"), 0)

	store := NewReports(mem, 0)
	if _, ok := store.Get("k"); ok {
		t.Fatal("Expected miss for corrupt entry")
	}
	if _, ok := mem.Get("k"); ok {
		t.Error("Expected corrupt entry deleted")
	}
}

func TestReports_NilCache(t *testing.T) {
	var nilStore *Reports
	if _, ok := nilStore.Get("k"); ok {
		t.Error("Expected nil store to miss")
	}
	if err := NewReports(nil, 0).Put("k", &model.Report{}); err != nil {
		t.Errorf("Expected nil cache put to be a no-op, got %v", err)
	}
}

func TestNew(t *testing.T) {
	c, err := New(model.CacheConfig{Enabled: false})
	if err != nil || c != nil {
		t.Errorf("Expected nil cache when disabled, got %v, %v", c, err)
	}

	c, err = New(model.CacheConfig{Enabled: true, Dir: t.TempDir(), MemoryTTL: time.Minute, DiskTTL: time.Hour})
	if err != nil || c == nil {
		t.Fatalf("Expected layered cache, got %v, %v", c, err)
	}
}
