package perftcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reynagenesisti-create/goattea/internal/board"
)

func TestCacheMiss(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "perftcache-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	c, err := Open(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	_, ok, err := c.Get("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 4)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected cache miss on empty database")
	}
}

func TestCacheSetAndGet(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "perftcache-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	c, err := Open(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	if err := c.Set(fen, 4, 197281); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	nodes, ok, err := c.Get(fen, 4)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if nodes != 197281 {
		t.Errorf("Expected 197281 nodes, got %d", nodes)
	}

	// A different depth for the same FEN must miss.
	if _, ok, _ := c.Get(fen, 3); ok {
		t.Error("Expected miss for a depth that was never stored")
	}
}

func TestCacheSurvivesReopen(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "perftcache-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbDir := filepath.Join(tmpDir, "db")
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	c1, err := Open(dbDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := c1.Set(fen, 3, 2812); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c1.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	c2, err := Open(dbDir)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer c2.Close()

	nodes, ok, err := c2.Get(fen, 3)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || nodes != 2812 {
		t.Errorf("Expected cached entry to survive reopen, got nodes=%d ok=%v", nodes, ok)
	}
}

func TestPerftPopulatesCacheOnMiss(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "perftcache-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	c, err := Open(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	pos := board.NewPosition()

	nodes, cached := Perft(pos, 3, c)
	if cached {
		t.Error("first call should be a cache miss")
	}
	if nodes != 8902 {
		t.Errorf("Perft(startpos, 3) = %d, want 8902", nodes)
	}

	nodes, cached = Perft(pos, 3, c)
	if !cached {
		t.Error("second call should be a cache hit")
	}
	if nodes != 8902 {
		t.Errorf("cached Perft(startpos, 3) = %d, want 8902", nodes)
	}
}

func TestPerftWithNilCache(t *testing.T) {
	pos := board.NewPosition()

	nodes, cached := Perft(pos, 2, nil)
	if cached {
		t.Error("a nil cache should never report a hit")
	}
	if nodes != 400 {
		t.Errorf("Perft(startpos, 2) = %d, want 400", nodes)
	}
}

func TestDefaultDir(t *testing.T) {
	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir failed: %v", err)
	}
	if dir == "" {
		t.Error("DefaultDir returned empty path")
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dir)
	}
}
