package embedded

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func resetForTest() {
	dataFS = nil
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时读取嵌入路径
func TestReadFileNotInitialized(t *testing.T) {
	resetForTest()

	_, err := ReadFile("data/game.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/game.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

// TestReadFileEmbedded 测试从嵌入文件系统读取
func TestReadFileEmbedded(t *testing.T) {
	resetForTest()
	defer resetForTest()

	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("player: {}")},
	})

	if !IsInitialized() {
		t.Fatal("Expected IsInitialized() to return true after Init()")
	}

	for _, path := range []string{"data/game.yaml", "./data/game.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s) failed: %v", path, err)
		}
		if string(data) != "player: {}" {
			t.Errorf("Unexpected content: %q", data)
		}
	}

	if _, err := ReadFile("data/missing.yaml"); err == nil {
		t.Error("Expected error for missing embedded file")
	}
	if Exists("data/missing.yaml") {
		t.Error("Missing file should not exist")
	}
}

// TestReadFileFromDisk 测试非 data/ 路径回落到磁盘
func TestReadFileFromDisk(t *testing.T) {
	resetForTest()

	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("room: {}"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile from disk failed: %v", err)
	}
	if string(data) != "room: {}" {
		t.Errorf("Unexpected content: %q", data)
	}
	if !Exists(path) {
		t.Error("Disk file should exist")
	}
}
