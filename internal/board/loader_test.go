package board

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "board.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadFromFileWithHeader(t *testing.T) {
	path := writeTemp(t, "3 3\n* 1 .\n1 1 1\n. . .\n")
	b, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if b.Rows() != 3 || b.Cols() != 3 {
		t.Fatalf("dims = %d,%d, want 3,3", b.Rows(), b.Cols())
	}
	if !b.IsUnknown(0, 0) {
		t.Errorf("GetTile(0,0) = %v, want Unknown (mines stay hidden until revealed)", b.GetTile(0, 0))
	}
	if !b.mines[Coordinate{0, 0}] {
		t.Error("expected (0,0) recorded as a mine")
	}
	if b.GetTile(0, 1) != Tile(1) {
		t.Errorf("GetTile(0,1) = %v, want 1", b.GetTile(0, 1))
	}
	if !b.IsUnknown(0, 2) {
		t.Errorf("GetTile(0,2) should be Unknown")
	}
	if !b.IsUnknown(2, 0) {
		t.Errorf("GetTile(2,0) should be Unknown")
	}
}

func TestLoadFromFileNoHeader(t *testing.T) {
	path := writeTemp(t, "*..\n.1.\n..*\n")
	b, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if b.Rows() != 3 || b.Cols() != 3 {
		t.Fatalf("dims = %d,%d, want 3,3", b.Rows(), b.Cols())
	}
	if !b.IsUnknown(0, 0) || !b.IsUnknown(2, 2) {
		t.Errorf("expected mine cells to stay Unknown until revealed")
	}
	if !b.mines[Coordinate{0, 0}] || !b.mines[Coordinate{2, 2}] {
		t.Errorf("expected mines recorded at (0,0) and (2,2)")
	}
	if b.GetTile(1, 1) != Tile(1) {
		t.Errorf("GetTile(1,1) = %v, want 1", b.GetTile(1, 1))
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	path := writeTemp(t, "")
	b, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if b.Rows() != 0 || b.Cols() != 0 {
		t.Fatalf("dims = %d,%d, want 0,0", b.Rows(), b.Cols())
	}
}

func TestLoadFromFileMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestCellTokensSplitsBothForms(t *testing.T) {
	if got := cellTokens("* 1 ."); len(got) != 3 {
		t.Fatalf("whitespace-separated: got %d tokens, want 3", len(got))
	}
	if got := cellTokens("*1."); len(got) != 3 {
		t.Fatalf("concatenated: got %d tokens, want 3", len(got))
	}
}
