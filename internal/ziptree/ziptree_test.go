package ziptree

import (
	"archive/zip"
	"bytes"
	"os"
	"testing"
	"time"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParseNestedTree(t *testing.T) {
	data := buildZip(t, map[string]string{
		"readme.txt":        "top",
		"docs/intro.md":     "intro",
		"docs/deep/more.md": "more",
		"docs/other.md":     "other",
	})

	tree, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	top := tree.Entries()
	if len(top) != 2 {
		t.Fatalf("expected 2 top-level entries, got %d", len(top))
	}
	// Folders sort before files.
	if !top[0].Dir || top[0].Name != "docs" {
		t.Errorf("expected docs/ first, got %+v", top[0])
	}
	if top[1].Dir || top[1].Name != "readme.txt" {
		t.Errorf("expected readme.txt second, got %+v", top[1])
	}

	docs := top[0].Children
	if len(docs) != 3 {
		t.Fatalf("expected 3 entries under docs, got %d", len(docs))
	}
	if !docs[0].Dir || docs[0].Name != "deep" {
		t.Errorf("expected deep/ first under docs, got %+v", docs[0])
	}

	// The same folder must not be created twice.
	dirCount := 0
	for _, e := range top {
		if e.Dir && e.Name == "docs" {
			dirCount++
		}
	}
	if dirCount != 1 {
		t.Errorf("expected docs folder once, got %d", dirCount)
	}
}

func TestFlatten(t *testing.T) {
	data := buildZip(t, map[string]string{
		"a/b.txt": "b",
		"c.txt":   "c",
	})
	tree, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	rows := tree.Flatten()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Entry.Name != "a" || rows[0].Depth != 0 {
		t.Errorf("unexpected row 0: %+v", rows[0])
	}
	if rows[1].Entry.Name != "b.txt" || rows[1].Depth != 1 {
		t.Errorf("unexpected row 1: %+v", rows[1])
	}
	if rows[2].Entry.Name != "c.txt" || rows[2].Depth != 0 {
		t.Errorf("unexpected row 2: %+v", rows[2])
	}
}

func TestExtract(t *testing.T) {
	data := buildZip(t, map[string]string{"dir/file.txt": "payload"})
	tree, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	path, cleanup, err := tree.Extract("dir/file.txt")
	if err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "payload" {
		t.Errorf("unexpected extracted content %q", content)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected cleanup to remove the extracted file")
	}
}

func TestExtractMissing(t *testing.T) {
	tree, err := Parse(buildZip(t, map[string]string{"a.txt": "a"}))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := tree.Extract("nope.txt"); err == nil {
		t.Error("expected error for missing member")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not a zip")); err == nil {
		t.Error("expected error for non-zip data")
	}
}

func TestEmptyArchive(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	tree, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Entries()) != 0 {
		t.Errorf("expected no entries, got %d", len(tree.Entries()))
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatSize(0); got != "0 B" {
		t.Errorf("unexpected size %q", got)
	}
	if got := FormatSize(2048); got != "2.0 KiB" {
		t.Errorf("unexpected size %q", got)
	}
	when := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	if got := FormatDate(when); got != "2021/03/04, 05:06:07" {
		t.Errorf("unexpected date %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("expected empty string for zero time, got %q", got)
	}
}
