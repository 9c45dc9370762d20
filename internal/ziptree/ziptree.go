// Package ziptree lists a zip archive held in memory as a nested tree, the
// way a file browser shows it: folders first, name-sorted, with humanized
// sizes and modification times. It also extracts single entries into a
// scoped temporary directory for opening with an external tool.
package ziptree

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

type Entry struct {
	Name     string
	Path     string
	Dir      bool
	Size     uint64
	Modified time.Time
	Children []*Entry
}

type Tree struct {
	reader  *zip.Reader
	entries []*Entry
}

// Parse opens a zip archive from raw bytes and builds the entry tree.
func Parse(data []byte) (*Tree, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}

	t := &Tree{reader: zr}
	for _, f := range zr.File {
		name := strings.TrimSuffix(f.Name, "/")
		if name == "" {
			continue
		}
		parts := strings.Split(name, "/")
		t.insert(parts, f)
	}
	sortEntries(t.entries)
	return t, nil
}

func (t *Tree) Entries() []*Entry { return t.entries }

// insert walks the folder chain of one archive member, creating folder
// entries once, then hangs the file (or marks the leaf as a folder for
// explicit directory members).
func (t *Tree) insert(parts []string, f *zip.File) {
	children := &t.entries
	prefix := ""
	for i, part := range parts {
		prefix = filepath.ToSlash(filepath.Join(prefix, part))
		last := i == len(parts)-1
		if last && !f.FileInfo().IsDir() {
			*children = append(*children, &Entry{
				Name:     part,
				Path:     prefix,
				Size:     f.UncompressedSize64,
				Modified: f.Modified,
			})
			return
		}
		dir := findChild(*children, part, true)
		if dir == nil {
			dir = &Entry{Name: part, Path: prefix, Dir: true}
			*children = append(*children, dir)
		}
		children = &dir.Children
	}
}

func findChild(entries []*Entry, name string, dir bool) *Entry {
	for _, e := range entries {
		if e.Name == name && e.Dir == dir {
			return e
		}
	}
	return nil
}

func sortEntries(entries []*Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return entries[i].Name < entries[j].Name
	})
	for _, e := range entries {
		sortEntries(e.Children)
	}
}

// Row is one line of the flattened tree, ready for fixed-width rendering.
type Row struct {
	Depth int
	Entry *Entry
}

// Flatten lists the tree depth-first in display order.
func (t *Tree) Flatten() []Row {
	var rows []Row
	var walk func(entries []*Entry, depth int)
	walk = func(entries []*Entry, depth int) {
		for _, e := range entries {
			rows = append(rows, Row{Depth: depth, Entry: e})
			walk(e.Children, depth+1)
		}
	}
	walk(t.entries, 0)
	return rows
}

// Extract copies one archive member into a fresh temporary directory and
// returns the extracted path plus a cleanup function that removes the
// directory. The directory lives only for this one operation; callers must
// run cleanup when they are done with the file.
func (t *Tree) Extract(path string) (string, func(), error) {
	var member *zip.File
	for _, f := range t.reader.File {
		if strings.TrimSuffix(f.Name, "/") == path && !f.FileInfo().IsDir() {
			member = f
			break
		}
	}
	if member == nil {
		return "", nil, fmt.Errorf("no such archive member: %s", path)
	}

	dir, err := os.MkdirTemp("", "clipx-zip-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(dir) }

	dst := filepath.Join(dir, filepath.Base(path))
	out, err := os.Create(dst)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	defer out.Close()

	rc, err := member.Open()
	if err != nil {
		cleanup()
		return "", nil, err
	}
	defer rc.Close()

	if _, err := io.Copy(out, rc); err != nil {
		cleanup()
		return "", nil, err
	}
	return dst, cleanup, nil
}

// FormatSize renders a byte count for the Size column.
func FormatSize(size uint64) string {
	return humanize.IBytes(size)
}

// FormatDate renders a modification time for the Modified column.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006/01/02, 15:04:05")
}
