package corpus

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDirStoreReadsTextFilesInOrder(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "b.txt"), "[Chorus]\nshe will be loved")
	mustWriteFile(t, filepath.Join(dir, "a.txt"), "this love")
	mustWriteFile(t, filepath.Join(dir, "notes.md"), "ignored")

	docs, err := DirStore{Dir: dir}.Documents(context.Background())
	if err != nil {
		t.Fatalf("Documents() error = %v", err)
	}
	want := []string{"this love", "she will be loved"}
	if !reflect.DeepEqual(docs, want) {
		t.Fatalf("Documents() = %q, want %q", docs, want)
	}
}

func TestDirStoreEmptyDir(t *testing.T) {
	t.Parallel()
	docs, err := DirStore{Dir: t.TempDir()}.Documents(context.Background())
	if err != nil {
		t.Fatalf("Documents() error = %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %q", docs)
	}
}

func TestFileStoreFormats(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	arr := filepath.Join(dir, "songs.json")
	mustWriteFile(t, arr, `[{"title":"Sugar","artist":"Maroon 5","lyrics":"sugar yes please"},{"lyrics":"won't you come"}]`)
	obj := filepath.Join(dir, "wrapped.json")
	mustWriteFile(t, obj, `{"songs":[{"lyrics":"[Intro]\nanimals"}]}`)

	docs, err := FileStore{Path: arr}.Documents(context.Background())
	if err != nil {
		t.Fatalf("array: Documents() error = %v", err)
	}
	if !reflect.DeepEqual(docs, []string{"sugar yes please", "won't you come"}) {
		t.Fatalf("array: unexpected docs %q", docs)
	}

	docs, err = FileStore{Path: obj}.Documents(context.Background())
	if err != nil {
		t.Fatalf("object: Documents() error = %v", err)
	}
	if !reflect.DeepEqual(docs, []string{"animals"}) {
		t.Fatalf("object: unexpected docs %q", docs)
	}
}

func TestFileStoreRejectsGarbage(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.json")
	mustWriteFile(t, path, `"just a string"`)
	if _, err := (FileStore{Path: path}).Documents(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestOpenPicksStore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "c.json")
	txtPath := filepath.Join(dir, "c.lyrics")
	mustWriteFile(t, jsonPath, `[]`)
	mustWriteFile(t, txtPath, "one song")

	tests := []struct {
		path string
		want Store
	}{
		{dir, DirStore{Dir: dir}},
		{jsonPath, FileStore{Path: jsonPath}},
		{txtPath, TextFileStore{Path: txtPath}},
	}
	for _, tc := range tests {
		got, err := Open(tc.path)
		if err != nil {
			t.Fatalf("Open(%s) error = %v", tc.path, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Open(%s) = %#v, want %#v", tc.path, got, tc.want)
		}
	}
	if _, err := Open(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing path")
	}
	if _, err := Open(" "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestMemoryStoreHonoursContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMemoryStore("a").Documents(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestCleanLyrics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"[Verse 1]\nI'm at a payphone\n", "I'm at a payphone"},
		{"(Chorus)\nhey\n(oh, oh)", "hey\n(oh, oh)"},
		{"\r\n[Bridge: Adam]\r\nline one\r\nline two", "line one\nline two"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := CleanLyrics(tc.in); got != tc.want {
			t.Fatalf("CleanLyrics(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
