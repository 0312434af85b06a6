// Package corpus provides read-only sources of raw song lyrics.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Store yields the raw documents to train on, one per song. An empty result
// is valid; training will then report an empty corpus.
type Store interface {
	Documents(ctx context.Context) ([]string, error)
}

// Song is one record of a JSON corpus file.
type Song struct {
	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
	Lyrics string `json:"lyrics"`
}

// MemoryStore serves a fixed set of documents.
type MemoryStore struct {
	docs []string
}

func NewMemoryStore(docs ...string) *MemoryStore {
	return &MemoryStore{docs: append([]string(nil), docs...)}
}

func (s *MemoryStore) Documents(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), s.docs...), nil
}

// DirStore treats every *.txt file in Dir as one song, read in name order.
type DirStore struct {
	Dir string
}

func (s DirStore) Documents(ctx context.Context) ([]string, error) {
	ents, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	docs := make([]string, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		docs = append(docs, CleanLyrics(string(data)))
	}
	return docs, nil
}

// FileStore reads a JSON corpus: either an array of songs or an object with
// a "songs" array.
type FileStore struct {
	Path string
}

func (s FileStore) Documents(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	songs, err := decodeSongs(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(s.Path), err)
	}
	docs := make([]string, 0, len(songs))
	for _, song := range songs {
		docs = append(docs, CleanLyrics(song.Lyrics))
	}
	return docs, nil
}

func decodeSongs(data []byte) ([]Song, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}
	switch trimmed[0] {
	case '[':
		var songs []Song
		if err := json.Unmarshal(data, &songs); err != nil {
			return nil, err
		}
		return songs, nil
	case '{':
		var wrapped struct {
			Songs []Song `json:"songs"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, err
		}
		return wrapped.Songs, nil
	default:
		return nil, errors.New("expected array or object")
	}
}

// TextFileStore serves a single plain-text file as one document.
type TextFileStore struct {
	Path string
}

func (s TextFileStore) Documents(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return []string{CleanLyrics(string(data))}, nil
}

// Open picks a store for path: a directory of .txt songs, a .json corpus,
// or a single text file.
func Open(path string) (Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("corpus path is empty")
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	switch {
	case st.IsDir():
		return DirStore{Dir: path}, nil
	case strings.HasSuffix(strings.ToLower(path), ".json"):
		return FileStore{Path: path}, nil
	default:
		return TextFileStore{Path: path}, nil
	}
}
