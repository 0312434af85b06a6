package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file is empty config", func(t *testing.T) {
		c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if c.Corpus != "" || c.MaxTokens != nil {
			t.Fatalf("expected zero config, got %+v", c)
		}
	})

	t.Run("parses fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "corpus: /lyrics\nmode: unigram\nmax_tokens: 120\nwords_per_line: 6\nlines_per_stanza: 0\nserver_address: 0.0.0.0:9000\n"
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		c, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if c.Corpus != "/lyrics" || c.Mode != "unigram" || c.ServerAddress != "0.0.0.0:9000" {
			t.Fatalf("unexpected config: %+v", c)
		}
		if c.MaxTokens == nil || *c.MaxTokens != 120 {
			t.Fatalf("unexpected max_tokens: %v", c.MaxTokens)
		}

		sc := serviceConfig(c)
		if sc.Layout.WordsPerLine != 6 || sc.Layout.LinesPerStanza != 0 || sc.DefaultMaxTokens != 120 {
			t.Fatalf("unexpected service config: %+v", sc)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("mode: [unclosed"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}
