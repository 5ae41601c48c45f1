// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file is one secret: the filename is the key and the trimmed file
// contents are the value.
//
// Supported key files: corpus-token (bearer token for --url corpora).
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CorpusToken is the key of the bearer token sent to remote corpus URLs.
const CorpusToken = "corpus-token"

// Secrets maps key names to values.
type Secrets map[string]string

// Get returns fallback when it is non-empty, and otherwise the stored value
// for key (empty if absent). Explicit flags therefore override files.
func (s Secrets) Get(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s[key]
}

// Load reads all regular, non-hidden files in dir. A missing directory is
// not an error. Unreadable files produce a warning on warn and are skipped.
func Load(dir string, warn io.Writer) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}
