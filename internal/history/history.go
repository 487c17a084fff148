// Package history keeps the interactive command history in a plain text
// file, one command per line. The file is read once at startup and written
// back with the temp-file, fsync, rename pattern on Flush.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// History is the in-memory command list backed by a file.
type History struct {
	path  string
	limit int
	lines []string
	dirty bool
}

// Load reads the history file at path, creating it (and its directory) if it
// does not exist. Only the newest limit lines are kept; limit <= 0 keeps none.
func Load(path string, limit int) (*History, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history path is required")
	}
	h := &History{path: path, limit: limit}

	lines, err := readLines(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			return nil, fmt.Errorf("creating history file: %w", err)
		}
		return h, nil
	}
	if err != nil {
		return nil, err
	}

	h.lines = lines
	h.trim()
	return h, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return lines, nil
}

// Path returns the backing file.
func (h *History) Path() string { return h.path }

// Lines returns a copy of the remembered commands, oldest first.
func (h *History) Lines() []string {
	return append([]string(nil), h.lines...)
}

// Add remembers a command. Blank lines are ignored.
func (h *History) Add(line string) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}
	h.lines = append(h.lines, line)
	h.dirty = true
	h.trim()
}

func (h *History) trim() {
	limit := max(h.limit, 0)
	if len(h.lines) > limit {
		h.lines = append([]string(nil), h.lines[len(h.lines)-limit:]...)
		h.dirty = true
	}
}

// Flush writes the remembered commands back to the file. It is a no-op when
// nothing changed since Load or the previous Flush.
func (h *History) Flush() error {
	if !h.dirty {
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(h.path), ".history-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, line := range h.lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing history: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, h.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	h.dirty = false
	return nil
}
