package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighScoreKeeper loads and persists the best score ever achieved.
type HighScoreKeeper interface {
	// LoadHighScore returns the stored high score, 0 when none exists.
	LoadHighScore() (int, error)
	// SaveHighScore persists score unless a higher one is already stored.
	SaveHighScore(score int) error
}

// HighScoreFile keeps the high score as a decimal integer in a plain text file.
type HighScoreFile struct {
	path string
}

// NewHighScoreFile returns a keeper for the given path. A leading ~ is expanded.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: path}, nil
}

// Path returns the resolved file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// LoadHighScore reads the stored value. A missing file is a zero score, not an error.
func (f *HighScoreFile) LoadHighScore() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score in %s: %w", f.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: negative high score %d in %s", score, f.path)
	}
	return score, nil
}

// SaveHighScore writes max(stored, score). The write goes through a temp file
// and rename so a crash never leaves a truncated file behind.
func (f *HighScoreFile) SaveHighScore(score int) error {
	stored, err := f.LoadHighScore()
	if err != nil {
		// An unreadable file is replaced rather than blocking the save
		stored = 0
	}
	if stored > score {
		score = stored
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".high_score-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // No-op after a successful rename

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace high score file: %w", err)
	}
	return nil
}

var _ HighScoreKeeper = (*HighScoreFile)(nil)

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
