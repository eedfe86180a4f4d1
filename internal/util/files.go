package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// Timestamp formats now for artifact filenames, e.g. 20250131_142501.
func Timestamp(now time.Time) string {
	return now.Format(timestampLayout)
}

// StaticURL maps a file under staticDir to its public /static URL.
func StaticURL(staticDir, path string) (string, error) {
	rel, err := filepath.Rel(staticDir, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside %s", path, staticDir)
	}
	return "/static/" + filepath.ToSlash(rel), nil
}

// WriteFile creates path and hands the open file to write. Close errors are
// returned when write succeeded.
func WriteFile(path string, write func(f *os.File) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func ClampRunes(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
