package patcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoAnchor is returned when the entry file contains no recognized
// initialization line to insert after. The file is left untouched.
var ErrNoAnchor = errors.New("no plugin load anchor found")

// Statement prefixes (on the trimmed line) that anchor an insertion.
var anchorPrefixes = []string{
	"nonebot.load",
	"nonebot.init",
}

// InsertLoadStatement inserts statement on its own line immediately after
// the last line of the file whose trimmed content starts with a recognized
// initialization-call prefix.
//
// The rewrite goes through a temp file in the same directory and an atomic
// rename, preserving the original file mode. When no anchor line exists the
// file is not modified and the returned error wraps ErrNoAnchor.
func InsertLoadStatement(path, statement string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	lines := splitLines(string(data))

	anchor := findAnchor(lines)
	if anchor < 0 {
		return fmt.Errorf("%s: %w", path, ErrNoAnchor)
	}

	patched := splice(lines, anchor, statement)

	return writeAtomic(path, []byte(patched), info.Mode().Perm())
}

// findAnchor scans from the end of the file and returns the index of the
// first matching line, or -1 when no line matches.
func findAnchor(lines []string) int {
	for i := len(lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		for _, prefix := range anchorPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				return i
			}
		}
	}
	return -1
}

// splice rebuilds the file content with statement inserted after the anchor
// line, keeping the original lines byte-for-byte.
func splice(lines []string, anchor int, statement string) string {
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if i == anchor {
			// Anchor may be a final line without a trailing newline.
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
			b.WriteString(statement)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// splitLines splits content into lines that retain their line terminators,
// so reassembly preserves the original bytes exactly.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	// SplitAfter yields a trailing "" when content ends with a newline.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// writeAtomic stages content in a temp file next to path and renames it
// into place, so a crash mid-write cannot truncate the original.
func writeAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
