package query

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	filePrefix = "file:"

	// perDirFileCap bounds matches taken from any single directory so one
	// crowded folder cannot dominate the list.
	perDirFileCap = 5

	// totalFileCap bounds the overall list, applied after sorting.
	totalFileCap = 8
)

// userFileDirNames are the home subdirectories searched, in order.
var userFileDirNames = []string{
	"Downloads", "Documents", "Desktop", "Pictures", "Music", "Videos",
}

// FileInterpreter handles the "file:" prefix, searching a fixed set of
// user directories for filenames containing the term. The search is
// shallow: only direct children of each directory are considered.
type FileInterpreter struct {
	dirs []string
}

// NewFileInterpreter searches the standard user directories under home.
func NewFileInterpreter(home string) *FileInterpreter {
	dirs := make([]string, 0, len(userFileDirNames))
	for _, name := range userFileDirNames {
		dirs = append(dirs, filepath.Join(home, name))
	}
	return &FileInterpreter{dirs: dirs}
}

// NewFileInterpreterDirs searches exactly the given directories.
func NewFileInterpreterDirs(dirs []string) *FileInterpreter {
	return &FileInterpreter{dirs: dirs}
}

var _ Interpreter = (*FileInterpreter)(nil)

func (f *FileInterpreter) Name() string { return "file" }

func (f *FileInterpreter) Interpret(ctx context.Context, query string) ([]Result, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(trimmed, filePrefix) {
		return nil, nil
	}
	term := strings.TrimSpace(trimmed[len(filePrefix):])
	if term == "" {
		return []Result{ShellCommandResult("Search files...")}, nil
	}

	needle := strings.ToLower(term)
	var paths []string
	for _, dir := range f.dirs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		paths = append(paths, matchesInDir(dir, needle)...)
	}

	// Shorter names first: the tersest match is usually the intended one.
	sort.SliceStable(paths, func(i, j int) bool {
		return len(filepath.Base(paths[i])) < len(filepath.Base(paths[j]))
	})
	if len(paths) > totalFileCap {
		paths = paths[:totalFileCap]
	}

	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, FileResult(p))
	}
	return results, nil
}

// matchesInDir returns up to perDirFileCap file paths in dir whose names
// contain needle, case-insensitively. Unreadable directories yield
// nothing; a missing Music folder is not an error worth reporting.
func matchesInDir(dir, needle string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.Contains(strings.ToLower(e.Name()), needle) {
			out = append(out, filepath.Join(dir, e.Name()))
			if len(out) == perDirFileCap {
				break
			}
		}
	}
	return out
}
