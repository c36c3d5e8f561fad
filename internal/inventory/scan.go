package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// desktopDirs returns the standard desktop-entry directories:
// the user data dir plus the two system application directories.
func desktopDirs() []string {
	var dirs []string
	if data := os.Getenv("XDG_DATA_HOME"); data != "" {
		dirs = append(dirs, filepath.Join(data, "applications"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}
	dirs = append(dirs,
		"/usr/share/applications",
		"/usr/local/share/applications",
	)
	return dirs
}

// programDirs returns the standard program-install directories on the
// Windows shape.
func programDirs() []string {
	dirs := make([]string, 0, 3)
	for _, pair := range [][2]string{
		{"PROGRAMFILES", `C:\Program Files`},
		{"PROGRAMFILES(X86)", `C:\Program Files (x86)`},
		{"LOCALAPPDATA", `C:\Users\Default\AppData\Local`},
	} {
		dir := os.Getenv(pair[0])
		if dir == "" {
			dir = pair[1]
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// scanDesktopDir collects one entry per desktop-entry file directly in
// dir. The file stem is both name and identity; the full path is the
// exec command, re-resolved by the launcher at execution time.
func scanDesktopDir(dir string) []Entry {
	if !exists(dir) {
		return nil
	}
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		name := item.Name()
		if !strings.HasSuffix(name, ".desktop") {
			continue
		}
		stem := strings.TrimSuffix(name, ".desktop")
		if stem == "" {
			continue
		}
		entries = append(entries, Entry{
			Name: stem,
			ID:   stem,
			Exec: filepath.Join(dir, name),
		})
	}
	return entries
}

// scanProgramDir collects entries from one program-install directory:
// every executable directly inside each immediate subfolder becomes
// "<folder> - <stem>", and the subfolder itself becomes an entry that
// opens in the file manager.
func scanProgramDir(dir string) []Entry {
	if !exists(dir) {
		return nil
	}
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		folder := item.Name()
		folderPath := filepath.Join(dir, folder)

		subItems, err := os.ReadDir(folderPath)
		if err == nil {
			for _, sub := range subItems {
				if sub.IsDir() {
					continue
				}
				subName := sub.Name()
				if !strings.EqualFold(filepath.Ext(subName), ".exe") {
					continue
				}
				stem := strings.TrimSuffix(subName, filepath.Ext(subName))
				entries = append(entries, Entry{
					Name: fmt.Sprintf("%s - %s", folder, stem),
					ID:   folder,
					Exec: filepath.Join(folderPath, subName),
				})
			}
		}

		entries = append(entries, Entry{
			Name: folder,
			ID:   folder,
			Exec: fmt.Sprintf("explorer %q", folderPath),
		})
	}
	return entries
}
