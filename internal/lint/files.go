package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// isCSS returns true if the file extension is .css.
func isCSS(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".css"
}

// matchesGlob returns true if path matches any of the given glob patterns.
func matchesGlob(patterns []string, path string) bool {
	cleanPath := filepath.Clean(path)
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// ResolveFiles takes positional arguments and returns deduplicated, sorted
// CSS file paths. It supports individual files, directories (recursive
// *.css), and glob patterns with ** support. Returns an error for
// nonexistent paths (that are not glob patterns). Files matching an ignore
// pattern are skipped, except files named explicitly.
func ResolveFiles(args []string, ignore []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, ignore, addFile); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

// resolveArg resolves a single argument (glob, directory, or file) and calls
// addFile for each CSS file found.
func resolveArg(arg string, ignore []string, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, ignore, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return addDirFiles(arg, ignore, addFile)
	}

	// Explicitly named files are never filtered by ignore patterns.
	addFile(arg)
	return nil
}

// resolveGlob expands a glob pattern and adds matching CSS files.
func resolveGlob(pattern string, ignore []string, addFile func(string)) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if matchesGlob(ignore, m) {
			continue
		}
		if info.IsDir() {
			if err := addDirFiles(m, ignore, addFile); err != nil {
				return err
			}
		} else if isCSS(m) {
			addFile(m)
		}
	}
	return nil
}

// addDirFiles walks a directory and adds all CSS files found.
func addDirFiles(dir string, ignore []string, addFile func(string)) error {
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if matchesGlob(ignore, path) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.IsDir() && isCSS(path) {
			addFile(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return nil
}
