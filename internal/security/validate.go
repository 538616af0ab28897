// Package security holds the checks applied to user-supplied paths and sizes
// before any command touches the filesystem.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sm-menu/cli/internal/clierr"
)

// MaxFileSize is the largest file commands accept, in bytes (100 MiB).
const MaxFileSize int64 = 100 * 1024 * 1024

// ValidateFilePath resolves path against the working directory and returns
// its canonical form. See ValidateFilePathIn.
func ValidateFilePath(path string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", clierr.FromIO(err)
	}
	return ValidateFilePathIn(cwd, path)
}

// ValidateFilePathIn confines path to base:
//
//   - blank input or any ".." component is InvalidInput
//   - symlinks are followed through the longest existing prefix of the
//     path, dangling links included; a result outside base is
//     PermissionDenied
//   - a target inside base that does not exist is FileNotFound
//
// Containment is checked per path component, never by string prefix.
func ValidateFilePathIn(base, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", clierr.InvalidInput("File path cannot be empty")
	}
	if hasParentComponent(path) {
		return "", clierr.InvalidInput("Path traversal not allowed: " + path)
	}

	root, err := canonicalBase(base)
	if err != nil {
		return "", err
	}

	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(root, full)
	}

	resolved, err := resolveExisting(filepath.Clean(full))
	if err != nil {
		return "", clierr.FromIO(err)
	}
	if !within(root, resolved) {
		return "", clierr.PermissionDenied("Access outside current directory not allowed: " + path)
	}

	if _, err := os.Stat(resolved); err != nil {
		if os.IsNotExist(err) {
			return "", &clierr.Error{
				Kind:    clierr.KindFileNotFound,
				Message: fmt.Sprintf("%s: %v", path, err),
				Err:     err,
			}
		}
		return "", clierr.FromIO(err)
	}
	return resolved, nil
}

// maxLinkHops bounds how many dangling symlinks resolveExisting follows.
const maxLinkHops = 40

var errTooManyLinks = errors.New("too many levels of symbolic links")

// resolveExisting evaluates the symlinks of the longest existing prefix of
// p and re-joins the missing tail. A dangling symlink on the way is replaced
// by its target.
func resolveExisting(p string) (string, error) {
	var tail []string
	cur := p
	for hops := 0; ; {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			return filepath.Join(append([]string{resolved}, tail...)...), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}

		if info, lerr := os.Lstat(cur); lerr == nil && info.Mode()&os.ModeSymlink != 0 {
			if hops++; hops > maxLinkHops {
				return "", errTooManyLinks
			}
			target, err := os.Readlink(cur)
			if err != nil {
				return "", err
			}
			if !filepath.IsAbs(target) {
				target = filepath.Join(filepath.Dir(cur), target)
			}
			cur = filepath.Clean(target)
			continue
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return p, nil
		}
		tail = append([]string{filepath.Base(cur)}, tail...)
		cur = parent
	}
}

// ValidateFileSize rejects sizes above MaxFileSize.
func ValidateFileSize(size int64) error {
	if size > MaxFileSize {
		return clierr.Execution(fmt.Sprintf("File too large: %d bytes (maximum: %d bytes)", size, MaxFileSize))
	}
	return nil
}

// SanitizeForDisplay strips control characters other than newline and tab.
func SanitizeForDisplay(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func hasParentComponent(path string) bool {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	for _, part := range parts {
		if part == ".." {
			return true
		}
	}
	return false
}

func canonicalBase(base string) (string, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", clierr.FromIO(err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", clierr.FromIO(err)
	}
	return resolved, nil
}

// within reports whether target equals root or lies below it.
func within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
