// Package glob resolves result-file patterns against a file system. Patterns use `filepath.Match` syntax per path
// segment; a `**` segment matches any number of directories, including none.
package glob

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/fs"
)

const recursive = "**"

// Resolver expands patterns into the list of regular files they match.
type Resolver struct {
	FileSystem fs.FileSystem
}

// Resolve expands `pattern` relative to `root`. Absolute patterns ignore the root. The root is a literal prefix and never
// takes part in matching. A pattern without any wildcard is returned as-is, without checking whether it exists. A
// pattern whose start directory does not exist resolves to an empty list. The result is de-duplicated and sorted.
func (r Resolver) Resolve(root, pattern string) ([]string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(pattern), `\`, "/")
	if normalized == "" {
		return nil, errors.NewInputError("no result file pattern provided")
	}

	w := walker{fileSystem: r.FileSystem}
	if !filepath.IsAbs(pattern) && !path.IsAbs(normalized) {
		w.base = filepath.ToSlash(root)
	}

	dir, file := path.Dir(normalized), path.Base(normalized)
	if strings.Contains(file, recursive) {
		dir = path.Join(dir, recursive)
		file = strings.ReplaceAll(file, recursive, "*")
	}

	if !strings.Contains(dir, recursive) && !hasMeta(dir) && !hasMeta(file) {
		return []string{filepath.FromSlash(w.locate(path.Clean(normalized)))}, nil
	}

	if _, err := path.Match(file, ""); err != nil {
		return nil, errors.NewInputError("malformed result file pattern %q: %s", pattern, err)
	}

	dirs, err := w.expand(dir)
	if err != nil {
		return nil, err
	}

	matches := mapset.NewThreadUnsafeSet[string]()
	for _, candidate := range dirs {
		if err := w.collect(candidate, file, matches); err != nil {
			return nil, err
		}
	}

	files := matches.ToSlice()
	sort.Strings(files)

	return files, nil
}

// walker expands pattern paths below a literal base directory. Paths handled by its methods are relative to the base
// unless the base is empty.
type walker struct {
	fileSystem fs.FileSystem
	base       string
}

func (w walker) locate(name string) string {
	if w.base == "" {
		return name
	}

	return path.Join(w.base, name)
}

// expand turns a directory pattern into the list of directories it may refer to. Everything before the first `**` is
// the start directory. The remainder is re-attached to the start directory and to each of its descendants, and
// expanded again until no `**` is left.
func (w walker) expand(pattern string) ([]string, error) {
	before, after, found := strings.Cut(pattern, recursive)
	if !found {
		return w.expandSegments(pattern)
	}

	start := strings.TrimSuffix(before, "/")
	if start == "" {
		start = "."
		if strings.HasPrefix(before, "/") {
			start = "/"
		}
	}
	remainder := strings.TrimPrefix(after, "/")

	starts, err := w.expandSegments(start)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0)
	for _, s := range starts {
		descendants, err := w.descendants(s)
		if err != nil {
			return nil, err
		}

		for _, descendant := range descendants {
			expanded, err := w.expand(path.Join(descendant, remainder))
			if err != nil {
				return nil, err
			}

			dirs = append(dirs, expanded...)
		}
	}

	return dirs, nil
}

// expandSegments resolves single-level wildcards in a directory path. Segments without a wildcard are kept verbatim.
func (w walker) expandSegments(pattern string) ([]string, error) {
	if !hasMeta(pattern) {
		return []string{pattern}, nil
	}

	prefix := ""
	if strings.HasPrefix(pattern, "/") {
		prefix = "/"
	}

	current := []string{prefix}
	for _, segment := range strings.Split(strings.TrimPrefix(pattern, "/"), "/") {
		next := make([]string, 0, len(current))

		for _, dir := range current {
			if !hasMeta(segment) {
				next = append(next, joinSegment(dir, segment))
				continue
			}

			entries, err := w.readDir(joinSegment(dir, "."))
			if err != nil {
				return nil, err
			}

			for _, entry := range entries {
				matched, err := path.Match(segment, entry.Name())
				if err != nil {
					return nil, errors.NewInputError("malformed result file pattern %q: %s", pattern, err)
				}

				if matched && entry.IsDir() {
					next = append(next, joinSegment(dir, entry.Name()))
				}
			}
		}

		current = next
	}

	return current, nil
}

// descendants lists a directory and every directory below it. Symbolic links to directories are not followed.
func (w walker) descendants(dir string) ([]string, error) {
	entries, err := w.readDir(dir)
	if err != nil {
		return nil, err
	}

	if entries == nil {
		if ok, err := w.isDir(dir); err != nil || !ok {
			return nil, err
		}
	}

	dirs := []string{dir}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		children, err := w.descendants(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		dirs = append(dirs, children...)
	}

	return dirs, nil
}

// collect adds the regular files directly inside `dir` that match `file`.
func (w walker) collect(dir, file string, matches mapset.Set[string]) error {
	entries, err := w.readDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		matched, err := path.Match(file, entry.Name())
		if err != nil {
			return errors.NewInputError("malformed result file pattern %q: %s", file, err)
		}

		if !matched {
			continue
		}

		name := filepath.FromSlash(w.locate(path.Join(dir, entry.Name())))

		regular := entry.Type().IsRegular()
		if entry.Type()&os.ModeSymlink != 0 {
			info, err := w.fileSystem.Stat(name)
			regular = err == nil && info.Mode().IsRegular()
		}

		if regular {
			matches.Add(name)
		}
	}

	return nil
}

// readDir lists a directory. Paths that do not exist or are not directories have no entries.
func (w walker) readDir(dir string) ([]os.DirEntry, error) {
	ok, err := w.isDir(dir)
	if err != nil || !ok {
		return nil, err
	}

	location := w.locate(dir)
	entries, err := w.fileSystem.ReadDir(filepath.FromSlash(location))
	if err != nil {
		return nil, errors.NewSystemError("unable to list directory %q: %s", location, err)
	}

	return entries, nil
}

func (w walker) isDir(dir string) (bool, error) {
	location := w.locate(dir)
	info, err := w.fileSystem.Stat(filepath.FromSlash(location))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, errors.NewSystemError("unable to access %q: %s", location, err)
	}

	return info.IsDir(), nil
}

func joinSegment(dir, segment string) string {
	switch dir {
	case "":
		return segment
	case "/":
		return "/" + segment
	default:
		return path.Join(dir, segment)
	}
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}
