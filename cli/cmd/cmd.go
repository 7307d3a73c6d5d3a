package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/klauspost/readahead"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// sourceFiles reads a list of input files in order, followed by stdin when
// requested. Each file is read at most once.
type sourceFiles struct {
	files    []*os.File
	hasStdin bool
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// openSourceFiles opens the given source paths. It deduplicates files by
// resolving symlinks and comparing device/inode pairs. All occurrences of
// "-" are replaced with a single stdin reader placed last.
func openSourceFiles(sources []string) (*sourceFiles, error) {
	var srcs sourceFiles

	seen := make(map[fileKey]struct{})

	stdinKey, stdinOK := statKey(os.Stdin.Stat())

	for _, src := range sources {
		if src == stdinSource {
			srcs.hasStdin = true

			continue
		}

		file, key, err := openFile(src)
		if err != nil {
			srcs.Close()

			return nil, ErrReadInput.With(slog.String("file", src)).Wrap(err)
		}

		if key != nil {
			if stdinOK && *key == stdinKey {
				srcs.hasStdin = true
				file.Close()

				continue
			}

			if _, dup := seen[*key]; dup {
				file.Close()

				continue
			}

			seen[*key] = struct{}{}
		}

		srcs.files = append(srcs.files, file)
	}

	return &srcs, nil
}

// openFile opens the file at path after resolving it to an absolute,
// symlink-free path. The key is nil when the platform reports no inode.
func openFile(path string) (*os.File, *fileKey, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, err
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, nil, err
	}

	key, ok := statKey(file.Stat())
	if !ok {
		return file, nil, nil
	}

	return file, &key, nil
}

// statKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func statKey(info os.FileInfo, err error) (key fileKey, ok bool) {
	if err != nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}

// readers returns the sources in reading order.
func (s *sourceFiles) readers() []io.Reader {
	readers := make([]io.Reader, 0, len(s.files)+1)
	for _, f := range s.files {
		readers = append(readers, f)
	}

	if s.hasStdin {
		readers = append(readers, os.Stdin)
	}

	return readers
}

// Close closes every opened file. Stdin is left open.
func (s *sourceFiles) Close() error {
	var first error

	for _, f := range s.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}

	s.files = nil

	return first
}

// line is one non-empty input line with its position.
type line struct {
	source string
	number int
	text   string
}

// scanLines calls fn for each non-empty line of every source in order,
// stopping at the first error returned by fn or when ctx is done.
func (s *sourceFiles) scanLines(ctx context.Context, fn func(line) error) error {
	names := make([]string, 0, len(s.files)+1)
	for _, f := range s.files {
		names = append(names, f.Name())
	}

	if s.hasStdin {
		names = append(names, stdinSource)
	}

	for i, r := range s.readers() {
		if err := scanReader(ctx, names[i], r, fn); err != nil {
			return err
		}
	}

	return nil
}

func scanReader(ctx context.Context, name string, r io.Reader, fn func(line) error) error {
	ra := readahead.NewReader(r)
	defer ra.Close()

	scanner := bufio.NewScanner(ra)

	for n := 1; scanner.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if err := fn(line{source: name, number: n, text: text}); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return ErrReadInput.With(slog.String("file", name)).Wrap(err)
	}

	return nil
}

// inputs yields the command-line expressions, then the lines of files.
// With neither given, it reads stdin.
func inputs(ctx context.Context, exprs, files []string, fn func(line) error) error {
	for i, text := range exprs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := fn(line{source: "arg", number: i + 1, text: text}); err != nil {
			return err
		}
	}

	if len(exprs) > 0 && len(files) == 0 {
		return nil
	}

	if len(files) == 0 {
		files = []string{stdinSource}
	}

	srcs, err := openSourceFiles(files)
	if err != nil {
		return err
	}
	defer srcs.Close()

	return srcs.scanLines(ctx, fn)
}
