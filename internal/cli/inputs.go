package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/refdeck/internal/logging"
	"github.com/yaklabco/refdeck/pkg/runner"
)

// stdinName names the document read from standard input.
const stdinName = "-"

// inputDocuments turns command arguments into runner documents. "-" reads
// stdin; other arguments are discovered as files or directories. With no
// arguments, stdin is read when readStdin is set, and the working directory
// is discovered otherwise.
func (s *session) inputDocuments(args []string, stdin io.Reader, readStdin bool) ([]runner.Document, error) {
	if len(args) == 0 && readStdin {
		args = []string{stdinName}
	}

	var docs []runner.Document
	if slices.Contains(args, stdinName) {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		docs = append(docs, runner.Document{Name: stdinName, Content: content})
		args = slices.DeleteFunc(slices.Clone(args), func(a string) bool { return a == stdinName })
		if len(args) == 0 {
			return docs, nil
		}
	}

	opts := runner.Options{
		Paths:      args,
		WorkingDir: s.workDir,
		Extensions: runner.DefaultExtensions(),
	}

	s.logger.Debug("discovering documents",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
	)

	paths, err := runner.Discover(s.ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("discover documents: %w", err)
	}
	if len(paths) == 0 && len(docs) == 0 {
		return nil, errors.Join(ErrUsage, errors.New("no documents found"))
	}

	for _, doc := range runner.FileDocuments(paths) {
		doc.Name = s.displayPath(doc.Path)
		docs = append(docs, doc)
	}
	return docs, nil
}

// displayPath shortens p relative to the working directory when it lies
// inside it.
func (s *session) displayPath(p string) string {
	rel, err := filepath.Rel(s.workDir, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return rel
}
