package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
)

// Document is one unit of work: a file on disk or in-memory text such as a
// catalog record.
type Document struct {
	// Name identifies the document in output (a path or record ID).
	Name string

	// Path is read when Content is nil.
	Path string

	// Content is the document text.
	Content []byte
}

// FileDocuments wraps discovered paths as documents read on demand.
func FileDocuments(paths []string) []Document {
	docs := make([]Document, len(paths))
	for i, p := range paths {
		docs[i] = Document{Name: p, Path: p}
	}
	return docs
}

// Func processes one document. It receives the document with Content loaded.
type Func[T any] func(ctx context.Context, doc Document) (T, error)

// Outcome is the result for one document.
type Outcome[T any] struct {
	Document Document
	Value    T

	// Err is set if the document could not be read or processed.
	Err error
}

// Run applies fn to every document using a pool of opts.Jobs workers.
// Outcomes are returned in input order whatever order workers finish in.
//
// On cancellation Run stops handing out work and returns the outcomes
// completed so far, still in input order, with the context error.
func Run[T any](ctx context.Context, docs []Document, fn Func[T], opts Options) ([]Outcome[T], error) {
	if len(docs) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(docs))

	type indexed struct {
		idx     int
		outcome Outcome[T]
	}

	workCh := make(chan int)
	outCh := make(chan indexed)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				if ctx.Err() != nil {
					return
				}
				outcome := process(ctx, docs[idx], fn)
				select {
				case <-ctx.Done():
					return
				case outCh <- indexed{idx: idx, outcome: outcome}:
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for idx := range docs {
			select {
			case <-ctx.Done():
				return
			case workCh <- idx:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	done := make([]bool, len(docs))
	outcomes := make([]Outcome[T], len(docs))
	for r := range outCh {
		done[r.idx] = true
		outcomes[r.idx] = r.outcome
	}

	if err := ctx.Err(); err != nil {
		partial := make([]Outcome[T], 0, len(docs))
		for idx, ok := range done {
			if ok {
				partial = append(partial, outcomes[idx])
			}
		}
		return partial, fmt.Errorf("run cancelled: %w", err)
	}

	return outcomes, nil
}

func process[T any](ctx context.Context, doc Document, fn Func[T]) Outcome[T] {
	outcome := Outcome[T]{Document: doc}

	if doc.Content == nil && doc.Path != "" {
		content, err := os.ReadFile(doc.Path)
		if err != nil {
			outcome.Err = fmt.Errorf("read %s: %w", doc.Path, err)
			return outcome
		}
		doc.Content = content
		outcome.Document = doc
	}

	value, err := fn(ctx, doc)
	if err != nil {
		outcome.Err = fmt.Errorf("%s: %w", doc.Name, err)
		return outcome
	}
	outcome.Value = value
	return outcome
}
