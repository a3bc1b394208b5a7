package runner

import "errors"

// Stats captures aggregate information about a run.
type Stats struct {
	// Documents is the number of outcomes.
	Documents int

	// Processed is the number of documents processed without error.
	Processed int

	// Errored is the number of documents that failed to read or process.
	Errored int
}

// Summarize counts outcomes by status.
func Summarize[T any](outcomes []Outcome[T]) Stats {
	stats := Stats{Documents: len(outcomes)}
	for _, o := range outcomes {
		if o.Err != nil {
			stats.Errored++
		} else {
			stats.Processed++
		}
	}
	return stats
}

// Errors joins the per-document errors of outcomes, or returns nil.
func Errors[T any](outcomes []Outcome[T]) error {
	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}
