// Package parsererror defines the error taxonomy of the ingestion and
// sync layers. Row-level failures never become errors at all, they are
// skips inside the parser, so the types here cover the batch level.
package parsererror

import "fmt"

// EmptyImportError signals that an explicit user-initiated import
// produced no transactions. Unlike a silent partial skip during
// background sync, this is surfaced with format guidance.
type EmptyImportError struct {
	Source string
}

func (e *EmptyImportError) Error() string {
	return fmt.Sprintf("no transactions found in %s: expected columns A=date, B=amount, C=description", e.Source)
}

// FetchError wraps a failed remote fetch with enough context to log and
// continue. A failed origin contributes zero transactions for the
// period; sync carries on for siblings.
type FetchError struct {
	Origin string
	Period string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for origin %s in period %s: %v", e.Origin, e.Period, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
