package schema

import "fmt"

// DataIntegrityError reports a record that reached the aggregator while
// violating the parser's construction invariants. It indicates a bug in the
// parser/aggregator contract, not bad repository input, and fails the run.
type DataIntegrityError struct {
	Index  int    // Position of the offending record in the aggregated slice
	Reason string // Which invariant was violated
}

// Error implements the error interface.
func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity violation at record %d: %s", e.Index, e.Reason)
}
