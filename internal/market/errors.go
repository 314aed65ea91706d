// Package market aggregates raw market samples for a domain/location into a
// single structured insight record.
package market

import "fmt"

// InsufficientDataError reports that too few samples were supplied to
// synthesize a statistic. The caller should gather more data; the condition
// is not retryable as-is.
type InsufficientDataError struct {
	Needed int
	Got    int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient market data: need at least %d sample(s), got %d", e.Needed, e.Got)
}
