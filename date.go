package doc2tex

import (
	"time"

	"github.com/neslang-05/LaTeX-Convertor/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" → the given time in YYYY-MM-DD format
//   - "auto:FORMAT" → the given time in a custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" → the given time using a named preset (iso, european, us, long)
//   - any other value → returned unchanged (passthrough)
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	return dateutil.ResolveDate(value, t)
}
