package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". A nil error yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Rule records a validation rule name under "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Attribute records the validated attribute under "attribute".
func Attribute(name string) slog.Attr {
	return slog.String("attribute", name)
}

// Collection records a lookup collection under "collection".
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

// Driver records the lookup store driver under "driver".
func Driver(name string) slog.Attr {
	return slog.String("driver", name)
}

// RunID records a run identifier under "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Count records n under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
