package pipeline

import (
	"context"
	"fmt"
	"strings"
)

// Sink persists a computed entity in two phases. Prepare does every step that can fail
// without making anything visible; the returned Pending publishes the output.
// Implementations:
// - export.CSVSink, export.XLSXSink (staged files renamed on commit)
// - store.MetricsRepo (open transaction committed on commit)
type Sink interface {
	Name() string
	Prepare(ctx context.Context, result *EntityResult) (Pending, error)
}

// Pending is the prepared output of one sink. Discard is safe to call at any time and
// is a no-op after a successful Commit.
type Pending interface {
	Commit(ctx context.Context) error
	Discard()
}

// Deliver writes result to every sink or to none. All sinks are prepared first; the
// first failure discards everything prepared so far. Commits start only once every sink
// is prepared and the context is still live.
func Deliver(ctx context.Context, result *EntityResult, sinks ...Sink) error {
	pending := make([]Pending, 0, len(sinks))
	defer func() {
		for _, pd := range pending {
			pd.Discard()
		}
	}()

	for _, sink := range sinks {
		pd, err := sink.Prepare(ctx, result)
		if err != nil {
			return fmt.Errorf("%s sink failed for %s: %w", sink.Name(), result.Entity, err)
		}
		pending = append(pending, pd)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("output for %s not committed: %w", result.Entity, err)
	}

	var committed []string
	for i, pd := range pending {
		if err := pd.Commit(ctx); err != nil {
			if len(committed) > 0 {
				return fmt.Errorf("%s sink commit failed for %s after %s committed: %w",
					sinks[i].Name(), result.Entity, strings.Join(committed, ","), err)
			}
			return fmt.Errorf("%s sink commit failed for %s: %w", sinks[i].Name(), result.Entity, err)
		}
		committed = append(committed, sinks[i].Name())
	}
	return nil
}
