package quotes

import (
	"context"
	"errors"

	"github.com/tradesim-dev/tradesim/internal/metrics"
	"github.com/tradesim-dev/tradesim/internal/models"
)

// Instrumented counts lookup outcomes.
type Instrumented struct{ next Provider }

func NewInstrumented(next Provider) *Instrumented { return &Instrumented{next: next} }

func (i *Instrumented) Lookup(ctx context.Context, symbol string) (models.Quote, error) {
	q, err := i.next.Lookup(ctx, symbol)
	switch {
	case err == nil:
		metrics.QuoteLookups.WithLabelValues("ok").Inc()
	case errors.Is(err, models.ErrQuoteNotFound):
		metrics.QuoteLookups.WithLabelValues("not_found").Inc()
	default:
		metrics.QuoteLookups.WithLabelValues("error").Inc()
	}
	return q, err
}
