// Package superlative answers "who has the most X" questions by mapping a
// fixed vocabulary of statistic phrases onto table columns and fetching the
// top-ranked row.
package superlative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aferrando/golbot/internal/domain/model"
	"github.com/aferrando/golbot/internal/domain/text"
)

// Store is the narrow port the resolver needs: the top row of a column,
// ordered descending, with the display name already resolved through the
// right key for the table.
type Store interface {
	Top(ctx context.Context, table, column string) (model.Superlative, error)
}

// ErrNoRows is returned by stores when a table holds no data for a column.
var ErrNoRows = errors.New("no rows for column")

// Resolver matches statistic phrases and formats the top-entity answer.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve scans the vocabulary in declared order and answers from the first
// phrase contained in the question. It returns "" when no phrase matches,
// and a fixed no-information sentence when the target table is empty.
func (r *Resolver) Resolve(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	for _, rule := range vocabulary {
		if !strings.Contains(q, rule.Phrase) {
			continue
		}
		top, err := r.store.Top(ctx, rule.Table, rule.Column)
		if errors.Is(err, ErrNoRows) {
			return fmt.Sprintf("No se encuentra información sobre %s.", rule.Label), nil
		}
		if err != nil {
			return "", fmt.Errorf("top %s.%s: %w", rule.Table, rule.Column, err)
		}
		return fmt.Sprintf("El %s con más %s es %s, con %d %s.",
			rule.Subject, rule.Label, top.Name, top.Value, rule.Label), nil
	}
	return "", nil
}
