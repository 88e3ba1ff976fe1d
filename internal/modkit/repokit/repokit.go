// Package repokit is the seam between repositories and the store
package repokit

import (
	"context"
	"fmt"
	"time"

	"addressbook/internal/platform/store"
)

type (
	// Queryer runs statements, inside or outside a transaction
	Queryer = store.RowQuerier
	// TxRunner is a Queryer that can also open a transaction
	TxRunner = store.TxRunner
	// Rows is a query result set
	Rows = store.Rows
	// Row is a single-row result
	Row = store.Row
	// CommandTag reports what a statement did
	CommandTag = store.CommandTag
)

// Binder binds a repo to the Queryer of the current transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain func to Binder
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// DefaultGuardTimeout bounds MustGuard when ctx carries no deadline
const DefaultGuardTimeout = 5 * time.Second

// MustGuard pings every backend of st and panics with the joined failure
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultGuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
