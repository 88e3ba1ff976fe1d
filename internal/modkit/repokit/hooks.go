package repokit

import (
	"context"
	"fmt"
	"time"
)

// BeginHook runs first inside every transaction, on the transaction
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks runs hooks in order at the start of each Tx on inner
// a failing hook aborts the transaction; statements outside Tx reach inner untouched
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	if len(hooks) == 0 {
		return inner
	}
	return &hooked{TxRunner: inner, hooks: hooks}
}

type hooked struct {
	TxRunner
	hooks []BeginHook
}

func (h *hooked) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hook := range h.hooks {
			if err := hook(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// StatementTimeout sets a transaction local statement_timeout of d; d <= 0 does nothing
func StatementTimeout(d time.Duration) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		if d <= 0 {
			return nil
		}
		_, err := q.Exec(ctx, `select set_config('statement_timeout', $1, true)`, fmt.Sprintf("%dms", d.Milliseconds()))
		return err
	}
}
