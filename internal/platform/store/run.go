package store

import (
	"context"

	"addressbook/internal/platform/logger"
)

// Scoped runs exactly one logical operation inside a transaction on tx
// the operation sees a context detached from caller cancellation so a started
// operation runs to completion or failure; request scoped values stay visible
// failures are logged with op and returned as the original error value
func Scoped[T any](ctx context.Context, tx TxRunner, op string, fn func(ctx context.Context, q RowQuerier) (T, error)) (T, error) {
	ctx = logger.WithOp(context.WithoutCancel(ctx), op)

	var out T
	err := tx.Tx(ctx, func(q RowQuerier) error {
		v, err := fn(ctx, q)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		logger.C(ctx).Error().Err(err).Msg("store operation failed, rolled back")
		var zero T
		return zero, err
	}
	return out, nil
}
