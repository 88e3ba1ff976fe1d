package store

import "context"

// Affected reads an affected row count returned as a scalar by a write function
// a NULL result counts as zero
func Affected(ctx context.Context, q RowQuerier, sql string, args ...any) (int, error) {
	var n *int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	if n == nil {
		return 0, nil
	}
	return int(*n), nil
}

// Each streams a query result through fn, one row at a time
// rows are closed before Each returns; fn errors stop iteration
func Each(ctx context.Context, q RowQuerier, fn func(Row) error, sql string, args ...any) error {
	rs, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rs.Close()

	r := &rowFromRows{rows: rs}
	for rs.Next() {
		if err := fn(r); err != nil {
			return err
		}
	}
	return rs.Err()
}

// rowFromRows gives a Row facade over a current Rows position
type rowFromRows struct{ rows Rows }

func (r *rowFromRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
