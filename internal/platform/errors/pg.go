package errors

import (
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the contact store can raise
var codeBySQLState = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,    // unique_violation
	"23503": ErrorCodeInvalidArgument, // foreign_key_violation
	"23502": ErrorCodeValidation,      // not_null_violation
	"23514": ErrorCodeValidation,      // check_violation
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"22P02": ErrorCodeInvalidArgument, // invalid_text_representation
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
	"57014": ErrorCodeUnavailable,     // query_canceled, statement_timeout included
}

// PgError returns the postgres error in err's chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}


func postgresCode(err error) (ErrorCode, bool) {
	pgErr, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, ok := codeBySQLState[pgErr.Code]; ok {
		return c, true
	}
	return ErrorCodeDB, true
}

func publicPostgresMessage(c ErrorCode) string {
	switch c {
	case ErrorCodeDuplicateKey:
		return "already exists"
	case ErrorCodeValidation, ErrorCodeInvalidArgument:
		return "invalid value"
	case ErrorCodeUnavailable:
		return "database unavailable"
	}
	return InternalMessage
}

// postgresField names the offending column, falling back to the constraint's middle token
// contacts_first_name_check gives first_name
func postgresField(err error) string {
	pgErr, ok := PgError(err)
	if !ok {
		return ""
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return col
	}
	parts := strings.Split(pgErr.ConstraintName, "_")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], "_")
}
