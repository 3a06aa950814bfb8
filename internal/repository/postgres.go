package repository

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeExclusionViolation  = "23P01"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// pgError returns the postgres error behind err, or nil.
func pgError(err error) *pq.Error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

func isCode(err error, code string) bool {
	pgErr := pgError(err)
	return pgErr != nil && string(pgErr.Code) == code
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
