package repository

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Executor is the handle a repository borrows for a single call.
// Both *sqlx.DB and *sqlx.Tx satisfy it.
type Executor interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// Clock returns the current time. Repositories stamp creation times with it.
type Clock func() time.Time

// psql renders $n placeholders, which both supported drivers accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func millis(c Clock) int64 {
	if c == nil {
		return time.Now().UnixMilli()
	}
	return c().UnixMilli()
}
