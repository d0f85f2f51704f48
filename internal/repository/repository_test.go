package repository

import "database/sql"

// execResult is a canned sql.Result for mocked ExecContext calls. The value
// is the number of affected rows.
type execResult int64

func (r execResult) LastInsertId() (int64, error) { return 0, nil }
func (r execResult) RowsAffected() (int64, error) { return int64(r), nil }

var _ sql.Result = execResult(0)
