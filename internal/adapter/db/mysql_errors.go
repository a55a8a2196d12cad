package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrForeignKeyNoRef = 1452
)

// isDuplicateEntry reports a unique-constraint violation. The unique keys in
// the schema are the authoritative duplicate guard; service-level pre-checks
// only exist for friendlier early rejection.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

func isForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrForeignKeyNoRef
}
