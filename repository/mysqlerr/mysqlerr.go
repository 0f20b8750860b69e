// Package mysqlerr classifies MySQL driver errors the application layer needs
// to tell apart from plain failures.
package mysqlerr

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	codeDuplicateEntry  = 1062
	codeLockWaitTimeout = 1205
	codeDeadlock        = 1213
)

// IsDuplicateEntry reports whether err is a MySQL duplicate-key violation,
// e.g. on a unique movement or registry code.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == codeDuplicateEntry
}

// IsLockContention reports whether err is a lock wait timeout or a deadlock
// rollback. Either way the transaction aborted without applying anything, so
// the caller may safely retry.
func IsLockContention(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	return mysqlErr.Number == codeLockWaitTimeout || mysqlErr.Number == codeDeadlock
}
