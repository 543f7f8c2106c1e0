package repository

import (
	"github.com/go-sql-driver/mysql"

	"github.com/tapp-eng/campaign-core/apperror"
)

// MySQL server error numbers relevant to the per-participant lock.
const (
	errLockWaitTimeout = 1205
	errLockNowait      = 3572
)

// mapLockError converts MySQL lock contention errors into the retryable Busy
// kind; everything else passes through unchanged.
func mapLockError(err error) error {
	if err == nil {
		return nil
	}
	mysqlErr, ok := err.(*mysql.MySQLError)
	if !ok {
		return err
	}
	switch mysqlErr.Number {
	case errLockWaitTimeout, errLockNowait:
		return apperror.Wrap(apperror.KindBusy, "participant row is locked", err)
	default:
		return err
	}
}
