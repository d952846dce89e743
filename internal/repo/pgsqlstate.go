package repo

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

const sqlstateUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The sync pipeline checks existence before inserting; the unique
// index is only the backstop for two runs racing on the same record.
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == sqlstateUniqueViolation
	}
	return false
}
