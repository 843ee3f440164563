package repository

import (
	"errors"

	"concierge/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	return pqCode(err) == constant.PqErrorCodeUniqueViolation
}

// IsForeignKeyViolation reports whether err comes from a foreign key constraint.
func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == constant.PqErrorCodeFkViolation
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return constant.Empty
}
