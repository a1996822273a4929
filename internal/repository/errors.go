package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	apperrors "jobdock/internal/errors"
)

// MySQL server error numbers the repositories care about.
const (
	mysqlDuplicateEntry  = 1062
	mysqlNullColumn      = 1048
	mysqlOutOfRange      = 1264
	mysqlDataTooLong     = 1406
	mysqlCheckConstraint = 3819
)

// translateError converts low-level MySQL failures into domain errors.
// Duplicate-entry messages name the violated index ("... for key
// 'users.uq_users_email'"), which is how the offending field is recovered.
// Schema rejections become ValidationError; everything else passes through.
func translateError(err error, duplicates map[string]*apperrors.DuplicateKeyError) error {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return err
	}
	switch myErr.Number {
	case mysqlDuplicateEntry:
		for index, dup := range duplicates {
			if strings.Contains(myErr.Message, index) {
				return dup
			}
		}
		return err
	case mysqlNullColumn, mysqlOutOfRange, mysqlDataTooLong, mysqlCheckConstraint:
		return &apperrors.ValidationError{Detail: myErr.Message}
	}
	return err
}

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
