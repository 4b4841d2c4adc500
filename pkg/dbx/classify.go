package dbx

import (
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Violation is the kind of failure a write hit in the store
type Violation int

const (
	ViolationNone Violation = iota
	ViolationForeignKey
	ViolationUnique
	ViolationCheck
	ViolationNotNull
	ViolationConnection
)

func (v Violation) String() string {
	switch v {
	case ViolationForeignKey:
		return "foreign_key"
	case ViolationUnique:
		return "unique"
	case ViolationCheck:
		return "check"
	case ViolationNotNull:
		return "not_null"
	case ViolationConnection:
		return "connection"
	default:
		return "none"
	}
}

// IsConstraint reports whether the store rejected the data itself
func (v Violation) IsConstraint() bool {
	return v == ViolationForeignKey || v == ViolationUnique || v == ViolationCheck || v == ViolationNotNull
}

// Classify maps lib/pq SQLSTATE codes and SQLite extended result codes onto
// a driver independent Violation.
func Classify(err error) Violation {
	if err == nil {
		return ViolationNone
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			return ViolationForeignKey
		case "23505":
			return ViolationUnique
		case "23514", "22003", "22001":
			// check constraint, numeric out of range, string too long
			return ViolationCheck
		case "23502":
			return ViolationNotNull
		}
		if strings.HasPrefix(string(pqErr.Code), "08") {
			return ViolationConnection
		}
		return ViolationNone
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ViolationForeignKey
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ViolationUnique
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return ViolationCheck
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return ViolationNotNull
		case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR:
			return ViolationConnection
		}
		return ViolationNone
	}

	if errors.Is(err, driver.ErrBadConn) {
		return ViolationConnection
	}

	return ViolationNone
}
