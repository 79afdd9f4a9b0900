package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidUserID indicates the user ID is not an integer.
var ErrInvalidUserID = errors.New("invalid user ID format")

// UserID is the auto-incremented primary key of a user row.
// The zero value means "not yet stored".
type UserID int64

// ParseUserID parses the id taken from a request path. Besides plain decimal
// integers it accepts decimal reals with no fractional part ("1.0", "2e1"),
// which the SQLite store would coerce to the same integer key.
func ParseUserID(s string) (UserID, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return UserID(v), nil
	}

	if s == "" || strings.Trim(s, "0123456789+-.eE") != "" {
		return 0, ErrInvalidUserID
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, ErrInvalidUserID
	}
	return UserID(f), nil
}

func (id UserID) Int64() int64   { return int64(id) }
func (id UserID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id UserID) IsZero() bool   { return id == 0 }
