package kernel

import (
	"fmt"
	"strconv"

	"github.com/Abraxas-365/hirely/pkg/errx"
)

type UserID int64

func NewUserID(id int64) UserID { return UserID(id) }
func (u UserID) String() string { return strconv.FormatInt(int64(u), 10) }
func (u UserID) IsEmpty() bool  { return u <= 0 }

type CompanyID int64

func NewCompanyID(id int64) CompanyID { return CompanyID(id) }
func (c CompanyID) String() string    { return strconv.FormatInt(int64(c), 10) }
func (c CompanyID) IsEmpty() bool     { return c <= 0 }

type DepartmentID int64

func NewDepartmentID(id int64) DepartmentID { return DepartmentID(id) }
func (d DepartmentID) String() string       { return strconv.FormatInt(int64(d), 10) }
func (d DepartmentID) IsEmpty() bool        { return d <= 0 }

func ParseUserID(s string) (UserID, error) {
	id, err := parseID("user", s)
	return UserID(id), err
}

func ParseCompanyID(s string) (CompanyID, error) {
	id, err := parseID("company", s)
	return CompanyID(id), err
}

func ParseDepartmentID(s string) (DepartmentID, error) {
	id, err := parseID("department", s)
	return DepartmentID(id), err
}

// parseID accepts only positive base-10 integers; the store never assigns 0
func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errx.New(fmt.Sprintf("invalid %s id", kind), errx.TypeValidation).WithDetail("id", s)
	}
	return id, nil
}
