package kernel

import (
	"fmt"
	"strings"
)

type JobTitle string

type JobDescription string

type InterviewTitle string

type Email string

type Phone string

type FirstName string

type LastName string

type ResumeURL string

type CompanyName string

type DepartmentName string

// FullName joins first and last name, skipping empty parts
func FullName(first FirstName, last LastName) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", first, last))
}
