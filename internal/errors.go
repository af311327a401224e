package internal

import "fmt"

type EntityNotFound struct {
	Id   string
	Type string
}

type ApplicantAlreadyExists struct {
	Email string
}

func (e EntityNotFound) Error() string {
	return fmt.Sprintf("entity %v of type %v not found", e.Id, e.Type)
}

func (e ApplicantAlreadyExists) Error() string {
	return fmt.Sprintf("applicant with email %v already exists", e.Email)
}
