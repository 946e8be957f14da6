package service

// EmailValidator reports whether a string is a syntactically valid email address.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}
