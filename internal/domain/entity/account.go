// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Account is a registered identity. Password always holds a hash, never the
// plaintext submitted at signup.
type Account struct {
	ID       string `json:"id"`       // Opaque identifier assigned by the account store.
	Name     string `json:"name"`     // Display name supplied at signup.
	Email    string `json:"email"`    // Contact email; syntax is checked before persistence.
	Password string `json:"password"` // Salted password hash.
}
