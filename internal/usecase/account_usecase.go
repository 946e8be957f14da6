// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"signup/internal/domain/entity"
)

// AddAccountInput is the validated signup data. Password is plaintext here;
// the use case hashes it before anything is persisted.
type AddAccountInput struct {
	Name     string
	Email    string
	Password string
}

// AddAccount creates accounts. The delivery layer depends on this contract.
type AddAccount interface {
	Add(ctx context.Context, input AddAccountInput) (*entity.Account, error)
}
