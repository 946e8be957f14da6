// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"signup/internal/domain/entity"
)

// AccountRepository persists accounts.
type AccountRepository interface {
	// Add stores a new account and returns the record read back from storage,
	// including the identifier assigned by the store. Any ID set on the input is ignored.
	Add(ctx context.Context, account *entity.Account) (*entity.Account, error)
}
