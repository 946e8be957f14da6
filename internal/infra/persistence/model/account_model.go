package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountsTableDDL creates the table AccountModel maps to. Schema changes are
// applied outside the service; the statement is kept here for provisioning and tests.
const AccountsTableDDL = `CREATE TABLE IF NOT EXISTS accounts (
	id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name       varchar(255) NOT NULL,
	email      varchar(255) NOT NULL,
	password   varchar(255) NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
)`

// AccountModel mirrors the 'accounts' table. PostgreSQL generates the UUID.
type AccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
