// Package model holds the GORM persistence models. They mirror database
// tables and are mapped to/from pure domain entities at the repository
// boundary.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are BIGSERIAL, so they are numeric
// and monotonically increasing. The email column carries the unique index the
// registration path relies on for concurrent duplicates.
type UserModel struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
