package model

import "time"

// AccountModel mirrors the 'accounts' table. The store assigns IDs.
type AccountModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:text;unique;not null"`
	PasswordHash string  `gorm:"type:text;not null"`
	AvatarRef    *string `gorm:"type:text"`
	Banned       bool    `gorm:"not null;default:false"`
	Disabled     bool    `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
