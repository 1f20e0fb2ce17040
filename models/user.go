package models

import "time"

type User struct {
	UserID       string      `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	DisplayName  string      `gorm:"column:display_name" json:"display_name"`
	Email        string      `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string      `gorm:"column:password_hash" json:"-"`
	AccountType  AccountType `gorm:"column:account_type;default:user" json:"account_type"`
}

func (User) TableName() string { return "users" }

type Ban struct {
	BanID      string     `gorm:"column:ban_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ban_id"`
	UserID     string     `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	BanReason  string     `gorm:"column:ban_reason;not null" json:"ban_reason"`
	BannedBy   string     `gorm:"column:banned_by;type:uuid" json:"banned_by"`
	BannedAt   time.Time  `gorm:"column:banned_at;autoCreateTime" json:"banned_at"`
	UnbannedAt *time.Time `gorm:"column:unbanned_at" json:"unbanned_at,omitempty"`

	Email       string `gorm:"-:migration;->" json:"email,omitempty"`
	DisplayName string `gorm:"-:migration;->" json:"display_name,omitempty"`
}

func (Ban) TableName() string { return "bans" }
