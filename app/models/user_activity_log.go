package models

import "time"

const (
	ACTION_REGISTER   = "register"
	ACTION_LOGIN      = "login"
	ACTION_LOGOUT     = "logout"
	ACTION_LOGOUT_ALL = "logout_all"
)

// UserActivityLog is an append-only audit trail of account actions.
type UserActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	IPAddress string    `gorm:"type:varchar(45);default:null" json:"ip_address"`
	UserAgent string    `gorm:"type:varchar(500);default:null" json:"user_agent"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
