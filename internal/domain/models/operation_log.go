package models

import (
	"time"
)

// OperationLog records every executed command.
type OperationLog struct {
	BaseModel
	Operation   string    `gorm:"type:varchar(100);not null;index" json:"operation"` // 命令类型，如 PostingAddCommand
	UserID      uint      `json:"user_id"`                                           // 0表示系统自动操作
	MailAddress string    `gorm:"type:varchar(256)" json:"mail_address"`
	Details     string    `gorm:"type:text" json:"details"`
	Timestamp   time.Time `json:"timestamp"`
	Success     bool      `gorm:"default:true" json:"success"`
	ErrorCode   int       `json:"error_code"`
	DurationMs  int64     `json:"duration_ms"`
}
