package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/pkg/logger"
)

// maxLogDetails caps the serialized command stored with an operation log.
const maxLogDetails = 4096

// NewOperationLogger returns a bus observer writing an operation log for
// every executed command. Queries are not logged.
func NewOperationLogger(db *gorm.DB, now Clock) bus.Observer {
	return func(ctx context.Context, d bus.Dispatch) {
		if d.Kind != bus.KindCommand {
			return
		}
		entry := models.OperationLog{
			Operation:  d.Name,
			Timestamp:  now(),
			Success:    d.Err == nil,
			DurationMs: d.Duration.Milliseconds(),
		}
		if p, ok := contracts.PrincipalFrom(ctx); ok {
			entry.UserID = p.UserID
			entry.MailAddress = p.MailAddress
		}
		if d.Err != nil {
			entry.ErrorCode = intranet.Classify(d.Err).Code
		}
		if details, err := json.Marshal(d.Message); err == nil {
			entry.Details = string(details)
			if len(entry.Details) > maxLogDetails {
				entry.Details = entry.Details[:maxLogDetails]
			}
		}

		// 请求结束后仍需写入
		if err := db.WithContext(context.WithoutCancel(ctx)).Create(&entry).Error; err != nil {
			logger.Error("写入操作日志失败: 操作=%s 错误=%v", d.Name, err)
		}
	}
}
