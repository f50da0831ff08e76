package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/infrastructure/repositories"
)

func TestOperationLogRecordsCommands(t *testing.T) {
	base := newTestRepository(t)
	db := base.DB

	b := bus.New(bus.WithObserver(NewOperationLogger(db, fixedClock)))
	NewCommonService(repositories.NewLetterheadRepository(base), fixedClock).Register(b)

	ctx := userContext("ole@example.dk")
	command := &contracts.LetterheadAddCommand{Number: 1, LetterheadData: contracts.LetterheadData{Name: "Privat", Line1: "Ole Sørensen"}}
	_, err := bus.Execute[*contracts.ServiceReceipt](ctx, b, command)
	require.NoError(t, err)
	_, err = bus.Execute[*contracts.ServiceReceipt](ctx, b, command)
	requireCode(t, err, code.ErrLetterheadAlreadyExists)

	_, err = bus.Query[*contracts.LetterheadView](ctx, b, &contracts.LetterheadGetQuery{Number: 1})
	require.NoError(t, err)

	var logs []models.OperationLog
	require.NoError(t, db.Order("id").Find(&logs).Error)
	require.Len(t, logs, 2)

	assert.Equal(t, "LetterheadAddCommand", logs[0].Operation)
	assert.True(t, logs[0].Success)
	assert.Equal(t, uint(7), logs[0].UserID)
	assert.Equal(t, "ole@example.dk", logs[0].MailAddress)
	assert.Contains(t, logs[0].Details, "Ole Sørensen")
	assert.True(t, testNow.Equal(logs[0].Timestamp))

	assert.False(t, logs[1].Success)
	assert.Equal(t, code.ErrLetterheadAlreadyExists, logs[1].ErrorCode)
}
