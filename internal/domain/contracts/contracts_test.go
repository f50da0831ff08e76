package contracts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
)

func TestPrincipalRoundTrip(t *testing.T) {
	_, ok := PrincipalFrom(context.Background())
	assert.False(t, ok)

	ctx := WithPrincipal(context.Background(), Principal{UserID: 7, Role: "admin"})
	p, ok := PrincipalFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(7), p.UserID)
	assert.True(t, p.IsAdmin())
}

func TestPostingAddCommandValidate(t *testing.T) {
	cmd := &PostingAddCommand{Accounting: 1, Date: time.Now(), Account: "DANKORT", Text: "Indkøb"}
	assert.True(t, intranet.HasCode(cmd.Validate(), code.ErrPostingAmountInvalid))

	cmd.Credit = decimal.NewFromInt(250)
	assert.NoError(t, cmd.Validate())
}

func TestAppointmentDataValidate(t *testing.T) {
	data := &AppointmentData{FromTime: "10:00", ToTime: "09:30"}
	assert.True(t, intranet.HasCode(data.Validate(), code.ErrAppointmentTimeInvalid))

	data.ToTime = "10:00"
	assert.Error(t, data.Validate())

	data.ToTime = "11:15"
	assert.NoError(t, data.Validate())

	// promoted through the embedding command
	var cmd bus.Validatable = &AppointmentAddCommand{System: 1, AppointmentData: AppointmentData{FromTime: "12:00", ToTime: "08:00"}}
	assert.Error(t, cmd.Validate())
}

func TestContractTags(t *testing.T) {
	v := bus.NewValidator()

	assert.NoError(t, v.Struct(&LetterheadAddCommand{Number: 1, LetterheadData: LetterheadData{Name: "Privat", Line1: "Ole Sørensen"}}))
	assert.Error(t, v.Struct(&LetterheadAddCommand{Number: 100, LetterheadData: LetterheadData{Name: "Privat", Line1: "Ole Sørensen"}}))

	assert.NoError(t, v.Struct(&PostalCodeAddCommand{CountryCode: "DK", PostalCode: "5700", City: "Svendborg"}))
	assert.Error(t, v.Struct(&PostalCodeAddCommand{CountryCode: "dk", PostalCode: "5700", City: "Svendborg"}))

	group := &AccountGroupAddCommand{Number: 1, Name: "Bankkonti", Type: "assets"}
	assert.NoError(t, v.Struct(group))
	group.Type = "equity"
	assert.Error(t, v.Struct(group))

	assert.Error(t, v.Struct(&PostingListGetQuery{Accounting: 1, Count: 251}))
	assert.Error(t, v.Struct(&CreditInfoSetCommand{Accounting: 1, Account: "DANKORT", Year: 2024, Month: 13}))

	appointment := &AppointmentAddCommand{System: 1, AppointmentData: AppointmentData{
		Date: time.Now(), FromTime: "08:00", ToTime: "24:00", Subject: "Møde",
	}}
	assert.Error(t, v.Struct(appointment))
	appointment.ToTime = "09:00"
	assert.NoError(t, v.Struct(appointment))

	assert.Error(t, v.Struct(&HouseholdAddCommand{Name: "Hjemme"}))
	assert.NoError(t, v.Struct(&HouseholdAddCommand{Name: "Hjemme", TranslationInfo: uuid.New()}))
	assert.Error(t, v.Struct(&HouseholdMemberAddCommand{MailAddress: "not a mail", TranslationInfo: uuid.New()}))
	assert.Error(t, v.Struct(&ForeignKeyAddCommand{DataProvider: uuid.New(), ForeignKeyForIdentifier: uuid.New(), ForeignKeyForType: "Storage", ForeignKeyValue: "1"}))
}
