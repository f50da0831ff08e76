package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/infrastructure/messaging"
	"osintranet-http-service/internal/infrastructure/repositories"
)

type financeFixture struct {
	finance   InterfaceFinanceService
	addresses InterfaceAddressBookService
	publisher *recordingPublisher
	debtor    int
}

func newFinanceFixture(t *testing.T) *financeFixture {
	t.Helper()
	ctx := context.Background()
	base := newTestRepository(t)
	letterheads := repositories.NewLetterheadRepository(base)
	addressRepo := repositories.NewAddressBookRepository(base)
	f := &financeFixture{
		addresses: NewAddressBookService(addressRepo, fixedClock),
		publisher: &recordingPublisher{},
	}
	f.finance = NewFinanceService(repositories.NewFinanceRepository(base), letterheads, addressRepo, f.publisher, 30, fixedClock)

	common := NewCommonService(letterheads, fixedClock)
	_, err := common.AddLetterhead(ctx, &contracts.LetterheadAddCommand{
		Number:         1,
		LetterheadData: contracts.LetterheadData{Name: "Privat", Line1: "Ole Sørensen"},
	})
	require.NoError(t, err)
	_, err = f.finance.AddAccounting(ctx, &contracts.AccountingAddCommand{Number: 1, Name: "Ole Sørensen", LetterheadNumber: 1})
	require.NoError(t, err)

	_, err = f.finance.AddAccountGroup(ctx, &contracts.AccountGroupAddCommand{Number: 1, Name: "Bankkonti", Type: models.AccountGroupTypeAssets})
	require.NoError(t, err)
	_, err = f.finance.AddBudgetAccountGroup(ctx, &contracts.BudgetAccountGroupAddCommand{Number: 1, Name: "Husholdning"})
	require.NoError(t, err)
	_, err = f.finance.AddAccount(ctx, &contracts.AccountAddCommand{
		Accounting:    1,
		AccountNumber: "dankort",
		AccountData:   contracts.AccountData{Name: "Dankort", AccountGroupNumber: 1},
	})
	require.NoError(t, err)
	_, err = f.finance.AddBudgetAccount(ctx, &contracts.BudgetAccountAddCommand{
		Accounting:        1,
		AccountNumber:     "8000",
		BudgetAccountData: contracts.BudgetAccountData{Name: "Mad", BudgetAccountGroupNumber: 1},
	})
	require.NoError(t, err)

	_, err = f.addresses.AddAddressGroup(ctx, &contracts.AddressGroupAddCommand{Number: 1, Name: "Familie"})
	require.NoError(t, err)
	result, err := f.addresses.AddPerson(ctx, &contracts.PersonAddCommand{PersonData: contracts.PersonData{
		AddressData: contracts.AddressData{Name: "Hansen", AddressGroupNumber: 1},
		FirstName:   "Bente",
	}})
	require.NoError(t, err)
	f.debtor = addressNumber(t, result)
	return f
}

func TestAccountingRequiresLetterhead(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)

	_, err := f.finance.AddAccounting(ctx, &contracts.AccountingAddCommand{Number: 2, Name: "Firma", LetterheadNumber: 2})
	requireCode(t, err, code.ErrLetterheadNotFound)
	_, err = f.finance.AddAccounting(ctx, &contracts.AccountingAddCommand{Number: 1, Name: "Igen", LetterheadNumber: 1})
	requireCode(t, err, code.ErrAccountingAlreadyExists)

	accounting, err := f.finance.GetAccounting(ctx, &contracts.AccountingGetQuery{Number: 1})
	require.NoError(t, err)
	assert.Equal(t, "Privat", accounting.Letterhead.Name)

	_, err = f.finance.AddAccount(ctx, &contracts.AccountAddCommand{
		Accounting:    1,
		AccountNumber: "DANKORT",
		AccountData:   contracts.AccountData{Name: "Igen", AccountGroupNumber: 1},
	})
	requireCode(t, err, code.ErrAccountAlreadyExists)
	_, err = f.finance.AddAccount(ctx, &contracts.AccountAddCommand{
		Accounting:    1,
		AccountNumber: "VISA",
		AccountData:   contracts.AccountData{Name: "Visa", AccountGroupNumber: 9},
	})
	requireCode(t, err, code.ErrAccountGroupNotFound)
}

func TestAddPostingWarnsAboutOverdrawnAccounts(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)

	_, err := f.finance.SetCreditInfo(ctx, &contracts.CreditInfoSetCommand{
		Accounting: 1, Account: "DANKORT", Year: 2024, Month: 3, Credit: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	result, err := f.finance.AddPosting(ctx, &contracts.PostingAddCommand{
		Accounting:    1,
		Date:          day(2024, time.March, 14),
		Reference:     "K1",
		Account:       "dankort",
		Text:          "Indkøb",
		BudgetAccount: "8000",
		Credit:        decimal.RequireFromString("1250.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Posting.RunningNumber)
	assert.Equal(t, "DANKORT", result.Posting.AccountNumber)
	assert.Equal(t, "Mad", result.Posting.BudgetAccountName)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, contracts.WarningAccountOverdrawn, result.Warnings[0].Reason)
	assert.True(t, decimal.RequireFromString("250.50").Equal(result.Warnings[0].Amount))
	assert.Equal(t, contracts.WarningBudgetAccountOverdrawn, result.Warnings[1].Reason)
	assert.True(t, decimal.RequireFromString("1250.50").Equal(result.Warnings[1].Amount))

	messages := f.publisher.on(messaging.TopicPosting)
	require.Len(t, messages, 1)
	posted := messages[0].(messaging.PostingAdded)
	assert.Equal(t, []string{contracts.WarningAccountOverdrawn, contracts.WarningBudgetAccountOverdrawn}, posted.Warnings)

	chart, err := f.finance.GetChartOfAccounts(ctx, &contracts.ChartOfAccountsGetQuery{Accounting: 1})
	require.NoError(t, err)
	require.Len(t, chart, 1)
	assert.True(t, decimal.RequireFromString("-1250.50").Equal(chart[0].Balance))
	assert.True(t, decimal.RequireFromString("-250.50").Equal(chart[0].Available))
	assert.Equal(t, day(2024, time.March, 15), chart[0].StatusDate)

	budget, err := f.finance.GetBudgetChartOfAccounts(ctx, &contracts.BudgetChartOfAccountsGetQuery{Accounting: 1})
	require.NoError(t, err)
	require.Len(t, budget, 1)
	assert.True(t, decimal.RequireFromString("-1250.50").Equal(budget[0].PostedYearToDate))
}

func TestAddPostingWithinBudgetHasNoWarnings(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)

	_, err := f.finance.SetBudgetInfo(ctx, &contracts.BudgetInfoSetCommand{
		Accounting: 1, Account: "8000", Year: 2024, Month: 3, Expenses: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)

	result, err := f.finance.AddPosting(ctx, &contracts.PostingAddCommand{
		Accounting:    1,
		Date:          day(2024, time.March, 1),
		Account:       "DANKORT",
		Text:          "Løn",
		Debit:         decimal.NewFromInt(5000),
		BudgetAccount: "8000",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
}

func TestAddPostingRejectsDatesOutsideWindow(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)

	command := contracts.PostingAddCommand{Accounting: 1, Account: "DANKORT", Text: "Forkert dato", Debit: decimal.NewFromInt(1)}

	command.Date = day(2024, time.March, 16)
	_, err := f.finance.AddPosting(ctx, &command)
	requireCode(t, err, code.ErrPostingDateOutOfRange)

	command.Date = day(2024, time.February, 13)
	_, err = f.finance.AddPosting(ctx, &command)
	requireCode(t, err, code.ErrPostingDateOutOfRange)

	command.Date = day(2024, time.February, 14)
	_, err = f.finance.AddPosting(ctx, &command)
	require.NoError(t, err)

	command.Account = "VISA"
	_, err = f.finance.AddPosting(ctx, &command)
	requireCode(t, err, code.ErrAccountNotFound)

	command.Account = "DANKORT"
	command.BudgetAccount = "9999"
	_, err = f.finance.AddPosting(ctx, &command)
	requireCode(t, err, code.ErrBudgetAccountNotFound)

	command.BudgetAccount = ""
	command.Address = intPtr(999)
	_, err = f.finance.AddPosting(ctx, &command)
	requireCode(t, err, code.ErrAddressNotFound)
}

func TestAddPostingUsesClientCalendarDay(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)
	finance := f.finance.(*FinanceService)
	copenhagen := time.FixedZone("CET", 60*60)
	newYork := time.FixedZone("EST", -5*60*60)

	// 23:45 UTC is already the 16th in Copenhagen
	finance.Now = func() time.Time { return time.Date(2024, time.March, 15, 23, 45, 0, 0, time.UTC) }
	command := contracts.PostingAddCommand{
		Accounting: 1,
		Date:       time.Date(2024, time.March, 16, 0, 30, 0, 0, copenhagen),
		Account:    "DANKORT",
		Text:       "Natkøb",
		Debit:      decimal.NewFromInt(1),
	}
	_, err := f.finance.AddPosting(ctx, &command)
	require.NoError(t, err)

	// 00:30 UTC is still the 14th in New York
	finance.Now = func() time.Time { return time.Date(2024, time.March, 15, 0, 30, 0, 0, time.UTC) }
	command.Date = time.Date(2024, time.March, 15, 8, 0, 0, 0, newYork)
	_, err = f.finance.AddPosting(ctx, &command)
	requireCode(t, err, code.ErrPostingDateOutOfRange)

	command.Date = time.Date(2024, time.March, 14, 8, 0, 0, 0, newYork)
	_, err = f.finance.AddPosting(ctx, &command)
	require.NoError(t, err)
}

func TestDebtorsAndCreditors(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)

	_, err := f.finance.AddPosting(ctx, &contracts.PostingAddCommand{
		Accounting: 1,
		Date:       day(2024, time.March, 10),
		Account:    "DANKORT",
		Text:       "Lån til Bente",
		Debit:      decimal.NewFromInt(400),
		Address:    &f.debtor,
	})
	require.NoError(t, err)

	debtors, err := f.finance.GetDebtors(ctx, &contracts.DebtorListGetQuery{Accounting: 1})
	require.NoError(t, err)
	require.Len(t, debtors, 1)
	assert.Equal(t, "Bente Hansen", debtors[0].Name)
	assert.True(t, decimal.NewFromInt(400).Equal(debtors[0].Balance))

	creditors, err := f.finance.GetCreditors(ctx, &contracts.CreditorListGetQuery{Accounting: 1})
	require.NoError(t, err)
	assert.Empty(t, creditors)

	// before the posting nobody owes anything
	debtors, err = f.finance.GetDebtors(ctx, &contracts.DebtorListGetQuery{Accounting: 1, StatusDate: day(2024, time.March, 9)})
	require.NoError(t, err)
	assert.Empty(t, debtors)

	postings, err := f.finance.GetPostings(ctx, &contracts.PostingListGetQuery{Accounting: 1, Count: 10})
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Equal(t, "Bente Hansen", postings[0].AddressName)
	assert.Equal(t, "Dankort", postings[0].AccountName)

	account, err := f.finance.GetAccount(ctx, &contracts.AccountGetQuery{Accounting: 1, Account: "dankort"})
	require.NoError(t, err)
	assert.Len(t, account.Postings, 1)
}

func TestPublishFailureDoesNotFailPosting(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)
	f.publisher.fail = true

	_, err := f.finance.AddPosting(ctx, &contracts.PostingAddCommand{
		Accounting: 1,
		Date:       day(2024, time.March, 15),
		Account:    "DANKORT",
		Text:       "Indbetaling",
		Debit:      decimal.NewFromInt(100),
	})
	require.NoError(t, err)
}
