package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/messaging"
	"osintranet-http-service/internal/infrastructure/repositories"
	"osintranet-http-service/pkg/logger"
)

// accountPostingCount is the number of postings shown with an account.
const accountPostingCount = 50

// InterfaceFinanceService 财务服务接口
type InterfaceFinanceService interface {
	Registrar
	GetAccountings(ctx context.Context, query *contracts.AccountingListGetQuery) ([]contracts.AccountingView, error)
	GetAccounting(ctx context.Context, query *contracts.AccountingGetQuery) (*contracts.AccountingView, error)
	GetAccountGroups(ctx context.Context, query *contracts.AccountGroupListGetQuery) ([]contracts.AccountGroupView, error)
	GetBudgetAccountGroups(ctx context.Context, query *contracts.BudgetAccountGroupListGetQuery) ([]contracts.BudgetAccountGroupView, error)
	GetChartOfAccounts(ctx context.Context, query *contracts.ChartOfAccountsGetQuery) ([]contracts.AccountView, error)
	GetAccount(ctx context.Context, query *contracts.AccountGetQuery) (*contracts.AccountDetailView, error)
	GetBudgetChartOfAccounts(ctx context.Context, query *contracts.BudgetChartOfAccountsGetQuery) ([]contracts.BudgetAccountView, error)
	GetPostings(ctx context.Context, query *contracts.PostingListGetQuery) ([]contracts.PostingView, error)
	GetDebtors(ctx context.Context, query *contracts.DebtorListGetQuery) ([]contracts.AddressAccountView, error)
	GetCreditors(ctx context.Context, query *contracts.CreditorListGetQuery) ([]contracts.AddressAccountView, error)
	AddAccounting(ctx context.Context, command *contracts.AccountingAddCommand) (*contracts.ServiceReceipt, error)
	ModifyAccounting(ctx context.Context, command *contracts.AccountingModifyCommand) (*contracts.ServiceReceipt, error)
	AddAccountGroup(ctx context.Context, command *contracts.AccountGroupAddCommand) (*contracts.ServiceReceipt, error)
	ModifyAccountGroup(ctx context.Context, command *contracts.AccountGroupModifyCommand) (*contracts.ServiceReceipt, error)
	AddBudgetAccountGroup(ctx context.Context, command *contracts.BudgetAccountGroupAddCommand) (*contracts.ServiceReceipt, error)
	ModifyBudgetAccountGroup(ctx context.Context, command *contracts.BudgetAccountGroupModifyCommand) (*contracts.ServiceReceipt, error)
	AddAccount(ctx context.Context, command *contracts.AccountAddCommand) (*contracts.ServiceReceipt, error)
	ModifyAccount(ctx context.Context, command *contracts.AccountModifyCommand) (*contracts.ServiceReceipt, error)
	AddBudgetAccount(ctx context.Context, command *contracts.BudgetAccountAddCommand) (*contracts.ServiceReceipt, error)
	ModifyBudgetAccount(ctx context.Context, command *contracts.BudgetAccountModifyCommand) (*contracts.ServiceReceipt, error)
	SetCreditInfo(ctx context.Context, command *contracts.CreditInfoSetCommand) (*contracts.ServiceReceipt, error)
	SetBudgetInfo(ctx context.Context, command *contracts.BudgetInfoSetCommand) (*contracts.ServiceReceipt, error)
	AddPosting(ctx context.Context, command *contracts.PostingAddCommand) (*contracts.PostingResultView, error)
}

// FinanceService handles accountings, accounts, budget accounts and postings.
type FinanceService struct {
	Finance     repositories.InterfaceFinanceRepository
	Letterheads repositories.InterfaceLetterheadRepository
	Addresses   repositories.InterfaceAddressBookRepository
	Publisher   messaging.Publisher
	// MaxPostingAge is the number of days a posting may be back dated.
	MaxPostingAge int
	Now           Clock
}

// NewFinanceService 创建财务服务
func NewFinanceService(
	finance repositories.InterfaceFinanceRepository,
	letterheads repositories.InterfaceLetterheadRepository,
	addresses repositories.InterfaceAddressBookRepository,
	publisher messaging.Publisher,
	maxPostingAge int,
	now Clock,
) InterfaceFinanceService {
	return &FinanceService{
		Finance:       finance,
		Letterheads:   letterheads,
		Addresses:     addresses,
		Publisher:     publisher,
		MaxPostingAge: maxPostingAge,
		Now:           now,
	}
}

// Register 注册处理器
func (s *FinanceService) Register(b *bus.Bus) {
	bus.RegisterQuery(b, s.GetAccountings)
	bus.RegisterQuery(b, s.GetAccounting)
	bus.RegisterQuery(b, s.GetAccountGroups)
	bus.RegisterQuery(b, s.GetBudgetAccountGroups)
	bus.RegisterQuery(b, s.GetChartOfAccounts)
	bus.RegisterQuery(b, s.GetAccount)
	bus.RegisterQuery(b, s.GetBudgetChartOfAccounts)
	bus.RegisterQuery(b, s.GetPostings)
	bus.RegisterQuery(b, s.GetDebtors)
	bus.RegisterQuery(b, s.GetCreditors)
	bus.RegisterCommand(b, s.AddAccounting)
	bus.RegisterCommand(b, s.ModifyAccounting)
	bus.RegisterCommand(b, s.AddAccountGroup)
	bus.RegisterCommand(b, s.ModifyAccountGroup)
	bus.RegisterCommand(b, s.AddBudgetAccountGroup)
	bus.RegisterCommand(b, s.ModifyBudgetAccountGroup)
	bus.RegisterCommand(b, s.AddAccount)
	bus.RegisterCommand(b, s.ModifyAccount)
	bus.RegisterCommand(b, s.AddBudgetAccount)
	bus.RegisterCommand(b, s.ModifyBudgetAccount)
	bus.RegisterCommand(b, s.SetCreditInfo)
	bus.RegisterCommand(b, s.SetBudgetInfo)
	bus.RegisterCommand(b, s.AddPosting)
}

// 1 GetAccountings 获取所有账簿
func (s *FinanceService) GetAccountings(ctx context.Context, _ *contracts.AccountingListGetQuery) ([]contracts.AccountingView, error) {
	accountings, err := s.Finance.ListAccountings(ctx)
	if err != nil {
		return nil, err
	}
	letterheads, err := s.Letterheads.List(ctx)
	if err != nil {
		return nil, err
	}
	byNumber := make(map[int]models.Letterhead, len(letterheads))
	for _, l := range letterheads {
		byNumber[l.Number] = l
	}

	views := make([]contracts.AccountingView, 0, len(accountings))
	for _, a := range accountings {
		letterhead, ok := byNumber[a.LetterheadNumber]
		if !ok {
			letterhead = models.Letterhead{Number: a.LetterheadNumber}
		}
		views = append(views, contracts.AccountingView{Number: a.Number, Name: a.Name, Letterhead: letterheadView(letterhead)})
	}
	return views, nil
}

// 2 GetAccounting 获取账簿
func (s *FinanceService) GetAccounting(ctx context.Context, query *contracts.AccountingGetQuery) (*contracts.AccountingView, error) {
	accounting, err := s.getAccounting(ctx, query.Number)
	if err != nil {
		return nil, err
	}
	letterhead, err := s.Letterheads.Get(ctx, accounting.LetterheadNumber)
	if err != nil {
		return nil, notFound(err, code.ErrLetterheadNotFound, accounting.LetterheadNumber)
	}
	return &contracts.AccountingView{Number: accounting.Number, Name: accounting.Name, Letterhead: letterheadView(*letterhead)}, nil
}

// 3 GetAccountGroups 获取所有账户组
func (s *FinanceService) GetAccountGroups(ctx context.Context, _ *contracts.AccountGroupListGetQuery) ([]contracts.AccountGroupView, error) {
	groups, err := s.Finance.ListAccountGroups(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.AccountGroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, contracts.AccountGroupView{Number: g.Number, Name: g.Name, Type: g.Type})
	}
	return views, nil
}

// 4 GetBudgetAccountGroups 获取所有预算账户组
func (s *FinanceService) GetBudgetAccountGroups(ctx context.Context, _ *contracts.BudgetAccountGroupListGetQuery) ([]contracts.BudgetAccountGroupView, error) {
	groups, err := s.Finance.ListBudgetAccountGroups(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.BudgetAccountGroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, contracts.BudgetAccountGroupView{Number: g.Number, Name: g.Name})
	}
	return views, nil
}

// 5 GetChartOfAccounts 获取账户表
func (s *FinanceService) GetChartOfAccounts(ctx context.Context, query *contracts.ChartOfAccountsGetQuery) ([]contracts.AccountView, error) {
	if _, err := s.getAccounting(ctx, query.Accounting); err != nil {
		return nil, err
	}
	accounts, err := s.Finance.ListAccounts(ctx, query.Accounting)
	if err != nil {
		return nil, err
	}
	chart, err := s.newChart(ctx, query.Accounting, statusDate(query.StatusDate, s.Now))
	if err != nil {
		return nil, err
	}
	views := make([]contracts.AccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, chart.accountView(a))
	}
	return views, nil
}

// 6 GetAccount 获取账户及最新记账行
func (s *FinanceService) GetAccount(ctx context.Context, query *contracts.AccountGetQuery) (*contracts.AccountDetailView, error) {
	number := strings.ToUpper(query.Account)
	account, err := s.Finance.GetAccount(ctx, query.Accounting, number)
	if err != nil {
		return nil, notFound(err, code.ErrAccountNotFound, query.Accounting, number)
	}
	date := statusDate(query.StatusDate, s.Now)
	chart, err := s.newChart(ctx, query.Accounting, date)
	if err != nil {
		return nil, err
	}
	postings, err := s.Finance.ListPostings(ctx, repositories.PostingFilter{
		Accounting: query.Accounting,
		StatusDate: date,
		Account:    number,
		Count:      accountPostingCount,
	})
	if err != nil {
		return nil, err
	}
	names, err := s.newPostingNames(ctx, query.Accounting)
	if err != nil {
		return nil, err
	}

	view := &contracts.AccountDetailView{AccountView: chart.accountView(*account), Postings: []contracts.PostingView{}}
	for _, p := range postings {
		view.Postings = append(view.Postings, names.postingView(p))
	}
	return view, nil
}

// 7 GetBudgetChartOfAccounts 获取预算账户表
func (s *FinanceService) GetBudgetChartOfAccounts(ctx context.Context, query *contracts.BudgetChartOfAccountsGetQuery) ([]contracts.BudgetAccountView, error) {
	if _, err := s.getAccounting(ctx, query.Accounting); err != nil {
		return nil, err
	}
	accounts, err := s.Finance.ListBudgetAccounts(ctx, query.Accounting)
	if err != nil {
		return nil, err
	}
	chart, err := s.newBudgetChart(ctx, query.Accounting, statusDate(query.StatusDate, s.Now))
	if err != nil {
		return nil, err
	}
	views := make([]contracts.BudgetAccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, chart.budgetAccountView(a))
	}
	return views, nil
}

// 8 GetPostings 获取最新记账行
func (s *FinanceService) GetPostings(ctx context.Context, query *contracts.PostingListGetQuery) ([]contracts.PostingView, error) {
	if _, err := s.getAccounting(ctx, query.Accounting); err != nil {
		return nil, err
	}
	postings, err := s.Finance.ListPostings(ctx, repositories.PostingFilter{
		Accounting: query.Accounting,
		StatusDate: statusDate(query.StatusDate, s.Now),
		Count:      query.Count,
	})
	if err != nil {
		return nil, err
	}
	names, err := s.newPostingNames(ctx, query.Accounting)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.PostingView, 0, len(postings))
	for _, p := range postings {
		views = append(views, names.postingView(p))
	}
	return views, nil
}

// 9 GetDebtors 获取债务人
func (s *FinanceService) GetDebtors(ctx context.Context, query *contracts.DebtorListGetQuery) ([]contracts.AddressAccountView, error) {
	return s.addressAccounts(ctx, query.Accounting, statusDate(query.StatusDate, s.Now), decimal.Decimal.IsPositive)
}

// 10 GetCreditors 获取债权人
func (s *FinanceService) GetCreditors(ctx context.Context, query *contracts.CreditorListGetQuery) ([]contracts.AddressAccountView, error) {
	return s.addressAccounts(ctx, query.Accounting, statusDate(query.StatusDate, s.Now), decimal.Decimal.IsNegative)
}

// 11 AddAccounting 添加账簿
func (s *FinanceService) AddAccounting(ctx context.Context, command *contracts.AccountingAddCommand) (*contracts.ServiceReceipt, error) {
	_, err := s.Finance.GetAccounting(ctx, command.Number)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrAccountingAlreadyExists, command.Number)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	if err := s.requireLetterhead(ctx, command.LetterheadNumber); err != nil {
		return nil, err
	}
	accounting := models.Accounting{Number: command.Number, Name: command.Name, LetterheadNumber: command.LetterheadNumber}
	if err := s.Finance.CreateAccounting(ctx, &accounting); err != nil {
		return nil, err
	}
	return receipt(accounting.Number, s.Now()), nil
}

// 12 ModifyAccounting 修改账簿
func (s *FinanceService) ModifyAccounting(ctx context.Context, command *contracts.AccountingModifyCommand) (*contracts.ServiceReceipt, error) {
	accounting, err := s.getAccounting(ctx, command.Number)
	if err != nil {
		return nil, err
	}
	if err := s.requireLetterhead(ctx, command.LetterheadNumber); err != nil {
		return nil, err
	}
	accounting.Name = command.Name
	accounting.LetterheadNumber = command.LetterheadNumber
	if err := s.Finance.UpdateAccounting(ctx, accounting); err != nil {
		return nil, err
	}
	return receipt(accounting.Number, s.Now()), nil
}

// 13 AddAccountGroup 添加账户组
func (s *FinanceService) AddAccountGroup(ctx context.Context, command *contracts.AccountGroupAddCommand) (*contracts.ServiceReceipt, error) {
	_, err := s.Finance.GetAccountGroup(ctx, command.Number)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrAccountGroupAlreadyExists, command.Number)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	group := models.AccountGroup{Number: command.Number, Name: command.Name, Type: command.Type}
	if err := s.Finance.SaveAccountGroup(ctx, &group); err != nil {
		return nil, err
	}
	return receipt(group.Number, s.Now()), nil
}

// 14 ModifyAccountGroup 修改账户组
func (s *FinanceService) ModifyAccountGroup(ctx context.Context, command *contracts.AccountGroupModifyCommand) (*contracts.ServiceReceipt, error) {
	group, err := s.Finance.GetAccountGroup(ctx, command.Number)
	if err != nil {
		return nil, notFound(err, code.ErrAccountGroupNotFound, command.Number)
	}
	group.Name = command.Name
	group.Type = command.Type
	if err := s.Finance.SaveAccountGroup(ctx, group); err != nil {
		return nil, err
	}
	return receipt(group.Number, s.Now()), nil
}

// 15 AddBudgetAccountGroup 添加预算账户组
func (s *FinanceService) AddBudgetAccountGroup(ctx context.Context, command *contracts.BudgetAccountGroupAddCommand) (*contracts.ServiceReceipt, error) {
	_, err := s.Finance.GetBudgetAccountGroup(ctx, command.Number)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrBudgetAccountGroupAlreadyExists, command.Number)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	group := models.BudgetAccountGroup{Number: command.Number, Name: command.Name}
	if err := s.Finance.SaveBudgetAccountGroup(ctx, &group); err != nil {
		return nil, err
	}
	return receipt(group.Number, s.Now()), nil
}

// 16 ModifyBudgetAccountGroup 修改预算账户组
func (s *FinanceService) ModifyBudgetAccountGroup(ctx context.Context, command *contracts.BudgetAccountGroupModifyCommand) (*contracts.ServiceReceipt, error) {
	group, err := s.Finance.GetBudgetAccountGroup(ctx, command.Number)
	if err != nil {
		return nil, notFound(err, code.ErrBudgetAccountGroupNotFound, command.Number)
	}
	group.Name = command.Name
	if err := s.Finance.SaveBudgetAccountGroup(ctx, group); err != nil {
		return nil, err
	}
	return receipt(group.Number, s.Now()), nil
}

// 17 AddAccount 添加账户
func (s *FinanceService) AddAccount(ctx context.Context, command *contracts.AccountAddCommand) (*contracts.ServiceReceipt, error) {
	if _, err := s.getAccounting(ctx, command.Accounting); err != nil {
		return nil, err
	}
	number := strings.ToUpper(command.AccountNumber)
	_, err := s.Finance.GetAccount(ctx, command.Accounting, number)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrAccountAlreadyExists, command.Accounting, number)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	account := models.Account{AccountingNumber: command.Accounting, AccountNumber: number}
	if err := s.applyAccount(ctx, &account, command.AccountData); err != nil {
		return nil, err
	}
	if err := s.Finance.CreateAccount(ctx, &account); err != nil {
		return nil, err
	}
	return receipt(number, s.Now()), nil
}

// 18 ModifyAccount 修改账户
func (s *FinanceService) ModifyAccount(ctx context.Context, command *contracts.AccountModifyCommand) (*contracts.ServiceReceipt, error) {
	number := strings.ToUpper(command.AccountNumber)
	account, err := s.Finance.GetAccount(ctx, command.Accounting, number)
	if err != nil {
		return nil, notFound(err, code.ErrAccountNotFound, command.Accounting, number)
	}
	if err := s.applyAccount(ctx, account, command.AccountData); err != nil {
		return nil, err
	}
	if err := s.Finance.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}
	return receipt(number, s.Now()), nil
}

// 19 AddBudgetAccount 添加预算账户
func (s *FinanceService) AddBudgetAccount(ctx context.Context, command *contracts.BudgetAccountAddCommand) (*contracts.ServiceReceipt, error) {
	if _, err := s.getAccounting(ctx, command.Accounting); err != nil {
		return nil, err
	}
	number := strings.ToUpper(command.AccountNumber)
	_, err := s.Finance.GetBudgetAccount(ctx, command.Accounting, number)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrBudgetAccountAlreadyExists, command.Accounting, number)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	account := models.BudgetAccount{AccountingNumber: command.Accounting, AccountNumber: number}
	if err := s.applyBudgetAccount(ctx, &account, command.BudgetAccountData); err != nil {
		return nil, err
	}
	if err := s.Finance.CreateBudgetAccount(ctx, &account); err != nil {
		return nil, err
	}
	return receipt(number, s.Now()), nil
}

// 20 ModifyBudgetAccount 修改预算账户
func (s *FinanceService) ModifyBudgetAccount(ctx context.Context, command *contracts.BudgetAccountModifyCommand) (*contracts.ServiceReceipt, error) {
	number := strings.ToUpper(command.AccountNumber)
	account, err := s.Finance.GetBudgetAccount(ctx, command.Accounting, number)
	if err != nil {
		return nil, notFound(err, code.ErrBudgetAccountNotFound, command.Accounting, number)
	}
	if err := s.applyBudgetAccount(ctx, account, command.BudgetAccountData); err != nil {
		return nil, err
	}
	if err := s.Finance.UpdateBudgetAccount(ctx, account); err != nil {
		return nil, err
	}
	return receipt(number, s.Now()), nil
}

// 21 SetCreditInfo 设置月度信用额度
func (s *FinanceService) SetCreditInfo(ctx context.Context, command *contracts.CreditInfoSetCommand) (*contracts.ServiceReceipt, error) {
	number := strings.ToUpper(command.Account)
	if _, err := s.Finance.GetAccount(ctx, command.Accounting, number); err != nil {
		return nil, notFound(err, code.ErrAccountNotFound, command.Accounting, number)
	}
	info := models.CreditInfo{
		AccountingNumber: command.Accounting,
		AccountNumber:    number,
		Year:             command.Year,
		Month:            command.Month,
		Credit:           command.Credit.Round(2),
	}
	if err := s.Finance.SetCreditInfo(ctx, &info); err != nil {
		return nil, err
	}
	return receipt(number, s.Now()), nil
}

// 22 SetBudgetInfo 设置月度预算
func (s *FinanceService) SetBudgetInfo(ctx context.Context, command *contracts.BudgetInfoSetCommand) (*contracts.ServiceReceipt, error) {
	number := strings.ToUpper(command.Account)
	if _, err := s.Finance.GetBudgetAccount(ctx, command.Accounting, number); err != nil {
		return nil, notFound(err, code.ErrBudgetAccountNotFound, command.Accounting, number)
	}
	info := models.BudgetInfo{
		AccountingNumber: command.Accounting,
		AccountNumber:    number,
		Year:             command.Year,
		Month:            command.Month,
		Income:           command.Income.Round(2),
		Expenses:         command.Expenses.Round(2),
	}
	if err := s.Finance.SetBudgetInfo(ctx, &info); err != nil {
		return nil, err
	}
	return receipt(number, s.Now()), nil
}

// 23 AddPosting 记账
func (s *FinanceService) AddPosting(ctx context.Context, command *contracts.PostingAddCommand) (*contracts.PostingResultView, error) {
	// 客户端日期按它自己的时区取日历日，今天也按同一时区计算
	today := models.Date(s.Now().In(command.Date.Location()))
	date := models.Date(command.Date)
	if date.After(today) || date.Before(today.AddDate(0, 0, -s.MaxPostingAge)) {
		return nil, intranet.NewBusinessError(code.ErrPostingDateOutOfRange, date.Format(time.DateOnly))
	}
	if _, err := s.getAccounting(ctx, command.Accounting); err != nil {
		return nil, err
	}

	accountNumber := strings.ToUpper(command.Account)
	account, err := s.Finance.GetAccount(ctx, command.Accounting, accountNumber)
	if err != nil {
		return nil, notFound(err, code.ErrAccountNotFound, command.Accounting, accountNumber)
	}
	var budgetAccount *models.BudgetAccount
	if command.BudgetAccount != "" {
		budgetAccount, err = s.Finance.GetBudgetAccount(ctx, command.Accounting, strings.ToUpper(command.BudgetAccount))
		if err != nil {
			return nil, notFound(err, code.ErrBudgetAccountNotFound, command.Accounting, strings.ToUpper(command.BudgetAccount))
		}
	}
	var address *models.Address
	if command.Address != nil {
		address, err = s.Addresses.GetAddress(ctx, *command.Address)
		if err != nil {
			return nil, notFound(err, code.ErrAddressNotFound, *command.Address)
		}
	}

	posting := models.Posting{
		AccountingNumber: command.Accounting,
		Date:             date,
		Reference:        command.Reference,
		AccountNumber:    account.AccountNumber,
		Text:             command.Text,
		Debit:            command.Debit.Round(2),
		Credit:           command.Credit.Round(2),
		AddressNumber:    command.Address,
		CreatedAt:        s.Now(),
	}
	if budgetAccount != nil {
		posting.BudgetAccountNumber = &budgetAccount.AccountNumber
	}
	if err := s.Finance.AddPosting(ctx, &posting); err != nil {
		return nil, err
	}

	warnings, err := s.postingWarnings(ctx, account, budgetAccount, date)
	if err != nil {
		return nil, err
	}

	view := contracts.PostingView{
		AccountingNumber: posting.AccountingNumber,
		RunningNumber:    posting.RunningNumber,
		Date:             posting.Date,
		Reference:        posting.Reference,
		AccountNumber:    account.AccountNumber,
		AccountName:      account.Name,
		Text:             posting.Text,
		Debit:            posting.Debit,
		Credit:           posting.Credit,
		AddressNumber:    posting.AddressNumber,
	}
	if budgetAccount != nil {
		view.BudgetAccountNumber = budgetAccount.AccountNumber
		view.BudgetAccountName = budgetAccount.Name
	}
	if address != nil {
		view.AddressName = address.FullName()
	}

	s.publishPosting(ctx, posting, warnings)
	return &contracts.PostingResultView{Posting: view, Warnings: warnings}, nil
}

func (s *FinanceService) getAccounting(ctx context.Context, number int) (*models.Accounting, error) {
	accounting, err := s.Finance.GetAccounting(ctx, number)
	if err != nil {
		return nil, notFound(err, code.ErrAccountingNotFound, number)
	}
	return accounting, nil
}

func (s *FinanceService) requireLetterhead(ctx context.Context, number int) error {
	found, err := s.Letterheads.Exists(ctx, number)
	if err != nil {
		return err
	}
	if !found {
		return intranet.NewBusinessError(code.ErrLetterheadNotFound, number)
	}
	return nil
}

func (s *FinanceService) applyAccount(ctx context.Context, account *models.Account, data contracts.AccountData) error {
	if _, err := s.Finance.GetAccountGroup(ctx, data.AccountGroupNumber); err != nil {
		return notFound(err, code.ErrAccountGroupNotFound, data.AccountGroupNumber)
	}
	account.Name = data.Name
	account.Description = data.Description
	account.Note = data.Note
	account.AccountGroupNumber = data.AccountGroupNumber
	return nil
}

func (s *FinanceService) applyBudgetAccount(ctx context.Context, account *models.BudgetAccount, data contracts.BudgetAccountData) error {
	if _, err := s.Finance.GetBudgetAccountGroup(ctx, data.BudgetAccountGroupNumber); err != nil {
		return notFound(err, code.ErrBudgetAccountGroupNotFound, data.BudgetAccountGroupNumber)
	}
	account.Name = data.Name
	account.Description = data.Description
	account.Note = data.Note
	account.BudgetAccountGroupNumber = data.BudgetAccountGroupNumber
	return nil
}

// postingWarnings checks the posted accounts at the posting date.
func (s *FinanceService) postingWarnings(ctx context.Context, account *models.Account, budgetAccount *models.BudgetAccount, date time.Time) ([]contracts.PostingWarningView, error) {
	warnings := []contracts.PostingWarningView{}

	chart, err := s.newChart(ctx, account.AccountingNumber, date)
	if err != nil {
		return nil, err
	}
	view := chart.accountView(*account)
	if view.AccountGroup.Type == models.AccountGroupTypeAssets && view.Available.IsNegative() {
		warnings = append(warnings, contracts.PostingWarningView{
			Reason:        contracts.WarningAccountOverdrawn,
			AccountNumber: account.AccountNumber,
			Amount:        view.Available.Abs(),
		})
	}

	if budgetAccount != nil {
		budgetChart, err := s.newBudgetChart(ctx, budgetAccount.AccountingNumber, date)
		if err != nil {
			return nil, err
		}
		budgetView := budgetChart.budgetAccountView(*budgetAccount)
		if !budgetView.Budget.IsPositive() && budgetView.Available.IsNegative() {
			warnings = append(warnings, contracts.PostingWarningView{
				Reason:        contracts.WarningBudgetAccountOverdrawn,
				AccountNumber: budgetAccount.AccountNumber,
				Amount:        budgetView.Available.Abs(),
			})
		}
	}
	return warnings, nil
}

func (s *FinanceService) publishPosting(ctx context.Context, posting models.Posting, warnings []contracts.PostingWarningView) {
	message := messaging.PostingAdded{
		Accounting:    posting.AccountingNumber,
		RunningNumber: posting.RunningNumber,
		Date:          posting.Date,
		Account:       posting.AccountNumber,
		Debit:         posting.Debit,
		Credit:        posting.Credit,
	}
	if posting.BudgetAccountNumber != nil {
		message.BudgetAccount = *posting.BudgetAccountNumber
	}
	for _, w := range warnings {
		message.Warnings = append(message.Warnings, w.Reason)
	}
	if err := s.Publisher.Publish(ctx, messaging.TopicPosting, message); err != nil {
		logger.Warning("发布记账通知失败: 账簿=%d 流水号=%d 错误=%v", posting.AccountingNumber, posting.RunningNumber, err)
	}
}

func (s *FinanceService) addressAccounts(ctx context.Context, accounting int, date time.Time, keep func(decimal.Decimal) bool) ([]contracts.AddressAccountView, error) {
	if _, err := s.getAccounting(ctx, accounting); err != nil {
		return nil, err
	}
	balances, err := s.Finance.AddressBalances(ctx, accounting, date)
	if err != nil {
		return nil, err
	}

	views := []contracts.AddressAccountView{}
	for number, balance := range balances {
		if !keep(balance) {
			continue
		}
		address, err := s.Addresses.GetAddress(ctx, number)
		if err != nil {
			if repositories.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		views = append(views, contracts.AddressAccountView{
			Number:       address.Number,
			Name:         address.FullName(),
			PrimaryPhone: address.PrimaryPhone,
			MailAddress:  address.MailAddress,
			StatusDate:   models.Date(date),
			Balance:      balance,
		})
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Name != views[j].Name {
			return views[i].Name < views[j].Name
		}
		return views[i].Number < views[j].Number
	})
	return views, nil
}

// accountChart holds what the account views of one status date need.
type accountChart struct {
	date     time.Time
	groups   map[int]models.AccountGroup
	credits  map[string]decimal.Decimal
	balances map[string]decimal.Decimal
}

func (s *FinanceService) newChart(ctx context.Context, accounting int, date time.Time) (*accountChart, error) {
	groups, err := s.Finance.ListAccountGroups(ctx)
	if err != nil {
		return nil, err
	}
	credits, err := s.Finance.CreditInfos(ctx, accounting, date.Year(), int(date.Month()))
	if err != nil {
		return nil, err
	}
	balances, err := s.Finance.AccountBalances(ctx, accounting, date)
	if err != nil {
		return nil, err
	}
	chart := &accountChart{
		date:     models.Date(date),
		groups:   make(map[int]models.AccountGroup, len(groups)),
		credits:  credits,
		balances: balances,
	}
	for _, g := range groups {
		chart.groups[g.Number] = g
	}
	return chart, nil
}

func (c *accountChart) accountView(a models.Account) contracts.AccountView {
	group := c.groups[a.AccountGroupNumber]
	credit := c.credits[a.AccountNumber]
	balance := c.balances[a.AccountNumber]
	return contracts.AccountView{
		AccountingNumber: a.AccountingNumber,
		AccountNumber:    a.AccountNumber,
		Name:             a.Name,
		Description:      a.Description,
		Note:             a.Note,
		AccountGroup:     contracts.AccountGroupView{Number: a.AccountGroupNumber, Name: group.Name, Type: group.Type},
		StatusDate:       c.date,
		Credit:           credit,
		Balance:          balance,
		Available:        credit.Add(balance),
	}
}

// budgetChart holds the budgeted and posted sums of one status date for
// its month, the previous month and the year to date.
type budgetChart struct {
	date                               time.Time
	groups                             map[int]models.BudgetAccountGroup
	budget, budgetLastMonth, budgetYTD map[string]decimal.Decimal
	posted, postedLastMonth, postedYTD map[string]decimal.Decimal
}

func (s *FinanceService) newBudgetChart(ctx context.Context, accounting int, date time.Time) (*budgetChart, error) {
	groups, err := s.Finance.ListBudgetAccountGroups(ctx)
	if err != nil {
		return nil, err
	}
	date = models.Date(date)
	monthStart := repositories.MonthStart(date)
	lastMonth := monthStart.AddDate(0, -1, 0)
	yearStart := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	chart := &budgetChart{date: date, groups: make(map[int]models.BudgetAccountGroup, len(groups))}
	for _, g := range groups {
		chart.groups[g.Number] = g
	}

	sums := []struct {
		dest     *map[string]decimal.Decimal
		from, to time.Time
		budget   bool
	}{
		{&chart.budget, monthStart, date, true},
		{&chart.budgetLastMonth, lastMonth, lastMonth, true},
		{&chart.budgetYTD, yearStart, date, true},
		{&chart.posted, monthStart, date, false},
		{&chart.postedLastMonth, lastMonth, repositories.MonthEnd(lastMonth), false},
		{&chart.postedYTD, yearStart, date, false},
	}
	for _, sum := range sums {
		var values map[string]decimal.Decimal
		if sum.budget {
			values, err = s.Finance.BudgetInfos(ctx, accounting, sum.from, sum.to)
		} else {
			values, err = s.Finance.BudgetAccountPostings(ctx, accounting, sum.from, sum.to)
		}
		if err != nil {
			return nil, err
		}
		*sum.dest = values
	}
	return chart, nil
}

func (c *budgetChart) budgetAccountView(a models.BudgetAccount) contracts.BudgetAccountView {
	group := c.groups[a.BudgetAccountGroupNumber]
	budget := c.budget[a.AccountNumber]
	posted := c.posted[a.AccountNumber]
	return contracts.BudgetAccountView{
		AccountingNumber:   a.AccountingNumber,
		AccountNumber:      a.AccountNumber,
		Name:               a.Name,
		Description:        a.Description,
		Note:               a.Note,
		BudgetAccountGroup: contracts.BudgetAccountGroupView{Number: a.BudgetAccountGroupNumber, Name: group.Name},
		StatusDate:         c.date,
		Budget:             budget,
		Posted:             posted,
		Available:          posted.Sub(budget),
		BudgetLastMonth:    c.budgetLastMonth[a.AccountNumber],
		PostedLastMonth:    c.postedLastMonth[a.AccountNumber],
		BudgetYearToDate:   c.budgetYTD[a.AccountNumber],
		PostedYearToDate:   c.postedYTD[a.AccountNumber],
	}
}

// postingNames resolves the names shown on posting lines.
type postingNames struct {
	accounts       map[string]string
	budgetAccounts map[string]string
	addresses      map[int]string
}

func (s *FinanceService) newPostingNames(ctx context.Context, accounting int) (*postingNames, error) {
	accounts, err := s.Finance.ListAccounts(ctx, accounting)
	if err != nil {
		return nil, err
	}
	budgetAccounts, err := s.Finance.ListBudgetAccounts(ctx, accounting)
	if err != nil {
		return nil, err
	}
	names := &postingNames{
		accounts:       make(map[string]string, len(accounts)),
		budgetAccounts: make(map[string]string, len(budgetAccounts)),
		addresses:      make(map[int]string),
	}
	for _, a := range accounts {
		names.accounts[a.AccountNumber] = a.Name
	}
	for _, a := range budgetAccounts {
		names.budgetAccounts[a.AccountNumber] = a.Name
	}
	for _, addressType := range []string{models.AddressTypePerson, models.AddressTypeCompany} {
		addresses, err := s.Addresses.ListAddresses(ctx, addressType)
		if err != nil {
			return nil, err
		}
		for _, a := range addresses {
			names.addresses[a.Number] = a.FullName()
		}
	}
	return names, nil
}

func (n *postingNames) postingView(p models.Posting) contracts.PostingView {
	view := contracts.PostingView{
		AccountingNumber: p.AccountingNumber,
		RunningNumber:    p.RunningNumber,
		Date:             p.Date,
		Reference:        p.Reference,
		AccountNumber:    p.AccountNumber,
		AccountName:      n.accounts[p.AccountNumber],
		Text:             p.Text,
		Debit:            p.Debit,
		Credit:           p.Credit,
		AddressNumber:    p.AddressNumber,
	}
	if p.BudgetAccountNumber != nil {
		view.BudgetAccountNumber = *p.BudgetAccountNumber
		view.BudgetAccountName = n.budgetAccounts[*p.BudgetAccountNumber]
	}
	if p.AddressNumber != nil {
		view.AddressName = n.addresses[*p.AddressNumber]
	}
	return view
}
