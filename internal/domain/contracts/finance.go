package contracts

import (
	"time"

	"github.com/shopspring/decimal"

	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
)

// AccountingListGetQuery 获取所有账簿
type AccountingListGetQuery struct{}

// AccountingGetQuery 获取账簿
type AccountingGetQuery struct {
	Number int `json:"number" uri:"accounting" validate:"min=1"`
}

// AccountingView 账簿视图
type AccountingView struct {
	Number     int            `json:"number" xml:"number"`
	Name       string         `json:"name" xml:"name"`
	Letterhead LetterheadView `json:"letterhead" xml:"letterhead"`
}

// AccountGroupListGetQuery 获取所有账户组
type AccountGroupListGetQuery struct{}

// AccountGroupView 账户组视图
type AccountGroupView struct {
	Number int    `json:"number" xml:"number"`
	Name   string `json:"name" xml:"name"`
	Type   string `json:"type" xml:"type"`
}

// BudgetAccountGroupListGetQuery 获取所有预算账户组
type BudgetAccountGroupListGetQuery struct{}

// BudgetAccountGroupView 预算账户组视图
type BudgetAccountGroupView struct {
	Number int    `json:"number" xml:"number"`
	Name   string `json:"name" xml:"name"`
}

// ChartOfAccountsGetQuery returns the accounts of an accounting with their
// balances at the status date. A zero status date means today.
type ChartOfAccountsGetQuery struct {
	Accounting int       `json:"accounting" uri:"accounting" validate:"min=1"`
	StatusDate time.Time `json:"status_date" form:"status_date" time_format:"2006-01-02" time_utc:"1"`
}

// AccountGetQuery returns one account and its latest postings.
type AccountGetQuery struct {
	Accounting int       `json:"accounting" uri:"accounting" validate:"min=1"`
	Account    string    `json:"account" uri:"account" validate:"required,accountnumber"`
	StatusDate time.Time `json:"status_date" form:"status_date" time_format:"2006-01-02" time_utc:"1"`
}

// AccountView 账户视图
type AccountView struct {
	AccountingNumber int              `json:"accounting_number" xml:"accounting_number"`
	AccountNumber    string           `json:"account_number" xml:"account_number"`
	Name             string           `json:"name" xml:"name"`
	Description      string           `json:"description" xml:"description"`
	Note             string           `json:"note" xml:"note"`
	AccountGroup     AccountGroupView `json:"account_group" xml:"account_group"`
	StatusDate       time.Time        `json:"status_date" xml:"status_date"`
	Credit           decimal.Decimal  `json:"credit" xml:"credit"`
	Balance          decimal.Decimal  `json:"balance" xml:"balance"`
	Available        decimal.Decimal  `json:"available" xml:"available"`
}

// AccountDetailView is an account with its latest postings.
type AccountDetailView struct {
	AccountView
	Postings []PostingView `json:"postings" xml:"postings>posting"`
}

// BudgetChartOfAccountsGetQuery returns the budget accounts of an accounting
// with budget and posted amounts at the status date.
type BudgetChartOfAccountsGetQuery struct {
	Accounting int       `json:"accounting" uri:"accounting" validate:"min=1"`
	StatusDate time.Time `json:"status_date" form:"status_date" time_format:"2006-01-02" time_utc:"1"`
}

// BudgetAccountView 预算账户视图
type BudgetAccountView struct {
	AccountingNumber   int                    `json:"accounting_number" xml:"accounting_number"`
	AccountNumber      string                 `json:"account_number" xml:"account_number"`
	Name               string                 `json:"name" xml:"name"`
	Description        string                 `json:"description" xml:"description"`
	Note               string                 `json:"note" xml:"note"`
	BudgetAccountGroup BudgetAccountGroupView `json:"budget_account_group" xml:"budget_account_group"`
	StatusDate         time.Time              `json:"status_date" xml:"status_date"`
	Budget             decimal.Decimal        `json:"budget" xml:"budget"`
	Posted             decimal.Decimal        `json:"posted" xml:"posted"`
	Available          decimal.Decimal        `json:"available" xml:"available"`
	BudgetLastMonth    decimal.Decimal        `json:"budget_last_month" xml:"budget_last_month"`
	PostedLastMonth    decimal.Decimal        `json:"posted_last_month" xml:"posted_last_month"`
	BudgetYearToDate   decimal.Decimal        `json:"budget_year_to_date" xml:"budget_year_to_date"`
	PostedYearToDate   decimal.Decimal        `json:"posted_year_to_date" xml:"posted_year_to_date"`
}

// PostingListGetQuery returns the newest Count postings up to the status date.
type PostingListGetQuery struct {
	Accounting int       `json:"accounting" uri:"accounting" validate:"min=1"`
	StatusDate time.Time `json:"status_date" form:"status_date" time_format:"2006-01-02" time_utc:"1"`
	Count      int       `json:"count" form:"count" validate:"min=1,max=250"`
}

// PostingView 记账行视图
type PostingView struct {
	AccountingNumber    int             `json:"accounting_number" xml:"accounting_number"`
	RunningNumber       int             `json:"running_number" xml:"running_number"`
	Date                time.Time       `json:"date" xml:"date"`
	Reference           string          `json:"reference" xml:"reference"`
	AccountNumber       string          `json:"account_number" xml:"account_number"`
	AccountName         string          `json:"account_name" xml:"account_name"`
	Text                string          `json:"text" xml:"text"`
	BudgetAccountNumber string          `json:"budget_account_number,omitempty" xml:"budget_account_number,omitempty"`
	BudgetAccountName   string          `json:"budget_account_name,omitempty" xml:"budget_account_name,omitempty"`
	Debit               decimal.Decimal `json:"debit" xml:"debit"`
	Credit              decimal.Decimal `json:"credit" xml:"credit"`
	AddressNumber       *int            `json:"address_number,omitempty" xml:"address_number,omitempty"`
	AddressName         string          `json:"address_name,omitempty" xml:"address_name,omitempty"`
}

// DebtorListGetQuery lists addresses owing money at the status date.
type DebtorListGetQuery struct {
	Accounting int       `json:"accounting" uri:"accounting" validate:"min=1"`
	StatusDate time.Time `json:"status_date" form:"status_date" time_format:"2006-01-02" time_utc:"1"`
}

// CreditorListGetQuery lists addresses owed money at the status date.
type CreditorListGetQuery struct {
	Accounting int       `json:"accounting" uri:"accounting" validate:"min=1"`
	StatusDate time.Time `json:"status_date" form:"status_date" time_format:"2006-01-02" time_utc:"1"`
}

// AddressAccountView is an address with its balance in an accounting.
type AddressAccountView struct {
	Number       int             `json:"number" xml:"number"`
	Name         string          `json:"name" xml:"name"`
	PrimaryPhone string          `json:"primary_phone" xml:"primary_phone"`
	MailAddress  string          `json:"mail_address" xml:"mail_address"`
	StatusDate   time.Time       `json:"status_date" xml:"status_date"`
	Balance      decimal.Decimal `json:"balance" xml:"balance"`
}

// AccountingAddCommand 添加账簿
type AccountingAddCommand struct {
	Number           int    `json:"number" validate:"min=1"`
	Name             string `json:"name" validate:"required,max=256"`
	LetterheadNumber int    `json:"letterhead_number" validate:"min=1,max=99"`
}

// AccountingModifyCommand 修改账簿
type AccountingModifyCommand struct {
	Number           int    `json:"number" uri:"accounting" validate:"min=1"`
	Name             string `json:"name" validate:"required,max=256"`
	LetterheadNumber int    `json:"letterhead_number" validate:"min=1,max=99"`
}

// AccountGroupAddCommand 添加账户组
type AccountGroupAddCommand struct {
	Number int    `json:"number" validate:"min=1"`
	Name   string `json:"name" validate:"required,max=256"`
	Type   string `json:"type" validate:"required,oneof=assets liabilities"`
}

// AccountGroupModifyCommand 修改账户组
type AccountGroupModifyCommand struct {
	Number int    `json:"number" uri:"number" validate:"min=1"`
	Name   string `json:"name" validate:"required,max=256"`
	Type   string `json:"type" validate:"required,oneof=assets liabilities"`
}

// BudgetAccountGroupAddCommand 添加预算账户组
type BudgetAccountGroupAddCommand struct {
	Number int    `json:"number" validate:"min=1"`
	Name   string `json:"name" validate:"required,max=256"`
}

// BudgetAccountGroupModifyCommand 修改预算账户组
type BudgetAccountGroupModifyCommand struct {
	Number int    `json:"number" uri:"number" validate:"min=1"`
	Name   string `json:"name" validate:"required,max=256"`
}

// AccountData is shared by account add and modify.
type AccountData struct {
	Name               string `json:"name" validate:"required,max=256"`
	Description        string `json:"description" validate:"max=256"`
	Note               string `json:"note" validate:"max=4096"`
	AccountGroupNumber int    `json:"account_group_number" validate:"min=1"`
}

// AccountAddCommand 添加账户
type AccountAddCommand struct {
	Accounting    int    `json:"accounting" uri:"accounting" validate:"min=1"`
	AccountNumber string `json:"account_number" validate:"required,accountnumber"`
	AccountData
}

// AccountModifyCommand 修改账户
type AccountModifyCommand struct {
	Accounting    int    `json:"accounting" uri:"accounting" validate:"min=1"`
	AccountNumber string `json:"account_number" uri:"account" validate:"required,accountnumber"`
	AccountData
}

// BudgetAccountData is shared by budget account add and modify.
type BudgetAccountData struct {
	Name                     string `json:"name" validate:"required,max=256"`
	Description              string `json:"description" validate:"max=256"`
	Note                     string `json:"note" validate:"max=4096"`
	BudgetAccountGroupNumber int    `json:"budget_account_group_number" validate:"min=1"`
}

// BudgetAccountAddCommand 添加预算账户
type BudgetAccountAddCommand struct {
	Accounting    int    `json:"accounting" uri:"accounting" validate:"min=1"`
	AccountNumber string `json:"account_number" validate:"required,accountnumber"`
	BudgetAccountData
}

// BudgetAccountModifyCommand 修改预算账户
type BudgetAccountModifyCommand struct {
	Accounting    int    `json:"accounting" uri:"accounting" validate:"min=1"`
	AccountNumber string `json:"account_number" uri:"account" validate:"required,accountnumber"`
	BudgetAccountData
}

// CreditInfoSetCommand sets the credit of an account for one month.
type CreditInfoSetCommand struct {
	Accounting int             `json:"accounting" uri:"accounting" validate:"min=1"`
	Account    string          `json:"account" uri:"account" validate:"required,accountnumber"`
	Year       int             `json:"year" validate:"min=1950,max=2199"`
	Month      int             `json:"month" validate:"min=1,max=12"`
	Credit     decimal.Decimal `json:"credit" validate:"dgte0"`
}

// BudgetInfoSetCommand sets the budget of a budget account for one month.
type BudgetInfoSetCommand struct {
	Accounting int             `json:"accounting" uri:"accounting" validate:"min=1"`
	Account    string          `json:"account" uri:"account" validate:"required,accountnumber"`
	Year       int             `json:"year" validate:"min=1950,max=2199"`
	Month      int             `json:"month" validate:"min=1,max=12"`
	Income     decimal.Decimal `json:"income" validate:"dgte0"`
	Expenses   decimal.Decimal `json:"expenses" validate:"dgte0"`
}

// PostingAddCommand adds one posting line.
type PostingAddCommand struct {
	Accounting    int             `json:"accounting" uri:"accounting" validate:"min=1"`
	Date          time.Time       `json:"date" validate:"required"`
	Reference     string          `json:"reference" validate:"max=16"`
	Account       string          `json:"account" validate:"required,accountnumber"`
	Text          string          `json:"text" validate:"required,max=256"`
	BudgetAccount string          `json:"budget_account" validate:"omitempty,accountnumber"`
	Debit         decimal.Decimal `json:"debit" validate:"dgte0"`
	Credit        decimal.Decimal `json:"credit" validate:"dgte0"`
	Address       *int            `json:"address" validate:"omitempty,min=1"`
}

// Validate rejects a line without amounts.
func (c *PostingAddCommand) Validate() error {
	if c.Debit.IsZero() && c.Credit.IsZero() {
		return intranet.NewBusinessError(code.ErrPostingAmountInvalid)
	}
	return nil
}

// 记账警告
const (
	WarningAccountOverdrawn       = "AccountOverdrawn"
	WarningBudgetAccountOverdrawn = "BudgetAccountOverdrawn"
)

// PostingWarningView warns about an overdrawn account after posting.
type PostingWarningView struct {
	Reason        string          `json:"reason" xml:"reason"`
	AccountNumber string          `json:"account_number" xml:"account_number"`
	Amount        decimal.Decimal `json:"amount" xml:"amount"`
}

// PostingResultView is the result of PostingAddCommand.
type PostingResultView struct {
	Posting  PostingView          `json:"posting" xml:"posting"`
	Warnings []PostingWarningView `json:"warnings" xml:"warnings>warning"`
}
