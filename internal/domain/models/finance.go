package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 账户组类型
const (
	AccountGroupTypeAssets      = "assets"
	AccountGroupTypeLiabilities = "liabilities"
)

// Accounting (regnskab) owns accounts, budget accounts and postings.
type Accounting struct {
	Number           int       `gorm:"primaryKey;autoIncrement:false" json:"number"`
	Name             string    `gorm:"type:varchar(256);not null" json:"name"`
	LetterheadNumber int       `gorm:"not null" json:"letterhead_number"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AccountGroup (kontogruppe) classifies accounts as assets or liabilities.
type AccountGroup struct {
	Number int    `gorm:"primaryKey;autoIncrement:false" json:"number"`
	Name   string `gorm:"type:varchar(256);not null" json:"name"`
	Type   string `gorm:"type:varchar(16);not null" json:"type"`
}

// BudgetAccountGroup (budgetkontogruppe).
type BudgetAccountGroup struct {
	Number int    `gorm:"primaryKey;autoIncrement:false" json:"number"`
	Name   string `gorm:"type:varchar(256);not null" json:"name"`
}

// Account (konto) within an accounting.
type Account struct {
	AccountingNumber   int       `gorm:"primaryKey;autoIncrement:false" json:"accounting_number"`
	AccountNumber      string    `gorm:"type:varchar(16);primaryKey" json:"account_number"`
	Name               string    `gorm:"type:varchar(256);not null" json:"name"`
	Description        string    `gorm:"type:varchar(256)" json:"description"`
	Note               string    `gorm:"type:varchar(4096)" json:"note"`
	AccountGroupNumber int       `gorm:"not null" json:"account_group_number"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreditInfo is the credit granted on an account for one month.
type CreditInfo struct {
	AccountingNumber int             `gorm:"primaryKey;autoIncrement:false" json:"accounting_number"`
	AccountNumber    string          `gorm:"type:varchar(16);primaryKey" json:"account_number"`
	Year             int             `gorm:"primaryKey;autoIncrement:false" json:"year"`
	Month            int             `gorm:"primaryKey;autoIncrement:false" json:"month"`
	Credit           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"credit"`
}

// BudgetAccount (budgetkonto) within an accounting.
type BudgetAccount struct {
	AccountingNumber         int       `gorm:"primaryKey;autoIncrement:false" json:"accounting_number"`
	AccountNumber            string    `gorm:"type:varchar(16);primaryKey" json:"account_number"`
	Name                     string    `gorm:"type:varchar(256);not null" json:"name"`
	Description              string    `gorm:"type:varchar(256)" json:"description"`
	Note                     string    `gorm:"type:varchar(4096)" json:"note"`
	BudgetAccountGroupNumber int       `gorm:"not null" json:"budget_account_group_number"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// BudgetInfo is the budgeted income and expenses of a budget account for one month.
type BudgetInfo struct {
	AccountingNumber int             `gorm:"primaryKey;autoIncrement:false" json:"accounting_number"`
	AccountNumber    string          `gorm:"type:varchar(16);primaryKey" json:"account_number"`
	Year             int             `gorm:"primaryKey;autoIncrement:false" json:"year"`
	Month            int             `gorm:"primaryKey;autoIncrement:false" json:"month"`
	Income           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"income"`
	Expenses         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"expenses"`
}

// Budget returns income minus expenses.
func (b BudgetInfo) Budget() decimal.Decimal {
	return b.Income.Sub(b.Expenses)
}

// Posting (bogføringslinje) is one line in the books.
type Posting struct {
	AccountingNumber    int             `gorm:"primaryKey;autoIncrement:false" json:"accounting_number"`
	RunningNumber       int             `gorm:"primaryKey;autoIncrement:false" json:"running_number"`
	Date                time.Time       `gorm:"not null;index" json:"date"`
	Reference           string          `gorm:"type:varchar(16)" json:"reference"`
	AccountNumber       string          `gorm:"type:varchar(16);not null;index" json:"account_number"`
	Text                string          `gorm:"type:varchar(256);not null" json:"text"`
	BudgetAccountNumber *string         `gorm:"type:varchar(16);index" json:"budget_account_number"`
	Debit               decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"debit"`
	Credit              decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"credit"`
	AddressNumber       *int            `gorm:"index" json:"address_number"`
	CreatedAt           time.Time       `json:"created_at"`
}
