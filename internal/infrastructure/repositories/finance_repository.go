package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"osintranet-http-service/internal/domain/models"
)

// InterfaceFinanceRepository 财务仓储接口
type InterfaceFinanceRepository interface {
	ListAccountings(ctx context.Context) ([]models.Accounting, error)
	GetAccounting(ctx context.Context, number int) (*models.Accounting, error)
	CreateAccounting(ctx context.Context, accounting *models.Accounting) error
	UpdateAccounting(ctx context.Context, accounting *models.Accounting) error

	ListAccountGroups(ctx context.Context) ([]models.AccountGroup, error)
	GetAccountGroup(ctx context.Context, number int) (*models.AccountGroup, error)
	SaveAccountGroup(ctx context.Context, group *models.AccountGroup) error
	ListBudgetAccountGroups(ctx context.Context) ([]models.BudgetAccountGroup, error)
	GetBudgetAccountGroup(ctx context.Context, number int) (*models.BudgetAccountGroup, error)
	SaveBudgetAccountGroup(ctx context.Context, group *models.BudgetAccountGroup) error

	ListAccounts(ctx context.Context, accounting int) ([]models.Account, error)
	GetAccount(ctx context.Context, accounting int, number string) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account) error
	UpdateAccount(ctx context.Context, account *models.Account) error
	ListBudgetAccounts(ctx context.Context, accounting int) ([]models.BudgetAccount, error)
	GetBudgetAccount(ctx context.Context, accounting int, number string) (*models.BudgetAccount, error)
	CreateBudgetAccount(ctx context.Context, account *models.BudgetAccount) error
	UpdateBudgetAccount(ctx context.Context, account *models.BudgetAccount) error

	CreditInfos(ctx context.Context, accounting, year, month int) (map[string]decimal.Decimal, error)
	SetCreditInfo(ctx context.Context, info *models.CreditInfo) error
	BudgetInfos(ctx context.Context, accounting int, from, to time.Time) (map[string]decimal.Decimal, error)
	SetBudgetInfo(ctx context.Context, info *models.BudgetInfo) error

	AccountBalances(ctx context.Context, accounting int, statusDate time.Time) (map[string]decimal.Decimal, error)
	BudgetAccountPostings(ctx context.Context, accounting int, from, to time.Time) (map[string]decimal.Decimal, error)
	AddressBalances(ctx context.Context, accounting int, statusDate time.Time) (map[int]decimal.Decimal, error)
	ListPostings(ctx context.Context, filter PostingFilter) ([]models.Posting, error)
	AddPosting(ctx context.Context, posting *models.Posting) error
}

// PostingFilter selects the newest Count postings of an accounting dated on
// or before StatusDate, optionally of one account.
type PostingFilter struct {
	Accounting int
	StatusDate time.Time
	Account    string
	Count      int
}

// FinanceRepository 财务仓储
type FinanceRepository struct {
	Repository
}

// NewFinanceRepository 创建财务仓储
func NewFinanceRepository(base Repository) InterfaceFinanceRepository {
	return &FinanceRepository{Repository: base}
}

// 1 ListAccountings 获取所有账簿
func (r *FinanceRepository) ListAccountings(ctx context.Context) ([]models.Accounting, error) {
	var accountings []models.Accounting
	if err := r.db(ctx).Order("number").Find(&accountings).Error; err != nil {
		return nil, dbError(err, "list accountings")
	}
	return accountings, nil
}

// 2 GetAccounting 获取账簿
func (r *FinanceRepository) GetAccounting(ctx context.Context, number int) (*models.Accounting, error) {
	var accounting models.Accounting
	if err := r.db(ctx).First(&accounting, "number = ?", number).Error; err != nil {
		return nil, dbError(err, "accounting %d", number)
	}
	return &accounting, nil
}

// 3 CreateAccounting 创建账簿
func (r *FinanceRepository) CreateAccounting(ctx context.Context, accounting *models.Accounting) error {
	return dbError(r.db(ctx).Create(accounting).Error, "create accounting %d", accounting.Number)
}

// 4 UpdateAccounting 更新账簿
func (r *FinanceRepository) UpdateAccounting(ctx context.Context, accounting *models.Accounting) error {
	return dbError(r.db(ctx).Save(accounting).Error, "update accounting %d", accounting.Number)
}

// 5 ListAccountGroups 获取所有账户组
func (r *FinanceRepository) ListAccountGroups(ctx context.Context) ([]models.AccountGroup, error) {
	return cached(ctx, r.Repository, PrefixFinance+":account", func(ctx context.Context) ([]models.AccountGroup, error) {
		var groups []models.AccountGroup
		if err := r.db(ctx).Order("number").Find(&groups).Error; err != nil {
			return nil, dbError(err, "list account groups")
		}
		return groups, nil
	})
}

// 6 GetAccountGroup 获取账户组
func (r *FinanceRepository) GetAccountGroup(ctx context.Context, number int) (*models.AccountGroup, error) {
	var group models.AccountGroup
	if err := r.db(ctx).First(&group, "number = ?", number).Error; err != nil {
		return nil, dbError(err, "account group %d", number)
	}
	return &group, nil
}

// 7 SaveAccountGroup creates or updates an account group.
func (r *FinanceRepository) SaveAccountGroup(ctx context.Context, group *models.AccountGroup) error {
	if err := r.db(ctx).Save(group).Error; err != nil {
		return dbError(err, "save account group %d", group.Number)
	}
	r.invalidate(ctx, PrefixFinance)
	return nil
}

// 8 ListBudgetAccountGroups 获取所有预算账户组
func (r *FinanceRepository) ListBudgetAccountGroups(ctx context.Context) ([]models.BudgetAccountGroup, error) {
	return cached(ctx, r.Repository, PrefixFinance+":budget", func(ctx context.Context) ([]models.BudgetAccountGroup, error) {
		var groups []models.BudgetAccountGroup
		if err := r.db(ctx).Order("number").Find(&groups).Error; err != nil {
			return nil, dbError(err, "list budget account groups")
		}
		return groups, nil
	})
}

// 9 GetBudgetAccountGroup 获取预算账户组
func (r *FinanceRepository) GetBudgetAccountGroup(ctx context.Context, number int) (*models.BudgetAccountGroup, error) {
	var group models.BudgetAccountGroup
	if err := r.db(ctx).First(&group, "number = ?", number).Error; err != nil {
		return nil, dbError(err, "budget account group %d", number)
	}
	return &group, nil
}

// 10 SaveBudgetAccountGroup creates or updates a budget account group.
func (r *FinanceRepository) SaveBudgetAccountGroup(ctx context.Context, group *models.BudgetAccountGroup) error {
	if err := r.db(ctx).Save(group).Error; err != nil {
		return dbError(err, "save budget account group %d", group.Number)
	}
	r.invalidate(ctx, PrefixFinance)
	return nil
}

// 11 ListAccounts 获取账簿的所有账户
func (r *FinanceRepository) ListAccounts(ctx context.Context, accounting int) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db(ctx).Where("accounting_number = ?", accounting).Order("account_number").Find(&accounts).Error
	if err != nil {
		return nil, dbError(err, "list accounts of accounting %d", accounting)
	}
	return accounts, nil
}

// 12 GetAccount 获取账户
func (r *FinanceRepository) GetAccount(ctx context.Context, accounting int, number string) (*models.Account, error) {
	var account models.Account
	err := r.db(ctx).First(&account, "accounting_number = ? AND account_number = ?", accounting, number).Error
	if err != nil {
		return nil, dbError(err, "account %d/%s", accounting, number)
	}
	return &account, nil
}

// 13 CreateAccount 创建账户
func (r *FinanceRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	return dbError(r.db(ctx).Create(account).Error, "create account %d/%s", account.AccountingNumber, account.AccountNumber)
}

// 14 UpdateAccount 更新账户
func (r *FinanceRepository) UpdateAccount(ctx context.Context, account *models.Account) error {
	return dbError(r.db(ctx).Save(account).Error, "update account %d/%s", account.AccountingNumber, account.AccountNumber)
}

// 15 ListBudgetAccounts 获取账簿的所有预算账户
func (r *FinanceRepository) ListBudgetAccounts(ctx context.Context, accounting int) ([]models.BudgetAccount, error) {
	var accounts []models.BudgetAccount
	err := r.db(ctx).Where("accounting_number = ?", accounting).Order("account_number").Find(&accounts).Error
	if err != nil {
		return nil, dbError(err, "list budget accounts of accounting %d", accounting)
	}
	return accounts, nil
}

// 16 GetBudgetAccount 获取预算账户
func (r *FinanceRepository) GetBudgetAccount(ctx context.Context, accounting int, number string) (*models.BudgetAccount, error) {
	var account models.BudgetAccount
	err := r.db(ctx).First(&account, "accounting_number = ? AND account_number = ?", accounting, number).Error
	if err != nil {
		return nil, dbError(err, "budget account %d/%s", accounting, number)
	}
	return &account, nil
}

// 17 CreateBudgetAccount 创建预算账户
func (r *FinanceRepository) CreateBudgetAccount(ctx context.Context, account *models.BudgetAccount) error {
	return dbError(r.db(ctx).Create(account).Error, "create budget account %d/%s", account.AccountingNumber, account.AccountNumber)
}

// 18 UpdateBudgetAccount 更新预算账户
func (r *FinanceRepository) UpdateBudgetAccount(ctx context.Context, account *models.BudgetAccount) error {
	return dbError(r.db(ctx).Save(account).Error, "update budget account %d/%s", account.AccountingNumber, account.AccountNumber)
}

// 19 CreditInfos returns the credit per account for one month.
func (r *FinanceRepository) CreditInfos(ctx context.Context, accounting, year, month int) (map[string]decimal.Decimal, error) {
	var infos []models.CreditInfo
	err := r.db(ctx).
		Where("accounting_number = ? AND year = ? AND month = ?", accounting, year, month).
		Find(&infos).Error
	if err != nil {
		return nil, dbError(err, "credit infos %d %04d-%02d", accounting, year, month)
	}
	credits := make(map[string]decimal.Decimal, len(infos))
	for _, info := range infos {
		credits[info.AccountNumber] = info.Credit.Round(2)
	}
	return credits, nil
}

// 20 SetCreditInfo inserts or replaces the credit of one month.
func (r *FinanceRepository) SetCreditInfo(ctx context.Context, info *models.CreditInfo) error {
	err := r.db(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(info).Error
	return dbError(err, "set credit info %d/%s %04d-%02d", info.AccountingNumber, info.AccountNumber, info.Year, info.Month)
}

// 21 BudgetInfos sums income minus expenses per budget account for the
// months from..to, both inclusive.
func (r *FinanceRepository) BudgetInfos(ctx context.Context, accounting int, from, to time.Time) (map[string]decimal.Decimal, error) {
	rows, err := r.db(ctx).Model(&models.BudgetInfo{}).
		Select("account_number, COALESCE(SUM(income - expenses), 0)").
		Where("accounting_number = ? AND year * 100 + month BETWEEN ? AND ?", accounting, yearMonth(from), yearMonth(to)).
		Group("account_number").
		Rows()
	if err != nil {
		return nil, dbError(err, "budget infos of accounting %d", accounting)
	}
	return scanSums[string](rows, "budget infos")
}

// 22 SetBudgetInfo inserts or replaces the budget of one month.
func (r *FinanceRepository) SetBudgetInfo(ctx context.Context, info *models.BudgetInfo) error {
	err := r.db(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(info).Error
	return dbError(err, "set budget info %d/%s %04d-%02d", info.AccountingNumber, info.AccountNumber, info.Year, info.Month)
}

// 23 AccountBalances sums debit minus credit per account up to the status date.
func (r *FinanceRepository) AccountBalances(ctx context.Context, accounting int, statusDate time.Time) (map[string]decimal.Decimal, error) {
	rows, err := r.db(ctx).Model(&models.Posting{}).
		Select("account_number, COALESCE(SUM(debit - credit), 0)").
		Where("accounting_number = ? AND date <= ?", accounting, models.Date(statusDate)).
		Group("account_number").
		Rows()
	if err != nil {
		return nil, dbError(err, "account balances of accounting %d", accounting)
	}
	return scanSums[string](rows, "account balances")
}

// 24 BudgetAccountPostings sums debit minus credit per budget account for
// postings dated from..to, both inclusive.
func (r *FinanceRepository) BudgetAccountPostings(ctx context.Context, accounting int, from, to time.Time) (map[string]decimal.Decimal, error) {
	rows, err := r.db(ctx).Model(&models.Posting{}).
		Select("budget_account_number, COALESCE(SUM(debit - credit), 0)").
		Where("accounting_number = ? AND budget_account_number IS NOT NULL AND date >= ? AND date <= ?",
			accounting, models.Date(from), models.Date(to)).
		Group("budget_account_number").
		Rows()
	if err != nil {
		return nil, dbError(err, "budget account postings of accounting %d", accounting)
	}
	return scanSums[string](rows, "budget account postings")
}

// 25 AddressBalances sums debit minus credit per address up to the status date.
func (r *FinanceRepository) AddressBalances(ctx context.Context, accounting int, statusDate time.Time) (map[int]decimal.Decimal, error) {
	rows, err := r.db(ctx).Model(&models.Posting{}).
		Select("address_number, COALESCE(SUM(debit - credit), 0)").
		Where("accounting_number = ? AND address_number IS NOT NULL AND date <= ?", accounting, models.Date(statusDate)).
		Group("address_number").
		Rows()
	if err != nil {
		return nil, dbError(err, "address balances of accounting %d", accounting)
	}
	return scanSums[int](rows, "address balances")
}

// 26 ListPostings 获取记账行，按日期和流水号倒序
func (r *FinanceRepository) ListPostings(ctx context.Context, filter PostingFilter) ([]models.Posting, error) {
	query := r.db(ctx).
		Where("accounting_number = ? AND date <= ?", filter.Accounting, models.Date(filter.StatusDate)).
		Order("date DESC, running_number DESC")
	if filter.Account != "" {
		query = query.Where("account_number = ?", filter.Account)
	}
	if filter.Count > 0 {
		query = query.Limit(filter.Count)
	}

	var postings []models.Posting
	if err := query.Find(&postings).Error; err != nil {
		return nil, dbError(err, "list postings of accounting %d", filter.Accounting)
	}
	return postings, nil
}

// 27 AddPosting gives the posting the next running number of its accounting
// and stores it in one transaction.
func (r *FinanceRepository) AddPosting(ctx context.Context, posting *models.Posting) error {
	err := r.db(ctx).Transaction(func(tx *gorm.DB) error {
		// 锁定会计行，并发记账串行分配流水号
		var accounting models.Accounting
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("number = ?", posting.AccountingNumber).First(&accounting).Error
		if err != nil {
			return err
		}

		var last sql.NullInt64
		err = tx.Model(&models.Posting{}).
			Select("MAX(running_number)").
			Where("accounting_number = ?", posting.AccountingNumber).
			Row().Scan(&last)
		if err != nil {
			return err
		}
		posting.RunningNumber = int(last.Int64) + 1
		posting.Date = models.Date(posting.Date)
		return tx.Create(posting).Error
	})
	return dbError(err, "add posting to accounting %d", posting.AccountingNumber)
}

func yearMonth(t time.Time) int {
	return t.Year()*100 + int(t.Month())
}

func scanSums[K comparable](rows *sql.Rows, what string) (map[K]decimal.Decimal, error) {
	defer rows.Close()
	sums := make(map[K]decimal.Decimal)
	for rows.Next() {
		var key K
		var sum decimal.Decimal
		if err := rows.Scan(&key, &sum); err != nil {
			return nil, dbError(err, "scan %s", what)
		}
		sums[key] = sum.Round(2)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "read %s", what)
	}
	return sums, nil
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}
