package controllers

import (
	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/services/container"
)

// defaultPostingCount is used when the posting list is requested without count.
const defaultPostingCount = 50

// FinanceController 处理财务相关的请求
type FinanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFinanceController 创建一个新的财务控制器
func NewFinanceController(ctx *gin.Context, container *container.ServiceContainer) *FinanceController {
	return &FinanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleFinanceFunc 返回一个处理财务请求的Gin处理函数
func HandleFinanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFinanceController(ctx, container)

		switch method {
		case "getAccountings":
			controller.GetAccountings()
		case "getAccounting":
			controller.GetAccounting()
		case "addAccounting":
			controller.AddAccounting()
		case "modifyAccounting":
			controller.ModifyAccounting()
		case "getAccountGroups":
			controller.GetAccountGroups()
		case "addAccountGroup":
			controller.AddAccountGroup()
		case "modifyAccountGroup":
			controller.ModifyAccountGroup()
		case "getBudgetAccountGroups":
			controller.GetBudgetAccountGroups()
		case "addBudgetAccountGroup":
			controller.AddBudgetAccountGroup()
		case "modifyBudgetAccountGroup":
			controller.ModifyBudgetAccountGroup()
		case "getChartOfAccounts":
			controller.GetChartOfAccounts()
		case "getAccount":
			controller.GetAccount()
		case "addAccount":
			controller.AddAccount()
		case "modifyAccount":
			controller.ModifyAccount()
		case "setCreditInfo":
			controller.SetCreditInfo()
		case "getBudgetChartOfAccounts":
			controller.GetBudgetChartOfAccounts()
		case "addBudgetAccount":
			controller.AddBudgetAccount()
		case "modifyBudgetAccount":
			controller.ModifyBudgetAccount()
		case "setBudgetInfo":
			controller.SetBudgetInfo()
		case "getPostings":
			controller.GetPostings()
		case "addPosting":
			controller.AddPosting()
		case "getDebtors":
			controller.GetDebtors()
		case "getCreditors":
			controller.GetCreditors()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1 GetAccountings 获取所有账簿
// @Summary      List accountings
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.AccountingView}
// @Router       /finance/accountings [get]
func (c *FinanceController) GetAccountings() {
	query[[]contracts.AccountingView](c.Ctx, c.Container, &contracts.AccountingListGetQuery{})
}

// 2 GetAccounting 获取账簿
// @Summary      Get accounting
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Success      200  {object}  SuccessResponse{data=contracts.AccountingView}
// @Failure      404  {object}  ErrorResponse
// @Router       /finance/accountings/{accounting} [get]
func (c *FinanceController) GetAccounting() {
	var q contracts.AccountingGetQuery
	if !bindURI(c.Ctx, &q) {
		return
	}
	query[*contracts.AccountingView](c.Ctx, c.Container, &q)
}

// 3 AddAccounting 添加账簿
// @Summary      Add accounting
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.AccountingAddCommand true "Accounting"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      404  {object}  ErrorResponse "Letterhead not found"
// @Router       /finance/accountings [post]
func (c *FinanceController) AddAccounting() {
	var command contracts.AccountingAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 4 ModifyAccounting 修改账簿
// @Summary      Modify accounting
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        request body contracts.AccountingModifyCommand true "Accounting"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/accountings/{accounting} [put]
func (c *FinanceController) ModifyAccounting() {
	var command contracts.AccountingModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 5 GetAccountGroups 获取账户组
// @Summary      List account groups
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.AccountGroupView}
// @Router       /finance/account-groups [get]
func (c *FinanceController) GetAccountGroups() {
	query[[]contracts.AccountGroupView](c.Ctx, c.Container, &contracts.AccountGroupListGetQuery{})
}

// 6 AddAccountGroup 添加账户组
// @Summary      Add account group
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.AccountGroupAddCommand true "Account group"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/account-groups [post]
func (c *FinanceController) AddAccountGroup() {
	var command contracts.AccountGroupAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 7 ModifyAccountGroup 修改账户组
// @Summary      Modify account group
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Account group number"
// @Param        request body contracts.AccountGroupModifyCommand true "Account group"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/account-groups/{number} [put]
func (c *FinanceController) ModifyAccountGroup() {
	var command contracts.AccountGroupModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 8 GetBudgetAccountGroups 获取预算账户组
// @Summary      List budget account groups
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.BudgetAccountGroupView}
// @Router       /finance/budget-account-groups [get]
func (c *FinanceController) GetBudgetAccountGroups() {
	query[[]contracts.BudgetAccountGroupView](c.Ctx, c.Container, &contracts.BudgetAccountGroupListGetQuery{})
}

// 9 AddBudgetAccountGroup 添加预算账户组
// @Summary      Add budget account group
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.BudgetAccountGroupAddCommand true "Budget account group"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/budget-account-groups [post]
func (c *FinanceController) AddBudgetAccountGroup() {
	var command contracts.BudgetAccountGroupAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 10 ModifyBudgetAccountGroup 修改预算账户组
// @Summary      Modify budget account group
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Budget account group number"
// @Param        request body contracts.BudgetAccountGroupModifyCommand true "Budget account group"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/budget-account-groups/{number} [put]
func (c *FinanceController) ModifyBudgetAccountGroup() {
	var command contracts.BudgetAccountGroupModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 11 GetChartOfAccounts 获取账户表
// @Summary      Chart of accounts
// @Description  Accounts with credit, balance and available amount at the status date
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        status_date query string false "Status date (YYYY-MM-DD), default today"
// @Success      200  {object}  SuccessResponse{data=[]contracts.AccountView}
// @Router       /finance/accountings/{accounting}/accounts [get]
func (c *FinanceController) GetChartOfAccounts() {
	var q contracts.ChartOfAccountsGetQuery
	if !bindURI(c.Ctx, &q) || !bindQuery(c.Ctx, &q) {
		return
	}
	query[[]contracts.AccountView](c.Ctx, c.Container, &q)
}

// 12 GetAccount 获取账户
// @Summary      Get account
// @Description  The account at the status date with its latest postings
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        account path string true "Account number"
// @Param        status_date query string false "Status date (YYYY-MM-DD), default today"
// @Success      200  {object}  SuccessResponse{data=contracts.AccountDetailView}
// @Failure      404  {object}  ErrorResponse
// @Router       /finance/accountings/{accounting}/accounts/{account} [get]
func (c *FinanceController) GetAccount() {
	var q contracts.AccountGetQuery
	if !bindURI(c.Ctx, &q) || !bindQuery(c.Ctx, &q) {
		return
	}
	query[*contracts.AccountDetailView](c.Ctx, c.Container, &q)
}

// 13 AddAccount 添加账户
// @Summary      Add account
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        request body contracts.AccountAddCommand true "Account"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/accountings/{accounting}/accounts [post]
func (c *FinanceController) AddAccount() {
	var command contracts.AccountAddCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 14 ModifyAccount 修改账户
// @Summary      Modify account
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        account path string true "Account number"
// @Param        request body contracts.AccountData true "Account"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/accountings/{accounting}/accounts/{account} [put]
func (c *FinanceController) ModifyAccount() {
	var command contracts.AccountModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 15 SetCreditInfo 设置信用额度
// @Summary      Set credit info
// @Description  Sets the credit of an account for one month
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        account path string true "Account number"
// @Param        request body contracts.CreditInfoSetCommand true "Credit info"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/accountings/{accounting}/accounts/{account}/credit-info [put]
func (c *FinanceController) SetCreditInfo() {
	var command contracts.CreditInfoSetCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 16 GetBudgetChartOfAccounts 获取预算账户表
// @Summary      Budget chart of accounts
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        status_date query string false "Status date (YYYY-MM-DD), default today"
// @Success      200  {object}  SuccessResponse{data=[]contracts.BudgetAccountView}
// @Router       /finance/accountings/{accounting}/budget-accounts [get]
func (c *FinanceController) GetBudgetChartOfAccounts() {
	var q contracts.BudgetChartOfAccountsGetQuery
	if !bindURI(c.Ctx, &q) || !bindQuery(c.Ctx, &q) {
		return
	}
	query[[]contracts.BudgetAccountView](c.Ctx, c.Container, &q)
}

// 17 AddBudgetAccount 添加预算账户
// @Summary      Add budget account
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        request body contracts.BudgetAccountAddCommand true "Budget account"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/accountings/{accounting}/budget-accounts [post]
func (c *FinanceController) AddBudgetAccount() {
	var command contracts.BudgetAccountAddCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 18 ModifyBudgetAccount 修改预算账户
// @Summary      Modify budget account
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        account path string true "Account number"
// @Param        request body contracts.BudgetAccountData true "Budget account"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/accountings/{accounting}/budget-accounts/{account} [put]
func (c *FinanceController) ModifyBudgetAccount() {
	var command contracts.BudgetAccountModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 19 SetBudgetInfo 设置预算
// @Summary      Set budget info
// @Description  Sets income and expenses of a budget account for one month
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        account path string true "Budget account number"
// @Param        request body contracts.BudgetInfoSetCommand true "Budget info"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /finance/accountings/{accounting}/budget-accounts/{account}/budget-info [put]
func (c *FinanceController) SetBudgetInfo() {
	var command contracts.BudgetInfoSetCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 20 GetPostings 获取最新记账行
// @Summary      Latest postings
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        status_date query string false "Status date (YYYY-MM-DD), default today"
// @Param        count query int false "Number of postings (1-250), default 50"
// @Success      200  {object}  SuccessResponse{data=[]contracts.PostingView}
// @Router       /finance/accountings/{accounting}/postings [get]
func (c *FinanceController) GetPostings() {
	var q contracts.PostingListGetQuery
	if !bindURI(c.Ctx, &q) || !bindQuery(c.Ctx, &q) {
		return
	}
	if c.Ctx.Query("count") == "" {
		q.Count = defaultPostingCount
	}
	query[[]contracts.PostingView](c.Ctx, c.Container, &q)
}

// 21 AddPosting 记账
// @Summary      Add posting
// @Description  Adds one posting line and reports overdrawn accounts
// @Tags         Finance
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        request body contracts.PostingAddCommand true "Posting line"
// @Success      200  {object}  SuccessResponse{data=contracts.PostingResultView}
// @Failure      422  {object}  ErrorResponse
// @Router       /finance/accountings/{accounting}/postings [post]
func (c *FinanceController) AddPosting() {
	var command contracts.PostingAddCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.PostingResultView](c.Ctx, c.Container, &command)
}

// 22 GetDebtors 获取债务人
// @Summary      Debtors
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        status_date query string false "Status date (YYYY-MM-DD), default today"
// @Success      200  {object}  SuccessResponse{data=[]contracts.AddressAccountView}
// @Router       /finance/accountings/{accounting}/debtors [get]
func (c *FinanceController) GetDebtors() {
	var q contracts.DebtorListGetQuery
	if !bindURI(c.Ctx, &q) || !bindQuery(c.Ctx, &q) {
		return
	}
	query[[]contracts.AddressAccountView](c.Ctx, c.Container, &q)
}

// 23 GetCreditors 获取债权人
// @Summary      Creditors
// @Tags         Finance
// @Produce      json,xml
// @Security     BearerAuth
// @Param        accounting path int true "Accounting number"
// @Param        status_date query string false "Status date (YYYY-MM-DD), default today"
// @Success      200  {object}  SuccessResponse{data=[]contracts.AddressAccountView}
// @Router       /finance/accountings/{accounting}/creditors [get]
func (c *FinanceController) GetCreditors() {
	var q contracts.CreditorListGetQuery
	if !bindURI(c.Ctx, &q) || !bindQuery(c.Ctx, &q) {
		return
	}
	query[[]contracts.AddressAccountView](c.Ctx, c.Container, &q)
}
