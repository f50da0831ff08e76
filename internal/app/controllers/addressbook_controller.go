package controllers

import (
	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/services/container"
)

// AddressBookController 处理地址簿相关的请求
type AddressBookController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAddressBookController 创建一个新的地址簿控制器
func NewAddressBookController(ctx *gin.Context, container *container.ServiceContainer) *AddressBookController {
	return &AddressBookController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAddressBookFunc 返回一个处理地址簿请求的Gin处理函数
func HandleAddressBookFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAddressBookController(ctx, container)

		switch method {
		case "getTelephoneList":
			controller.GetTelephoneList()
		case "getPersons":
			controller.GetPersons()
		case "getPerson":
			controller.GetPerson()
		case "addPerson":
			controller.AddPerson()
		case "modifyPerson":
			controller.ModifyPerson()
		case "getCompanies":
			controller.GetCompanies()
		case "getCompany":
			controller.GetCompany()
		case "addCompany":
			controller.AddCompany()
		case "modifyCompany":
			controller.ModifyCompany()
		case "getPostalCodes":
			controller.GetPostalCodes()
		case "addPostalCode":
			controller.AddPostalCode()
		case "modifyPostalCode":
			controller.ModifyPostalCode()
		case "getAddressGroups":
			controller.GetAddressGroups()
		case "getAddressGroup":
			controller.GetAddressGroup()
		case "addAddressGroup":
			controller.AddAddressGroup()
		case "modifyAddressGroup":
			controller.ModifyAddressGroup()
		case "getPaymentTerms":
			controller.GetPaymentTerms()
		case "getPaymentTerm":
			controller.GetPaymentTerm()
		case "addPaymentTerm":
			controller.AddPaymentTerm()
		case "modifyPaymentTerm":
			controller.ModifyPaymentTerm()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1 GetTelephoneList 获取电话列表
// @Summary      Telephone list
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.TelephoneListView}
// @Router       /addressbook/telephone-list [get]
func (c *AddressBookController) GetTelephoneList() {
	query[[]contracts.TelephoneListView](c.Ctx, c.Container, &contracts.TelephoneListGetQuery{})
}

// 2 GetPersons 获取所有个人
// @Summary      List persons
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.PersonView}
// @Router       /addressbook/persons [get]
func (c *AddressBookController) GetPersons() {
	query[[]contracts.PersonView](c.Ctx, c.Container, &contracts.PersonListGetQuery{})
}

// 3 GetPerson 获取个人
// @Summary      Get person
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Address number"
// @Success      200  {object}  SuccessResponse{data=contracts.PersonView}
// @Failure      404  {object}  ErrorResponse
// @Router       /addressbook/persons/{number} [get]
func (c *AddressBookController) GetPerson() {
	var q contracts.PersonGetQuery
	if !bindURI(c.Ctx, &q) {
		return
	}
	query[*contracts.PersonView](c.Ctx, c.Container, &q)
}

// 4 AddPerson 添加个人
// @Summary      Add person
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.PersonData true "Person"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      400  {object}  ErrorResponse
// @Router       /addressbook/persons [post]
func (c *AddressBookController) AddPerson() {
	var command contracts.PersonAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 5 ModifyPerson 修改个人
// @Summary      Modify person
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Address number"
// @Param        request body contracts.PersonData true "Person"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      404  {object}  ErrorResponse
// @Router       /addressbook/persons/{number} [put]
func (c *AddressBookController) ModifyPerson() {
	var command contracts.PersonModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 6 GetCompanies 获取所有公司
// @Summary      List companies
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.CompanyView}
// @Router       /addressbook/companies [get]
func (c *AddressBookController) GetCompanies() {
	query[[]contracts.CompanyView](c.Ctx, c.Container, &contracts.CompanyListGetQuery{})
}

// 7 GetCompany 获取公司
// @Summary      Get company
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Address number"
// @Success      200  {object}  SuccessResponse{data=contracts.CompanyView}
// @Failure      404  {object}  ErrorResponse
// @Router       /addressbook/companies/{number} [get]
func (c *AddressBookController) GetCompany() {
	var q contracts.CompanyGetQuery
	if !bindURI(c.Ctx, &q) {
		return
	}
	query[*contracts.CompanyView](c.Ctx, c.Container, &q)
}

// 8 AddCompany 添加公司
// @Summary      Add company
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.CompanyData true "Company"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /addressbook/companies [post]
func (c *AddressBookController) AddCompany() {
	var command contracts.CompanyAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 9 ModifyCompany 修改公司
// @Summary      Modify company
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Address number"
// @Param        request body contracts.CompanyData true "Company"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /addressbook/companies/{number} [put]
func (c *AddressBookController) ModifyCompany() {
	var command contracts.CompanyModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 10 GetPostalCodes 获取邮编
// @Summary      List postal codes
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Param        country_code query string false "Country code, e.g. DK"
// @Success      200  {object}  SuccessResponse{data=[]contracts.PostalCodeView}
// @Router       /addressbook/postal-codes [get]
func (c *AddressBookController) GetPostalCodes() {
	var q contracts.PostalCodeListGetQuery
	if !bindQuery(c.Ctx, &q) {
		return
	}
	query[[]contracts.PostalCodeView](c.Ctx, c.Container, &q)
}

// 11 AddPostalCode 添加邮编
// @Summary      Add postal code
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.PostalCodeAddCommand true "Postal code"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /addressbook/postal-codes [post]
func (c *AddressBookController) AddPostalCode() {
	var command contracts.PostalCodeAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 12 ModifyPostalCode 修改邮编
// @Summary      Modify postal code
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        country_code path string true "Country code"
// @Param        postal_code path string true "Postal code"
// @Param        request body contracts.PostalCodeModifyCommand true "Postal code"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /addressbook/postal-codes/{country_code}/{postal_code} [put]
func (c *AddressBookController) ModifyPostalCode() {
	var command contracts.PostalCodeModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 13 GetAddressGroups 获取所有地址组
// @Summary      List address groups
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.AddressGroupView}
// @Router       /addressbook/address-groups [get]
func (c *AddressBookController) GetAddressGroups() {
	query[[]contracts.AddressGroupView](c.Ctx, c.Container, &contracts.AddressGroupListGetQuery{})
}

// 14 GetAddressGroup 获取地址组
// @Summary      Get address group
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Address group number"
// @Success      200  {object}  SuccessResponse{data=contracts.AddressGroupView}
// @Router       /addressbook/address-groups/{number} [get]
func (c *AddressBookController) GetAddressGroup() {
	var q contracts.AddressGroupGetQuery
	if !bindURI(c.Ctx, &q) {
		return
	}
	query[*contracts.AddressGroupView](c.Ctx, c.Container, &q)
}

// 15 AddAddressGroup 添加地址组
// @Summary      Add address group
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.AddressGroupAddCommand true "Address group"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /addressbook/address-groups [post]
func (c *AddressBookController) AddAddressGroup() {
	var command contracts.AddressGroupAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 16 ModifyAddressGroup 修改地址组
// @Summary      Modify address group
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Address group number"
// @Param        request body contracts.AddressGroupModifyCommand true "Address group"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /addressbook/address-groups/{number} [put]
func (c *AddressBookController) ModifyAddressGroup() {
	var command contracts.AddressGroupModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 17 GetPaymentTerms 获取所有付款条件
// @Summary      List payment terms
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.PaymentTermView}
// @Router       /addressbook/payment-terms [get]
func (c *AddressBookController) GetPaymentTerms() {
	query[[]contracts.PaymentTermView](c.Ctx, c.Container, &contracts.PaymentTermListGetQuery{})
}

// 18 GetPaymentTerm 获取付款条件
// @Summary      Get payment term
// @Tags         AddressBook
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Payment term number"
// @Success      200  {object}  SuccessResponse{data=contracts.PaymentTermView}
// @Router       /addressbook/payment-terms/{number} [get]
func (c *AddressBookController) GetPaymentTerm() {
	var q contracts.PaymentTermGetQuery
	if !bindURI(c.Ctx, &q) {
		return
	}
	query[*contracts.PaymentTermView](c.Ctx, c.Container, &q)
}

// 19 AddPaymentTerm 添加付款条件
// @Summary      Add payment term
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.PaymentTermAddCommand true "Payment term"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /addressbook/payment-terms [post]
func (c *AddressBookController) AddPaymentTerm() {
	var command contracts.PaymentTermAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 20 ModifyPaymentTerm 修改付款条件
// @Summary      Modify payment term
// @Tags         AddressBook
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Payment term number"
// @Param        request body contracts.PaymentTermModifyCommand true "Payment term"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /addressbook/payment-terms/{number} [put]
func (c *AddressBookController) ModifyPaymentTerm() {
	var command contracts.PaymentTermModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}
