package controllers

import (
	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/services/container"
)

// InterfaceHouseholdController 定义家庭控制器接口
type InterfaceHouseholdController interface {
	GetHousehold()
	AddHousehold()
	UpdateHousehold()
	AddHouseholdMember()
	RemoveHouseholdMember()
	AddStorage()
	ModifyStorage()
	DeleteStorage()
}

// HouseholdController 处理家庭相关的请求
type HouseholdController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHouseholdController 创建一个新的家庭控制器
func NewHouseholdController(ctx *gin.Context, container *container.ServiceContainer) *HouseholdController {
	return &HouseholdController{
		Ctx:       ctx,
		Container: container,
	}
}

// HouseholdRequest 表示家庭请求
type HouseholdRequest struct {
	Name        string `json:"name" example:"Hjemme"`
	Description string `json:"description" example:"Lejligheden i Aarhus"`
}

// HouseholdMemberRequest 表示邀请成员请求
type HouseholdMemberRequest struct {
	MailAddress     string `json:"mail_address" example:"bente@example.dk"`
	TranslationInfo string `json:"translation_info" example:"978c7033-81e0-4da9-958a-8ab0df6d1d8b"`
}

// StorageRequest 表示存储请求
type StorageRequest struct {
	SortOrder   int    `json:"sort_order" example:"4"`
	StorageType string `json:"storage_type" example:"3cea8a7d-01d4-4e8b-8b9c-d3bdf6ad0fc4"`
	Description string `json:"description" example:"Kælderen"`
	Temperature int    `json:"temperature" example:"8"`
}

// HandleHouseholdFunc 返回一个处理家庭请求的Gin处理函数
func HandleHouseholdFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseholdController(ctx, container)

		switch method {
		case "getHousehold":
			controller.GetHousehold()
		case "addHousehold":
			controller.AddHousehold()
		case "updateHousehold":
			controller.UpdateHousehold()
		case "addHouseholdMember":
			controller.AddHouseholdMember()
		case "removeHouseholdMember":
			controller.RemoveHouseholdMember()
		case "addStorage":
			controller.AddStorage()
		case "modifyStorage":
			controller.ModifyStorage()
		case "deleteStorage":
			controller.DeleteStorage()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1 GetHousehold 获取家庭详情
// @Summary      Household data
// @Description  A household the caller belongs to, with members and storages
// @Tags         Household
// @Produce      json,xml
// @Security     BearerAuth
// @Param        household path string true "Household id"
// @Param        translation_info query string true "Translation info id"
// @Success      200  {object}  SuccessResponse{data=contracts.HouseholdView}
// @Failure      403  {object}  ErrorResponse
// @Router       /foodwaste/households/{household} [get]
func (c *HouseholdController) GetHousehold() {
	household, ok := uuidParam(c.Ctx, "household")
	if !ok {
		return
	}
	translationInfo, ok := uuidQuery(c.Ctx, "translation_info")
	if !ok {
		return
	}
	query[*contracts.HouseholdView](c.Ctx, c.Container, &contracts.HouseholdDataGetQuery{
		Household:       household,
		TranslationInfo: translationInfo,
	})
}

// 2 AddHousehold 创建家庭
// @Summary      Add household
// @Description  Creates a household with the default storages
// @Tags         Household
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.HouseholdAddCommand true "Household"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      422  {object}  ErrorResponse "Household limit reached"
// @Router       /foodwaste/households [post]
func (c *HouseholdController) AddHousehold() {
	var command contracts.HouseholdAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 3 UpdateHousehold 更新家庭
// @Summary      Update household
// @Tags         Household
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        household path string true "Household id"
// @Param        request body HouseholdRequest true "Household"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /foodwaste/households/{household} [put]
func (c *HouseholdController) UpdateHousehold() {
	household, ok := uuidParam(c.Ctx, "household")
	if !ok {
		return
	}
	var req HouseholdRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &contracts.HouseholdUpdateCommand{
		Household:   household,
		Name:        req.Name,
		Description: req.Description,
	})
}

// 4 AddHouseholdMember 邀请成员
// @Summary      Add household member
// @Description  Adds a member to the household, creating the member when the mail address is unknown
// @Tags         Household
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        household path string true "Household id"
// @Param        request body HouseholdMemberRequest true "Member"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      409  {object}  ErrorResponse
// @Router       /foodwaste/households/{household}/members [post]
func (c *HouseholdController) AddHouseholdMember() {
	household, ok := uuidParam(c.Ctx, "household")
	if !ok {
		return
	}
	var command contracts.HouseholdAddHouseholdMemberCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	command.Household = household
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 5 RemoveHouseholdMember 移除成员
// @Summary      Remove household member
// @Tags         Household
// @Produce      json,xml
// @Security     BearerAuth
// @Param        household path string true "Household id"
// @Param        mail_address path string true "Mail address of the member"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      404  {object}  ErrorResponse
// @Router       /foodwaste/households/{household}/members/{mail_address} [delete]
func (c *HouseholdController) RemoveHouseholdMember() {
	household, ok := uuidParam(c.Ctx, "household")
	if !ok {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &contracts.HouseholdRemoveHouseholdMemberCommand{
		Household:   household,
		MailAddress: c.Ctx.Param("mail_address"),
	})
}

// 6 AddStorage 添加存储
// @Summary      Add storage
// @Tags         Household
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        household path string true "Household id"
// @Param        request body StorageRequest true "Storage"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      422  {object}  ErrorResponse
// @Router       /foodwaste/households/{household}/storages [post]
func (c *HouseholdController) AddStorage() {
	household, ok := uuidParam(c.Ctx, "household")
	if !ok {
		return
	}
	var command contracts.StorageAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	command.Household = household
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 7 ModifyStorage 修改存储
// @Summary      Modify storage
// @Tags         Household
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        household path string true "Household id"
// @Param        storage path string true "Storage id"
// @Param        request body StorageRequest true "Storage"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      422  {object}  ErrorResponse
// @Router       /foodwaste/households/{household}/storages/{storage} [put]
func (c *HouseholdController) ModifyStorage() {
	household, ok := uuidParam(c.Ctx, "household")
	if !ok {
		return
	}
	storage, ok := uuidParam(c.Ctx, "storage")
	if !ok {
		return
	}
	var command contracts.StorageModifyCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	command.Household = household
	command.Storage = storage
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 8 DeleteStorage 删除存储
// @Summary      Delete storage
// @Tags         Household
// @Produce      json,xml
// @Security     BearerAuth
// @Param        household path string true "Household id"
// @Param        storage path string true "Storage id"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      422  {object}  ErrorResponse
// @Router       /foodwaste/households/{household}/storages/{storage} [delete]
func (c *HouseholdController) DeleteStorage() {
	household, ok := uuidParam(c.Ctx, "household")
	if !ok {
		return
	}
	storage, ok := uuidParam(c.Ctx, "storage")
	if !ok {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &contracts.StorageDeleteCommand{
		Household: household,
		Storage:   storage,
	})
}
