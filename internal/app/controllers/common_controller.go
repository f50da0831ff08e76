package controllers

import (
	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/services/container"
)

// InterfaceCommonController 定义信头控制器接口
type InterfaceCommonController interface {
	GetLetterheads()
	GetLetterhead()
	AddLetterhead()
	ModifyLetterhead()
}

// CommonController 处理信头相关的请求
type CommonController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCommonController 创建一个新的信头控制器
func NewCommonController(ctx *gin.Context, container *container.ServiceContainer) *CommonController {
	return &CommonController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCommonFunc 返回一个处理信头请求的Gin处理函数
func HandleCommonFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCommonController(ctx, container)

		switch method {
		case "getLetterheads":
			controller.GetLetterheads()
		case "getLetterhead":
			controller.GetLetterhead()
		case "addLetterhead":
			controller.AddLetterhead()
		case "modifyLetterhead":
			controller.ModifyLetterhead()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1 GetLetterheads 获取所有信头
// @Summary      List letterheads
// @Tags         Common
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.LetterheadView}
// @Failure      401  {object}  ErrorResponse
// @Router       /common/letterheads [get]
func (c *CommonController) GetLetterheads() {
	query[[]contracts.LetterheadView](c.Ctx, c.Container, &contracts.LetterheadListGetQuery{})
}

// 2 GetLetterhead 获取信头
// @Summary      Get letterhead
// @Tags         Common
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Letterhead number (1-99)"
// @Success      200  {object}  SuccessResponse{data=contracts.LetterheadView}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /common/letterheads/{number} [get]
func (c *CommonController) GetLetterhead() {
	var q contracts.LetterheadGetQuery
	if !bindURI(c.Ctx, &q) {
		return
	}
	query[*contracts.LetterheadView](c.Ctx, c.Container, &q)
}

// 3 AddLetterhead 添加信头
// @Summary      Add letterhead
// @Tags         Common
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.LetterheadAddCommand true "Letterhead"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /common/letterheads [post]
func (c *CommonController) AddLetterhead() {
	var command contracts.LetterheadAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 4 ModifyLetterhead 修改信头
// @Summary      Modify letterhead
// @Tags         Common
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        number path int true "Letterhead number (1-99)"
// @Param        request body contracts.LetterheadData true "Letterhead"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /common/letterheads/{number} [put]
func (c *CommonController) ModifyLetterhead() {
	var command contracts.LetterheadModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}
