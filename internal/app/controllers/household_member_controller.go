package controllers

import (
	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/services/container"
)

// HouseholdMemberController 处理家庭成员相关的请求
// 当前成员由令牌中的邮箱地址确定
type HouseholdMemberController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHouseholdMemberController 创建一个新的家庭成员控制器
func NewHouseholdMemberController(ctx *gin.Context, container *container.ServiceContainer) *HouseholdMemberController {
	return &HouseholdMemberController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHouseholdMemberFunc 返回一个处理家庭成员请求的Gin处理函数
func HandleHouseholdMemberFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseholdMemberController(ctx, container)

		switch method {
		case "isCreated":
			controller.IsCreated()
		case "isActivated":
			controller.IsActivated()
		case "hasAcceptedPrivacyPolicy":
			controller.HasAcceptedPrivacyPolicy()
		case "getMemberData":
			controller.GetMemberData()
		case "addMember":
			controller.AddMember()
		case "activate":
			controller.Activate()
		case "acceptPrivacyPolicy":
			controller.AcceptPrivacyPolicy()
		case "upgradeMembership":
			controller.UpgradeMembership()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1 IsCreated 是否已创建
// @Summary      Is the caller a household member
// @Tags         HouseholdMember
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=contracts.BooleanResultView}
// @Router       /foodwaste/member/is-created [get]
func (c *HouseholdMemberController) IsCreated() {
	query[*contracts.BooleanResultView](c.Ctx, c.Container, &contracts.HouseholdMemberIsCreatedQuery{})
}

// 2 IsActivated 是否已激活
// @Summary      Is the caller activated
// @Tags         HouseholdMember
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=contracts.BooleanResultView}
// @Router       /foodwaste/member/is-activated [get]
func (c *HouseholdMemberController) IsActivated() {
	query[*contracts.BooleanResultView](c.Ctx, c.Container, &contracts.HouseholdMemberIsActivatedQuery{})
}

// 3 HasAcceptedPrivacyPolicy 是否已接受隐私政策
// @Summary      Has the caller accepted the privacy policy
// @Tags         HouseholdMember
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=contracts.BooleanResultView}
// @Router       /foodwaste/member/has-accepted-privacy-policy [get]
func (c *HouseholdMemberController) HasAcceptedPrivacyPolicy() {
	query[*contracts.BooleanResultView](c.Ctx, c.Container, &contracts.HouseholdMemberHasAcceptedPrivacyPolicyQuery{})
}

// 4 GetMemberData 获取成员数据
// @Summary      Household member data
// @Description  The caller with households and payments
// @Tags         HouseholdMember
// @Produce      json,xml
// @Security     BearerAuth
// @Param        translation_info query string true "Translation info id"
// @Success      200  {object}  SuccessResponse{data=contracts.HouseholdMemberView}
// @Failure      422  {object}  ErrorResponse
// @Router       /foodwaste/member [get]
func (c *HouseholdMemberController) GetMemberData() {
	translationInfo, ok := uuidQuery(c.Ctx, "translation_info")
	if !ok {
		return
	}
	query[*contracts.HouseholdMemberView](c.Ctx, c.Container, &contracts.HouseholdMemberDataGetQuery{TranslationInfo: translationInfo})
}

// 5 AddMember 创建家庭成员
// @Summary      Create household member
// @Description  Creates the member and sends the welcome letter with the activation code
// @Tags         HouseholdMember
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.HouseholdMemberAddCommand true "Household member"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      409  {object}  ErrorResponse
// @Router       /foodwaste/member [post]
func (c *HouseholdMemberController) AddMember() {
	var command contracts.HouseholdMemberAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 6 Activate 激活家庭成员
// @Summary      Activate household member
// @Tags         HouseholdMember
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.HouseholdMemberActivateCommand true "Activation code"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      422  {object}  ErrorResponse
// @Router       /foodwaste/member/activate [post]
func (c *HouseholdMemberController) Activate() {
	var command contracts.HouseholdMemberActivateCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 7 AcceptPrivacyPolicy 接受隐私政策
// @Summary      Accept privacy policy
// @Tags         HouseholdMember
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /foodwaste/member/accept-privacy-policy [post]
func (c *HouseholdMemberController) AcceptPrivacyPolicy() {
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &contracts.HouseholdMemberAcceptPrivacyPolicyCommand{})
}

// 8 UpgradeMembership 升级会员
// @Summary      Upgrade membership
// @Description  Registers the payment and upgrades the membership for one year
// @Tags         HouseholdMember
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.HouseholdMemberUpgradeMembershipCommand true "Payment"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      422  {object}  ErrorResponse
// @Router       /foodwaste/member/upgrade-membership [post]
func (c *HouseholdMemberController) UpgradeMembership() {
	var command contracts.HouseholdMemberUpgradeMembershipCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}
