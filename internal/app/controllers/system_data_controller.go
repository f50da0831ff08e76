package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/services/container"
	"osintranet-http-service/internal/error/response"
)

// SystemDataController 处理食物浪费系统数据的请求
type SystemDataController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSystemDataController 创建一个新的系统数据控制器
func NewSystemDataController(ctx *gin.Context, container *container.ServiceContainer) *SystemDataController {
	return &SystemDataController{
		Ctx:       ctx,
		Container: container,
	}
}

// ValueRequest 表示只修改值的请求
type ValueRequest struct {
	Value string `json:"value" example:"Mælkeprodukter"`
}

// ForeignKeyRequest 表示修改外键值的请求
type ForeignKeyRequest struct {
	ForeignKeyValue string `json:"foreign_key_value" example:"1234"`
}

// HandleSystemDataFunc 返回一个处理系统数据请求的Gin处理函数
func HandleSystemDataFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSystemDataController(ctx, container)

		switch method {
		case "getTranslationInfos":
			controller.GetTranslationInfos()
		case "getStorageTypes":
			controller.GetStorageTypes()
		case "getDataProviders":
			controller.GetDataProviders()
		case "getStaticText":
			controller.GetStaticText()
		case "getPrivacyPolicy":
			controller.GetPrivacyPolicy()
		case "getFoodGroupTree":
			controller.GetFoodGroupTree()
		case "getFoodItems":
			controller.GetFoodItems()
		case "importFoodGroup":
			controller.ImportFoodGroup()
		case "importFoodItem":
			controller.ImportFoodItem()
		case "addTranslation":
			controller.AddTranslation()
		case "modifyTranslation":
			controller.ModifyTranslation()
		case "deleteTranslation":
			controller.DeleteTranslation()
		case "addForeignKey":
			controller.AddForeignKey()
		case "modifyForeignKey":
			controller.ModifyForeignKey()
		case "deleteForeignKey":
			controller.DeleteForeignKey()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1 GetTranslationInfos 获取所有语言
// @Summary      List translation infos
// @Tags         SystemData
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.TranslationInfoView}
// @Router       /foodwaste/system/translation-infos [get]
func (c *SystemDataController) GetTranslationInfos() {
	query[[]contracts.TranslationInfoView](c.Ctx, c.Container, &contracts.TranslationInfoListGetQuery{})
}

// 2 GetStorageTypes 获取存储类型
// @Summary      List storage types
// @Tags         SystemData
// @Produce      json,xml
// @Security     BearerAuth
// @Param        translation_info query string true "Translation info id"
// @Success      200  {object}  SuccessResponse{data=[]contracts.StorageTypeView}
// @Router       /foodwaste/system/storage-types [get]
func (c *SystemDataController) GetStorageTypes() {
	translationInfo, ok := uuidQuery(c.Ctx, "translation_info")
	if !ok {
		return
	}
	query[[]contracts.StorageTypeView](c.Ctx, c.Container, &contracts.StorageTypeListGetQuery{TranslationInfo: translationInfo})
}

// 3 GetDataProviders 获取数据提供者
// @Summary      List data providers
// @Tags         SystemData
// @Produce      json,xml
// @Security     BearerAuth
// @Param        translation_info query string true "Translation info id"
// @Param        only_handling_payments query bool false "Only providers handling payments"
// @Success      200  {object}  SuccessResponse{data=[]contracts.DataProviderView}
// @Router       /foodwaste/system/data-providers [get]
func (c *SystemDataController) GetDataProviders() {
	var q contracts.DataProviderListGetQuery
	if !bindQuery(c.Ctx, &q) {
		return
	}
	translationInfo, ok := uuidQuery(c.Ctx, "translation_info")
	if !ok {
		return
	}
	q.TranslationInfo = translationInfo
	query[[]contracts.DataProviderView](c.Ctx, c.Container, &q)
}

// 4 GetStaticText 获取静态文本
// @Summary      Static text
// @Tags         SystemData
// @Produce      json,xml
// @Security     BearerAuth
// @Param        type path int true "Static text type (1 data source statement, 2 privacy policy)"
// @Param        translation_info query string true "Translation info id"
// @Success      200  {object}  SuccessResponse{data=contracts.StaticTextView}
// @Failure      404  {object}  ErrorResponse
// @Router       /foodwaste/system/static-texts/{type} [get]
func (c *SystemDataController) GetStaticText() {
	textType, err := strconv.Atoi(c.Ctx.Param("type"))
	if err != nil {
		response.ParamError(c.Ctx, err)
		return
	}
	translationInfo, ok := uuidQuery(c.Ctx, "translation_info")
	if !ok {
		return
	}
	query[*contracts.StaticTextView](c.Ctx, c.Container, &contracts.StaticTextGetQuery{
		Type:            textType,
		TranslationInfo: translationInfo,
	})
}

// 5 GetPrivacyPolicy 获取隐私政策
// @Summary      Privacy policy
// @Tags         SystemData
// @Produce      json,xml
// @Security     BearerAuth
// @Param        translation_info query string true "Translation info id"
// @Success      200  {object}  SuccessResponse{data=contracts.StaticTextView}
// @Router       /foodwaste/system/privacy-policy [get]
func (c *SystemDataController) GetPrivacyPolicy() {
	translationInfo, ok := uuidQuery(c.Ctx, "translation_info")
	if !ok {
		return
	}
	query[*contracts.StaticTextView](c.Ctx, c.Container, &contracts.PrivacyPolicyGetQuery{TranslationInfo: translationInfo})
}

// 6 GetFoodGroupTree 获取食物组树
// @Summary      Food group tree
// @Tags         SystemData
// @Produce      json,xml
// @Security     BearerAuth
// @Param        translation_info query string true "Translation info id"
// @Param        only_active query bool false "Only active food groups"
// @Success      200  {object}  SuccessResponse{data=contracts.FoodGroupTreeView}
// @Router       /foodwaste/system/food-groups [get]
func (c *SystemDataController) GetFoodGroupTree() {
	var q contracts.FoodGroupTreeGetQuery
	if !bindQuery(c.Ctx, &q) {
		return
	}
	translationInfo, ok := uuidQuery(c.Ctx, "translation_info")
	if !ok {
		return
	}
	q.TranslationInfo = translationInfo
	query[*contracts.FoodGroupTreeView](c.Ctx, c.Container, &q)
}

// 7 GetFoodItems 获取食物
// @Summary      Food items
// @Tags         SystemData
// @Produce      json,xml
// @Security     BearerAuth
// @Param        translation_info query string true "Translation info id"
// @Param        food_group query string false "Food group id"
// @Param        only_active query bool false "Only active food items"
// @Success      200  {object}  SuccessResponse{data=contracts.FoodItemCollectionView}
// @Router       /foodwaste/system/food-items [get]
func (c *SystemDataController) GetFoodItems() {
	var q contracts.FoodItemCollectionGetQuery
	if !bindQuery(c.Ctx, &q) {
		return
	}
	translationInfo, ok := uuidQuery(c.Ctx, "translation_info")
	if !ok {
		return
	}
	foodGroup, ok := uuidQuery(c.Ctx, "food_group")
	if !ok {
		return
	}
	q.TranslationInfo = translationInfo
	q.FoodGroup = foodGroup
	query[*contracts.FoodItemCollectionView](c.Ctx, c.Container, &q)
}

// 8 ImportFoodGroup 从数据提供者导入食物组
// @Summary      Import food group
// @Tags         SystemData
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.FoodGroupImportFromDataProviderCommand true "Food group"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      403  {object}  ErrorResponse
// @Router       /foodwaste/system/food-groups/import [post]
func (c *SystemDataController) ImportFoodGroup() {
	var command contracts.FoodGroupImportFromDataProviderCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 9 ImportFoodItem 从数据提供者导入食物
// @Summary      Import food item
// @Tags         SystemData
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.FoodItemImportFromDataProviderCommand true "Food item"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      403  {object}  ErrorResponse
// @Router       /foodwaste/system/food-items/import [post]
func (c *SystemDataController) ImportFoodItem() {
	var command contracts.FoodItemImportFromDataProviderCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 10 AddTranslation 添加翻译
// @Summary      Add translation
// @Tags         SystemData
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.TranslationAddCommand true "Translation"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /foodwaste/system/translations [post]
func (c *SystemDataController) AddTranslation() {
	var command contracts.TranslationAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 11 ModifyTranslation 修改翻译
// @Summary      Modify translation
// @Tags         SystemData
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        translation path string true "Translation id"
// @Param        request body ValueRequest true "Value"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /foodwaste/system/translations/{translation} [put]
func (c *SystemDataController) ModifyTranslation() {
	translation, ok := uuidParam(c.Ctx, "translation")
	if !ok {
		return
	}
	var req ValueRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &contracts.TranslationModifyCommand{
		Translation: translation,
		Value:       req.Value,
	})
}

// 12 DeleteTranslation 删除翻译
// @Summary      Delete translation
// @Tags         SystemData
// @Produce      json,xml
// @Security     BearerAuth
// @Param        translation path string true "Translation id"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /foodwaste/system/translations/{translation} [delete]
func (c *SystemDataController) DeleteTranslation() {
	translation, ok := uuidParam(c.Ctx, "translation")
	if !ok {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &contracts.TranslationDeleteCommand{Translation: translation})
}

// 13 AddForeignKey 添加外键
// @Summary      Add foreign key
// @Tags         SystemData
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        request body contracts.ForeignKeyAddCommand true "Foreign key"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /foodwaste/system/foreign-keys [post]
func (c *SystemDataController) AddForeignKey() {
	var command contracts.ForeignKeyAddCommand
	if !bindJSON(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 14 ModifyForeignKey 修改外键
// @Summary      Modify foreign key
// @Tags         SystemData
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        foreign_key path string true "Foreign key id"
// @Param        request body ForeignKeyRequest true "Value"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /foodwaste/system/foreign-keys/{foreign_key} [put]
func (c *SystemDataController) ModifyForeignKey() {
	foreignKey, ok := uuidParam(c.Ctx, "foreign_key")
	if !ok {
		return
	}
	var req ForeignKeyRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &contracts.ForeignKeyModifyCommand{
		ForeignKey:      foreignKey,
		ForeignKeyValue: req.ForeignKeyValue,
	})
}

// 15 DeleteForeignKey 删除外键
// @Summary      Delete foreign key
// @Tags         SystemData
// @Produce      json,xml
// @Security     BearerAuth
// @Param        foreign_key path string true "Foreign key id"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Router       /foodwaste/system/foreign-keys/{foreign_key} [delete]
func (c *SystemDataController) DeleteForeignKey() {
	foreignKey, ok := uuidParam(c.Ctx, "foreign_key")
	if !ok {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &contracts.ForeignKeyDeleteCommand{ForeignKey: foreignKey})
}
