package routes

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "osintranet-http-service/docs"
	"osintranet-http-service/internal/app/controllers"
	"osintranet-http-service/internal/app/middleware"
	"osintranet-http-service/internal/domain/services"
	"osintranet-http-service/internal/domain/services/container"
	"osintranet-http-service/internal/infrastructure/config"
)

// 缓存时间
const (
	referenceCacheTTL = 5 * time.Minute
	shortCacheTTL     = 1 * time.Minute
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(container *container.ServiceContainer, gatherer prometheus.Gatherer) *gin.Engine {
	// 初始化 Gin
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	cfg := container.GetService("config").(*config.Config)
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	// 初始化中间件
	middleware.InitAuthMiddleware(container.GetService("jwt").(services.InterfaceJWTService))
	middleware.InitCacheMiddleware(container.Cache())

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus 指标
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// 注册路由
	registerRoutes(r, container)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
	// 注册系统管理员路由
	registerAdminRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	public := api.Group("", middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	public.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	public.GET("/health", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查

	// 健康状态路由组
	healthGroup := public.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// 认证路由
	authGroup := public.Group("/auth")
	authGroup.Use(middleware.CombinedRateLimiter(1, 5)) // 每个IP每秒1次登录，最多突发5次
	authGroup.POST("/login", controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("")
	auth.Use(middleware.AuthenticateUser())

	// 按用户限流 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.CustomRateLimiter(30, 50, userKey))

	referenceCache := middleware.Cache(middleware.CacheConfig{Expiration: referenceCacheTTL})
	shortCache := middleware.Cache(middleware.CacheConfig{Expiration: shortCacheTTL})

	// 信头路由
	commonGroup := auth.Group("/common", middleware.PurgeOnSuccess("/api/common"))
	commonGroup.GET("/letterheads", referenceCache, controllers.HandleCommonFunc(container, "getLetterheads"))
	commonGroup.GET("/letterheads/:number", referenceCache, controllers.HandleCommonFunc(container, "getLetterhead"))
	commonGroup.POST("/letterheads", controllers.HandleCommonFunc(container, "addLetterhead"))
	commonGroup.PUT("/letterheads/:number", controllers.HandleCommonFunc(container, "modifyLetterhead"))

	// 地址簿路由
	addressBookGroup := auth.Group("/addressbook", middleware.PurgeOnSuccess("/api/addressbook"))
	{
		addressBookGroup.GET("/telephone-list", controllers.HandleAddressBookFunc(container, "getTelephoneList"))
		addressBookGroup.GET("/persons", controllers.HandleAddressBookFunc(container, "getPersons"))
		addressBookGroup.GET("/persons/:number", controllers.HandleAddressBookFunc(container, "getPerson"))
		addressBookGroup.POST("/persons", controllers.HandleAddressBookFunc(container, "addPerson"))
		addressBookGroup.PUT("/persons/:number", controllers.HandleAddressBookFunc(container, "modifyPerson"))
		addressBookGroup.GET("/companies", controllers.HandleAddressBookFunc(container, "getCompanies"))
		addressBookGroup.GET("/companies/:number", controllers.HandleAddressBookFunc(container, "getCompany"))
		addressBookGroup.POST("/companies", controllers.HandleAddressBookFunc(container, "addCompany"))
		addressBookGroup.PUT("/companies/:number", controllers.HandleAddressBookFunc(container, "modifyCompany"))
		addressBookGroup.GET("/postal-codes", referenceCache, controllers.HandleAddressBookFunc(container, "getPostalCodes"))
		addressBookGroup.POST("/postal-codes", controllers.HandleAddressBookFunc(container, "addPostalCode"))
		addressBookGroup.PUT("/postal-codes/:country_code/:postal_code", controllers.HandleAddressBookFunc(container, "modifyPostalCode"))
		addressBookGroup.GET("/address-groups", referenceCache, controllers.HandleAddressBookFunc(container, "getAddressGroups"))
		addressBookGroup.GET("/address-groups/:number", referenceCache, controllers.HandleAddressBookFunc(container, "getAddressGroup"))
		addressBookGroup.POST("/address-groups", controllers.HandleAddressBookFunc(container, "addAddressGroup"))
		addressBookGroup.PUT("/address-groups/:number", controllers.HandleAddressBookFunc(container, "modifyAddressGroup"))
		addressBookGroup.GET("/payment-terms", referenceCache, controllers.HandleAddressBookFunc(container, "getPaymentTerms"))
		addressBookGroup.GET("/payment-terms/:number", referenceCache, controllers.HandleAddressBookFunc(container, "getPaymentTerm"))
		addressBookGroup.POST("/payment-terms", controllers.HandleAddressBookFunc(container, "addPaymentTerm"))
		addressBookGroup.PUT("/payment-terms/:number", controllers.HandleAddressBookFunc(container, "modifyPaymentTerm"))
	}

	// 财务路由
	financeGroup := auth.Group("/finance", middleware.PurgeOnSuccess("/api/finance"))
	{
		financeGroup.GET("/accountings", controllers.HandleFinanceFunc(container, "getAccountings"))
		financeGroup.GET("/accountings/:accounting", controllers.HandleFinanceFunc(container, "getAccounting"))
		financeGroup.POST("/accountings", controllers.HandleFinanceFunc(container, "addAccounting"))
		financeGroup.PUT("/accountings/:accounting", controllers.HandleFinanceFunc(container, "modifyAccounting"))

		financeGroup.GET("/account-groups", referenceCache, controllers.HandleFinanceFunc(container, "getAccountGroups"))
		financeGroup.POST("/account-groups", controllers.HandleFinanceFunc(container, "addAccountGroup"))
		financeGroup.PUT("/account-groups/:number", controllers.HandleFinanceFunc(container, "modifyAccountGroup"))
		financeGroup.GET("/budget-account-groups", referenceCache, controllers.HandleFinanceFunc(container, "getBudgetAccountGroups"))
		financeGroup.POST("/budget-account-groups", controllers.HandleFinanceFunc(container, "addBudgetAccountGroup"))
		financeGroup.PUT("/budget-account-groups/:number", controllers.HandleFinanceFunc(container, "modifyBudgetAccountGroup"))

		accounting := financeGroup.Group("/accountings/:accounting")
		accounting.GET("/accounts", controllers.HandleFinanceFunc(container, "getChartOfAccounts"))
		accounting.GET("/accounts/:account", controllers.HandleFinanceFunc(container, "getAccount"))
		accounting.POST("/accounts", controllers.HandleFinanceFunc(container, "addAccount"))
		accounting.PUT("/accounts/:account", controllers.HandleFinanceFunc(container, "modifyAccount"))
		accounting.PUT("/accounts/:account/credit-info", controllers.HandleFinanceFunc(container, "setCreditInfo"))
		accounting.GET("/budget-accounts", controllers.HandleFinanceFunc(container, "getBudgetChartOfAccounts"))
		accounting.POST("/budget-accounts", controllers.HandleFinanceFunc(container, "addBudgetAccount"))
		accounting.PUT("/budget-accounts/:account", controllers.HandleFinanceFunc(container, "modifyBudgetAccount"))
		accounting.PUT("/budget-accounts/:account/budget-info", controllers.HandleFinanceFunc(container, "setBudgetInfo"))
		accounting.GET("/postings", controllers.HandleFinanceFunc(container, "getPostings"))
		accounting.POST("/postings", controllers.HandleFinanceFunc(container, "addPosting"))
		accounting.GET("/debtors", controllers.HandleFinanceFunc(container, "getDebtors"))
		accounting.GET("/creditors", controllers.HandleFinanceFunc(container, "getCreditors"))
	}

	// 日历路由
	calendarGroup := auth.Group("/calendar", middleware.PurgeOnSuccess("/api/calendar"))
	{
		calendarGroup.GET("/systems", referenceCache, controllers.HandleCalendarFunc(container, "getSystems"))
		calendarGroup.GET("/systems/:system/users", shortCache, controllers.HandleCalendarFunc(container, "getCalendarUsers"))
		calendarGroup.GET("/systems/:system/users/:initials/appointments", controllers.HandleCalendarFunc(container, "getUserAppointments"))
		calendarGroup.GET("/systems/:system/users/:initials/appointments/:appointment", controllers.HandleCalendarFunc(container, "getUserAppointment"))
		calendarGroup.POST("/systems/:system/appointments", controllers.HandleCalendarFunc(container, "addAppointment"))
		calendarGroup.PUT("/systems/:system/appointments/:appointment", controllers.HandleCalendarFunc(container, "modifyAppointment"))
	}

	// 家庭成员路由，当前成员由令牌确定，不缓存
	memberGroup := auth.Group("/foodwaste/member")
	memberGroup.GET("", controllers.HandleHouseholdMemberFunc(container, "getMemberData"))
	memberGroup.POST("", controllers.HandleHouseholdMemberFunc(container, "addMember"))
	memberGroup.GET("/is-created", controllers.HandleHouseholdMemberFunc(container, "isCreated"))
	memberGroup.GET("/is-activated", controllers.HandleHouseholdMemberFunc(container, "isActivated"))
	memberGroup.GET("/has-accepted-privacy-policy", controllers.HandleHouseholdMemberFunc(container, "hasAcceptedPrivacyPolicy"))
	memberGroup.POST("/activate", controllers.HandleHouseholdMemberFunc(container, "activate"))
	memberGroup.POST("/accept-privacy-policy", controllers.HandleHouseholdMemberFunc(container, "acceptPrivacyPolicy"))
	memberGroup.POST("/upgrade-membership", controllers.HandleHouseholdMemberFunc(container, "upgradeMembership"))

	// 家庭路由
	householdGroup := auth.Group("/foodwaste/households")
	householdGroup.GET("/:household", controllers.HandleHouseholdFunc(container, "getHousehold"))
	householdGroup.POST("", controllers.HandleHouseholdFunc(container, "addHousehold"))
	householdGroup.PUT("/:household", controllers.HandleHouseholdFunc(container, "updateHousehold"))
	householdGroup.POST("/:household/members", controllers.HandleHouseholdFunc(container, "addHouseholdMember"))
	householdGroup.DELETE("/:household/members/:mail_address", controllers.HandleHouseholdFunc(container, "removeHouseholdMember"))
	householdGroup.POST("/:household/storages", controllers.HandleHouseholdFunc(container, "addStorage"))
	householdGroup.PUT("/:household/storages/:storage", controllers.HandleHouseholdFunc(container, "modifyStorage"))
	householdGroup.DELETE("/:household/storages/:storage", controllers.HandleHouseholdFunc(container, "deleteStorage"))

	// 系统数据查询路由
	systemGroup := auth.Group("/foodwaste/system")
	{
		systemGroup.GET("/translation-infos", referenceCache, controllers.HandleSystemDataFunc(container, "getTranslationInfos"))
		systemGroup.GET("/storage-types", referenceCache, controllers.HandleSystemDataFunc(container, "getStorageTypes"))
		systemGroup.GET("/data-providers", referenceCache, controllers.HandleSystemDataFunc(container, "getDataProviders"))
		systemGroup.GET("/static-texts/:type", referenceCache, controllers.HandleSystemDataFunc(container, "getStaticText"))
		systemGroup.GET("/privacy-policy", referenceCache, controllers.HandleSystemDataFunc(container, "getPrivacyPolicy"))
		systemGroup.GET("/food-groups", shortCache, controllers.HandleSystemDataFunc(container, "getFoodGroupTree"))
		systemGroup.GET("/food-items", shortCache, controllers.HandleSystemDataFunc(container, "getFoodItems"))
	}
}

// userKey 以令牌中的用户ID作为限流键
func userKey(c *gin.Context) string {
	userID, _ := c.Get("userID")
	id, _ := userID.(uint)
	return "user:" + strconv.FormatUint(uint64(id), 10)
}

// registerAdminRoutes 注册系统管理员路由
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/foodwaste/system")
	admin.Use(middleware.AuthenticateSystemAdmin())
	admin.Use(middleware.IPRateLimiter(30, 50))
	admin.Use(middleware.PurgeOnSuccess("/api/foodwaste/system"))
	{
		// 导入按路径限流，数据提供者批量导入时共用一个令牌桶
		importLimiter := middleware.PathRateLimiter(50, 200)
		admin.POST("/food-groups/import", importLimiter, controllers.HandleSystemDataFunc(container, "importFoodGroup"))
		admin.POST("/food-items/import", importLimiter, controllers.HandleSystemDataFunc(container, "importFoodItem"))
		admin.POST("/translations", controllers.HandleSystemDataFunc(container, "addTranslation"))
		admin.PUT("/translations/:translation", controllers.HandleSystemDataFunc(container, "modifyTranslation"))
		admin.DELETE("/translations/:translation", controllers.HandleSystemDataFunc(container, "deleteTranslation"))
		admin.POST("/foreign-keys", controllers.HandleSystemDataFunc(container, "addForeignKey"))
		admin.PUT("/foreign-keys/:foreign_key", controllers.HandleSystemDataFunc(container, "modifyForeignKey"))
		admin.DELETE("/foreign-keys/:foreign_key", controllers.HandleSystemDataFunc(container, "deleteForeignKey"))
	}
}
