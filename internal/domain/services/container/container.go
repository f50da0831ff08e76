package container

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/services"
	"osintranet-http-service/internal/infrastructure/cache"
	"osintranet-http-service/internal/infrastructure/config"
	"osintranet-http-service/internal/infrastructure/messaging"
	"osintranet-http-service/internal/infrastructure/repositories"
	"osintranet-http-service/pkg/logger"
)

// Dependencies 容器依赖
type Dependencies struct {
	DB         *gorm.DB
	CalendarDB *sql.DB // nil 表示未配置 OSWEBDB
	Config     *config.Config
	Store      cache.Store
	Publisher  messaging.Publisher
	Registerer prometheus.Registerer
	Now        services.Clock
}

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db         *gorm.DB
	calendarDB *sql.DB
	config     *config.Config
	store      cache.Store
	publisher  messaging.Publisher
	now        services.Clock

	bus *bus.Bus

	// 基础服务
	jwtService services.InterfaceJWTService

	// 业务服务
	commonService          services.InterfaceCommonService
	addressBookService     services.InterfaceAddressBookService
	financeService         services.InterfaceFinanceService
	calendarService        services.InterfaceCalendarService
	householdMemberService services.InterfaceHouseholdMemberService
	householdService       services.InterfaceHouseholdService
	systemDataService      services.InterfaceSystemDataService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(deps Dependencies) *ServiceContainer {
	if deps.DB == nil {
		panic("数据库连接为空")
	}
	if deps.Config == nil {
		panic("配置为空")
	}
	if deps.Store == nil {
		deps.Store = cache.NewMemoryStore(time.Minute)
	}
	if deps.Publisher == nil {
		deps.Publisher = messaging.NopPublisher{}
	}
	if deps.Now == nil {
		deps.Now = services.UTCClock
	}

	container := &ServiceContainer{
		db:         deps.DB,
		calendarDB: deps.CalendarDB,
		config:     deps.Config,
		store:      deps.Store,
		publisher:  deps.Publisher,
		now:        deps.Now,
	}

	opts := []bus.Option{bus.WithObserver(services.NewOperationLogger(deps.DB, deps.Now))}
	if deps.Registerer != nil {
		opts = append(opts, bus.WithMetrics(bus.NewMetrics(deps.Registerer)))
	}
	container.bus = bus.New(opts...)
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务并注册到总线
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	base := repositories.NewRepository(c.db, c.store, c.config.CacheTTL)
	letterheads := repositories.NewLetterheadRepository(base)
	addresses := repositories.NewAddressBookRepository(base)
	foodWaste := repositories.NewFoodWasteRepository(base)

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db, c.now)

	// 初始化业务服务
	c.commonService = services.NewCommonService(letterheads, c.now)
	c.addressBookService = services.NewAddressBookService(addresses, c.now)
	c.financeService = services.NewFinanceService(repositories.NewFinanceRepository(base), letterheads, addresses,
		c.publisher, c.config.PostingMaxAgeDays, c.now)
	c.householdMemberService = services.NewHouseholdMemberService(foodWaste, c.publisher, c.now)
	c.householdService = services.NewHouseholdService(foodWaste, c.publisher, c.now)
	c.systemDataService = services.NewSystemDataService(foodWaste, c.publisher, c.now)

	registrars := []services.Registrar{
		c.commonService,
		c.addressBookService,
		c.financeService,
		c.householdMemberService,
		c.householdService,
		c.systemDataService,
	}

	if c.calendarDB != nil {
		c.calendarService = services.NewCalendarService(repositories.NewCalendarRepository(c.calendarDB), c.now)
		registrars = append(registrars, c.calendarService)
	} else {
		logger.Warning("未配置OSWEBDB，日历服务不可用")
	}

	for _, r := range registrars {
		r.Register(c.bus)
	}
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "cache":
		return c.store
	case "publisher":
		return c.publisher
	case "jwt":
		return c.jwtService
	case "common":
		return c.commonService
	case "addressbook":
		return c.addressBookService
	case "finance":
		return c.financeService
	case "calendar":
		return c.calendarService
	case "household_member":
		return c.householdMemberService
	case "household":
		return c.householdService
	case "system_data":
		return c.systemDataService
	default:
		return nil
	}
}

// Bus 获取查询/命令总线
func (c *ServiceContainer) Bus() *bus.Bus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bus
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// Cache 获取数据代理缓存
func (c *ServiceContainer) Cache() cache.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}

// HealthCheck 检查数据库和缓存是否可用
func (c *ServiceContainer) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{"database": "ok", "cache": "ok", "calendar": "disabled"}

	if sqlDB, err := c.db.DB(); err != nil {
		status["database"] = err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		status["database"] = err.Error()
	}
	if err := c.store.Ping(ctx); err != nil {
		status["cache"] = err.Error()
	}
	if c.calendarDB != nil {
		status["calendar"] = "ok"
		if err := c.calendarDB.PingContext(ctx); err != nil {
			status["calendar"] = err.Error()
		}
	}
	return status
}

// Close 关闭缓存和消息发布者
func (c *ServiceContainer) Close() {
	c.publisher.Close()
	if err := c.store.Close(); err != nil {
		logger.Warning("关闭缓存失败: %v", err)
	}
}
