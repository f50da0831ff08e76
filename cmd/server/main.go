// @title           OSIntranet HTTP Service API
// @version         1.0
// @description     Bookkeeping, address book, calendar and food waste services of the OS intranet

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"osintranet-http-service/internal/app/routes"
	"osintranet-http-service/internal/domain/services/container"
	"osintranet-http-service/internal/infrastructure/cache"
	"osintranet-http-service/internal/infrastructure/config"
	"osintranet-http-service/internal/infrastructure/database"
	"osintranet-http-service/internal/infrastructure/messaging"
	Logger "osintranet-http-service/pkg/logger"
)

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}
	defer Logger.Close()

	// 加载.env文件，环境变量也可能通过其他方式设置
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
	} else {
		Logger.Info("成功加载.env文件")
	}

	cfg := config.GetConfig()

	// 内网数据库
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		fatal("无法创建数据库连接池: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	Logger.Info("数据库迁移模式: %s", cfg.DBMigrationMode)
	if err := database.Migrate(db, cfg.DBMigrationMode); err != nil {
		fatal("数据库迁移失败: %v", err)
	}
	if err := database.SeedReferenceData(db); err != nil {
		fatal("初始化参考数据失败: %v", err)
	}
	if err := database.EnsureAdminExists(db, cfg.DefaultAdminPassword); err != nil {
		fatal("创建默认管理员失败: %v", err)
	}

	// OSWEBDB 日历数据库，不可用时日历路由返回错误
	calendarDB := openCalendar(cfg)

	store := cache.NewStore(cfg)
	publisher := messaging.NewPublisher(cfg)
	if mqttPublisher, ok := publisher.(*messaging.MQTTPublisher); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mqttPublisher.Connect(ctx); err != nil {
			// 发布时会重新连接
			Logger.Warning("连接MQTT服务器失败: %v", err)
		}
		cancel()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	serviceContainer := container.NewServiceContainer(container.Dependencies{
		DB:         db,
		CalendarDB: calendarDB,
		Config:     cfg,
		Store:      store,
		Publisher:  publisher,
		Registerer: registry,
	})
	defer serviceContainer.Close()

	r := routes.SetupRouter(serviceContainer, registry)

	printSystemInfo(pool)

	// 监听所有接口(0.0.0.0)而不是只监听localhost
	port := cfg.ServerPort
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
	}
}

// openCalendar 连接 OSWEBDB 并确保表结构存在，失败时返回 nil
func openCalendar(cfg *config.Config) *sql.DB {
	calendarPool, err := database.NewCalendarConnectionPool(cfg)
	if err != nil {
		Logger.Warning("无法连接日历数据库，日历功能不可用: %v", err)
		return nil
	}
	sqlDB, err := calendarPool.SQL()
	if err != nil {
		Logger.Warning("获取日历数据库连接失败: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureCalendarSchema(ctx, sqlDB); err != nil {
		Logger.Warning("初始化日历表结构失败: %v", err)
		_ = calendarPool.Close()
		return nil
	}
	return sqlDB
}

func fatal(format string, v ...interface{}) {
	Logger.Error(format, v...)
	_ = Logger.Close()
	os.Exit(1)
}

// printSystemInfo 打印系统信息
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("数据库连接池状态: %+v", stats)
	}

	Logger.Info("系统CPU核心数: %d", runtime.NumCPU())
	Logger.Info("当前Go协程数: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("系统内存使用: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
