package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"osintranet-http-service/internal/infrastructure/config"
	"osintranet-http-service/pkg/logger"
)

// ConnectionPool 数据库连接池管理
type ConnectionPool struct {
	Name            string
	DB              *gorm.DB
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// gormWriter sends GORM's log lines to the service logger.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	logger.Info(format, args...)
}

// NewGormLogger logs slow queries and errors.
func NewGormLogger(level string) gormlogger.Interface {
	logLevel := gormlogger.Warn
	if level == "debug" {
		logLevel = gormlogger.Info
	}
	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
	})
}

// NewConnectionPool opens the intranet database.
func NewConnectionPool(cfg *config.Config) (*ConnectionPool, error) {
	return Open("osintranet", mysql.Open(cfg.GetDSN()), cfg.LogLevel)
}

// NewCalendarConnectionPool opens the OSWEBDB calendar database.
func NewCalendarConnectionPool(cfg *config.Config) (*ConnectionPool, error) {
	return Open("oswebdb", mysql.Open(cfg.GetCalendarDSN()), cfg.LogLevel)
}

// Open 创建新的数据库连接池
func Open(name string, dialector gorm.Dialector, logLevel string) (*ConnectionPool, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", name, err)
	}

	pool := &ConnectionPool{
		Name:            name,
		DB:              db,
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
	if err := pool.ConfigurePool(); err != nil {
		return nil, fmt.Errorf("configure %s pool: %w", name, err)
	}
	return pool, nil
}

// ConfigurePool 配置连接池参数
func (p *ConnectionPool) ConfigurePool() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	logger.Info("数据库连接池已配置: %s 最大空闲连接数=%d, 最大连接数=%d", p.Name, p.MaxIdleConns, p.MaxOpenConns)
	return nil
}

// Stats 获取连接池统计信息
func (p *ConnectionPool) Stats() (map[string]interface{}, error) {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return nil, err
	}

	stats := sqlDB.Stats()
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration":        stats.WaitDuration.String(),
		"max_idle_closed":      stats.MaxIdleClosed,
		"max_lifetime_closed":  stats.MaxLifetimeClosed,
	}, nil
}

// Close 关闭连接池
func (p *ConnectionPool) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithTransaction 在事务中执行函数
func (p *ConnectionPool) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return p.DB.WithContext(ctx).Transaction(fn)
}

// HealthCheck 健康检查
func (p *ConnectionPool) HealthCheck(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// GetDB 获取GORM数据库实例
func (p *ConnectionPool) GetDB() *gorm.DB {
	return p.DB
}

// SQL returns the database/sql handle for hand-written queries.
func (p *ConnectionPool) SQL() (*sql.DB, error) {
	return p.DB.DB()
}
