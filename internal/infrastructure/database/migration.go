package database

import (
	"fmt"

	"gorm.io/gorm"

	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/pkg/logger"
)

// 迁移模式
const (
	MigrationAuto  = "auto"
	MigrationAlter = "alter"
	MigrationDrop  = "drop"
)

// Models lists every table of the intranet database in creation order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.OperationLog{},
		&models.Letterhead{},
		&models.PostalCode{},
		&models.AddressGroup{},
		&models.PaymentTerm{},
		&models.Address{},
		&models.Accounting{},
		&models.AccountGroup{},
		&models.BudgetAccountGroup{},
		&models.Account{},
		&models.CreditInfo{},
		&models.BudgetAccount{},
		&models.BudgetInfo{},
		&models.Posting{},
		&models.TranslationInfo{},
		&models.Translation{},
		&models.StaticText{},
		&models.DataProvider{},
		&models.ForeignKey{},
		&models.HouseholdMember{},
		&models.Household{},
		&models.HouseholdMembership{},
		&models.StorageType{},
		&models.Storage{},
		&models.Payment{},
		&models.FoodGroup{},
		&models.FoodItem{},
		&models.FoodItemGroup{},
	}
}

// Migrate brings the schema up to date in the given mode.
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case MigrationDrop:
		logger.Warning("在drop模式下运行，将删除并重建所有表")
		return dropAndRecreateTables(db)
	case MigrationAlter:
		logger.Info("在alter模式下运行，将修改表结构以匹配模型")
		return advancedMigrate(db)
	case MigrationAuto, "":
		logger.Info("在标准模式下运行，将只添加新列和新表")
		return autoMigrate(db)
	default:
		return fmt.Errorf("unknown migration mode %q", mode)
	}
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("数据库迁移完成")
	return nil
}

// advancedMigrate drops columns the models no longer have, then auto migrates.
func advancedMigrate(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, model := range Models() {
		if !migrator.HasTable(model) {
			continue
		}
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parse %T: %w", model, err)
		}
		columns, err := migrator.ColumnTypes(model)
		if err != nil {
			return fmt.Errorf("read columns of %s: %w", stmt.Schema.Table, err)
		}
		for _, column := range columns {
			if stmt.Schema.LookUpField(column.Name()) != nil {
				continue
			}
			logger.Warning("在%s表中发现多余列: %s，准备删除", stmt.Schema.Table, column.Name())
			if err := migrator.DropColumn(model, column.Name()); err != nil {
				logger.Error("删除列失败: %v", err)
			}
		}
	}
	return autoMigrate(db)
}

// dropAndRecreateTables 删除并重建所有表
func dropAndRecreateTables(db *gorm.DB) error {
	tables := Models()
	// 逆序删除
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("drop %T: %w", tables[i], err)
		}
	}
	return autoMigrate(db)
}
