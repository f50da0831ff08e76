package database

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/pkg/logger"
	"osintranet-http-service/pkg/utils"
)

// Identifiers of the seeded reference data.
var (
	TranslationInfoDanish  = uuid.MustParse("978c7b0f-4d0e-4d2c-9a4f-0d6b1e2c3a01")
	TranslationInfoEnglish = uuid.MustParse("978c7b0f-4d0e-4d2c-9a4f-0d6b1e2c3a02")

	StorageTypeRefrigerator    = uuid.MustParse("3ce7f6b2-6b40-4b4a-9e5c-1f0a8b2d7c01")
	StorageTypeFreezer         = uuid.MustParse("3ce7f6b2-6b40-4b4a-9e5c-1f0a8b2d7c02")
	StorageTypeKitchenCabinets = uuid.MustParse("3ce7f6b2-6b40-4b4a-9e5c-1f0a8b2d7c03")
	StorageTypeShoppingBasket  = uuid.MustParse("3ce7f6b2-6b40-4b4a-9e5c-1f0a8b2d7c04")

	DataProviderFoodData = uuid.MustParse("5e1b9c3f-2d7a-4c8e-b0f1-6a9d3e2c1b01")
	DataProviderPayPal   = uuid.MustParse("5e1b9c3f-2d7a-4c8e-b0f1-6a9d3e2c1b02")

	staticTextWelcomeLetter = uuid.MustParse("a1b2c3d4-0000-4000-8000-000000000001")
	staticTextPrivacyPolicy = uuid.MustParse("a1b2c3d4-0000-4000-8000-000000000002")
)

// DefaultStorageTypes are created in every new household.
func DefaultStorageTypes() []uuid.UUID {
	return []uuid.UUID{StorageTypeRefrigerator, StorageTypeFreezer, StorageTypeKitchenCabinets}
}

// EnsureAdminExists 确保系统中有管理员账户
func EnsureAdminExists(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("生成密码哈希失败: %w", err)
	}
	admin := models.User{
		Username: "admin",
		Password: hashedPassword,
		Role:     models.RoleAdmin,
		Status:   "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("创建默认管理员失败: %w", err)
	}
	logger.Info("已创建默认管理员账户")
	return nil
}

type translated struct {
	da string
	en string
}

// SeedReferenceData inserts translation infos, storage types and static texts
// that do not exist yet. Existing rows are left untouched.
func SeedReferenceData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		infos := []models.TranslationInfo{
			{ID: TranslationInfoDanish, CultureName: "da-DK"},
			{ID: TranslationInfoEnglish, CultureName: "en-US"},
		}
		if err := insertIgnore(tx, &infos); err != nil {
			return fmt.Errorf("seed translation infos: %w", err)
		}

		storageTypes := []struct {
			storageType models.StorageType
			name        translated
		}{
			{models.StorageType{ID: StorageTypeRefrigerator, SortOrder: 1, Temperature: 5, TemperatureRangeStart: 1, TemperatureRangeEnd: 10, Creatable: true, Editable: true, Deletable: true}, translated{"Køleskab", "Refrigerator"}},
			{models.StorageType{ID: StorageTypeFreezer, SortOrder: 2, Temperature: -18, TemperatureRangeStart: -22, TemperatureRangeEnd: -16, Creatable: true, Editable: true, Deletable: true}, translated{"Fryser", "Freezer"}},
			{models.StorageType{ID: StorageTypeKitchenCabinets, SortOrder: 3, Temperature: 20, TemperatureRangeStart: 16, TemperatureRangeEnd: 24, Creatable: true, Editable: true, Deletable: true}, translated{"Køkkenskabe", "Kitchen cabinets"}},
			{models.StorageType{ID: StorageTypeShoppingBasket, SortOrder: 4, Temperature: 20, TemperatureRangeStart: 16, TemperatureRangeEnd: 24, Creatable: false, Editable: false, Deletable: false}, translated{"Indkøbskurv", "Shopping basket"}},
		}
		for _, st := range storageTypes {
			storageType := st.storageType
			if err := insertIgnore(tx, &storageType); err != nil {
				return fmt.Errorf("seed storage types: %w", err)
			}
			if err := seedTranslations(tx, storageType.ID, st.name); err != nil {
				return err
			}
		}

		welcomeBody := uuid.NewSHA1(staticTextWelcomeLetter, []byte("body"))
		privacyBody := uuid.NewSHA1(staticTextPrivacyPolicy, []byte("body"))
		texts := []struct {
			text    models.StaticText
			subject translated
			body    translated
		}{
			{
				models.StaticText{ID: staticTextWelcomeLetter, Type: models.StaticTextWelcomeLetter, SubjectTranslationIdentifier: uuid.NewSHA1(staticTextWelcomeLetter, []byte("subject")), BodyTranslationIdentifier: &welcomeBody},
				translated{"Velkommen til madspild", "Welcome to food waste"},
				translated{"Din aktiveringskode er sendt til dig.", "Your activation code has been sent to you."},
			},
			{
				models.StaticText{ID: staticTextPrivacyPolicy, Type: models.StaticTextPrivacyPolicy, SubjectTranslationIdentifier: uuid.NewSHA1(staticTextPrivacyPolicy, []byte("subject")), BodyTranslationIdentifier: &privacyBody},
				translated{"Privatlivspolitik", "Privacy policy"},
				translated{"Vi gemmer kun din mailadresse og dine husstandsdata.", "We only store your mail address and your household data."},
			},
		}
		for _, t := range texts {
			text := t.text
			if err := insertIgnore(tx, &text); err != nil {
				return fmt.Errorf("seed static texts: %w", err)
			}
			if err := seedTranslations(tx, text.SubjectTranslationIdentifier, t.subject); err != nil {
				return err
			}
			if err := seedTranslations(tx, *text.BodyTranslationIdentifier, t.body); err != nil {
				return err
			}
		}

		providers := []struct {
			provider  models.DataProvider
			statement translated
		}{
			{models.DataProvider{ID: DataProviderFoodData, Name: "Fødevaredata", HandlesPayments: false, DataSourceStatementIdentifier: uuid.NewSHA1(DataProviderFoodData, []byte("statement"))}, translated{"Data fra Fødevaredata", "Data from Fødevaredata"}},
			{models.DataProvider{ID: DataProviderPayPal, Name: "PayPal", HandlesPayments: true, DataSourceStatementIdentifier: uuid.NewSHA1(DataProviderPayPal, []byte("statement"))}, translated{"Betaling via PayPal", "Payment through PayPal"}},
		}
		for _, p := range providers {
			provider := p.provider
			if err := insertIgnore(tx, &provider); err != nil {
				return fmt.Errorf("seed data providers: %w", err)
			}
			if err := seedTranslations(tx, provider.DataSourceStatementIdentifier, p.statement); err != nil {
				return err
			}
		}

		logger.Info("参考数据已初始化")
		return nil
	})
}

func seedTranslations(tx *gorm.DB, of uuid.UUID, value translated) error {
	translations := []models.Translation{
		{ID: uuid.NewSHA1(of, []byte("da-DK")), OfIdentifier: of, TranslationInfoID: TranslationInfoDanish, Value: value.da},
		{ID: uuid.NewSHA1(of, []byte("en-US")), OfIdentifier: of, TranslationInfoID: TranslationInfoEnglish, Value: value.en},
	}
	if err := insertIgnore(tx, &translations); err != nil {
		return fmt.Errorf("seed translations of %s: %w", of, err)
	}
	return nil
}

func insertIgnore(tx *gorm.DB, value interface{}) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(value).Error
}
