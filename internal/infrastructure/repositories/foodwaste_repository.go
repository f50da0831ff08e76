package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"osintranet-http-service/internal/domain/models"
)

// InterfaceFoodWasteRepository 食物浪费仓储接口
type InterfaceFoodWasteRepository interface {
	// Transaction runs fn with a repository bound to one database transaction.
	Transaction(ctx context.Context, fn func(repo InterfaceFoodWasteRepository) error) error

	GetMember(ctx context.Context, id uuid.UUID) (*models.HouseholdMember, error)
	GetMemberByMail(ctx context.Context, mailAddress string) (*models.HouseholdMember, error)
	// LockMember locks the member row until the surrounding transaction ends.
	LockMember(ctx context.Context, id uuid.UUID) (*models.HouseholdMember, error)
	CreateMember(ctx context.Context, member *models.HouseholdMember) error
	UpdateMember(ctx context.Context, member *models.HouseholdMember) error
	ListMemberHouseholds(ctx context.Context, memberID uuid.UUID) ([]models.Household, error)
	ListPayments(ctx context.Context, memberID uuid.UUID) ([]models.Payment, error)
	CreatePayment(ctx context.Context, payment *models.Payment) error

	GetHousehold(ctx context.Context, id uuid.UUID) (*models.Household, error)
	CreateHousehold(ctx context.Context, household *models.Household) error
	UpdateHousehold(ctx context.Context, household *models.Household) error
	ListHouseholdMembers(ctx context.Context, householdID uuid.UUID) ([]models.HouseholdMember, error)
	IsHouseholdMember(ctx context.Context, householdID, memberID uuid.UUID) (bool, error)
	AddHouseholdMembership(ctx context.Context, membership *models.HouseholdMembership) error
	RemoveHouseholdMembership(ctx context.Context, householdID, memberID uuid.UUID) error

	ListStorages(ctx context.Context, householdID uuid.UUID) ([]models.Storage, error)
	GetStorage(ctx context.Context, householdID, storageID uuid.UUID) (*models.Storage, error)
	CreateStorage(ctx context.Context, storage *models.Storage) error
	UpdateStorage(ctx context.Context, storage *models.Storage) error
	DeleteStorage(ctx context.Context, storage *models.Storage) error

	ListTranslationInfos(ctx context.Context) ([]models.TranslationInfo, error)
	GetTranslationInfo(ctx context.Context, id uuid.UUID) (*models.TranslationInfo, error)
	ListStorageTypes(ctx context.Context) ([]models.StorageType, error)
	GetStorageType(ctx context.Context, id uuid.UUID) (*models.StorageType, error)
	ListDataProviders(ctx context.Context) ([]models.DataProvider, error)
	GetDataProvider(ctx context.Context, id uuid.UUID) (*models.DataProvider, error)
	GetStaticText(ctx context.Context, textType models.StaticTextType) (*models.StaticText, error)

	Translations(ctx context.Context, translationInfoID uuid.UUID, of []uuid.UUID) (map[uuid.UUID]string, error)
	GetTranslation(ctx context.Context, id uuid.UUID) (*models.Translation, error)
	FindTranslation(ctx context.Context, of, translationInfoID uuid.UUID) (*models.Translation, error)
	SaveTranslation(ctx context.Context, translation *models.Translation) error
	DeleteTranslation(ctx context.Context, translation *models.Translation) error

	GetForeignKey(ctx context.Context, id uuid.UUID) (*models.ForeignKey, error)
	FindForeignKey(ctx context.Context, dataProviderID uuid.UUID, forType, value string) (*models.ForeignKey, error)
	ListForeignKeys(ctx context.Context, forIdentifiers []uuid.UUID) ([]models.ForeignKey, error)
	SaveForeignKey(ctx context.Context, key *models.ForeignKey) error
	DeleteForeignKey(ctx context.Context, key *models.ForeignKey) error

	ListFoodGroups(ctx context.Context, onlyActive bool) ([]models.FoodGroup, error)
	GetFoodGroup(ctx context.Context, id uuid.UUID) (*models.FoodGroup, error)
	SaveFoodGroup(ctx context.Context, group *models.FoodGroup) error
	ListFoodItems(ctx context.Context, foodGroupID uuid.UUID, onlyActive bool) ([]models.FoodItem, error)
	GetFoodItem(ctx context.Context, id uuid.UUID) (*models.FoodItem, error)
	SaveFoodItem(ctx context.Context, item *models.FoodItem) error
	ListFoodItemGroups(ctx context.Context, itemIDs []uuid.UUID) ([]models.FoodItemGroup, error)
}

// FoodWasteRepository 食物浪费仓储
type FoodWasteRepository struct {
	Repository
}

// NewFoodWasteRepository 创建食物浪费仓储
func NewFoodWasteRepository(base Repository) InterfaceFoodWasteRepository {
	return &FoodWasteRepository{Repository: base}
}

// Transaction 在事务中执行
func (r *FoodWasteRepository) Transaction(ctx context.Context, fn func(repo InterfaceFoodWasteRepository) error) error {
	return r.db(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&FoodWasteRepository{Repository: Repository{DB: tx, Cache: r.Cache, TTL: r.TTL}})
	})
}

// 1 GetMember 根据ID获取家庭成员
func (r *FoodWasteRepository) GetMember(ctx context.Context, id uuid.UUID) (*models.HouseholdMember, error) {
	var member models.HouseholdMember
	if err := r.db(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, dbError(err, "household member %s", id)
	}
	return &member, nil
}

// 2 GetMemberByMail 根据邮箱获取家庭成员
func (r *FoodWasteRepository) GetMemberByMail(ctx context.Context, mailAddress string) (*models.HouseholdMember, error) {
	var member models.HouseholdMember
	mailAddress = strings.ToLower(strings.TrimSpace(mailAddress))
	if err := r.db(ctx).First(&member, "mail_address = ?", mailAddress).Error; err != nil {
		return nil, dbError(err, "household member %s", mailAddress)
	}
	return &member, nil
}

// LockMember 锁定家庭成员行，只在 Transaction 中有意义
func (r *FoodWasteRepository) LockMember(ctx context.Context, id uuid.UUID) (*models.HouseholdMember, error) {
	var member models.HouseholdMember
	err := r.db(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&member, "id = ?", id).Error
	if err != nil {
		return nil, dbError(err, "household member %s", id)
	}
	return &member, nil
}

// 3 CreateMember 创建家庭成员
func (r *FoodWasteRepository) CreateMember(ctx context.Context, member *models.HouseholdMember) error {
	return dbError(r.db(ctx).Create(member).Error, "create household member %s", member.MailAddress)
}

// 4 UpdateMember 更新家庭成员
func (r *FoodWasteRepository) UpdateMember(ctx context.Context, member *models.HouseholdMember) error {
	return dbError(r.db(ctx).Save(member).Error, "update household member %s", member.ID)
}

// 5 ListMemberHouseholds returns the households of a member ordered by name.
func (r *FoodWasteRepository) ListMemberHouseholds(ctx context.Context, memberID uuid.UUID) ([]models.Household, error) {
	var households []models.Household
	err := r.db(ctx).
		Joins("JOIN household_memberships hm ON hm.household_id = households.id").
		Where("hm.household_member_id = ?", memberID).
		Order("households.name, households.creation_time").
		Find(&households).Error
	if err != nil {
		return nil, dbError(err, "households of member %s", memberID)
	}
	return households, nil
}

// 6 ListPayments 获取成员的支付记录
func (r *FoodWasteRepository) ListPayments(ctx context.Context, memberID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db(ctx).Where("stakeholder_id = ?", memberID).Order("payment_time DESC").Find(&payments).Error
	if err != nil {
		return nil, dbError(err, "payments of member %s", memberID)
	}
	return payments, nil
}

// 7 CreatePayment 创建支付记录
func (r *FoodWasteRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return dbError(r.db(ctx).Create(payment).Error, "create payment %s", payment.PaymentReference)
}

// 8 GetHousehold 获取家庭
func (r *FoodWasteRepository) GetHousehold(ctx context.Context, id uuid.UUID) (*models.Household, error) {
	var household models.Household
	if err := r.db(ctx).First(&household, "id = ?", id).Error; err != nil {
		return nil, dbError(err, "household %s", id)
	}
	return &household, nil
}

// 9 CreateHousehold 创建家庭
func (r *FoodWasteRepository) CreateHousehold(ctx context.Context, household *models.Household) error {
	return dbError(r.db(ctx).Create(household).Error, "create household %s", household.Name)
}

// 10 UpdateHousehold 更新家庭
func (r *FoodWasteRepository) UpdateHousehold(ctx context.Context, household *models.Household) error {
	return dbError(r.db(ctx).Save(household).Error, "update household %s", household.ID)
}

// 11 ListHouseholdMembers returns the members of a household ordered by mail address.
func (r *FoodWasteRepository) ListHouseholdMembers(ctx context.Context, householdID uuid.UUID) ([]models.HouseholdMember, error) {
	var members []models.HouseholdMember
	err := r.db(ctx).
		Joins("JOIN household_memberships hm ON hm.household_member_id = household_members.id").
		Where("hm.household_id = ?", householdID).
		Order("household_members.mail_address").
		Find(&members).Error
	if err != nil {
		return nil, dbError(err, "members of household %s", householdID)
	}
	return members, nil
}

// 12 IsHouseholdMember 检查成员是否属于家庭
func (r *FoodWasteRepository) IsHouseholdMember(ctx context.Context, householdID, memberID uuid.UUID) (bool, error) {
	found, err := exists(r.db(ctx), &models.HouseholdMembership{},
		"household_id = ? AND household_member_id = ?", householdID, memberID)
	return found, dbError(err, "membership of %s in household %s", memberID, householdID)
}

// 13 AddHouseholdMembership 添加家庭成员关系
func (r *FoodWasteRepository) AddHouseholdMembership(ctx context.Context, membership *models.HouseholdMembership) error {
	return dbError(r.db(ctx).Create(membership).Error,
		"add member %s to household %s", membership.HouseholdMemberID, membership.HouseholdID)
}

// 14 RemoveHouseholdMembership 删除家庭成员关系
func (r *FoodWasteRepository) RemoveHouseholdMembership(ctx context.Context, householdID, memberID uuid.UUID) error {
	result := r.db(ctx).Delete(&models.HouseholdMembership{}, "household_id = ? AND household_member_id = ?", householdID, memberID)
	if result.Error != nil {
		return dbError(result.Error, "remove member %s from household %s", memberID, householdID)
	}
	if result.RowsAffected == 0 {
		return errors.NotFoundf("member %s in household %s", memberID, householdID)
	}
	return nil
}

// 15 ListStorages returns the storages of a household by sort order.
func (r *FoodWasteRepository) ListStorages(ctx context.Context, householdID uuid.UUID) ([]models.Storage, error) {
	var storages []models.Storage
	err := r.db(ctx).Where("household_id = ?", householdID).Order("sort_order, creation_time").Find(&storages).Error
	if err != nil {
		return nil, dbError(err, "storages of household %s", householdID)
	}
	return storages, nil
}

// 16 GetStorage 获取存储
func (r *FoodWasteRepository) GetStorage(ctx context.Context, householdID, storageID uuid.UUID) (*models.Storage, error) {
	var storage models.Storage
	if err := r.db(ctx).First(&storage, "id = ? AND household_id = ?", storageID, householdID).Error; err != nil {
		return nil, dbError(err, "storage %s in household %s", storageID, householdID)
	}
	return &storage, nil
}

// 17 CreateStorage 创建存储
func (r *FoodWasteRepository) CreateStorage(ctx context.Context, storage *models.Storage) error {
	return dbError(r.db(ctx).Create(storage).Error, "create storage in household %s", storage.HouseholdID)
}

// 18 UpdateStorage 更新存储
func (r *FoodWasteRepository) UpdateStorage(ctx context.Context, storage *models.Storage) error {
	return dbError(r.db(ctx).Save(storage).Error, "update storage %s", storage.ID)
}

// 19 DeleteStorage 删除存储
func (r *FoodWasteRepository) DeleteStorage(ctx context.Context, storage *models.Storage) error {
	return dbError(r.db(ctx).Delete(storage).Error, "delete storage %s", storage.ID)
}

// 20 ListTranslationInfos 获取所有翻译语言
func (r *FoodWasteRepository) ListTranslationInfos(ctx context.Context) ([]models.TranslationInfo, error) {
	return cached(ctx, r.Repository, PrefixFoodWaste+"translationinfos", func(ctx context.Context) ([]models.TranslationInfo, error) {
		var infos []models.TranslationInfo
		if err := r.db(ctx).Order("culture_name").Find(&infos).Error; err != nil {
			return nil, dbError(err, "list translation infos")
		}
		return infos, nil
	})
}

// 21 GetTranslationInfo 获取翻译语言
func (r *FoodWasteRepository) GetTranslationInfo(ctx context.Context, id uuid.UUID) (*models.TranslationInfo, error) {
	infos, err := r.ListTranslationInfos(ctx)
	if err != nil {
		return nil, err
	}
	for i := range infos {
		if infos[i].ID == id {
			return &infos[i], nil
		}
	}
	return nil, errors.NotFoundf("translation info %s", id)
}

// 22 ListStorageTypes 获取所有存储类型
func (r *FoodWasteRepository) ListStorageTypes(ctx context.Context) ([]models.StorageType, error) {
	return cached(ctx, r.Repository, PrefixFoodWaste+"storagetypes", func(ctx context.Context) ([]models.StorageType, error) {
		var storageTypes []models.StorageType
		if err := r.db(ctx).Order("sort_order").Find(&storageTypes).Error; err != nil {
			return nil, dbError(err, "list storage types")
		}
		return storageTypes, nil
	})
}

// 23 GetStorageType 获取存储类型
func (r *FoodWasteRepository) GetStorageType(ctx context.Context, id uuid.UUID) (*models.StorageType, error) {
	storageTypes, err := r.ListStorageTypes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range storageTypes {
		if storageTypes[i].ID == id {
			return &storageTypes[i], nil
		}
	}
	return nil, errors.NotFoundf("storage type %s", id)
}

// 24 ListDataProviders 获取所有数据提供者
func (r *FoodWasteRepository) ListDataProviders(ctx context.Context) ([]models.DataProvider, error) {
	return cached(ctx, r.Repository, PrefixFoodWaste+"dataproviders", func(ctx context.Context) ([]models.DataProvider, error) {
		var providers []models.DataProvider
		if err := r.db(ctx).Order("name").Find(&providers).Error; err != nil {
			return nil, dbError(err, "list data providers")
		}
		return providers, nil
	})
}

// 25 GetDataProvider 获取数据提供者
func (r *FoodWasteRepository) GetDataProvider(ctx context.Context, id uuid.UUID) (*models.DataProvider, error) {
	providers, err := r.ListDataProviders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range providers {
		if providers[i].ID == id {
			return &providers[i], nil
		}
	}
	return nil, errors.NotFoundf("data provider %s", id)
}

// 26 GetStaticText 获取静态文本
func (r *FoodWasteRepository) GetStaticText(ctx context.Context, textType models.StaticTextType) (*models.StaticText, error) {
	return cached(ctx, r.Repository, fmt.Sprintf("%sstatictexts:%d", PrefixFoodWaste, textType), func(ctx context.Context) (*models.StaticText, error) {
		var text models.StaticText
		if err := r.db(ctx).First(&text, "type = ?", textType).Error; err != nil {
			return nil, dbError(err, "static text %d", textType)
		}
		return &text, nil
	})
}

// 27 Translations returns the values of the given identifiers in one culture.
// Identifiers without a translation are left out.
func (r *FoodWasteRepository) Translations(ctx context.Context, translationInfoID uuid.UUID, of []uuid.UUID) (map[uuid.UUID]string, error) {
	values := make(map[uuid.UUID]string, len(of))
	if len(of) == 0 {
		return values, nil
	}
	var translations []models.Translation
	err := r.db(ctx).
		Where("translation_info_id = ? AND of_identifier IN ?", translationInfoID, of).
		Find(&translations).Error
	if err != nil {
		return nil, dbError(err, "translations in %s", translationInfoID)
	}
	for _, t := range translations {
		values[t.OfIdentifier] = t.Value
	}
	return values, nil
}

// 28 GetTranslation 获取翻译
func (r *FoodWasteRepository) GetTranslation(ctx context.Context, id uuid.UUID) (*models.Translation, error) {
	var translation models.Translation
	if err := r.db(ctx).First(&translation, "id = ?", id).Error; err != nil {
		return nil, dbError(err, "translation %s", id)
	}
	return &translation, nil
}

// 29 FindTranslation 查找标识符在某语言下的翻译
func (r *FoodWasteRepository) FindTranslation(ctx context.Context, of, translationInfoID uuid.UUID) (*models.Translation, error) {
	var translation models.Translation
	err := r.db(ctx).First(&translation, "of_identifier = ? AND translation_info_id = ?", of, translationInfoID).Error
	if err != nil {
		return nil, dbError(err, "translation of %s in %s", of, translationInfoID)
	}
	return &translation, nil
}

// 30 SaveTranslation creates or updates a translation.
func (r *FoodWasteRepository) SaveTranslation(ctx context.Context, translation *models.Translation) error {
	if err := r.db(ctx).Save(translation).Error; err != nil {
		return dbError(err, "save translation %s", translation.ID)
	}
	r.invalidate(ctx, PrefixFoodWaste)
	return nil
}

// 31 DeleteTranslation 删除翻译
func (r *FoodWasteRepository) DeleteTranslation(ctx context.Context, translation *models.Translation) error {
	if err := r.db(ctx).Delete(translation).Error; err != nil {
		return dbError(err, "delete translation %s", translation.ID)
	}
	r.invalidate(ctx, PrefixFoodWaste)
	return nil
}

// 32 GetForeignKey 获取外键
func (r *FoodWasteRepository) GetForeignKey(ctx context.Context, id uuid.UUID) (*models.ForeignKey, error) {
	var key models.ForeignKey
	if err := r.db(ctx).First(&key, "id = ?", id).Error; err != nil {
		return nil, dbError(err, "foreign key %s", id)
	}
	return &key, nil
}

// 33 FindForeignKey finds the key a data provider uses for a value.
func (r *FoodWasteRepository) FindForeignKey(ctx context.Context, dataProviderID uuid.UUID, forType, value string) (*models.ForeignKey, error) {
	var key models.ForeignKey
	err := r.db(ctx).First(&key, "data_provider_id = ? AND foreign_key_for_type = ? AND foreign_key_value = ?",
		dataProviderID, forType, value).Error
	if err != nil {
		return nil, dbError(err, "foreign key %s %s", forType, value)
	}
	return &key, nil
}

// 34 ListForeignKeys returns the keys of the given identifiers.
func (r *FoodWasteRepository) ListForeignKeys(ctx context.Context, forIdentifiers []uuid.UUID) ([]models.ForeignKey, error) {
	var keys []models.ForeignKey
	if len(forIdentifiers) == 0 {
		return keys, nil
	}
	err := r.db(ctx).Where("foreign_key_for_identifier IN ?", forIdentifiers).Order("foreign_key_value").Find(&keys).Error
	if err != nil {
		return nil, dbError(err, "list foreign keys")
	}
	return keys, nil
}

// 35 SaveForeignKey creates or updates a foreign key.
func (r *FoodWasteRepository) SaveForeignKey(ctx context.Context, key *models.ForeignKey) error {
	return dbError(r.db(ctx).Save(key).Error, "save foreign key %s", key.ID)
}

// 36 DeleteForeignKey 删除外键
func (r *FoodWasteRepository) DeleteForeignKey(ctx context.Context, key *models.ForeignKey) error {
	return dbError(r.db(ctx).Delete(key).Error, "delete foreign key %s", key.ID)
}

// 37 ListFoodGroups 获取食物组
func (r *FoodWasteRepository) ListFoodGroups(ctx context.Context, onlyActive bool) ([]models.FoodGroup, error) {
	query := r.db(ctx)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var groups []models.FoodGroup
	if err := query.Find(&groups).Error; err != nil {
		return nil, dbError(err, "list food groups")
	}
	return groups, nil
}

// 38 GetFoodGroup 获取食物组
func (r *FoodWasteRepository) GetFoodGroup(ctx context.Context, id uuid.UUID) (*models.FoodGroup, error) {
	var group models.FoodGroup
	if err := r.db(ctx).First(&group, "id = ?", id).Error; err != nil {
		return nil, dbError(err, "food group %s", id)
	}
	return &group, nil
}

// 39 SaveFoodGroup creates or updates a food group.
func (r *FoodWasteRepository) SaveFoodGroup(ctx context.Context, group *models.FoodGroup) error {
	return dbError(r.db(ctx).Save(group).Error, "save food group %s", group.ID)
}

// 40 ListFoodItems returns the food items, of one food group unless foodGroupID is nil.
func (r *FoodWasteRepository) ListFoodItems(ctx context.Context, foodGroupID uuid.UUID, onlyActive bool) ([]models.FoodItem, error) {
	query := r.db(ctx).Model(&models.FoodItem{})
	if foodGroupID != uuid.Nil {
		query = query.
			Joins("JOIN food_item_groups fig ON fig.food_item_id = food_items.id").
			Where("fig.food_group_id = ?", foodGroupID)
	}
	if onlyActive {
		query = query.Where("food_items.is_active = ?", true)
	}
	var items []models.FoodItem
	if err := query.Find(&items).Error; err != nil {
		return nil, dbError(err, "list food items")
	}
	return items, nil
}

// 41 GetFoodItem 获取食物
func (r *FoodWasteRepository) GetFoodItem(ctx context.Context, id uuid.UUID) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := r.db(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, dbError(err, "food item %s", id)
	}
	return &item, nil
}

// 42 SaveFoodItem stores the food item and makes its primary food group the
// only primary group binding.
func (r *FoodWasteRepository) SaveFoodItem(ctx context.Context, item *models.FoodItem) error {
	db := r.db(ctx)
	if err := db.Save(item).Error; err != nil {
		return dbError(err, "save food item %s", item.ID)
	}
	err := db.Model(&models.FoodItemGroup{}).
		Where("food_item_id = ? AND food_group_id <> ?", item.ID, item.PrimaryFoodGroupID).
		Update("is_primary", false).Error
	if err != nil {
		return dbError(err, "demote food groups of %s", item.ID)
	}
	binding := models.FoodItemGroup{FoodItemID: item.ID, FoodGroupID: item.PrimaryFoodGroupID, IsPrimary: true}
	return dbError(db.Save(&binding).Error, "bind food item %s", item.ID)
}

// 43 ListFoodItemGroups returns the group bindings of the given food items.
func (r *FoodWasteRepository) ListFoodItemGroups(ctx context.Context, itemIDs []uuid.UUID) ([]models.FoodItemGroup, error) {
	var bindings []models.FoodItemGroup
	if len(itemIDs) == 0 {
		return bindings, nil
	}
	if err := r.db(ctx).Where("food_item_id IN ?", itemIDs).Find(&bindings).Error; err != nil {
		return nil, dbError(err, "list food item groups")
	}
	return bindings, nil
}
