package contracts

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdMemberIsCreatedQuery asks whether the caller is a household member.
type HouseholdMemberIsCreatedQuery struct{}

// HouseholdMemberIsActivatedQuery asks whether the caller has been activated.
type HouseholdMemberIsActivatedQuery struct{}

// HouseholdMemberHasAcceptedPrivacyPolicyQuery asks whether the caller has
// accepted the privacy policy.
type HouseholdMemberHasAcceptedPrivacyPolicyQuery struct{}

// HouseholdMemberDataGetQuery returns the caller with households and payments.
type HouseholdMemberDataGetQuery struct {
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
}

// HouseholdMemberAddCommand creates a household member and sends the welcome letter.
type HouseholdMemberAddCommand struct {
	MailAddress     string    `json:"mail_address" validate:"required,email,max=128"`
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
}

// HouseholdMemberActivateCommand activates the caller.
type HouseholdMemberActivateCommand struct {
	ActivationCode string `json:"activation_code" validate:"required,max=64"`
}

// HouseholdMemberAcceptPrivacyPolicyCommand 接受隐私政策
type HouseholdMemberAcceptPrivacyPolicyCommand struct{}

// HouseholdMemberUpgradeMembershipCommand upgrades the caller's membership
// after a payment.
type HouseholdMemberUpgradeMembershipCommand struct {
	Membership       string    `json:"membership" validate:"required,oneof=basic deluxe premium"`
	DataProvider     uuid.UUID `json:"data_provider" validate:"required"`
	PaymentTime      time.Time `json:"payment_time" validate:"required"`
	PaymentReference string    `json:"payment_reference" validate:"required,max=128"`
	PaymentReceipt   string    `json:"payment_receipt" validate:"max=65535"`
}

// HouseholdMemberView 家庭成员视图
type HouseholdMemberView struct {
	ID                        uuid.UUID                     `json:"id" xml:"id"`
	MailAddress               string                        `json:"mail_address" xml:"mail_address"`
	Membership                string                        `json:"membership" xml:"membership"`
	MembershipExpireTime      *time.Time                    `json:"membership_expire_time,omitempty" xml:"membership_expire_time,omitempty"`
	MembershipHasExpired      bool                          `json:"membership_has_expired" xml:"membership_has_expired"`
	CanUpgradeMembership      bool                          `json:"can_upgrade_membership" xml:"can_upgrade_membership"`
	IsActivated               bool                          `json:"is_activated" xml:"is_activated"`
	ActivationTime            *time.Time                    `json:"activation_time,omitempty" xml:"activation_time,omitempty"`
	HasAcceptedPrivacyPolicy  bool                          `json:"has_accepted_privacy_policy" xml:"has_accepted_privacy_policy"`
	PrivacyPolicyAcceptedTime *time.Time                    `json:"privacy_policy_accepted_time,omitempty" xml:"privacy_policy_accepted_time,omitempty"`
	HasReachedHouseholdLimit  bool                          `json:"has_reached_household_limit" xml:"has_reached_household_limit"`
	CreationTime              time.Time                     `json:"creation_time" xml:"creation_time"`
	Households                []HouseholdIdentificationView `json:"households" xml:"households>household"`
	Payments                  []PaymentView                 `json:"payments" xml:"payments>payment"`
}

// HouseholdMemberIdentificationView identifies a household member.
type HouseholdMemberIdentificationView struct {
	ID          uuid.UUID `json:"id" xml:"id"`
	MailAddress string    `json:"mail_address" xml:"mail_address"`
}

// PaymentView 支付视图
type PaymentView struct {
	ID               uuid.UUID        `json:"id" xml:"id"`
	DataProvider     DataProviderView `json:"data_provider" xml:"data_provider"`
	PaymentTime      time.Time        `json:"payment_time" xml:"payment_time"`
	PaymentReference string           `json:"payment_reference" xml:"payment_reference"`
	PaymentReceipt   string           `json:"payment_receipt,omitempty" xml:"payment_receipt,omitempty"`
	CreationTime     time.Time        `json:"creation_time" xml:"creation_time"`
}

// HouseholdDataGetQuery returns a household the caller belongs to.
type HouseholdDataGetQuery struct {
	Household       uuid.UUID `json:"household" validate:"required"`
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
}

// HouseholdIdentificationView identifies a household.
type HouseholdIdentificationView struct {
	ID          uuid.UUID `json:"id" xml:"id"`
	Name        string    `json:"name" xml:"name"`
	Description string    `json:"description,omitempty" xml:"description,omitempty"`
}

// HouseholdView 家庭视图
type HouseholdView struct {
	ID           uuid.UUID                          `json:"id" xml:"id"`
	Name         string                             `json:"name" xml:"name"`
	Description  string                             `json:"description" xml:"description"`
	CreationTime time.Time                          `json:"creation_time" xml:"creation_time"`
	Members      []HouseholdMemberIdentificationView `json:"members" xml:"members>member"`
	Storages     []StorageView                      `json:"storages" xml:"storages>storage"`
}

// HouseholdAddCommand creates a household with the default storages.
type HouseholdAddCommand struct {
	Name            string    `json:"name" validate:"required,max=64"`
	Description     string    `json:"description" validate:"max=2048"`
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
}

// HouseholdUpdateCommand 更新家庭
type HouseholdUpdateCommand struct {
	Household   uuid.UUID `json:"household" validate:"required"`
	Name        string    `json:"name" validate:"required,max=64"`
	Description string    `json:"description" validate:"max=2048"`
}

// HouseholdAddHouseholdMemberCommand adds a member to a household, creating
// the member when the mail address is unknown.
type HouseholdAddHouseholdMemberCommand struct {
	Household       uuid.UUID `json:"household" validate:"required"`
	MailAddress     string    `json:"mail_address" validate:"required,email,max=128"`
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
}

// HouseholdRemoveHouseholdMemberCommand 从家庭移除成员
type HouseholdRemoveHouseholdMemberCommand struct {
	Household   uuid.UUID `json:"household" validate:"required"`
	MailAddress string    `json:"mail_address" validate:"required,email,max=128"`
}

// StorageView 存储视图
type StorageView struct {
	ID           uuid.UUID       `json:"id" xml:"id"`
	HouseholdID  uuid.UUID       `json:"household_id" xml:"household_id"`
	SortOrder    int             `json:"sort_order" xml:"sort_order"`
	StorageType  StorageTypeView `json:"storage_type" xml:"storage_type"`
	Description  string          `json:"description" xml:"description"`
	Temperature  int             `json:"temperature" xml:"temperature"`
	CreationTime time.Time       `json:"creation_time" xml:"creation_time"`
}

// StorageAddCommand 添加存储
type StorageAddCommand struct {
	Household   uuid.UUID `json:"household" validate:"required"`
	SortOrder   int       `json:"sort_order" validate:"min=1,max=100"`
	StorageType uuid.UUID `json:"storage_type" validate:"required"`
	Description string    `json:"description" validate:"max=2048"`
	Temperature int       `json:"temperature"`
}

// StorageModifyCommand 修改存储
type StorageModifyCommand struct {
	Household   uuid.UUID `json:"household" validate:"required"`
	Storage     uuid.UUID `json:"storage" validate:"required"`
	SortOrder   int       `json:"sort_order" validate:"min=1,max=100"`
	StorageType uuid.UUID `json:"storage_type" validate:"required"`
	Description string    `json:"description" validate:"max=2048"`
	Temperature int       `json:"temperature"`
}

// StorageDeleteCommand 删除存储
type StorageDeleteCommand struct {
	Household uuid.UUID `json:"household" validate:"required"`
	Storage   uuid.UUID `json:"storage" validate:"required"`
}

// TranslationInfoListGetQuery lists the cultures.
type TranslationInfoListGetQuery struct{}

// TranslationInfoView 翻译语言视图
type TranslationInfoView struct {
	ID          uuid.UUID `json:"id" xml:"id"`
	CultureName string    `json:"culture_name" xml:"culture_name"`
}

// TranslationView 翻译视图
type TranslationView struct {
	ID                      uuid.UUID           `json:"id" xml:"id"`
	TranslationOfIdentifier uuid.UUID           `json:"translation_of_identifier" xml:"translation_of_identifier"`
	TranslationInfo         TranslationInfoView `json:"translation_info" xml:"translation_info"`
	Value                   string              `json:"value" xml:"value"`
}

// StorageTypeListGetQuery lists the storage types.
type StorageTypeListGetQuery struct {
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
}

// StorageTypeView 存储类型视图
type StorageTypeView struct {
	ID                    uuid.UUID `json:"id" xml:"id"`
	Name                  string    `json:"name" xml:"name"`
	SortOrder             int       `json:"sort_order" xml:"sort_order"`
	Temperature           int       `json:"temperature" xml:"temperature"`
	TemperatureRangeStart int       `json:"temperature_range_start" xml:"temperature_range_start"`
	TemperatureRangeEnd   int       `json:"temperature_range_end" xml:"temperature_range_end"`
	Creatable             bool      `json:"creatable" xml:"creatable"`
	Editable              bool      `json:"editable" xml:"editable"`
	Deletable             bool      `json:"deletable" xml:"deletable"`
}

// DataProviderListGetQuery lists the data providers.
type DataProviderListGetQuery struct {
	TranslationInfo      uuid.UUID `json:"translation_info" validate:"required"`
	OnlyHandlingPayments bool      `json:"only_handling_payments" form:"only_handling_payments"`
}

// DataProviderView 数据提供者视图
type DataProviderView struct {
	ID                  uuid.UUID `json:"id" xml:"id"`
	Name                string    `json:"name" xml:"name"`
	HandlesPayments     bool      `json:"handles_payments" xml:"handles_payments"`
	DataSourceStatement string    `json:"data_source_statement" xml:"data_source_statement"`
}

// StaticTextGetQuery returns a static text in a culture.
type StaticTextGetQuery struct {
	Type            int       `json:"type" form:"type" validate:"min=1,max=2"`
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
}

// PrivacyPolicyGetQuery returns the privacy policy in a culture.
type PrivacyPolicyGetQuery struct {
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
}

// StaticTextView 静态文本视图
type StaticTextView struct {
	ID      uuid.UUID `json:"id" xml:"id"`
	Type    int       `json:"type" xml:"type"`
	Subject string    `json:"subject" xml:"subject"`
	Body    string    `json:"body" xml:"body"`
}

// FoodGroupTreeGetQuery returns the root food groups with their children.
type FoodGroupTreeGetQuery struct {
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
	OnlyActive      bool      `json:"only_active" form:"only_active"`
}

// FoodGroupView is a food group with its children.
type FoodGroupView struct {
	ID          uuid.UUID        `json:"id" xml:"id"`
	Name        string           `json:"name" xml:"name"`
	IsActive    bool             `json:"is_active" xml:"is_active"`
	ParentID    *uuid.UUID       `json:"parent_id,omitempty" xml:"parent_id,omitempty"`
	ForeignKeys []ForeignKeyView `json:"foreign_keys,omitempty" xml:"foreign_keys>foreign_key,omitempty"`
	Children    []FoodGroupView  `json:"children,omitempty" xml:"children>food_group,omitempty"`
}

// FoodGroupTreeView 食物组树
type FoodGroupTreeView struct {
	FoodGroups []FoodGroupView `json:"food_groups" xml:"food_groups>food_group"`
}

// FoodItemCollectionGetQuery lists food items, optionally of one food group.
type FoodItemCollectionGetQuery struct {
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
	FoodGroup       uuid.UUID `json:"food_group"`
	OnlyActive      bool      `json:"only_active" form:"only_active"`
}

// FoodGroupIdentificationView identifies a food group.
type FoodGroupIdentificationView struct {
	ID   uuid.UUID `json:"id" xml:"id"`
	Name string    `json:"name" xml:"name"`
}

// FoodItemView 食物视图
type FoodItemView struct {
	ID               uuid.UUID                     `json:"id" xml:"id"`
	Name             string                        `json:"name" xml:"name"`
	IsActive         bool                          `json:"is_active" xml:"is_active"`
	PrimaryFoodGroup FoodGroupIdentificationView   `json:"primary_food_group" xml:"primary_food_group"`
	FoodGroups       []FoodGroupIdentificationView `json:"food_groups" xml:"food_groups>food_group"`
	ForeignKeys      []ForeignKeyView              `json:"foreign_keys,omitempty" xml:"foreign_keys>foreign_key,omitempty"`
}

// FoodItemCollectionView 食物集合
type FoodItemCollectionView struct {
	FoodItems []FoodItemView `json:"food_items" xml:"food_items>food_item"`
}

// FoodGroupImportFromDataProviderCommand creates or updates a food group
// identified by the data provider's key.
type FoodGroupImportFromDataProviderCommand struct {
	DataProvider    uuid.UUID `json:"data_provider" validate:"required"`
	Key             string    `json:"key" validate:"required,max=128"`
	ParentKey       string    `json:"parent_key" validate:"max=128"`
	Name            string    `json:"name" validate:"required,max=4096"`
	TranslationInfo uuid.UUID `json:"translation_info" validate:"required"`
	IsActive        bool      `json:"is_active"`
}

// FoodItemImportFromDataProviderCommand creates or updates a food item
// identified by the data provider's key.
type FoodItemImportFromDataProviderCommand struct {
	DataProvider        uuid.UUID `json:"data_provider" validate:"required"`
	Key                 string    `json:"key" validate:"required,max=128"`
	PrimaryFoodGroupKey string    `json:"primary_food_group_key" validate:"required,max=128"`
	Name                string    `json:"name" validate:"required,max=4096"`
	TranslationInfo     uuid.UUID `json:"translation_info" validate:"required"`
	IsActive            bool      `json:"is_active"`
}

// TranslationAddCommand 添加翻译
type TranslationAddCommand struct {
	TranslationOfIdentifier uuid.UUID `json:"translation_of_identifier" validate:"required"`
	TranslationInfo         uuid.UUID `json:"translation_info" validate:"required"`
	Value                   string    `json:"value" validate:"required,max=4096"`
}

// TranslationModifyCommand 修改翻译
type TranslationModifyCommand struct {
	Translation uuid.UUID `json:"translation" validate:"required"`
	Value       string    `json:"value" validate:"required,max=4096"`
}

// TranslationDeleteCommand 删除翻译
type TranslationDeleteCommand struct {
	Translation uuid.UUID `json:"translation" validate:"required"`
}

// ForeignKeyView 外键视图
type ForeignKeyView struct {
	ID                      uuid.UUID `json:"id" xml:"id"`
	DataProviderID          uuid.UUID `json:"data_provider_id" xml:"data_provider_id"`
	ForeignKeyForIdentifier uuid.UUID `json:"foreign_key_for_identifier" xml:"foreign_key_for_identifier"`
	ForeignKeyForType       string    `json:"foreign_key_for_type" xml:"foreign_key_for_type"`
	ForeignKeyValue         string    `json:"foreign_key_value" xml:"foreign_key_value"`
}

// ForeignKeyAddCommand 添加外键
type ForeignKeyAddCommand struct {
	DataProvider            uuid.UUID `json:"data_provider" validate:"required"`
	ForeignKeyForIdentifier uuid.UUID `json:"foreign_key_for_identifier" validate:"required"`
	ForeignKeyForType       string    `json:"foreign_key_for_type" validate:"required,oneof=FoodGroup FoodItem"`
	ForeignKeyValue         string    `json:"foreign_key_value" validate:"required,max=128"`
}

// ForeignKeyModifyCommand 修改外键
type ForeignKeyModifyCommand struct {
	ForeignKey      uuid.UUID `json:"foreign_key" validate:"required"`
	ForeignKeyValue string    `json:"foreign_key_value" validate:"required,max=128"`
}

// ForeignKeyDeleteCommand 删除外键
type ForeignKeyDeleteCommand struct {
	ForeignKey uuid.UUID `json:"foreign_key" validate:"required"`
}
