package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership 会员等级
type Membership int

const (
	MembershipBasic Membership = iota + 1
	MembershipDeluxe
	MembershipPremium
)

var membershipNames = map[Membership]string{
	MembershipBasic:   "basic",
	MembershipDeluxe:  "deluxe",
	MembershipPremium: "premium",
}

func (m Membership) String() string {
	if name, ok := membershipNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMembership maps a membership name to its value.
func ParseMembership(name string) (Membership, bool) {
	for m, n := range membershipNames {
		if n == name {
			return m, true
		}
	}
	return 0, false
}

// HouseholdLimit is the number of households a membership may join.
func (m Membership) HouseholdLimit() int {
	switch m {
	case MembershipDeluxe:
		return 2
	case MembershipPremium:
		return 99
	default:
		return 1
	}
}

// 外键所属类型
const (
	ForeignKeyForFoodGroup = "FoodGroup"
	ForeignKeyForFoodItem  = "FoodItem"
)

// StaticTextType 静态文本类型
type StaticTextType int

const (
	StaticTextWelcomeLetter StaticTextType = iota + 1
	StaticTextPrivacyPolicy
)

// HouseholdMember is a user of the food waste domain identified by mail address.
type HouseholdMember struct {
	ID                        uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	MailAddress               string     `gorm:"type:varchar(128);uniqueIndex;not null" json:"mail_address"`
	Membership                Membership `gorm:"not null;default:1" json:"membership"`
	MembershipExpireTime      *time.Time `json:"membership_expire_time"`
	ActivationCode            string     `gorm:"type:varchar(64);not null" json:"-"`
	ActivationTime            *time.Time `json:"activation_time"`
	PrivacyPolicyAcceptedTime *time.Time `json:"privacy_policy_accepted_time"`
	CreationTime              time.Time  `gorm:"not null" json:"creation_time"`
}

// IsActivated reports whether the activation code has been entered.
func (m HouseholdMember) IsActivated() bool {
	return m.ActivationTime != nil
}

// HasAcceptedPrivacyPolicy reports whether the privacy policy has been accepted.
func (m HouseholdMember) HasAcceptedPrivacyPolicy() bool {
	return m.PrivacyPolicyAcceptedTime != nil
}

// EffectiveMembership is basic once a paid membership has expired.
func (m HouseholdMember) EffectiveMembership(now time.Time) Membership {
	if m.Membership <= MembershipBasic {
		return MembershipBasic
	}
	if m.MembershipExpireTime == nil || !m.MembershipExpireTime.After(now) {
		return MembershipBasic
	}
	return m.Membership
}

// Household is a home whose storages are tracked.
type Household struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(64);not null" json:"name"`
	Description  string    `gorm:"type:varchar(2048)" json:"description"`
	CreationTime time.Time `gorm:"not null" json:"creation_time"`
}

// HouseholdMembership binds a member to a household.
type HouseholdMembership struct {
	HouseholdID       uuid.UUID `gorm:"type:char(36);primaryKey" json:"household_id"`
	HouseholdMemberID uuid.UUID `gorm:"type:char(36);primaryKey" json:"household_member_id"`
	CreationTime      time.Time `gorm:"not null" json:"creation_time"`
}

// StorageType describes a kind of storage, e.g. refrigerator.
type StorageType struct {
	ID                    uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	SortOrder             int       `gorm:"not null" json:"sort_order"`
	Temperature           int       `gorm:"not null" json:"temperature"`
	TemperatureRangeStart int       `gorm:"not null" json:"temperature_range_start"`
	TemperatureRangeEnd   int       `gorm:"not null" json:"temperature_range_end"`
	Creatable             bool      `gorm:"not null" json:"creatable"`
	Editable              bool      `gorm:"not null" json:"editable"`
	Deletable             bool      `gorm:"not null" json:"deletable"`
}

// InRange reports whether temperature is within the type's range.
func (t StorageType) InRange(temperature int) bool {
	return temperature >= t.TemperatureRangeStart && temperature <= t.TemperatureRangeEnd
}

// Storage is a storage in a household.
type Storage struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	HouseholdID   uuid.UUID `gorm:"type:char(36);not null;index" json:"household_id"`
	SortOrder     int       `gorm:"not null" json:"sort_order"`
	StorageTypeID uuid.UUID `gorm:"type:char(36);not null" json:"storage_type_id"`
	Description   string    `gorm:"type:varchar(2048)" json:"description"`
	Temperature   int       `gorm:"not null" json:"temperature"`
	CreationTime  time.Time `gorm:"not null" json:"creation_time"`
}

// DataProvider delivers food data or handles payments.
type DataProvider struct {
	ID                            uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name                          string    `gorm:"type:varchar(256);not null" json:"name"`
	HandlesPayments               bool      `gorm:"not null" json:"handles_payments"`
	DataSourceStatementIdentifier uuid.UUID `gorm:"type:char(36);not null" json:"data_source_statement_identifier"`
}

// Payment is a membership payment made by a household member.
type Payment struct {
	ID               uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	StakeholderID    uuid.UUID `gorm:"type:char(36);not null;index" json:"stakeholder_id"`
	DataProviderID   uuid.UUID `gorm:"type:char(36);not null" json:"data_provider_id"`
	PaymentTime      time.Time `gorm:"not null" json:"payment_time"`
	PaymentReference string    `gorm:"type:varchar(128);not null" json:"payment_reference"`
	PaymentReceipt   string    `gorm:"type:text" json:"payment_receipt"`
	CreationTime     time.Time `gorm:"not null" json:"creation_time"`
}

// ForeignKey is a data provider's key for one of our identifiers.
type ForeignKey struct {
	ID                      uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	DataProviderID          uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_foreign_key_value" json:"data_provider_id"`
	ForeignKeyForIdentifier uuid.UUID `gorm:"type:char(36);not null;index" json:"foreign_key_for_identifier"`
	ForeignKeyForType       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_foreign_key_value" json:"foreign_key_for_type"`
	ForeignKeyValue         string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_foreign_key_value" json:"foreign_key_value"`
}

// FoodGroup is a node in the food group tree.
type FoodGroup struct {
	ID       uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	ParentID *uuid.UUID `gorm:"type:char(36);index" json:"parent_id"`
	IsActive bool       `gorm:"not null" json:"is_active"`
}

// FoodItem is a food belonging to one primary and any number of other food groups.
type FoodItem struct {
	ID                 uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	PrimaryFoodGroupID uuid.UUID `gorm:"type:char(36);not null;index" json:"primary_food_group_id"`
	IsActive           bool      `gorm:"not null" json:"is_active"`
}

// FoodItemGroup binds a food item to a food group.
type FoodItemGroup struct {
	FoodItemID  uuid.UUID `gorm:"type:char(36);primaryKey" json:"food_item_id"`
	FoodGroupID uuid.UUID `gorm:"type:char(36);primaryKey" json:"food_group_id"`
	IsPrimary   bool      `gorm:"not null" json:"is_primary"`
}

// TranslationInfo is a culture translations are written in.
type TranslationInfo struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CultureName string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"culture_name"`
}

// Translation is the text of an identifier in a culture.
type Translation struct {
	ID                uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	OfIdentifier      uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_translation_of" json:"of_identifier"`
	TranslationInfoID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_translation_of" json:"translation_info_id"`
	Value             string    `gorm:"type:varchar(4096);not null" json:"value"`
}

// StaticText is a translatable text such as the privacy policy.
type StaticText struct {
	ID                           uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	Type                         StaticTextType `gorm:"not null;uniqueIndex" json:"type"`
	SubjectTranslationIdentifier uuid.UUID      `gorm:"type:char(36);not null" json:"subject_translation_identifier"`
	BodyTranslationIdentifier    *uuid.UUID     `gorm:"type:char(36)" json:"body_translation_identifier"`
}
