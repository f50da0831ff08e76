package models

import "time"

// 地址类型
const (
	AddressTypePerson  = "person"
	AddressTypeCompany = "company"
)

// PostalCode maps a postal code within a country to its city.
type PostalCode struct {
	CountryCode string `gorm:"type:varchar(3);primaryKey" json:"country_code"`
	PostalCode  string `gorm:"type:varchar(16);primaryKey" json:"postal_code"`
	City        string `gorm:"type:varchar(64);not null" json:"city"`
}

// AddressGroup groups addresses, e.g. family or suppliers.
type AddressGroup struct {
	Number             int    `gorm:"primaryKey;autoIncrement:false" json:"number"`
	Name               string `gorm:"type:varchar(64);not null" json:"name"`
	OswebdbGroupNumber int    `gorm:"not null;default:0" json:"oswebdb_group_number"`
}

// PaymentTerm (betalingsbetingelse).
type PaymentTerm struct {
	Number int    `gorm:"primaryKey;autoIncrement:false" json:"number"`
	Name   string `gorm:"type:varchar(64);not null" json:"name"`
}

// Address is a person or a company in the address book. Person only and
// company only columns are left empty for the other type.
type Address struct {
	Number             int        `gorm:"primaryKey;autoIncrement" json:"number"`
	Type               string     `gorm:"type:varchar(16);not null;index" json:"type"`
	Name               string     `gorm:"type:varchar(64);not null;index" json:"name"`
	FirstName          string     `gorm:"type:varchar(32)" json:"first_name"`
	Address1           string     `gorm:"type:varchar(64)" json:"address1"`
	Address2           string     `gorm:"type:varchar(64)" json:"address2"`
	PostalCity         string     `gorm:"type:varchar(64)" json:"postal_city"`
	PrimaryPhone       string     `gorm:"type:varchar(32)" json:"primary_phone"`
	SecondaryPhone     string     `gorm:"type:varchar(32)" json:"secondary_phone"`
	Telefax            string     `gorm:"type:varchar(32)" json:"telefax"`
	Birthday           *time.Time `json:"birthday"`
	MailAddress        string     `gorm:"type:varchar(256)" json:"mail_address"`
	Web                string     `gorm:"type:varchar(256)" json:"web"`
	Acquaintance       string     `gorm:"type:varchar(64)" json:"acquaintance"`
	CompanyNumber      *int       `gorm:"index" json:"company_number"`
	AddressGroupNumber int        `gorm:"not null" json:"address_group_number"`
	PaymentTermNumber  *int       `json:"payment_term_number"`
	Discount           int        `gorm:"not null;default:0" json:"discount"`
	Mailing            bool       `gorm:"not null;default:false" json:"mailing"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// FullName joins first name and name for persons.
func (a Address) FullName() string {
	if a.Type == AddressTypePerson && a.FirstName != "" {
		return a.FirstName + " " + a.Name
	}
	return a.Name
}
