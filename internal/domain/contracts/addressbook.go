package contracts

import "time"

// TelephoneListGetQuery lists every address with a phone number.
type TelephoneListGetQuery struct{}

// TelephoneListView is one line of the telephone list.
type TelephoneListView struct {
	Number         int    `json:"number" xml:"number"`
	Name           string `json:"name" xml:"name"`
	PrimaryPhone   string `json:"primary_phone" xml:"primary_phone"`
	SecondaryPhone string `json:"secondary_phone" xml:"secondary_phone"`
}

// PersonListGetQuery lists persons ordered by name.
type PersonListGetQuery struct{}

// CompanyListGetQuery lists companies ordered by name.
type CompanyListGetQuery struct{}

// PersonGetQuery 获取个人地址
type PersonGetQuery struct {
	Number int `json:"number" uri:"number" validate:"min=1"`
}

// CompanyGetQuery 获取公司地址
type CompanyGetQuery struct {
	Number int `json:"number" uri:"number" validate:"min=1"`
}

// AddressBriefView identifies an address.
type AddressBriefView struct {
	Number       int    `json:"number" xml:"number"`
	Name         string `json:"name" xml:"name"`
	PrimaryPhone string `json:"primary_phone,omitempty" xml:"primary_phone,omitempty"`
	MailAddress  string `json:"mail_address,omitempty" xml:"mail_address,omitempty"`
}

// PersonView 个人视图
type PersonView struct {
	Number         int               `json:"number" xml:"number"`
	FirstName      string            `json:"first_name" xml:"first_name"`
	Name           string            `json:"name" xml:"name"`
	FullName       string            `json:"full_name" xml:"full_name"`
	Address1       string            `json:"address1" xml:"address1"`
	Address2       string            `json:"address2" xml:"address2"`
	PostalCity     string            `json:"postal_city" xml:"postal_city"`
	PrimaryPhone   string            `json:"primary_phone" xml:"primary_phone"`
	SecondaryPhone string            `json:"secondary_phone" xml:"secondary_phone"`
	Birthday       *time.Time        `json:"birthday,omitempty" xml:"birthday,omitempty"`
	MailAddress    string            `json:"mail_address" xml:"mail_address"`
	Acquaintance   string            `json:"acquaintance" xml:"acquaintance"`
	Discount       int               `json:"discount" xml:"discount"`
	Mailing        bool              `json:"mailing" xml:"mailing"`
	AddressGroup   AddressGroupView  `json:"address_group" xml:"address_group"`
	PaymentTerm    *PaymentTermView  `json:"payment_term,omitempty" xml:"payment_term,omitempty"`
	Company        *AddressBriefView `json:"company,omitempty" xml:"company,omitempty"`
}

// CompanyView 公司视图
type CompanyView struct {
	Number         int                `json:"number" xml:"number"`
	Name           string             `json:"name" xml:"name"`
	Address1       string             `json:"address1" xml:"address1"`
	Address2       string             `json:"address2" xml:"address2"`
	PostalCity     string             `json:"postal_city" xml:"postal_city"`
	PrimaryPhone   string             `json:"primary_phone" xml:"primary_phone"`
	SecondaryPhone string             `json:"secondary_phone" xml:"secondary_phone"`
	Telefax        string             `json:"telefax" xml:"telefax"`
	MailAddress    string             `json:"mail_address" xml:"mail_address"`
	Web            string             `json:"web" xml:"web"`
	Acquaintance   string             `json:"acquaintance" xml:"acquaintance"`
	Discount       int                `json:"discount" xml:"discount"`
	Mailing        bool               `json:"mailing" xml:"mailing"`
	AddressGroup   AddressGroupView   `json:"address_group" xml:"address_group"`
	PaymentTerm    *PaymentTermView   `json:"payment_term,omitempty" xml:"payment_term,omitempty"`
	Persons        []AddressBriefView `json:"persons,omitempty" xml:"persons>person,omitempty"`
}

// PostalCodeListGetQuery lists postal codes, optionally of one country.
type PostalCodeListGetQuery struct {
	CountryCode string `json:"country_code" form:"country_code" validate:"omitempty,countrycode"`
}

// PostalCodeView 邮编视图
type PostalCodeView struct {
	CountryCode string `json:"country_code" xml:"country_code"`
	PostalCode  string `json:"postal_code" xml:"postal_code"`
	City        string `json:"city" xml:"city"`
}

// AddressGroupListGetQuery 获取所有地址组
type AddressGroupListGetQuery struct{}

// AddressGroupGetQuery 获取地址组
type AddressGroupGetQuery struct {
	Number int `json:"number" uri:"number" validate:"min=1"`
}

// AddressGroupView 地址组视图
type AddressGroupView struct {
	Number             int    `json:"number" xml:"number"`
	Name               string `json:"name" xml:"name"`
	OswebdbGroupNumber int    `json:"oswebdb_group_number" xml:"oswebdb_group_number"`
}

// PaymentTermListGetQuery 获取所有付款条件
type PaymentTermListGetQuery struct{}

// PaymentTermGetQuery 获取付款条件
type PaymentTermGetQuery struct {
	Number int `json:"number" uri:"number" validate:"min=1"`
}

// PaymentTermView 付款条件视图
type PaymentTermView struct {
	Number int    `json:"number" xml:"number"`
	Name   string `json:"name" xml:"name"`
}

// AddressData holds the fields persons and companies share.
type AddressData struct {
	Name               string `json:"name" validate:"required,max=64"`
	Address1           string `json:"address1" validate:"max=64"`
	Address2           string `json:"address2" validate:"max=64"`
	PostalCity         string `json:"postal_city" validate:"max=64"`
	PrimaryPhone       string `json:"primary_phone" validate:"max=32"`
	SecondaryPhone     string `json:"secondary_phone" validate:"max=32"`
	MailAddress        string `json:"mail_address" validate:"omitempty,email,max=256"`
	Acquaintance       string `json:"acquaintance" validate:"max=64"`
	AddressGroupNumber int    `json:"address_group_number" validate:"min=1"`
	PaymentTermNumber  *int   `json:"payment_term_number" validate:"omitempty,min=1"`
	Discount           int    `json:"discount" validate:"min=0,max=100"`
	Mailing            bool   `json:"mailing"`
}

// PersonData holds the person only fields.
type PersonData struct {
	AddressData
	FirstName     string     `json:"first_name" validate:"max=32"`
	Birthday      *time.Time `json:"birthday"`
	CompanyNumber *int       `json:"company_number" validate:"omitempty,min=1"`
}

// CompanyData holds the company only fields.
type CompanyData struct {
	AddressData
	Telefax string `json:"telefax" validate:"max=32"`
	Web     string `json:"web" validate:"omitempty,max=256"`
}

// PersonAddCommand 添加个人
type PersonAddCommand struct {
	PersonData
}

// PersonModifyCommand 修改个人
type PersonModifyCommand struct {
	Number int `json:"number" uri:"number" validate:"min=1"`
	PersonData
}

// CompanyAddCommand 添加公司
type CompanyAddCommand struct {
	CompanyData
}

// CompanyModifyCommand 修改公司
type CompanyModifyCommand struct {
	Number int `json:"number" uri:"number" validate:"min=1"`
	CompanyData
}

// PostalCodeAddCommand 添加邮编
type PostalCodeAddCommand struct {
	CountryCode string `json:"country_code" validate:"required,countrycode"`
	PostalCode  string `json:"postal_code" validate:"required,max=16"`
	City        string `json:"city" validate:"required,max=64"`
}

// PostalCodeModifyCommand 修改邮编
type PostalCodeModifyCommand struct {
	CountryCode string `json:"country_code" uri:"country_code" validate:"required,countrycode"`
	PostalCode  string `json:"postal_code" uri:"postal_code" validate:"required,max=16"`
	City        string `json:"city" validate:"required,max=64"`
}

// AddressGroupAddCommand 添加地址组
type AddressGroupAddCommand struct {
	Number             int    `json:"number" validate:"min=1"`
	Name               string `json:"name" validate:"required,max=64"`
	OswebdbGroupNumber int    `json:"oswebdb_group_number" validate:"min=0"`
}

// AddressGroupModifyCommand 修改地址组
type AddressGroupModifyCommand struct {
	Number             int    `json:"number" uri:"number" validate:"min=1"`
	Name               string `json:"name" validate:"required,max=64"`
	OswebdbGroupNumber int    `json:"oswebdb_group_number" validate:"min=0"`
}

// PaymentTermAddCommand 添加付款条件
type PaymentTermAddCommand struct {
	Number int    `json:"number" validate:"min=1"`
	Name   string `json:"name" validate:"required,max=64"`
}

// PaymentTermModifyCommand 修改付款条件
type PaymentTermModifyCommand struct {
	Number int    `json:"number" uri:"number" validate:"min=1"`
	Name   string `json:"name" validate:"required,max=64"`
}
