package repositories

import (
	"context"
	"fmt"

	"osintranet-http-service/internal/domain/models"
)

// InterfaceAddressBookRepository 地址簿仓储接口
type InterfaceAddressBookRepository interface {
	ListTelephones(ctx context.Context) ([]models.Address, error)
	ListAddresses(ctx context.Context, addressType string) ([]models.Address, error)
	GetAddress(ctx context.Context, number int) (*models.Address, error)
	ListCompanyPersons(ctx context.Context, companyNumber int) ([]models.Address, error)
	CreateAddress(ctx context.Context, address *models.Address) error
	UpdateAddress(ctx context.Context, address *models.Address) error

	ListPostalCodes(ctx context.Context, countryCode string) ([]models.PostalCode, error)
	GetPostalCode(ctx context.Context, countryCode, postalCode string) (*models.PostalCode, error)
	CreatePostalCode(ctx context.Context, postalCode *models.PostalCode) error
	UpdatePostalCode(ctx context.Context, postalCode *models.PostalCode) error

	ListAddressGroups(ctx context.Context) ([]models.AddressGroup, error)
	GetAddressGroup(ctx context.Context, number int) (*models.AddressGroup, error)
	CreateAddressGroup(ctx context.Context, group *models.AddressGroup) error
	UpdateAddressGroup(ctx context.Context, group *models.AddressGroup) error

	ListPaymentTerms(ctx context.Context) ([]models.PaymentTerm, error)
	GetPaymentTerm(ctx context.Context, number int) (*models.PaymentTerm, error)
	CreatePaymentTerm(ctx context.Context, term *models.PaymentTerm) error
	UpdatePaymentTerm(ctx context.Context, term *models.PaymentTerm) error
}

// AddressBookRepository 地址簿仓储
type AddressBookRepository struct {
	Repository
}

// NewAddressBookRepository 创建地址簿仓储
func NewAddressBookRepository(base Repository) InterfaceAddressBookRepository {
	return &AddressBookRepository{Repository: base}
}

// 1 ListTelephones returns every address with a phone number ordered by name.
func (r *AddressBookRepository) ListTelephones(ctx context.Context) ([]models.Address, error) {
	return cached(ctx, r.Repository, PrefixAddressBook+"telephones", func(ctx context.Context) ([]models.Address, error) {
		var addresses []models.Address
		err := r.db(ctx).
			Where("primary_phone <> '' OR secondary_phone <> ''").
			Order("name, first_name, number").
			Find(&addresses).Error
		if err != nil {
			return nil, dbError(err, "list telephones")
		}
		return addresses, nil
	})
}

// 2 ListAddresses returns the persons or companies ordered by name.
func (r *AddressBookRepository) ListAddresses(ctx context.Context, addressType string) ([]models.Address, error) {
	return cached(ctx, r.Repository, PrefixAddressBook+addressType+"s", func(ctx context.Context) ([]models.Address, error) {
		var addresses []models.Address
		err := r.db(ctx).
			Where("type = ?", addressType).
			Order("name, first_name, number").
			Find(&addresses).Error
		if err != nil {
			return nil, dbError(err, "list %ss", addressType)
		}
		return addresses, nil
	})
}

// 3 GetAddress 根据编号获取地址
func (r *AddressBookRepository) GetAddress(ctx context.Context, number int) (*models.Address, error) {
	var address models.Address
	if err := r.db(ctx).First(&address, "number = ?", number).Error; err != nil {
		return nil, dbError(err, "address %d", number)
	}
	return &address, nil
}

// 4 ListCompanyPersons returns the persons working for a company.
func (r *AddressBookRepository) ListCompanyPersons(ctx context.Context, companyNumber int) ([]models.Address, error) {
	var persons []models.Address
	err := r.db(ctx).
		Where("type = ? AND company_number = ?", models.AddressTypePerson, companyNumber).
		Order("name, first_name, number").
		Find(&persons).Error
	if err != nil {
		return nil, dbError(err, "persons of company %d", companyNumber)
	}
	return persons, nil
}

// 5 CreateAddress 创建地址
func (r *AddressBookRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	if err := r.db(ctx).Create(address).Error; err != nil {
		return dbError(err, "create address")
	}
	r.invalidate(ctx, PrefixAddressBook)
	return nil
}

// 6 UpdateAddress 更新地址
func (r *AddressBookRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	if err := r.db(ctx).Save(address).Error; err != nil {
		return dbError(err, "update address %d", address.Number)
	}
	r.invalidate(ctx, PrefixAddressBook)
	return nil
}

// 7 ListPostalCodes returns the postal codes, of one country when countryCode is set.
func (r *AddressBookRepository) ListPostalCodes(ctx context.Context, countryCode string) ([]models.PostalCode, error) {
	return cached(ctx, r.Repository, PrefixAddressBook+"postalcodes:"+countryCode, func(ctx context.Context) ([]models.PostalCode, error) {
		var postalCodes []models.PostalCode
		query := r.db(ctx).Order("country_code, postal_code")
		if countryCode != "" {
			query = query.Where("country_code = ?", countryCode)
		}
		if err := query.Find(&postalCodes).Error; err != nil {
			return nil, dbError(err, "list postal codes")
		}
		return postalCodes, nil
	})
}

// 8 GetPostalCode 获取邮编
func (r *AddressBookRepository) GetPostalCode(ctx context.Context, countryCode, postalCode string) (*models.PostalCode, error) {
	var pc models.PostalCode
	if err := r.db(ctx).First(&pc, "country_code = ? AND postal_code = ?", countryCode, postalCode).Error; err != nil {
		return nil, dbError(err, "postal code %s-%s", countryCode, postalCode)
	}
	return &pc, nil
}

// 9 CreatePostalCode 创建邮编
func (r *AddressBookRepository) CreatePostalCode(ctx context.Context, postalCode *models.PostalCode) error {
	if err := r.db(ctx).Create(postalCode).Error; err != nil {
		return dbError(err, "create postal code %s-%s", postalCode.CountryCode, postalCode.PostalCode)
	}
	r.invalidate(ctx, PrefixAddressBook)
	return nil
}

// 10 UpdatePostalCode 更新邮编
func (r *AddressBookRepository) UpdatePostalCode(ctx context.Context, postalCode *models.PostalCode) error {
	err := r.db(ctx).Model(&models.PostalCode{}).
		Where("country_code = ? AND postal_code = ?", postalCode.CountryCode, postalCode.PostalCode).
		Update("city", postalCode.City).Error
	if err != nil {
		return dbError(err, "update postal code %s-%s", postalCode.CountryCode, postalCode.PostalCode)
	}
	r.invalidate(ctx, PrefixAddressBook)
	return nil
}

// 11 ListAddressGroups 获取所有地址组
func (r *AddressBookRepository) ListAddressGroups(ctx context.Context) ([]models.AddressGroup, error) {
	return cached(ctx, r.Repository, PrefixAddressBook+"groups", func(ctx context.Context) ([]models.AddressGroup, error) {
		var groups []models.AddressGroup
		if err := r.db(ctx).Order("number").Find(&groups).Error; err != nil {
			return nil, dbError(err, "list address groups")
		}
		return groups, nil
	})
}

// 12 GetAddressGroup 获取地址组
func (r *AddressBookRepository) GetAddressGroup(ctx context.Context, number int) (*models.AddressGroup, error) {
	return cached(ctx, r.Repository, fmt.Sprintf("%sgroups:%d", PrefixAddressBook, number), func(ctx context.Context) (*models.AddressGroup, error) {
		var group models.AddressGroup
		if err := r.db(ctx).First(&group, "number = ?", number).Error; err != nil {
			return nil, dbError(err, "address group %d", number)
		}
		return &group, nil
	})
}

// 13 CreateAddressGroup 创建地址组
func (r *AddressBookRepository) CreateAddressGroup(ctx context.Context, group *models.AddressGroup) error {
	if err := r.db(ctx).Create(group).Error; err != nil {
		return dbError(err, "create address group %d", group.Number)
	}
	r.invalidate(ctx, PrefixAddressBook)
	return nil
}

// 14 UpdateAddressGroup 更新地址组
func (r *AddressBookRepository) UpdateAddressGroup(ctx context.Context, group *models.AddressGroup) error {
	if err := r.db(ctx).Save(group).Error; err != nil {
		return dbError(err, "update address group %d", group.Number)
	}
	r.invalidate(ctx, PrefixAddressBook)
	return nil
}

// 15 ListPaymentTerms 获取所有付款条件
func (r *AddressBookRepository) ListPaymentTerms(ctx context.Context) ([]models.PaymentTerm, error) {
	return cached(ctx, r.Repository, PrefixAddressBook+"paymentterms", func(ctx context.Context) ([]models.PaymentTerm, error) {
		var terms []models.PaymentTerm
		if err := r.db(ctx).Order("number").Find(&terms).Error; err != nil {
			return nil, dbError(err, "list payment terms")
		}
		return terms, nil
	})
}

// 16 GetPaymentTerm 获取付款条件
func (r *AddressBookRepository) GetPaymentTerm(ctx context.Context, number int) (*models.PaymentTerm, error) {
	return cached(ctx, r.Repository, fmt.Sprintf("%spaymentterms:%d", PrefixAddressBook, number), func(ctx context.Context) (*models.PaymentTerm, error) {
		var term models.PaymentTerm
		if err := r.db(ctx).First(&term, "number = ?", number).Error; err != nil {
			return nil, dbError(err, "payment term %d", number)
		}
		return &term, nil
	})
}

// 17 CreatePaymentTerm 创建付款条件
func (r *AddressBookRepository) CreatePaymentTerm(ctx context.Context, term *models.PaymentTerm) error {
	if err := r.db(ctx).Create(term).Error; err != nil {
		return dbError(err, "create payment term %d", term.Number)
	}
	r.invalidate(ctx, PrefixAddressBook)
	return nil
}

// 18 UpdatePaymentTerm 更新付款条件
func (r *AddressBookRepository) UpdatePaymentTerm(ctx context.Context, term *models.PaymentTerm) error {
	if err := r.db(ctx).Save(term).Error; err != nil {
		return dbError(err, "update payment term %d", term.Number)
	}
	r.invalidate(ctx, PrefixAddressBook)
	return nil
}
