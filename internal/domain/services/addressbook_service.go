package services

import (
	"context"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/repositories"
)

// InterfaceAddressBookService 地址簿服务接口
type InterfaceAddressBookService interface {
	Registrar
	GetTelephoneList(ctx context.Context, query *contracts.TelephoneListGetQuery) ([]contracts.TelephoneListView, error)
	GetPersons(ctx context.Context, query *contracts.PersonListGetQuery) ([]contracts.PersonView, error)
	GetCompanies(ctx context.Context, query *contracts.CompanyListGetQuery) ([]contracts.CompanyView, error)
	GetPerson(ctx context.Context, query *contracts.PersonGetQuery) (*contracts.PersonView, error)
	GetCompany(ctx context.Context, query *contracts.CompanyGetQuery) (*contracts.CompanyView, error)
	GetPostalCodes(ctx context.Context, query *contracts.PostalCodeListGetQuery) ([]contracts.PostalCodeView, error)
	GetAddressGroups(ctx context.Context, query *contracts.AddressGroupListGetQuery) ([]contracts.AddressGroupView, error)
	GetAddressGroup(ctx context.Context, query *contracts.AddressGroupGetQuery) (*contracts.AddressGroupView, error)
	GetPaymentTerms(ctx context.Context, query *contracts.PaymentTermListGetQuery) ([]contracts.PaymentTermView, error)
	GetPaymentTerm(ctx context.Context, query *contracts.PaymentTermGetQuery) (*contracts.PaymentTermView, error)
	AddPerson(ctx context.Context, command *contracts.PersonAddCommand) (*contracts.ServiceReceipt, error)
	ModifyPerson(ctx context.Context, command *contracts.PersonModifyCommand) (*contracts.ServiceReceipt, error)
	AddCompany(ctx context.Context, command *contracts.CompanyAddCommand) (*contracts.ServiceReceipt, error)
	ModifyCompany(ctx context.Context, command *contracts.CompanyModifyCommand) (*contracts.ServiceReceipt, error)
	AddPostalCode(ctx context.Context, command *contracts.PostalCodeAddCommand) (*contracts.ServiceReceipt, error)
	ModifyPostalCode(ctx context.Context, command *contracts.PostalCodeModifyCommand) (*contracts.ServiceReceipt, error)
	AddAddressGroup(ctx context.Context, command *contracts.AddressGroupAddCommand) (*contracts.ServiceReceipt, error)
	ModifyAddressGroup(ctx context.Context, command *contracts.AddressGroupModifyCommand) (*contracts.ServiceReceipt, error)
	AddPaymentTerm(ctx context.Context, command *contracts.PaymentTermAddCommand) (*contracts.ServiceReceipt, error)
	ModifyPaymentTerm(ctx context.Context, command *contracts.PaymentTermModifyCommand) (*contracts.ServiceReceipt, error)
}

// AddressBookService handles the address book.
type AddressBookService struct {
	Addresses repositories.InterfaceAddressBookRepository
	Now       Clock
}

// NewAddressBookService 创建地址簿服务
func NewAddressBookService(addresses repositories.InterfaceAddressBookRepository, now Clock) InterfaceAddressBookService {
	return &AddressBookService{Addresses: addresses, Now: now}
}

// Register 注册处理器
func (s *AddressBookService) Register(b *bus.Bus) {
	bus.RegisterQuery(b, s.GetTelephoneList)
	bus.RegisterQuery(b, s.GetPersons)
	bus.RegisterQuery(b, s.GetCompanies)
	bus.RegisterQuery(b, s.GetPerson)
	bus.RegisterQuery(b, s.GetCompany)
	bus.RegisterQuery(b, s.GetPostalCodes)
	bus.RegisterQuery(b, s.GetAddressGroups)
	bus.RegisterQuery(b, s.GetAddressGroup)
	bus.RegisterQuery(b, s.GetPaymentTerms)
	bus.RegisterQuery(b, s.GetPaymentTerm)
	bus.RegisterCommand(b, s.AddPerson)
	bus.RegisterCommand(b, s.ModifyPerson)
	bus.RegisterCommand(b, s.AddCompany)
	bus.RegisterCommand(b, s.ModifyCompany)
	bus.RegisterCommand(b, s.AddPostalCode)
	bus.RegisterCommand(b, s.ModifyPostalCode)
	bus.RegisterCommand(b, s.AddAddressGroup)
	bus.RegisterCommand(b, s.ModifyAddressGroup)
	bus.RegisterCommand(b, s.AddPaymentTerm)
	bus.RegisterCommand(b, s.ModifyPaymentTerm)
}

// 1 GetTelephoneList 获取电话列表
func (s *AddressBookService) GetTelephoneList(ctx context.Context, _ *contracts.TelephoneListGetQuery) ([]contracts.TelephoneListView, error) {
	addresses, err := s.Addresses.ListTelephones(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.TelephoneListView, 0, len(addresses))
	for _, a := range addresses {
		views = append(views, contracts.TelephoneListView{
			Number:         a.Number,
			Name:           a.FullName(),
			PrimaryPhone:   a.PrimaryPhone,
			SecondaryPhone: a.SecondaryPhone,
		})
	}
	return views, nil
}

// 2 GetPersons 获取所有个人
func (s *AddressBookService) GetPersons(ctx context.Context, _ *contracts.PersonListGetQuery) ([]contracts.PersonView, error) {
	persons, err := s.Addresses.ListAddresses(ctx, models.AddressTypePerson)
	if err != nil {
		return nil, err
	}
	lookup, err := s.newLookup(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.Addresses.ListAddresses(ctx, models.AddressTypeCompany)
	if err != nil {
		return nil, err
	}
	companyByNumber := make(map[int]models.Address, len(companies))
	for _, c := range companies {
		companyByNumber[c.Number] = c
	}

	views := make([]contracts.PersonView, 0, len(persons))
	for _, p := range persons {
		var company *models.Address
		if p.CompanyNumber != nil {
			if c, ok := companyByNumber[*p.CompanyNumber]; ok {
				company = &c
			}
		}
		views = append(views, personView(p, lookup, company))
	}
	return views, nil
}

// 3 GetCompanies 获取所有公司
func (s *AddressBookService) GetCompanies(ctx context.Context, _ *contracts.CompanyListGetQuery) ([]contracts.CompanyView, error) {
	companies, err := s.Addresses.ListAddresses(ctx, models.AddressTypeCompany)
	if err != nil {
		return nil, err
	}
	lookup, err := s.newLookup(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.CompanyView, 0, len(companies))
	for _, c := range companies {
		views = append(views, companyView(c, lookup, nil))
	}
	return views, nil
}

// 4 GetPerson 获取个人
func (s *AddressBookService) GetPerson(ctx context.Context, query *contracts.PersonGetQuery) (*contracts.PersonView, error) {
	person, err := s.getAddress(ctx, query.Number, models.AddressTypePerson)
	if err != nil {
		return nil, err
	}
	lookup, err := s.newLookup(ctx)
	if err != nil {
		return nil, err
	}
	var company *models.Address
	if person.CompanyNumber != nil {
		company, err = s.Addresses.GetAddress(ctx, *person.CompanyNumber)
		if err != nil && !repositories.IsNotFound(err) {
			return nil, err
		}
	}
	view := personView(*person, lookup, company)
	return &view, nil
}

// 5 GetCompany 获取公司及其员工
func (s *AddressBookService) GetCompany(ctx context.Context, query *contracts.CompanyGetQuery) (*contracts.CompanyView, error) {
	company, err := s.getAddress(ctx, query.Number, models.AddressTypeCompany)
	if err != nil {
		return nil, err
	}
	lookup, err := s.newLookup(ctx)
	if err != nil {
		return nil, err
	}
	persons, err := s.Addresses.ListCompanyPersons(ctx, company.Number)
	if err != nil {
		return nil, err
	}
	view := companyView(*company, lookup, persons)
	return &view, nil
}

// 6 GetPostalCodes 获取邮编
func (s *AddressBookService) GetPostalCodes(ctx context.Context, query *contracts.PostalCodeListGetQuery) ([]contracts.PostalCodeView, error) {
	postalCodes, err := s.Addresses.ListPostalCodes(ctx, query.CountryCode)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.PostalCodeView, 0, len(postalCodes))
	for _, pc := range postalCodes {
		views = append(views, contracts.PostalCodeView{CountryCode: pc.CountryCode, PostalCode: pc.PostalCode, City: pc.City})
	}
	return views, nil
}

// 7 GetAddressGroups 获取所有地址组
func (s *AddressBookService) GetAddressGroups(ctx context.Context, _ *contracts.AddressGroupListGetQuery) ([]contracts.AddressGroupView, error) {
	groups, err := s.Addresses.ListAddressGroups(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.AddressGroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, addressGroupView(g))
	}
	return views, nil
}

// 8 GetAddressGroup 获取地址组
func (s *AddressBookService) GetAddressGroup(ctx context.Context, query *contracts.AddressGroupGetQuery) (*contracts.AddressGroupView, error) {
	group, err := s.Addresses.GetAddressGroup(ctx, query.Number)
	if err != nil {
		return nil, notFound(err, code.ErrAddressGroupNotFound, query.Number)
	}
	view := addressGroupView(*group)
	return &view, nil
}

// 9 GetPaymentTerms 获取所有付款条件
func (s *AddressBookService) GetPaymentTerms(ctx context.Context, _ *contracts.PaymentTermListGetQuery) ([]contracts.PaymentTermView, error) {
	terms, err := s.Addresses.ListPaymentTerms(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.PaymentTermView, 0, len(terms))
	for _, t := range terms {
		views = append(views, contracts.PaymentTermView{Number: t.Number, Name: t.Name})
	}
	return views, nil
}

// 10 GetPaymentTerm 获取付款条件
func (s *AddressBookService) GetPaymentTerm(ctx context.Context, query *contracts.PaymentTermGetQuery) (*contracts.PaymentTermView, error) {
	term, err := s.Addresses.GetPaymentTerm(ctx, query.Number)
	if err != nil {
		return nil, notFound(err, code.ErrPaymentTermNotFound, query.Number)
	}
	return &contracts.PaymentTermView{Number: term.Number, Name: term.Name}, nil
}

// 11 AddPerson 添加个人
func (s *AddressBookService) AddPerson(ctx context.Context, command *contracts.PersonAddCommand) (*contracts.ServiceReceipt, error) {
	person := models.Address{Type: models.AddressTypePerson}
	if err := s.applyPerson(ctx, &person, command.PersonData); err != nil {
		return nil, err
	}
	if err := s.Addresses.CreateAddress(ctx, &person); err != nil {
		return nil, err
	}
	return receipt(person.Number, s.Now()), nil
}

// 12 ModifyPerson 修改个人
func (s *AddressBookService) ModifyPerson(ctx context.Context, command *contracts.PersonModifyCommand) (*contracts.ServiceReceipt, error) {
	person, err := s.getAddress(ctx, command.Number, models.AddressTypePerson)
	if err != nil {
		return nil, err
	}
	if err := s.applyPerson(ctx, person, command.PersonData); err != nil {
		return nil, err
	}
	if err := s.Addresses.UpdateAddress(ctx, person); err != nil {
		return nil, err
	}
	return receipt(person.Number, s.Now()), nil
}

// 13 AddCompany 添加公司
func (s *AddressBookService) AddCompany(ctx context.Context, command *contracts.CompanyAddCommand) (*contracts.ServiceReceipt, error) {
	company := models.Address{Type: models.AddressTypeCompany}
	if err := s.applyCompany(ctx, &company, command.CompanyData); err != nil {
		return nil, err
	}
	if err := s.Addresses.CreateAddress(ctx, &company); err != nil {
		return nil, err
	}
	return receipt(company.Number, s.Now()), nil
}

// 14 ModifyCompany 修改公司
func (s *AddressBookService) ModifyCompany(ctx context.Context, command *contracts.CompanyModifyCommand) (*contracts.ServiceReceipt, error) {
	company, err := s.getAddress(ctx, command.Number, models.AddressTypeCompany)
	if err != nil {
		return nil, err
	}
	if err := s.applyCompany(ctx, company, command.CompanyData); err != nil {
		return nil, err
	}
	if err := s.Addresses.UpdateAddress(ctx, company); err != nil {
		return nil, err
	}
	return receipt(company.Number, s.Now()), nil
}

// 15 AddPostalCode 添加邮编
func (s *AddressBookService) AddPostalCode(ctx context.Context, command *contracts.PostalCodeAddCommand) (*contracts.ServiceReceipt, error) {
	_, err := s.Addresses.GetPostalCode(ctx, command.CountryCode, command.PostalCode)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrPostalCodeAlreadyExists, command.CountryCode, command.PostalCode)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	postalCode := models.PostalCode{CountryCode: command.CountryCode, PostalCode: command.PostalCode, City: command.City}
	if err := s.Addresses.CreatePostalCode(ctx, &postalCode); err != nil {
		return nil, err
	}
	return receipt(command.CountryCode+"-"+command.PostalCode, s.Now()), nil
}

// 16 ModifyPostalCode 修改邮编
func (s *AddressBookService) ModifyPostalCode(ctx context.Context, command *contracts.PostalCodeModifyCommand) (*contracts.ServiceReceipt, error) {
	postalCode, err := s.Addresses.GetPostalCode(ctx, command.CountryCode, command.PostalCode)
	if err != nil {
		return nil, notFound(err, code.ErrPostalCodeNotFound, command.CountryCode, command.PostalCode)
	}
	postalCode.City = command.City
	if err := s.Addresses.UpdatePostalCode(ctx, postalCode); err != nil {
		return nil, err
	}
	return receipt(command.CountryCode+"-"+command.PostalCode, s.Now()), nil
}

// 17 AddAddressGroup 添加地址组
func (s *AddressBookService) AddAddressGroup(ctx context.Context, command *contracts.AddressGroupAddCommand) (*contracts.ServiceReceipt, error) {
	_, err := s.Addresses.GetAddressGroup(ctx, command.Number)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrAddressGroupAlreadyExists, command.Number)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	group := models.AddressGroup{Number: command.Number, Name: command.Name, OswebdbGroupNumber: command.OswebdbGroupNumber}
	if err := s.Addresses.CreateAddressGroup(ctx, &group); err != nil {
		return nil, err
	}
	return receipt(group.Number, s.Now()), nil
}

// 18 ModifyAddressGroup 修改地址组
func (s *AddressBookService) ModifyAddressGroup(ctx context.Context, command *contracts.AddressGroupModifyCommand) (*contracts.ServiceReceipt, error) {
	group, err := s.Addresses.GetAddressGroup(ctx, command.Number)
	if err != nil {
		return nil, notFound(err, code.ErrAddressGroupNotFound, command.Number)
	}
	group.Name = command.Name
	group.OswebdbGroupNumber = command.OswebdbGroupNumber
	if err := s.Addresses.UpdateAddressGroup(ctx, group); err != nil {
		return nil, err
	}
	return receipt(group.Number, s.Now()), nil
}

// 19 AddPaymentTerm 添加付款条件
func (s *AddressBookService) AddPaymentTerm(ctx context.Context, command *contracts.PaymentTermAddCommand) (*contracts.ServiceReceipt, error) {
	_, err := s.Addresses.GetPaymentTerm(ctx, command.Number)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrPaymentTermAlreadyExists, command.Number)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	term := models.PaymentTerm{Number: command.Number, Name: command.Name}
	if err := s.Addresses.CreatePaymentTerm(ctx, &term); err != nil {
		return nil, err
	}
	return receipt(term.Number, s.Now()), nil
}

// 20 ModifyPaymentTerm 修改付款条件
func (s *AddressBookService) ModifyPaymentTerm(ctx context.Context, command *contracts.PaymentTermModifyCommand) (*contracts.ServiceReceipt, error) {
	term, err := s.Addresses.GetPaymentTerm(ctx, command.Number)
	if err != nil {
		return nil, notFound(err, code.ErrPaymentTermNotFound, command.Number)
	}
	term.Name = command.Name
	if err := s.Addresses.UpdatePaymentTerm(ctx, term); err != nil {
		return nil, err
	}
	return receipt(term.Number, s.Now()), nil
}

// getAddress loads an address of the given type. Unknown numbers and
// addresses of the other type are both reported as not found.
func (s *AddressBookService) getAddress(ctx context.Context, number int, addressType string) (*models.Address, error) {
	address, err := s.Addresses.GetAddress(ctx, number)
	if err != nil {
		return nil, notFound(err, code.ErrAddressNotFound, number)
	}
	if address.Type != addressType {
		return nil, intranet.NewBusinessError(code.ErrAddressNotFound, number)
	}
	return address, nil
}

func (s *AddressBookService) applyAddress(ctx context.Context, address *models.Address, data contracts.AddressData) error {
	if _, err := s.Addresses.GetAddressGroup(ctx, data.AddressGroupNumber); err != nil {
		return notFound(err, code.ErrAddressGroupNotFound, data.AddressGroupNumber)
	}
	if data.PaymentTermNumber != nil {
		if _, err := s.Addresses.GetPaymentTerm(ctx, *data.PaymentTermNumber); err != nil {
			return notFound(err, code.ErrPaymentTermNotFound, *data.PaymentTermNumber)
		}
	}
	address.Name = data.Name
	address.Address1 = data.Address1
	address.Address2 = data.Address2
	address.PostalCity = data.PostalCity
	address.PrimaryPhone = data.PrimaryPhone
	address.SecondaryPhone = data.SecondaryPhone
	address.MailAddress = data.MailAddress
	address.Acquaintance = data.Acquaintance
	address.AddressGroupNumber = data.AddressGroupNumber
	address.PaymentTermNumber = data.PaymentTermNumber
	address.Discount = data.Discount
	address.Mailing = data.Mailing
	return nil
}

func (s *AddressBookService) applyPerson(ctx context.Context, person *models.Address, data contracts.PersonData) error {
	if data.CompanyNumber != nil {
		company, err := s.Addresses.GetAddress(ctx, *data.CompanyNumber)
		if err != nil {
			return notFound(err, code.ErrCompanyNotFound, *data.CompanyNumber)
		}
		if company.Type != models.AddressTypeCompany {
			return intranet.NewBusinessError(code.ErrCompanyNotFound, *data.CompanyNumber)
		}
	}
	if err := s.applyAddress(ctx, person, data.AddressData); err != nil {
		return err
	}
	person.FirstName = data.FirstName
	person.CompanyNumber = data.CompanyNumber
	person.Birthday = nil
	if data.Birthday != nil {
		birthday := models.Date(*data.Birthday)
		person.Birthday = &birthday
	}
	return nil
}

func (s *AddressBookService) applyCompany(ctx context.Context, company *models.Address, data contracts.CompanyData) error {
	if err := s.applyAddress(ctx, company, data.AddressData); err != nil {
		return err
	}
	company.Telefax = data.Telefax
	company.Web = data.Web
	return nil
}

// addressLookup resolves address groups and payment terms from the cached lists.
type addressLookup struct {
	groups map[int]models.AddressGroup
	terms  map[int]models.PaymentTerm
}

func (s *AddressBookService) newLookup(ctx context.Context) (*addressLookup, error) {
	groups, err := s.Addresses.ListAddressGroups(ctx)
	if err != nil {
		return nil, err
	}
	terms, err := s.Addresses.ListPaymentTerms(ctx)
	if err != nil {
		return nil, err
	}
	lookup := &addressLookup{
		groups: make(map[int]models.AddressGroup, len(groups)),
		terms:  make(map[int]models.PaymentTerm, len(terms)),
	}
	for _, g := range groups {
		lookup.groups[g.Number] = g
	}
	for _, t := range terms {
		lookup.terms[t.Number] = t
	}
	return lookup, nil
}

func (l *addressLookup) group(number int) contracts.AddressGroupView {
	if g, ok := l.groups[number]; ok {
		return addressGroupView(g)
	}
	return contracts.AddressGroupView{Number: number}
}

func (l *addressLookup) term(number *int) *contracts.PaymentTermView {
	if number == nil {
		return nil
	}
	if t, ok := l.terms[*number]; ok {
		return &contracts.PaymentTermView{Number: t.Number, Name: t.Name}
	}
	return &contracts.PaymentTermView{Number: *number}
}

func addressGroupView(g models.AddressGroup) contracts.AddressGroupView {
	return contracts.AddressGroupView{Number: g.Number, Name: g.Name, OswebdbGroupNumber: g.OswebdbGroupNumber}
}

func briefView(a models.Address) contracts.AddressBriefView {
	return contracts.AddressBriefView{Number: a.Number, Name: a.FullName(), PrimaryPhone: a.PrimaryPhone, MailAddress: a.MailAddress}
}

func personView(p models.Address, lookup *addressLookup, company *models.Address) contracts.PersonView {
	view := contracts.PersonView{
		Number:         p.Number,
		FirstName:      p.FirstName,
		Name:           p.Name,
		FullName:       p.FullName(),
		Address1:       p.Address1,
		Address2:       p.Address2,
		PostalCity:     p.PostalCity,
		PrimaryPhone:   p.PrimaryPhone,
		SecondaryPhone: p.SecondaryPhone,
		Birthday:       p.Birthday,
		MailAddress:    p.MailAddress,
		Acquaintance:   p.Acquaintance,
		Discount:       p.Discount,
		Mailing:        p.Mailing,
		AddressGroup:   lookup.group(p.AddressGroupNumber),
		PaymentTerm:    lookup.term(p.PaymentTermNumber),
	}
	if company != nil {
		brief := briefView(*company)
		view.Company = &brief
	}
	return view
}

func companyView(c models.Address, lookup *addressLookup, persons []models.Address) contracts.CompanyView {
	view := contracts.CompanyView{
		Number:         c.Number,
		Name:           c.Name,
		Address1:       c.Address1,
		Address2:       c.Address2,
		PostalCity:     c.PostalCity,
		PrimaryPhone:   c.PrimaryPhone,
		SecondaryPhone: c.SecondaryPhone,
		Telefax:        c.Telefax,
		MailAddress:    c.MailAddress,
		Web:            c.Web,
		Acquaintance:   c.Acquaintance,
		Discount:       c.Discount,
		Mailing:        c.Mailing,
		AddressGroup:   lookup.group(c.AddressGroupNumber),
		PaymentTerm:    lookup.term(c.PaymentTermNumber),
	}
	for _, p := range persons {
		view.Persons = append(view.Persons, briefView(p))
	}
	return view
}
