package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/infrastructure/repositories"
)

func newTestAddressBook(t *testing.T) InterfaceAddressBookService {
	t.Helper()
	ctx := context.Background()
	s := NewAddressBookService(repositories.NewAddressBookRepository(newTestRepository(t)), fixedClock)

	_, err := s.AddAddressGroup(ctx, &contracts.AddressGroupAddCommand{Number: 1, Name: "Familie", OswebdbGroupNumber: 1})
	require.NoError(t, err)
	_, err = s.AddPaymentTerm(ctx, &contracts.PaymentTermAddCommand{Number: 1, Name: "Netto 8 dage"})
	require.NoError(t, err)
	return s
}

func addressNumber(t *testing.T, result *contracts.ServiceReceipt) int {
	t.Helper()
	number, err := strconv.Atoi(result.Identifier)
	require.NoError(t, err)
	return number
}

func TestPersonBelongsToCompany(t *testing.T) {
	ctx := context.Background()
	s := newTestAddressBook(t)

	result, err := s.AddCompany(ctx, &contracts.CompanyAddCommand{CompanyData: contracts.CompanyData{
		AddressData: contracts.AddressData{Name: "Sørensen IT", PrimaryPhone: "11223344", AddressGroupNumber: 1, PaymentTermNumber: intPtr(1)},
		Web:         "https://example.dk",
	}})
	require.NoError(t, err)
	company := addressNumber(t, result)

	birthday := time.Date(1975, time.August, 21, 14, 0, 0, 0, time.UTC)
	result, err = s.AddPerson(ctx, &contracts.PersonAddCommand{PersonData: contracts.PersonData{
		AddressData:   contracts.AddressData{Name: "Sørensen", PrimaryPhone: "22334455", AddressGroupNumber: 1},
		FirstName:     "Ole",
		Birthday:      &birthday,
		CompanyNumber: &company,
	}})
	require.NoError(t, err)
	person := addressNumber(t, result)

	view, err := s.GetPerson(ctx, &contracts.PersonGetQuery{Number: person})
	require.NoError(t, err)
	assert.Equal(t, "Ole Sørensen", view.FullName)
	assert.Equal(t, "Familie", view.AddressGroup.Name)
	require.NotNil(t, view.Birthday)
	assert.Equal(t, day(1975, time.August, 21), *view.Birthday)
	require.NotNil(t, view.Company)
	assert.Equal(t, "Sørensen IT", view.Company.Name)

	companyView, err := s.GetCompany(ctx, &contracts.CompanyGetQuery{Number: company})
	require.NoError(t, err)
	require.NotNil(t, companyView.PaymentTerm)
	assert.Equal(t, "Netto 8 dage", companyView.PaymentTerm.Name)
	require.Len(t, companyView.Persons, 1)
	assert.Equal(t, person, companyView.Persons[0].Number)

	telephones, err := s.GetTelephoneList(ctx, &contracts.TelephoneListGetQuery{})
	require.NoError(t, err)
	assert.Len(t, telephones, 2)

	// a person is not a company
	_, err = s.GetCompany(ctx, &contracts.CompanyGetQuery{Number: person})
	requireCode(t, err, code.ErrAddressNotFound)
	_, err = s.ModifyPerson(ctx, &contracts.PersonModifyCommand{Number: person, PersonData: contracts.PersonData{
		AddressData:   contracts.AddressData{Name: "Sørensen", AddressGroupNumber: 1},
		CompanyNumber: &person,
	}})
	requireCode(t, err, code.ErrCompanyNotFound)
}

func TestAddressReferencesMustExist(t *testing.T) {
	ctx := context.Background()
	s := newTestAddressBook(t)

	_, err := s.AddPerson(ctx, &contracts.PersonAddCommand{PersonData: contracts.PersonData{
		AddressData: contracts.AddressData{Name: "Hansen", AddressGroupNumber: 9},
	}})
	requireCode(t, err, code.ErrAddressGroupNotFound)

	_, err = s.AddCompany(ctx, &contracts.CompanyAddCommand{CompanyData: contracts.CompanyData{
		AddressData: contracts.AddressData{Name: "Hansen ApS", AddressGroupNumber: 1, PaymentTermNumber: intPtr(9)},
	}})
	requireCode(t, err, code.ErrPaymentTermNotFound)

	_, err = s.AddPerson(ctx, &contracts.PersonAddCommand{PersonData: contracts.PersonData{
		AddressData:   contracts.AddressData{Name: "Hansen", AddressGroupNumber: 1},
		CompanyNumber: intPtr(99),
	}})
	requireCode(t, err, code.ErrCompanyNotFound)
}

func TestReferenceDataDuplicates(t *testing.T) {
	ctx := context.Background()
	s := newTestAddressBook(t)

	_, err := s.AddAddressGroup(ctx, &contracts.AddressGroupAddCommand{Number: 1, Name: "Igen"})
	requireCode(t, err, code.ErrAddressGroupAlreadyExists)
	_, err = s.AddPaymentTerm(ctx, &contracts.PaymentTermAddCommand{Number: 1, Name: "Igen"})
	requireCode(t, err, code.ErrPaymentTermAlreadyExists)

	_, err = s.AddPostalCode(ctx, &contracts.PostalCodeAddCommand{CountryCode: "DK", PostalCode: "5700", City: "Svendborg"})
	require.NoError(t, err)
	_, err = s.AddPostalCode(ctx, &contracts.PostalCodeAddCommand{CountryCode: "DK", PostalCode: "5700", City: "Svendborg"})
	requireCode(t, err, code.ErrPostalCodeAlreadyExists)
	_, err = s.ModifyPostalCode(ctx, &contracts.PostalCodeModifyCommand{CountryCode: "DK", PostalCode: "5700", City: "Svendborg C"})
	require.NoError(t, err)
	_, err = s.ModifyPostalCode(ctx, &contracts.PostalCodeModifyCommand{CountryCode: "SE", PostalCode: "5700", City: "Nowhere"})
	requireCode(t, err, code.ErrPostalCodeNotFound)

	postalCodes, err := s.GetPostalCodes(ctx, &contracts.PostalCodeListGetQuery{CountryCode: "DK"})
	require.NoError(t, err)
	require.Len(t, postalCodes, 1)
	assert.Equal(t, "Svendborg C", postalCodes[0].City)

	_, err = s.ModifyAddressGroup(ctx, &contracts.AddressGroupModifyCommand{Number: 1, Name: "Venner", OswebdbGroupNumber: 2})
	require.NoError(t, err)
	group, err := s.GetAddressGroup(ctx, &contracts.AddressGroupGetQuery{Number: 1})
	require.NoError(t, err)
	assert.Equal(t, "Venner", group.Name)
	assert.Equal(t, 2, group.OswebdbGroupNumber)

	_, err = s.GetPaymentTerm(ctx, &contracts.PaymentTermGetQuery{Number: 2})
	requireCode(t, err, code.ErrPaymentTermNotFound)
}
