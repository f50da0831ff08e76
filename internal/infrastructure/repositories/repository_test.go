package repositories

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/cache"
	"osintranet-http-service/internal/infrastructure/database"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	pool, err := database.Open("test", sqlite.Open("file::memory:"), "warn")
	require.NoError(t, err)
	pool.MaxOpenConns = 1
	require.NoError(t, pool.ConfigurePool())
	require.NoError(t, database.Migrate(pool.DB, database.MigrationAuto))

	store := cache.NewMemoryStore(0)
	t.Cleanup(func() {
		store.Close()
		pool.Close()
	})
	return NewRepository(pool.DB, store, time.Minute)
}

func newTestCalendarDB(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := database.Open("calendar", sqlite.Open("file::memory:"), "warn")
	require.NoError(t, err)
	pool.MaxOpenConns = 1
	require.NoError(t, pool.ConfigurePool())
	t.Cleanup(func() { pool.Close() })

	db, err := pool.SQL()
	require.NoError(t, err)
	require.NoError(t, database.EnsureCalendarSchema(context.Background(), db))
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestDBErrorMapping(t *testing.T) {
	base := newTestRepository(t)
	repo := NewLetterheadRepository(base)

	_, err := repo.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Nil(t, dbError(nil, "nothing"))

	err = dbError(sql.ErrConnDone, "broken")
	e, ok := intranet.As(err)
	require.True(t, ok)
	assert.Equal(t, intranet.KindRepository, e.Kind())
	assert.Equal(t, code.ErrDatabase, e.Code)
	assert.False(t, IsNotFound(err))
}

func TestLetterheadListIsCachedUntilWrite(t *testing.T) {
	ctx := context.Background()
	base := newTestRepository(t)
	repo := NewLetterheadRepository(base)

	require.NoError(t, repo.Create(ctx, &models.Letterhead{Number: 1, Name: "Privat", Line1: "Ole Sørensen"}))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// a write behind the repository's back is not seen while cached
	require.NoError(t, base.DB.Create(&models.Letterhead{Number: 2, Name: "Firma", Line1: "OS Development"}).Error)
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Update(ctx, &models.Letterhead{Number: 1, Name: "Privat", Line1: "Ole Sørensen", Line2: "Svendborg"}))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Svendborg", list[0].Line2)

	found, err := repo.Exists(ctx, 2)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestAddressBookRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAddressBookRepository(newTestRepository(t))

	require.NoError(t, repo.CreateAddressGroup(ctx, &models.AddressGroup{Number: 1, Name: "Familie"}))
	company := &models.Address{Type: models.AddressTypeCompany, Name: "OS Development", PrimaryPhone: "62 21 49 60", AddressGroupNumber: 1}
	require.NoError(t, repo.CreateAddress(ctx, company))
	require.NotZero(t, company.Number)

	person := &models.Address{Type: models.AddressTypePerson, Name: "Sørensen", FirstName: "Ole", AddressGroupNumber: 1, CompanyNumber: &company.Number}
	require.NoError(t, repo.CreateAddress(ctx, person))
	require.NoError(t, repo.CreateAddress(ctx, &models.Address{Type: models.AddressTypePerson, Name: "Andersen", SecondaryPhone: "40 11 22 33", AddressGroupNumber: 1}))

	phones, err := repo.ListTelephones(ctx)
	require.NoError(t, err)
	require.Len(t, phones, 2)
	assert.Equal(t, "Andersen", phones[0].Name)

	persons, err := repo.ListAddresses(ctx, models.AddressTypePerson)
	require.NoError(t, err)
	assert.Len(t, persons, 2)

	employees, err := repo.ListCompanyPersons(ctx, company.Number)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Ole Sørensen", employees[0].FullName())

	require.NoError(t, repo.CreatePostalCode(ctx, &models.PostalCode{CountryCode: "DK", PostalCode: "5700", City: "Svendborg"}))
	require.NoError(t, repo.UpdatePostalCode(ctx, &models.PostalCode{CountryCode: "DK", PostalCode: "5700", City: "Svendborg C"}))
	codes, err := repo.ListPostalCodes(ctx, "DK")
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "Svendborg C", codes[0].City)

	_, err = repo.GetPaymentTerm(ctx, 1)
	assert.True(t, IsNotFound(err))
	require.NoError(t, repo.CreatePaymentTerm(ctx, &models.PaymentTerm{Number: 1, Name: "Netto 8 dage"}))
	term, err := repo.GetPaymentTerm(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Netto 8 dage", term.Name)
}

func TestFinanceRepositoryBalances(t *testing.T) {
	ctx := context.Background()
	repo := NewFinanceRepository(newTestRepository(t))

	require.NoError(t, repo.CreateAccounting(ctx, &models.Accounting{Number: 1, Name: "Privat", LetterheadNumber: 1}))
	require.NoError(t, repo.SaveAccountGroup(ctx, &models.AccountGroup{Number: 1, Name: "Bankkonti", Type: models.AccountGroupTypeAssets}))
	require.NoError(t, repo.CreateAccount(ctx, &models.Account{AccountingNumber: 1, AccountNumber: "DANKORT", Name: "Dankort", AccountGroupNumber: 1}))
	require.NoError(t, repo.SetCreditInfo(ctx, &models.CreditInfo{AccountingNumber: 1, AccountNumber: "DANKORT", Year: 2024, Month: 3, Credit: decimal.NewFromInt(5000)}))
	require.NoError(t, repo.SetCreditInfo(ctx, &models.CreditInfo{AccountingNumber: 1, AccountNumber: "DANKORT", Year: 2024, Month: 3, Credit: decimal.NewFromInt(6000)}))
	require.NoError(t, repo.SetBudgetInfo(ctx, &models.BudgetInfo{AccountingNumber: 1, AccountNumber: "8990", Year: 2024, Month: 2, Expenses: decimal.NewFromInt(1000)}))
	require.NoError(t, repo.SetBudgetInfo(ctx, &models.BudgetInfo{AccountingNumber: 1, AccountNumber: "8990", Year: 2024, Month: 3, Expenses: decimal.NewFromInt(1500)}))

	address := 7
	budget := "8990"
	postings := []*models.Posting{
		{AccountingNumber: 1, Date: day(2024, 2, 28), AccountNumber: "DANKORT", Text: "Løn", Debit: decimal.NewFromInt(10000)},
		{AccountingNumber: 1, Date: day(2024, 3, 1), AccountNumber: "DANKORT", Text: "Indkøb", BudgetAccountNumber: &budget, Credit: decimal.RequireFromString("250.50")},
		{AccountingNumber: 1, Date: day(2024, 3, 20), AccountNumber: "DANKORT", Text: "Faktura", AddressNumber: &address, Debit: decimal.NewFromInt(100)},
	}
	for i, p := range postings {
		require.NoError(t, repo.AddPosting(ctx, p))
		assert.Equal(t, i+1, p.RunningNumber)
	}

	balances, err := repo.AccountBalances(ctx, 1, day(2024, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "9749.5", balances["DANKORT"].String())

	credits, err := repo.CreditInfos(ctx, 1, 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, "6000", credits["DANKORT"].String())

	budgets, err := repo.BudgetInfos(ctx, 1, day(2024, 1, 1), day(2024, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, "-2500", budgets["8990"].String())

	posted, err := repo.BudgetAccountPostings(ctx, 1, MonthStart(day(2024, 3, 15)), day(2024, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "-250.5", posted["8990"].String())

	addresses, err := repo.AddressBalances(ctx, 1, day(2024, 3, 31))
	require.NoError(t, err)
	assert.Equal(t, "100", addresses[7].String())

	latest, err := repo.ListPostings(ctx, PostingFilter{Accounting: 1, StatusDate: day(2024, 3, 31), Count: 2})
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, 3, latest[0].RunningNumber)
	assert.Equal(t, 2, latest[1].RunningNumber)
}

func TestMonthBounds(t *testing.T) {
	assert.Equal(t, day(2024, 2, 1), MonthStart(day(2024, 2, 17)))
	assert.Equal(t, day(2024, 2, 29), MonthEnd(day(2024, 2, 17)))
}

func TestCalendarRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestCalendarDB(t)
	repo := NewCalendarRepository(db)

	for _, stmt := range []string{
		"INSERT INTO calsys (SystemNo, Title, Properties) VALUES (1, 'Privat', 1), (2, 'Gammel', 0)",
		"INSERT INTO caluser (SystemNo, UserId, UserName, Name, Initials, Properties) VALUES (1, 1, 'ole', 'Ole Sørensen', 'OS', 0), (1, 2, 'bente', 'Bente Hansen', 'BH', 0)",
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	systems, err := repo.ListSystems(ctx)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.Equal(t, "Privat", systems[0].Title)

	user, err := repo.GetUserByInitials(ctx, 1, "os")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	_, err = repo.GetUserByInitials(ctx, 1, "XX")
	assert.True(t, IsNotFound(err))

	appointment := &models.Appointment{System: 1, Date: day(2024, 5, 1), FromTime: "10:00", ToTime: "11:00", Properties: models.AppointmentPublic, Subject: "Møde"}
	require.NoError(t, repo.AddAppointment(ctx, appointment, []models.UserAppointment{{UserID: 1}, {UserID: 2, Properties: models.AppointmentAlarm}}))
	assert.Equal(t, 1, appointment.ID)

	second := &models.Appointment{System: 1, Date: day(2024, 4, 1), FromTime: "08:00", ToTime: "09:00", Subject: "Tandlæge"}
	require.NoError(t, repo.AddAppointment(ctx, second, []models.UserAppointment{{UserID: 1}}))
	assert.Equal(t, 2, second.ID)

	entries, err := repo.ListUserAppointments(ctx, 1, 1, day(2024, 1, 1))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Tandlæge", entries[0].Appointment.Subject)
	assert.Equal(t, day(2024, 4, 1), entries[0].Appointment.Date)

	entry, err := repo.GetUserAppointment(ctx, 1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentAlarm, entry.UserProperties)

	participants, err := repo.ListParticipants(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, participants, 2)

	appointment.Subject = "Flyttet møde"
	require.NoError(t, repo.UpdateAppointment(ctx, appointment, []models.UserAppointment{{UserID: 2}}))
	participants, err = repo.ListParticipants(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "BH", participants[0].Initials)

	missing := &models.Appointment{System: 1, ID: 99, Date: day(2024, 4, 1), FromTime: "08:00", ToTime: "09:00", Subject: "Ingen"}
	assert.True(t, IsNotFound(repo.UpdateAppointment(ctx, missing, nil)))
}

func TestConcurrentPostingsGetDistinctRunningNumbers(t *testing.T) {
	ctx := context.Background()
	repo := NewFinanceRepository(newTestRepository(t))
	require.NoError(t, repo.CreateAccounting(ctx, &models.Accounting{Number: 2, Name: "Firma", LetterheadNumber: 1}))

	const workers = 8
	numbers := make(chan int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := &models.Posting{AccountingNumber: 2, Date: day(2024, 3, 1), AccountNumber: "KASSE", Text: "Kontant", Debit: decimal.NewFromInt(10)}
			if assert.NoError(t, repo.AddPosting(ctx, p)) {
				numbers <- p.RunningNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := map[int]bool{}
	for n := range numbers {
		assert.False(t, seen[n], "running number %d used twice", n)
		seen[n] = true
	}
	assert.Len(t, seen, workers)
	for n := 1; n <= workers; n++ {
		assert.True(t, seen[n])
	}

	err := repo.AddPosting(ctx, &models.Posting{AccountingNumber: 3, Date: day(2024, 3, 1), AccountNumber: "KASSE", Text: "x"})
	assert.True(t, IsNotFound(err))
}

func TestUpdateUnchangedAppointment(t *testing.T) {
	ctx := context.Background()
	db := newTestCalendarDB(t)
	repo := NewCalendarRepository(db)

	for _, stmt := range []string{
		"INSERT INTO calsys (SystemNo, Title, Properties) VALUES (1, 'Privat', 1)",
		"INSERT INTO caluser (SystemNo, UserId, UserName, Name, Initials, Properties) VALUES (1, 1, 'ole', 'Ole Sørensen', 'OS', 0)",
		// skip updates that change nothing, so the affected row count is 0 like on MySQL
		`CREATE TRIGGER calapp_unchanged BEFORE UPDATE ON calapp
		 WHEN OLD.Date IS NEW.Date AND OLD.FromTime IS NEW.FromTime AND OLD.ToTime IS NEW.ToTime
		  AND OLD.Properties IS NEW.Properties AND OLD.Subject IS NEW.Subject AND OLD.Note IS NEW.Note
		 BEGIN SELECT RAISE(IGNORE); END`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	appointment := &models.Appointment{System: 1, Date: day(2024, 5, 1), FromTime: "10:00", ToTime: "11:00", Subject: "Møde"}
	require.NoError(t, repo.AddAppointment(ctx, appointment, []models.UserAppointment{{UserID: 1}}))

	unchanged := *appointment
	require.NoError(t, repo.UpdateAppointment(ctx, &unchanged, []models.UserAppointment{{UserID: 1}}))
	require.NoError(t, repo.UpdateAppointment(ctx, &unchanged, []models.UserAppointment{{UserID: 1}}))

	participants, err := repo.ListParticipants(ctx, 1, appointment.ID)
	require.NoError(t, err)
	assert.Len(t, participants, 1)

	missing := unchanged
	missing.ID = appointment.ID + 1
	assert.True(t, IsNotFound(repo.UpdateAppointment(ctx, &missing, nil)))
}

func TestFoodWasteRepository(t *testing.T) {
	ctx := context.Background()
	base := newTestRepository(t)
	require.NoError(t, database.SeedReferenceData(base.DB))
	repo := NewFoodWasteRepository(base)

	now := time.Now().UTC()
	member := &models.HouseholdMember{ID: uuid.New(), MailAddress: "ole@example.dk", Membership: models.MembershipBasic, ActivationCode: "ABC", CreationTime: now}
	household := &models.Household{ID: uuid.New(), Name: "Hjemme", CreationTime: now}

	err := repo.Transaction(ctx, func(tx InterfaceFoodWasteRepository) error {
		if err := tx.CreateMember(ctx, member); err != nil {
			return err
		}
		if err := tx.CreateHousehold(ctx, household); err != nil {
			return err
		}
		if err := tx.AddHouseholdMembership(ctx, &models.HouseholdMembership{HouseholdID: household.ID, HouseholdMemberID: member.ID, CreationTime: now}); err != nil {
			return err
		}
		return tx.CreateStorage(ctx, &models.Storage{ID: uuid.New(), HouseholdID: household.ID, SortOrder: 1, StorageTypeID: database.StorageTypeRefrigerator, Temperature: 5, CreationTime: now})
	})
	require.NoError(t, err)

	found, err := repo.GetMemberByMail(ctx, "ole@example.dk")
	require.NoError(t, err)
	assert.Equal(t, member.ID, found.ID)

	households, err := repo.ListMemberHouseholds(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, households, 1)

	isMember, err := repo.IsHouseholdMember(ctx, household.ID, member.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	storages, err := repo.ListStorages(ctx, household.ID)
	require.NoError(t, err)
	assert.Len(t, storages, 1)

	require.NoError(t, repo.RemoveHouseholdMembership(ctx, household.ID, member.ID))
	assert.True(t, IsNotFound(repo.RemoveHouseholdMembership(ctx, household.ID, member.ID)))

	storageType, err := repo.GetStorageType(ctx, database.StorageTypeFreezer)
	require.NoError(t, err)
	assert.True(t, storageType.InRange(-18))

	names, err := repo.Translations(ctx, database.TranslationInfoEnglish, []uuid.UUID{database.StorageTypeFreezer, database.StorageTypeRefrigerator})
	require.NoError(t, err)
	assert.Equal(t, "Freezer", names[database.StorageTypeFreezer])

	provider, err := repo.GetDataProvider(ctx, database.DataProviderPayPal)
	require.NoError(t, err)
	assert.True(t, provider.HandlesPayments)

	text, err := repo.GetStaticText(ctx, models.StaticTextPrivacyPolicy)
	require.NoError(t, err)
	assert.NotNil(t, text.BodyTranslationIdentifier)

	group := &models.FoodGroup{ID: uuid.New(), IsActive: true}
	require.NoError(t, repo.SaveFoodGroup(ctx, group))
	other := &models.FoodGroup{ID: uuid.New(), IsActive: true}
	require.NoError(t, repo.SaveFoodGroup(ctx, other))

	item := &models.FoodItem{ID: uuid.New(), PrimaryFoodGroupID: group.ID, IsActive: true}
	require.NoError(t, repo.SaveFoodItem(ctx, item))
	item.PrimaryFoodGroupID = other.ID
	require.NoError(t, repo.SaveFoodItem(ctx, item))

	bindings, err := repo.ListFoodItemGroups(ctx, []uuid.UUID{item.ID})
	require.NoError(t, err)
	require.Len(t, bindings, 2)
	for _, b := range bindings {
		assert.Equal(t, b.FoodGroupID == other.ID, b.IsPrimary)
	}

	items, err := repo.ListFoodItems(ctx, group.ID, true)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	key := &models.ForeignKey{ID: uuid.New(), DataProviderID: database.DataProviderFoodData, ForeignKeyForIdentifier: group.ID, ForeignKeyForType: models.ForeignKeyForFoodGroup, ForeignKeyValue: "100"}
	require.NoError(t, repo.SaveForeignKey(ctx, key))
	foundKey, err := repo.FindForeignKey(ctx, database.DataProviderFoodData, models.ForeignKeyForFoodGroup, "100")
	require.NoError(t, err)
	assert.Equal(t, group.ID, foundKey.ForeignKeyForIdentifier)
}
