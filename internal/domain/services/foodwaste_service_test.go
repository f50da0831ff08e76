package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/infrastructure/database"
	"osintranet-http-service/internal/infrastructure/messaging"
	"osintranet-http-service/internal/infrastructure/repositories"
)

type foodWasteFixture struct {
	members    InterfaceHouseholdMemberService
	households InterfaceHouseholdService
	systemData InterfaceSystemDataService
	publisher  *recordingPublisher
}

func newFoodWasteFixture(t *testing.T) *foodWasteFixture {
	t.Helper()
	repo := repositories.NewFoodWasteRepository(newTestRepository(t))
	publisher := &recordingPublisher{}
	return &foodWasteFixture{
		members:    NewHouseholdMemberService(repo, publisher, fixedClock),
		households: NewHouseholdService(repo, publisher, fixedClock),
		systemData: NewSystemDataService(repo, publisher, fixedClock),
		publisher:  publisher,
	}
}

func (f *foodWasteFixture) activationCode(t *testing.T, mailAddress string) string {
	t.Helper()
	for _, m := range f.publisher.on(messaging.TopicWelcomeLetter) {
		if letter := m.(messaging.WelcomeLetter); letter.MailAddress == mailAddress {
			return letter.ActivationCode
		}
	}
	t.Fatalf("no welcome letter to %s", mailAddress)
	return ""
}

// activeMember creates an activated member who accepted the privacy policy.
func (f *foodWasteFixture) activeMember(t *testing.T, mailAddress string) context.Context {
	t.Helper()
	ctx := userContext(mailAddress)
	_, err := f.members.AddMember(ctx, &contracts.HouseholdMemberAddCommand{MailAddress: mailAddress, TranslationInfo: database.TranslationInfoDanish})
	require.NoError(t, err)
	_, err = f.members.Activate(ctx, &contracts.HouseholdMemberActivateCommand{ActivationCode: f.activationCode(t, mailAddress)})
	require.NoError(t, err)
	_, err = f.members.AcceptPrivacyPolicy(ctx, &contracts.HouseholdMemberAcceptPrivacyPolicyCommand{})
	require.NoError(t, err)
	return ctx
}

func receiptID(t *testing.T, result *contracts.ServiceReceipt) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(result.Identifier)
	require.NoError(t, err)
	return id
}

func TestHouseholdMemberLifecycle(t *testing.T) {
	f := newFoodWasteFixture(t)
	ctx := userContext("ole@example.dk")

	created, err := f.members.IsCreated(ctx, &contracts.HouseholdMemberIsCreatedQuery{})
	require.NoError(t, err)
	assert.False(t, created.Result)

	_, err = f.members.AddMember(ctx, &contracts.HouseholdMemberAddCommand{MailAddress: "bente@example.dk", TranslationInfo: database.TranslationInfoDanish})
	requireCode(t, err, code.ErrForbidden)

	_, err = f.members.AddMember(ctx, &contracts.HouseholdMemberAddCommand{MailAddress: "Ole@Example.dk", TranslationInfo: database.TranslationInfoDanish})
	require.NoError(t, err)
	letters := f.publisher.on(messaging.TopicWelcomeLetter)
	require.Len(t, letters, 1)
	letter := letters[0].(messaging.WelcomeLetter)
	assert.Equal(t, "ole@example.dk", letter.MailAddress)
	assert.Len(t, letter.ActivationCode, activationCodeLength)

	_, err = f.members.AddMember(ctx, &contracts.HouseholdMemberAddCommand{MailAddress: "ole@example.dk", TranslationInfo: database.TranslationInfoDanish})
	requireCode(t, err, code.ErrHouseholdMemberAlreadyExists)

	_, err = f.members.GetMemberData(ctx, &contracts.HouseholdMemberDataGetQuery{TranslationInfo: database.TranslationInfoDanish})
	requireCode(t, err, code.ErrHouseholdMemberNotActivated)

	_, err = f.members.Activate(ctx, &contracts.HouseholdMemberActivateCommand{ActivationCode: "forkert-kode"})
	requireCode(t, err, code.ErrWrongActivationCode)
	_, err = f.members.Activate(ctx, &contracts.HouseholdMemberActivateCommand{ActivationCode: letter.ActivationCode})
	require.NoError(t, err)

	activated, err := f.members.IsActivated(ctx, &contracts.HouseholdMemberIsActivatedQuery{})
	require.NoError(t, err)
	assert.True(t, activated.Result)
	accepted, err := f.members.HasAcceptedPrivacyPolicy(ctx, &contracts.HouseholdMemberHasAcceptedPrivacyPolicyQuery{})
	require.NoError(t, err)
	assert.False(t, accepted.Result)

	_, err = f.members.AcceptPrivacyPolicy(ctx, &contracts.HouseholdMemberAcceptPrivacyPolicyCommand{})
	require.NoError(t, err)

	upgrade := contracts.HouseholdMemberUpgradeMembershipCommand{
		Membership:       "deluxe",
		DataProvider:     database.DataProviderFoodData,
		PaymentTime:      testNow.Add(-time.Hour),
		PaymentReference: "PAY-1",
	}
	_, err = f.members.UpgradeMembership(ctx, &upgrade)
	requireCode(t, err, code.ErrDataProviderDoesNotHandlePayments)

	upgrade.DataProvider = database.DataProviderPayPal
	_, err = f.members.UpgradeMembership(ctx, &upgrade)
	require.NoError(t, err)
	changes := f.publisher.on(messaging.TopicMembership)
	require.Len(t, changes, 1)
	assert.Equal(t, "deluxe", changes[0].(messaging.MembershipChanged).Membership)

	upgrade.Membership = "basic"
	upgrade.PaymentReference = "PAY-2"
	_, err = f.members.UpgradeMembership(ctx, &upgrade)
	requireCode(t, err, code.ErrMembershipCannotBeDowngraded)

	view, err := f.members.GetMemberData(ctx, &contracts.HouseholdMemberDataGetQuery{TranslationInfo: database.TranslationInfoEnglish})
	require.NoError(t, err)
	assert.Equal(t, "deluxe", view.Membership)
	assert.False(t, view.MembershipHasExpired)
	assert.True(t, view.CanUpgradeMembership)
	assert.True(t, view.HasAcceptedPrivacyPolicy)
	assert.False(t, view.HasReachedHouseholdLimit)
	require.NotNil(t, view.MembershipExpireTime)
	assert.WithinDuration(t, upgrade.PaymentTime.AddDate(1, 0, 0), *view.MembershipExpireTime, time.Second)
	require.Len(t, view.Payments, 1)
	assert.Equal(t, "PayPal", view.Payments[0].DataProvider.Name)
	assert.Equal(t, "Payment through PayPal", view.Payments[0].DataProvider.DataSourceStatement)
}

func TestMemberWithoutPrincipal(t *testing.T) {
	f := newFoodWasteFixture(t)

	_, err := f.members.IsCreated(context.Background(), &contracts.HouseholdMemberIsCreatedQuery{})
	requireCode(t, err, code.ErrTokenInvalid)
}

func TestConcurrentHouseholdsRespectLimit(t *testing.T) {
	f := newFoodWasteFixture(t)
	ctx := f.activeMember(t, "ole@example.dk")

	const attempts = 5
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.households.AddHousehold(ctx, &contracts.HouseholdAddCommand{
				Name:            fmt.Sprintf("Hus %d", i),
				TranslationInfo: database.TranslationInfoDanish,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		requireCode(t, err, code.ErrHouseholdLimitReached)
	}
	assert.Equal(t, 1, created)

	view, err := f.members.GetMemberData(ctx, &contracts.HouseholdMemberDataGetQuery{TranslationInfo: database.TranslationInfoDanish})
	require.NoError(t, err)
	assert.Len(t, view.Households, 1)
	assert.True(t, view.HasReachedHouseholdLimit)
}

func TestHouseholdWithStorages(t *testing.T) {
	f := newFoodWasteFixture(t)
	ctx := f.activeMember(t, "ole@example.dk")

	result, err := f.households.AddHousehold(ctx, &contracts.HouseholdAddCommand{Name: "Eggertsvej", TranslationInfo: database.TranslationInfoDanish})
	require.NoError(t, err)
	household := receiptID(t, result)

	// a basic membership has room for one household
	_, err = f.households.AddHousehold(ctx, &contracts.HouseholdAddCommand{Name: "Sommerhus", TranslationInfo: database.TranslationInfoDanish})
	requireCode(t, err, code.ErrHouseholdLimitReached)

	view, err := f.households.GetHouseholdData(ctx, &contracts.HouseholdDataGetQuery{Household: household, TranslationInfo: database.TranslationInfoDanish})
	require.NoError(t, err)
	assert.Equal(t, "Eggertsvej", view.Name)
	require.Len(t, view.Members, 1)
	require.Len(t, view.Storages, 3)
	assert.Equal(t, "Køleskab", view.Storages[0].StorageType.Name)
	assert.Equal(t, 5, view.Storages[0].Temperature)

	_, err = f.households.AddStorage(ctx, &contracts.StorageAddCommand{Household: household, SortOrder: 4, StorageType: database.StorageTypeShoppingBasket, Temperature: 20})
	requireCode(t, err, code.ErrStorageOperationNotAllowed)
	_, err = f.households.AddStorage(ctx, &contracts.StorageAddCommand{Household: household, SortOrder: 4, StorageType: database.StorageTypeFreezer, Temperature: 5})
	requireCode(t, err, code.ErrStorageTemperatureOutOfRange)

	result, err = f.households.AddStorage(ctx, &contracts.StorageAddCommand{Household: household, SortOrder: 4, StorageType: database.StorageTypeFreezer, Description: "Kælder", Temperature: -20})
	require.NoError(t, err)
	storage := receiptID(t, result)

	_, err = f.households.ModifyStorage(ctx, &contracts.StorageModifyCommand{Household: household, Storage: storage, SortOrder: 4, StorageType: database.StorageTypeShoppingBasket, Temperature: 20})
	requireCode(t, err, code.ErrStorageOperationNotAllowed)
	_, err = f.households.ModifyStorage(ctx, &contracts.StorageModifyCommand{Household: household, Storage: storage, SortOrder: 5, StorageType: database.StorageTypeFreezer, Temperature: -16})
	require.NoError(t, err)

	_, err = f.households.DeleteStorage(ctx, &contracts.StorageDeleteCommand{Household: household, Storage: storage})
	require.NoError(t, err)
	_, err = f.households.DeleteStorage(ctx, &contracts.StorageDeleteCommand{Household: household, Storage: storage})
	requireCode(t, err, code.ErrStorageNotFound)
}

func TestHouseholdMembers(t *testing.T) {
	f := newFoodWasteFixture(t)
	ctx := f.activeMember(t, "ole@example.dk")

	result, err := f.households.AddHousehold(ctx, &contracts.HouseholdAddCommand{Name: "Eggertsvej", TranslationInfo: database.TranslationInfoDanish})
	require.NoError(t, err)
	household := receiptID(t, result)

	invite := contracts.HouseholdAddHouseholdMemberCommand{Household: household, MailAddress: "bente@example.dk", TranslationInfo: database.TranslationInfoEnglish}
	_, err = f.households.AddHouseholdMember(ctx, &invite)
	require.NoError(t, err)
	letters := f.publisher.on(messaging.TopicWelcomeLetter)
	require.Len(t, letters, 2)
	assert.Equal(t, "ole@example.dk", letters[1].(messaging.WelcomeLetter).InvitedBy)

	_, err = f.households.AddHouseholdMember(ctx, &invite)
	requireCode(t, err, code.ErrHouseholdMemberAlreadyInHousehold)

	// the invited member has not activated yet
	_, err = f.households.GetHouseholdData(userContext("bente@example.dk"), &contracts.HouseholdDataGetQuery{Household: household, TranslationInfo: database.TranslationInfoDanish})
	requireCode(t, err, code.ErrHouseholdMemberNotActivated)

	// a stranger may not see the household
	stranger := f.activeMember(t, "karen@example.dk")
	_, err = f.households.GetHouseholdData(stranger, &contracts.HouseholdDataGetQuery{Household: household, TranslationInfo: database.TranslationInfoDanish})
	requireCode(t, err, code.ErrNotHouseholdMember)

	_, err = f.households.RemoveHouseholdMember(ctx, &contracts.HouseholdRemoveHouseholdMemberCommand{Household: household, MailAddress: "bente@example.dk"})
	require.NoError(t, err)
	_, err = f.households.RemoveHouseholdMember(ctx, &contracts.HouseholdRemoveHouseholdMemberCommand{Household: household, MailAddress: "bente@example.dk"})
	requireCode(t, err, code.ErrNotHouseholdMember)

	_, err = f.households.GetHouseholdData(ctx, &contracts.HouseholdDataGetQuery{Household: uuid.New(), TranslationInfo: database.TranslationInfoDanish})
	requireCode(t, err, code.ErrHouseholdNotFound)
}

func TestSystemDataReferenceQueries(t *testing.T) {
	ctx := userContext("ole@example.dk")
	f := newFoodWasteFixture(t)

	infos, err := f.systemData.GetTranslationInfos(ctx, &contracts.TranslationInfoListGetQuery{})
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	types, err := f.systemData.GetStorageTypes(ctx, &contracts.StorageTypeListGetQuery{TranslationInfo: database.TranslationInfoEnglish})
	require.NoError(t, err)
	require.Len(t, types, 4)
	assert.Equal(t, "Refrigerator", types[0].Name)
	assert.False(t, types[3].Creatable)

	_, err = f.systemData.GetStorageTypes(ctx, &contracts.StorageTypeListGetQuery{TranslationInfo: uuid.New()})
	requireCode(t, err, code.ErrTranslationInfoNotFound)

	providers, err := f.systemData.GetDataProviders(ctx, &contracts.DataProviderListGetQuery{TranslationInfo: database.TranslationInfoDanish, OnlyHandlingPayments: true})
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, database.DataProviderPayPal, providers[0].ID)

	policy, err := f.systemData.GetPrivacyPolicy(ctx, &contracts.PrivacyPolicyGetQuery{TranslationInfo: database.TranslationInfoDanish})
	require.NoError(t, err)
	assert.Equal(t, "Privatlivspolitik", policy.Subject)
	assert.Equal(t, int(models.StaticTextPrivacyPolicy), policy.Type)

	welcome, err := f.systemData.GetStaticText(ctx, &contracts.StaticTextGetQuery{Type: int(models.StaticTextWelcomeLetter), TranslationInfo: database.TranslationInfoEnglish})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to food waste", welcome.Subject)
}

func TestImportFromDataProvider(t *testing.T) {
	ctx := adminContext()
	f := newFoodWasteFixture(t)

	group := contracts.FoodGroupImportFromDataProviderCommand{
		DataProvider: database.DataProviderFoodData, Key: "100", Name: "Grøntsager",
		TranslationInfo: database.TranslationInfoDanish, IsActive: true,
	}
	result, err := f.systemData.ImportFoodGroup(ctx, &group)
	require.NoError(t, err)
	root := receiptID(t, result)

	// importing the same key again updates the group
	group.Name = "Grøntsager og frugt"
	result, err = f.systemData.ImportFoodGroup(ctx, &group)
	require.NoError(t, err)
	assert.Equal(t, root, receiptID(t, result))

	_, err = f.systemData.ImportFoodGroup(ctx, &contracts.FoodGroupImportFromDataProviderCommand{
		DataProvider: database.DataProviderFoodData, Key: "110", ParentKey: "999", Name: "Kål",
		TranslationInfo: database.TranslationInfoDanish,
	})
	requireCode(t, err, code.ErrFoodGroupNotFound)
	result, err = f.systemData.ImportFoodGroup(ctx, &contracts.FoodGroupImportFromDataProviderCommand{
		DataProvider: database.DataProviderFoodData, Key: "110", ParentKey: "100", Name: "Kål",
		TranslationInfo: database.TranslationInfoDanish, IsActive: true,
	})
	require.NoError(t, err)
	child := receiptID(t, result)

	_, err = f.systemData.ImportFoodItem(ctx, &contracts.FoodItemImportFromDataProviderCommand{
		DataProvider: database.DataProviderFoodData, Key: "A1", PrimaryFoodGroupKey: "999", Name: "Rødkål",
		TranslationInfo: database.TranslationInfoDanish,
	})
	requireCode(t, err, code.ErrFoodGroupNotFound)
	result, err = f.systemData.ImportFoodItem(ctx, &contracts.FoodItemImportFromDataProviderCommand{
		DataProvider: database.DataProviderFoodData, Key: "A1", PrimaryFoodGroupKey: "110", Name: "Rødkål",
		TranslationInfo: database.TranslationInfoDanish, IsActive: true,
	})
	require.NoError(t, err)
	item := receiptID(t, result)

	tree, err := f.systemData.GetFoodGroupTree(ctx, &contracts.FoodGroupTreeGetQuery{TranslationInfo: database.TranslationInfoDanish})
	require.NoError(t, err)
	require.Len(t, tree.FoodGroups, 1)
	assert.Equal(t, "Grøntsager og frugt", tree.FoodGroups[0].Name)
	require.Len(t, tree.FoodGroups[0].Children, 1)
	assert.Equal(t, child, tree.FoodGroups[0].Children[0].ID)
	require.Len(t, tree.FoodGroups[0].ForeignKeys, 1)
	assert.Equal(t, "100", tree.FoodGroups[0].ForeignKeys[0].ForeignKeyValue)

	items, err := f.systemData.GetFoodItems(ctx, &contracts.FoodItemCollectionGetQuery{TranslationInfo: database.TranslationInfoDanish, FoodGroup: child})
	require.NoError(t, err)
	require.Len(t, items.FoodItems, 1)
	assert.Equal(t, item, items.FoodItems[0].ID)
	assert.Equal(t, "Rødkål", items.FoodItems[0].Name)
	assert.Equal(t, "Kål", items.FoodItems[0].PrimaryFoodGroup.Name)

	items, err = f.systemData.GetFoodItems(ctx, &contracts.FoodItemCollectionGetQuery{TranslationInfo: database.TranslationInfoDanish, FoodGroup: root})
	require.NoError(t, err)
	assert.Empty(t, items.FoodItems)

	_, err = f.systemData.GetFoodItems(ctx, &contracts.FoodItemCollectionGetQuery{TranslationInfo: database.TranslationInfoDanish, FoodGroup: uuid.New()})
	requireCode(t, err, code.ErrFoodGroupNotFound)
}

func TestTranslationsAndForeignKeys(t *testing.T) {
	ctx := adminContext()
	f := newFoodWasteFixture(t)

	result, err := f.systemData.ImportFoodGroup(ctx, &contracts.FoodGroupImportFromDataProviderCommand{
		DataProvider: database.DataProviderFoodData, Key: "200", Name: "Mejeri",
		TranslationInfo: database.TranslationInfoDanish, IsActive: true,
	})
	require.NoError(t, err)
	group := receiptID(t, result)

	_, err = f.systemData.AddTranslation(ctx, &contracts.TranslationAddCommand{TranslationOfIdentifier: group, TranslationInfo: database.TranslationInfoDanish, Value: "Igen"})
	requireCode(t, err, code.ErrTranslationAlreadyExists)
	result, err = f.systemData.AddTranslation(ctx, &contracts.TranslationAddCommand{TranslationOfIdentifier: group, TranslationInfo: database.TranslationInfoEnglish, Value: "Dairy"})
	require.NoError(t, err)
	translation := receiptID(t, result)

	_, err = f.systemData.ModifyTranslation(ctx, &contracts.TranslationModifyCommand{Translation: translation, Value: "Dairy products"})
	require.NoError(t, err)
	tree, err := f.systemData.GetFoodGroupTree(ctx, &contracts.FoodGroupTreeGetQuery{TranslationInfo: database.TranslationInfoEnglish})
	require.NoError(t, err)
	require.Len(t, tree.FoodGroups, 1)
	assert.Equal(t, "Dairy products", tree.FoodGroups[0].Name)

	_, err = f.systemData.DeleteTranslation(ctx, &contracts.TranslationDeleteCommand{Translation: translation})
	require.NoError(t, err)
	_, err = f.systemData.ModifyTranslation(ctx, &contracts.TranslationModifyCommand{Translation: translation, Value: "Dairy"})
	requireCode(t, err, code.ErrTranslationNotFound)

	add := contracts.ForeignKeyAddCommand{
		DataProvider: database.DataProviderPayPal, ForeignKeyForIdentifier: group,
		ForeignKeyForType: models.ForeignKeyForFoodGroup, ForeignKeyValue: "DAIRY",
	}
	result, err = f.systemData.AddForeignKey(ctx, &add)
	require.NoError(t, err)
	key := receiptID(t, result)
	_, err = f.systemData.AddForeignKey(ctx, &add)
	requireCode(t, err, code.ErrForeignKeyAlreadyExists)

	add.ForeignKeyForIdentifier = uuid.New()
	add.ForeignKeyValue = "OTHER"
	_, err = f.systemData.AddForeignKey(ctx, &add)
	requireCode(t, err, code.ErrFoodGroupNotFound)
	add.ForeignKeyForType = models.ForeignKeyForFoodItem
	_, err = f.systemData.AddForeignKey(ctx, &add)
	requireCode(t, err, code.ErrRecordNotFound)

	_, err = f.systemData.ModifyForeignKey(ctx, &contracts.ForeignKeyModifyCommand{ForeignKey: key, ForeignKeyValue: "MILK"})
	require.NoError(t, err)
	_, err = f.systemData.DeleteForeignKey(ctx, &contracts.ForeignKeyDeleteCommand{ForeignKey: key})
	require.NoError(t, err)
	_, err = f.systemData.DeleteForeignKey(ctx, &contracts.ForeignKeyDeleteCommand{ForeignKey: key})
	requireCode(t, err, code.ErrForeignKeyNotFound)
}
