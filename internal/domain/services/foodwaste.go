package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/messaging"
	"osintranet-http-service/internal/infrastructure/repositories"
	"osintranet-http-service/pkg/logger"
	"osintranet-http-service/pkg/utils"
)

// activationCodeLength is the length of the code sent in the welcome letter.
const activationCodeLength = 8

// foodWaste holds what the household member, household and system data
// services share.
type foodWaste struct {
	FoodWaste repositories.InterfaceFoodWasteRepository
	Publisher messaging.Publisher
	Now       Clock
}

// currentMember returns the household member with the caller's mail address.
func (f *foodWaste) currentMember(ctx context.Context) (*models.HouseholdMember, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	member, err := f.FoodWaste.GetMemberByMail(ctx, p.MailAddress)
	if err != nil {
		return nil, notFound(err, code.ErrHouseholdMemberNotFound, p.MailAddress)
	}
	return member, nil
}

// activatedMember is currentMember for members who entered their activation code.
func (f *foodWaste) activatedMember(ctx context.Context) (*models.HouseholdMember, error) {
	member, err := f.currentMember(ctx)
	if err != nil {
		return nil, err
	}
	if !member.IsActivated() {
		return nil, intranet.NewBusinessError(code.ErrHouseholdMemberNotActivated, member.MailAddress)
	}
	return member, nil
}

// householdMember is activatedMember for members who accepted the privacy policy.
func (f *foodWaste) householdMember(ctx context.Context) (*models.HouseholdMember, error) {
	member, err := f.activatedMember(ctx)
	if err != nil {
		return nil, err
	}
	if !member.HasAcceptedPrivacyPolicy() {
		return nil, intranet.NewBusinessError(code.ErrPrivacyPolicyNotAccepted, member.MailAddress)
	}
	return member, nil
}

func (f *foodWaste) translationInfo(ctx context.Context, id uuid.UUID) (*models.TranslationInfo, error) {
	info, err := f.FoodWaste.GetTranslationInfo(ctx, id)
	if err != nil {
		return nil, notFound(err, code.ErrTranslationInfoNotFound, id)
	}
	return info, nil
}

func (f *foodWaste) dataProvider(ctx context.Context, id uuid.UUID) (*models.DataProvider, error) {
	provider, err := f.FoodWaste.GetDataProvider(ctx, id)
	if err != nil {
		return nil, notFound(err, code.ErrDataProviderNotFound, id)
	}
	return provider, nil
}

// createMember creates a member with a fresh activation code inside repo.
// The welcome letter is sent by the caller once the transaction commits.
func (f *foodWaste) createMember(ctx context.Context, repo repositories.InterfaceFoodWasteRepository, mailAddress string) (*models.HouseholdMember, error) {
	member := &models.HouseholdMember{
		ID:             uuid.New(),
		MailAddress:    strings.ToLower(strings.TrimSpace(mailAddress)),
		Membership:     models.MembershipBasic,
		ActivationCode: utils.ActivationCode(activationCodeLength),
		CreationTime:   f.Now(),
	}
	if err := repo.CreateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (f *foodWaste) sendWelcomeLetter(ctx context.Context, member *models.HouseholdMember, translationInfo uuid.UUID, invitedBy string) {
	letter := messaging.WelcomeLetter{
		HouseholdMemberID: member.ID,
		MailAddress:       member.MailAddress,
		ActivationCode:    member.ActivationCode,
		TranslationInfoID: translationInfo,
		InvitedBy:         invitedBy,
		CreatedAt:         member.CreationTime,
	}
	if err := f.Publisher.Publish(ctx, messaging.TopicWelcomeLetter, letter); err != nil {
		logger.Warning("发送欢迎信失败: 成员=%s 错误=%v", member.MailAddress, err)
	}
}

func (f *foodWaste) storageTypeViews(ctx context.Context, translationInfo uuid.UUID) (map[uuid.UUID]contracts.StorageTypeView, []contracts.StorageTypeView, error) {
	types, err := f.FoodWaste.ListStorageTypes(ctx)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]uuid.UUID, 0, len(types))
	for _, t := range types {
		ids = append(ids, t.ID)
	}
	names, err := f.FoodWaste.Translations(ctx, translationInfo, ids)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[uuid.UUID]contracts.StorageTypeView, len(types))
	views := make([]contracts.StorageTypeView, 0, len(types))
	for _, t := range types {
		view := contracts.StorageTypeView{
			ID:                    t.ID,
			Name:                  names[t.ID],
			SortOrder:             t.SortOrder,
			Temperature:           t.Temperature,
			TemperatureRangeStart: t.TemperatureRangeStart,
			TemperatureRangeEnd:   t.TemperatureRangeEnd,
			Creatable:             t.Creatable,
			Editable:              t.Editable,
			Deletable:             t.Deletable,
		}
		byID[t.ID] = view
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].SortOrder < views[j].SortOrder })
	return byID, views, nil
}

func (f *foodWaste) dataProviderViews(ctx context.Context, translationInfo uuid.UUID, providers []models.DataProvider) ([]contracts.DataProviderView, error) {
	ids := make([]uuid.UUID, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.DataSourceStatementIdentifier)
	}
	statements, err := f.FoodWaste.Translations(ctx, translationInfo, ids)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.DataProviderView, 0, len(providers))
	for _, p := range providers {
		views = append(views, contracts.DataProviderView{
			ID:                  p.ID,
			Name:                p.Name,
			HandlesPayments:     p.HandlesPayments,
			DataSourceStatement: statements[p.DataSourceStatementIdentifier],
		})
	}
	return views, nil
}

func translationInfoView(info models.TranslationInfo) contracts.TranslationInfoView {
	return contracts.TranslationInfoView{ID: info.ID, CultureName: info.CultureName}
}

func foreignKeyView(key models.ForeignKey) contracts.ForeignKeyView {
	return contracts.ForeignKeyView{
		ID:                      key.ID,
		DataProviderID:          key.DataProviderID,
		ForeignKeyForIdentifier: key.ForeignKeyForIdentifier,
		ForeignKeyForType:       key.ForeignKeyForType,
		ForeignKeyValue:         key.ForeignKeyValue,
	}
}
