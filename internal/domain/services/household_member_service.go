package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/messaging"
	"osintranet-http-service/internal/infrastructure/repositories"
	"osintranet-http-service/pkg/logger"
)

// InterfaceHouseholdMemberService 家庭成员服务接口
type InterfaceHouseholdMemberService interface {
	Registrar
	IsCreated(ctx context.Context, query *contracts.HouseholdMemberIsCreatedQuery) (*contracts.BooleanResultView, error)
	IsActivated(ctx context.Context, query *contracts.HouseholdMemberIsActivatedQuery) (*contracts.BooleanResultView, error)
	HasAcceptedPrivacyPolicy(ctx context.Context, query *contracts.HouseholdMemberHasAcceptedPrivacyPolicyQuery) (*contracts.BooleanResultView, error)
	GetMemberData(ctx context.Context, query *contracts.HouseholdMemberDataGetQuery) (*contracts.HouseholdMemberView, error)
	AddMember(ctx context.Context, command *contracts.HouseholdMemberAddCommand) (*contracts.ServiceReceipt, error)
	Activate(ctx context.Context, command *contracts.HouseholdMemberActivateCommand) (*contracts.ServiceReceipt, error)
	AcceptPrivacyPolicy(ctx context.Context, command *contracts.HouseholdMemberAcceptPrivacyPolicyCommand) (*contracts.ServiceReceipt, error)
	UpgradeMembership(ctx context.Context, command *contracts.HouseholdMemberUpgradeMembershipCommand) (*contracts.ServiceReceipt, error)
}

// HouseholdMemberService handles the caller's own household member.
type HouseholdMemberService struct {
	foodWaste
}

// NewHouseholdMemberService 创建家庭成员服务
func NewHouseholdMemberService(repo repositories.InterfaceFoodWasteRepository, publisher messaging.Publisher, now Clock) InterfaceHouseholdMemberService {
	return &HouseholdMemberService{foodWaste{FoodWaste: repo, Publisher: publisher, Now: now}}
}

// Register 注册处理器
func (s *HouseholdMemberService) Register(b *bus.Bus) {
	bus.RegisterQuery(b, s.IsCreated)
	bus.RegisterQuery(b, s.IsActivated)
	bus.RegisterQuery(b, s.HasAcceptedPrivacyPolicy)
	bus.RegisterQuery(b, s.GetMemberData)
	bus.RegisterCommand(b, s.AddMember)
	bus.RegisterCommand(b, s.Activate)
	bus.RegisterCommand(b, s.AcceptPrivacyPolicy)
	bus.RegisterCommand(b, s.UpgradeMembership)
}

// 1 IsCreated 判断调用者是否已是家庭成员
func (s *HouseholdMemberService) IsCreated(ctx context.Context, _ *contracts.HouseholdMemberIsCreatedQuery) (*contracts.BooleanResultView, error) {
	member, err := s.lookupMember(ctx)
	if err != nil {
		return nil, err
	}
	return &contracts.BooleanResultView{Result: member != nil}, nil
}

// 2 IsActivated 判断调用者是否已激活
func (s *HouseholdMemberService) IsActivated(ctx context.Context, _ *contracts.HouseholdMemberIsActivatedQuery) (*contracts.BooleanResultView, error) {
	member, err := s.lookupMember(ctx)
	if err != nil {
		return nil, err
	}
	return &contracts.BooleanResultView{Result: member != nil && member.IsActivated()}, nil
}

// 3 HasAcceptedPrivacyPolicy 判断调用者是否已接受隐私政策
func (s *HouseholdMemberService) HasAcceptedPrivacyPolicy(ctx context.Context, _ *contracts.HouseholdMemberHasAcceptedPrivacyPolicyQuery) (*contracts.BooleanResultView, error) {
	member, err := s.lookupMember(ctx)
	if err != nil {
		return nil, err
	}
	return &contracts.BooleanResultView{Result: member != nil && member.HasAcceptedPrivacyPolicy()}, nil
}

// 4 GetMemberData 获取调用者的成员数据
func (s *HouseholdMemberService) GetMemberData(ctx context.Context, query *contracts.HouseholdMemberDataGetQuery) (*contracts.HouseholdMemberView, error) {
	member, err := s.activatedMember(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.translationInfo(ctx, query.TranslationInfo); err != nil {
		return nil, err
	}
	households, err := s.FoodWaste.ListMemberHouseholds(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	payments, err := s.FoodWaste.ListPayments(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	providers, err := s.FoodWaste.ListDataProviders(ctx)
	if err != nil {
		return nil, err
	}
	providerViews, err := s.dataProviderViews(ctx, query.TranslationInfo, providers)
	if err != nil {
		return nil, err
	}
	providerByID := make(map[uuid.UUID]contracts.DataProviderView, len(providerViews))
	for _, p := range providerViews {
		providerByID[p.ID] = p
	}

	now := s.Now()
	effective := member.EffectiveMembership(now)
	view := &contracts.HouseholdMemberView{
		ID:                        member.ID,
		MailAddress:               member.MailAddress,
		Membership:                effective.String(),
		MembershipExpireTime:      member.MembershipExpireTime,
		MembershipHasExpired:      member.Membership > models.MembershipBasic && effective == models.MembershipBasic,
		CanUpgradeMembership:      effective < models.MembershipPremium,
		IsActivated:               member.IsActivated(),
		ActivationTime:            member.ActivationTime,
		HasAcceptedPrivacyPolicy:  member.HasAcceptedPrivacyPolicy(),
		PrivacyPolicyAcceptedTime: member.PrivacyPolicyAcceptedTime,
		HasReachedHouseholdLimit:  len(households) >= effective.HouseholdLimit(),
		CreationTime:              member.CreationTime,
		Households:                make([]contracts.HouseholdIdentificationView, 0, len(households)),
		Payments:                  make([]contracts.PaymentView, 0, len(payments)),
	}
	for _, h := range households {
		view.Households = append(view.Households, contracts.HouseholdIdentificationView{ID: h.ID, Name: h.Name, Description: h.Description})
	}
	for _, p := range payments {
		provider, ok := providerByID[p.DataProviderID]
		if !ok {
			provider = contracts.DataProviderView{ID: p.DataProviderID}
		}
		view.Payments = append(view.Payments, contracts.PaymentView{
			ID:               p.ID,
			DataProvider:     provider,
			PaymentTime:      p.PaymentTime,
			PaymentReference: p.PaymentReference,
			PaymentReceipt:   p.PaymentReceipt,
			CreationTime:     p.CreationTime,
		})
	}
	return view, nil
}

// 5 AddMember 创建家庭成员并发送欢迎信
func (s *HouseholdMemberService) AddMember(ctx context.Context, command *contracts.HouseholdMemberAddCommand) (*contracts.ServiceReceipt, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !strings.EqualFold(p.MailAddress, command.MailAddress) {
		return nil, intranet.NewBusinessError(code.ErrForbidden)
	}
	if _, err := s.translationInfo(ctx, command.TranslationInfo); err != nil {
		return nil, err
	}
	_, err = s.FoodWaste.GetMemberByMail(ctx, command.MailAddress)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrHouseholdMemberAlreadyExists, command.MailAddress)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}

	member, err := s.createMember(ctx, s.FoodWaste, command.MailAddress)
	if err != nil {
		return nil, err
	}
	s.sendWelcomeLetter(ctx, member, command.TranslationInfo, "")
	return receipt(member.ID, s.Now()), nil
}

// 6 Activate 激活调用者
func (s *HouseholdMemberService) Activate(ctx context.Context, command *contracts.HouseholdMemberActivateCommand) (*contracts.ServiceReceipt, error) {
	member, err := s.currentMember(ctx)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(member.ActivationCode, strings.TrimSpace(command.ActivationCode)) {
		return nil, intranet.NewBusinessError(code.ErrWrongActivationCode)
	}
	if !member.IsActivated() {
		now := s.Now()
		member.ActivationTime = &now
		if err := s.FoodWaste.UpdateMember(ctx, member); err != nil {
			return nil, err
		}
	}
	return receipt(member.ID, s.Now()), nil
}

// 7 AcceptPrivacyPolicy 接受隐私政策
func (s *HouseholdMemberService) AcceptPrivacyPolicy(ctx context.Context, _ *contracts.HouseholdMemberAcceptPrivacyPolicyCommand) (*contracts.ServiceReceipt, error) {
	member, err := s.activatedMember(ctx)
	if err != nil {
		return nil, err
	}
	if !member.HasAcceptedPrivacyPolicy() {
		now := s.Now()
		member.PrivacyPolicyAcceptedTime = &now
		if err := s.FoodWaste.UpdateMember(ctx, member); err != nil {
			return nil, err
		}
	}
	return receipt(member.ID, s.Now()), nil
}

// 8 UpgradeMembership 升级会员等级
func (s *HouseholdMemberService) UpgradeMembership(ctx context.Context, command *contracts.HouseholdMemberUpgradeMembershipCommand) (*contracts.ServiceReceipt, error) {
	member, err := s.activatedMember(ctx)
	if err != nil {
		return nil, err
	}
	membership, ok := models.ParseMembership(command.Membership)
	if !ok {
		return nil, intranet.NewBusinessError(code.ErrValidation, "membership")
	}
	provider, err := s.dataProvider(ctx, command.DataProvider)
	if err != nil {
		return nil, err
	}
	if !provider.HandlesPayments {
		return nil, intranet.NewBusinessError(code.ErrDataProviderDoesNotHandlePayments, provider.Name)
	}
	now := s.Now()
	if membership < member.EffectiveMembership(now) {
		return nil, intranet.NewBusinessError(code.ErrMembershipCannotBeDowngraded, member.EffectiveMembership(now).String(), membership.String())
	}

	expires := command.PaymentTime.UTC().AddDate(1, 0, 0)
	err = s.FoodWaste.Transaction(ctx, func(repo repositories.InterfaceFoodWasteRepository) error {
		payment := models.Payment{
			ID:               uuid.New(),
			StakeholderID:    member.ID,
			DataProviderID:   provider.ID,
			PaymentTime:      command.PaymentTime.UTC(),
			PaymentReference: command.PaymentReference,
			PaymentReceipt:   command.PaymentReceipt,
			CreationTime:     now,
		}
		if err := repo.CreatePayment(ctx, &payment); err != nil {
			return err
		}
		member.Membership = membership
		member.MembershipExpireTime = &expires
		return repo.UpdateMember(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	message := messaging.MembershipChanged{
		HouseholdMemberID: member.ID,
		MailAddress:       member.MailAddress,
		Membership:        membership.String(),
		ExpiresAt:         expires,
		PaymentReference:  command.PaymentReference,
	}
	if err := s.Publisher.Publish(ctx, messaging.TopicMembership, message); err != nil {
		logger.Warning("发布会员变更失败: 成员=%s 错误=%v", member.MailAddress, err)
	}
	return receipt(member.ID, now), nil
}

// lookupMember returns nil when the caller is not a household member.
func (s *HouseholdMemberService) lookupMember(ctx context.Context) (*models.HouseholdMember, error) {
	member, err := s.currentMember(ctx)
	if intranet.HasCode(err, code.ErrHouseholdMemberNotFound) {
		return nil, nil
	}
	return member, err
}
