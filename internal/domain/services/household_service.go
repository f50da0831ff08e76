package services

import (
	"context"

	"github.com/google/uuid"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/database"
	"osintranet-http-service/internal/infrastructure/messaging"
	"osintranet-http-service/internal/infrastructure/repositories"
)

// InterfaceHouseholdService 家庭服务接口
type InterfaceHouseholdService interface {
	Registrar
	GetHouseholdData(ctx context.Context, query *contracts.HouseholdDataGetQuery) (*contracts.HouseholdView, error)
	AddHousehold(ctx context.Context, command *contracts.HouseholdAddCommand) (*contracts.ServiceReceipt, error)
	UpdateHousehold(ctx context.Context, command *contracts.HouseholdUpdateCommand) (*contracts.ServiceReceipt, error)
	AddHouseholdMember(ctx context.Context, command *contracts.HouseholdAddHouseholdMemberCommand) (*contracts.ServiceReceipt, error)
	RemoveHouseholdMember(ctx context.Context, command *contracts.HouseholdRemoveHouseholdMemberCommand) (*contracts.ServiceReceipt, error)
	AddStorage(ctx context.Context, command *contracts.StorageAddCommand) (*contracts.ServiceReceipt, error)
	ModifyStorage(ctx context.Context, command *contracts.StorageModifyCommand) (*contracts.ServiceReceipt, error)
	DeleteStorage(ctx context.Context, command *contracts.StorageDeleteCommand) (*contracts.ServiceReceipt, error)
}

// HouseholdService handles the households of the caller.
type HouseholdService struct {
	foodWaste
}

// NewHouseholdService 创建家庭服务
func NewHouseholdService(repo repositories.InterfaceFoodWasteRepository, publisher messaging.Publisher, now Clock) InterfaceHouseholdService {
	return &HouseholdService{foodWaste{FoodWaste: repo, Publisher: publisher, Now: now}}
}

// Register 注册处理器
func (s *HouseholdService) Register(b *bus.Bus) {
	bus.RegisterQuery(b, s.GetHouseholdData)
	bus.RegisterCommand(b, s.AddHousehold)
	bus.RegisterCommand(b, s.UpdateHousehold)
	bus.RegisterCommand(b, s.AddHouseholdMember)
	bus.RegisterCommand(b, s.RemoveHouseholdMember)
	bus.RegisterCommand(b, s.AddStorage)
	bus.RegisterCommand(b, s.ModifyStorage)
	bus.RegisterCommand(b, s.DeleteStorage)
}

// 1 GetHouseholdData 获取家庭数据
func (s *HouseholdService) GetHouseholdData(ctx context.Context, query *contracts.HouseholdDataGetQuery) (*contracts.HouseholdView, error) {
	household, err := s.ownHousehold(ctx, query.Household)
	if err != nil {
		return nil, err
	}
	if _, err := s.translationInfo(ctx, query.TranslationInfo); err != nil {
		return nil, err
	}
	members, err := s.FoodWaste.ListHouseholdMembers(ctx, household.ID)
	if err != nil {
		return nil, err
	}
	storages, err := s.FoodWaste.ListStorages(ctx, household.ID)
	if err != nil {
		return nil, err
	}
	storageTypes, _, err := s.storageTypeViews(ctx, query.TranslationInfo)
	if err != nil {
		return nil, err
	}

	view := &contracts.HouseholdView{
		ID:           household.ID,
		Name:         household.Name,
		Description:  household.Description,
		CreationTime: household.CreationTime,
		Members:      make([]contracts.HouseholdMemberIdentificationView, 0, len(members)),
		Storages:     make([]contracts.StorageView, 0, len(storages)),
	}
	for _, m := range members {
		view.Members = append(view.Members, contracts.HouseholdMemberIdentificationView{ID: m.ID, MailAddress: m.MailAddress})
	}
	for _, st := range storages {
		storageType, ok := storageTypes[st.StorageTypeID]
		if !ok {
			storageType = contracts.StorageTypeView{ID: st.StorageTypeID}
		}
		view.Storages = append(view.Storages, contracts.StorageView{
			ID:           st.ID,
			HouseholdID:  st.HouseholdID,
			SortOrder:    st.SortOrder,
			StorageType:  storageType,
			Description:  st.Description,
			Temperature:  st.Temperature,
			CreationTime: st.CreationTime,
		})
	}
	return view, nil
}

// 2 AddHousehold 创建家庭及默认存储
func (s *HouseholdService) AddHousehold(ctx context.Context, command *contracts.HouseholdAddCommand) (*contracts.ServiceReceipt, error) {
	member, err := s.householdMember(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.translationInfo(ctx, command.TranslationInfo); err != nil {
		return nil, err
	}

	now := s.Now()
	household := models.Household{ID: uuid.New(), Name: command.Name, Description: command.Description, CreationTime: now}
	err = s.FoodWaste.Transaction(ctx, func(repo repositories.InterfaceFoodWasteRepository) error {
		// 成员行加锁后再计数，并发创建不会超过上限
		locked, err := repo.LockMember(ctx, member.ID)
		if err != nil {
			return notFound(err, code.ErrHouseholdMemberNotFound, member.MailAddress)
		}
		if err := s.requireHouseholdCapacity(ctx, repo, locked); err != nil {
			return err
		}
		if err := repo.CreateHousehold(ctx, &household); err != nil {
			return err
		}
		membership := models.HouseholdMembership{HouseholdID: household.ID, HouseholdMemberID: member.ID, CreationTime: now}
		if err := repo.AddHouseholdMembership(ctx, &membership); err != nil {
			return err
		}
		for _, id := range database.DefaultStorageTypes() {
			storageType, err := repo.GetStorageType(ctx, id)
			if err != nil {
				return notFound(err, code.ErrStorageTypeNotFound, id)
			}
			storage := models.Storage{
				ID:            uuid.New(),
				HouseholdID:   household.ID,
				SortOrder:     storageType.SortOrder,
				StorageTypeID: storageType.ID,
				Temperature:   storageType.Temperature,
				CreationTime:  now,
			}
			if err := repo.CreateStorage(ctx, &storage); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt(household.ID, now), nil
}

// 3 UpdateHousehold 更新家庭
func (s *HouseholdService) UpdateHousehold(ctx context.Context, command *contracts.HouseholdUpdateCommand) (*contracts.ServiceReceipt, error) {
	household, err := s.ownHousehold(ctx, command.Household)
	if err != nil {
		return nil, err
	}
	household.Name = command.Name
	household.Description = command.Description
	if err := s.FoodWaste.UpdateHousehold(ctx, household); err != nil {
		return nil, err
	}
	return receipt(household.ID, s.Now()), nil
}

// 4 AddHouseholdMember 向家庭添加成员，未知邮箱会先创建成员
func (s *HouseholdService) AddHouseholdMember(ctx context.Context, command *contracts.HouseholdAddHouseholdMemberCommand) (*contracts.ServiceReceipt, error) {
	current, err := s.householdMember(ctx)
	if err != nil {
		return nil, err
	}
	household, err := s.memberHousehold(ctx, current, command.Household)
	if err != nil {
		return nil, err
	}
	if _, err := s.translationInfo(ctx, command.TranslationInfo); err != nil {
		return nil, err
	}

	var created *models.HouseholdMember
	err = s.FoodWaste.Transaction(ctx, func(repo repositories.InterfaceFoodWasteRepository) error {
		member, err := repo.GetMemberByMail(ctx, command.MailAddress)
		switch {
		case repositories.IsNotFound(err):
			member, err = s.createMember(ctx, repo, command.MailAddress)
			if err != nil {
				return err
			}
			created = member
		case err != nil:
			return err
		default:
			inHousehold, err := repo.IsHouseholdMember(ctx, household.ID, member.ID)
			if err != nil {
				return err
			}
			if inHousehold {
				return intranet.NewBusinessError(code.ErrHouseholdMemberAlreadyInHousehold, member.MailAddress)
			}
			if member, err = repo.LockMember(ctx, member.ID); err != nil {
				return err
			}
			if err := s.requireHouseholdCapacity(ctx, repo, member); err != nil {
				return err
			}
		}
		membership := models.HouseholdMembership{HouseholdID: household.ID, HouseholdMemberID: member.ID, CreationTime: s.Now()}
		return repo.AddHouseholdMembership(ctx, &membership)
	})
	if err != nil {
		return nil, err
	}
	if created != nil {
		s.sendWelcomeLetter(ctx, created, command.TranslationInfo, current.MailAddress)
	}
	return receipt(household.ID, s.Now()), nil
}

// 5 RemoveHouseholdMember 从家庭移除成员
func (s *HouseholdService) RemoveHouseholdMember(ctx context.Context, command *contracts.HouseholdRemoveHouseholdMemberCommand) (*contracts.ServiceReceipt, error) {
	household, err := s.ownHousehold(ctx, command.Household)
	if err != nil {
		return nil, err
	}
	member, err := s.FoodWaste.GetMemberByMail(ctx, command.MailAddress)
	if err != nil {
		return nil, notFound(err, code.ErrHouseholdMemberNotFound, command.MailAddress)
	}
	if err := s.FoodWaste.RemoveHouseholdMembership(ctx, household.ID, member.ID); err != nil {
		return nil, notFound(err, code.ErrNotHouseholdMember, member.MailAddress)
	}
	return receipt(household.ID, s.Now()), nil
}

// 6 AddStorage 添加存储
func (s *HouseholdService) AddStorage(ctx context.Context, command *contracts.StorageAddCommand) (*contracts.ServiceReceipt, error) {
	household, err := s.ownHousehold(ctx, command.Household)
	if err != nil {
		return nil, err
	}
	storageType, err := s.storageType(ctx, command.StorageType)
	if err != nil {
		return nil, err
	}
	if !storageType.Creatable {
		return nil, intranet.NewBusinessError(code.ErrStorageOperationNotAllowed, "create")
	}
	if err := requireTemperature(storageType, command.Temperature); err != nil {
		return nil, err
	}
	storage := models.Storage{
		ID:            uuid.New(),
		HouseholdID:   household.ID,
		SortOrder:     command.SortOrder,
		StorageTypeID: storageType.ID,
		Description:   command.Description,
		Temperature:   command.Temperature,
		CreationTime:  s.Now(),
	}
	if err := s.FoodWaste.CreateStorage(ctx, &storage); err != nil {
		return nil, err
	}
	return receipt(storage.ID, s.Now()), nil
}

// 7 ModifyStorage 修改存储
func (s *HouseholdService) ModifyStorage(ctx context.Context, command *contracts.StorageModifyCommand) (*contracts.ServiceReceipt, error) {
	storage, current, err := s.ownStorage(ctx, command.Household, command.Storage)
	if err != nil {
		return nil, err
	}
	if !current.Editable {
		return nil, intranet.NewBusinessError(code.ErrStorageOperationNotAllowed, "modify")
	}
	storageType := current
	if command.StorageType != current.ID {
		storageType, err = s.storageType(ctx, command.StorageType)
		if err != nil {
			return nil, err
		}
		if !storageType.Creatable {
			return nil, intranet.NewBusinessError(code.ErrStorageOperationNotAllowed, "modify")
		}
	}
	if err := requireTemperature(storageType, command.Temperature); err != nil {
		return nil, err
	}
	storage.SortOrder = command.SortOrder
	storage.StorageTypeID = storageType.ID
	storage.Description = command.Description
	storage.Temperature = command.Temperature
	if err := s.FoodWaste.UpdateStorage(ctx, storage); err != nil {
		return nil, err
	}
	return receipt(storage.ID, s.Now()), nil
}

// 8 DeleteStorage 删除存储
func (s *HouseholdService) DeleteStorage(ctx context.Context, command *contracts.StorageDeleteCommand) (*contracts.ServiceReceipt, error) {
	storage, storageType, err := s.ownStorage(ctx, command.Household, command.Storage)
	if err != nil {
		return nil, err
	}
	if !storageType.Deletable {
		return nil, intranet.NewBusinessError(code.ErrStorageOperationNotAllowed, "delete")
	}
	if err := s.FoodWaste.DeleteStorage(ctx, storage); err != nil {
		return nil, err
	}
	return receipt(storage.ID, s.Now()), nil
}

// ownHousehold returns a household the caller belongs to.
func (s *HouseholdService) ownHousehold(ctx context.Context, id uuid.UUID) (*models.Household, error) {
	member, err := s.householdMember(ctx)
	if err != nil {
		return nil, err
	}
	return s.memberHousehold(ctx, member, id)
}

func (s *HouseholdService) memberHousehold(ctx context.Context, member *models.HouseholdMember, id uuid.UUID) (*models.Household, error) {
	household, err := s.FoodWaste.GetHousehold(ctx, id)
	if err != nil {
		return nil, notFound(err, code.ErrHouseholdNotFound, id)
	}
	inHousehold, err := s.FoodWaste.IsHouseholdMember(ctx, household.ID, member.ID)
	if err != nil {
		return nil, err
	}
	if !inHousehold {
		return nil, intranet.NewBusinessError(code.ErrNotHouseholdMember, member.MailAddress)
	}
	return household, nil
}

func (s *HouseholdService) ownStorage(ctx context.Context, householdID, storageID uuid.UUID) (*models.Storage, *models.StorageType, error) {
	household, err := s.ownHousehold(ctx, householdID)
	if err != nil {
		return nil, nil, err
	}
	storage, err := s.FoodWaste.GetStorage(ctx, household.ID, storageID)
	if err != nil {
		return nil, nil, notFound(err, code.ErrStorageNotFound, storageID)
	}
	storageType, err := s.storageType(ctx, storage.StorageTypeID)
	if err != nil {
		return nil, nil, err
	}
	return storage, storageType, nil
}

func (s *HouseholdService) storageType(ctx context.Context, id uuid.UUID) (*models.StorageType, error) {
	storageType, err := s.FoodWaste.GetStorageType(ctx, id)
	if err != nil {
		return nil, notFound(err, code.ErrStorageTypeNotFound, id)
	}
	return storageType, nil
}

func (s *HouseholdService) requireHouseholdCapacity(ctx context.Context, repo repositories.InterfaceFoodWasteRepository, member *models.HouseholdMember) error {
	households, err := repo.ListMemberHouseholds(ctx, member.ID)
	if err != nil {
		return err
	}
	if len(households) >= member.EffectiveMembership(s.Now()).HouseholdLimit() {
		return intranet.NewBusinessError(code.ErrHouseholdLimitReached, member.MailAddress)
	}
	return nil
}

func requireTemperature(storageType *models.StorageType, temperature int) error {
	if !storageType.InRange(temperature) {
		return intranet.NewBusinessError(code.ErrStorageTemperatureOutOfRange,
			temperature, storageType.TemperatureRangeStart, storageType.TemperatureRangeEnd)
	}
	return nil
}
