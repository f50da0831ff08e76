package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/messaging"
	"osintranet-http-service/internal/infrastructure/repositories"
)

// InterfaceSystemDataService 系统数据服务接口
type InterfaceSystemDataService interface {
	Registrar
	GetTranslationInfos(ctx context.Context, query *contracts.TranslationInfoListGetQuery) ([]contracts.TranslationInfoView, error)
	GetStorageTypes(ctx context.Context, query *contracts.StorageTypeListGetQuery) ([]contracts.StorageTypeView, error)
	GetDataProviders(ctx context.Context, query *contracts.DataProviderListGetQuery) ([]contracts.DataProviderView, error)
	GetStaticText(ctx context.Context, query *contracts.StaticTextGetQuery) (*contracts.StaticTextView, error)
	GetPrivacyPolicy(ctx context.Context, query *contracts.PrivacyPolicyGetQuery) (*contracts.StaticTextView, error)
	GetFoodGroupTree(ctx context.Context, query *contracts.FoodGroupTreeGetQuery) (*contracts.FoodGroupTreeView, error)
	GetFoodItems(ctx context.Context, query *contracts.FoodItemCollectionGetQuery) (*contracts.FoodItemCollectionView, error)
	ImportFoodGroup(ctx context.Context, command *contracts.FoodGroupImportFromDataProviderCommand) (*contracts.ServiceReceipt, error)
	ImportFoodItem(ctx context.Context, command *contracts.FoodItemImportFromDataProviderCommand) (*contracts.ServiceReceipt, error)
	AddTranslation(ctx context.Context, command *contracts.TranslationAddCommand) (*contracts.ServiceReceipt, error)
	ModifyTranslation(ctx context.Context, command *contracts.TranslationModifyCommand) (*contracts.ServiceReceipt, error)
	DeleteTranslation(ctx context.Context, command *contracts.TranslationDeleteCommand) (*contracts.ServiceReceipt, error)
	AddForeignKey(ctx context.Context, command *contracts.ForeignKeyAddCommand) (*contracts.ServiceReceipt, error)
	ModifyForeignKey(ctx context.Context, command *contracts.ForeignKeyModifyCommand) (*contracts.ServiceReceipt, error)
	DeleteForeignKey(ctx context.Context, command *contracts.ForeignKeyDeleteCommand) (*contracts.ServiceReceipt, error)
}

// SystemDataService handles the reference and food data of the food waste domain.
type SystemDataService struct {
	foodWaste
}

// NewSystemDataService 创建系统数据服务
func NewSystemDataService(repo repositories.InterfaceFoodWasteRepository, publisher messaging.Publisher, now Clock) InterfaceSystemDataService {
	return &SystemDataService{foodWaste{FoodWaste: repo, Publisher: publisher, Now: now}}
}

// Register 注册处理器
func (s *SystemDataService) Register(b *bus.Bus) {
	bus.RegisterQuery(b, s.GetTranslationInfos)
	bus.RegisterQuery(b, s.GetStorageTypes)
	bus.RegisterQuery(b, s.GetDataProviders)
	bus.RegisterQuery(b, s.GetStaticText)
	bus.RegisterQuery(b, s.GetPrivacyPolicy)
	bus.RegisterQuery(b, s.GetFoodGroupTree)
	bus.RegisterQuery(b, s.GetFoodItems)
	bus.RegisterCommand(b, s.ImportFoodGroup)
	bus.RegisterCommand(b, s.ImportFoodItem)
	bus.RegisterCommand(b, s.AddTranslation)
	bus.RegisterCommand(b, s.ModifyTranslation)
	bus.RegisterCommand(b, s.DeleteTranslation)
	bus.RegisterCommand(b, s.AddForeignKey)
	bus.RegisterCommand(b, s.ModifyForeignKey)
	bus.RegisterCommand(b, s.DeleteForeignKey)
}

// 1 GetTranslationInfos 获取所有翻译语言
func (s *SystemDataService) GetTranslationInfos(ctx context.Context, _ *contracts.TranslationInfoListGetQuery) ([]contracts.TranslationInfoView, error) {
	infos, err := s.FoodWaste.ListTranslationInfos(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.TranslationInfoView, 0, len(infos))
	for _, info := range infos {
		views = append(views, translationInfoView(info))
	}
	return views, nil
}

// 2 GetStorageTypes 获取存储类型
func (s *SystemDataService) GetStorageTypes(ctx context.Context, query *contracts.StorageTypeListGetQuery) ([]contracts.StorageTypeView, error) {
	if _, err := s.translationInfo(ctx, query.TranslationInfo); err != nil {
		return nil, err
	}
	_, views, err := s.storageTypeViews(ctx, query.TranslationInfo)
	return views, err
}

// 3 GetDataProviders 获取数据提供者
func (s *SystemDataService) GetDataProviders(ctx context.Context, query *contracts.DataProviderListGetQuery) ([]contracts.DataProviderView, error) {
	if _, err := s.translationInfo(ctx, query.TranslationInfo); err != nil {
		return nil, err
	}
	providers, err := s.FoodWaste.ListDataProviders(ctx)
	if err != nil {
		return nil, err
	}
	selected := make([]models.DataProvider, 0, len(providers))
	for _, p := range providers {
		if query.OnlyHandlingPayments && !p.HandlesPayments {
			continue
		}
		selected = append(selected, p)
	}
	return s.dataProviderViews(ctx, query.TranslationInfo, selected)
}

// 4 GetStaticText 获取静态文本
func (s *SystemDataService) GetStaticText(ctx context.Context, query *contracts.StaticTextGetQuery) (*contracts.StaticTextView, error) {
	return s.staticText(ctx, models.StaticTextType(query.Type), query.TranslationInfo)
}

// 5 GetPrivacyPolicy 获取隐私政策
func (s *SystemDataService) GetPrivacyPolicy(ctx context.Context, query *contracts.PrivacyPolicyGetQuery) (*contracts.StaticTextView, error) {
	return s.staticText(ctx, models.StaticTextPrivacyPolicy, query.TranslationInfo)
}

// 6 GetFoodGroupTree 获取食物组树
func (s *SystemDataService) GetFoodGroupTree(ctx context.Context, query *contracts.FoodGroupTreeGetQuery) (*contracts.FoodGroupTreeView, error) {
	if _, err := s.translationInfo(ctx, query.TranslationInfo); err != nil {
		return nil, err
	}
	groups, err := s.FoodWaste.ListFoodGroups(ctx, query.OnlyActive)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	names, err := s.FoodWaste.Translations(ctx, query.TranslationInfo, ids)
	if err != nil {
		return nil, err
	}
	keys, err := s.foreignKeysByIdentifier(ctx, ids)
	if err != nil {
		return nil, err
	}

	children := make(map[uuid.UUID][]models.FoodGroup)
	var roots []models.FoodGroup
	for _, g := range groups {
		if g.ParentID == nil {
			roots = append(roots, g)
			continue
		}
		children[*g.ParentID] = append(children[*g.ParentID], g)
	}

	var build func(groups []models.FoodGroup) []contracts.FoodGroupView
	build = func(groups []models.FoodGroup) []contracts.FoodGroupView {
		views := make([]contracts.FoodGroupView, 0, len(groups))
		for _, g := range groups {
			views = append(views, contracts.FoodGroupView{
				ID:          g.ID,
				Name:        names[g.ID],
				IsActive:    g.IsActive,
				ParentID:    g.ParentID,
				ForeignKeys: keys[g.ID],
				Children:    build(children[g.ID]),
			})
		}
		sort.SliceStable(views, func(i, j int) bool { return views[i].Name < views[j].Name })
		return views
	}
	return &contracts.FoodGroupTreeView{FoodGroups: build(roots)}, nil
}

// 7 GetFoodItems 获取食物集合
func (s *SystemDataService) GetFoodItems(ctx context.Context, query *contracts.FoodItemCollectionGetQuery) (*contracts.FoodItemCollectionView, error) {
	if _, err := s.translationInfo(ctx, query.TranslationInfo); err != nil {
		return nil, err
	}
	if query.FoodGroup != uuid.Nil {
		if _, err := s.FoodWaste.GetFoodGroup(ctx, query.FoodGroup); err != nil {
			return nil, notFound(err, code.ErrFoodGroupNotFound, query.FoodGroup)
		}
	}
	items, err := s.FoodWaste.ListFoodItems(ctx, query.FoodGroup, query.OnlyActive)
	if err != nil {
		return nil, err
	}
	itemIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}
	bindings, err := s.FoodWaste.ListFoodItemGroups(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	groupsOf := make(map[uuid.UUID][]uuid.UUID, len(items))
	ids := append([]uuid.UUID{}, itemIDs...)
	for _, b := range bindings {
		groupsOf[b.FoodItemID] = append(groupsOf[b.FoodItemID], b.FoodGroupID)
		ids = append(ids, b.FoodGroupID)
	}
	names, err := s.FoodWaste.Translations(ctx, query.TranslationInfo, ids)
	if err != nil {
		return nil, err
	}
	keys, err := s.foreignKeysByIdentifier(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	view := &contracts.FoodItemCollectionView{FoodItems: make([]contracts.FoodItemView, 0, len(items))}
	for _, item := range items {
		itemView := contracts.FoodItemView{
			ID:               item.ID,
			Name:             names[item.ID],
			IsActive:         item.IsActive,
			PrimaryFoodGroup: contracts.FoodGroupIdentificationView{ID: item.PrimaryFoodGroupID, Name: names[item.PrimaryFoodGroupID]},
			FoodGroups:       []contracts.FoodGroupIdentificationView{},
			ForeignKeys:      keys[item.ID],
		}
		for _, groupID := range groupsOf[item.ID] {
			itemView.FoodGroups = append(itemView.FoodGroups, contracts.FoodGroupIdentificationView{ID: groupID, Name: names[groupID]})
		}
		view.FoodItems = append(view.FoodItems, itemView)
	}
	sort.SliceStable(view.FoodItems, func(i, j int) bool { return view.FoodItems[i].Name < view.FoodItems[j].Name })
	return view, nil
}

// 8 ImportFoodGroup 从数据提供者导入食物组
func (s *SystemDataService) ImportFoodGroup(ctx context.Context, command *contracts.FoodGroupImportFromDataProviderCommand) (*contracts.ServiceReceipt, error) {
	provider, err := s.dataProvider(ctx, command.DataProvider)
	if err != nil {
		return nil, err
	}
	if _, err := s.translationInfo(ctx, command.TranslationInfo); err != nil {
		return nil, err
	}

	var group *models.FoodGroup
	err = s.FoodWaste.Transaction(ctx, func(repo repositories.InterfaceFoodWasteRepository) error {
		var parentID *uuid.UUID
		if command.ParentKey != "" {
			parentKey, err := repo.FindForeignKey(ctx, provider.ID, models.ForeignKeyForFoodGroup, command.ParentKey)
			if err != nil {
				return notFound(err, code.ErrFoodGroupNotFound, command.ParentKey)
			}
			parentID = &parentKey.ForeignKeyForIdentifier
		}

		group, err = importTarget(ctx, repo, provider.ID, models.ForeignKeyForFoodGroup, command.Key,
			func(id uuid.UUID) (*models.FoodGroup, error) { return repo.GetFoodGroup(ctx, id) },
			func(id uuid.UUID) *models.FoodGroup { return &models.FoodGroup{ID: id} })
		if err != nil {
			return err
		}
		group.ParentID = parentID
		group.IsActive = command.IsActive
		if err := repo.SaveFoodGroup(ctx, group); err != nil {
			return err
		}
		return upsertTranslation(ctx, repo, group.ID, command.TranslationInfo, command.Name)
	})
	if err != nil {
		return nil, err
	}
	return receipt(group.ID, s.Now()), nil
}

// 9 ImportFoodItem 从数据提供者导入食物
func (s *SystemDataService) ImportFoodItem(ctx context.Context, command *contracts.FoodItemImportFromDataProviderCommand) (*contracts.ServiceReceipt, error) {
	provider, err := s.dataProvider(ctx, command.DataProvider)
	if err != nil {
		return nil, err
	}
	if _, err := s.translationInfo(ctx, command.TranslationInfo); err != nil {
		return nil, err
	}

	var item *models.FoodItem
	err = s.FoodWaste.Transaction(ctx, func(repo repositories.InterfaceFoodWasteRepository) error {
		groupKey, err := repo.FindForeignKey(ctx, provider.ID, models.ForeignKeyForFoodGroup, command.PrimaryFoodGroupKey)
		if err != nil {
			return notFound(err, code.ErrFoodGroupNotFound, command.PrimaryFoodGroupKey)
		}

		item, err = importTarget(ctx, repo, provider.ID, models.ForeignKeyForFoodItem, command.Key,
			func(id uuid.UUID) (*models.FoodItem, error) { return repo.GetFoodItem(ctx, id) },
			func(id uuid.UUID) *models.FoodItem { return &models.FoodItem{ID: id} })
		if err != nil {
			return err
		}
		item.PrimaryFoodGroupID = groupKey.ForeignKeyForIdentifier
		item.IsActive = command.IsActive
		if err := repo.SaveFoodItem(ctx, item); err != nil {
			return err
		}
		return upsertTranslation(ctx, repo, item.ID, command.TranslationInfo, command.Name)
	})
	if err != nil {
		return nil, err
	}
	return receipt(item.ID, s.Now()), nil
}

// 10 AddTranslation 添加翻译
func (s *SystemDataService) AddTranslation(ctx context.Context, command *contracts.TranslationAddCommand) (*contracts.ServiceReceipt, error) {
	if _, err := s.translationInfo(ctx, command.TranslationInfo); err != nil {
		return nil, err
	}
	_, err := s.FoodWaste.FindTranslation(ctx, command.TranslationOfIdentifier, command.TranslationInfo)
	if err == nil {
		return nil, intranet.NewBusinessError(code.ErrTranslationAlreadyExists, command.TranslationOfIdentifier)
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	translation := models.Translation{
		ID:                uuid.New(),
		OfIdentifier:      command.TranslationOfIdentifier,
		TranslationInfoID: command.TranslationInfo,
		Value:             command.Value,
	}
	if err := s.FoodWaste.SaveTranslation(ctx, &translation); err != nil {
		return nil, err
	}
	return receipt(translation.ID, s.Now()), nil
}

// 11 ModifyTranslation 修改翻译
func (s *SystemDataService) ModifyTranslation(ctx context.Context, command *contracts.TranslationModifyCommand) (*contracts.ServiceReceipt, error) {
	translation, err := s.FoodWaste.GetTranslation(ctx, command.Translation)
	if err != nil {
		return nil, notFound(err, code.ErrTranslationNotFound, command.Translation)
	}
	translation.Value = command.Value
	if err := s.FoodWaste.SaveTranslation(ctx, translation); err != nil {
		return nil, err
	}
	return receipt(translation.ID, s.Now()), nil
}

// 12 DeleteTranslation 删除翻译
func (s *SystemDataService) DeleteTranslation(ctx context.Context, command *contracts.TranslationDeleteCommand) (*contracts.ServiceReceipt, error) {
	translation, err := s.FoodWaste.GetTranslation(ctx, command.Translation)
	if err != nil {
		return nil, notFound(err, code.ErrTranslationNotFound, command.Translation)
	}
	if err := s.FoodWaste.DeleteTranslation(ctx, translation); err != nil {
		return nil, err
	}
	return receipt(translation.ID, s.Now()), nil
}

// 13 AddForeignKey 添加外键
func (s *SystemDataService) AddForeignKey(ctx context.Context, command *contracts.ForeignKeyAddCommand) (*contracts.ServiceReceipt, error) {
	provider, err := s.dataProvider(ctx, command.DataProvider)
	if err != nil {
		return nil, err
	}
	switch command.ForeignKeyForType {
	case models.ForeignKeyForFoodGroup:
		if _, err := s.FoodWaste.GetFoodGroup(ctx, command.ForeignKeyForIdentifier); err != nil {
			return nil, notFound(err, code.ErrFoodGroupNotFound, command.ForeignKeyForIdentifier)
		}
	case models.ForeignKeyForFoodItem:
		if _, err := s.FoodWaste.GetFoodItem(ctx, command.ForeignKeyForIdentifier); err != nil {
			return nil, notFound(err, code.ErrRecordNotFound, command.ForeignKeyForIdentifier)
		}
	}
	if err := s.requireUnusedForeignKey(ctx, provider.ID, command.ForeignKeyForType, command.ForeignKeyValue); err != nil {
		return nil, err
	}
	key := models.ForeignKey{
		ID:                      uuid.New(),
		DataProviderID:          provider.ID,
		ForeignKeyForIdentifier: command.ForeignKeyForIdentifier,
		ForeignKeyForType:       command.ForeignKeyForType,
		ForeignKeyValue:         command.ForeignKeyValue,
	}
	if err := s.FoodWaste.SaveForeignKey(ctx, &key); err != nil {
		return nil, err
	}
	return receipt(key.ID, s.Now()), nil
}

// 14 ModifyForeignKey 修改外键
func (s *SystemDataService) ModifyForeignKey(ctx context.Context, command *contracts.ForeignKeyModifyCommand) (*contracts.ServiceReceipt, error) {
	key, err := s.FoodWaste.GetForeignKey(ctx, command.ForeignKey)
	if err != nil {
		return nil, notFound(err, code.ErrForeignKeyNotFound, command.ForeignKey)
	}
	if key.ForeignKeyValue != command.ForeignKeyValue {
		if err := s.requireUnusedForeignKey(ctx, key.DataProviderID, key.ForeignKeyForType, command.ForeignKeyValue); err != nil {
			return nil, err
		}
	}
	key.ForeignKeyValue = command.ForeignKeyValue
	if err := s.FoodWaste.SaveForeignKey(ctx, key); err != nil {
		return nil, err
	}
	return receipt(key.ID, s.Now()), nil
}

// 15 DeleteForeignKey 删除外键
func (s *SystemDataService) DeleteForeignKey(ctx context.Context, command *contracts.ForeignKeyDeleteCommand) (*contracts.ServiceReceipt, error) {
	key, err := s.FoodWaste.GetForeignKey(ctx, command.ForeignKey)
	if err != nil {
		return nil, notFound(err, code.ErrForeignKeyNotFound, command.ForeignKey)
	}
	if err := s.FoodWaste.DeleteForeignKey(ctx, key); err != nil {
		return nil, err
	}
	return receipt(key.ID, s.Now()), nil
}

func (s *SystemDataService) staticText(ctx context.Context, textType models.StaticTextType, translationInfo uuid.UUID) (*contracts.StaticTextView, error) {
	if _, err := s.translationInfo(ctx, translationInfo); err != nil {
		return nil, err
	}
	text, err := s.FoodWaste.GetStaticText(ctx, textType)
	if err != nil {
		return nil, notFound(err, code.ErrStaticTextNotFound, int(textType))
	}
	ids := []uuid.UUID{text.SubjectTranslationIdentifier}
	if text.BodyTranslationIdentifier != nil {
		ids = append(ids, *text.BodyTranslationIdentifier)
	}
	values, err := s.FoodWaste.Translations(ctx, translationInfo, ids)
	if err != nil {
		return nil, err
	}
	view := &contracts.StaticTextView{ID: text.ID, Type: int(text.Type), Subject: values[text.SubjectTranslationIdentifier]}
	if text.BodyTranslationIdentifier != nil {
		view.Body = values[*text.BodyTranslationIdentifier]
	}
	return view, nil
}

func (s *SystemDataService) foreignKeysByIdentifier(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]contracts.ForeignKeyView, error) {
	keys, err := s.FoodWaste.ListForeignKeys(ctx, ids)
	if err != nil {
		return nil, err
	}
	byIdentifier := make(map[uuid.UUID][]contracts.ForeignKeyView)
	for _, k := range keys {
		byIdentifier[k.ForeignKeyForIdentifier] = append(byIdentifier[k.ForeignKeyForIdentifier], foreignKeyView(k))
	}
	return byIdentifier, nil
}

func (s *SystemDataService) requireUnusedForeignKey(ctx context.Context, provider uuid.UUID, forType, value string) error {
	_, err := s.FoodWaste.FindForeignKey(ctx, provider, forType, value)
	if err == nil {
		return intranet.NewBusinessError(code.ErrForeignKeyAlreadyExists, forType, value)
	}
	if !repositories.IsNotFound(err) {
		return err
	}
	return nil
}

// importTarget resolves the record a data provider's key points at. A key
// seen for the first time gets a new record and a foreign key.
func importTarget[T any](
	ctx context.Context,
	repo repositories.InterfaceFoodWasteRepository,
	provider uuid.UUID,
	forType, value string,
	load func(id uuid.UUID) (*T, error),
	create func(id uuid.UUID) *T,
) (*T, error) {
	key, err := repo.FindForeignKey(ctx, provider, forType, value)
	if err == nil {
		target, err := load(key.ForeignKeyForIdentifier)
		if err == nil {
			return target, nil
		}
		if !repositories.IsNotFound(err) {
			return nil, err
		}
		// the key outlived its record
		return create(key.ForeignKeyForIdentifier), nil
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}

	id := uuid.New()
	key = &models.ForeignKey{
		ID:                      uuid.New(),
		DataProviderID:          provider,
		ForeignKeyForIdentifier: id,
		ForeignKeyForType:       forType,
		ForeignKeyValue:         value,
	}
	if err := repo.SaveForeignKey(ctx, key); err != nil {
		return nil, err
	}
	return create(id), nil
}

func upsertTranslation(ctx context.Context, repo repositories.InterfaceFoodWasteRepository, of, translationInfo uuid.UUID, value string) error {
	translation, err := repo.FindTranslation(ctx, of, translationInfo)
	switch {
	case repositories.IsNotFound(err):
		translation = &models.Translation{ID: uuid.New(), OfIdentifier: of, TranslationInfoID: translationInfo}
	case err != nil:
		return err
	}
	translation.Value = value
	return repo.SaveTranslation(ctx, translation)
}
