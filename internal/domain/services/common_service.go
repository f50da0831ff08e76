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

// InterfaceCommonService 通用服务接口
type InterfaceCommonService interface {
	Registrar
	GetLetterheads(ctx context.Context, query *contracts.LetterheadListGetQuery) ([]contracts.LetterheadView, error)
	GetLetterhead(ctx context.Context, query *contracts.LetterheadGetQuery) (*contracts.LetterheadView, error)
	AddLetterhead(ctx context.Context, command *contracts.LetterheadAddCommand) (*contracts.ServiceReceipt, error)
	ModifyLetterhead(ctx context.Context, command *contracts.LetterheadModifyCommand) (*contracts.ServiceReceipt, error)
}

// CommonService handles letterheads.
type CommonService struct {
	Letterheads repositories.InterfaceLetterheadRepository
	Now         Clock
}

// NewCommonService 创建通用服务
func NewCommonService(letterheads repositories.InterfaceLetterheadRepository, now Clock) InterfaceCommonService {
	return &CommonService{Letterheads: letterheads, Now: now}
}

// Register 注册处理器
func (s *CommonService) Register(b *bus.Bus) {
	bus.RegisterQuery(b, s.GetLetterheads)
	bus.RegisterQuery(b, s.GetLetterhead)
	bus.RegisterCommand(b, s.AddLetterhead)
	bus.RegisterCommand(b, s.ModifyLetterhead)
}

// 1 GetLetterheads 获取所有信头
func (s *CommonService) GetLetterheads(ctx context.Context, _ *contracts.LetterheadListGetQuery) ([]contracts.LetterheadView, error) {
	letterheads, err := s.Letterheads.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.LetterheadView, 0, len(letterheads))
	for _, l := range letterheads {
		views = append(views, letterheadView(l))
	}
	return views, nil
}

// 2 GetLetterhead 获取信头
func (s *CommonService) GetLetterhead(ctx context.Context, query *contracts.LetterheadGetQuery) (*contracts.LetterheadView, error) {
	letterhead, err := s.Letterheads.Get(ctx, query.Number)
	if err != nil {
		return nil, notFound(err, code.ErrLetterheadNotFound, query.Number)
	}
	view := letterheadView(*letterhead)
	return &view, nil
}

// 3 AddLetterhead 添加信头
func (s *CommonService) AddLetterhead(ctx context.Context, command *contracts.LetterheadAddCommand) (*contracts.ServiceReceipt, error) {
	found, err := s.Letterheads.Exists(ctx, command.Number)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, intranet.NewBusinessError(code.ErrLetterheadAlreadyExists, command.Number)
	}
	letterhead := letterheadModel(command.Number, command.LetterheadData)
	if err := s.Letterheads.Create(ctx, &letterhead); err != nil {
		return nil, err
	}
	return receipt(command.Number, s.Now()), nil
}

// 4 ModifyLetterhead 修改信头
func (s *CommonService) ModifyLetterhead(ctx context.Context, command *contracts.LetterheadModifyCommand) (*contracts.ServiceReceipt, error) {
	found, err := s.Letterheads.Exists(ctx, command.Number)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, intranet.NewBusinessError(code.ErrLetterheadNotFound, command.Number)
	}
	letterhead := letterheadModel(command.Number, command.LetterheadData)
	if err := s.Letterheads.Update(ctx, &letterhead); err != nil {
		return nil, err
	}
	return receipt(command.Number, s.Now()), nil
}

func letterheadModel(number int, data contracts.LetterheadData) models.Letterhead {
	return models.Letterhead{
		Number:        number,
		Name:          data.Name,
		Line1:         data.Line1,
		Line2:         data.Line2,
		Line3:         data.Line3,
		Line4:         data.Line4,
		Line5:         data.Line5,
		Line6:         data.Line6,
		Line7:         data.Line7,
		CompanyNumber: data.CompanyNumber,
	}
}

func letterheadView(l models.Letterhead) contracts.LetterheadView {
	return contracts.LetterheadView{
		Number:        l.Number,
		Name:          l.Name,
		Line1:         l.Line1,
		Line2:         l.Line2,
		Line3:         l.Line3,
		Line4:         l.Line4,
		Line5:         l.Line5,
		Line6:         l.Line6,
		Line7:         l.Line7,
		CompanyNumber: l.CompanyNumber,
	}
}
