package repositories

import (
	"context"
	"fmt"

	"osintranet-http-service/internal/domain/models"
)

// InterfaceLetterheadRepository 信头仓储接口
type InterfaceLetterheadRepository interface {
	List(ctx context.Context) ([]models.Letterhead, error)
	Get(ctx context.Context, number int) (*models.Letterhead, error)
	Exists(ctx context.Context, number int) (bool, error)
	Create(ctx context.Context, letterhead *models.Letterhead) error
	Update(ctx context.Context, letterhead *models.Letterhead) error
}

// LetterheadRepository 信头仓储
type LetterheadRepository struct {
	Repository
}

// NewLetterheadRepository 创建信头仓储
func NewLetterheadRepository(base Repository) InterfaceLetterheadRepository {
	return &LetterheadRepository{Repository: base}
}

// 1 List returns every letterhead ordered by number.
func (r *LetterheadRepository) List(ctx context.Context) ([]models.Letterhead, error) {
	return cached(ctx, r.Repository, PrefixLetterheads, func(ctx context.Context) ([]models.Letterhead, error) {
		var letterheads []models.Letterhead
		if err := r.db(ctx).Order("number").Find(&letterheads).Error; err != nil {
			return nil, dbError(err, "list letterheads")
		}
		return letterheads, nil
	})
}

// 2 Get 根据编号获取信头
func (r *LetterheadRepository) Get(ctx context.Context, number int) (*models.Letterhead, error) {
	return cached(ctx, r.Repository, fmt.Sprintf("%s:%d", PrefixLetterheads, number), func(ctx context.Context) (*models.Letterhead, error) {
		var letterhead models.Letterhead
		if err := r.db(ctx).First(&letterhead, "number = ?", number).Error; err != nil {
			return nil, dbError(err, "letterhead %d", number)
		}
		return &letterhead, nil
	})
}

// 3 Exists 检查信头是否存在
func (r *LetterheadRepository) Exists(ctx context.Context, number int) (bool, error) {
	found, err := exists(r.db(ctx), &models.Letterhead{}, "number = ?", number)
	return found, dbError(err, "letterhead %d", number)
}

// 4 Create 创建信头
func (r *LetterheadRepository) Create(ctx context.Context, letterhead *models.Letterhead) error {
	if err := r.db(ctx).Create(letterhead).Error; err != nil {
		return dbError(err, "create letterhead %d", letterhead.Number)
	}
	r.invalidate(ctx, PrefixLetterheads)
	return nil
}

// 5 Update 更新信头
func (r *LetterheadRepository) Update(ctx context.Context, letterhead *models.Letterhead) error {
	if err := r.db(ctx).Save(letterhead).Error; err != nil {
		return dbError(err, "update letterhead %d", letterhead.Number)
	}
	r.invalidate(ctx, PrefixLetterheads)
	return nil
}
