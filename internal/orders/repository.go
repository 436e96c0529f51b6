package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunaville/storefront-backend/pkg/db/models"
	"github.com/lunaville/storefront-backend/pkg/enums"
	"github.com/lunaville/storefront-backend/pkg/pagination"
)

type listOrdersParams struct {
	UserID string
	Limit  int
	Cursor *pagination.Cursor
}

// Repository is the order persistence surface.
type Repository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, params listOrdersParams) ([]models.Order, *pagination.Cursor, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository builds the GORM-backed order repository.
func NewRepository(db *gorm.DB) (Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &gormRepository{db: db}, nil
}

func (r *gormRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *gormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var row models.Order
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByUser pages newest-first with a (created_at, id) cursor. The caller
// passes a limit one larger than the page to detect overflow.
func (r *gormRepository) ListByUser(ctx context.Context, params listOrdersParams) ([]models.Order, *pagination.Cursor, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", params.UserID).
		Order("created_at DESC, id DESC").
		Limit(params.Limit)

	if params.Cursor != nil {
		tx = tx.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			params.Cursor.CreatedAt, params.Cursor.CreatedAt, params.Cursor.ID,
		)
	}

	var rows []models.Order
	if err := tx.Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	var next *pagination.Cursor
	if params.Limit > 1 && len(rows) == params.Limit {
		rows = rows[:len(rows)-1]
		last := rows[len(rows)-1]
		next = &pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		}
	}
	return rows, next, nil
}

func (r *gormRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
