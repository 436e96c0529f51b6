package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lunaville/storefront-backend/pkg/db/models"
	"github.com/lunaville/storefront-backend/pkg/enums"
)

// ListQuery is the repository-level browse query after the service has
// normalized paging and sorting.
type ListQuery struct {
	Filters  []string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	Sort     enums.SortOption
	Offset   int
	Limit    int
}

// Repository is the catalog read surface.
type Repository interface {
	List(ctx context.Context, query ListQuery) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository builds the GORM-backed catalog repository.
func NewRepository(db *gorm.DB) (Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &gormRepository{db: db}, nil
}

func (r *gormRepository) List(ctx context.Context, query ListQuery) ([]models.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Product{})

	if query.PriceMin != nil {
		tx = tx.Where("price >= ?", query.PriceMin)
	}
	if query.PriceMax != nil {
		tx = tx.Where("price <= ?", query.PriceMax)
	}

	// A product matches when any selected filter token hits its categories,
	// material or size. Categories persist as a JSON array, so containment
	// is a match on the quoted element.
	if len(query.Filters) > 0 {
		clauses := make([]string, 0, len(query.Filters))
		args := make([]any, 0, len(query.Filters)*3)
		for _, filter := range query.Filters {
			clauses = append(clauses, "(categories LIKE ? OR LOWER(material) = LOWER(?) OR size = ?)")
			args = append(args, `%"`+filter+`"%`, filter, filter)
		}
		tx = tx.Where(strings.Join(clauses, " OR "), args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Order(orderClause(query.Sort))
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var rows []models.Product
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *gormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var row models.Product
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func orderClause(sort enums.SortOption) string {
	switch sort {
	case enums.SortPriceAsc:
		return "price ASC"
	case enums.SortPriceDesc:
		return "price DESC"
	case enums.SortNewest:
		return "created_at DESC, id"
	default:
		return "(rating * 100 + reviews) DESC"
	}
}
