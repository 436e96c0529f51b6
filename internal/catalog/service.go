package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lunaville/storefront-backend/pkg/db/models"
	"github.com/lunaville/storefront-backend/pkg/enums"
	pkgerrors "github.com/lunaville/storefront-backend/pkg/errors"
)

const maxPageSize = 100

// Service exposes catalog browsing.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// ListParams are the raw browse inputs from the API layer. Filters are
// free-form tokens matched against categories, material and size.
type ListParams struct {
	Filters  []string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	Sort     string
	Page     int
	PageSize int
}

// ListResult wraps one page of products with the unfiltered match count.
type ListResult struct {
	Items    []models.Product `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type service struct {
	repo            Repository
	defaultPageSize int
}

// NewService wires catalog dependencies.
func NewService(repo Repository, defaultPageSize int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if defaultPageSize <= 0 {
		defaultPageSize = 24
	}
	return &service{repo: repo, defaultPageSize: defaultPageSize}, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	sort, err := enums.ParseSortOption(params.Sort)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort option")
	}

	if params.PriceMin != nil && params.PriceMin.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "minimum price cannot be negative")
	}
	if params.PriceMin != nil && params.PriceMax != nil && params.PriceMax.LessThan(*params.PriceMin) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price range is inverted")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filters := make([]string, 0, len(params.Filters))
	for _, f := range params.Filters {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			filters = append(filters, trimmed)
		}
	}

	rows, total, err := s.repo.List(ctx, ListQuery{
		Filters:  filters,
		PriceMin: params.PriceMin,
		PriceMax: params.PriceMax,
		Sort:     sort,
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	return &ListResult{
		Items:    rows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return row, nil
}
