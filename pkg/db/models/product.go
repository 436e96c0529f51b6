package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lunaville/storefront-backend/pkg/enums"
)

// Product represents one catalog listing. The core never creates products;
// they arrive through migrations or an external import.
type Product struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string            `gorm:"column:name;not null" json:"name"`
	Description *string           `gorm:"column:description" json:"description,omitempty"`
	Price       decimal.Decimal   `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	ImageURL    string            `gorm:"column:image_url;not null" json:"image"`
	Categories  []string          `gorm:"column:categories;type:text;serializer:json;not null" json:"category"`
	Material    enums.RugMaterial `gorm:"column:material;not null" json:"material"`
	Size        string            `gorm:"column:size;not null" json:"size"`
	Rating      float64           `gorm:"column:rating;not null;default:0" json:"rating"`
	Reviews     int               `gorm:"column:reviews;not null;default:0" json:"reviews"`
	InStock     bool              `gorm:"column:in_stock;not null;default:true" json:"inStock"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// BeforeCreate assigns an id when the caller did not provide one. Keeps the
// sqlite path working, where no server-side uuid default exists.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasCategory reports whether the product carries the given category tag.
func (p *Product) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}
