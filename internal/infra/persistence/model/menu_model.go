// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"menuqr/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuModel is the GORM-specific struct for the 'menus' table.
// The aggregate's categories and items are created and loaded with it.
type MenuModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"not null"`
	Description   string
	Template      string
	IsActive      bool   `gorm:"not null;default:true"`
	QRImageInline string `gorm:"type:text"`
	QRImageURL    string
	QRTargetURL   string
	Version       int64           `gorm:"not null;default:1"`
	Categories    []CategoryModel `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuModel) TableName() string {
	return "menus"
}

// CategoryModel is the GORM-specific struct for the 'menu_categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	MenuID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	SortOrder int       `gorm:"not null;default:0"`
	Items     []ItemModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "menu_categories"
}

// ItemModel is the GORM-specific struct for the 'menu_items' table.
type ItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Price       *float64  `gorm:"type:decimal(10,2)"`
	Description string
	Ingredients []string `gorm:"type:jsonb;serializer:json"`
	IsAvailable bool     `gorm:"not null;default:true"`
	SortOrder   int      `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "menu_items"
}

// FromMenuDomain converts a domain menu aggregate into its GORM models.
func FromMenuDomain(menu *entity.Menu) *MenuModel {
	menuM := &MenuModel{
		ID:            menu.ID,
		OwnerID:       menu.OwnerID,
		Name:          menu.Name,
		Description:   menu.Description,
		Template:      menu.Template,
		IsActive:      menu.IsActive,
		QRImageInline: menu.QRImageInline,
		QRImageURL:    menu.QRImageURL,
		QRTargetURL:   menu.QRTargetURL,
		Version:       menu.Version,
		CreatedAt:     menu.CreatedAt,
		UpdatedAt:     menu.UpdatedAt,
	}

	menuM.Categories = FromCategoryDomains(menu.Categories)

	return menuM
}

// FromCategoryDomains converts domain categories into GORM models.
func FromCategoryDomains(categories []entity.Category) []CategoryModel {
	categoryModels := make([]CategoryModel, 0, len(categories))
	for _, category := range categories {
		categoryM := CategoryModel{
			ID:        category.ID,
			MenuID:    category.MenuID,
			Name:      category.Name,
			SortOrder: category.SortOrder,
			Items:     make([]ItemModel, 0, len(category.Items)),
		}
		for _, item := range category.Items {
			categoryM.Items = append(categoryM.Items, ItemModel{
				ID:          item.ID,
				CategoryID:  item.CategoryID,
				Name:        item.Name,
				Price:       item.Price,
				Description: item.Description,
				Ingredients: item.Ingredients,
				IsAvailable: item.IsAvailable,
				SortOrder:   item.SortOrder,
			})
		}
		categoryModels = append(categoryModels, categoryM)
	}

	return categoryModels
}

// ToMenuDomain converts a GORM menu model back into the domain aggregate.
func ToMenuDomain(menuM *MenuModel) *entity.Menu {
	menu := &entity.Menu{
		ID:            menuM.ID,
		OwnerID:       menuM.OwnerID,
		Name:          menuM.Name,
		Description:   menuM.Description,
		Template:      menuM.Template,
		IsActive:      menuM.IsActive,
		QRImageInline: menuM.QRImageInline,
		QRImageURL:    menuM.QRImageURL,
		QRTargetURL:   menuM.QRTargetURL,
		Version:       menuM.Version,
		Categories:    make([]entity.Category, 0, len(menuM.Categories)),
		CreatedAt:     menuM.CreatedAt,
		UpdatedAt:     menuM.UpdatedAt,
	}

	for _, categoryM := range menuM.Categories {
		category := entity.Category{
			ID:        categoryM.ID,
			MenuID:    categoryM.MenuID,
			Name:      categoryM.Name,
			SortOrder: categoryM.SortOrder,
			Items:     make([]entity.Item, 0, len(categoryM.Items)),
		}
		for _, itemM := range categoryM.Items {
			category.Items = append(category.Items, entity.Item{
				ID:          itemM.ID,
				CategoryID:  itemM.CategoryID,
				Name:        itemM.Name,
				Price:       itemM.Price,
				Description: itemM.Description,
				Ingredients: itemM.Ingredients,
				IsAvailable: itemM.IsAvailable,
				SortOrder:   itemM.SortOrder,
			})
		}
		menu.Categories = append(menu.Categories, category)
	}

	return menu
}
