package dao

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Cake struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	Description string  `gorm:"not null"`
	Flavor      string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	IsAvailable bool    `gorm:"not null"`
}

// CakeUpdate lists the columns of a partial update. Nil fields are not
// written.
type CakeUpdate struct {
	Name        *string
	Description *string
	Flavor      *string
	Price       *float64
	IsAvailable *bool
}

func (u CakeUpdate) columns() map[string]interface{} {
	cols := make(map[string]interface{}, 5)
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.Flavor != nil {
		cols["flavor"] = *u.Flavor
	}
	if u.Price != nil {
		cols["price"] = *u.Price
	}
	if u.IsAvailable != nil {
		cols["is_available"] = *u.IsAvailable
	}

	return cols
}

const searchCondition = `LOWER(name) LIKE ? ESCAPE '\' OR LOWER(flavor) LIKE ? ESCAPE '\'`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type CakeDAO struct {
	db *gorm.DB
}

func NewCakeDAO(db *gorm.DB) *CakeDAO {
	return &CakeDAO{
		db: db,
	}
}

func (d *CakeDAO) Insert(ctx context.Context, cake Cake) (Cake, error) {
	cake.ID = 0

	result := d.db.WithContext(ctx).Create(&cake)
	if result.Error != nil {
		return Cake{}, newStoreError("insert", result.Error)
	}

	return cake, nil
}

func (d *CakeDAO) FindAll(ctx context.Context) ([]Cake, error) {
	var cakes []Cake

	result := d.db.WithContext(ctx).Order("id").Find(&cakes)
	if result.Error != nil {
		return nil, newStoreError("find all", result.Error)
	}

	return cakes, nil
}

func (d *CakeDAO) FindByID(ctx context.Context, id uint) (Cake, error) {
	var cake Cake

	result := d.db.WithContext(ctx).First(&cake, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Cake{}, ErrCakeNotFound
		}

		return Cake{}, newStoreError("find by id", result.Error)
	}

	return cake, nil
}

// Search matches term as a literal, case-insensitive substring of name or
// flavor.
func (d *CakeDAO) Search(ctx context.Context, term string) ([]Cake, error) {
	var cakes []Cake

	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	result := d.db.WithContext(ctx).
		Where(searchCondition, pattern, pattern).
		Order("id").
		Find(&cakes)
	if result.Error != nil {
		return nil, newStoreError("search", result.Error)
	}

	return cakes, nil
}

func (d *CakeDAO) UpdateByID(ctx context.Context, id uint, update CakeUpdate) error {
	cols := update.columns()
	if len(cols) == 0 {
		return ErrEmptyUpdate
	}

	result := d.db.WithContext(ctx).Model(&Cake{}).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return newStoreError("update by id", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCakeNotFound
	}

	return nil
}

func (d *CakeDAO) DeleteByID(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Cake{}, id)
	if result.Error != nil {
		return newStoreError("delete by id", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCakeNotFound
	}

	return nil
}
