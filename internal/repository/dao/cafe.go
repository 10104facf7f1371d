package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrCafeNameExists = errors.New("cafe name already exists")
	ErrCafeNotFound   = errors.New("cafe not found")
)

const cafeNameConstraint = "uni_cafe_name"

type Cafe struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(250);unique;not null"`
	MapURL       string  `gorm:"column:map_url;type:varchar(500);not null"`
	ImgURL       string  `gorm:"column:img_url;type:varchar(500);not null"`
	Location     string  `gorm:"type:varchar(250);not null;index"`
	Seats        string  `gorm:"type:varchar(250);not null"`
	HasToilet    bool    `gorm:"not null"`
	HasWifi      bool    `gorm:"not null"`
	HasSockets   bool    `gorm:"not null"`
	CanTakeCalls bool    `gorm:"not null"`
	CoffeePrice  *string `gorm:"type:varchar(250)"`
}

func (Cafe) TableName() string {
	return "cafe"
}

type CafeDAO struct {
	db *gorm.DB
}

func NewCafeDAO(db *gorm.DB) *CafeDAO {
	return &CafeDAO{
		db: db,
	}
}

func (d *CafeDAO) Insert(ctx context.Context, cafe Cafe) (Cafe, error) {
	result := d.db.WithContext(ctx).Create(&cafe)
	if result.Error != nil {
		if isUniqueViolation(result.Error, cafeNameConstraint) {
			return Cafe{}, ErrCafeNameExists
		}

		return Cafe{}, result.Error
	}

	return cafe, nil
}

func (d *CafeDAO) FindAll(ctx context.Context) ([]Cafe, error) {
	var cafes []Cafe

	result := d.db.WithContext(ctx).Order("name ASC").Find(&cafes)
	if result.Error != nil {
		return nil, result.Error
	}

	return cafes, nil
}

func (d *CafeDAO) FindByID(ctx context.Context, id uint) (Cafe, error) {
	var cafe Cafe

	result := d.db.WithContext(ctx).First(&cafe, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Cafe{}, ErrCafeNotFound
		}

		return Cafe{}, result.Error
	}

	return cafe, nil
}

func (d *CafeDAO) FindByLocation(ctx context.Context, location string) ([]Cafe, error) {
	var cafes []Cafe

	result := d.db.WithContext(ctx).Where("location = ?", location).Find(&cafes)
	if result.Error != nil {
		return nil, result.Error
	}

	return cafes, nil
}

// UpdateCoffeePrice sets coffee_price on a single row. A nil price stores
// NULL.
func (d *CafeDAO) UpdateCoffeePrice(ctx context.Context, id uint, price *string) error {
	result := d.db.WithContext(ctx).
		Model(&Cafe{}).
		Where("id = ?", id).
		Update("coffee_price", price)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCafeNotFound
	}

	return nil
}

func (d *CafeDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Cafe{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCafeNotFound
	}

	return nil
}

func (d *CafeDAO) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == constraint
}
