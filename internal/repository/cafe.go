package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/cafe-api/internal/domain"
	"github.com/vietanh2810/cafe-api/internal/repository/dao"
)

var (
	ErrCafeNameExists = dao.ErrCafeNameExists
	ErrCafeNotFound   = dao.ErrCafeNotFound
)

type CafeDAO interface {
	Insert(ctx context.Context, cafe dao.Cafe) (dao.Cafe, error)
	FindAll(ctx context.Context) ([]dao.Cafe, error)
	FindByID(ctx context.Context, id uint) (dao.Cafe, error)
	FindByLocation(ctx context.Context, location string) ([]dao.Cafe, error)
	UpdateCoffeePrice(ctx context.Context, id uint, price *string) error
	Delete(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type CafeRepository struct {
	dao CafeDAO
}

func NewCafeRepository(dao CafeDAO) *CafeRepository {
	return &CafeRepository{
		dao: dao,
	}
}

func (r *CafeRepository) Create(ctx context.Context, cafe domain.Cafe) (domain.Cafe, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(cafe))
	if err != nil {
		return domain.Cafe{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CafeRepository) FindAll(ctx context.Context) ([]domain.Cafe, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CafeRepository) FindByID(ctx context.Context, id uint) (domain.Cafe, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Cafe{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CafeRepository) FindByLocation(ctx context.Context, location string) ([]domain.Cafe, error) {
	found, err := r.dao.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByLocation -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CafeRepository) UpdateCoffeePrice(ctx context.Context, id uint, price *string) error {
	if err := r.dao.UpdateCoffeePrice(ctx, id, price); err != nil {
		return fmt.Errorf("r.dao.UpdateCoffeePrice -> %w", err)
	}

	return nil
}

func (r *CafeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CafeRepository) Ping(ctx context.Context) error {
	if err := r.dao.Ping(ctx); err != nil {
		return fmt.Errorf("r.dao.Ping -> %w", err)
	}

	return nil
}

func (r *CafeRepository) domainToDao(c domain.Cafe) dao.Cafe {
	return dao.Cafe{
		ID:           c.ID,
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		Seats:        c.Seats,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		HasSockets:   c.HasSockets,
		CanTakeCalls: c.CanTakeCalls,
		CoffeePrice:  c.CoffeePrice,
	}
}

func (r *CafeRepository) daoToDomain(c dao.Cafe) domain.Cafe {
	return domain.Cafe{
		ID:           c.ID,
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		Seats:        c.Seats,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		HasSockets:   c.HasSockets,
		CanTakeCalls: c.CanTakeCalls,
		CoffeePrice:  c.CoffeePrice,
	}
}

func (r *CafeRepository) daosToDomain(cafes []dao.Cafe) []domain.Cafe {
	domainCafes := make([]domain.Cafe, len(cafes))
	for i, c := range cafes {
		domainCafes[i] = r.daoToDomain(c)
	}

	return domainCafes
}
