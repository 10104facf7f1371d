package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vietanh2810/cafe-api/internal/domain"
	"github.com/vietanh2810/cafe-api/internal/repository"
)

var (
	ErrCafeNameExists = repository.ErrCafeNameExists
	ErrCafeNotFound   = repository.ErrCafeNotFound

	ErrNoCafes          = errors.New("no cafes stored")
	ErrNoCafeAtLocation = errors.New("no cafe at location")
)

type CafeRepository interface {
	Create(ctx context.Context, cafe domain.Cafe) (domain.Cafe, error)
	FindAll(ctx context.Context) ([]domain.Cafe, error)
	FindByLocation(ctx context.Context, location string) ([]domain.Cafe, error)
	UpdateCoffeePrice(ctx context.Context, id uint, price *string) error
	Delete(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type CafeService struct {
	repo CafeRepository

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewCafeService(repo CafeRepository) *CafeService {
	return &CafeService{
		repo: repo,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GetRandomCafe loads every cafe and picks one uniformly.
func (s *CafeService) GetRandomCafe(ctx context.Context) (domain.Cafe, error) {
	cafes, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.Cafe{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	if len(cafes) == 0 {
		return domain.Cafe{}, ErrNoCafes
	}

	return cafes[s.intn(len(cafes))], nil
}

// GetAllCafes returns every cafe ordered by name.
func (s *CafeService) GetAllCafes(ctx context.Context) ([]domain.Cafe, error) {
	cafes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	if cafes == nil {
		cafes = []domain.Cafe{}
	}

	return cafes, nil
}

func (s *CafeService) SearchByLocation(ctx context.Context, location string) ([]domain.Cafe, error) {
	cafes, err := s.repo.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByLocation -> %w", err)
	}

	if len(cafes) == 0 {
		return nil, ErrNoCafeAtLocation
	}

	return cafes, nil
}

func (s *CafeService) AddCafe(ctx context.Context, cafe domain.Cafe) (domain.Cafe, error) {
	created, err := s.repo.Create(ctx, cafe)
	if err != nil {
		return domain.Cafe{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CafeService) UpdateCoffeePrice(ctx context.Context, id uint, price *string) error {
	if err := s.repo.UpdateCoffeePrice(ctx, id, price); err != nil {
		return fmt.Errorf("s.repo.UpdateCoffeePrice -> %w", err)
	}

	return nil
}

// ReportClosed removes the cafe. Callers must have checked the api key.
func (s *CafeService) ReportClosed(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *CafeService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("s.repo.Ping -> %w", err)
	}

	return nil
}

func (s *CafeService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Intn(n)
}
