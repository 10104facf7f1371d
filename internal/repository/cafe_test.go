package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/cafe-api/internal/domain"
	"github.com/vietanh2810/cafe-api/internal/repository/dao"
)

type mockCafeDAO struct {
	mock.Mock
}

func (m *mockCafeDAO) Insert(ctx context.Context, cafe dao.Cafe) (dao.Cafe, error) {
	args := m.Called(ctx, cafe)
	return args.Get(0).(dao.Cafe), args.Error(1)
}

func (m *mockCafeDAO) FindAll(ctx context.Context) ([]dao.Cafe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Cafe), args.Error(1)
}

func (m *mockCafeDAO) FindByID(ctx context.Context, id uint) (dao.Cafe, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Cafe), args.Error(1)
}

func (m *mockCafeDAO) FindByLocation(ctx context.Context, location string) ([]dao.Cafe, error) {
	args := m.Called(ctx, location)
	return args.Get(0).([]dao.Cafe), args.Error(1)
}

func (m *mockCafeDAO) UpdateCoffeePrice(ctx context.Context, id uint, price *string) error {
	return m.Called(ctx, id, price).Error(0)
}

func (m *mockCafeDAO) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCafeDAO) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func price(s string) *string {
	return &s
}

func TestCafeRepository_Create(t *testing.T) {
	ctx := context.Background()
	input := domain.Cafe{
		Name:         "Science Gallery London",
		MapURL:       "https://g.page/scigallerylon",
		ImgURL:       "https://example.com/sgl.jpg",
		Location:     "London Bridge",
		Seats:        "50+",
		HasToilet:    true,
		HasWifi:      false,
		HasSockets:   true,
		CanTakeCalls: true,
		CoffeePrice:  price("£2.40"),
	}

	d := new(mockCafeDAO)
	d.On("Insert", ctx, dao.Cafe{
		Name:         input.Name,
		MapURL:       input.MapURL,
		ImgURL:       input.ImgURL,
		Location:     input.Location,
		Seats:        input.Seats,
		HasToilet:    true,
		HasSockets:   true,
		CanTakeCalls: true,
		CoffeePrice:  input.CoffeePrice,
	}).Return(dao.Cafe{
		ID:           7,
		Name:         input.Name,
		MapURL:       input.MapURL,
		ImgURL:       input.ImgURL,
		Location:     input.Location,
		Seats:        input.Seats,
		HasToilet:    true,
		HasSockets:   true,
		CanTakeCalls: true,
		CoffeePrice:  input.CoffeePrice,
	}, nil)

	created, err := NewCafeRepository(d).Create(ctx, input)
	require.NoError(t, err)

	expected := input
	expected.ID = 7
	assert.Equal(t, expected, created)
	d.AssertExpectations(t)
}

func TestCafeRepository_Create_DuplicateName(t *testing.T) {
	d := new(mockCafeDAO)
	d.On("Insert", mock.Anything, mock.Anything).Return(dao.Cafe{}, dao.ErrCafeNameExists)

	_, err := NewCafeRepository(d).Create(context.Background(), domain.Cafe{Name: "dup"})
	assert.ErrorIs(t, err, ErrCafeNameExists)
}

func TestCafeRepository_FindAll_KeepsOrder(t *testing.T) {
	d := new(mockCafeDAO)
	d.On("FindAll", mock.Anything).Return([]dao.Cafe{
		{ID: 2, Name: "A"},
		{ID: 1, Name: "B"},
	}, nil)

	cafes, err := NewCafeRepository(d).FindAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Cafe{{ID: 2, Name: "A"}, {ID: 1, Name: "B"}}, cafes)
}

func TestCafeRepository_FindAll_Empty(t *testing.T) {
	d := new(mockCafeDAO)
	d.On("FindAll", mock.Anything).Return([]dao.Cafe(nil), nil)

	cafes, err := NewCafeRepository(d).FindAll(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, cafes)
	assert.Empty(t, cafes)
}

func TestCafeRepository_FindByID_NotFound(t *testing.T) {
	d := new(mockCafeDAO)
	d.On("FindByID", mock.Anything, uint(3)).Return(dao.Cafe{}, dao.ErrCafeNotFound)

	_, err := NewCafeRepository(d).FindByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestCafeRepository_FindByLocation(t *testing.T) {
	d := new(mockCafeDAO)
	d.On("FindByLocation", mock.Anything, "Peckham").Return([]dao.Cafe{{ID: 1, Location: "Peckham"}}, nil)

	cafes, err := NewCafeRepository(d).FindByLocation(context.Background(), "Peckham")
	require.NoError(t, err)

	assert.Equal(t, []domain.Cafe{{ID: 1, Location: "Peckham"}}, cafes)
}

func TestCafeRepository_UpdateCoffeePrice(t *testing.T) {
	p := price("£5.67")

	d := new(mockCafeDAO)
	d.On("UpdateCoffeePrice", mock.Anything, uint(1), p).Return(nil)
	d.On("UpdateCoffeePrice", mock.Anything, uint(2), p).Return(dao.ErrCafeNotFound)

	r := NewCafeRepository(d)
	assert.NoError(t, r.UpdateCoffeePrice(context.Background(), 1, p))
	assert.ErrorIs(t, r.UpdateCoffeePrice(context.Background(), 2, p), ErrCafeNotFound)
}

func TestCafeRepository_Delete(t *testing.T) {
	d := new(mockCafeDAO)
	d.On("Delete", mock.Anything, uint(1)).Return(nil)
	d.On("Delete", mock.Anything, uint(2)).Return(dao.ErrCafeNotFound)

	r := NewCafeRepository(d)
	assert.NoError(t, r.Delete(context.Background(), 1))
	assert.ErrorIs(t, r.Delete(context.Background(), 2), ErrCafeNotFound)
}

func TestCafeRepository_Ping(t *testing.T) {
	boom := errors.New("connection refused")

	d := new(mockCafeDAO)
	d.On("Ping", mock.Anything).Return(boom)

	err := NewCafeRepository(d).Ping(context.Background())
	assert.ErrorIs(t, err, boom)
}
