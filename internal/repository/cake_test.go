package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/cake-api/internal/domain"
	"github.com/vietanh2810/cake-api/internal/repository/dao"
)

type mockCakeDAO struct {
	mock.Mock
}

func (m *mockCakeDAO) Insert(ctx context.Context, cake dao.Cake) (dao.Cake, error) {
	args := m.Called(ctx, cake)
	return args.Get(0).(dao.Cake), args.Error(1)
}

func (m *mockCakeDAO) FindAll(ctx context.Context) ([]dao.Cake, error) {
	args := m.Called(ctx)
	cakes, _ := args.Get(0).([]dao.Cake)
	return cakes, args.Error(1)
}

func (m *mockCakeDAO) FindByID(ctx context.Context, id uint) (dao.Cake, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Cake), args.Error(1)
}

func (m *mockCakeDAO) Search(ctx context.Context, term string) ([]dao.Cake, error) {
	args := m.Called(ctx, term)
	cakes, _ := args.Get(0).([]dao.Cake)
	return cakes, args.Error(1)
}

func (m *mockCakeDAO) UpdateByID(ctx context.Context, id uint, update dao.CakeUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *mockCakeDAO) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var testCake = domain.Cake{
	ID:          1,
	Name:        "Test Cake",
	Description: "A delicious test cake",
	Flavor:      "Vanilla",
	Price:       10,
	IsAvailable: true,
}

var testCakeDAO = dao.Cake{
	ID:          1,
	Name:        "Test Cake",
	Description: "A delicious test cake",
	Flavor:      "Vanilla",
	Price:       10,
	IsAvailable: true,
}

func TestCakeRepository_Insert(t *testing.T) {
	ctx := context.Background()
	d := new(mockCakeDAO)
	repo := NewCakeRepository(d)

	input := testCake
	input.ID = 0
	inputDAO := testCakeDAO
	inputDAO.ID = 0

	d.On("Insert", ctx, inputDAO).Return(testCakeDAO, nil)

	got, err := repo.Insert(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, testCake, got)
	d.AssertExpectations(t)
}

func TestCakeRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("maps every row", func(t *testing.T) {
		d := new(mockCakeDAO)
		second := testCakeDAO
		second.ID = 2
		d.On("FindAll", ctx).Return([]dao.Cake{testCakeDAO, second}, nil)

		got, err := NewCakeRepository(d).FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, testCake, got[0])
		assert.Equal(t, uint(2), got[1].ID)
	})

	t.Run("empty", func(t *testing.T) {
		d := new(mockCakeDAO)
		d.On("FindAll", ctx).Return([]dao.Cake{}, nil)

		got, err := NewCakeRepository(d).FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCakeRepository_FindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	d := new(mockCakeDAO)
	d.On("FindByID", ctx, uint(5)).Return(dao.Cake{}, dao.ErrCakeNotFound)

	_, err := NewCakeRepository(d).FindByID(ctx, 5)
	assert.ErrorIs(t, err, ErrCakeNotFound)
}

func TestCakeRepository_Search(t *testing.T) {
	ctx := context.Background()
	d := new(mockCakeDAO)
	d.On("Search", ctx, "vanilla").Return([]dao.Cake{testCakeDAO}, nil)

	got, err := NewCakeRepository(d).Search(ctx, "vanilla")
	require.NoError(t, err)
	assert.Equal(t, []domain.Cake{testCake}, got)
}

func TestCakeRepository_UpdateByID(t *testing.T) {
	ctx := context.Background()
	d := new(mockCakeDAO)

	price := 12.0
	d.On("UpdateByID", ctx, uint(1), dao.CakeUpdate{Price: &price}).Return(nil)

	err := NewCakeRepository(d).UpdateByID(ctx, 1, domain.CakePatch{Price: &price})
	require.NoError(t, err)
	d.AssertExpectations(t)
}

func TestCakeRepository_DeleteByID_StoreError(t *testing.T) {
	ctx := context.Background()
	d := new(mockCakeDAO)

	storeErr := &dao.StoreError{Op: "delete by id", Err: errors.New("disk I/O error")}
	d.On("DeleteByID", ctx, uint(1)).Return(storeErr)

	err := NewCakeRepository(d).DeleteByID(ctx, 1)

	var got *StoreError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "disk I/O error", got.Error())
}
