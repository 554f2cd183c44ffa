package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/cake-api/internal/domain"
	"github.com/vietanh2810/cake-api/internal/repository/dao"
)

var (
	ErrCakeNotFound = dao.ErrCakeNotFound
	ErrEmptyUpdate  = dao.ErrEmptyUpdate
)

type StoreError = dao.StoreError

type CakeDAO interface {
	Insert(ctx context.Context, cake dao.Cake) (dao.Cake, error)
	FindAll(ctx context.Context) ([]dao.Cake, error)
	FindByID(ctx context.Context, id uint) (dao.Cake, error)
	Search(ctx context.Context, term string) ([]dao.Cake, error)
	UpdateByID(ctx context.Context, id uint, update dao.CakeUpdate) error
	DeleteByID(ctx context.Context, id uint) error
}

type CakeRepository struct {
	dao CakeDAO
}

func NewCakeRepository(dao CakeDAO) *CakeRepository {
	return &CakeRepository{
		dao: dao,
	}
}

func (r *CakeRepository) Insert(ctx context.Context, cake domain.Cake) (domain.Cake, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(cake))
	if err != nil {
		return domain.Cake{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CakeRepository) FindAll(ctx context.Context) ([]domain.Cake, error) {
	cakes, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomains(cakes), nil
}

func (r *CakeRepository) FindByID(ctx context.Context, id uint) (domain.Cake, error) {
	cake, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Cake{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(cake), nil
}

func (r *CakeRepository) Search(ctx context.Context, term string) ([]domain.Cake, error) {
	cakes, err := r.dao.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	return r.daosToDomains(cakes), nil
}

func (r *CakeRepository) UpdateByID(ctx context.Context, id uint, patch domain.CakePatch) error {
	update := dao.CakeUpdate{
		Name:        patch.Name,
		Description: patch.Description,
		Flavor:      patch.Flavor,
		Price:       patch.Price,
		IsAvailable: patch.IsAvailable,
	}

	if err := r.dao.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("r.dao.UpdateByID -> %w", err)
	}

	return nil
}

func (r *CakeRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.dao.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteByID -> %w", err)
	}

	return nil
}

func (r *CakeRepository) domainToDao(c domain.Cake) dao.Cake {
	return dao.Cake{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Flavor:      c.Flavor,
		Price:       c.Price,
		IsAvailable: c.IsAvailable,
	}
}

func (r *CakeRepository) daoToDomain(c dao.Cake) domain.Cake {
	return domain.Cake{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Flavor:      c.Flavor,
		Price:       c.Price,
		IsAvailable: c.IsAvailable,
	}
}

func (r *CakeRepository) daosToDomains(cakes []dao.Cake) []domain.Cake {
	result := make([]domain.Cake, 0, len(cakes))
	for _, c := range cakes {
		result = append(result, r.daoToDomain(c))
	}

	return result
}
