package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/cake-api/internal/domain"
	"github.com/vietanh2810/cake-api/internal/repository"
)

var (
	ErrCakeNotFound = repository.ErrCakeNotFound
	ErrEmptyUpdate  = repository.ErrEmptyUpdate
)

type StoreError = repository.StoreError

type CakeRepository interface {
	Insert(ctx context.Context, cake domain.Cake) (domain.Cake, error)
	FindAll(ctx context.Context) ([]domain.Cake, error)
	FindByID(ctx context.Context, id uint) (domain.Cake, error)
	Search(ctx context.Context, term string) ([]domain.Cake, error)
	UpdateByID(ctx context.Context, id uint, patch domain.CakePatch) error
	DeleteByID(ctx context.Context, id uint) error
}

type CakeService struct {
	repo CakeRepository
}

func NewCakeService(repo CakeRepository) *CakeService {
	return &CakeService{
		repo: repo,
	}
}

func (s *CakeService) CreateCake(ctx context.Context, cake domain.Cake) (domain.Cake, error) {
	created, err := s.repo.Insert(ctx, cake)
	if err != nil {
		return domain.Cake{}, fmt.Errorf("s.repo.Insert -> %w", err)
	}

	return created, nil
}

func (s *CakeService) ListCakes(ctx context.Context) ([]domain.Cake, error) {
	cakes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return cakes, nil
}

func (s *CakeService) GetCake(ctx context.Context, id uint) (domain.Cake, error) {
	cake, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Cake{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return cake, nil
}

func (s *CakeService) SearchCakes(ctx context.Context, term string) ([]domain.Cake, error) {
	cakes, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return cakes, nil
}

// UpdateCake writes patch and then reads the row back. The two steps are not
// atomic: a delete landing in between is reported as ErrCakeNotFound.
func (s *CakeService) UpdateCake(ctx context.Context, id uint, patch domain.CakePatch) (domain.Cake, error) {
	if patch.IsEmpty() {
		return domain.Cake{}, ErrEmptyUpdate
	}

	if err := s.repo.UpdateByID(ctx, id, patch); err != nil {
		return domain.Cake{}, fmt.Errorf("s.repo.UpdateByID -> %w", err)
	}

	cake, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCakeNotFound) {
			return domain.Cake{}, fmt.Errorf("read back after update -> %w", err)
		}

		return domain.Cake{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return cake, nil
}

func (s *CakeService) DeleteCake(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteByID -> %w", err)
	}

	return nil
}
