package service

import (
	"database/sql"
	"errors"
	"strconv"

	"tableside/internal/domain"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListRoles() ([]domain.Role, error) {
	return s.repo.ListRoles()
}

func (s *CatalogService) GetRole(id int) (*domain.Role, error) {
	role, err := s.repo.GetRole(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoleNotFound
	}
	return role, err
}

func (s *CatalogService) ListStatusCodes() ([]domain.StatusCode, error) {
	return s.repo.ListStatusCodes()
}

func (s *CatalogService) GetStatusCode(id int) (*domain.StatusCode, error) {
	code, err := s.repo.GetStatusCode(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStatusNotFound
	}
	return code, err
}

func (s *CatalogService) GetStatusCodeByName(name string) (*domain.StatusCode, error) {
	code, err := s.repo.GetStatusCodeByName(name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStatusNotFound
	}
	return code, err
}

// An empty catalog is a valid state, not a failure.
func (s *CatalogService) ListMainDishes() ([]domain.Dish, error) {
	return s.repo.ListMainDishes()
}

func (s *CatalogService) ListSideDishes() ([]domain.Dish, error) {
	return s.repo.ListSideDishes()
}

func (s *CatalogService) GetMainDish(id int) (*domain.Dish, error) {
	dish, err := s.repo.GetMainDish(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDishNotFound
	}
	return dish, err
}

func (s *CatalogService) GetSideDish(id int) (*domain.Dish, error) {
	dish, err := s.repo.GetSideDish(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDishNotFound
	}
	return dish, err
}

// UpdateMainDish validates the submitted price fields as floats before
// writing; non-numeric input never reaches the database.
func (s *CatalogService) UpdateMainDish(id int, update domain.DishUpdate) (*domain.Dish, error) {
	price, err := strconv.ParseFloat(update.Price, 64)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	cost, err := strconv.ParseFloat(update.IngredientsCost, 64)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	dish := &domain.Dish{
		ID:              id,
		Name:            update.Name,
		Photo:           update.Photo,
		Price:           price,
		IngredientsCost: cost,
	}

	affected, err := s.repo.UpdateMainDish(dish)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrDishNotFound
	}
	return dish, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
