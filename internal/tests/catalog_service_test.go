package tests

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"
)

func TestCatalogService_UpdateMainDish(t *testing.T) {
	tests := []struct {
		name      string
		update    domain.DishUpdate
		setupMock func(*mocks.CatalogRepository)
		wantErr   error
	}{
		{
			name:   "valid update",
			update: domain.DishUpdate{Name: "Lasagne", Photo: "lasagne.png", Price: "8.50", IngredientsCost: "3.20"},
			setupMock: func(m *mocks.CatalogRepository) {
				m.On("UpdateMainDish", mock.AnythingOfType("*domain.Dish")).Return(int64(1), nil).Once()
			},
		},
		{
			name:      "non-numeric price",
			update:    domain.DishUpdate{Name: "Lasagne", Price: "cheap", IngredientsCost: "3.20"},
			setupMock: func(m *mocks.CatalogRepository) {},
			wantErr:   service.ErrInvalidPrice,
		},
		{
			name:      "non-numeric ingredients cost",
			update:    domain.DishUpdate{Name: "Lasagne", Price: "8.50", IngredientsCost: "n/a"},
			setupMock: func(m *mocks.CatalogRepository) {},
			wantErr:   service.ErrInvalidPrice,
		},
		{
			name:   "unknown dish",
			update: domain.DishUpdate{Name: "Lasagne", Price: "8.50", IngredientsCost: "3.20"},
			setupMock: func(m *mocks.CatalogRepository) {
				m.On("UpdateMainDish", mock.AnythingOfType("*domain.Dish")).Return(int64(0), nil).Once()
			},
			wantErr: service.ErrDishNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.CatalogRepository)
			svc := service.NewCatalogService(mockRepo)

			testCase.setupMock(mockRepo)

			dish, err := svc.UpdateMainDish(7, testCase.update)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				mockRepo.AssertExpectations(t)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 7, dish.ID)
			assert.Equal(t, 8.50, dish.Price)
			assert.Equal(t, 3.20, dish.IngredientsCost)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_EmptyCatalogIsNotAnError(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	svc := service.NewCatalogService(mockRepo)

	mockRepo.On("ListMainDishes").Return([]domain.Dish{}, nil).Once()
	mockRepo.On("ListSideDishes").Return([]domain.Dish{}, nil).Once()

	mains, err := svc.ListMainDishes()
	assert.NoError(t, err)
	assert.Empty(t, mains)

	sides, err := svc.ListSideDishes()
	assert.NoError(t, err)
	assert.Empty(t, sides)
}

func TestCatalogService_Lookups(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	svc := service.NewCatalogService(mockRepo)

	mockRepo.On("GetStatusCodeByName", "prepared").
		Return(&domain.StatusCode{ID: 3, Name: "prepared"}, nil).Once()
	mockRepo.On("GetStatusCodeByName", "burnt").Return(nil, sql.ErrNoRows).Once()
	mockRepo.On("GetRole", 99).Return(nil, sql.ErrNoRows).Once()
	mockRepo.On("GetMainDish", 99).Return(nil, sql.ErrNoRows).Once()

	code, err := svc.GetStatusCodeByName("prepared")
	assert.NoError(t, err)
	assert.Equal(t, 3, code.ID)

	_, err = svc.GetStatusCodeByName("burnt")
	assert.ErrorIs(t, err, service.ErrStatusNotFound)

	_, err = svc.GetRole(99)
	assert.ErrorIs(t, err, service.ErrRoleNotFound)

	_, err = svc.GetMainDish(99)
	assert.ErrorIs(t, err, service.ErrDishNotFound)
}
