package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tableside/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) GetUserByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) CountByUsername(username string) (int, error) {
	args := m.Called(username)
	return args.Int(0), args.Error(1)
}

func (m *UserRepository) CountByEmail(email string) (int, error) {
	args := m.Called(email)
	return args.Int(0), args.Error(1)
}

func (m *UserRepository) GetRoleByName(name string) (*domain.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *UserRepository) GetRole(id int) (*domain.Role, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) ListRoles() ([]domain.Role, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *CatalogRepository) GetRole(id int) (*domain.Role, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *CatalogRepository) GetRoleByName(name string) (*domain.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *CatalogRepository) ListStatusCodes() ([]domain.StatusCode, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCode), args.Error(1)
}

func (m *CatalogRepository) GetStatusCode(id int) (*domain.StatusCode, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusCode), args.Error(1)
}

func (m *CatalogRepository) GetStatusCodeByName(name string) (*domain.StatusCode, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusCode), args.Error(1)
}

func (m *CatalogRepository) ListMainDishes() ([]domain.Dish, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dish), args.Error(1)
}

func (m *CatalogRepository) ListSideDishes() ([]domain.Dish, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dish), args.Error(1)
}

func (m *CatalogRepository) GetMainDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *CatalogRepository) GetSideDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *CatalogRepository) UpdateMainDish(dish *domain.Dish) (int64, error) {
	args := m.Called(dish)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) ListOrders(statusNames []string) ([]domain.Order, error) {
	args := m.Called(statusNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(orderID, statusID int) (int64, error) {
	args := m.Called(orderID, statusID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) DeleteOrder(orderID int) (int64, error) {
	args := m.Called(orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) StatusCodeExists(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) GetStatusCodeByName(name string) (*domain.StatusCode, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusCode), args.Error(1)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Save(ctx context.Context, token string, session *domain.Session) error {
	return m.Called(ctx, token, session).Error(0)
}

func (m *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
