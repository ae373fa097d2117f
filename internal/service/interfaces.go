package service

import (
	"context"

	"tableside/internal/domain"
)

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByUsername(username string) (*domain.User, error)
	CountByUsername(username string) (int, error)
	CountByEmail(email string) (int, error)
	GetRoleByName(name string) (*domain.Role, error)
	GetRole(id int) (*domain.Role, error)
}

type CatalogRepository interface {
	ListRoles() ([]domain.Role, error)
	GetRole(id int) (*domain.Role, error)
	GetRoleByName(name string) (*domain.Role, error)
	ListStatusCodes() ([]domain.StatusCode, error)
	GetStatusCode(id int) (*domain.StatusCode, error)
	GetStatusCodeByName(name string) (*domain.StatusCode, error)
	ListMainDishes() ([]domain.Dish, error)
	ListSideDishes() ([]domain.Dish, error)
	GetMainDish(id int) (*domain.Dish, error)
	GetSideDish(id int) (*domain.Dish, error)
	UpdateMainDish(dish *domain.Dish) (int64, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	ListOrders(statusNames []string) ([]domain.Order, error)
	GetOrder(orderID int) (*domain.Order, error)
	UpdateOrderStatus(orderID, statusID int) (int64, error)
	DeleteOrder(orderID int) (int64, error)
	StatusCodeExists(id int) (bool, error)
	GetStatusCodeByName(name string) (*domain.StatusCode, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type SessionStore interface {
	Save(ctx context.Context, token string, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type AccountServiceInterface interface {
	Register(username, password, email string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.Session, error)
	Logout(ctx context.Context, token string) error
	RoleID(username string) (int, error)
}

type CatalogServiceInterface interface {
	ListRoles() ([]domain.Role, error)
	GetRole(id int) (*domain.Role, error)
	ListStatusCodes() ([]domain.StatusCode, error)
	GetStatusCode(id int) (*domain.StatusCode, error)
	GetStatusCodeByName(name string) (*domain.StatusCode, error)
	ListMainDishes() ([]domain.Dish, error)
	ListSideDishes() ([]domain.Dish, error)
	GetMainDish(id int) (*domain.Dish, error)
	GetSideDish(id int) (*domain.Dish, error)
	UpdateMainDish(id int, update domain.DishUpdate) (*domain.Dish, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, customer string, choices []domain.ChoiceRequest) (*domain.Order, error)
	List(ctx context.Context, session *domain.Session) ([]domain.Order, error)
	Get(ctx context.Context, orderID int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, statusID int) error
	Delete(ctx context.Context, orderID int) error
	QRCode(ctx context.Context, orderID int) ([]byte, error)
}
