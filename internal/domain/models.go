package domain

import "time"

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	RoleID       int    `json:"role_id"`
}

type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type StatusCode struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Dish struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Photo           string  `json:"photo"`
	Price           float64 `json:"price"`
	IngredientsCost float64 `json:"ingredients_cost"`
}

// DishUpdate carries raw form input; price fields are validated as floats
// before anything touches the database.
type DishUpdate struct {
	Name            string `json:"name"`
	Photo           string `json:"photo"`
	Price           string `json:"price"`
	IngredientsCost string `json:"ingredients_cost"`
}

type Order struct {
	ID         int           `json:"id"`
	Customer   string        `json:"customer"`
	StatusID   int           `json:"status_id"`
	StatusName string        `json:"status"`
	QRCode     string        `json:"qr_code,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	Choices    []OrderChoice `json:"choices"`
}

type OrderChoice struct {
	ID           int    `json:"id"`
	OrderID      int    `json:"order_id"`
	MainDishID   int    `json:"main_dish_id"`
	MainDishName string `json:"main_dish_name,omitempty"`
	SideDishID   int    `json:"side_dish_id"`
	SideDishName string `json:"side_dish_name,omitempty"`
	Quantity     int    `json:"quantity"`
}

// ChoiceRequest is one submitted line item of a new order.
type ChoiceRequest struct {
	MainDishID int `json:"main_dish_id"`
	SideDishID int `json:"side_dish_id"`
	Quantity   int `json:"quantity"`
}

// Session is the per-request identity snapshot. The role id is the
// authoritative value; the name is resolved once at login for display and
// gate checks.
type Session struct {
	Username  string    `json:"username"`
	RoleID    int       `json:"role_id"`
	RoleName  string    `json:"role_name"`
	LoginTime time.Time `json:"login_time"`
}

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	StatusID  int       `json:"status_id,omitempty"`
	Customer  string    `json:"customer,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
