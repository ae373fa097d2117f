package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"tableside/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the tables and seeds the role and status catalogs.
// Safe to run on every start.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id SERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS status_codes (
			id SERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			role_id INTEGER REFERENCES roles(id))`,
		`CREATE TABLE IF NOT EXISTS main_dishes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			photo TEXT DEFAULT '',
			price NUMERIC(10,2) DEFAULT 0,
			ingredients_cost NUMERIC(10,2) DEFAULT 0)`,
		`CREATE TABLE IF NOT EXISTS side_dishes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			photo TEXT DEFAULT '',
			price NUMERIC(10,2) DEFAULT 0,
			ingredients_cost NUMERIC(10,2) DEFAULT 0)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer TEXT DEFAULT '',
			status_id INTEGER NOT NULL REFERENCES status_codes(id),
			qr_code BYTEA,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`,
		`CREATE TABLE IF NOT EXISTS order_choices (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id),
			main_dish_id INTEGER NOT NULL REFERENCES main_dishes(id),
			side_dish_id INTEGER NOT NULL REFERENCES side_dishes(id),
			quantity INTEGER NOT NULL)`,
		`INSERT INTO roles (name) VALUES ('admin'), ('waiting'), ('kitchen'), ('customer')
			ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO status_codes (name) VALUES ('waiting'), ('kitchen'), ('prepared')
			ON CONFLICT (name) DO NOTHING`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(
		"INSERT INTO users (username, password_hash, email, role_id) VALUES ($1, $2, $3, $4) RETURNING id",
		user.Username, user.PasswordHash, user.Email, user.RoleID,
	).Scan(&user.ID)
}

func (r *PostgresRepository) GetUserByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, username, password_hash, email, role_id FROM users WHERE username = $1",
		username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.RoleID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CountByUsername(username string) (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(id) FROM users WHERE username = $1", username).Scan(&count)
	return count, err
}

func (r *PostgresRepository) CountByEmail(email string) (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(id) FROM users WHERE email = $1", email).Scan(&count)
	return count, err
}

func (r *PostgresRepository) ListRoles() ([]domain.Role, error) {
	rows, err := r.DB.Query("SELECT id, name FROM roles ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			continue
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *PostgresRepository) GetRole(id int) (*domain.Role, error) {
	var role domain.Role
	err := r.DB.QueryRow("SELECT id, name FROM roles WHERE id = $1", id).
		Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *PostgresRepository) GetRoleByName(name string) (*domain.Role, error) {
	var role domain.Role
	err := r.DB.QueryRow("SELECT id, name FROM roles WHERE name = $1", name).
		Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *PostgresRepository) ListStatusCodes() ([]domain.StatusCode, error) {
	rows, err := r.DB.Query("SELECT id, name FROM status_codes ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := []domain.StatusCode{}
	for rows.Next() {
		var code domain.StatusCode
		if err := rows.Scan(&code.ID, &code.Name); err != nil {
			continue
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (r *PostgresRepository) GetStatusCode(id int) (*domain.StatusCode, error) {
	var code domain.StatusCode
	err := r.DB.QueryRow("SELECT id, name FROM status_codes WHERE id = $1", id).
		Scan(&code.ID, &code.Name)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *PostgresRepository) GetStatusCodeByName(name string) (*domain.StatusCode, error) {
	var code domain.StatusCode
	err := r.DB.QueryRow("SELECT id, name FROM status_codes WHERE name = $1", name).
		Scan(&code.ID, &code.Name)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *PostgresRepository) StatusCodeExists(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM status_codes WHERE id = $1)", id).
		Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) listDishes(table string) ([]domain.Dish, error) {
	rows, err := r.DB.Query(fmt.Sprintf(
		"SELECT id, name, COALESCE(photo, ''), price, ingredients_cost FROM %s ORDER BY id", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Photo, &dish.Price, &dish.IngredientsCost); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) ListMainDishes() ([]domain.Dish, error) {
	return r.listDishes("main_dishes")
}

func (r *PostgresRepository) ListSideDishes() ([]domain.Dish, error) {
	return r.listDishes("side_dishes")
}

func (r *PostgresRepository) getDish(table string, id int) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(fmt.Sprintf(
		"SELECT id, name, COALESCE(photo, ''), price, ingredients_cost FROM %s WHERE id = $1", table), id).
		Scan(&dish.ID, &dish.Name, &dish.Photo, &dish.Price, &dish.IngredientsCost)
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) GetMainDish(id int) (*domain.Dish, error) {
	return r.getDish("main_dishes", id)
}

func (r *PostgresRepository) GetSideDish(id int) (*domain.Dish, error) {
	return r.getDish("side_dishes", id)
}

func (r *PostgresRepository) UpdateMainDish(dish *domain.Dish) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE main_dishes
		SET name=$1, photo=$2, price=$3, ingredients_cost=$4
		WHERE id=$5`,
		dish.Name, dish.Photo, dish.Price, dish.IngredientsCost, dish.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CreateOrder inserts the header and every choice in one transaction. A
// failed choice insert rolls back the header.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (customer, status_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, order.Customer, order.StatusID).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Choices {
		choice := &order.Choices[i]
		choice.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_choices (order_id, main_dish_id, side_dish_id, quantity)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, choice.OrderID, choice.MainDishID, choice.SideDishID, choice.Quantity).Scan(&choice.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListOrders returns orders with status names resolved, oldest first. An
// empty statusNames slice means no filter.
func (r *PostgresRepository) ListOrders(statusNames []string) ([]domain.Order, error) {
	query := `
		SELECT o.id, o.customer, o.status_id, sc.name, o.created_at
		FROM orders o
		JOIN status_codes sc ON o.status_id = sc.id`
	args := []interface{}{}
	if len(statusNames) > 0 {
		query += " WHERE sc.name = ANY($1)"
		args = append(args, pq.Array(statusNames))
	}
	query += " ORDER BY o.id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Customer, &order.StatusID, &order.StatusName, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT o.id, o.customer, o.status_id, sc.name, o.created_at
		FROM orders o
		JOIN status_codes sc ON o.status_id = sc.id
		WHERE o.id = $1
	`, orderID).Scan(&order.ID, &order.Customer, &order.StatusID, &order.StatusName, &order.CreatedAt); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT oc.id, oc.order_id, oc.main_dish_id, md.name, oc.side_dish_id, sd.name, oc.quantity
		FROM order_choices oc
		JOIN main_dishes md ON oc.main_dish_id = md.id
		JOIN side_dishes sd ON oc.side_dish_id = sd.id
		WHERE oc.order_id = $1
		ORDER BY oc.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Choices = []domain.OrderChoice{}
	for rows.Next() {
		var choice domain.OrderChoice
		if err := rows.Scan(&choice.ID, &choice.OrderID, &choice.MainDishID, &choice.MainDishName,
			&choice.SideDishID, &choice.SideDishName, &choice.Quantity); err != nil {
			continue
		}
		order.Choices = append(order.Choices, choice)
	}
	return &order, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(orderID, statusID int) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status_id = $1 WHERE id = $2", statusID, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteOrder removes the choices before the header, both inside one
// transaction. Returns the number of deleted headers.
func (r *PostgresRepository) DeleteOrder(orderID int) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM order_choices WHERE order_id = $1", orderID); err != nil {
		return 0, err
	}

	result, err := tx.Exec("DELETE FROM orders WHERE id = $1", orderID)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}
