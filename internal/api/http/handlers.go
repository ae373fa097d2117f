package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tableside/internal/domain"
	"tableside/internal/service"
)

type Handler struct {
	Accounts service.AccountServiceInterface
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Gate     *service.AccessGate
}

func NewHandler(accounts service.AccountServiceInterface, catalog service.CatalogServiceInterface,
	orders service.OrderServiceInterface, gate *service.AccessGate) *Handler {
	return &Handler{
		Accounts: accounts,
		Catalog:  catalog,
		Orders:   orders,
		Gate:     gate,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/register", h.register).Methods("POST")
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")

	r.HandleFunc("/api/roles", h.getRoles).Methods("GET")
	r.HandleFunc("/api/users/{username}/role", h.getUserRole).Methods("GET")
	r.HandleFunc("/api/statuses", h.getStatusCodes).Methods("GET")
	r.HandleFunc("/api/statuses/{name}", h.getStatusCodeByName).Methods("GET")

	r.HandleFunc("/api/dishes/main", h.getMainDishes).Methods("GET")
	r.HandleFunc("/api/dishes/side", h.getSideDishes).Methods("GET")
	r.HandleFunc("/api/dishes/main/{id}", h.getMainDish).Methods("GET")
	r.HandleFunc("/api/dishes/main/{id}", h.updateMainDish).Methods("PUT")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tableside",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Accounts.Register(payload.Username, payload.Password, payload.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, session, err := h.Accounts.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"session": session,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token := extractToken(r)
	if token == "" {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return
	}
	if err := h.Accounts.Logout(r.Context(), token); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRoles(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "you need to log in", http.StatusUnauthorized)
		return
	}
	if !h.Gate.CanAccess(session, service.ResourceRoles, service.ActionList) {
		http.Error(w, "not an admin", http.StatusForbidden)
		return
	}

	roles, err := h.Catalog.ListRoles()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

func (h *Handler) getUserRole(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "you need to log in", http.StatusUnauthorized)
		return
	}

	roleID, err := h.Accounts.RoleID(mux.Vars(r)["username"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	role, err := h.Catalog.GetRole(roleID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}

func (h *Handler) getStatusCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.Catalog.ListStatusCodes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, codes)
}

func (h *Handler) getStatusCodeByName(w http.ResponseWriter, r *http.Request) {
	code, err := h.Catalog.GetStatusCodeByName(mux.Vars(r)["name"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, code)
}

func (h *Handler) getMainDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Catalog.ListMainDishes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getSideDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Catalog.ListSideDishes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getMainDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	dish, err := h.Catalog.GetMainDish(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) updateMainDish(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "you need to log in", http.StatusUnauthorized)
		return
	}

	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var update domain.DishUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dish, err := h.Catalog.UpdateMainDish(id, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "you need to log in", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Choices []domain.ChoiceRequest `json:"choices"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Create(r.Context(), session.Username, payload.Choices)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "you need to log in", http.StatusUnauthorized)
		return
	}

	orders, err := h.Orders.List(r.Context(), session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "you need to log in", http.StatusUnauthorized)
		return
	}

	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "you need to log in", http.StatusUnauthorized)
		return
	}

	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		StatusID int `json:"status_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.UpdateStatus(r.Context(), id, payload.StatusID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "order status successfully updated"})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "you need to log in", http.StatusUnauthorized)
		return
	}

	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Orders.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.QRCode(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrUnknownStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnknownUser),
		errors.Is(err, service.ErrInvalidPassword):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotAllowed):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrDishNotFound),
		errors.Is(err, service.ErrRoleNotFound),
		errors.Is(err, service.ErrStatusNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
