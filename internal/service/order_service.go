package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"tableside/internal/domain"
)

const initialStatusName = "waiting"

type OrderService struct {
	repo      OrderRepository
	gate      *AccessGate
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, gate *AccessGate, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, gate: gate, publisher: publisher, qrEncoder: qr}
}

// Create inserts the order header and all choices as one unit. The receipt
// QR and the lifecycle event are best-effort and never fail the order.
func (s *OrderService) Create(ctx context.Context, customer string, choices []domain.ChoiceRequest) (*domain.Order, error) {
	if len(choices) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, choice := range choices {
		if choice.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	status, err := s.repo.GetStatusCodeByName(initialStatusName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve initial status: %w", err)
	}

	order := &domain.Order{
		Customer:   customer,
		StatusID:   status.ID,
		StatusName: status.Name,
		Choices:    make([]domain.OrderChoice, len(choices)),
	}
	for i, choice := range choices {
		order.Choices[i] = domain.OrderChoice{
			MainDishID: choice.MainDishID,
			SideDishID: choice.SideDishID,
			Quantity:   choice.Quantity,
		}
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	s.publish(ctx, domain.OrderEvent{
		Type:      "order_created",
		OrderID:   order.ID,
		StatusID:  order.StatusID,
		Customer:  customer,
		Timestamp: time.Now(),
	})

	return order, nil
}

// List applies the caller's role-visible status subset; staff see their
// station's orders, everyone else sees all of them.
func (s *OrderService) List(ctx context.Context, session *domain.Session) ([]domain.Order, error) {
	var statusNames []string
	if session != nil {
		statusNames = s.gate.VisibleStatuses(session.RoleName)
	}
	return s.repo.ListOrders(statusNames)
}

func (s *OrderService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// UpdateStatus allows any catalog status to be assigned to any order; the
// lifecycle graph is deliberately unenforced.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, statusID int) error {
	exists, err := s.repo.StatusCodeExists(statusID)
	if err != nil {
		return fmt.Errorf("failed to check status code: %w", err)
	}
	if !exists {
		return ErrUnknownStatus
	}

	affected, err := s.repo.UpdateOrderStatus(orderID, statusID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	s.publish(ctx, domain.OrderEvent{
		Type:      "status_changed",
		OrderID:   orderID,
		StatusID:  statusID,
		Timestamp: time.Now(),
	})
	return nil
}

// Delete removes the order and all its choices as one atomic operation.
func (s *OrderService) Delete(ctx context.Context, orderID int) error {
	affected, err := s.repo.DeleteOrder(orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	s.publish(ctx, domain.OrderEvent{
		Type:      "order_deleted",
		OrderID:   orderID,
		Timestamp: time.Now(),
	})
	return nil
}

func (s *OrderService) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for order %d: %v", event.Type, event.OrderID, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
