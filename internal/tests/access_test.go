package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableside/internal/domain"
	"tableside/internal/service"
)

func TestAccessGate_CanAccess(t *testing.T) {
	gate := service.NewAccessGate()
	admin := &domain.Session{Username: "boss", RoleID: 1, RoleName: "admin"}
	waiter := &domain.Session{Username: "w", RoleID: 2, RoleName: "waiting"}

	tests := []struct {
		name     string
		session  *domain.Session
		resource string
		action   string
		want     bool
	}{
		{"unauthenticated order create", nil, service.ResourceOrders, service.ActionCreate, false},
		{"unauthenticated role list", nil, service.ResourceRoles, service.ActionList, false},
		{"admin role list", admin, service.ResourceRoles, service.ActionList, true},
		{"waiter role list", waiter, service.ResourceRoles, service.ActionList, false},
		{"waiter order create", waiter, service.ResourceOrders, service.ActionCreate, true},
		{"waiter order delete", waiter, service.ResourceOrders, service.ActionDelete, true},
		{"waiter dish update", waiter, service.ResourceDishes, service.ActionUpdate, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, gate.CanAccess(testCase.session, testCase.resource, testCase.action))
		})
	}
}

func TestAccessGate_VisibleStatuses(t *testing.T) {
	gate := service.NewAccessGate()

	assert.Equal(t, []string{"waiting"}, gate.VisibleStatuses("waiting"))
	assert.Equal(t, []string{"kitchen"}, gate.VisibleStatuses("kitchen"))
	assert.Nil(t, gate.VisibleStatuses("admin"))
	assert.Nil(t, gate.VisibleStatuses("customer"))
	assert.Nil(t, gate.VisibleStatuses(""))
}
