package authz

import (
	"testing"

	"loyalty/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		role     entity.Role
		op       Operation
		expected bool
	}{
		{name: "cashier records purchase", role: entity.RoleCashier, op: OpCreatePurchase, expected: true},
		{name: "regular cannot record purchase", role: entity.RoleRegular, op: OpCreatePurchase, expected: false},
		{name: "cashier cannot adjust", role: entity.RoleCashier, op: OpCreateAdjustment, expected: false},
		{name: "superuser inherits manager", role: entity.RoleSuperuser, op: OpSetSuspicious, expected: true},
		{name: "unknown role denied", role: entity.Role("guest"), op: OpSelfService, expected: false},
		{name: "unknown operation needs superuser", role: entity.RoleManager, op: Operation("nope"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Allowed(tt.role, tt.op))
		})
	}
}

func TestCanAssignRole(t *testing.T) {
	t.Parallel()

	assert.True(t, CanAssignRole(entity.RoleManager, entity.RoleCashier))
	assert.True(t, CanAssignRole(entity.RoleManager, entity.RoleRegular))
	assert.False(t, CanAssignRole(entity.RoleManager, entity.RoleManager))
	assert.False(t, CanAssignRole(entity.RoleManager, entity.RoleSuperuser))
	assert.True(t, CanAssignRole(entity.RoleSuperuser, entity.RoleSuperuser))
	assert.False(t, CanAssignRole(entity.RoleCashier, entity.RoleRegular))
	assert.False(t, CanAssignRole(entity.RoleSuperuser, entity.Role("owner")))
}

func TestCanManageEvent(t *testing.T) {
	t.Parallel()

	event := &entity.Event{Organizers: []entity.UserRef{{ID: 4, Utorid: "organ004"}}}

	assert.True(t, CanManageEvent(4, entity.RoleRegular, event))
	assert.False(t, CanManageEvent(5, entity.RoleCashier, event))
	assert.True(t, CanManageEvent(5, entity.RoleManager, event))
}
