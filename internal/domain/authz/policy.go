// Package authz decides which principals may perform which operations.
// Route-level checks only need the minimum role; the helpers here cover the
// cases that depend on the target of the operation.
package authz

import (
	"loyalty/internal/domain/entity"
)

// Operation names an authorised action.
type Operation string

const (
	OpCreatePurchase     Operation = "transaction.purchase"
	OpCreateAdjustment   Operation = "transaction.adjustment"
	OpListTransactions   Operation = "transaction.list"
	OpGetTransaction     Operation = "transaction.get"
	OpSetSuspicious      Operation = "transaction.suspicious"
	OpProcessRedemption  Operation = "transaction.process"
	OpSelfService        Operation = "self"
	OpRegisterUser       Operation = "user.register"
	OpListUsers          Operation = "user.list"
	OpGetUser            Operation = "user.get"
	OpUpdateUser         Operation = "user.update"
	OpCreateEvent        Operation = "event.create"
	OpDeleteEvent        Operation = "event.delete"
	OpManageOrganizers   Operation = "event.organizers"
	OpRemoveGuest        Operation = "event.guests.remove"
	OpViewEvents         Operation = "event.view"
	OpManagePromotions   Operation = "promotion.manage"
	OpViewPromotions     Operation = "promotion.view"
	OpManageEventBudget  Operation = "event.budget"
	OpViewUnpublished    Operation = "event.unpublished"
	OpFilterPromotionAll Operation = "promotion.all"
)

// Policy maps every operation to the least privileged role allowed to run it.
var Policy = map[Operation]entity.Role{
	OpCreatePurchase:     entity.RoleCashier,
	OpCreateAdjustment:   entity.RoleManager,
	OpListTransactions:   entity.RoleManager,
	OpGetTransaction:     entity.RoleManager,
	OpSetSuspicious:      entity.RoleManager,
	OpProcessRedemption:  entity.RoleCashier,
	OpSelfService:        entity.RoleRegular,
	OpRegisterUser:       entity.RoleCashier,
	OpListUsers:          entity.RoleManager,
	OpGetUser:            entity.RoleCashier,
	OpUpdateUser:         entity.RoleManager,
	OpCreateEvent:        entity.RoleManager,
	OpDeleteEvent:        entity.RoleManager,
	OpManageOrganizers:   entity.RoleManager,
	OpRemoveGuest:        entity.RoleManager,
	OpViewEvents:         entity.RoleRegular,
	OpManagePromotions:   entity.RoleManager,
	OpViewPromotions:     entity.RoleRegular,
	OpManageEventBudget:  entity.RoleManager,
	OpViewUnpublished:    entity.RoleManager,
	OpFilterPromotionAll: entity.RoleManager,
}

// MinRole returns the minimum role for op. Unknown operations require a superuser.
func MinRole(op Operation) entity.Role {
	if role, ok := Policy[op]; ok {
		return role
	}

	return entity.RoleSuperuser
}

// Allowed reports whether role may perform op.
func Allowed(role entity.Role, op Operation) bool {
	return role.AtLeast(MinRole(op))
}

// CanAssignRole reports whether actor may give target to another user.
// Managers may only hand out cashier and regular; superusers may hand out anything.
func CanAssignRole(actor, target entity.Role) bool {
	if !target.IsValid() {
		return false
	}

	switch {
	case actor.AtLeast(entity.RoleSuperuser):
		return true
	case actor.AtLeast(entity.RoleManager):
		return target == entity.RoleCashier || target == entity.RoleRegular
	default:
		return false
	}
}

// CanManageEvent reports whether the principal may edit the event and its guests.
func CanManageEvent(actorID int64, role entity.Role, event *entity.Event) bool {
	return role.AtLeast(entity.RoleManager) || event.IsOrganizer(actorID)
}
