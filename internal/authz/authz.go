package authz

import (
	"fmt"

	"github.com/GlebRadaev/pointsledger/internal/domain"
)

type Operation string

const (
	RecordPurchase    Operation = "record_purchase"
	RecordAdjustment  Operation = "record_adjustment"
	CreateRedemption  Operation = "create_redemption"
	ProcessRedemption Operation = "process_redemption"
	CreateTransfer    Operation = "create_transfer"
	AwardEventPoints  Operation = "award_event_points"
	SetSuspicious     Operation = "set_suspicious"
	CreatePromotion   Operation = "create_promotion"
	ReadLedger        Operation = "read_ledger"
)

// minimumRole is the single permission table for every ledger operation.
// Event awards and ledger reads also admit callers below the minimum, see Authorize.
var minimumRole = map[Operation]domain.Role{
	RecordPurchase:    domain.RoleCashier,
	RecordAdjustment:  domain.RoleManager,
	CreateRedemption:  domain.RoleRegular,
	ProcessRedemption: domain.RoleCashier,
	CreateTransfer:    domain.RoleRegular,
	AwardEventPoints:  domain.RoleManager,
	SetSuspicious:     domain.RoleManager,
	CreatePromotion:   domain.RoleManager,
	ReadLedger:        domain.RoleManager,
}

// Allowed reports whether the actor's role alone permits op.
func Allowed(actor domain.Actor, op Operation) bool {
	min, ok := minimumRole[op]
	if !ok {
		return false
	}
	return actor.Role.AtLeast(min)
}

// Authorize returns ErrForbidden unless op is permitted for actor.
// Self-scoped reads pass for the owner, event awards pass for organizers.
func Authorize(actor domain.Actor, op Operation, opts ...Option) error {
	var c check
	for _, opt := range opts {
		opt(&c)
	}
	if !actor.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrForbidden, actor.Role)
	}
	if Allowed(actor, op) {
		return nil
	}
	if op == AwardEventPoints && c.organizer {
		return nil
	}
	if op == ReadLedger && c.owner != 0 && c.owner == actor.UserID {
		return nil
	}
	return fmt.Errorf("%w: %s requires %s", domain.ErrForbidden, op, minimumRole[op])
}

type check struct {
	organizer bool
	owner     int
}

type Option func(*check)

// AsOrganizer marks the actor as an organizer of the event being awarded.
func AsOrganizer(isOrganizer bool) Option {
	return func(c *check) { c.organizer = isOrganizer }
}

// OwnedBy names the user whose ledger is being read.
func OwnedBy(userID int) Option {
	return func(c *check) { c.owner = userID }
}
