package transactionservice

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointsledger/internal/authz"
	"github.com/GlebRadaev/pointsledger/internal/domain"
)

// AwardEventPoints pays pointsPerGuest out of the event budget, either to a
// single guest or, when targetUserID is nil, to every checked-in guest. The
// whole batch commits together and the budget never goes negative.
func (s *Service) AwardEventPoints(
	ctx context.Context,
	actor domain.Actor,
	eventID int,
	targetUserID *int,
	pointsPerGuest int,
	remark string,
) ([]domain.Transaction, error) {
	if err := s.authorizeAward(ctx, actor, eventID); err != nil {
		return nil, err
	}
	if pointsPerGuest <= 0 {
		return nil, domain.Invalid("event award must be positive")
	}

	var awarded []domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		event, err := s.events.FindByIDForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if event == nil {
			return domain.NotFound("event", eventID)
		}

		guests, err := s.awardees(ctx, eventID, targetUserID)
		if err != nil {
			return err
		}
		// compare per guest so the batch total is only formed once it fits the budget
		if pointsPerGuest > event.PointsRemain/len(guests) {
			return &domain.InsufficientFundsError{
				Available: event.PointsRemain,
				Requested: requestedTotal(pointsPerGuest, len(guests)),
			}
		}
		total := pointsPerGuest * len(guests)

		txs, err := s.factory.EventAward(eventID, actor.UserID, guests, pointsPerGuest, remark)
		if err != nil {
			return err
		}
		if _, err := s.events.SpendPoints(ctx, eventID, total); err != nil {
			return err
		}
		if _, err := s.lockUsers(ctx, guests...); err != nil {
			return err
		}
		if err := s.txs.CreateBatch(ctx, txs); err != nil {
			return err
		}
		for _, tx := range txs {
			if err := s.credit(ctx, tx.UserID, tx.Amount); err != nil {
				return err
			}
		}
		awarded = txs
		return nil
	})
	if err != nil {
		logFailure("award_event_points", actor, err)
		return nil, err
	}

	zap.L().Info("event points awarded",
		zap.Int("event_id", eventID),
		zap.Int("guests", len(awarded)),
		zap.Int("points_per_guest", pointsPerGuest),
	)
	return awarded, nil
}

func (s *Service) authorizeAward(ctx context.Context, actor domain.Actor, eventID int) error {
	if authz.Allowed(actor, authz.AwardEventPoints) {
		return nil
	}
	organizer, err := s.events.IsOrganizer(ctx, eventID, actor.UserID)
	if err != nil {
		return err
	}
	return authz.Authorize(actor, authz.AwardEventPoints, authz.AsOrganizer(organizer))
}

// awardees resolves who receives an award. A named target must be on the
// guest list; otherwise every checked-in guest is paid.
func (s *Service) awardees(ctx context.Context, eventID int, targetUserID *int) ([]int, error) {
	if targetUserID != nil {
		guest, err := s.events.FindGuest(ctx, eventID, *targetUserID)
		if err != nil {
			return nil, err
		}
		if guest == nil {
			return nil, domain.Invalid("user %d is not a guest of event %d", *targetUserID, eventID)
		}
		return []int{guest.UserID}, nil
	}
	guests, err := s.events.CheckedInGuests(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return nil, domain.Invalid("event %d has no checked-in guests", eventID)
	}
	return guests, nil
}

// requestedTotal is pointsPerGuest*guests, saturating at math.MaxInt.
func requestedTotal(pointsPerGuest, guests int) int {
	if pointsPerGuest > math.MaxInt/guests {
		return math.MaxInt
	}
	return pointsPerGuest * guests
}
