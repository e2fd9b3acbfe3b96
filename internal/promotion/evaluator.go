package promotion

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pointsledger/internal/domain"
)

var (
	hundred       = decimal.NewFromInt(100)
	centsPerPoint = decimal.NewFromInt(25)
	// largest value a spent column can hold
	maxSpent = decimal.RequireFromString("9999999999.99")
)

// Result is the outcome of evaluating a purchase. Base and each automatic bonus
// are rounded half-up on their own before being summed.
type Result struct {
	Base    int
	Bonus   int
	Applied []int
	OneTime []int
}

func (r *Result) Earned() int {
	return r.Base + r.Bonus
}

type Evaluator struct {
	now func() time.Time
}

func NewEvaluator(now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}
	return &Evaluator{now: now}
}

// Cents converts a currency amount to whole cents. Negative amounts, fractions
// of a cent and amounts past maxSpent are rejected.
func Cents(spent decimal.Decimal) (decimal.Decimal, error) {
	if spent.IsNegative() {
		return decimal.Zero, domain.Invalid("spent must not be negative, got %s", spent)
	}
	if spent.GreaterThan(maxSpent) {
		return decimal.Zero, domain.Invalid("spent exceeds %s, got %s", maxSpent, spent)
	}
	cents := spent.Mul(hundred)
	if !cents.Equal(cents.Truncate(0)) {
		return decimal.Zero, domain.Invalid("spent has sub-cent precision: %s", spent)
	}
	return cents, nil
}

// BasePoints is one point per 25 cents, rounded half-up.
func BasePoints(spent decimal.Decimal) (int, error) {
	cents, err := Cents(spent)
	if err != nil {
		return 0, err
	}
	return int(cents.Div(centsPerPoint).Round(0).IntPart()), nil
}

// Evaluate validates the requested promotions against a purchase and computes
// the points earned. found holds the promotions that exist among requested; used
// is the set of one-time promotions the purchaser has already consumed.
func (e *Evaluator) Evaluate(spent decimal.Decimal, requested []int, found []domain.Promotion, used map[int]bool) (*Result, error) {
	base, err := BasePoints(spent)
	if err != nil {
		return nil, err
	}
	cents, _ := Cents(spent)

	byID := make(map[int]domain.Promotion, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	now := e.now()
	result := &Result{Base: base}
	seen := make(map[int]struct{}, len(requested))
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			return nil, domain.Invalid("promotion %d requested twice", id)
		}
		seen[id] = struct{}{}

		p, ok := byID[id]
		if !ok {
			return nil, domain.NotFound("promotion", id)
		}
		if !p.ActiveAt(now) {
			return nil, wrap(domain.ErrExpired, p)
		}
		if p.MinSpending.Valid && spent.LessThan(p.MinSpending.Decimal) {
			return nil, wrap(domain.ErrIneligiblePromotion, p)
		}

		switch p.Kind {
		case domain.PromotionAutomatic:
			if !p.Rate.Valid || p.Rate.Decimal.IsNegative() {
				return nil, domain.Invalid("promotion %d has no usable rate", p.ID)
			}
			result.Bonus += int(cents.Mul(p.Rate.Decimal).Round(0).IntPart())
		case domain.PromotionOneTime:
			if used[p.ID] {
				return nil, wrap(domain.ErrAlreadyUsed, p)
			}
			result.Bonus += p.Points
			result.OneTime = append(result.OneTime, p.ID)
		default:
			return nil, domain.Invalid("promotion %d has unknown kind %q", p.ID, p.Kind)
		}
		result.Applied = append(result.Applied, p.ID)
	}
	return result, nil
}

func wrap(err error, p domain.Promotion) error {
	return &Error{Err: err, PromotionID: p.ID}
}

// Error names the promotion that failed validation.
type Error struct {
	Err         error
	PromotionID int
}

func (e *Error) Error() string {
	return e.Err.Error() + ": promotion " + strconv.Itoa(e.PromotionID)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validate checks the terms of a promotion before it is stored.
func Validate(p *domain.Promotion) error {
	if p.Name == "" {
		return domain.Invalid("promotion name is required")
	}
	if !p.EndTime.After(p.StartTime) {
		return domain.Invalid("promotion must end after it starts")
	}
	if p.MinSpending.Valid && p.MinSpending.Decimal.IsNegative() {
		return domain.Invalid("minimum spending must not be negative")
	}
	switch p.Kind {
	case domain.PromotionAutomatic:
		if !p.Rate.Valid || !p.Rate.Decimal.IsPositive() {
			return domain.Invalid("automatic promotion requires a positive rate")
		}
		if p.Points != 0 {
			return domain.Invalid("automatic promotion cannot carry fixed points")
		}
	case domain.PromotionOneTime:
		if p.Points <= 0 {
			return domain.Invalid("one-time promotion requires positive points")
		}
		if p.Rate.Valid {
			return domain.Invalid("one-time promotion cannot carry a rate")
		}
	default:
		return domain.Invalid("unknown promotion kind %q", p.Kind)
	}
	return nil
}
