package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pointsledger/internal/domain"
)

type PromotionRequestDTO struct {
	Name        string               `json:"name" example:"double tuesday"`
	Kind        domain.PromotionKind `json:"kind" swaggertype:"string" example:"automatic"`
	StartTime   time.Time            `json:"start_time" example:"2024-09-01T00:00:00Z"`
	EndTime     time.Time            `json:"end_time" example:"2024-09-30T23:59:59Z"`
	MinSpending *decimal.Decimal     `json:"min_spending,omitempty" swaggertype:"string" example:"10.00"`
	Rate        *decimal.Decimal     `json:"rate,omitempty" swaggertype:"string" example:"0.01"`
	Points      int                  `json:"points,omitempty" example:"0"`
}

type PromotionResponseDTO struct {
	ID          int                  `json:"id" example:"3"`
	Name        string               `json:"name"`
	Kind        domain.PromotionKind `json:"kind" swaggertype:"string"`
	StartTime   time.Time            `json:"start_time"`
	EndTime     time.Time            `json:"end_time"`
	MinSpending *string              `json:"min_spending,omitempty"`
	Rate        *string              `json:"rate,omitempty"`
	Points      int                  `json:"points,omitempty"`
}

func (r PromotionRequestDTO) Promotion() *domain.Promotion {
	p := &domain.Promotion{
		Name:      r.Name,
		Kind:      r.Kind,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Points:    r.Points,
	}
	if r.MinSpending != nil {
		p.MinSpending = decimal.NewNullDecimal(*r.MinSpending)
	}
	if r.Rate != nil {
		p.Rate = decimal.NewNullDecimal(*r.Rate)
	}
	return p
}

func NewPromotionResponse(p *domain.Promotion) PromotionResponseDTO {
	resp := PromotionResponseDTO{
		ID:        p.ID,
		Name:      p.Name,
		Kind:      p.Kind,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		Points:    p.Points,
	}
	if p.MinSpending.Valid {
		s := p.MinSpending.Decimal.StringFixed(2)
		resp.MinSpending = &s
	}
	if p.Rate.Valid {
		s := p.Rate.Decimal.String()
		resp.Rate = &s
	}
	return resp
}
