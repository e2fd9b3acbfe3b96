package promotionservice

import (
	"context"

	"github.com/GlebRadaev/pointsledger/internal/authz"
	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/promotion"
	"go.uber.org/zap"
)

//go:generate mockgen -source=promotionservice.go -destination=mock_promotionservice.go -package=promotionservice

type Repo interface {
	Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	FindByID(ctx context.Context, id int) (*domain.Promotion, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreatePromotion(ctx context.Context, actor domain.Actor, p *domain.Promotion) (*domain.Promotion, error) {
	if err := authz.Authorize(actor, authz.CreatePromotion); err != nil {
		return nil, err
	}
	if err := promotion.Validate(p); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		zap.L().Error("failed to create promotion", zap.String("name", p.Name), zap.Error(err))
		return nil, err
	}
	zap.L().Info("promotion created", zap.Int("promotion_id", created.ID), zap.Int("actor_id", actor.UserID))
	return created, nil
}

func (s *Service) GetPromotion(ctx context.Context, id int) (*domain.Promotion, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get promotion", zap.Int("promotion_id", id), zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("promotion", id)
	}
	return p, nil
}
