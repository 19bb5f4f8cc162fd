package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ridloal/storefront-bff/internal/grade/domain"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
)

type GradeService interface {
	GetCurrentLevel(ctx context.Context) (*domain.Progress, error)
}

type gradeServiceImpl struct {
	storeClient storeapi.Client
}

func NewGradeService(sc storeapi.Client) GradeService {
	return &gradeServiceImpl{storeClient: sc}
}

// GetCurrentLevel mengambil /api/me dan /api/grade/point bersamaan; satu gagal, semuanya gagal.
func (s *gradeServiceImpl) GetCurrentLevel(ctx context.Context) (*domain.Progress, error) {
	var (
		me         *domain.UserInfo
		thresholds []domain.Threshold
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		me, err = s.storeClient.GetMe(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		thresholds, err = s.storeClient.GetGradePoints(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load grade data: %w", err)
	}

	progress, err := domain.CalculateProgress(me.Point, me.Grade, thresholds)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
