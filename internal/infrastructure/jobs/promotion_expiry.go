package jobs

import (
	"context"
	"time"

	"feastly.backend/internal/domain/repositories"
	"feastly.backend/pkg/logger"
	"go.uber.org/zap"
)

// PromotionExpiryJob unpromotes restaurants whose promotion window has
// lapsed.
type PromotionExpiryJob struct {
	repo     repositories.RestaurantRepository
	interval time.Duration
	stop     chan struct{}
}

func NewPromotionExpiryJob(repo repositories.RestaurantRepository, interval time.Duration) *PromotionExpiryJob {
	return &PromotionExpiryJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *PromotionExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting promotion expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Promotion expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Promotion expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *PromotionExpiryJob) Stop() {
	close(j.stop)
}

func (j *PromotionExpiryJob) sweep(ctx context.Context) {
	affected, err := j.repo.ExpirePromotions(ctx, time.Now())
	if err != nil {
		logger.Error(ctx, "Error expiring restaurant promotions", zap.Error(err))
		return
	}
	if affected > 0 {
		logger.Info(ctx, "Expired restaurant promotions", zap.Int64("count", affected))
	}
}
