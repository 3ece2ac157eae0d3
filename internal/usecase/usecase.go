package usecase

import (
	"context"
	"time"

	"github.com/Pranshu-project/zyro/config"
	"github.com/Pranshu-project/zyro/internal/cache"
	"github.com/Pranshu-project/zyro/internal/mailer"
	"github.com/Pranshu-project/zyro/internal/repository"
	"github.com/Pranshu-project/zyro/internal/usecase/domain"

	"go.uber.org/zap"
)

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	authCfg config.AuthConfig,
	m mailer.Mailer,
	c cache.DashboardCache,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, authCfg, m, c)
}
