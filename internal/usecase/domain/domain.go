package domain

import (
	"context"
	"time"

	"github.com/Pranshu-project/zyro/config"
	"github.com/Pranshu-project/zyro/internal/cache"
	"github.com/Pranshu-project/zyro/internal/mailer"
	"github.com/Pranshu-project/zyro/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	authCfg config.AuthConfig
	mailer  mailer.Mailer
	cache   cache.DashboardCache
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	authCfg config.AuthConfig,
	m mailer.Mailer,
	c cache.DashboardCache,
) *Usecase {
	if c == nil {
		c = cache.Noop{}
	}
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		timeout: timeout,
		authCfg: authCfg,
		mailer:  m,
		cache:   c,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
