package bootstrap

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/infra/db"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(InitSchema),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func InitSchema(pool *pgxpool.Pool) error {
	return db.InitSchema(context.Background(), pool)
}
