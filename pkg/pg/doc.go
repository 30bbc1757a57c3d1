// Package pg bootstraps the PostgreSQL platform store: pooled connectivity
// via pgx/v5, goose schema migrations, and a health probe.
//
// The platform store holds control-plane data shared across all tenants,
// most importantly the tenant registry and user accounts. Per-tenant
// business data lives elsewhere (see pkg/storage); nothing in this package
// is tenant-scoped.
//
// Typical boot sequence:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//		return err
//	}
//
// IsNotFound classifies the no-rows result that repositories branch on,
// so they do not need to import pgx directly.
package pg
