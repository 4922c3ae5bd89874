package memory

import "context"

// Config selects the transcript backend. DatabaseURL wins over RedisAddr;
// with neither set the store is in-process only.
type Config struct {
	DatabaseURL string
	RedisAddr   string
}

func NewStore(ctx context.Context, cfg Config) (Store, string, error) {
	if cfg.DatabaseURL != "" {
		store, err := NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, "", err
		}
		return store, "postgres", nil
	}
	if cfg.RedisAddr != "" {
		store, err := NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, "", err
		}
		return store, "redis", nil
	}
	return NewInMemoryStore(), "inmemory", nil
}
