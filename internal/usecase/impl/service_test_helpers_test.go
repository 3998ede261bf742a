package impl

import (
	"io"
	"log/slog"

	"larder/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(defaultLimit, maxLimit int) *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			DefaultLimit: defaultLimit,
			MaxLimit:     maxLimit,
		},
	}
}
