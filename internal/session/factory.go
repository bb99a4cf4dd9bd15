package session

import (
	"fmt"

	"github.com/amoylab/inventory/internal/common/cnst"
	"github.com/amoylab/inventory/internal/common/config"
	"go.uber.org/zap"
)

// NewStore creates a new session store based on configuration
func NewStore(logger *zap.Logger, cfg *config.SessionConfig) (Store, error) {
	logger.Info("Initializing session store", zap.String("type", cfg.Type))
	switch cfg.Type {
	case cnst.SessionTypeMemory:
		return NewMemoryStore(), nil
	case cnst.SessionTypeRedis:
		return NewRedisStore(cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported session store type: %s", cfg.Type)
	}
}
