package membership

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
)

// Source источник членств (HTTP клиент MembershipService)
type Source interface {
	GetMemberships(ctx context.Context, userID string) ([]membershipservice.Membership, error)
}

// Store хранилище закэшированных значений.
// Get возвращает ErrCacheMiss, если ключа нет.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
