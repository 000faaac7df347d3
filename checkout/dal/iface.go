package dal

import (
	"context"
	"time"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
)

// UpdateFunc mutates a session while the registry lock is held, making
// check-and-set sequences atomic with respect to concurrent requests.
type UpdateFunc func(s *domain.CheckoutSession) error

//go:generate mockery --name Sessions --output ./mocks
type Sessions interface {
	Create(ctx context.Context, session *domain.CheckoutSession) error
	Get(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
	Update(ctx context.Context, sessionID string, fn UpdateFunc) (*domain.CheckoutSession, error)
	DeleteIf(ctx context.Context, sessionID string, fn UpdateFunc) error
	FindByAuthorization(ctx context.Context, authorizationID string) (*domain.CheckoutSession, error)
	Sweep(ctx context.Context, olderThan time.Time) int
}
