package port

import (
	"context"

	"agency-service/internal/core/domain"
)

// DealEventsPort - исходящий канал событий жизненного цикла сделок.
type DealEventsPort interface {
	// DealCreated публикует событие о созданной сделке вместе
	// с рассчитанным распределением комиссии.
	DealCreated(ctx context.Context, deal *domain.Deal, commissions domain.CommissionBreakdown) error
	Close() error
}
