package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"agency-service/internal/constants"
	"agency-service/internal/contextkeys"
	"agency-service/internal/contracts"
	"agency-service/internal/core/domain"
	"agency-service/pkg/rabbitmq/rabbitmq_producer"
)

// dealCreatedPayload - формат события deal.created, согласованный
// со схемой schemas/events/deal-created/v1.json.
type dealCreatedPayload struct {
	DealID      string                    `json:"deal_id"`
	DemandID    string                    `json:"demand_id"`
	OfferID     string                    `json:"offer_id"`
	CreatedAt   string                    `json:"created_at"`
	Commissions commissionBreakdownRecord `json:"commissions"`
}

type commissionBreakdownRecord struct {
	SellerCommission   float64 `json:"seller_commission"`
	BuyerCommission    float64 `json:"buyer_commission"`
	SellerRealtorShare float64 `json:"seller_realtor_share"`
	BuyerRealtorShare  float64 `json:"buyer_realtor_share"`
	CompanyShare       float64 `json:"company_share"`
}

// DealEventsAdapter публикует события жизненного цикла сделок.
type DealEventsAdapter struct {
	producer   *rabbitmq_producer.Publisher
	routingKey string
}

func NewDealEventsAdapter(producer *rabbitmq_producer.Publisher, routingKey string) (*DealEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	return &DealEventsAdapter{producer: producer, routingKey: routingKey}, nil
}

// DealCreated сериализует событие, проверяет его по схеме контракта
// и публикует.
func (a *DealEventsAdapter) DealCreated(ctx context.Context, deal *domain.Deal, commissions domain.CommissionBreakdown) error {
	payload := dealCreatedPayload{
		DealID:    deal.ID.String(),
		DemandID:  deal.DemandID.String(),
		OfferID:   deal.OfferID.String(),
		CreatedAt: deal.CreatedAt.UTC().Format(time.RFC3339Nano),
		Commissions: commissionBreakdownRecord{
			SellerCommission:   commissions.SellerCommission,
			BuyerCommission:    commissions.BuyerCommission,
			SellerRealtorShare: commissions.SellerRealtorShare,
			BuyerRealtorShare:  commissions.BuyerRealtorShare,
			CompanyShare:       commissions.CompanyShare,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal deal-created event: %w", err)
	}

	// Контракт проверяем на выходе: потребители полагаются на схему.
	if err := contracts.ValidateEvent(constants.DealCreatedEventType, constants.DealCreatedEventVersion, body); err != nil {
		return fmt.Errorf("deal-created event does not match contract: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         constants.DealCreatedEventType,
		Headers: amqp.Table{
			"event_version": constants.DealCreatedEventVersion,
			"trace_id":      contextkeys.TraceIDFromContext(ctx),
		},
		Body: body,
	}

	return a.producer.Publish(ctx, a.routingKey, msg)
}

// Close закрывает канал производителя.
func (a *DealEventsAdapter) Close() error {
	return a.producer.Close()
}
