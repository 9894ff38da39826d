package constants

// Имена сущностей RabbitMQ, общие для сервиса и его потребителей.
const (
	AgencyExchange = "agency_exchange"

	RoutingKeyDealCreated = "deal.created"

	// Тип и версия события для валидации по схеме.
	DealCreatedEventType    = "DealCreatedEvent"
	DealCreatedEventVersion = "1.0.0"
)
