package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "agency-service/internal/core/port"
)

// Handlers - набор обработчиков, из которых собирается роутер.
type Handlers struct {
	Realtors   *RealtorHandler
	Clients    *ClientHandler
	Properties *PropertyHandler
	Offers     *OfferHandler
	Demands    *DemandHandler
	Deals      *DealHandler
}

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
func NewServer(port string, handlers Handlers, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/realtors", func(r chi.Router) {
			r.Get("/", handlers.Realtors.GetRealtors)
			r.Post("/", handlers.Realtors.CreateRealtor)
			r.Get("/{realtorID}", handlers.Realtors.GetRealtorByID)
			r.Put("/{realtorID}", handlers.Realtors.UpdateRealtor)
			r.Delete("/{realtorID}", handlers.Realtors.DeleteRealtor)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", handlers.Clients.GetClients)
			r.Post("/", handlers.Clients.CreateClient)
			r.Get("/{clientID}", handlers.Clients.GetClientByID)
			r.Put("/{clientID}", handlers.Clients.UpdateClient)
			r.Delete("/{clientID}", handlers.Clients.DeleteClient)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", handlers.Properties.GetProperties)
			r.Post("/", handlers.Properties.CreateProperty)
			r.Get("/{propertyID}", handlers.Properties.GetPropertyByID)
			r.Put("/{propertyID}", handlers.Properties.UpdateProperty)
			r.Delete("/{propertyID}", handlers.Properties.DeleteProperty)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Get("/", handlers.Offers.GetOffers)
			r.Post("/", handlers.Offers.CreateOffer)
			r.Get("/{offerID}", handlers.Offers.GetOfferByID)
			r.Put("/{offerID}", handlers.Offers.UpdateOffer)
			r.Delete("/{offerID}", handlers.Offers.DeleteOffer)
		})

		r.Route("/demands", func(r chi.Router) {
			r.Get("/", handlers.Demands.GetDemands)
			r.Post("/", handlers.Demands.CreateDemand)
			r.Get("/{demandID}", handlers.Demands.GetDemandByID)
			r.Put("/{demandID}", handlers.Demands.UpdateDemand)
			r.Delete("/{demandID}", handlers.Demands.DeleteDemand)
			r.Get("/{demandID}/matching-offers", handlers.Demands.GetMatchingOffers)
		})

		r.Route("/deals", func(r chi.Router) {
			r.Get("/", handlers.Deals.GetDeals)
			r.Post("/", handlers.Deals.CreateDeal)
			r.Get("/{dealID}", handlers.Deals.GetDealByID)
			r.Put("/{dealID}", handlers.Deals.UpdateDeal)
			r.Delete("/{dealID}", handlers.Deals.DeleteDeal)
			r.Get("/{dealID}/commissions", handlers.Deals.GetDealCommissions)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
