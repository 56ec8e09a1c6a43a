package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/airport-service/api"
	"github.com/mkravets/airport-service/config"
	"github.com/mkravets/airport-service/internal/auth"
	"github.com/mkravets/airport-service/internal/service/booking"
	"github.com/mkravets/airport-service/internal/service/catalog"
	"github.com/mkravets/airport-service/internal/service/flights"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, catalogSvc catalog.CatalogUseCase, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	engine := NewRouter(cfg, catalogSvc, flightSvc, bookingSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires every handler onto a gin engine. Catalog and flight
// endpoints are public; orders and tickets sit behind JWT auth.
func NewRouter(cfg *config.Config, catalogSvc catalog.CatalogUseCase, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	v1 := engine.Group("/api/v1")

	api.NewAirportHandler(catalogSvc).Register(v1.Group("/airports"))
	api.NewRouteHandler(catalogSvc).Register(v1.Group("/routes"))
	api.NewAirplaneTypeHandler(catalogSvc).Register(v1.Group("/airplane-types"))
	api.NewAirplaneHandler(catalogSvc).Register(v1.Group("/airplanes"))
	api.NewCrewHandler(catalogSvc).Register(v1.Group("/crews"))
	api.NewSeatClassHandler(catalogSvc).Register(v1.Group("/seat-classes"))
	api.NewSeatHandler(catalogSvc).Register(v1.Group("/seats"))
	api.NewFlightHandler(flightSvc).Register(v1.Group("/flights"))

	authed := v1.Group("", auth.Middleware(cfg.Auth.JWTSecret))
	api.NewOrderHandler(bookingSvc).Register(authed.Group("/orders"))
	api.NewTicketHandler(bookingSvc).Register(authed.Group("/tickets"))

	return engine
}
