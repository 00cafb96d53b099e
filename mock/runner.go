package mock

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/medivac/portal/service"
)

// RunOptions configures the standalone fake backend.
type RunOptions struct {
	Addr        string   `short:"a" long:"addr" description:"listen address" default:":8080"`
	Secret      string   `short:"s" long:"secret" description:"HMAC secret used to sign tokens"`
	TokenTTL    string   `long:"ttl" description:"token lifetime" default:"24h"`
	RegisterJWT bool     `long:"register-token" description:"registration answers with {token,user}"`
	Seed        bool     `long:"seed" description:"seed a demo patient with locations, bookings and trips"`
	CorsOrigins []string `long:"cors-origin" description:"allowed browser origin, repeatable, * for any"`
}

// Run parses args and serves the fake backend until interrupted.
func Run(args []string) error {
	options := &RunOptions{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ttl, err := time.ParseDuration(options.TokenTTL)
	if err != nil {
		return err
	}
	opts := []Option{WithTokenTTL(ttl)}
	if options.Secret != "" {
		opts = append(opts, WithSecret([]byte(options.Secret)))
	}
	if options.RegisterJWT {
		opts = append(opts, WithRegisterToken())
	}
	if len(options.CorsOrigins) > 0 {
		cors := DefaultCors()
		cors.AllowOrigins = options.CorsOrigins
		opts = append(opts, WithCors(cors))
	}
	srv, err := NewDispatchService(opts...)
	if err != nil {
		return err
	}
	if options.Seed {
		if err = srv.SeedDemo(); err != nil {
			return err
		}
		log.Printf("[portal-mock] seeded demo patient %v", DemoEmail)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	server := &http.Server{Addr: options.Addr, Handler: srv.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = server.Shutdown(shutdownCtx)
	}()
	log.Printf("[portal-mock] listening on %v", options.Addr)
	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Demo account created by SeedDemo.
const (
	DemoName     = "Demo Patient"
	DemoEmail    = "demo@medivac.test"
	DemoPhone    = "+1 (555) 010-2030"
	DemoPassword = "Demo123!"
)

// SeedDemo creates the demo patient with a pending booking, an accepted booking and two trips.
func (s *DispatchService) SeedDemo() error {
	profile, err := s.AddUser(DemoName, DemoEmail, DemoPhone, DemoPassword, "patient")
	if err != nil {
		return err
	}
	home := s.addLocation(&service.Location{Address: "221B Baker Street", Latitude: 51.5237, Longitude: -0.1585})
	hospital := s.addLocation(&service.Location{Address: "St Thomas' Hospital", Latitude: 51.4980, Longitude: -0.1188})
	if _, err = s.addBooking(profile.ID, &service.BookingRequest{PickupLocationID: home, DropLocationID: hospital}); err != nil {
		return err
	}
	accepted, err := s.addBooking(profile.ID, &service.BookingRequest{PickupLocationID: hospital, DropLocationID: home})
	if err != nil {
		return err
	}
	if err = s.SetBookingStatus(accepted.ID, service.BookingAccepted); err != nil {
		return err
	}
	homeStop := service.TripLocation{Address: "221B Baker Street", Lat: 51.5237, Lng: -0.1585}
	hospitalStop := service.TripLocation{Address: "St Thomas' Hospital", Lat: 51.4980, Lng: -0.1188}
	driver := service.TripDriver{DriverName: "Sam Driver", DriverPhone: "+1 555 010 9999", AmbulanceNumber: "AMB-42", AmbulanceType: "ALS"}
	trips := []service.Trip{
		{
			StartTime:      "2024-03-01T09:00:00Z",
			EndTime:        "2024-03-01T09:35:00Z",
			Fare:           120.5,
			Status:         service.TripCompleted,
			PickupLocation: homeStop,
			DropLocation:   hospitalStop,
			Driver:         driver,
			Payment:        service.TripPayment{Amount: 120.5, Method: "card", Status: "paid"},
		},
		{
			StartTime:      "2024-03-05T14:10:00Z",
			Fare:           80,
			Status:         service.TripInProgress,
			PickupLocation: hospitalStop,
			DropLocation:   homeStop,
			Driver:         driver,
			Payment:        service.TripPayment{Amount: 80, Method: "cash", Status: "pending"},
		},
	}
	for _, trip := range trips {
		if _, err = s.AddTrip(DemoEmail, trip); err != nil {
			return err
		}
	}
	return nil
}
