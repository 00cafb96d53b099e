package mock

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/medivac/portal/internal/collection"
	"github.com/medivac/portal/service"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUnknownUser    = errors.New("unknown user")
	ErrUnknownBooking = errors.New("booking not found")
)

type user struct {
	service.Profile
	passwordHash []byte
}

type ownedTrip struct {
	userID int
	trip   service.Trip
}

// DispatchService is the in-memory state and behaviour of the fake backend.
type DispatchService struct {
	Secret              []byte
	Issuer              string
	TokenTTL            time.Duration
	RegisterIssuesToken bool
	Cors                *Cors

	now       func() time.Time
	seq       atomic.Int64
	users     *collection.SyncMap[string, *user]
	userByID  *collection.SyncMap[int, string]
	bookings  *collection.SyncMap[int, *service.Booking]
	locations *collection.SyncMap[int, *service.Location]
	trips     *collection.SyncMap[int, *ownedTrip]
	overrides *collection.SyncMap[string, http.HandlerFunc]
}

// NewDispatchService creates an empty backend.
func NewDispatchService(opts ...Option) (*DispatchService, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate signing secret: %v", err)
	}
	ret := &DispatchService{
		Secret:    secret,
		Issuer:    "medivac-mock",
		TokenTTL:  24 * time.Hour,
		now:       time.Now,
		users:     collection.NewSyncMap[string, *user](),
		userByID:  collection.NewSyncMap[int, string](),
		bookings:  collection.NewSyncMap[int, *service.Booking](),
		locations: collection.NewSyncMap[int, *service.Location](),
		trips:     collection.NewSyncMap[int, *ownedTrip](),
		overrides: collection.NewSyncMap[string, http.HandlerFunc](),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}

// Override replaces the handler of route, e.g. RouteLogin, until Restore is called.
func (s *DispatchService) Override(route string, handler http.HandlerFunc) {
	s.overrides.Put(route, handler)
}

// Restore removes an override.
func (s *DispatchService) Restore(route string) {
	s.overrides.Delete(route)
}

func (s *DispatchService) nextID() int {
	return int(s.seq.Add(1))
}

func (s *DispatchService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// AddUser registers an account directly.
func (s *DispatchService) AddUser(name, email, phone, password, role string) (*service.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = "patient"
	}
	key := strings.ToLower(strings.TrimSpace(email))
	candidate := &user{
		Profile:      service.Profile{Name: name, Email: email, Phone: phone, Role: role},
		passwordHash: hash,
	}
	candidate.ID = s.nextID()
	if !s.users.PutIfAbsent(key, candidate) {
		return nil, ErrDuplicateEmail
	}
	s.userByID.Put(candidate.ID, key)
	profile := candidate.Profile
	return &profile, nil
}

func (s *DispatchService) authenticateUser(email, password string) (*user, bool) {
	u, ok := s.users.Get(strings.ToLower(strings.TrimSpace(email)))
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) != nil {
		return nil, false
	}
	return u, true
}

func (s *DispatchService) lookupUser(id int) (*user, bool) {
	key, ok := s.userByID.Get(id)
	if !ok {
		return nil, false
	}
	return s.users.Get(key)
}

func (s *DispatchService) updateProfile(id int, update *service.ProfileUpdate) (*service.Profile, error) {
	key, ok := s.userByID.Get(id)
	if !ok {
		return nil, ErrUnknownUser
	}
	updated, err := s.users.Update(key, func(u *user) (*user, error) {
		next := *u
		next.Name = update.Name
		next.Phone = update.Phone
		return &next, nil
	})
	if err != nil {
		return nil, ErrUnknownUser
	}
	profile := updated.Profile
	return &profile, nil
}

func (s *DispatchService) addLocation(location *service.Location) int {
	id := s.nextID()
	copied := *location
	s.locations.Put(id, &copied)
	return id
}

func (s *DispatchService) addBooking(userID int, request *service.BookingRequest) (*service.Booking, error) {
	if _, ok := s.locations.Get(request.PickupLocationID); !ok {
		return nil, fmt.Errorf("pickup location %d not found", request.PickupLocationID)
	}
	if _, ok := s.locations.Get(request.DropLocationID); !ok {
		return nil, fmt.Errorf("drop location %d not found", request.DropLocationID)
	}
	now := s.timestamp()
	booking := &service.Booking{
		ID:               s.nextID(),
		UserID:           userID,
		PickupLocationID: request.PickupLocationID,
		DropLocationID:   request.DropLocationID,
		Status:           service.BookingPending,
		RequestedAt:      now,
		UpdatedAt:        now,
	}
	s.bookings.Put(booking.ID, booking)
	copied := *booking
	return &copied, nil
}

func (s *DispatchService) userBookings(userID int) []*service.Booking {
	ret := []*service.Booking{}
	s.bookings.Range(func(_ int, booking *service.Booking) bool {
		if booking.UserID == userID {
			copied := *booking
			ret = append(ret, &copied)
		}
		return true
	})
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret
}

// errNotPending is reported when a cancel targets a booking that already moved on.
var errNotPending = errors.New("only pending bookings can be cancelled")

func (s *DispatchService) cancelBooking(userID, id int) (*service.Booking, error) {
	booking, ok := s.bookings.Get(id)
	if !ok || booking.UserID != userID {
		return nil, ErrUnknownBooking
	}
	updated, err := s.bookings.Update(id, func(b *service.Booking) (*service.Booking, error) {
		if b.Status != service.BookingPending {
			return nil, errNotPending
		}
		next := *b
		next.Status = service.BookingCancelled
		next.UpdatedAt = s.timestamp()
		return &next, nil
	})
	if err != nil {
		return nil, err
	}
	copied := *updated
	return &copied, nil
}

// SetBookingStatus moves a booking to status, as a dispatcher would.
func (s *DispatchService) SetBookingStatus(id int, status string) error {
	_, err := s.bookings.Update(id, func(b *service.Booking) (*service.Booking, error) {
		next := *b
		next.Status = status
		next.UpdatedAt = s.timestamp()
		return &next, nil
	})
	if err != nil {
		return ErrUnknownBooking
	}
	return nil
}

// AddTrip records a trip for the user with email and returns its id.
func (s *DispatchService) AddTrip(email string, trip service.Trip) (int, error) {
	u, ok := s.users.Get(strings.ToLower(strings.TrimSpace(email)))
	if !ok {
		return 0, ErrUnknownUser
	}
	trip.TripID = s.nextID()
	if trip.User.Name == "" {
		trip.User = service.TripUser{Name: u.Name, Phone: u.Phone}
	}
	s.trips.Put(trip.TripID, &ownedTrip{userID: u.ID, trip: trip})
	return trip.TripID, nil
}

func (s *DispatchService) userTrips(userID int) []*service.Trip {
	ret := []*service.Trip{}
	s.trips.Range(func(_ int, owned *ownedTrip) bool {
		if owned.userID == userID {
			trip := owned.trip
			ret = append(ret, &trip)
		}
		return true
	})
	sort.Slice(ret, func(i, j int) bool { return ret[i].TripID < ret[j].TripID })
	return ret
}

func (s *DispatchService) userTrip(userID, id int) (*service.Trip, bool) {
	owned, ok := s.trips.Get(id)
	if !ok || owned.userID != userID {
		return nil, false
	}
	trip := owned.trip
	return &trip, true
}
