package service

// Profile is the patient profile as returned by the backend.
type Profile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Booking statuses reported by the backend.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingRejected  = "rejected"
)

// Booking is an ambulance trip request.
type Booking struct {
	ID               int    `json:"id"`
	UserID           int    `json:"user_id"`
	PickupLocationID int    `json:"pickup_location_id"`
	DropLocationID   int    `json:"drop_location_id"`
	Status           string `json:"status"`
	RequestedAt      string `json:"requested_at"`
	UpdatedAt        string `json:"updated_at"`
}

// BookingRequest creates a booking between two stored locations.
type BookingRequest struct {
	PickupLocationID int `json:"pickup_location_id"`
	DropLocationID   int `json:"drop_location_id"`
}

// Location is an address with coordinates, registered before booking.
type Location struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationResult identifies a stored location.
type LocationResult struct {
	LocationID int    `json:"location_id"`
	Message    string `json:"message"`
}

// Trip statuses reported by the backend.
const (
	TripCompleted  = "completed"
	TripInProgress = "in_progress"
	TripCancelled  = "cancelled"
)

type (
	// Trip is a dispatched booking with its driver and payment.
	Trip struct {
		TripID         int          `json:"tripId"`
		StartTime      string       `json:"startTime"`
		EndTime        string       `json:"endTime"`
		Fare           float64      `json:"fare"`
		Status         string       `json:"status"`
		PickupLocation TripLocation `json:"pickupLocation"`
		DropLocation   TripLocation `json:"dropLocation"`
		User           TripUser     `json:"user"`
		Driver         TripDriver   `json:"driver"`
		Payment        TripPayment  `json:"payment"`
	}

	TripLocation struct {
		Address string  `json:"address"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	}

	TripUser struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	TripDriver struct {
		DriverName      string `json:"driverName"`
		DriverPhone     string `json:"driverPhone"`
		AmbulanceNumber string `json:"ambulanceNumber"`
		AmbulanceType   string `json:"ambulanceType"`
	}

	TripPayment struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
		Status string  `json:"status"`
	}
)
