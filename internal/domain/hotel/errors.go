package hotel

import "errors"

// Domain errors for hotel records and profiles

var (
	// ErrInvalidRoomsAvailable is returned when rooms available is negative
	ErrInvalidRoomsAvailable = errors.New("invalid rooms available")

	// ErrInvalidRoomsSold is returned when rooms sold is negative or exceeds rooms available
	ErrInvalidRoomsSold = errors.New("invalid rooms sold")

	// ErrInvalidRate is returned when an average daily rate is negative
	ErrInvalidRate = errors.New("invalid average daily rate")

	// ErrInvalidCancellations is returned when cancellations is negative
	ErrInvalidCancellations = errors.New("invalid cancellations")

	// ErrInvalidDate is returned when a record date is the zero time
	ErrInvalidDate = errors.New("invalid record date")

	// ErrInvalidTotalRooms is returned when a profile's room count is not positive
	ErrInvalidTotalRooms = errors.New("invalid total rooms")

	// ErrInvalidBasePrice is returned when a profile's base price is not positive
	ErrInvalidBasePrice = errors.New("invalid base price")

	// ErrInvalidBaseOccupancy is returned when base occupancy is outside [0,1]
	ErrInvalidBaseOccupancy = errors.New("invalid base occupancy")
)
