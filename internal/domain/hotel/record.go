package hotel

import "time"

// HistoricalRecord represents one day of actual occupancy and rate data.
// This is an immutable entity - all fields are private with getters only.
// Records are produced by the surrounding data-import layer; the engine
// only ever reads them.
type HistoricalRecord struct {
	id               int
	date             time.Time
	roomsAvailable   int
	roomsSold        int
	averageDailyRate float64
	cancellations    int
}

// NewHistoricalRecord creates a daily record with validation.
// Enforces rooms_sold <= rooms_available >= 0.
func NewHistoricalRecord(
	date time.Time,
	roomsAvailable int,
	roomsSold int,
	averageDailyRate float64,
	cancellations int,
) (*HistoricalRecord, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if roomsAvailable < 0 {
		return nil, ErrInvalidRoomsAvailable
	}
	if roomsSold < 0 || roomsSold > roomsAvailable {
		return nil, ErrInvalidRoomsSold
	}
	if averageDailyRate < 0 {
		return nil, ErrInvalidRate
	}
	if cancellations < 0 {
		return nil, ErrInvalidCancellations
	}

	return &HistoricalRecord{
		date:             date,
		roomsAvailable:   roomsAvailable,
		roomsSold:        roomsSold,
		averageDailyRate: averageDailyRate,
		cancellations:    cancellations,
	}, nil
}

// NewHistoricalRecordWithID creates a record with an existing ID.
// This is used when loading from the database.
func NewHistoricalRecordWithID(
	id int,
	date time.Time,
	roomsAvailable int,
	roomsSold int,
	averageDailyRate float64,
	cancellations int,
) (*HistoricalRecord, error) {
	record, err := NewHistoricalRecord(date, roomsAvailable, roomsSold, averageDailyRate, cancellations)
	if err != nil {
		return nil, err
	}

	record.id = id
	return record, nil
}

// Getters (immutable entity - no setters)

func (r *HistoricalRecord) ID() int {
	return r.id
}

func (r *HistoricalRecord) Date() time.Time {
	return r.date
}

func (r *HistoricalRecord) RoomsAvailable() int {
	return r.roomsAvailable
}

func (r *HistoricalRecord) RoomsSold() int {
	return r.roomsSold
}

func (r *HistoricalRecord) AverageDailyRate() float64 {
	return r.averageDailyRate
}

func (r *HistoricalRecord) Cancellations() int {
	return r.cancellations
}

// Occupancy returns the occupancy rate for the day as a fraction in [0,1].
// A day with zero available rooms has zero occupancy.
func (r *HistoricalRecord) Occupancy() float64 {
	if r.roomsAvailable == 0 {
		return 0
	}
	return float64(r.roomsSold) / float64(r.roomsAvailable)
}

// Revenue returns rooms sold times the average daily rate.
func (r *HistoricalRecord) Revenue() float64 {
	return float64(r.roomsSold) * r.averageDailyRate
}
