package model

import "time"

const (
	TableName  = "bills"
	EntityName = "bill"

	FieldID                = "id"
	FieldBookingID         = "booking_id"
	FieldGuestID           = "guest_id"
	FieldRoomID            = "room_id"
	FieldNights            = "nights"
	FieldRoomCharge        = "room_charge"
	FieldAdditionalCharges = "additional_charges"
	FieldTotal             = "total"
	FieldCreatedAt         = "created_at"
)

// Bill is immutable once generated.
type Bill struct {
	ID                string    `db:"id"`
	BookingID         string    `db:"booking_id"`
	GuestID           string    `db:"guest_id"`
	RoomID            string    `db:"room_id"`
	Nights            int       `db:"nights"`
	RoomCharge        float64   `db:"room_charge"`
	AdditionalCharges float64   `db:"additional_charges"`
	Total             float64   `db:"total"`
	CreatedAt         time.Time `db:"created_at"`
}

// BillDetail expands the stay, guest and room of a bill to their current values.
type BillDetail struct {
	Bill
	BookingCheckIn  time.Time `column:"check_in"  db:"booking_check_in"  table:"bookings"`
	BookingCheckOut time.Time `column:"check_out" db:"booking_check_out" table:"bookings"`
	BookingStatus   string    `column:"status"    db:"booking_status"    table:"bookings"`
	GuestName       string    `column:"name"      db:"guest_name"        table:"guests"`
	GuestPhone      string    `column:"phone"     db:"guest_phone"       table:"guests"`
	GuestEmail      string    `column:"email"     db:"guest_email"       table:"guests"`
	GuestAddress    string    `column:"address"   db:"guest_address"     table:"guests"`
	RoomNumber      string    `column:"number"    db:"room_number"       table:"rooms"`
	RoomType        string    `column:"type"      db:"room_type"         table:"rooms"`
	RoomStatus      string    `column:"status"    db:"room_status"       table:"rooms"`
	RoomPrice       float64   `column:"price"     db:"room_price"        table:"rooms"`
}

func (BillDetail) GetJoinQuery() string {
	return "INNER JOIN bookings ON bookings.id = bills.booking_id " +
		"INNER JOIN guests ON guests.id = bills.guest_id " +
		"INNER JOIN rooms ON rooms.id = bills.room_id"
}
