package models

// Export is one export shipment record. The backend owns the full shape;
// the client only reads and round-trips these fields.
type Export struct {
	ID          int64  `json:"id"`
	CarID       int64  `json:"car_id"`
	Destination string `json:"destination"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
