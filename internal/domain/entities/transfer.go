package entities

import (
	"time"

	"catrental/internal/domain/geo"
)

type TransferStatus string

const (
	TransferStatusPending  TransferStatus = "pending"
	TransferStatusApproved TransferStatus = "approved"
	TransferStatusDeclined TransferStatus = "declined"
)

func (s TransferStatus) Valid() bool {
	switch s {
	case TransferStatusPending, TransferStatusApproved, TransferStatusDeclined:
		return true
	}
	return false
}

// Transfer proposes moving one machine from its current holder to the
// customer who placed the order. Approved and declined are terminal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI dealer_id-index: dealer_id
//   - GSI order_id-index: order_id
type Transfer struct {
	ID            string         `json:"id"`
	OrderID       string         `json:"order_id"`
	MachineID     string         `json:"machine_id"`
	DealerID      string         `json:"dealer_id"`
	FromUserID    string         `json:"from_user_id"`
	ToUserID      string         `json:"to_user_id"`
	Origin        geo.Point      `json:"origin"`
	Destination   geo.Point      `json:"destination"`
	DistanceKm    float64        `json:"distance_km"`
	Status        TransferStatus `json:"status"`
	AdminComments string         `json:"admin_comments,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
