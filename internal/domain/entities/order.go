package entities

import (
	"time"

	"catrental/internal/domain/geo"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusApproved   OrderStatus = "Approved"
	OrderStatusInProgress OrderStatus = "InProgress"
	OrderStatusCompleted  OrderStatus = "Completed"
)

// Order is a customer's request for Quantity machines of a type, delivered to
// Location for the [CheckInDate, CheckOutDate) window.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id
type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	MachineType  string      `json:"machine_type"`
	Quantity     int         `json:"quantity"`
	Location     geo.Point   `json:"location"`
	SiteID       string      `json:"site_id"`
	CheckInDate  time.Time   `json:"check_in_date"`
	CheckOutDate time.Time   `json:"check_out_date"`
	Status       OrderStatus `json:"status"`
	Comments     string      `json:"comments,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
