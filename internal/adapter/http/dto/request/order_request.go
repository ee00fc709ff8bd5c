package request

import (
	"strings"
	"time"

	"catrental/internal/domain/geo"
)

// PlaceOrderRequest is the body of POST /v1/orders.
type PlaceOrderRequest struct {
	MachineType  string    `json:"machine_type" binding:"required"`
	Quantity     *int      `json:"quantity"`
	Latitude     *float64  `json:"latitude" binding:"required"`
	Longitude    *float64  `json:"longitude" binding:"required"`
	CheckInDate  time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate time.Time `json:"check_out_date" binding:"required"`
}

func (r PlaceOrderRequest) ResolveMachineType() string {
	return strings.TrimSpace(r.MachineType)
}

// ResolveQuantity defaults an omitted quantity to a single machine. An
// explicit value, zero included, is passed on for validation.
func (r PlaceOrderRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

func (r PlaceOrderRequest) Destination() geo.Point {
	var p geo.Point
	if r.Latitude != nil {
		p.Lat = *r.Latitude
	}
	if r.Longitude != nil {
		p.Lon = *r.Longitude
	}
	return p
}
