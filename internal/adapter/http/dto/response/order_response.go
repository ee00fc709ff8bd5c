package response

import (
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/domain/geo"
)

type OrderResponse struct {
	OrderID      string    `json:"order_id"`
	UserID       string    `json:"user_id"`
	MachineType  string    `json:"machine_type"`
	Quantity     int       `json:"quantity"`
	Location     geo.Point `json:"location"`
	SiteID       string    `json:"site_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Status       string    `json:"status"`
	Comments     string    `json:"comments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PlaceOrderResponse struct {
	OrderID           string             `json:"order_id"`
	TransfersCreated  int                `json:"transfers_created"`
	QuantityRequested int                `json:"quantity_requested"`
	Order             OrderResponse      `json:"order"`
	Transfers         []TransferResponse `json:"transfers"`
}

type OrderDetailResponse struct {
	Order     OrderResponse      `json:"order"`
	Transfers []TransferResponse `json:"transfers"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:      o.ID,
		UserID:       o.UserID,
		MachineType:  o.MachineType,
		Quantity:     o.Quantity,
		Location:     o.Location,
		SiteID:       o.SiteID,
		CheckInDate:  o.CheckInDate,
		CheckOutDate: o.CheckOutDate,
		Status:       string(o.Status),
		Comments:     o.Comments,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromPlacedOrder(o entities.Order, transfers []entities.Transfer) PlaceOrderResponse {
	return PlaceOrderResponse{
		OrderID:           o.ID,
		TransfersCreated:  len(transfers),
		QuantityRequested: o.Quantity,
		Order:             FromOrder(o),
		Transfers:         FromTransfers(transfers),
	}
}
