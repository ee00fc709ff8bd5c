package response

import (
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/domain/geo"
)

type TransferResponse struct {
	TransferID    string    `json:"transfer_id"`
	OrderID       string    `json:"order_id"`
	MachineID     string    `json:"machine_id"`
	DealerID      string    `json:"dealer_id"`
	FromUserID    string    `json:"from_user_id"`
	ToUserID      string    `json:"to_user_id"`
	Origin        geo.Point `json:"origin"`
	Destination   geo.Point `json:"destination"`
	DistanceKm    float64   `json:"distance_km"`
	Status        string    `json:"status"`
	AdminComments string    `json:"admin_comments,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ApprovalResponse struct {
	Transfer      TransferResponse `json:"transfer"`
	MachineID     string           `json:"machine_id"`
	AssignedTo    string           `json:"assigned_to"`
	MachineStatus string           `json:"machine_status"`
	OrderStatus   string           `json:"order_status"`
}

func FromTransfer(t entities.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:    t.ID,
		OrderID:       t.OrderID,
		MachineID:     t.MachineID,
		DealerID:      t.DealerID,
		FromUserID:    t.FromUserID,
		ToUserID:      t.ToUserID,
		Origin:        t.Origin,
		Destination:   t.Destination,
		DistanceKm:    t.DistanceKm,
		Status:        string(t.Status),
		AdminComments: t.AdminComments,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromTransfers(transfers []entities.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, FromTransfer(t))
	}
	return out
}

func FromApproval(t entities.Transfer, m entities.Machine, orderStatus entities.OrderStatus) ApprovalResponse {
	return ApprovalResponse{
		Transfer:      FromTransfer(t),
		MachineID:     m.ID,
		AssignedTo:    m.UserID,
		MachineStatus: string(m.Status),
		OrderStatus:   string(orderStatus),
	}
}
