package response

import (
	"time"

	"catrental/internal/domain/entities"
)

type RentalRequestResponse struct {
	RequestID     string     `json:"request_id"`
	MachineID     string     `json:"machine_id"`
	DealerID      string     `json:"dealer_id"`
	UserID        string     `json:"user_id"`
	RequestType   string     `json:"request_type"`
	Status        string     `json:"status"`
	Comments      string     `json:"comments,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
	AdminComments string     `json:"admin_comments,omitempty"`
	RequestDate   time.Time  `json:"request_date"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromRentalRequest(r entities.RentalRequest) RentalRequestResponse {
	return RentalRequestResponse{
		RequestID:     r.ID,
		MachineID:     r.MachineID,
		DealerID:      r.DealerID,
		UserID:        r.UserID,
		RequestType:   string(r.Type),
		Status:        string(r.Status),
		Comments:      r.Comments,
		Date:          r.Date,
		AdminComments: r.AdminComments,
		RequestDate:   r.RequestDate,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromRentalRequests(requests []entities.RentalRequest) []RentalRequestResponse {
	out := make([]RentalRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromRentalRequest(r))
	}
	return out
}
