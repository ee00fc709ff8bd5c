package request

import (
	"strings"
	"time"

	"catrental/internal/domain/entities"
)

// CreateRentalRequestRequest is the body of POST /v1/requests.
type CreateRentalRequestRequest struct {
	MachineID string     `json:"machine_id" binding:"required"`
	Type      string     `json:"request_type" binding:"required"`
	Comments  string     `json:"comments"`
	Date      *time.Time `json:"date"`
}

func (r CreateRentalRequestRequest) ResolveType() entities.RentalRequestType {
	return entities.RentalRequestType(strings.TrimSpace(r.Type))
}

type ResolveRentalRequestRequest struct {
	Status        string `json:"status" binding:"required"`
	AdminComments string `json:"admin_comments"`
}

func (r ResolveRentalRequestRequest) ResolveStatus() entities.RentalRequestStatus {
	return entities.RentalRequestStatus(strings.TrimSpace(r.Status))
}
