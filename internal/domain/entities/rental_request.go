package entities

import "time"

type RentalRequestType string

const (
	RentalRequestCancellation RentalRequestType = "Cancellation"
	RentalRequestExtension    RentalRequestType = "Extension"
	RentalRequestSupport      RentalRequestType = "Support"
	RentalRequestNewOrder     RentalRequestType = "NewOrder"
)

func (t RentalRequestType) Valid() bool {
	switch t {
	case RentalRequestCancellation, RentalRequestExtension, RentalRequestSupport, RentalRequestNewOrder:
		return true
	}
	return false
}

type RentalRequestStatus string

const (
	RentalRequestInProgress RentalRequestStatus = "In-Progress"
	RentalRequestApproved   RentalRequestStatus = "Approved"
	RentalRequestDenied     RentalRequestStatus = "Denied"
)

func (s RentalRequestStatus) Valid() bool {
	switch s {
	case RentalRequestInProgress, RentalRequestApproved, RentalRequestDenied:
		return true
	}
	return false
}

// RentalRequest is a customer's ticket about one machine (cancel, extend,
// support). DealerID is copied from the machine at creation so a dealership
// can list its requests from one index.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id
//   - GSI dealer_id-index: dealer_id
type RentalRequest struct {
	ID            string              `json:"request_id"`
	MachineID     string              `json:"machine_id"`
	DealerID      string              `json:"dealer_id"`
	UserID        string              `json:"user_id"`
	Type          RentalRequestType   `json:"request_type"`
	Status        RentalRequestStatus `json:"status"`
	Comments      string              `json:"comments,omitempty"`
	Date          *time.Time          `json:"date,omitempty"`
	AdminComments string              `json:"admin_comments,omitempty"`
	RequestDate   time.Time           `json:"request_date"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
