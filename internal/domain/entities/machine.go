package entities

import (
	"time"

	"catrental/internal/domain/geo"
)

type MachineStatus string

const (
	MachineStatusReady       MachineStatus = "Ready"
	MachineStatusInTransit   MachineStatus = "In-transit"
	MachineStatusOccupied    MachineStatus = "Occupied"
	MachineStatusMaintenance MachineStatus = "Maintenance"
)

func (s MachineStatus) Valid() bool {
	switch s {
	case MachineStatusReady, MachineStatusInTransit, MachineStatusOccupied, MachineStatusMaintenance:
		return true
	}
	return false
}

// Machine is a rentable unit of equipment owned by a dealership.
//
// Storage model (DynamoDB):
//   - PK: machine_id
//   - GSI status-index: status
//   - GSI user_id-index: user_id
//   - GSI dealer_id-index: dealer_id
//
// Invariants: Ready implies no UserID; In-transit and Occupied imply a UserID.
// Location is nil when the stored coordinates could not be read.
type Machine struct {
	ID       string        `json:"machine_id"`
	Type     string        `json:"machine_type"`
	Location *geo.Point    `json:"location,omitempty"`
	SiteID   string        `json:"site_id"`
	Status   MachineStatus `json:"status"`
	UserID   string        `json:"user_id,omitempty"`
	DealerID string        `json:"dealer_id"`

	CheckInDate  *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate *time.Time `json:"check_out_date,omitempty"`

	EngineHoursPerDay float64 `json:"engine_hours_per_day"`
	IdleHours         float64 `json:"idle_hours"`
	OperatingDays     int     `json:"operating_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MachineAssignment is applied when an approved transfer claims a Ready machine.
type MachineAssignment struct {
	UserID       string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Location     geo.Point
}

// MachineUsage is the telemetry reported for an occupied machine.
type MachineUsage struct {
	EngineHoursPerDay float64
	IdleHours         float64
	OperatingDays     int
}
