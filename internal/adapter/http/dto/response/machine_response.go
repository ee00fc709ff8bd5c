package response

import (
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/domain/geo"
)

type MachineResponse struct {
	MachineID         string     `json:"machine_id"`
	MachineType       string     `json:"machine_type"`
	Location          *geo.Point `json:"location"`
	SiteID            string     `json:"site_id"`
	Status            string     `json:"status"`
	UserID            string     `json:"user_id,omitempty"`
	DealerID          string     `json:"dealer_id"`
	CheckInDate       *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate      *time.Time `json:"check_out_date,omitempty"`
	EngineHoursPerDay float64    `json:"engine_hours_per_day"`
	IdleHours         float64    `json:"idle_hours"`
	OperatingDays     int        `json:"operating_days"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromMachine(m entities.Machine) MachineResponse {
	return MachineResponse{
		MachineID:         m.ID,
		MachineType:       m.Type,
		Location:          m.Location,
		SiteID:            m.SiteID,
		Status:            string(m.Status),
		UserID:            m.UserID,
		DealerID:          m.DealerID,
		CheckInDate:       m.CheckInDate,
		CheckOutDate:      m.CheckOutDate,
		EngineHoursPerDay: m.EngineHoursPerDay,
		IdleHours:         m.IdleHours,
		OperatingDays:     m.OperatingDays,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func FromMachines(machines []entities.Machine) []MachineResponse {
	out := make([]MachineResponse, 0, len(machines))
	for _, m := range machines {
		out = append(out, FromMachine(m))
	}
	return out
}
