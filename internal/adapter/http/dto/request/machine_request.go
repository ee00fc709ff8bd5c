package request

import (
	"strings"

	"catrental/internal/domain/entities"
	"catrental/internal/domain/geo"
)

type RegisterMachineRequest struct {
	MachineID   string   `json:"machine_id"`
	MachineType string   `json:"machine_type" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	SiteID      string   `json:"site_id"`
}

func (r RegisterMachineRequest) Location() geo.Point {
	return geo.Point{Lat: *r.Latitude, Lon: *r.Longitude}
}

type ChangeMachineStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ChangeMachineStatusRequest) ResolveStatus() entities.MachineStatus {
	return entities.MachineStatus(strings.TrimSpace(r.Status))
}

type RecordUsageRequest struct {
	EngineHoursPerDay *float64 `json:"engine_hours_per_day" binding:"required"`
	IdleHours         *float64 `json:"idle_hours" binding:"required"`
	OperatingDays     int      `json:"operating_days"`
}

func (r RecordUsageRequest) ToUsage() entities.MachineUsage {
	return entities.MachineUsage{
		EngineHoursPerDay: *r.EngineHoursPerDay,
		IdleHours:         *r.IdleHours,
		OperatingDays:     r.OperatingDays,
	}
}
