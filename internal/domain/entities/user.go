package entities

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is read by the core for its health score. Registration and
// credentials live with the authentication service.
type User struct {
	ID               string     `json:"user_id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             Role       `json:"role"`
	DealershipID     string     `json:"dealership_id,omitempty"`
	HealthScore      *int       `json:"health_score,omitempty"`
	ScoreLastUpdated *time.Time `json:"score_last_updated,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Caller is the verified identity attached to a request by the auth gate.
type Caller struct {
	UserID       string
	Name         string
	Role         Role
	DealershipID string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin && c.DealershipID != ""
}

func (c Caller) IsCustomer() bool {
	return c.Role == RoleCustomer && c.UserID != ""
}
