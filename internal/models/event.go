package models

import "time"

const (
	EntityStudent     = "student"
	EntityCompany     = "company"
	EntityJob         = "job"
	EntityApplication = "application"
)

// EntityCreatedEvent is published after a successful catalog insert.
type EntityCreatedEvent struct {
	Entity    string    `json:"entity"`
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (e EntityCreatedEvent) RoutingKey() string {
	return e.Entity + ".created"
}
