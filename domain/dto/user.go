package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	NightlyReminders bool      `json:"nightlyReminders"`
	CreatedAt        time.Time `json:"createdAt"`
}

type UpdateRemindersRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
