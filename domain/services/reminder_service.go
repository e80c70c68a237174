package services

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReminderService interface {
	// SendReminder composes and sends a reminder for a single user on
	// demand. It always sends, even when there is nothing outstanding.
	SendReminder(ctx context.Context, userID uuid.UUID, now time.Time) error

	// RunNightly processes every opted-in user once. Users with nothing
	// outstanding are skipped; a failure for one user never aborts the
	// rest. The reference time is explicit so runs are deterministic
	// under test.
	RunNightly(ctx context.Context, now time.Time)
}
