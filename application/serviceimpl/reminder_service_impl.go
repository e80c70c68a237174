package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"taskmanager/domain/models"
	"taskmanager/domain/ports"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
)

type ReminderServiceImpl struct {
	taskRepo    repositories.TaskRepository
	userRepo    repositories.UserRepository
	mailer      ports.MailerPort
	concurrency int
}

func NewReminderService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository, mailer ports.MailerPort, concurrency int) services.ReminderService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ReminderServiceImpl{
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		concurrency: concurrency,
	}
}

// SendReminder handles the on-demand "send now" action. Unlike the
// nightly job it always sends, including the all-caught-up message.
func (s *ReminderServiceImpl) SendReminder(ctx context.Context, userID uuid.UUID, now time.Time) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.remindUser(ctx, user, now, true); err != nil {
		return err
	}

	logger.InfoContext(ctx, "On-demand reminder sent", "user_id", userID)
	return nil
}

// RunNightly processes all opted-in users for one scheduler tick. The
// per-user loop is bounded but unordered; a failure for one user is
// logged and never aborts the others.
func (s *ReminderServiceImpl) RunNightly(ctx context.Context, now time.Time) {
	started := time.Now()
	logger.InfoContext(ctx, "Nightly reminder run started", "reference_time", now.Format(time.RFC3339))

	users, err := s.userRepo.ListReminderOptIn(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load opted-in users, skipping run", "error", err)
		return
	}

	var sent, failed, skipped atomic.Int64

	// Errors stay inside each goroutine so one user cannot cancel the
	// batch; the group only bounds concurrency.
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, user := range users {
		user := user
		g.Go(func() error {
			switch err := s.remindUser(ctx, user, now, false); {
			case errors.Is(err, errNothingOutstanding):
				logger.InfoContext(ctx, "No outstanding tasks, skipping user", "user_id", user.ID)
				skipped.Add(1)
			case err != nil:
				logger.ErrorContext(ctx, "Reminder failed for user", "user_id", user.ID, "error", err)
				failed.Add(1)
			default:
				sent.Add(1)
			}
			return nil
		})
	}

	g.Wait()

	logger.InfoContext(ctx, "Nightly reminder run finished",
		"users", len(users),
		"sent", sent.Load(),
		"failed", failed.Load(),
		"skipped", skipped.Load(),
		"duration", time.Since(started).String(),
	)
}

// errNothingOutstanding signals that a scheduled run found nothing to
// report for a user. Internal to this package; the on-demand path never
// produces it.
var errNothingOutstanding = errors.New("nothing outstanding")

func (s *ReminderServiceImpl) remindUser(ctx context.Context, user *models.User, now time.Time, alwaysSend bool) error {
	tasks, err := s.taskRepo.List(ctx, user.ID, repositories.TaskFilter{})
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	classification := ClassifyTasks(tasks, now)
	if classification.IsEmpty() && !alwaysSend {
		return errNothingOutstanding
	}

	mail := ComposeReminder(user.Name, classification)
	mail.To = user.Email

	deliveryID, err := s.mailer.Send(ctx, mail)
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrDelivery, err)
	}

	logger.InfoContext(ctx, "Reminder delivered", "user_id", user.ID, "delivery_id", deliveryID)
	return nil
}
