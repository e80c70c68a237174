package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskmanager/domain/models"
	"taskmanager/domain/services"
)

func addUser(t *testing.T, repo *fakeUserRepo, name, email string, optIn bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:               uuid.New(),
		Name:             name,
		Email:            email,
		Password:         "hashed",
		NightlyReminders: optIn,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func addOverdueTask(t *testing.T, repo *fakeTaskRepo, userID uuid.UUID, title string) {
	t.Helper()
	yesterday := testNow.Add(-24 * time.Hour)
	task := makeTask(func(task *models.Task) {
		task.UserID = userID
		task.Title = title
		task.Status = models.StatusPending
		task.DueDate = &yesterday
	})
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("create task %s: %v", title, err)
	}
}

func TestRunNightlySkipsUsersWithNothingOutstanding(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	mailer := newFakeMailer()

	busy := addUser(t, userRepo, "Busy", "busy@example.com", true)
	addUser(t, userRepo, "Idle", "idle@example.com", true)
	addOverdueTask(t, taskRepo, busy.ID, "Pay rent")

	svc := NewReminderService(taskRepo, userRepo, mailer, 4)
	svc.RunNightly(context.Background(), testNow)

	if got := mailer.sentCount(); got != 1 {
		t.Fatalf("sent %d mails, want 1", got)
	}
	if mailer.sentTo("idle@example.com") != nil {
		t.Error("user with nothing outstanding received a mail")
	}
	if mail := mailer.sentTo("busy@example.com"); mail == nil {
		t.Error("user with overdue task did not receive a mail")
	} else if !strings.Contains(mail.Text, "Pay rent") {
		t.Errorf("mail body missing task title: %q", mail.Text)
	}
}

func TestRunNightlyIgnoresOptedOutUsers(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	mailer := newFakeMailer()

	optedOut := addUser(t, userRepo, "Out", "out@example.com", false)
	addOverdueTask(t, taskRepo, optedOut.ID, "Pay rent")

	svc := NewReminderService(taskRepo, userRepo, mailer, 4)
	svc.RunNightly(context.Background(), testNow)

	if got := mailer.sentCount(); got != 0 {
		t.Fatalf("sent %d mails, want 0", got)
	}
}

func TestRunNightlyIsolatesPerUserFailures(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	mailer := newFakeMailer()

	first := addUser(t, userRepo, "First", "first@example.com", true)
	second := addUser(t, userRepo, "Second", "second@example.com", true)
	third := addUser(t, userRepo, "Third", "third@example.com", true)
	addOverdueTask(t, taskRepo, first.ID, "Task A")
	addOverdueTask(t, taskRepo, second.ID, "Task B")
	addOverdueTask(t, taskRepo, third.ID, "Task C")

	mailer.failFor["second@example.com"] = true

	svc := NewReminderService(taskRepo, userRepo, mailer, 2)
	svc.RunNightly(context.Background(), testNow)

	if mailer.sentTo("first@example.com") == nil {
		t.Error("delivery failure for one user blocked another")
	}
	if mailer.sentTo("third@example.com") == nil {
		t.Error("delivery failure for one user blocked another")
	}
	if mailer.sentTo("second@example.com") != nil {
		t.Error("failing recipient was recorded as delivered")
	}
}

func TestRunNightlyIsolatesAggregationFailures(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	mailer := newFakeMailer()

	first := addUser(t, userRepo, "First", "first@example.com", true)
	second := addUser(t, userRepo, "Second", "second@example.com", true)
	third := addUser(t, userRepo, "Third", "third@example.com", true)
	addOverdueTask(t, taskRepo, first.ID, "Task A")
	addOverdueTask(t, taskRepo, second.ID, "Task B")
	addOverdueTask(t, taskRepo, third.ID, "Task C")

	// Loading one user's tasks fails before anything is composed.
	taskRepo.listErrFor[second.ID] = errors.New("store unavailable")

	svc := NewReminderService(taskRepo, userRepo, mailer, 2)
	svc.RunNightly(context.Background(), testNow)

	if mailer.sentTo("first@example.com") == nil {
		t.Error("task load failure for one user blocked another")
	}
	if mailer.sentTo("third@example.com") == nil {
		t.Error("task load failure for one user blocked another")
	}
	if mailer.sentTo("second@example.com") != nil {
		t.Error("user whose tasks failed to load still received a mail")
	}
}

func TestSendReminderAlwaysSends(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	mailer := newFakeMailer()

	// Opted out of nightly mails and has no tasks at all. On-demand
	// send still goes out with the all-caught-up message.
	user := addUser(t, userRepo, "Quiet", "quiet@example.com", false)

	svc := NewReminderService(taskRepo, userRepo, mailer, 1)
	if err := svc.SendReminder(context.Background(), user.ID, testNow); err != nil {
		t.Fatalf("SendReminder() error = %v", err)
	}

	mail := mailer.sentTo("quiet@example.com")
	if mail == nil {
		t.Fatal("no mail delivered")
	}
	if !strings.Contains(mail.Text, allCaughtUpText) {
		t.Errorf("mail body = %q, want congratulatory message", mail.Text)
	}
}

func TestSendReminderWrapsDeliveryFailure(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	mailer := newFakeMailer()

	user := addUser(t, userRepo, "Unlucky", "unlucky@example.com", true)
	mailer.failFor["unlucky@example.com"] = true

	svc := NewReminderService(taskRepo, userRepo, mailer, 1)
	err := svc.SendReminder(context.Background(), user.ID, testNow)
	if !errors.Is(err, services.ErrDelivery) {
		t.Fatalf("SendReminder() error = %v, want ErrDelivery", err)
	}
}
