package serviceimpl

import (
	"fmt"
	"html"
	"strings"

	"taskmanager/domain/models"
	"taskmanager/domain/ports"
)

const (
	reminderSubject   = "Task Reminder - You have outstanding tasks"
	allCaughtUpText   = "You're all caught up! No overdue, pending or in-progress tasks. Great job!"
	noDueDateFallback = "No due date"
	dueDateLayout     = "Mon, 02 Jan 2006"
)

// ComposeReminder renders the classified sets into a mail payload.
// Sections appear in a fixed order and are omitted when empty; when
// every set is empty a single congratulatory message is produced.
func ComposeReminder(userName string, c *TaskClassification) *ports.Mail {
	if c.IsEmpty() {
		return &ports.Mail{
			Subject: "Task Reminder - All caught up",
			Text:    fmt.Sprintf("Hi %s,\n\n%s\n", userName, allCaughtUpText),
			HTML: fmt.Sprintf("<p>Hi %s,</p><p>%s</p>",
				html.EscapeString(userName), allCaughtUpText),
		}
	}

	var text strings.Builder
	var body strings.Builder

	fmt.Fprintf(&text, "Hi %s,\n\nHere is what needs your attention:\n", userName)
	fmt.Fprintf(&body, "<p>Hi %s,</p><p>Here is what needs your attention:</p>",
		html.EscapeString(userName))

	if len(c.Overdue) > 0 {
		text.WriteString("\nOverdue Tasks:\n")
		body.WriteString("<h3>Overdue Tasks</h3><ul>")
		for _, task := range c.Overdue {
			due := formatDueDate(task)
			fmt.Fprintf(&text, "- %s (due %s)\n", task.Title, due)
			fmt.Fprintf(&body, "<li>%s <em>(due %s)</em></li>", html.EscapeString(task.Title), due)
		}
		body.WriteString("</ul>")
	}

	if len(c.Pending) > 0 {
		text.WriteString("\nPending Tasks:\n")
		body.WriteString("<h3>Pending Tasks</h3><ul>")
		for _, task := range c.Pending {
			if task.DueDate != nil {
				due := task.DueDate.Format(dueDateLayout)
				fmt.Fprintf(&text, "- %s (due %s)\n", task.Title, due)
				fmt.Fprintf(&body, "<li>%s <em>(due %s)</em></li>", html.EscapeString(task.Title), due)
			} else {
				fmt.Fprintf(&text, "- %s\n", task.Title)
				fmt.Fprintf(&body, "<li>%s</li>", html.EscapeString(task.Title))
			}
		}
		body.WriteString("</ul>")
	}

	if len(c.InProgressIncomplete) > 0 {
		text.WriteString("\nIn-Progress Tasks with Incomplete Subtasks:\n")
		body.WriteString("<h3>In-Progress Tasks with Incomplete Subtasks</h3><ul>")
		for _, task := range c.InProgressIncomplete {
			fmt.Fprintf(&text, "- %s\n", task.Title)
			fmt.Fprintf(&body, "<li>%s<ul>", html.EscapeString(task.Title))
			for _, st := range task.Subtasks {
				if st.Completed {
					continue
				}
				fmt.Fprintf(&text, "  - %s\n", st.Title)
				fmt.Fprintf(&body, "<li>%s</li>", html.EscapeString(st.Title))
			}
			body.WriteString("</ul></li>")
		}
		body.WriteString("</ul>")
	}

	return &ports.Mail{
		Subject: reminderSubject,
		Text:    text.String(),
		HTML:    body.String(),
	}
}

// formatDueDate guards against a missing due date even though overdue
// tasks always have one in practice.
func formatDueDate(task *models.Task) string {
	if task.DueDate == nil {
		return noDueDateFallback
	}
	return task.DueDate.Format(dueDateLayout)
}
