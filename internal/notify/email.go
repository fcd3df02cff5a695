package notify

import (
	"fmt"
	"strings"

	"complaintdesk/backend/internal/models"
)

// priorityColor returns the severity hint used when rendering a priority
// in the administrator email.
func priorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return "red"
	case models.PriorityMedium:
		return "orange"
	default:
		return "green"
	}
}

// BuildEmail formats the subject and HTML body for an event. The output
// is deterministic for a given event type and complaint.
func BuildEmail(t EventType, c models.Complaint) (subject, html string) {
	date := c.DateSubmitted.Format("1/2/2006, 3:04:05 PM")

	switch t {
	case EventNewComplaint:
		subject = fmt.Sprintf("[NEW Complaint] %s", c.Title)
		html = fmt.Sprintf(`
            <h2>A New Complaint Has Been Submitted</h2>
            <p><strong>Title:</strong> %s</p>
            <p><strong>Category:</strong> %s</p>
            <p><strong>Priority:</strong> <span style="color: %s;">%s</span></p>
            <p><strong>Submitted On:</strong> %s</p>
            <hr>
            <h3>Description:</h3>
            <p>%s</p>
            <p>Please log in to the Admin Dashboard to review and manage this complaint.</p>
        `, c.Title, c.Category, priorityColor(c.Priority), c.Priority, date,
			strings.ReplaceAll(c.Description, "\n", "<br>"))

	case EventStatusUpdate:
		subject = fmt.Sprintf("[Status Updated] Complaint: %s", c.Title)
		html = fmt.Sprintf(`
            <h2>Complaint Status Updated!</h2>
            <p>The status for the complaint titled <strong>"%s"</strong> has been updated.</p>
            <p><strong>New Status:</strong> <span style="font-weight: bold; color: blue;">%s</span></p>
            <p><strong>Update Date:</strong> %s</p>
            <p>Thank you for managing the complaint system.</p>
        `, c.Title, c.Status, date)
	}

	return subject, html
}
