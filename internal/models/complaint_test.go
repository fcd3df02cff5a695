package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"complaintdesk/backend/internal/models"
)

func validComplaint() models.Complaint {
	return models.Complaint{
		Title:       "Late delivery",
		Description: "Package arrived 5 days late",
		Category:    models.CategoryService,
		Priority:    models.PriorityHigh,
	}
}

// TestValidate_ValidComplaint verifies that a well-formed complaint
// produces no field errors.
func TestValidate_ValidComplaint(t *testing.T) {
	c := validComplaint()
	assert.Empty(t, c.Validate())
}

// TestValidate_FieldErrors runs the boundary cases for every field and
// checks the per-field messages.
func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *models.Complaint)
		wantField string
	}{
		{
			name:      "missing title",
			mutate:    func(c *models.Complaint) { c.Title = "" },
			wantField: "title",
		},
		{
			name:      "whitespace-only title",
			mutate:    func(c *models.Complaint) { c.Title = "   \t  " },
			wantField: "title",
		},
		{
			name:      "title over 100 characters",
			mutate:    func(c *models.Complaint) { c.Title = strings.Repeat("a", 101) },
			wantField: "title",
		},
		{
			name:      "missing description",
			mutate:    func(c *models.Complaint) { c.Description = "" },
			wantField: "description",
		},
		{
			name:      "description over 1000 characters",
			mutate:    func(c *models.Complaint) { c.Description = strings.Repeat("b", 1001) },
			wantField: "description",
		},
		{
			name:      "missing category",
			mutate:    func(c *models.Complaint) { c.Category = "" },
			wantField: "category",
		},
		{
			name:      "unknown category",
			mutate:    func(c *models.Complaint) { c.Category = "Billing" },
			wantField: "category",
		},
		{
			name:      "missing priority",
			mutate:    func(c *models.Complaint) { c.Priority = "" },
			wantField: "priority",
		},
		{
			name:      "unknown priority",
			mutate:    func(c *models.Complaint) { c.Priority = "Urgent" },
			wantField: "priority",
		},
		{
			name:      "unknown status",
			mutate:    func(c *models.Complaint) { c.Status = "Closed" },
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validComplaint()
			tt.mutate(&c)

			errs := c.Validate()
			assert.Len(t, errs, 1, "exactly one field should fail")
			assert.Contains(t, errs, tt.wantField)
			assert.NotEmpty(t, errs[tt.wantField])
		})
	}
}

// TestValidate_ReportsAllFailingFields verifies that every failing field
// gets its own entry, not just the first one encountered.
func TestValidate_ReportsAllFailingFields(t *testing.T) {
	c := models.Complaint{}

	errs := c.Validate()

	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "priority")
	assert.NotContains(t, errs, "status", "empty status is filled by defaults, not an error")
}

// TestValidate_BoundaryLengths verifies that exactly 100 / 1000
// characters are still accepted.
func TestValidate_BoundaryLengths(t *testing.T) {
	c := validComplaint()
	c.Title = strings.Repeat("a", 100)
	c.Description = strings.Repeat("b", 1000)

	assert.Empty(t, c.Validate())
}

func TestApplyDefaults(t *testing.T) {
	now := time.Now()

	c := validComplaint()
	c.Title = "  Late delivery  "
	c.ApplyDefaults(now)

	assert.Equal(t, "Late delivery", c.Title, "title should be stored trimmed")
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, now, c.DateSubmitted)
}

// TestApplyDefaults_PreservesExistingValues verifies that defaults never
// overwrite a status or timestamp that is already set.
func TestApplyDefaults_PreservesExistingValues(t *testing.T) {
	submitted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c := validComplaint()
	c.Status = models.StatusResolved
	c.DateSubmitted = submitted
	c.ApplyDefaults(time.Now())

	assert.Equal(t, models.StatusResolved, c.Status)
	assert.Equal(t, submitted, c.DateSubmitted)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, models.CategoryProduct.IsValid())
	assert.True(t, models.CategoryService.IsValid())
	assert.True(t, models.CategorySupport.IsValid())
	assert.False(t, models.Category("Other").IsValid())

	assert.True(t, models.PriorityLow.IsValid())
	assert.True(t, models.PriorityMedium.IsValid())
	assert.True(t, models.PriorityHigh.IsValid())
	assert.False(t, models.Priority("Critical").IsValid())

	assert.True(t, models.StatusPending.IsValid())
	assert.True(t, models.StatusInProgress.IsValid())
	assert.True(t, models.StatusResolved.IsValid())
	assert.False(t, models.Status("Open").IsValid())
}
