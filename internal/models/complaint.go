package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"complaintdesk/backend/internal/config"
)

// Category classifies what a complaint is about.
type Category string

const (
	CategoryProduct Category = "Product"
	CategoryService Category = "Service"
	CategorySupport Category = "Support"
)

// IsValid reports whether the category is one of the enumerated values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryProduct, CategoryService, CategorySupport:
		return true
	}
	return false
}

// Priority expresses how urgent a complaint is.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// IsValid reports whether the priority is one of the enumerated values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status tracks the resolution progress of a complaint. Any status may
// follow any other; Resolved is not terminal and may be reopened.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// IsValid reports whether the status is one of the enumerated values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Complaint is a user-submitted issue report. The store assigns the ID on
// creation; it is exposed as a hex string in JSON.
type Complaint struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Category      Category           `bson:"category" json:"category"`
	Priority      Priority           `bson:"priority" json:"priority"`
	Status        Status             `bson:"status" json:"status"`
	DateSubmitted time.Time          `bson:"dateSubmitted" json:"dateSubmitted"`
}

// Validate checks the field constraints and returns one message per
// failing field. An empty map means the complaint is valid. Title is
// compared after trimming, matching how it is stored.
func (c *Complaint) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(c.Title) == "" {
		errs["title"] = "Title is required."
	} else if len(strings.TrimSpace(c.Title)) > config.TitleMaxLength {
		errs["title"] = fmt.Sprintf("Title cannot be more than %d characters.", config.TitleMaxLength)
	}

	if c.Description == "" {
		errs["description"] = "Description is required."
	} else if len(c.Description) > config.DescriptionMaxLength {
		errs["description"] = fmt.Sprintf("Description cannot be more than %d characters.", config.DescriptionMaxLength)
	}

	if c.Category == "" {
		errs["category"] = "Category is required."
	} else if !c.Category.IsValid() {
		errs["category"] = fmt.Sprintf("`%s` is not a valid category.", c.Category)
	}

	if c.Priority == "" {
		errs["priority"] = "Priority is required."
	} else if !c.Priority.IsValid() {
		errs["priority"] = fmt.Sprintf("`%s` is not a valid priority.", c.Priority)
	}

	if c.Status != "" && !c.Status.IsValid() {
		errs["status"] = fmt.Sprintf("`%s` is not a valid status.", c.Status)
	}

	return errs
}

// ApplyDefaults trims the title and fills the creation defaults: status
// Pending and dateSubmitted set to now. Fields that already carry a value
// are left untouched.
func (c *Complaint) ApplyDefaults(now time.Time) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Status == "" {
		c.Status = StatusPending
	}
	if c.DateSubmitted.IsZero() {
		c.DateSubmitted = now
	}
}
