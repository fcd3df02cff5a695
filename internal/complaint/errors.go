package complaint

import (
	"fmt"
	"sort"
	"strings"

	"complaintdesk/backend/internal/storage"
)

// ErrNotFound is returned when an update or delete names an id with no
// matching record.
var ErrNotFound = storage.ErrComplaintNotFound

// ValidationError carries one human-readable message per failing field.
// Handlers render the map directly in the 400 response body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
