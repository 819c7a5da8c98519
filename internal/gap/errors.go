// Package gap classifies a job role's required skills against a user's skill
// map and composes the readiness scorer into a full gap report.
package gap

import "fmt"

// RoleNotFoundError indicates the target role id does not exist in the
// catalog. No partial report is produced.
type RoleNotFoundError struct {
	RoleID string
}

func (e *RoleNotFoundError) Error() string {
	return fmt.Sprintf("job role not found: %s", e.RoleID)
}
