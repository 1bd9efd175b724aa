package epaper

import (
	"fmt"
	"time"
)

// DecidePublishOutcome computes the status an edition moves to when the
// acting user hits publish, along with the message shown to them.
//
// A scheduled date strictly in the future always wins, regardless of role.
// Otherwise admins publish immediately and editors queue the edition for
// approval. Nothing advances a Scheduled edition once its date elapses;
// publish has to be triggered again.
func DecidePublishOutcome(e Edition, u User, now time.Time) (EditionStatus, string) {
	if e.ScheduledPublishDate != nil && e.ScheduledPublishDate.After(now) {
		msg := fmt.Sprintf("Edition %q scheduled for publication on %s.",
			e.Title, e.ScheduledPublishDate.Format("Jan 2, 2006 at 3:04 PM"))
		return StatusScheduled, msg
	}
	if u.Role == RoleAdmin {
		return StatusPublished, fmt.Sprintf("Edition %q published!", e.Title)
	}
	return StatusPendingApproval, fmt.Sprintf("Edition %q sent for approval.", e.Title)
}

// canApproveEdition checks whether the acting user may approve an edition in
// the given status. Returns true if approval is allowed, false with an error
// otherwise.
func canApproveEdition(status EditionStatus, role Role) (bool, error) {
	if role != RoleAdmin {
		return false, fmt.Errorf("%w: role %s cannot approve editions", ErrPermissionDenied, role)
	}
	switch status {
	case StatusPendingApproval:
		return true, nil
	case StatusDraft:
		return false, fmt.Errorf("%w: edition has not been sent for approval (status: %s)", ErrInvalidEditionStatus, status)
	case StatusScheduled:
		return false, fmt.Errorf("%w: edition is scheduled and not awaiting approval (status: %s)", ErrInvalidEditionStatus, status)
	case StatusPublished:
		return false, fmt.Errorf("%w: edition is already published (status: %s)", ErrInvalidEditionStatus, status)
	default:
		return false, fmt.Errorf("%w: unknown status %s", ErrInvalidEditionStatus, status)
	}
}
