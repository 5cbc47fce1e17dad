// Package access decides whether a user may enroll in a course.
package access

import (
	"coursehub/errs"
	"coursehub/models"
)

// Reason explains a denied decision.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonAlreadyEnrolled Reason = "already enrolled"
	ReasonNotFound        Reason = "not found"
	ReasonPaymentRequired Reason = "payment required"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

var allow = Decision{Allowed: true}

func deny(r Reason) Decision {
	return Decision{Reason: r}
}

// CanEnroll evaluates the enrollment rules in order. A nil course means it does not exist.
//
// Any paid tier may enroll in any priced course; tiers are not ranked against prices.
func CanEnroll(user *models.User, course *models.Course, alreadyEnrolled bool) Decision {
	switch {
	case alreadyEnrolled:
		return deny(ReasonAlreadyEnrolled)
	case course == nil:
		return deny(ReasonNotFound)
	case course.IsFree():
		return allow
	case user != nil && user.HasUnlimitedAccess:
		return allow
	case user == nil || user.SubscriptionTier == "" || user.SubscriptionTier == models.TierFree:
		return deny(ReasonPaymentRequired)
	default:
		return allow
	}
}

// Err converts a denied decision into the matching error, nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonAlreadyEnrolled:
		return errs.ErrAlreadyEnrolled
	case ReasonNotFound:
		return errs.ErrCourseNotFound
	case ReasonPaymentRequired:
		return errs.ErrPaymentRequired
	default:
		return errs.New(errs.KindForbidden, "access.CanEnroll", "Enrollment not permitted")
	}
}
