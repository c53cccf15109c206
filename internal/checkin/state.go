package checkin

import (
	"errors"
	"fmt"

	"vibescore/internal/domain"
	"vibescore/pkg/e"
)

type State int

const (
	Idle State = iota
	RequestingLocation
	Ready
	Verifying
	CheckedIn
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case RequestingLocation:
		return "requesting_location"
	case Ready:
		return "ready"
	case Verifying:
		return "verifying"
	case CheckedIn:
		return "checked_in"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Reason string

const (
	ReasonLocationUnavailable Reason = "location_unavailable"
	ReasonEventNotLive        Reason = "event_not_live"
	ReasonOutOfRange          Reason = "out_of_range"
	ReasonVerificationError   Reason = "verification_error"
)

func (r Reason) sentinel() error {
	switch r {
	case ReasonLocationUnavailable:
		return e.ErrLocationUnavailable
	case ReasonEventNotLive:
		return e.ErrEventNotLive
	case ReasonOutOfRange:
		return e.ErrOutOfRange
	default:
		return e.ErrVerification
	}
}

var (
	ErrLocationRequired     = errors.New("checkin: location required")
	ErrVerificationInFlight = errors.New("checkin: verification in flight")
	ErrInvalidTransition    = errors.New("checkin: invalid transition")
)

// Failure is the payload of the Failed state. It matches the pkg/e sentinel
// of its reason under errors.Is, and the underlying cause when there is one.
type Failure struct {
	Reason      Reason
	EventID     string
	EventStatus domain.EventStatus
	Result      *domain.CheckInResult
	Cause       error
}

func (f *Failure) Error() string {
	switch f.Reason {
	case ReasonOutOfRange:
		if f.Result != nil {
			return fmt.Sprintf("%s: %.0fm away, radius %.0fm", f.Reason.sentinel(), f.Result.DistanceM, f.Result.RadiusM)
		}
	case ReasonEventNotLive:
		if f.EventStatus != "" {
			return fmt.Sprintf("%s: event is %s", f.Reason.sentinel(), f.EventStatus)
		}
	}
	if f.Cause != nil {
		return fmt.Sprintf("%s: %v", f.Reason.sentinel(), f.Cause)
	}
	return f.Reason.sentinel().Error()
}

func (f *Failure) Unwrap() []error {
	if f.Cause != nil {
		return []error{f.Reason.sentinel(), f.Cause}
	}
	return []error{f.Reason.sentinel()}
}

// Retryable reports which retry actions make sense for the failure.
func (f *Failure) Retryable() (location, verify bool) {
	switch f.Reason {
	case ReasonLocationUnavailable:
		return true, false
	case ReasonOutOfRange:
		return true, true
	case ReasonVerificationError:
		return true, true
	default:
		return false, false
	}
}
