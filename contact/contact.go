// Package contact holds the state machine behind the contact form.
//
// Submission is simulated: after SubmitDelay the form always succeeds, its
// fields are cleared and a success banner is shown until BannerDelay passes.
// Nothing leaves the client.
//
// A Controller is not safe for concurrent use. Timer callbacks must be
// delivered on the same goroutine that handles UI events; the Scheduler
// supplied by the caller is responsible for that.
package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// DefaultSubmitDelay is the simulated network latency
	DefaultSubmitDelay = 1500 * time.Millisecond
	// DefaultBannerDelay is how long the success banner stays up
	DefaultBannerDelay = 5000 * time.Millisecond
)

var (
	// ErrIncomplete is returned when a required field is empty
	ErrIncomplete = errors.New("all fields are required")
	// ErrSubmissionInFlight is returned when submit fires while submitting
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	// ErrUnknownField is returned by SetField for names outside the form
	ErrUnknownField = errors.New("unknown form field")
	// ErrClosed is returned once the controller has been closed
	ErrClosed = errors.New("contact form closed")
)

// Status of the last submission
type Status int

const (
	StatusNone Status = iota
	StatusSuccess
	// StatusError is reserved for a real backend; the simulated submission never fails
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "none"
	}
}

// Fields are the values typed into the form
type Fields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Complete reports whether every field has a value. Like the browser's
// required check, whitespace counts as a value.
func (f Fields) Complete() bool {
	for _, v := range []string{f.Name, f.Email, f.Subject, f.Message} {
		if v == "" {
			return false
		}
	}
	return true
}

// State is a snapshot of the controller
type State struct {
	Fields     Fields
	Submitting bool
	Status     Status
	// Reference identifies the last successful submission
	Reference string
}

// Timer is a pending callback that can be cancelled
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Options configure a Controller
type Options struct {
	SubmitDelay time.Duration
	BannerDelay time.Duration
	// OnChange runs after each timer-driven transition
	OnChange func(State)
	// NewReference generates submission references, defaults to a ULID
	NewReference func() string
}

// Controller drives the contact form through Idle, Submitting and
// Idle-with-result
type Controller struct {
	sched Scheduler
	opts  Options

	state State

	submitTimer Timer
	bannerTimer Timer
	// generation invalidates callbacks from cancelled timers that already fired
	generation uint64
	closed     bool
}

// NewController returns an idle controller. Zero delays use the defaults.
func NewController(sched Scheduler, opts Options) *Controller {
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = DefaultSubmitDelay
	}
	if opts.BannerDelay <= 0 {
		opts.BannerDelay = DefaultBannerDelay
	}
	if opts.NewReference == nil {
		opts.NewReference = func() string { return ulid.Make().String() }
	}
	return &Controller{sched: sched, opts: opts}
}

// State returns the current snapshot
func (c *Controller) State() State {
	return c.state
}

// SetField replaces one field by its form name. Edits are accepted in every
// state and never touch pending timers.
func (c *Controller) SetField(name, value string) error {
	switch name {
	case "name":
		c.state.Fields.Name = value
	case "email":
		c.state.Fields.Email = value
	case "subject":
		c.state.Fields.Subject = value
	case "message":
		c.state.Fields.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Submit starts a simulated submission. It leaves the state untouched and
// returns an error when the form is incomplete or already submitting.
func (c *Controller) Submit() error {
	switch {
	case c.closed:
		return ErrClosed
	case c.state.Submitting:
		return ErrSubmissionInFlight
	case !c.state.Fields.Complete():
		return ErrIncomplete
	}

	// a new submission takes over from the previous banner
	c.stop(&c.bannerTimer)
	c.state.Submitting = true
	c.state.Status = StatusNone

	gen := c.generation
	c.submitTimer = c.sched.AfterFunc(c.opts.SubmitDelay, func() {
		if c.stale(gen) {
			return
		}
		c.complete()
	})
	return nil
}

func (c *Controller) complete() {
	c.submitTimer = nil
	c.state.Submitting = false
	c.state.Status = StatusSuccess
	c.state.Fields = Fields{}
	c.state.Reference = c.opts.NewReference()
	c.notify()

	c.generation++
	gen := c.generation
	c.bannerTimer = c.sched.AfterFunc(c.opts.BannerDelay, func() {
		if c.stale(gen) {
			return
		}
		c.bannerTimer = nil
		c.state.Status = StatusNone
		c.notify()
	})
}

// Close cancels pending timers. Callbacks that already fired are ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	c.stop(&c.submitTimer)
	c.stop(&c.bannerTimer)
}

func (c *Controller) stop(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
		c.generation++
	}
}

func (c *Controller) stale(gen uint64) bool {
	return c.closed || gen != c.generation
}

func (c *Controller) notify() {
	if c.opts.OnChange != nil {
		c.opts.OnChange(c.state)
	}
}

// DelaysFromEnv reads CONTACT_SUBMIT_DELAY and CONTACT_BANNER_DELAY as Go
// durations, falling back to the defaults when unset, invalid or not positive
func DelaysFromEnv(getenv func(string) string) (submit, banner time.Duration) {
	return envDuration(getenv, "CONTACT_SUBMIT_DELAY", DefaultSubmitDelay),
		envDuration(getenv, "CONTACT_BANNER_DELAY", DefaultBannerDelay)
}

func envDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
