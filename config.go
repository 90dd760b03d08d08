package bottomsheet

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/esimov/bottomsheet/anim"
)

var (
	// ErrInvalidConfig is returned when the sheet configuration is out of range.
	ErrInvalidConfig = errors.New("bottomsheet: invalid configuration")

	// ErrAlreadyAttached is returned when the panels are attached a second time.
	ErrAlreadyAttached = errors.New("bottomsheet: panels already attached")

	// ErrRestoreUnsupported is returned when a sheet is decoded from a serialized form.
	ErrRestoreUnsupported = errors.New("bottomsheet: restoring a sheet from serialized state is not supported")
)

// Default sheet behavior.
const (
	// DefaultVelocityThreshold is the flick speed, in Dp per second,
	// above which the gesture commits regardless of the distance travelled.
	DefaultVelocityThreshold = 1000

	DefaultShowDuration = 200 * time.Millisecond
	DefaultHideDuration = 300 * time.Millisecond

	DefaultSpringDamping  = 0.8
	DefaultSpringVelocity = 0.5
)

// Config holds the geometry of the sheet. All the values are expressed in Dp.
type Config struct {
	// Height is the height of the fully expanded sheet.
	Height float32
	// InitialOffset is the visible height of the collapsed sheet,
	// measured from the bottom edge of the container.
	InitialOffset float32
}

// Validate checks the configuration. It never adjusts the values.
func (c Config) Validate() error {
	switch {
	case !isFinite(c.Height) || !isFinite(c.InitialOffset):
		return fmt.Errorf("%w: height and initial offset must be finite numbers", ErrInvalidConfig)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidConfig, c.Height)
	case c.InitialOffset < 0:
		return fmt.Errorf("%w: initial offset must not be negative, got %v", ErrInvalidConfig, c.InitialOffset)
	case c.InitialOffset > c.Height:
		return fmt.Errorf("%w: initial offset %v exceeds the height %v", ErrInvalidConfig, c.InitialOffset, c.Height)
	}
	return nil
}

// offset returns the rest offset of the sheet in the given state.
func (c Config) offset(s State) float32 {
	if s == Full {
		return -c.Height
	}
	return -c.InitialOffset
}

// Behavior tunes the snap decisions and the transitions between the rest states.
// The zero value of any field selects its default.
type Behavior struct {
	VelocityThreshold float32

	ShowDuration time.Duration
	ShowCurve    anim.Curve

	HideDuration time.Duration
	HideCurve    anim.Curve
}

// withDefaults fills in the unset fields.
func (b Behavior) withDefaults() Behavior {
	if b.VelocityThreshold <= 0 {
		b.VelocityThreshold = DefaultVelocityThreshold
	}
	if b.ShowDuration <= 0 {
		b.ShowDuration = DefaultShowDuration
	}
	if b.ShowCurve == nil {
		b.ShowCurve = anim.EaseInOut
	}
	if b.HideDuration <= 0 {
		b.HideDuration = DefaultHideDuration
	}
	if b.HideCurve == nil {
		b.HideCurve = anim.Spring{
			Damping:  DefaultSpringDamping,
			Velocity: DefaultSpringVelocity,
		}
	}
	return b
}

func isFinite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
