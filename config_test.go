package bottomsheet

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/esimov/bottomsheet/anim"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{"regular", Config{Height: 500, InitialOffset: 80}, true},
		{"no peek", Config{Height: 500, InitialOffset: 0}, true},
		{"offset equals height", Config{Height: 500, InitialOffset: 500}, true},
		{"zero height", Config{Height: 0, InitialOffset: 0}, false},
		{"negative height", Config{Height: -10, InitialOffset: 0}, false},
		{"negative offset", Config{Height: 500, InitialOffset: -1}, false},
		{"offset above height", Config{Height: 500, InitialOffset: 501}, false},
		{"nan height", Config{Height: float32(math.NaN()), InitialOffset: 10}, false},
		{"inf offset", Config{Height: 500, InitialOffset: float32(math.Inf(1))}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestBehavior_Defaults(t *testing.T) {
	b := Behavior{}.withDefaults()

	assert.Equal(t, float32(DefaultVelocityThreshold), b.VelocityThreshold)
	assert.Equal(t, DefaultShowDuration, b.ShowDuration)
	assert.Equal(t, DefaultHideDuration, b.HideDuration)
	assert.Equal(t, anim.EaseInOut.Progress(time.Second/4, time.Second), b.ShowCurve.Progress(time.Second/4, time.Second))
	assert.Equal(t, anim.Spring{Damping: 0.8, Velocity: 0.5}, b.HideCurve)

	b = Behavior{VelocityThreshold: 300, ShowDuration: time.Second, ShowCurve: anim.Linear}.withDefaults()
	assert.Equal(t, float32(300), b.VelocityThreshold)
	assert.Equal(t, time.Second, b.ShowDuration)
	assert.Equal(t, float32(0.25), b.ShowCurve.Progress(time.Second/4, time.Second))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Initial", Initial.String())
	assert.Equal(t, "Full", Full.String())
	assert.Equal(t, "State(7)", State(7).String())
	assert.Equal(t, "Failed", Failed.String())
}
