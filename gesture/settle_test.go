package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransition_ValidPaths(t *testing.T) {
	tests := []struct {
		from State
		tr   transition
		want State
	}{
		{StateIdle, transArm, StateArmed},
		{StateArmed, transUpdate, StateUpdating},
		{StateArmed, transComplete, StateCompleting},
		{StateArmed, transCancel, StateCanceling},
		{StateUpdating, transUpdate, StateUpdating},
		{StateUpdating, transComplete, StateCompleting},
		{StateUpdating, transCancel, StateCanceling},
		{StateCompleting, transSettled, StateIdle},
		{StateCanceling, transSettled, StateIdle},
	}

	for _, tt := range tests {
		got, err := applyTransition(tt.from, tt.tr)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestApplyTransition_InvalidPaths(t *testing.T) {
	invalid := []struct {
		from State
		tr   transition
	}{
		{StateIdle, transUpdate},
		{StateIdle, transComplete},
		{StateIdle, transSettled},
		{StateCompleting, transArm},
		{StateCompleting, transUpdate},
		{StateCanceling, transComplete},
	}

	for _, tt := range invalid {
		_, err := applyTransition(tt.from, tt.tr)
		assert.Error(t, err, "%s + %s", tt.from, tt.tr)
	}
}

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"t=0", 0, 0},
		{"t=1", 1, 1},
		{"t=0.5 midpoint", 0.5, 0.5},
		{"t=0.25", 0.25, 0.0625},
		{"t=0.75", 0.75, 0.9375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, easeInOutCubic(tt.t), 1e-9)
		})
	}
}

func TestEaseInOutCubic_Monotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		x := float64(i) / 100
		got := easeInOutCubic(x)
		assert.GreaterOrEqual(t, got+1e-12, prev)
		prev = got
	}
}

func TestSettleAnim_LandsOnTargetsAndRunsContinuationOnce(t *testing.T) {
	content := &fakeContent{offset: -400, width: 1000}
	preview := &fakePreview{offset: 620, width: 1020}

	runs := 0
	anim := &settleAnim{
		duration:    250 * time.Millisecond,
		contentFrom: -400, contentTo: -1020,
		previewFrom: 620, previewTo: 0,
		movePreview: true,
		then:        func() { runs++ },
	}

	finished := false
	for i := 0; i < 100 && !finished; i++ {
		finished = anim.step(16*time.Millisecond, content, preview)
	}
	require.True(t, finished)
	assert.Equal(t, -1020.0, content.offset)
	assert.Equal(t, 0.0, preview.offset)
	assert.Equal(t, 1, runs)

	// Further steps must not rerun the continuation.
	anim.step(16*time.Millisecond, content, preview)
	assert.Equal(t, 1, runs)
}

func TestSettleAnim_ZeroDurationFinishesImmediately(t *testing.T) {
	content := &fakeContent{offset: -50, width: 1000}
	preview := &fakePreview{width: 1020}

	anim := &settleAnim{contentFrom: -50, contentTo: 0}
	assert.True(t, anim.step(time.Millisecond, content, preview))
	assert.Equal(t, 0.0, content.offset)
}

func TestFadeAnim_ConvergesToZero(t *testing.T) {
	preview := &fakePreview{opacity: 1, width: 1020}

	runs := 0
	fade := newFadeAnim(fadeFPS, 9.0, 1.0, 1)
	fade.then = func() { runs++ }

	finished := false
	for i := 0; i < 600 && !finished; i++ {
		finished = fade.step(preview)
	}
	require.True(t, finished, "fade spring must converge")
	assert.Equal(t, 0.0, preview.opacity)
	assert.Equal(t, 1, runs)
	assert.False(t, math.IsNaN(fade.opacity))
}
