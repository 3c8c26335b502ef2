package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadinessNeedsBothSignals(t *testing.T) {
	tests := []struct {
		name       string
		mountFirst bool
	}{
		{name: "mounted before progress completes", mountFirst: true},
		{name: "progress completes before mount", mountFirst: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loading := NewLoadingIndicator(WithLoadingStep(50))
			coord := NewCoordinator()
			r := NewReadiness(loading, coord)

			fired := 0
			r.OnReady(func() { fired++ })

			if tt.mountFirst {
				coord.NotifyLoaded()
			} else {
				loading.Step()
				loading.Step()
			}
			assert.False(t, r.Ready())
			assert.Zero(t, fired)

			if tt.mountFirst {
				loading.Step()
				loading.Step()
			} else {
				coord.NotifyLoaded()
			}
			assert.True(t, r.Ready())
			assert.Equal(t, 1, fired)

			coord.NotifyLoaded()
			loading.Step()
			assert.Equal(t, 1, fired)
		})
	}
}

func TestReadinessAlreadyComplete(t *testing.T) {
	loading := NewLoadingIndicator(WithLoadingStep(100))
	loading.Step()
	coord := NewCoordinator()
	coord.NotifyLoaded()

	r := NewReadiness(loading, coord)
	assert.True(t, r.Ready())

	called := false
	r.OnReady(func() { called = true })
	assert.True(t, called)
}
