package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"github.com/stretchr/testify/assert"
)

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func recordGestures() (*GestureHandler, *[]GestureType, *time.Time) {
	var got []GestureType
	clock := time.Unix(0, 0)
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })
	gh.now = func() time.Time { return clock }
	return gh, &got, &clock
}

func TestGestureHandler_Swipes(t *testing.T) {
	tests := []struct {
		name     string
		endX     float32
		endY     float32
		expected GestureType
	}{
		{"right", 200, 110, GestureSwipeRight},
		{"left", 0, 90, GestureSwipeLeft},
		{"down", 110, 220, GestureSwipeDown},
		{"up", 90, 10, GestureSwipeUp},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gh, got, _ := recordGestures()
			gh.TouchDown(touchAt(100, 100))
			gh.TouchUp(touchAt(test.endX, test.endY))
			assert.Equal(t, []GestureType{test.expected}, *got)
		})
	}
}

func TestGestureHandler_TapAndLongPress(t *testing.T) {
	gh, got, clock := recordGestures()

	gh.TouchDown(touchAt(10, 10))
	gh.TouchUp(touchAt(12, 11))

	gh.TouchDown(touchAt(10, 10))
	*clock = clock.Add(DefaultLongPressDuration)
	gh.TouchUp(touchAt(10, 10))

	assert.Equal(t, []GestureType{GestureTap, GestureLongPress}, *got)
}

func TestGestureHandler_CancelDropsTouch(t *testing.T) {
	gh, got, _ := recordGestures()

	gh.TouchDown(touchAt(0, 0))
	gh.TouchCancel(touchAt(0, 0))
	gh.TouchUp(touchAt(300, 0))

	assert.Empty(t, *got)
}

func TestSwipeArea_Navigation(t *testing.T) {
	var back, forward int
	area := newSwipeArea(nil, func() { back++ }, func() { forward++ })
	area.gestures.now = func() time.Time { return time.Unix(0, 0) }

	area.TouchDown(touchAt(100, 100))
	area.TouchUp(touchAt(250, 100))
	area.TouchDown(touchAt(100, 100))
	area.TouchUp(touchAt(-50, 100))
	area.TouchDown(touchAt(100, 100))
	area.TouchUp(touchAt(100, 300))

	assert.Equal(t, 1, back)
	assert.Equal(t, 1, forward)
}
