package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	tracking       bool

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration

	now func() time.Time
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
		now:               time.Now,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
	gh.tracking = true
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.tracking {
		return
	}
	gh.tracking = false

	duration := gh.now().Sub(gh.touchStartTime)
	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	moved := dx*dx+dy*dy >= gh.swipeThreshold*gh.swipeThreshold

	switch {
	case moved:
		gh.triggerGesture(swipeDirection(dx, dy))
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.tracking = false
}

// swipeDirection picks the dominant axis of a movement
func swipeDirection(dx, dy float32) GestureType {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// swipeArea wraps content and feeds its touches to a GestureHandler.
// Swiping right goes back, swiping left goes forward.
type swipeArea struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	gestures *GestureHandler
}

var _ mobile.Touchable = (*swipeArea)(nil)

func newSwipeArea(content fyne.CanvasObject, onBack, onForward func()) *swipeArea {
	s := &swipeArea{content: content}
	s.gestures = NewGestureHandler(func(g GestureType) {
		switch g {
		case GestureSwipeRight:
			onBack()
		case GestureSwipeLeft:
			onForward()
		}
	})
	s.ExtendBaseWidget(s)
	return s
}

func (s *swipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

func (s *swipeArea) TouchDown(event *mobile.TouchEvent)   { s.gestures.TouchDown(event) }
func (s *swipeArea) TouchUp(event *mobile.TouchEvent)     { s.gestures.TouchUp(event) }
func (s *swipeArea) TouchCancel(event *mobile.TouchEvent) { s.gestures.TouchCancel(event) }
