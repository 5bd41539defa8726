package navigation

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Empty(t *testing.T) {
	h := New()
	assert.False(t, h.HasRoot())
	assert.Equal(t, "", h.Current())
	assert.Equal(t, "", h.DisplayPath())
	assert.False(t, h.Back())
	assert.False(t, h.Forward())
	assert.False(t, h.Home())
}

func TestHistory_BackAndForward(t *testing.T) {
	root := filepath.Join("/", "media")
	h := New()
	h.SetRoot(root)

	a := h.NavigateChild("a")
	b := h.NavigateChild("b")
	assert.Equal(t, filepath.Join(root, "a"), a)
	assert.Equal(t, filepath.Join(root, "a", "b"), b)
	assert.Equal(t, b, h.Current())
	assert.True(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())

	assert.True(t, h.Back())
	assert.Equal(t, a, h.Current())
	assert.True(t, h.Back())
	assert.Equal(t, root, h.Current())
	assert.False(t, h.Back())

	assert.True(t, h.Forward())
	assert.Equal(t, a, h.Current())
	assert.True(t, h.Forward())
	assert.Equal(t, b, h.Current())
	assert.False(t, h.Forward())
}

func TestHistory_NavigateClearsForward(t *testing.T) {
	h := New()
	h.SetRoot("/r")
	h.Navigate("/r/a")
	h.Back()
	assert.True(t, h.CanGoForward())

	h.Navigate("/r/b")
	assert.False(t, h.CanGoForward())
	assert.Equal(t, "/r/b", h.Current())
}

func TestHistory_HomeKeepsForward(t *testing.T) {
	h := New()
	h.SetRoot("/r")
	h.Navigate("/r/a")
	h.Navigate("/r/a/b")
	h.Back()

	assert.True(t, h.Home())
	assert.Equal(t, "/r", h.Current())
	assert.False(t, h.CanGoBack())
	assert.True(t, h.CanGoForward())
}

func TestHistory_SetRootResets(t *testing.T) {
	h := New()
	h.SetRoot("/r")
	h.Navigate("/r/a")
	h.Back()

	h.SetRoot("/other")
	assert.Equal(t, "/other", h.Root())
	assert.Equal(t, "/other", h.Current())
	assert.False(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())
}

func TestHistory_NavigateWithoutRoot(t *testing.T) {
	h := New()
	h.Navigate("/start")
	assert.Equal(t, "/start", h.Root())
	assert.Equal(t, "/start", h.Current())
}

func TestHistory_DisplayPath(t *testing.T) {
	h := New()
	h.SetRoot("/data/videos")
	assert.Equal(t, "/", h.DisplayPath())

	h.Navigate("/data/videos/2024/trip")
	assert.Equal(t, "/2024/trip", h.DisplayPath())
}
