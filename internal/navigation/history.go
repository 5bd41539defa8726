// Package navigation tracks where the user is while browsing below a root
// folder: a back stack ending in the current folder, and a forward list.
package navigation

import (
	"path/filepath"
	"strings"
)

// History is not safe for concurrent use; the UI drives it from the fyne
// event goroutine only.
type History struct {
	root    string
	back    []string // last element is the current folder
	forward []string // first element is the next folder
}

// New returns an empty history with no root
func New() *History {
	return &History{}
}

// SetRoot starts browsing at root, discarding all history
func (h *History) SetRoot(root string) {
	h.root = root
	h.back = []string{root}
	h.forward = nil
}

// Root returns the root folder, empty before SetRoot
func (h *History) Root() string {
	return h.root
}

// HasRoot reports whether a root has been chosen
func (h *History) HasRoot() bool {
	return len(h.back) > 0
}

// Current returns the folder being shown, empty before SetRoot
func (h *History) Current() string {
	if len(h.back) == 0 {
		return ""
	}
	return h.back[len(h.back)-1]
}

// Navigate moves into path and clears the forward list
func (h *History) Navigate(path string) {
	if !h.HasRoot() {
		h.SetRoot(path)
		return
	}
	h.back = append(h.back, path)
	h.forward = nil
}

// NavigateChild moves into the named child of the current folder
func (h *History) NavigateChild(name string) string {
	path := JoinChild(h.Current(), name)
	h.Navigate(path)
	return path
}

// CanGoBack reports whether Back would move
func (h *History) CanGoBack() bool {
	return len(h.back) > 1
}

// CanGoForward reports whether Forward would move
func (h *History) CanGoForward() bool {
	return len(h.forward) > 0
}

// Back returns to the previous folder. It reports false when already at the
// first entry.
func (h *History) Back() bool {
	if !h.CanGoBack() {
		return false
	}
	current := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append([]string{current}, h.forward...)
	return true
}

// Forward re-enters the folder most recently left with Back
func (h *History) Forward() bool {
	if !h.CanGoForward() {
		return false
	}
	next := h.forward[0]
	h.forward = h.forward[1:]
	h.back = append(h.back, next)
	return true
}

// Home returns to the root. The forward list is kept.
func (h *History) Home() bool {
	if !h.HasRoot() {
		return false
	}
	h.back = []string{h.root}
	return true
}

// DisplayPath returns the current folder relative to the root, "/" at the
// root itself
func (h *History) DisplayPath() string {
	current := h.Current()
	if current == "" || h.root == "" {
		return ""
	}
	if current == h.root {
		return "/"
	}
	rel := strings.TrimPrefix(current, h.root)
	if rel == "" {
		return "/"
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return rel
}

// JoinChild joins a folder and a child name
func JoinChild(dir, name string) string {
	return filepath.Join(dir, name)
}
