// Package input routes navigation keys according to the active dispatch
// mode. The mode is never stored; it is derived on every keystroke from
// what is on screen, so the key table can not drift out of sync with the
// view.
package input

import "strings"

// Identity is the normalised meaning of a pressed key. Several physical
// keys collapse onto one identity: arrows and the n/p j/k letter pairs all
// mean advance or retreat.
type Identity int

const (
	None Identity = iota
	Advance
	Retreat
	Confirm
	Home
	Select
	Escape
)

// String names the identity for trace output.
func (id Identity) String() string {
	switch id {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	case Confirm:
		return "confirm"
	case Home:
		return "home"
	case Select:
		return "select"
	case Escape:
		return "escape"
	}
	return "none"
}

// Normalize maps a key name to its identity. Letters match case
// insensitively; anything unrecognised is None.
func Normalize(key string) Identity {
	switch key {
	case "right", "down":
		return Advance
	case "left", "up":
		return Retreat
	case "enter":
		return Confirm
	case "esc":
		return Escape
	}
	switch strings.ToLower(key) {
	case "n", "j":
		return Advance
	case "p", "k":
		return Retreat
	case "h":
		return Home
	case "s":
		return Select
	}
	return None
}

// Mode is the dispatch context a key lands in.
type Mode int

const (
	ModeGrid Mode = iota
	ModeResult
	ModeSelector
)

// String names the mode for trace output.
func (m Mode) String() string {
	switch m {
	case ModeResult:
		return "result"
	case ModeSelector:
		return "selector"
	}
	return "grid"
}
