package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayTargets  OverlayID = "targets"
	OverlayPadding  OverlayID = "padding"
	OverlayHeading  OverlayID = "heading"
	OverlayControls OverlayID = "controls"
	OverlayStats    OverlayID = "stats"
	OverlayPerf     OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID // Unique identifier
	Name        string    // Display name
	Description string    // What this overlay shows
	Key         int32     // Keyboard key to toggle (0 = no key)
	KeyLabel    string    // Key label for display (e.g., "S", "V")
	Default     bool      // Enabled at startup
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds standard overlays.
func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:          OverlayTargets,
		Name:        "Targets",
		Description: "Line from each creature to where it is heading",
		Key:         rl.KeyT,
		KeyLabel:    "T",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayPadding,
		Name:        "Padding",
		Description: "Outline of the boundary repulsion band",
		Key:         rl.KeyB,
		KeyLabel:    "B",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayHeading,
		Name:        "Velocity",
		Description: "Velocity vector of each creature",
		Key:         rl.KeyV,
		KeyLabel:    "V",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayControls,
		Name:        "Controls",
		Description: "Parameter sliders",
		Key:         rl.KeyC,
		KeyLabel:    "C",
		Default:     true,
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayStats,
		Name:        "Stats",
		Description: "Last telemetry window",
		Key:         rl.KeyS,
		KeyLabel:    "S",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Perf",
		Description: "Tick phase timing",
		Key:         rl.KeyP,
		KeyLabel:    "P",
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	if _, ok := r.byID[desc.ID]; !ok {
		r.descriptors = append(r.descriptors, desc)
	}
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay on/off and returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && desc.Key == key {
			newState := r.Toggle(desc.ID)
			return desc.ID, newState, true
		}
	}
	return "", false, false
}

// Legend returns the key bindings of all overlays, e.g. "[T] Targets".
func (r *OverlayRegistry) Legend() string {
	var s string
	for i, desc := range r.descriptors {
		if desc.KeyLabel == "" {
			continue
		}
		if i > 0 {
			s += "  "
		}
		s += "[" + desc.KeyLabel + "] " + desc.Name
	}
	return s
}
