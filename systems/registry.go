package systems

// Phase ids for the steps of one tick. Perf timing and the HUD use them.
const (
	PhaseFood      = "food"
	PhaseSnapshot  = "snapshot"
	PhaseCreatures = "creatures"
	PhaseTelemetry = "telemetry"
)

// SystemInfo describes a simulation system for display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string
}

// SystemRegistry holds metadata about all systems in tick order.
// This centralizes system naming so the HUD and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.Register(SystemInfo{ID: PhaseFood, Name: "Food", Description: "Applies the food rule"})
	reg.Register(SystemInfo{ID: PhaseSnapshot, Name: "Snapshot", Description: "Captures entity positions"})
	reg.Register(SystemInfo{ID: PhaseCreatures, Name: "Creatures", Description: "Hunger, targeting and steering"})
	reg.Register(SystemInfo{ID: PhaseTelemetry, Name: "Telemetry", Description: "Collects window stats"})
	return reg
}

// Register adds a system. Registering an existing id replaces its info.
func (r *SystemRegistry) Register(info SystemInfo) {
	if _, ok := r.byID[info.ID]; !ok {
		r.systems = append(r.systems, info)
	} else {
		for i := range r.systems {
			if r.systems[i].ID == info.ID {
				r.systems[i] = info
			}
		}
	}
	r.byID[info.ID] = info
}

// Get returns the info for id.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// All returns the systems in registration order.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// Name returns the display name for id, or id itself if unknown.
func (r *SystemRegistry) Name(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}
