package config

// DifficultyManager picks the cave difficulty level for each pass through
// the cave pack.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.SetInitialLevel(cfg.InitialLevel)
	return d
}

// SetInitialLevel overrides the starting level (1..5).
func (d *DifficultyManager) SetInitialLevel(level int) {
	d.initialLevel = clamp(level, 1, MaxLevel)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "loops"
}

// Level returns the 0-based difficulty index used for a run that has
// completed the pack loops times.
func (d *DifficultyManager) Level(loops int) int {
	level := d.initialLevel
	if d.IsEnabled() && loops > 0 {
		maxAt := d.cfg.Progression.MaxAt
		if maxAt <= 0 || maxAt > MaxLevel {
			maxAt = MaxLevel
		}
		level = max(level, min(level+loops, maxAt))
	}
	return clamp(level, 1, MaxLevel) - 1
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
