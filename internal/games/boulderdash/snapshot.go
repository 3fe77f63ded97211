package boulderdash

import "hash/fnv"

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Turns     int
	Cave      string
	Level     int // 1-based
	Phase     Phase
	Lives     int
	Score     int
	Collected int
	Needed    int
	TimeLeft  int // seconds
	PlayerX   int
	PlayerY   int
	Alive     bool
	Amoeba    int
	GridHash  uint64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	w := s.world
	return Snapshot{
		Turns:     s.turns,
		Cave:      s.Cave().Letter,
		Level:     s.Level(),
		Phase:     s.phase,
		Lives:     s.lives,
		Score:     s.score,
		Collected: w.Collected(),
		Needed:    w.Needed(),
		TimeLeft:  s.TimeLeft(),
		PlayerX:   w.Player.Pos.X,
		PlayerY:   w.Player.Pos.Y,
		Alive:     w.Player.Alive,
		Amoeba:    w.AmoebaCount(),
		GridHash:  gridHash(s),
	}
}

func gridHash(s *Session) uint64 {
	h := fnv.New64a()
	cells := s.world.Grid.Cells
	buf := make([]byte, len(cells))
	for i, o := range cells {
		buf[i] = o.Code()
	}
	h.Write(buf)
	return h.Sum64()
}
