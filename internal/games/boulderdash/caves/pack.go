package caves

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"
)

// Cave is one entry of a pack.
type Cave struct {
	Letter       string
	Name         string
	Intermission bool
	Def          *cave.Definition
}

// Pack is an ordered, immutable list of caves.
type Pack struct {
	ID    string
	Title string
	Caves []Cave
}

// Len returns the number of caves in the pack.
func (p *Pack) Len() int {
	return len(p.Caves)
}

// Cave returns the i-th cave. An index outside the pack is a programming
// error and panics.
func (p *Pack) Cave(i int) Cave {
	if i < 0 || i >= len(p.Caves) {
		panic(fmt.Sprintf("caves: cave index %d outside pack %q (%d caves)", i, p.ID, len(p.Caves)))
	}
	return p.Caves[i]
}

// Index resolves a cave reference given by letter ("C") or 1-based
// position ("3").
func (p *Pack) Index(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	for i, c := range p.Caves {
		if strings.EqualFold(c.Letter, ref) {
			return i, nil
		}
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("caves: pack %q has no cave %q", p.ID, ref)
	}
	if n < 1 || n > len(p.Caves) {
		return 0, fmt.Errorf("caves: cave %d outside 1..%d", n, len(p.Caves))
	}
	return n - 1, nil
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
	Caves int
}

var (
	packs = make(map[string]*Pack)
	mu    sync.RWMutex
)

// Register adds a pack to the registry.
// Typically called from a pack's init() function.
// Panics if a pack with the same ID is already registered or the pack is empty.
func Register(p *Pack) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[p.ID]; exists {
		panic(fmt.Sprintf("caves: pack %q already registered", p.ID))
	}
	if len(p.Caves) == 0 {
		panic(fmt.Sprintf("caves: pack %q has no caves", p.ID))
	}

	packs[p.ID] = p
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, p := range packs {
		result = append(result, PackInfo{
			ID:    id,
			Title: p.Title,
			Caves: len(p.Caves),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered pack by its ID.
// Returns an error if the pack ID is not registered.
func Get(id string) (*Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[id]
	if !ok {
		return nil, fmt.Errorf("caves: unknown pack %q", id)
	}

	return p, nil
}
