package distancemap

import (
	"encoding/json"
	"math"

	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/grid"
)

type cell struct {
	epoch    uint64
	distance uint32
}

// DistanceMap holds the most recent flood-fill's distance field. Reads
// through Distance/DirectionToBestNeighbour only see values from the most
// recent PopulateApproach/PopulateFlee call.
type DistanceMap struct {
	epoch uint64
	grid  *grid.Grid[cell]
}

// New allocates a DistanceMap over a grid of the given size, with no
// populated field yet (every Distance query returns false until the first
// populate call).
func New(size grid.Size) *DistanceMap {
	return &DistanceMap{epoch: 1, grid: grid.NewGrid[cell](size)}
}

// Clear invalidates the current field without touching the backing grid;
// the next populate call starts from a clean epoch.
func (m *DistanceMap) Clear() {
	m.epoch++
}

// Distance returns the distance recorded for c in the current field, and
// whether c was reached at all.
func (m *DistanceMap) Distance(c grid.Coord) (uint32, bool) {
	cl, ok := m.grid.Get(c)
	if !ok || cl.epoch != m.epoch {
		return 0, false
	}
	return cl.distance, true
}

// DirectionToBestNeighbour reports which cardinal neighbour of c has the
// lowest recorded distance, considering only neighbours whose distance is
// no greater than c's own (when c is in the current field). Ties are
// broken in favour of the last direction checked in the fixed N,E,S,W scan
// order, so South beats North, West beats South, and so on. Returns false
// if no neighbour is in the current field, or if every neighbour in it is
// farther than c itself.
func (m *DistanceMap) DirectionToBestNeighbour(c grid.Coord) (direction.CardinalDirection, bool) {
	shortest := uint32(math.MaxUint32)
	if d, ok := m.Distance(c); ok {
		shortest = d
	}

	var best direction.CardinalDirection
	hasBest := false
	for _, d := range direction.CardinalDirections() {
		dist, ok := m.Distance(c.Add(d.Coord()))
		if !ok {
			continue
		}
		if dist <= shortest {
			shortest = dist
			best = d
			hasBest = true
		}
	}
	return best, hasBest
}

// sizeOnly mirrors the original's serialize-as-size-only persistence: a
// DistanceMap's field is search-scratch state, never worth persisting, but
// its dimensions are worth round-tripping so a saved world can recreate one
// sized correctly.
type sizeOnly struct {
	Size grid.Size `json:"size"`
}

// MarshalJSON persists only the map's size, matching the original crate's
// serialize feature, which serializes a DistanceMap as its Size and
// reconstructs a fresh, empty map on deserialize.
func (m *DistanceMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(sizeOnly{Size: m.grid.Size()})
}

// UnmarshalJSON reconstructs a fresh DistanceMap of the persisted size.
func (m *DistanceMap) UnmarshalJSON(data []byte) error {
	var s sizeOnly
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = *New(s.Size)
	return nil
}
