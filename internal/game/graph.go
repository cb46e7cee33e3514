package game

import "fmt"

// Connection is one endpoint's view of an undirected weighted edge.
// Distance is the travel time in turns.
type Connection struct {
	To       PlanetID
	Distance int
}

// WorldGraph is the star-system topology: planet ids plus symmetric weighted
// edges. It is populated during setup and immutable afterwards; planets are
// referenced by id so entities can be mutated without invalidating holders.
type WorldGraph struct {
	adjacency map[PlanetID][]Connection
}

func NewWorldGraph() *WorldGraph {
	return &WorldGraph{adjacency: make(map[PlanetID][]Connection)}
}

// AddPlanet registers a node with no edges. Setup only.
func (g *WorldGraph) AddPlanet(id PlanetID) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}

// AddEdge inserts a symmetric edge. Setup only.
func (g *WorldGraph) AddEdge(a, b PlanetID, distance int) error {
	if a == b {
		return fmt.Errorf("graph: self edge on %s", a)
	}
	if distance < 1 {
		return fmt.Errorf("graph: edge %s-%s must have positive distance", a, b)
	}
	if _, ok := g.adjacency[a]; !ok {
		return fmt.Errorf("graph: unknown planet %s", a)
	}
	if _, ok := g.adjacency[b]; !ok {
		return fmt.Errorf("graph: unknown planet %s", b)
	}
	g.adjacency[a] = append(g.adjacency[a], Connection{To: b, Distance: distance})
	g.adjacency[b] = append(g.adjacency[b], Connection{To: a, Distance: distance})
	return nil
}

func (g *WorldGraph) Contains(id PlanetID) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Neighbors returns the connections leaving id.
func (g *WorldGraph) Neighbors(id PlanetID) []Connection {
	return g.adjacency[id]
}

// Connection looks up the direct edge from a to b.
func (g *WorldGraph) Connection(from, to PlanetID) (Connection, bool) {
	for _, conn := range g.adjacency[from] {
		if conn.To == to {
			return conn, true
		}
	}
	return Connection{}, false
}

func (g *WorldGraph) Len() int { return len(g.adjacency) }

// Connected reports whether every planet is reachable from every other.
func (g *WorldGraph) Connected() bool {
	if len(g.adjacency) == 0 {
		return true
	}
	var start PlanetID
	for id := range g.adjacency {
		start = id
		break
	}
	seen := map[PlanetID]bool{start: true}
	queue := []PlanetID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, conn := range g.adjacency[cur] {
			if !seen[conn.To] {
				seen[conn.To] = true
				queue = append(queue, conn.To)
			}
		}
	}
	return len(seen) == len(g.adjacency)
}
