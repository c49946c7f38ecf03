// Package arena implements a fixed-capacity object recycling pool (a slot arena) for Go.
//
// # Overview
//
// An Arena owns a fixed number of slots. Each slot holds one object that is
// built by a factory the first time the slot is claimed and then handed out
// again, as the identical instance, after every Reset. Objects that cannot
// be pooled because the arena is full are still constructed and returned,
// they are just not tracked. This is useful for:
//
//   - Token and AST node objects in lexers and parsers
//   - Per-request scratch objects in servers
//   - Reducing garbage collection pressure on hot paths
//
// # Basic Usage
//
//	a, err := arena.New(1024, func() *Node { return new(Node) })
//	if err != nil {
//		return err
//	}
//
//	n := a.Alloc() // pooled while fewer than 1024 claims were made
//	...
//	a.Reset()      // every claimed Node gets ClearReferences()
//
// Pooled types implement Participant. ClearReferences must drop every pointer
// the object holds so the next generation does not keep stale object graphs
// alive.
//
// # Thread Safety
//
// Alloc is lock-free: the only synchronization point is an atomic claim
// counter, and every pooled slot is given to exactly one caller per
// generation. Reset is a stop-the-world operation and must not run
// concurrently with Alloc. Callers that cannot quiesce their workers can use
// Guarded, which serializes Reset against Alloc with a read/write mutex:
//
//	g, _ := arena.NewGuarded(1024, newNode)
//	n := g.Alloc() // concurrent
//	g.Reset()      // waits for in-flight Alloc calls
//
// # Context Factories
//
// ContextArena threads a caller supplied value into the factory, so pooled
// objects can be wired to objects owned by a sibling arena:
//
//	edges, _ := arena.NewContext(256, func(g *Graph) *Edge { return &Edge{graph: g} })
//	e := edges.Alloc(graph)
//
// # Performance Characteristics
//
//   - Alloc: O(1), one atomic add
//   - Reset: O(slots claimed in the current generation), never O(capacity)
//   - Memory overhead: one slice of T and one slice of flags
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Unpooled allocations: %d\n", m.Overflow)
package arena
