package path

// Source feeds the search with the legal moves out of a node. Passability
// decisions live entirely in the Source implementation.
type Source[T any] interface {
	GetNeighbors(node T) []T
}

// BreadthFirst explores from start with a FIFO frontier and a uniform step
// cost of 1, stopping at maxCost. Ties break in discovery order, which keeps
// the prev chain a shortest-step-count path. An immobile start (maxCost 0)
// yields just the start node.
func BreadthFirst[T comparable](start T, maxCost int, dataSource Source[T]) (dist map[T]int, prev map[T]T) {
	dist = map[T]int{start: 0}
	prev = make(map[T]T)
	frontier := []T{start}
	for len(frontier) > 0 {
		currentNode := frontier[0]
		frontier = frontier[1:]
		nextCost := dist[currentNode] + 1
		if nextCost > maxCost {
			continue
		}
		for _, neighbor := range dataSource.GetNeighbors(currentNode) {
			if oldCost, visited := dist[neighbor]; visited && oldCost <= nextCost {
				continue
			}
			dist[neighbor] = nextCost
			prev[neighbor] = currentNode
			frontier = append(frontier, neighbor)
		}
	}
	return
}
