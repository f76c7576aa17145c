package funnel

import "fmt"

// DegenerateCorridorError reports that two consecutive portal edges
// share no vertex, or that a portal's bound point cannot be placed on
// either chain — both indicate a BFS/adjacency inconsistency upstream
// and must abort the query rather than silently produce garbage, per
// spec §7.
type DegenerateCorridorError struct {
	Index int
}

func (e *DegenerateCorridorError) Error() string {
	return fmt.Sprintf("funnel: corridor inconsistency at portal %d", e.Index)
}
