package rules

// Rule decides whether a cell is alive in the next generation given its
// live neighbor count and its current state.
type Rule func(neighbors int, alive bool) bool

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Thresholds describes a survive/birth ruleset in terms of neighbor counts
type Thresholds struct {
	SurviveMin int
	SurviveMax int
	Birth      int
}

// Conway is the standard B3/S23 ruleset
var Conway = Thresholds{SurviveMin: 2, SurviveMax: 3, Birth: 3}

// Rule builds a Rule from the thresholds
func (t Thresholds) Rule() Rule {
	return func(neighbors int, alive bool) bool {
		if alive {
			return neighbors >= t.SurviveMin && neighbors <= t.SurviveMax
		}
		return neighbors == t.Birth
	}
}
