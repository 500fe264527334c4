package model

// indexer interface is designed to give a unique variable to a placement and vice versa
type indexer interface {
	// Returns the variable of a placement, allocating the next one if the placement was never seen
	Index(placement Placement) (variable int64, isNew bool)
	// Returns the variable of an already indexed placement
	Variable(key PlacementKey) (int64, bool)
	// Returns the placement bound to a variable
	Attributes(variable int64) (Placement, bool)
	// Number of allocated variables
	Variables() uint64
}

func newIndexer() indexer {
	return &indexerImplementation{
		variables:  make(map[PlacementKey]int64),
		placements: []Placement{{}}, // Variables start at 1
	}
}

type indexerImplementation struct {
	variables  map[PlacementKey]int64
	placements []Placement
}

func (indexer *indexerImplementation) Index(placement Placement) (int64, bool) {
	key := placement.Key()
	if variable, ok := indexer.variables[key]; ok {
		return variable, false
	}

	variable := int64(len(indexer.placements))
	indexer.variables[key] = variable
	indexer.placements = append(indexer.placements, placement)
	return variable, true
}

func (indexer *indexerImplementation) Variable(key PlacementKey) (int64, bool) {
	variable, ok := indexer.variables[key]
	return variable, ok
}

func (indexer *indexerImplementation) Attributes(variable int64) (Placement, bool) {
	if variable <= 0 || variable >= int64(len(indexer.placements)) {
		return Placement{}, false
	}
	return indexer.placements[variable], true
}

func (indexer *indexerImplementation) Variables() uint64 {
	return uint64(len(indexer.placements) - 1)
}
