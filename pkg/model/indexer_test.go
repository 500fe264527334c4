package model

import (
	"math/rand"
	"testing"

	"github.com/limaJavier/somacube/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesDeterministic(t *testing.T) {
	// Arrange
	indexer := newIndexer()
	placements := []Placement{
		{Piece: 0, Cells: geometry.Shape{{0, 0, 0}, {1, 0, 0}}},
		{Piece: 0, Cells: geometry.Shape{{1, 0, 0}, {2, 0, 0}}},
		{Piece: 1, Cells: geometry.Shape{{0, 0, 0}, {1, 0, 0}}},
	}

	// Act
	variables := make([]int64, 0, len(placements))
	for _, placement := range placements {
		variable, isNew := indexer.Index(placement)
		assert.True(t, isNew)
		variables = append(variables, variable)
	}

	// Assert
	assert.Equal(t, []int64{1, 2, 3}, variables)
	assert.Equal(t, uint64(3), indexer.Variables())
	for i, variable := range variables {
		placement, ok := indexer.Attributes(variable)
		assert.True(t, ok)
		assert.Equal(t, placements[i].Key(), placement.Key())
	}
}

func TestIndexAndAttributesNonDeterministic(t *testing.T) {
	for range 10 {
		// Arrange
		indexer := newIndexer()
		pieces := rand.Intn(5) + 1
		bounds := geometry.Bounds{X: rand.Intn(4) + 1, Y: rand.Intn(4) + 1, Z: rand.Intn(4) + 1}

		// Act
		for piece := range pieces {
			for _, cell := range bounds.Cells() {
				indexer.Index(Placement{Piece: piece, Cells: geometry.Shape{cell}})
			}
		}

		// Assert
		assert.Equal(t, uint64(pieces*bounds.Volume()), indexer.Variables())
		for variable := int64(1); variable <= int64(indexer.Variables()); variable++ {
			placement, ok := indexer.Attributes(variable)
			assert.True(t, ok)
			found, ok := indexer.Variable(placement.Key())
			assert.True(t, ok)
			assert.Equal(t, variable, found)
		}
	}
}

func TestIndexRepeatedPlacement(t *testing.T) {
	// Arrange
	indexer := newIndexer()
	first, _ := indexer.Index(Placement{Piece: 2, Cells: geometry.Shape{{0, 0, 0}, {0, 1, 0}}})

	// Act
	second, isNew := indexer.Index(Placement{Piece: 2, Cells: geometry.Shape{{0, 1, 0}, {0, 0, 0}}})

	// Assert
	assert.False(t, isNew)
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(1), indexer.Variables())
}

func TestAttributesOutOfRange(t *testing.T) {
	indexer := newIndexer()
	indexer.Index(Placement{Piece: 0, Cells: geometry.Shape{{0, 0, 0}}})

	for _, variable := range []int64{-1, 0, 2} {
		_, ok := indexer.Attributes(variable)
		assert.False(t, ok)
	}
}
