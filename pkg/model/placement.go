package model

import (
	"fmt"

	"github.com/limaJavier/somacube/pkg/geometry"
	"github.com/samber/lo"
)

// Placement is a piece translated into the volume, Cells holds the absolute occupied cells in lexicographic order
type Placement struct {
	Piece int
	Cells geometry.Shape
}

// PlacementKey identifies a placement by value: the piece and its occupied cell set
type PlacementKey struct {
	Piece int
	Cells string
}

func (placement Placement) Key() PlacementKey {
	return PlacementKey{Piece: placement.Piece, Cells: placement.Cells.Key()}
}

type placementIndex struct {
	indexer indexer
	byPiece [][]int64                 // Variables placing each piece anywhere
	byCell  map[geometry.Cell][]int64 // Variables whose placement covers each cell
	names   map[int64]string          // Human-readable name of each variable
}

// enumeratePlacements numbers every distinct placement. Numbering is anchor-major, then piece, then orientation, then reference cell
func enumeratePlacements(input PuzzleInput) *placementIndex {
	orientations := lo.Map(input.Pieces, func(piece Piece, _ int) []geometry.Shape {
		return geometry.Orientations(piece.Cells)
	})

	index := &placementIndex{
		indexer: newIndexer(),
		byPiece: make([][]int64, len(input.Pieces)),
		byCell:  make(map[geometry.Cell][]int64),
		names:   make(map[int64]string),
	}
	for _, cell := range input.Bounds.Cells() {
		index.byCell[cell] = make([]int64, 0)
	}

	for _, anchor := range input.Bounds.Cells() {
		for piece := range input.Pieces {
			for _, orientation := range orientations[piece] {
				for _, base := range orientation {
					// Align the reference cell with the anchor
					cells := orientation.Translate(anchor.X-base.X, anchor.Y-base.Y, anchor.Z-base.Z)
					if !input.Bounds.ContainsAll(cells) {
						continue
					}

					variable, isNew := index.indexer.Index(Placement{Piece: piece, Cells: cells.Sorted()})
					if !isNew {
						continue
					}
					// Every cell and piece list therefore receives each variable once, in ascending order
					index.byPiece[piece] = append(index.byPiece[piece], variable)
					for _, cell := range cells {
						index.byCell[cell] = append(index.byCell[cell], variable)
					}
					index.names[variable] = fmt.Sprintf("P_{%d%d%d%d}", anchor.X+1, anchor.Y+1, anchor.Z+1, piece+1)
				}
			}
		}
	}

	return index
}
