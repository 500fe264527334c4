package model

import (
	"encoding/json"
	"os"

	"github.com/limaJavier/somacube/pkg/geometry"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type RawBounds struct {
	X, Y, Z int
}

type RawPiece struct {
	Name  string
	Color string
	Cells [][]int
}

type RawPuzzleInput struct {
	Bounds RawBounds
	Pieces []RawPiece
}

// Piece is a polycube in its reference pose. Color is only carried through to the rendered solution
type Piece struct {
	Name  string
	Color string
	Cells geometry.Shape
}

type PuzzleInput struct {
	Bounds geometry.Bounds
	Pieces []Piece
}

// DefaultInput is the Soma cube: seven pieces filling a 3×3×3 volume
func DefaultInput() PuzzleInput {
	return PuzzleInput{
		Bounds: geometry.Cube(3),
		Pieces: []Piece{
			{Name: "z", Color: "blue", Cells: geometry.Shape{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {2, 1, 0}}},
			{Name: "p", Color: "red", Cells: geometry.Shape{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {1, 1, 0}}},
			{Name: "t", Color: "purple", Cells: geometry.Shape{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 2, 0}}},
			{Name: "b", Color: "brown", Cells: geometry.Shape{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 1, 1}}},
			{Name: "a", Color: "yellow", Cells: geometry.Shape{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {1, 1, 0}}},
			{Name: "l", Color: "orange", Cells: geometry.Shape{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 1, 0}}},
			{Name: "v", Color: "green", Cells: geometry.Shape{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
		},
	}
}

func InputFromJson(file string) (PuzzleInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return PuzzleInput{}, errors.Wrapf(err, "cannot read puzzle file %v", file)
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return PuzzleInput{}, errors.Wrapf(err, "cannot parse puzzle file %v", file)
	}

	var rawInput RawPuzzleInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return PuzzleInput{}, errors.Wrap(err, "cannot decode puzzle")
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawPuzzleInput) (PuzzleInput, error) {
	input := PuzzleInput{
		Bounds: geometry.Bounds{X: rawInput.Bounds.X, Y: rawInput.Bounds.Y, Z: rawInput.Bounds.Z},
		Pieces: make([]Piece, 0, len(rawInput.Pieces)),
	}

	for i, rawPiece := range rawInput.Pieces {
		piece := Piece{Name: rawPiece.Name, Color: rawPiece.Color}
		if piece.Name == "" {
			piece.Name = string(rune('A' + i%26))
		}
		for _, rawCell := range rawPiece.Cells {
			if len(rawCell) != 3 {
				return PuzzleInput{}, errors.Errorf("piece %q has a cell with %d coordinates", piece.Name, len(rawCell))
			}
			piece.Cells = append(piece.Cells, geometry.Cell{X: rawCell[0], Y: rawCell[1], Z: rawCell[2]})
		}
		input.Pieces = append(input.Pieces, piece)
	}

	return input, input.Validate()
}

// Validate rejects inputs that cannot produce a well-formed formula
func (input PuzzleInput) Validate() error {
	if input.Bounds.X <= 0 || input.Bounds.Y <= 0 || input.Bounds.Z <= 0 {
		return errors.Errorf("bounds must be positive: %+v", input.Bounds)
	} else if len(input.Pieces) == 0 {
		return errors.New("at least one piece is required")
	}

	for _, piece := range input.Pieces {
		if len(piece.Cells) == 0 {
			return errors.Errorf("piece %q has no cells", piece.Name)
		} else if len(lo.Uniq(piece.Cells)) != len(piece.Cells) {
			return errors.Errorf("piece %q repeats a cell", piece.Name)
		}
	}
	return nil
}
