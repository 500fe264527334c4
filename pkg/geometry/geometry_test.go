package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var (
	somaZ = Shape{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {2, 1, 0}}
	somaP = Shape{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {1, 1, 0}}
	somaT = Shape{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 2, 0}}
	somaB = Shape{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 1, 1}}
	somaA = Shape{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {1, 1, 0}}
	somaL = Shape{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 1, 0}}
	somaV = Shape{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
)

func TestRotations(t *testing.T) {
	cell := Shape{{1, 2, 3}}

	assert.Equal(t, Shape{{1, 2, 3}}, Identity(cell))
	assert.Equal(t, Shape{{1, 3, -2}}, RotateX(cell))
	assert.Equal(t, Shape{{3, 2, -1}}, RotateY(cell))
	assert.Equal(t, Shape{{-2, 1, 3}}, RotateZ(cell))

	// Inputs must remain untouched
	assert.Equal(t, Shape{{1, 2, 3}}, cell)
}

func TestQuarterTurnsHaveOrderFour(t *testing.T) {
	for _, rotate := range []Transform{RotateX, RotateY, RotateZ} {
		shape := somaL
		for range 4 {
			shape = rotate(shape)
		}
		assert.Equal(t, somaL, shape)
	}
}

func TestCanonical(t *testing.T) {
	shape := Shape{{2, -1, 5}, {1, 0, 5}, {1, -1, 6}}

	canonical := shape.Canonical()

	if diff := cmp.Diff(Shape{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, canonical); diff != "" {
		t.Errorf("unexpected canonical shape (-want +got):\n%s", diff)
	}
	assert.Equal(t, canonical, canonical.Canonical())
}

func TestKeyIgnoresOrder(t *testing.T) {
	a := Shape{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	b := Shape{{0, 1, 0}, {0, 0, 0}, {1, 0, 0}}
	c := Shape{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestBounds(t *testing.T) {
	bounds := Cube(3)

	cells := bounds.Cells()

	assert.Len(t, cells, 27)
	assert.Equal(t, Cell{0, 0, 0}, cells[0])
	assert.Equal(t, Cell{0, 0, 1}, cells[1])
	assert.Equal(t, Cell{2, 2, 2}, cells[26])
	assert.True(t, bounds.Contains(Cell{2, 0, 1}))
	assert.False(t, bounds.Contains(Cell{3, 0, 0}))
	assert.False(t, bounds.Contains(Cell{0, -1, 0}))
	assert.False(t, Bounds{1, 1, 3}.ContainsAll(Shape{{0, 0, 0}, {1, 0, 0}}))
}

func TestOrientationCounts(t *testing.T) {
	scenarios := []struct {
		name     string
		shape    Shape
		expected int
	}{
		{"z", somaZ, 12},
		{"p", somaP, 8},
		{"t", somaT, 12},
		{"b", somaB, 12},
		{"a", somaA, 12},
		{"l", somaL, 24},
		{"v", somaV, 12},
		{"unit", Shape{{0, 0, 0}}, 1},
		{"domino", Shape{{0, 0, 0}, {1, 0, 0}}, 3},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			orientations := Orientations(scenario.shape)

			assert.Len(t, orientations, scenario.expected)
			seen := make(map[string]bool)
			for _, orientation := range orientations {
				assert.Equal(t, orientation, orientation.Canonical())
				assert.False(t, seen[orientation.Key()], "duplicate orientation %v", orientation)
				seen[orientation.Key()] = true
			}
		})
	}
}

func TestOrientationsDeterministic(t *testing.T) {
	for _, shape := range []Shape{somaZ, somaP, somaT, somaB, somaA, somaL, somaV} {
		first, second := Orientations(shape), Orientations(shape)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("orientations differ between runs (-first +second):\n%s", diff)
		}
	}
}

func TestOrientationsDiscoveryOrder(t *testing.T) {
	orientations := Orientations(somaV)

	// The identity composition is visited first
	assert.Equal(t, somaV.Canonical(), orientations[0])
	assert.Equal(t, Shape{{0, 0, 0}, {0, 0, 1}, {1, 0, 1}}, orientations[1])
}
