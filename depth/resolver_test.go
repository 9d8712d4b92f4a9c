package depth

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{StrategyAllPairs, StrategyLinked}

// positions returns where each entity index landed in order.
func positions(t *testing.T, order []int, n int) []int {
	t.Helper()
	require.Len(t, order, n)
	pos := make([]int, n)
	seen := make([]bool, n)
	for p, idx := range order {
		require.True(t, idx >= 0 && idx < n, "index %d out of range", idx)
		require.False(t, seen[idx], "index %d emitted twice", idx)
		seen[idx] = true
		pos[idx] = p
	}
	return pos
}

func assertLinearExtension(t *testing.T, keys []GridPos, order []int) {
	t.Helper()
	pos := positions(t, order, len(keys))
	for i := range keys {
		for j := range keys {
			if keys[i].Less(keys[j]) {
				assert.Less(t, pos[i], pos[j], "%v must be painted before %v", keys[i], keys[j])
			}
		}
	}
}

func TestGridPosCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b GridPos
		want int
	}{
		{"equal", Pos(1, 2, 0), Pos(1, 2, 0), 0},
		{"x_decides", Pos(0, 5, 1), Pos(1, -5, 0), -1},
		{"y_decides", Pos(1, 1, 1), Pos(1, 0, 0), 1},
		{"z_decides", Pos(0, -1, 0), Pos(0, -1, 1), -1},
		{"fractional", GridPos{X: -1.95, Y: -2}, Pos(-2, 0, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}

func TestResolveFourCellExample(t *testing.T) {
	a, b, c, d := 0, 1, 2, 3
	keys := []GridPos{Pos(0, 0, 0), Pos(1, 0, 0), Pos(0, 1, 0), Pos(1, 1, 0)}

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			order, err := NewResolver(s).Resolve(keys)
			require.NoError(t, err)
			pos := positions(t, order, len(keys))

			assert.Less(t, pos[a], pos[d])
			assert.Less(t, pos[b], pos[d])
			assert.Less(t, pos[c], pos[d])
			assert.Less(t, pos[a], pos[b])
			assert.Less(t, pos[a], pos[c])
			assert.Less(t, pos[c], pos[b])
			assertLinearExtension(t, keys, order)
		})
	}
}

func TestResolveCoLocatedKeepsEmissionOrder(t *testing.T) {
	tests := []struct {
		name string
		keys []GridPos
		// pairs of indices sharing a key, first must stay first
		pairs [][2]int
	}{
		{
			name:  "underlay_then_ramp",
			keys:  []GridPos{Pos(0, -1, 1), Pos(0, -1, 1)},
			pairs: [][2]int{{0, 1}},
		},
		{
			name: "ramp_among_floor",
			keys: []GridPos{
				Pos(1, 1, 0), Pos(0, -1, 1), Pos(-1, 0, 0), Pos(0, -1, 1), Pos(0, -2, 1),
			},
			pairs: [][2]int{{1, 3}},
		},
		{
			name:  "three_way_tie",
			keys:  []GridPos{Pos(2, 2, 0), Pos(0, 0, 0), Pos(2, 2, 0), Pos(-3, 0, 0), Pos(2, 2, 0)},
			pairs: [][2]int{{0, 2}, {2, 4}},
		},
	}

	for _, tt := range tests {
		for _, s := range strategies {
			t.Run(tt.name+"/"+s.String(), func(t *testing.T) {
				order, err := NewResolver(s).Resolve(tt.keys)
				require.NoError(t, err)
				pos := positions(t, order, len(tt.keys))
				for _, p := range tt.pairs {
					assert.Less(t, pos[p[0]], pos[p[1]])
				}
				assertLinearExtension(t, tt.keys, order)
			})
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	for _, s := range strategies {
		order, err := NewResolver(s).Resolve(nil)
		require.NoError(t, err)
		assert.Empty(t, order)
	}
}

func randomKeys(rng *rand.Rand, n int) []GridPos {
	keys := make([]GridPos, n)
	for i := range keys {
		// small ranges force plenty of duplicates
		keys[i] = Pos(rng.Intn(9)-4, rng.Intn(9)-4, rng.Intn(2))
		if rng.Intn(10) == 0 {
			keys[i].X += 0.05 * float64(rng.Intn(20))
		}
	}
	return keys
}

func TestResolveRandomBatches(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 17, 120, 500} {
		keys := randomKeys(rng, n)
		var first []int
		for _, s := range strategies {
			order, err := NewResolver(s).Resolve(keys)
			require.NoError(t, err, "n=%d strategy=%s", n, s)
			assertLinearExtension(t, keys, order)
			if first == nil {
				first = order
				continue
			}
			assert.Equal(t, first, order, "strategies disagree for n=%d", n)
		}
	}
}

func TestResolveIndependentOfInputOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// distinct keys: the order of keys in the output is fully determined
	var keys []GridPos
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			keys = append(keys, Pos(x, y, rng.Intn(2)))
		}
	}

	keysInOrder := func(in []GridPos) []GridPos {
		order, err := Resolve(in)
		require.NoError(t, err)
		out := make([]GridPos, len(order))
		for i, idx := range order {
			out[i] = in[idx]
		}
		return out
	}

	want := keysInOrder(keys)
	for i := 0; i < 5; i++ {
		shuffled := append([]GridPos(nil), keys...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, keysInOrder(shuffled))
	}
}

func TestSortReportsInvariantViolation(t *testing.T) {
	g := newGraph(3)
	g.addEdge(0, 1)
	g.addEdge(1, 2)
	g.addEdge(2, 1)

	order, err := g.sort()
	assert.Nil(t, order)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))

	var invErr *InvariantError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, 1, invErr.Emitted)
	assert.Equal(t, 3, invErr.Total)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyAllPairs, false},
		{"all_pairs", StrategyAllPairs, false},
		{"Linked", StrategyLinked, false},
		{"bsp", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
