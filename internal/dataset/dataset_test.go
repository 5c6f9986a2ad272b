package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/alvaroabascar/neurotic/internal/sampler"
)

func TestFromSlices(t *testing.T) {
	set, err := FromSlices(
		[][]float64{{1, 2}, {3, 4}, {5, 6}},
		[][]float64{{10}, {20}, {30}},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, 2, set.InputWidth())
	assert.Equal(t, 1, set.LabelWidth())

	in, lab := set.Example(1)
	assert.Equal(t, []float64{3, 4}, in)
	assert.Equal(t, []float64{20}, lab)
}

func TestFromSlicesEmpty(t *testing.T) {
	set, err := FromSlices(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestFromSlicesRejectsMismatch(t *testing.T) {
	cases := []struct {
		name   string
		inputs [][]float64
		labels [][]float64
	}{
		{"count mismatch", [][]float64{{1}, {2}}, [][]float64{{1}}},
		{"ragged inputs", [][]float64{{1, 2}, {3}}, [][]float64{{1}, {2}}},
		{"ragged labels", [][]float64{{1}, {2}}, [][]float64{{1}, {2, 3}}},
		{"empty example", [][]float64{{}}, [][]float64{{1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := FromSlices(tc.inputs, tc.labels)
			require.ErrorIs(t, err, ErrMismatch)
			assert.Nil(t, set)
		})
	}
}

func TestNewRejectsColumnMismatch(t *testing.T) {
	inputs := mat.NewDense(2, 3, nil)
	labels := mat.NewDense(1, 4, nil)
	_, err := New(inputs, labels)
	require.ErrorIs(t, err, ErrMismatch)
}

func TestShuffleKeepsPairsAligned(t *testing.T) {
	const n = 101
	inputs := make([][]float64, n)
	labels := make([][]float64, n)
	for k := 0; k < n; k++ {
		inputs[k] = []float64{float64(k), float64(2 * k)}
		labels[k] = []float64{float64(3 * k)}
	}
	set, err := FromSlices(inputs, labels)
	require.NoError(t, err)

	set.Shuffle(sampler.New(5))

	seen := make([]bool, n)
	moved := false
	for k := 0; k < n; k++ {
		in, lab := set.Example(k)
		id := int(in[0])
		require.GreaterOrEqual(t, id, 0)
		require.Less(t, id, n)
		require.False(t, seen[id], "example %d appears twice", id)
		seen[id] = true

		// The label and second feature must still belong to this input.
		require.Equal(t, float64(2*id), in[1])
		require.Equal(t, float64(3*id), lab[0])
		if id != k {
			moved = true
		}
	}
	assert.True(t, moved, "shuffle left all %d examples in place", n)
}

func TestShuffleDeterministic(t *testing.T) {
	build := func() *Set {
		inputs := make([][]float64, 20)
		labels := make([][]float64, 20)
		for k := range inputs {
			inputs[k] = []float64{float64(k)}
			labels[k] = []float64{float64(-k)}
		}
		set, err := FromSlices(inputs, labels)
		require.NoError(t, err)
		return set
	}

	a, b := build(), build()
	a.Shuffle(sampler.New(9))
	b.Shuffle(sampler.New(9))
	for k := 0; k < a.Len(); k++ {
		ai, _ := a.Example(k)
		bi, _ := b.Example(k)
		require.Equal(t, ai, bi)
	}
}

func TestShuffleTinySets(t *testing.T) {
	empty, err := FromSlices(nil, nil)
	require.NoError(t, err)
	empty.Shuffle(sampler.New(1))
	assert.Equal(t, 0, empty.Len())

	single, err := FromSlices([][]float64{{7}}, [][]float64{{8}})
	require.NoError(t, err)
	single.Shuffle(sampler.New(1))
	in, lab := single.Example(0)
	assert.Equal(t, []float64{7}, in)
	assert.Equal(t, []float64{8}, lab)
}

func TestBatchCopies(t *testing.T) {
	set, err := FromSlices(
		[][]float64{{1}, {2}, {3}, {4}},
		[][]float64{{10}, {20}, {30}, {40}},
	)
	require.NoError(t, err)

	batch := set.Batch(1, 3)
	require.Equal(t, 2, batch.Len())
	in, lab := batch.Example(0)
	assert.Equal(t, []float64{2}, in)
	assert.Equal(t, []float64{20}, lab)

	// Mutating the parent must not leak into the batch.
	set.inputs.Set(0, 1, 99)
	in, _ = batch.Example(0)
	assert.Equal(t, []float64{2}, in)
}

func TestBatchEmptyRange(t *testing.T) {
	set, err := FromSlices([][]float64{{1, 2}}, [][]float64{{3}})
	require.NoError(t, err)

	batch := set.Batch(1, 1)
	assert.Equal(t, 0, batch.Len())
	assert.Equal(t, 2, batch.InputWidth())
	assert.Equal(t, 1, batch.LabelWidth())
}

func TestBatchOutOfRangePanics(t *testing.T) {
	set, err := FromSlices([][]float64{{1}, {2}}, [][]float64{{1}, {2}})
	require.NoError(t, err)

	assert.Panics(t, func() { set.Batch(-1, 1) })
	assert.Panics(t, func() { set.Batch(0, 3) })
	assert.Panics(t, func() { set.Batch(2, 1) })
}

func TestFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xor.csv")
	data := "x1,x2,y\n0,0,0\n0,1,1\n1,0,1\n1,1,0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	set, err := FromCSV(path, 2, 1, true)
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())
	assert.Equal(t, 2, set.InputWidth())
	assert.Equal(t, 1, set.LabelWidth())

	in, lab := set.Example(2)
	assert.Equal(t, []float64{1, 0}, in)
	assert.Equal(t, []float64{1}, lab)
}

func TestFromCSVWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.csv")
	require.NoError(t, os.WriteFile(path, []byte("0.5,1.5,2.5\n"), 0o644))

	set, err := FromCSV(path, 2, 1, false)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	in, lab := set.Example(0)
	assert.Equal(t, []float64{0.5, 1.5}, in)
	assert.Equal(t, []float64{2.5}, lab)
}

func TestFromCSVMissingFile(t *testing.T) {
	_, err := FromCSV(filepath.Join(t.TempDir(), "nope.csv"), 2, 1, false)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromCSVRejectsBadCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,oops,3\n"), 0o644))

	_, err := FromCSV(path, 2, 1, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestFromCSVRejectsShortRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n4,5\n"), 0o644))

	_, err := FromCSV(path, 2, 1, false)
	require.Error(t, err)
}
