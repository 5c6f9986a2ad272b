package persist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvaroabascar/neurotic/internal/network"
	"github.com/alvaroabascar/neurotic/internal/sampler"
)

func TestRoundTrip(t *testing.T) {
	schedules := [][]int{
		{1, 1},
		{2, 3, 1},
		{4, 5, 6, 2},
	}
	for _, sizes := range schedules {
		t.Run(fmt.Sprint(sizes), func(t *testing.T) {
			net, err := network.New(sizes...)
			require.NoError(t, err)
			net.Randomize(sampler.New(uint64(len(sizes))))

			path := filepath.Join(t.TempDir(), "model.bin")
			require.NoError(t, Save(net, path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.True(t, net.Equal(loaded), "loaded network differs from saved one")
		})
	}
}

func TestWriteLayout(t *testing.T) {
	net, err := network.New(1, 1)
	require.NoError(t, err)
	net.Weight(0).Set(0, 0, 0.5)
	net.Bias(0).SetVec(0, 0.25)

	var got bytes.Buffer
	require.NoError(t, Write(&got, net))

	var want bytes.Buffer
	require.NoError(t, binary.Write(&want, binary.LittleEndian, []int32{2, 1, 1}))
	require.NoError(t, binary.Write(&want, binary.LittleEndian, []float64{0.25, 0.5}))
	assert.Equal(t, want.Bytes(), got.Bytes())
}

func TestReadRejectsEveryTruncation(t *testing.T) {
	net, err := network.New(2, 3, 1)
	require.NoError(t, err)
	net.Randomize(sampler.New(8))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, net))
	payload := buf.Bytes()

	for cut := 0; cut < len(payload); cut++ {
		_, err := Read(bytes.NewReader(payload[:cut]))
		require.ErrorIs(t, err, ErrTruncated, "prefix of %d bytes", cut)
	}
}

func TestReadRejectsBadSchedules(t *testing.T) {
	cases := []struct {
		name   string
		header []int32
	}{
		{"zero layers", []int32{0}},
		{"one layer", []int32{1, 5}},
		{"negative count", []int32{-2}},
		{"absurd count", []int32{1 << 20}},
		{"zero width", []int32{2, 3, 0}},
		{"negative width", []int32{3, 2, -1, 2}},
		{"absurd width", []int32{2, 1 << 30, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, tc.header))

			_, err := Read(&buf)
			require.ErrorIs(t, err, ErrBadSchedule)
		})
	}
}

func TestLoadRejectsTrailingData(t *testing.T) {
	net, err := network.New(2, 2)
	require.NoError(t, err)
	net.Randomize(sampler.New(14))

	path := filepath.Join(t.TempDir(), "model.bin")
	require.NoError(t, Save(net, path))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.Write([]byte{0xFF})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = Load(path)
	require.ErrorIs(t, err, ErrTrailingData)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveToDirectoryFails(t *testing.T) {
	net, err := network.New(1, 1)
	require.NoError(t, err)
	require.Error(t, Save(net, t.TempDir()))
}

func TestLoadedNetworkIsUsable(t *testing.T) {
	net, err := network.New(3, 4, 2)
	require.NoError(t, err)
	net.Randomize(sampler.New(6))

	path := filepath.Join(t.TempDir(), "model.bin")
	require.NoError(t, Save(net, path))
	loaded, err := Load(path)
	require.NoError(t, err)

	in := []float64{0.2, -1.4, 0.9}
	want, err := net.Feedforward(in)
	require.NoError(t, err)
	got, err := loaded.Feedforward(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
