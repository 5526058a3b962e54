package strip_test

import (
	"bytes"
	"testing"
	"time"

	"periph.io/x/conn/v3/spi/spitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Contomo/Infinity-Polyhedra/internal/strip"
)

func TestSimChannelSynchronous(t *testing.T) {
	ch := &strip.SimChannel{}
	frame := []byte{0x92, 0x49, 0x24, 0x00}

	require.NoError(t, ch.Transmit(frame))
	assert.False(t, ch.Busy(), "zero latency should complete inline")
	assert.Equal(t, frame, ch.LastFrame())
	assert.Equal(t, 1, ch.Frames())

	// the channel must keep its own copy
	frame[0] = 0xFF
	assert.Equal(t, byte(0x92), ch.LastFrame()[0])
}

func TestSimChannelLatency(t *testing.T) {
	ch := &strip.SimChannel{Latency: 20 * time.Millisecond}

	require.NoError(t, ch.Transmit([]byte{0x01}))
	assert.True(t, ch.Busy())
	assert.Error(t, ch.Transmit([]byte{0x02}), "overlapping transfer must be rejected")

	deadline := time.Now().Add(time.Second)
	for ch.Busy() {
		if time.Now().After(deadline) {
			t.Fatal("transfer never completed")
		}
		time.Sleep(time.Millisecond)
	}
	assert.Equal(t, []byte{0x01}, ch.LastFrame())
	require.NoError(t, ch.Close())
}

func TestSPIChannelRecordsFrame(t *testing.T) {
	buf := bytes.Buffer{}
	ch, err := strip.NewSPIChannel(spitest.NewRecordRaw(&buf), 0)
	require.NoError(t, err)

	frame := []byte{0xDB, 0x6D, 0xB6, 0x00}
	require.NoError(t, ch.Transmit(frame))

	deadline := time.Now().Add(time.Second)
	for ch.Busy() {
		if time.Now().After(deadline) {
			t.Fatal("transfer never completed")
		}
		time.Sleep(time.Millisecond)
	}

	require.NoError(t, ch.Err())
	assert.Equal(t, frame, buf.Bytes())
	require.NoError(t, ch.Close())
}
