package cereal

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/refmatch/refline"
)

func TestResponseWireFormat(t *testing.T) {
	res := MatchResponse{
		Id:         7,
		Kind:       REQUEST_XY,
		Valid:      true,
		Point:      refline.PathPoint{X: 9, Y: 0, S: 9},
		Coordinate: refline.Coordinate{S: 9, Lateral: 1, Side: 1},
	}
	b, err := Encode(res)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"kind":"xy"`)
	assert.Contains(t, string(b), `"coordinate":{"s":9,"lateral":1,"side":1}`)
	assert.NotContains(t, string(b), `"error"`)

	decoded, err := Decode[MatchResponse](b)
	require.NoError(t, err)
	assert.Equal(t, res, decoded)
}

func TestDecodeCommand(t *testing.T) {
	cmd, err := Decode[Command]([]byte(`{"type":"setStrategy","str":"best_segment"}`))
	require.NoError(t, err)
	assert.Equal(t, COMMAND_SET_STRATEGY, cmd.Type)
	assert.Equal(t, "best_segment", cmd.Str)

	_, err = Decode[Command]([]byte(`{"type":`))
	assert.Error(t, err)
}

func TestGetTimeIsMonotonic(t *testing.T) {
	a := GetTime()
	b := GetTime()
	assert.LessOrEqual(t, a, b)
}

func TestLogCloseErrors(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })

	logCloseErrors(nil, nil)
	assert.Empty(t, buf.String())

	logCloseErrors(errors.New("unmap failed"), errors.New("close fd failed"))
	assert.Contains(t, buf.String(), "unmap failed")
	assert.Contains(t, buf.String(), "close fd failed")
}
