package result

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const framesStream = `
# frame 2 listed first on purpose
{"frame": 2, "width": 640, "height": 480, "detections": [{"box": {"left": 10, "top": 20, "right": 110, "bottom": 140}, "categories": [{"label": "face", "score": 0.873}]}]}

{"frame": 1, "width": 640, "height": 480, "detections": []}
{"frame": 3, "width": 640, "height": 480, "detections": [{"box": {"left": 1, "top": 2, "right": 3, "bottom": 4}, "categories": [], "id": 42}, {"box": {"left": 5, "top": 6, "right": 7, "bottom": 8}}]}
`

func TestReadFrames(t *testing.T) {
	idx, err := ReadFrames(strings.NewReader(framesStream), NewIDGenerator())
	require.NoError(t, err)

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []int64{1, 2, 3}, idx.Frames())

	res, ok := idx.Get(2)
	require.True(t, ok)
	assert.Equal(t, 640, res.ImageWidth)
	assert.Equal(t, 480, res.ImageHeight)
	require.Len(t, res.Detections, 1)
	assert.Equal(t, BoxRect{Left: 10, Top: 20, Right: 110, Bottom: 140}, res.Detections[0].Box)
	assert.InDelta(t, 0.873, res.Detections[0].Score(), 1e-6)
	assert.Equal(t, int64(1), res.Detections[0].ID)

	empty, ok := idx.Get(1)
	require.True(t, ok)
	assert.Equal(t, 0, empty.Len())

	third, _ := idx.Get(3)
	assert.Equal(t, int64(42), third.Detections[0].ID, "existing IDs are kept")
	assert.Equal(t, int64(2), third.Detections[1].ID)
	assert.Equal(t, float32(0), third.Detections[1].Score(), "no categories scores zero")

	_, ok = idx.Get(99)
	assert.False(t, ok)
}

func TestReadFramesErrors(t *testing.T) {
	_, err := ReadFrames(strings.NewReader(`{"frame": 1}`+"\n"+`{"frame": 1}`), nil)
	assert.ErrorContains(t, err, "duplicate frame 1")

	_, err = ReadFrames(strings.NewReader(`{"frame": `), nil)
	assert.ErrorContains(t, err, "line 1")
}

func TestIDGenerator(t *testing.T) {
	gen := NewIDGenerator()
	assert.Equal(t, int64(1), gen.GetNext())
	assert.Equal(t, int64(2), gen.GetNext())
}

func TestNilResultLen(t *testing.T) {
	var res *DetectionResult
	assert.Equal(t, 0, res.Len())
}
