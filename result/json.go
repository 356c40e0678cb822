package result

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// maxLineSize is the largest JSON line accepted when reading a frames stream
const maxLineSize = 4 * 1024 * 1024

// FrameIndex maps frame numbers to the detection result for that frame
type FrameIndex struct {
	frames map[int64]*DetectionResult
	order  []int64
}

// Get returns the result for the given frame number
func (f *FrameIndex) Get(frame int64) (*DetectionResult, bool) {
	res, ok := f.frames[frame]
	return res, ok
}

// Frames returns the frame numbers held in ascending order
func (f *FrameIndex) Frames() []int64 {
	return f.order
}

// Len returns the number of frames held
func (f *FrameIndex) Len() int {
	return len(f.order)
}

// ReadFrames decodes a JSON lines stream where each line is a single
// DetectionResult.  Blank lines and lines starting with '#' are skipped.
// Detections missing an ID are stamped using the given generator.
func ReadFrames(r io.Reader, idGen *IDGenerator) (*FrameIndex, error) {

	idx := &FrameIndex{
		frames: make(map[int64]*DetectionResult),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		res := &DetectionResult{}

		if err := json.Unmarshal([]byte(line), res); err != nil {
			return nil, fmt.Errorf("error decoding line %d: %w", lineNo, err)
		}

		if _, exists := idx.frames[res.Frame]; exists {
			return nil, fmt.Errorf("duplicate frame %d on line %d", res.Frame, lineNo)
		}

		if idGen != nil {
			idGen.Stamp(res)
		}

		idx.frames[res.Frame] = res
		idx.order = append(idx.order, res.Frame)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading frames: %w", err)
	}

	sort.Slice(idx.order, func(i, j int) bool { return idx.order[i] < idx.order[j] })

	return idx, nil
}

// LoadFrames reads a JSON lines detections file from disk
func LoadFrames(file string, idGen *IDGenerator) (*FrameIndex, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	return ReadFrames(f, idGen)
}

// LoadResult reads a single DetectionResult from a JSON file
func LoadResult(file string, idGen *IDGenerator) (*DetectionResult, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	res := &DetectionResult{}

	if err := json.Unmarshal(data, res); err != nil {
		return nil, fmt.Errorf("error decoding detections: %w", err)
	}

	if idGen != nil {
		idGen.Stamp(res)
	}

	return res, nil
}
