package result

import "sync"

// IDGenerator is a struct to hold a counter for generating the next incremental
// ID number
type IDGenerator struct {
	id int64
	sync.Mutex
}

// NewIDGenerator returns a generator whose first ID is 1
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next incremental number
func (id *IDGenerator) GetNext() int64 {
	id.Lock()
	defer id.Unlock()
	id.id++
	return id.id
}

// Stamp assigns an ID to each detection that does not have one yet
func (id *IDGenerator) Stamp(res *DetectionResult) {
	for i := range res.Detections {
		if res.Detections[i].ID == 0 {
			res.Detections[i].ID = id.GetNext()
		}
	}
}
