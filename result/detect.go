package result

// BoxRect are the dimensions of the bounding box of a detected face in
// source image pixel coordinates
type BoxRect struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// Width of the bounding box
func (b BoxRect) Width() int {
	return b.Right - b.Left
}

// Height of the bounding box
func (b BoxRect) Height() int {
	return b.Bottom - b.Top
}

// Category is a label and confidence score pair reported by the detector
type Category struct {
	Label string  `json:"label"`
	Score float32 `json:"score"`
}

// Detection defines the attributes of a single face detected in a frame
type Detection struct {
	// Box are the bounding box dimensions of the face location
	Box BoxRect `json:"box"`
	// Categories are ordered by the detector, only the first is used for
	// the confidence readout
	Categories []Category `json:"categories"`
	// ID is a unique ID assigned to the detection
	ID int64 `json:"id"`
}

// Score returns the confidence score of the first category, or zero if the
// detector reported no categories
func (d Detection) Score() float32 {
	if len(d.Categories) == 0 {
		return 0
	}
	return d.Categories[0].Score
}

// DetectionResult is the full output of the detector for one frame.  It must
// be treated as immutable once produced.
type DetectionResult struct {
	// Frame is the sequence number of the frame the detections belong to
	Frame int64 `json:"frame"`
	// ImageWidth is the width of the image the detector was given
	ImageWidth int `json:"width"`
	// ImageHeight is the height of the image the detector was given
	ImageHeight int `json:"height"`
	// Detections are in the order the detector produced them
	Detections []Detection `json:"detections"`
}

// Len returns the number of detections in the result
func (r *DetectionResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Detections)
}
