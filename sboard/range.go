package sboard

// FrameRange is an inclusive span of frames on some timeline.
type FrameRange struct {
	Start int
	End   int
}

// TimeRange is a span in seconds, used for audio clipping windows.
type TimeRange struct {
	Start float64
	End   float64
}
