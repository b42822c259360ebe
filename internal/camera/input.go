package camera

// Input is the per-frame control snapshot the camera reads in Update.
type Input struct {
	RotateLeft  bool
	RotateRight bool
}

// Direction maps the held controls to a rotation request. Left wins when
// both are held.
func (in Input) Direction() Direction {
	switch {
	case in.RotateLeft:
		return DirCounterClockwise
	case in.RotateRight:
		return DirClockwise
	}
	return DirNone
}
