package egret

// Part identifies one of the four components of a bundle.
type Part int

const (
	PartInfo Part = iota
	PartDaily
	PartSample
	PartSurfaces
)

// SurfaceRows is the row dimension of the fitted surfaces grid produced by
// the surface-estimation engine.
const SurfaceRows = 14

// Key returns the mapping key under which the part is stored.
func (p Part) Key() string {
	switch p {
	case PartInfo:
		return "INFO"
	case PartDaily:
		return "Daily"
	case PartSample:
		return "Sample"
	case PartSurfaces:
		return "surfaces"
	default:
		return ""
	}
}

func (p Part) String() string {
	switch p {
	case PartInfo:
		return "info"
	case PartDaily:
		return "daily"
	case PartSample:
		return "sample"
	case PartSurfaces:
		return "surfaces"
	default:
		return "unknown"
	}
}
