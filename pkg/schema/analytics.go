package schema

// MoveDirection is the derived movement direction of a tracked object.
type MoveDirection int32

const (
	MoveUp MoveDirection = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveRightUp
	MoveRightDown
	MoveLeftUp
	MoveLeftDown
	MoveLittle
	NoDirection
)

func (d MoveDirection) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveRightUp:
		return "right-up"
	case MoveRightDown:
		return "right-down"
	case MoveLeftUp:
		return "left-up"
	case MoveLeftDown:
		return "left-down"
	case MoveLittle:
		return "little"
	default:
		return "none"
	}
}

// ObjectStatus is the derived behavioral status of a tracked object.
type ObjectStatus int32

const (
	StatusVehicleLongPark ObjectStatus = iota
	StatusPersonLongStanding
	StatusPersonLongWalk
	StatusPersonLoitering
	StatusPersonBreakIn
	StatusPersonJaywalk
	StatusPersonOvercrowd
	StatusCollidePre
	StatusCollideClose
	StatusObjectMove
	NoStatus
)

func (s ObjectStatus) String() string {
	switch s {
	case StatusVehicleLongPark:
		return "vehicle-long-park"
	case StatusPersonLongStanding:
		return "person-long-standing"
	case StatusPersonLongWalk:
		return "person-long-walk"
	case StatusPersonLoitering:
		return "person-loitering"
	case StatusPersonBreakIn:
		return "person-break-in"
	case StatusPersonJaywalk:
		return "person-jaywalk"
	case StatusPersonOvercrowd:
		return "person-overcrowd"
	case StatusCollidePre:
		return "collide-pre"
	case StatusCollideClose:
		return "collide-close"
	case StatusObjectMove:
		return "object-move"
	default:
		return "none"
	}
}

const (
	// MaxLanes is the number of lane slots in an analytics annotation.
	MaxLanes = 4
	// LaneUnset is the sentinel for an unset lane identifier.
	LaneUnset int32 = -1
)

// Analytics is the optional derived-behavior annotation for one event.
// Lane slots beyond LaneCount are unspecified and must be ignored;
// ReverseLane is LaneUnset when not applicable.
type Analytics struct {
	Direction MoveDirection
	Status    ObjectStatus

	MoveLength     float32 // pixels moved over the measured interval
	MoveTimeMs     float32 // milliseconds spent in the current movement
	MoveSpeed      float32
	LongStayTimeMs float32 // milliseconds of long-stay dwell

	Lanes       [MaxLanes]int32
	LaneCount   int
	ReverseLane int32
}

// NewAnalytics returns an annotation with documented default values:
// no direction, no status, all lane slots unset.
func NewAnalytics() Analytics {
	return Analytics{
		Direction:   NoDirection,
		Status:      NoStatus,
		Lanes:       [MaxLanes]int32{LaneUnset, LaneUnset, LaneUnset, LaneUnset},
		ReverseLane: LaneUnset,
	}
}

// CrossedLanes returns the meaningful lane identifiers: the first LaneCount
// slots of Lanes.
func (a Analytics) CrossedLanes() []int32 {
	n := a.LaneCount
	if n < 0 {
		n = 0
	}
	if n > MaxLanes {
		n = MaxLanes
	}
	lanes := make([]int32, n)
	copy(lanes, a.Lanes[:n])
	return lanes
}

func (a Analytics) validate() error {
	if a.LaneCount < 0 || a.LaneCount > MaxLanes {
		return ErrLengthMismatch
	}
	return nil
}

// BehaviorFlags are the independent derived-behavior booleans carried by an
// event record. They are not mutually exclusive and default to false.
type BehaviorFlags struct {
	LaneCross    bool
	ReverseDrive bool
	OverCrowd    bool
	LongPark     bool
	Loitering    bool
	BreakIn      bool
	Jaywalk      bool
}
