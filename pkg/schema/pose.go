package schema

import "math"

// PoseType discriminates how joint coordinates are interpreted.
type PoseType int32

const (
	Pose2D PoseType = iota
	Pose3D
	// Pose25D is reserved for 2.5-D pose data.
	Pose25D
)

// Joint is one body keypoint with its detection confidence.
type Joint struct {
	X          float32 `json:"x"`
	Y          float32 `json:"y"`
	Z          float32 `json:"z"`
	Confidence float32 `json:"confidence"`
}

// Pose is an ordered sequence of joints with an explicit declared count.
// A zero-count pose with no joints means "no pose data".
type Pose struct {
	Joints    []Joint
	NumJoints int
	Type      PoseType
}

// NewPose builds a pose whose declared count matches its storage.
func NewPose(joints []Joint, typ PoseType) Pose {
	return Pose{Joints: joints, NumJoints: len(joints), Type: typ}
}

// Empty reports whether the pose carries no joints.
func (p Pose) Empty() bool { return p.NumJoints == 0 && len(p.Joints) == 0 }

func (p Pose) validate() error {
	if p.NumJoints != len(p.Joints) {
		return ErrLengthMismatch
	}
	return nil
}

// Embedding is a flat re-identification feature vector with an explicit
// declared length. A zero-length embedding with no storage means
// "no embedding".
type Embedding struct {
	Vector []float32
	Length uint
}

// NewEmbedding builds an embedding whose declared length matches its
// storage.
func NewEmbedding(vector []float32) Embedding {
	return Embedding{Vector: vector, Length: uint(len(vector))}
}

// Empty reports whether the embedding carries no values.
func (e Embedding) Empty() bool { return e.Length == 0 && len(e.Vector) == 0 }

func (e Embedding) validate() error {
	if int(e.Length) != len(e.Vector) {
		return ErrLengthMismatch
	}
	return nil
}

// CosineSimilarity computes cosine similarity between two normalized
// embedding vectors. Mismatched lengths yield 0.
func (e Embedding) CosineSimilarity(o Embedding) float32 {
	if len(e.Vector) != len(o.Vector) {
		return 0
	}
	var dot float64
	for i := range e.Vector {
		dot += float64(e.Vector[i]) * float64(o.Vector[i])
	}
	return float32(math.Min(1.0, math.Max(-1.0, dot)))
}
