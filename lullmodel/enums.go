package lullmodel

import "strconv"

// VertexAttributeUsage tells the renderer what a vertex attribute holds.
type VertexAttributeUsage int32

const (
	VertexAttributeUsageInvalid     VertexAttributeUsage = 0
	VertexAttributeUsagePosition    VertexAttributeUsage = 1
	VertexAttributeUsageColor       VertexAttributeUsage = 2
	VertexAttributeUsageTexCoord    VertexAttributeUsage = 3
	VertexAttributeUsageNormal      VertexAttributeUsage = 4
	VertexAttributeUsageTangent     VertexAttributeUsage = 5
	VertexAttributeUsageOrientation VertexAttributeUsage = 6
	VertexAttributeUsageBoneIndices VertexAttributeUsage = 7
	VertexAttributeUsageBoneWeights VertexAttributeUsage = 8
)

var EnumNamesVertexAttributeUsage = map[VertexAttributeUsage]string{
	VertexAttributeUsageInvalid:     "Invalid",
	VertexAttributeUsagePosition:    "Position",
	VertexAttributeUsageColor:       "Color",
	VertexAttributeUsageTexCoord:    "TexCoord",
	VertexAttributeUsageNormal:      "Normal",
	VertexAttributeUsageTangent:     "Tangent",
	VertexAttributeUsageOrientation: "Orientation",
	VertexAttributeUsageBoneIndices: "BoneIndices",
	VertexAttributeUsageBoneWeights: "BoneWeights",
}

func (v VertexAttributeUsage) String() string {
	if s, ok := EnumNamesVertexAttributeUsage[v]; ok {
		return s
	}
	return "VertexAttributeUsage(" + strconv.FormatInt(int64(v), 10) + ")"
}

// VertexAttributeType is the component layout of a vertex attribute.
type VertexAttributeType int32

const (
	VertexAttributeTypeEmpty    VertexAttributeType = 0
	VertexAttributeTypeScalar1f VertexAttributeType = 1
	VertexAttributeTypeVec2f    VertexAttributeType = 2
	VertexAttributeTypeVec3f    VertexAttributeType = 3
	VertexAttributeTypeVec4f    VertexAttributeType = 4
	VertexAttributeTypeVec2us   VertexAttributeType = 5
	VertexAttributeTypeVec4us   VertexAttributeType = 6
	VertexAttributeTypeVec4ub   VertexAttributeType = 7
)

var EnumNamesVertexAttributeType = map[VertexAttributeType]string{
	VertexAttributeTypeEmpty:    "Empty",
	VertexAttributeTypeScalar1f: "Scalar1f",
	VertexAttributeTypeVec2f:    "Vec2f",
	VertexAttributeTypeVec3f:    "Vec3f",
	VertexAttributeTypeVec4f:    "Vec4f",
	VertexAttributeTypeVec2us:   "Vec2us",
	VertexAttributeTypeVec4us:   "Vec4us",
	VertexAttributeTypeVec4ub:   "Vec4ub",
}

func (v VertexAttributeType) String() string {
	if s, ok := EnumNamesVertexAttributeType[v]; ok {
		return s
	}
	return "VertexAttributeType(" + strconv.FormatInt(int64(v), 10) + ")"
}

// Size returns the number of bytes one value of this type occupies in the
// vertex data, or 0 for Empty and unknown types.
func (v VertexAttributeType) Size() int {
	switch v {
	case VertexAttributeTypeScalar1f:
		return 4
	case VertexAttributeTypeVec2f:
		return 8
	case VertexAttributeTypeVec3f:
		return 12
	case VertexAttributeTypeVec4f:
		return 16
	case VertexAttributeTypeVec2us:
		return 4
	case VertexAttributeTypeVec4us:
		return 8
	case VertexAttributeTypeVec4ub:
		return 4
	}
	return 0
}
