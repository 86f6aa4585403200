package lullmodel

import (
	flatbuffers "github.com/blastbao/flatcodec/flatbuffers"
)

// Inline struct sizes, also the element size of vectors of these structs.
const (
	VertexAttributeSize = 8
	ModelIndexRangeSize = 8
	Vec3Size            = 12

	structAlignment = 4
)

// VertexAttribute describes a single attribute in the vertex format.
type VertexAttribute struct {
	_tab flatbuffers.Struct
}

func (rcv *VertexAttribute) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *VertexAttribute) Table() flatbuffers.Table {
	return rcv._tab.Table
}

func (rcv *VertexAttribute) Usage() VertexAttributeUsage {
	return VertexAttributeUsage(rcv._tab.GetInt32(rcv._tab.Pos + 0))
}

func (rcv *VertexAttribute) MutateUsage(n VertexAttributeUsage) bool {
	return rcv._tab.MutateInt32(rcv._tab.Pos+0, int32(n))
}

func (rcv *VertexAttribute) Type() VertexAttributeType {
	return VertexAttributeType(rcv._tab.GetInt32(rcv._tab.Pos + 4))
}

func (rcv *VertexAttribute) MutateType(n VertexAttributeType) bool {
	return rcv._tab.MutateInt32(rcv._tab.Pos+4, int32(n))
}

// CreateVertexAttribute writes a VertexAttribute inline. Call it right before
// the vector element or struct slot it belongs to.
func CreateVertexAttribute(builder *flatbuffers.Builder, usage VertexAttributeUsage, typ VertexAttributeType) flatbuffers.UOffsetT {
	builder.Prep(structAlignment, VertexAttributeSize)
	builder.PrependInt32(int32(typ))
	builder.PrependInt32(int32(usage))
	return builder.Offset()
}

// VertexAttributeT is the object form of VertexAttribute.
type VertexAttributeT struct {
	Usage VertexAttributeUsage
	Type  VertexAttributeType
}

func (t *VertexAttributeT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateVertexAttribute(builder, t.Usage, t.Type)
}

func (rcv *VertexAttribute) UnPackTo(t *VertexAttributeT) {
	t.Usage = rcv.Usage()
	t.Type = rcv.Type()
}

func (rcv *VertexAttribute) UnPack() *VertexAttributeT {
	if rcv == nil {
		return nil
	}
	t := &VertexAttributeT{}
	rcv.UnPackTo(t)
	return t
}

// ModelIndexRange is the [Start, End) range of indices drawn for one submesh.
type ModelIndexRange struct {
	_tab flatbuffers.Struct
}

func (rcv *ModelIndexRange) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ModelIndexRange) Table() flatbuffers.Table {
	return rcv._tab.Table
}

func (rcv *ModelIndexRange) Start() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + 0)
}

func (rcv *ModelIndexRange) MutateStart(n uint32) bool {
	return rcv._tab.MutateUint32(rcv._tab.Pos+0, n)
}

func (rcv *ModelIndexRange) End() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + 4)
}

func (rcv *ModelIndexRange) MutateEnd(n uint32) bool {
	return rcv._tab.MutateUint32(rcv._tab.Pos+4, n)
}

func CreateModelIndexRange(builder *flatbuffers.Builder, start, end uint32) flatbuffers.UOffsetT {
	builder.Prep(structAlignment, ModelIndexRangeSize)
	builder.PrependUint32(end)
	builder.PrependUint32(start)
	return builder.Offset()
}

// ModelIndexRangeT is the object form of ModelIndexRange.
type ModelIndexRangeT struct {
	Start uint32
	End   uint32
}

func (t *ModelIndexRangeT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateModelIndexRange(builder, t.Start, t.End)
}

func (rcv *ModelIndexRange) UnPackTo(t *ModelIndexRangeT) {
	t.Start = rcv.Start()
	t.End = rcv.End()
}

func (rcv *ModelIndexRange) UnPack() *ModelIndexRangeT {
	if rcv == nil {
		return nil
	}
	t := &ModelIndexRangeT{}
	rcv.UnPackTo(t)
	return t
}

// Vec3 is a point or extent in model space.
type Vec3 struct {
	_tab flatbuffers.Struct
}

func (rcv *Vec3) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Vec3) Table() flatbuffers.Table {
	return rcv._tab.Table
}

func (rcv *Vec3) X() float32 {
	return rcv._tab.GetFloat32(rcv._tab.Pos + 0)
}

func (rcv *Vec3) MutateX(n float32) bool {
	return rcv._tab.MutateFloat32(rcv._tab.Pos+0, n)
}

func (rcv *Vec3) Y() float32 {
	return rcv._tab.GetFloat32(rcv._tab.Pos + 4)
}

func (rcv *Vec3) MutateY(n float32) bool {
	return rcv._tab.MutateFloat32(rcv._tab.Pos+4, n)
}

func (rcv *Vec3) Z() float32 {
	return rcv._tab.GetFloat32(rcv._tab.Pos + 8)
}

func (rcv *Vec3) MutateZ(n float32) bool {
	return rcv._tab.MutateFloat32(rcv._tab.Pos+8, n)
}

func CreateVec3(builder *flatbuffers.Builder, x, y, z float32) flatbuffers.UOffsetT {
	builder.Prep(structAlignment, Vec3Size)
	builder.PrependFloat32(z)
	builder.PrependFloat32(y)
	builder.PrependFloat32(x)
	return builder.Offset()
}

// Vec3T is the object form of Vec3.
type Vec3T struct {
	X float32
	Y float32
	Z float32
}

func (t *Vec3T) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateVec3(builder, t.X, t.Y, t.Z)
}

func (rcv *Vec3) UnPackTo(t *Vec3T) {
	t.X = rcv.X()
	t.Y = rcv.Y()
	t.Z = rcv.Z()
}

func (rcv *Vec3) UnPack() *Vec3T {
	if rcv == nil {
		return nil
	}
	t := &Vec3T{}
	rcv.UnPackTo(t)
	return t
}
