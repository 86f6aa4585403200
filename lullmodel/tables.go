package lullmodel

import (
	flatbuffers "github.com/blastbao/flatcodec/flatbuffers"
)

// MaterialDef slots.
const (
	materialDefName = iota
	materialDefTextures
	materialDefNumFields
)

// MaterialDef describes the "look" of one submesh.
type MaterialDef struct {
	_tab flatbuffers.Table
}

func (rcv *MaterialDef) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *MaterialDef) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *MaterialDef) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(flatbuffers.SlotOffset(materialDefName)))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *MaterialDef) Textures(j int) []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(flatbuffers.SlotOffset(materialDefTextures)))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.ByteVector(a + flatbuffers.UOffsetT(j*flatbuffers.SizeUOffsetT))
	}
	return nil
}

func (rcv *MaterialDef) TexturesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(flatbuffers.SlotOffset(materialDefTextures)))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func MaterialDefStart(builder *flatbuffers.Builder) {
	builder.StartObject(materialDefNumFields)
}

func MaterialDefAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(materialDefName, name, 0)
}

func MaterialDefAddTextures(builder *flatbuffers.Builder, textures flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(materialDefTextures, textures, 0)
}

func MaterialDefEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// MaterialDefT is the object form of MaterialDef.
type MaterialDefT struct {
	Name     string
	Textures []string
}

func (t *MaterialDefT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	name := flatbuffers.UOffsetT(0)
	if t.Name != "" {
		name = builder.CreateString(t.Name)
	}
	textures := flatbuffers.UOffsetT(0)
	if t.Textures != nil {
		offs := make([]flatbuffers.UOffsetT, len(t.Textures))
		for j, s := range t.Textures {
			offs[j] = builder.CreateString(s)
		}
		textures = builder.CreateUOffsetVector(offs)
	}
	MaterialDefStart(builder)
	MaterialDefAddName(builder, name)
	MaterialDefAddTextures(builder, textures)
	return MaterialDefEnd(builder)
}

func (rcv *MaterialDef) UnPackTo(t *MaterialDefT) {
	t.Name = string(rcv.Name())
	if n := rcv._tab.Offset(flatbuffers.SlotOffset(materialDefTextures)); n != 0 {
		t.Textures = make([]string, rcv.TexturesLength())
		for j := range t.Textures {
			t.Textures[j] = string(rcv.Textures(j))
		}
	}
}

func (rcv *MaterialDef) UnPack() *MaterialDefT {
	if rcv == nil {
		return nil
	}
	t := &MaterialDefT{}
	rcv.UnPackTo(t)
	return t
}

// BlendShape slots.
const (
	blendShapeName = iota
	blendShapeVertexData
	blendShapeNumFields
)

// BlendShape is one morph target. Name is the hashed shape name.
type BlendShape struct {
	_tab flatbuffers.Table
}

func (rcv *BlendShape) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BlendShape) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *BlendShape) Name() uint32 {
	return rcv._tab.GetUint32Slot(flatbuffers.SlotOffset(blendShapeName), 0)
}

func (rcv *BlendShape) MutateName(n uint32) bool {
	return rcv._tab.MutateUint32Slot(flatbuffers.SlotOffset(blendShapeName), n)
}

func (rcv *BlendShape) VertexData(j int) byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(flatbuffers.SlotOffset(blendShapeVertexData)))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetByte(a + flatbuffers.UOffsetT(j*1))
	}
	return 0
}

func (rcv *BlendShape) VertexDataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(flatbuffers.SlotOffset(blendShapeVertexData)))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *BlendShape) VertexDataBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(flatbuffers.SlotOffset(blendShapeVertexData)))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func BlendShapeStart(builder *flatbuffers.Builder) {
	builder.StartObject(blendShapeNumFields)
}

func BlendShapeAddName(builder *flatbuffers.Builder, name uint32) {
	builder.PrependUint32Slot(blendShapeName, name, 0)
}

func BlendShapeAddVertexData(builder *flatbuffers.Builder, vertexData flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(blendShapeVertexData, vertexData, 0)
}

func BlendShapeEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// BlendShapeT is the object form of BlendShape.
type BlendShapeT struct {
	Name       uint32
	VertexData []byte
}

func (t *BlendShapeT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	vertexData := flatbuffers.UOffsetT(0)
	if t.VertexData != nil {
		vertexData = builder.CreateByteVector(t.VertexData)
	}
	BlendShapeStart(builder)
	BlendShapeAddName(builder, t.Name)
	BlendShapeAddVertexData(builder, vertexData)
	return BlendShapeEnd(builder)
}

func (rcv *BlendShape) UnPackTo(t *BlendShapeT) {
	t.Name = rcv.Name()
	if b := rcv.VertexDataBytes(); b != nil {
		t.VertexData = append([]byte{}, b...)
	}
}

func (rcv *BlendShape) UnPack() *BlendShapeT {
	if rcv == nil {
		return nil
	}
	t := &BlendShapeT{}
	rcv.UnPackTo(t)
	return t
}

// SubmeshAabb slots.
const (
	submeshAabbMinPosition = iota
	submeshAabbMaxPosition
	submeshAabbNumFields
)

// SubmeshAabb is the axis aligned bounding box of one submesh.
type SubmeshAabb struct {
	_tab flatbuffers.Table
}

func (rcv *SubmeshAabb) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *SubmeshAabb) Table() flatbuffers.Table {
	return rcv._tab
}

// MinPosition returns nil when the corner is absent.
func (rcv *SubmeshAabb) MinPosition(obj *Vec3) *Vec3 {
	return rcv.corner(submeshAabbMinPosition, obj)
}

func (rcv *SubmeshAabb) MaxPosition(obj *Vec3) *Vec3 {
	return rcv.corner(submeshAabbMaxPosition, obj)
}

func (rcv *SubmeshAabb) corner(slot int, obj *Vec3) *Vec3 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(flatbuffers.SlotOffset(slot)))
	if o != 0 {
		x := o + rcv._tab.Pos
		if obj == nil {
			obj = new(Vec3)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func SubmeshAabbStart(builder *flatbuffers.Builder) {
	builder.StartObject(submeshAabbNumFields)
}

// SubmeshAabbAddMinPosition must directly follow the CreateVec3 call that
// produced minPosition: structs are stored inline in the table.
func SubmeshAabbAddMinPosition(builder *flatbuffers.Builder, minPosition flatbuffers.UOffsetT) {
	builder.PrependStructSlot(submeshAabbMinPosition, minPosition, 0)
}

func SubmeshAabbAddMaxPosition(builder *flatbuffers.Builder, maxPosition flatbuffers.UOffsetT) {
	builder.PrependStructSlot(submeshAabbMaxPosition, maxPosition, 0)
}

func SubmeshAabbEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// SubmeshAabbT is the object form of SubmeshAabb. A nil corner is absent.
type SubmeshAabbT struct {
	MinPosition *Vec3T
	MaxPosition *Vec3T
}

func (t *SubmeshAabbT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	SubmeshAabbStart(builder)
	SubmeshAabbAddMaxPosition(builder, t.MaxPosition.Pack(builder))
	SubmeshAabbAddMinPosition(builder, t.MinPosition.Pack(builder))
	return SubmeshAabbEnd(builder)
}

func (rcv *SubmeshAabb) UnPackTo(t *SubmeshAabbT) {
	t.MinPosition = rcv.MinPosition(nil).UnPack()
	t.MaxPosition = rcv.MaxPosition(nil).UnPack()
}

func (rcv *SubmeshAabb) UnPack() *SubmeshAabbT {
	if rcv == nil {
		return nil
	}
	t := &SubmeshAabbT{}
	rcv.UnPackTo(t)
	return t
}
