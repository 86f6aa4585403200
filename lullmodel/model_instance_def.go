package lullmodel

import (
	flatbuffers "github.com/blastbao/flatcodec/flatbuffers"
)

// ModelInstanceDef slots.
const (
	modelVertexData = iota
	modelIndices16
	modelIndices32
	modelRanges
	modelMaterials
	modelVertexAttributes
	modelNumVertices
	modelInterleaved
	modelShaderToMeshBones
	modelBlendShapes
	modelBlendAttributes
	modelAabbs
	modelNumFields
)

// Schema defaults of the scalar fields.
const (
	DefaultNumVertices = uint32(0)
	DefaultInterleaved = true
)

// ModelInstanceDef is a single instance of model data used to render an
// object at a given LOD.
type ModelInstanceDef struct {
	_tab flatbuffers.Table
}

func GetRootAsModelInstanceDef(buf []byte, offset flatbuffers.UOffsetT) *ModelInstanceDef {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &ModelInstanceDef{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *ModelInstanceDef) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ModelInstanceDef) Table() flatbuffers.Table {
	return rcv._tab
}

// offset returns the table relative offset of `slot`, or 0 when absent.
func (rcv *ModelInstanceDef) offset(slot int) flatbuffers.UOffsetT {
	return flatbuffers.UOffsetT(rcv._tab.Offset(flatbuffers.SlotOffset(slot)))
}

func (rcv *ModelInstanceDef) vectorLen(slot int) int {
	if o := rcv.offset(slot); o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// VertexData returns byte j of the "raw" vertex data.
func (rcv *ModelInstanceDef) VertexData(j int) byte {
	if o := rcv.offset(modelVertexData); o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetByte(a + flatbuffers.UOffsetT(j*1))
	}
	return 0
}

func (rcv *ModelInstanceDef) VertexDataLength() int {
	return rcv.vectorLen(modelVertexData)
}

// VertexDataBytes returns the vertex data without copying it.
func (rcv *ModelInstanceDef) VertexDataBytes() []byte {
	if o := rcv.offset(modelVertexData); o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

// Indices16 returns index j when the model uses 16-bit indices.
func (rcv *ModelInstanceDef) Indices16(j int) uint16 {
	if o := rcv.offset(modelIndices16); o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetUint16(a + flatbuffers.UOffsetT(j*flatbuffers.SizeUint16))
	}
	return 0
}

func (rcv *ModelInstanceDef) Indices16Length() int {
	return rcv.vectorLen(modelIndices16)
}

// Indices32 returns index j when the model uses 32-bit indices.
func (rcv *ModelInstanceDef) Indices32(j int) uint32 {
	if o := rcv.offset(modelIndices32); o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetUint32(a + flatbuffers.UOffsetT(j*flatbuffers.SizeUint32))
	}
	return 0
}

func (rcv *ModelInstanceDef) Indices32Length() int {
	return rcv.vectorLen(modelIndices32)
}

// Ranges points obj at the index range of submesh j.
func (rcv *ModelInstanceDef) Ranges(obj *ModelIndexRange, j int) bool {
	if o := rcv.offset(modelRanges); o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * ModelIndexRangeSize
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *ModelInstanceDef) RangesLength() int {
	return rcv.vectorLen(modelRanges)
}

// Materials points obj at the material of submesh j.
func (rcv *ModelInstanceDef) Materials(obj *MaterialDef, j int) bool {
	if o := rcv.offset(modelMaterials); o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * flatbuffers.SizeUOffsetT
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *ModelInstanceDef) MaterialsLength() int {
	return rcv.vectorLen(modelMaterials)
}

// VertexAttributes describes the structure of the vertex data.
func (rcv *ModelInstanceDef) VertexAttributes(obj *VertexAttribute, j int) bool {
	return rcv.attribute(modelVertexAttributes, obj, j)
}

func (rcv *ModelInstanceDef) VertexAttributesLength() int {
	return rcv.vectorLen(modelVertexAttributes)
}

func (rcv *ModelInstanceDef) attribute(slot int, obj *VertexAttribute, j int) bool {
	if o := rcv.offset(slot); o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * VertexAttributeSize
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

// NumVertices is the total number of vertices stored in the vertex data.
func (rcv *ModelInstanceDef) NumVertices() uint32 {
	return rcv._tab.GetUint32Slot(flatbuffers.SlotOffset(modelNumVertices), DefaultNumVertices)
}

func (rcv *ModelInstanceDef) MutateNumVertices(n uint32) bool {
	return rcv._tab.MutateUint32Slot(flatbuffers.SlotOffset(modelNumVertices), n)
}

// Interleaved reports whether the attributes in the vertex data are
// interleaved. An absent field reads true.
func (rcv *ModelInstanceDef) Interleaved() bool {
	return rcv._tab.GetBoolSlot(flatbuffers.SlotOffset(modelInterleaved), DefaultInterleaved)
}

func (rcv *ModelInstanceDef) MutateInterleaved(n bool) bool {
	return rcv._tab.MutateBoolSlot(flatbuffers.SlotOffset(modelInterleaved), n)
}

// ShaderToMeshBones maps the skeleton bone index to the shader bone index.
// The shader bones are only the bones that have at least one vertex weighted
// to them and, as such, are a subset of all the bones in the skeleton.
func (rcv *ModelInstanceDef) ShaderToMeshBones(j int) byte {
	if o := rcv.offset(modelShaderToMeshBones); o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetByte(a + flatbuffers.UOffsetT(j*1))
	}
	return 0
}

func (rcv *ModelInstanceDef) ShaderToMeshBonesLength() int {
	return rcv.vectorLen(modelShaderToMeshBones)
}

func (rcv *ModelInstanceDef) ShaderToMeshBonesBytes() []byte {
	if o := rcv.offset(modelShaderToMeshBones); o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

// BlendShapes points obj at blend shape j.
func (rcv *ModelInstanceDef) BlendShapes(obj *BlendShape, j int) bool {
	if o := rcv.offset(modelBlendShapes); o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * flatbuffers.SizeUOffsetT
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *ModelInstanceDef) BlendShapesLength() int {
	return rcv.vectorLen(modelBlendShapes)
}

// BlendAttributes describes the structure of the blend shape vertex data.
func (rcv *ModelInstanceDef) BlendAttributes(obj *VertexAttribute, j int) bool {
	return rcv.attribute(modelBlendAttributes, obj, j)
}

func (rcv *ModelInstanceDef) BlendAttributesLength() int {
	return rcv.vectorLen(modelBlendAttributes)
}

// Aabbs points obj at the bounding box of submesh j.
func (rcv *ModelInstanceDef) Aabbs(obj *SubmeshAabb, j int) bool {
	if o := rcv.offset(modelAabbs); o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * flatbuffers.SizeUOffsetT
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *ModelInstanceDef) AabbsLength() int {
	return rcv.vectorLen(modelAabbs)
}

func ModelInstanceDefStart(builder *flatbuffers.Builder) {
	builder.StartObject(modelNumFields)
}

func ModelInstanceDefAddVertexData(builder *flatbuffers.Builder, vertexData flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelVertexData, vertexData, 0)
}

func ModelInstanceDefAddIndices16(builder *flatbuffers.Builder, indices16 flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelIndices16, indices16, 0)
}

func ModelInstanceDefAddIndices32(builder *flatbuffers.Builder, indices32 flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelIndices32, indices32, 0)
}

func ModelInstanceDefAddRanges(builder *flatbuffers.Builder, ranges flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelRanges, ranges, 0)
}

func ModelInstanceDefStartRangesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(ModelIndexRangeSize, numElems, structAlignment)
}

func ModelInstanceDefAddMaterials(builder *flatbuffers.Builder, materials flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelMaterials, materials, 0)
}

func ModelInstanceDefAddVertexAttributes(builder *flatbuffers.Builder, vertexAttributes flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelVertexAttributes, vertexAttributes, 0)
}

func ModelInstanceDefStartVertexAttributesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(VertexAttributeSize, numElems, structAlignment)
}

func ModelInstanceDefAddNumVertices(builder *flatbuffers.Builder, numVertices uint32) {
	builder.PrependUint32Slot(modelNumVertices, numVertices, DefaultNumVertices)
}

func ModelInstanceDefAddInterleaved(builder *flatbuffers.Builder, interleaved bool) {
	builder.PrependBoolSlot(modelInterleaved, interleaved, DefaultInterleaved)
}

func ModelInstanceDefAddShaderToMeshBones(builder *flatbuffers.Builder, shaderToMeshBones flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelShaderToMeshBones, shaderToMeshBones, 0)
}

func ModelInstanceDefAddBlendShapes(builder *flatbuffers.Builder, blendShapes flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelBlendShapes, blendShapes, 0)
}

func ModelInstanceDefAddBlendAttributes(builder *flatbuffers.Builder, blendAttributes flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelBlendAttributes, blendAttributes, 0)
}

func ModelInstanceDefStartBlendAttributesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(VertexAttributeSize, numElems, structAlignment)
}

func ModelInstanceDefAddAabbs(builder *flatbuffers.Builder, aabbs flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(modelAabbs, aabbs, 0)
}

func ModelInstanceDefEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
