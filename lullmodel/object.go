package lullmodel

import (
	flatbuffers "github.com/blastbao/flatcodec/flatbuffers"
)

// ModelInstanceDefT is the object form of ModelInstanceDef.
//
// A nil slice is an absent field and an empty non-nil slice an empty vector.
// Interleaved is written only when it differs from the schema default (true),
// so a zero ModelInstanceDefT encodes Interleaved = false explicitly; start
// from NewModelInstanceDefT to get the schema defaults.
type ModelInstanceDefT struct {
	VertexData        []byte
	Indices16         []uint16
	Indices32         []uint32
	Ranges            []*ModelIndexRangeT
	Materials         []*MaterialDefT
	VertexAttributes  []*VertexAttributeT
	NumVertices       uint32
	Interleaved       bool
	ShaderToMeshBones []byte
	BlendShapes       []*BlendShapeT
	BlendAttributes   []*VertexAttributeT
	Aabbs             []*SubmeshAabbT
}

// NewModelInstanceDefT returns an empty model carrying the schema defaults.
func NewModelInstanceDefT() *ModelInstanceDefT {
	return &ModelInstanceDefT{
		NumVertices: DefaultNumVertices,
		Interleaved: DefaultInterleaved,
	}
}

// Pack writes t and everything it references; the caller finishes the
// buffer with the returned offset.
//
// 子对象 (vector 、string 、table) 必须在 ModelInstanceDefStart 之前写完。
func (t *ModelInstanceDefT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}

	vertexData := flatbuffers.UOffsetT(0)
	if t.VertexData != nil {
		vertexData = builder.CreateByteVector(t.VertexData)
	}
	indices16 := flatbuffers.UOffsetT(0)
	if t.Indices16 != nil {
		indices16 = builder.CreateUint16Vector(t.Indices16)
	}
	indices32 := flatbuffers.UOffsetT(0)
	if t.Indices32 != nil {
		indices32 = builder.CreateUint32Vector(t.Indices32)
	}
	ranges := flatbuffers.UOffsetT(0)
	if t.Ranges != nil {
		n := len(t.Ranges)
		ModelInstanceDefStartRangesVector(builder, n)
		for j := n - 1; j >= 0; j-- {
			r := t.Ranges[j]
			if r == nil {
				r = &ModelIndexRangeT{}
			}
			r.Pack(builder)
		}
		ranges = builder.EndVector(n)
	}
	materials := flatbuffers.UOffsetT(0)
	if t.Materials != nil {
		offs := make([]flatbuffers.UOffsetT, len(t.Materials))
		for j, m := range t.Materials {
			if m == nil {
				m = &MaterialDefT{}
			}
			offs[j] = m.Pack(builder)
		}
		materials = builder.CreateUOffsetVector(offs)
	}
	vertexAttributes := packAttributes(builder, t.VertexAttributes)
	shaderToMeshBones := flatbuffers.UOffsetT(0)
	if t.ShaderToMeshBones != nil {
		shaderToMeshBones = builder.CreateByteVector(t.ShaderToMeshBones)
	}
	blendShapes := flatbuffers.UOffsetT(0)
	if t.BlendShapes != nil {
		offs := make([]flatbuffers.UOffsetT, len(t.BlendShapes))
		for j, s := range t.BlendShapes {
			if s == nil {
				s = &BlendShapeT{}
			}
			offs[j] = s.Pack(builder)
		}
		blendShapes = builder.CreateUOffsetVector(offs)
	}
	blendAttributes := packAttributes(builder, t.BlendAttributes)
	aabbs := flatbuffers.UOffsetT(0)
	if t.Aabbs != nil {
		offs := make([]flatbuffers.UOffsetT, len(t.Aabbs))
		for j, a := range t.Aabbs {
			if a == nil {
				a = &SubmeshAabbT{}
			}
			offs[j] = a.Pack(builder)
		}
		aabbs = builder.CreateUOffsetVector(offs)
	}

	// 按字段宽度从大到小添加，减少对齐填充。
	ModelInstanceDefStart(builder)
	ModelInstanceDefAddAabbs(builder, aabbs)
	ModelInstanceDefAddBlendAttributes(builder, blendAttributes)
	ModelInstanceDefAddBlendShapes(builder, blendShapes)
	ModelInstanceDefAddShaderToMeshBones(builder, shaderToMeshBones)
	ModelInstanceDefAddNumVertices(builder, t.NumVertices)
	ModelInstanceDefAddVertexAttributes(builder, vertexAttributes)
	ModelInstanceDefAddMaterials(builder, materials)
	ModelInstanceDefAddRanges(builder, ranges)
	ModelInstanceDefAddIndices32(builder, indices32)
	ModelInstanceDefAddIndices16(builder, indices16)
	ModelInstanceDefAddVertexData(builder, vertexData)
	ModelInstanceDefAddInterleaved(builder, t.Interleaved)
	return ModelInstanceDefEnd(builder)
}

func packAttributes(builder *flatbuffers.Builder, attrs []*VertexAttributeT) flatbuffers.UOffsetT {
	if attrs == nil {
		return 0
	}
	n := len(attrs)
	builder.StartVector(VertexAttributeSize, n, structAlignment)
	for j := n - 1; j >= 0; j-- {
		a := attrs[j]
		if a == nil {
			a = &VertexAttributeT{}
		}
		a.Pack(builder)
	}
	return builder.EndVector(n)
}

func (rcv *ModelInstanceDef) UnPackTo(t *ModelInstanceDefT) {
	if b := rcv.VertexDataBytes(); b != nil {
		t.VertexData = append([]byte{}, b...)
	}
	if rcv.offset(modelIndices16) != 0 {
		t.Indices16 = make([]uint16, rcv.Indices16Length())
		for j := range t.Indices16 {
			t.Indices16[j] = rcv.Indices16(j)
		}
	}
	if rcv.offset(modelIndices32) != 0 {
		t.Indices32 = make([]uint32, rcv.Indices32Length())
		for j := range t.Indices32 {
			t.Indices32[j] = rcv.Indices32(j)
		}
	}
	if rcv.offset(modelRanges) != 0 {
		t.Ranges = make([]*ModelIndexRangeT, rcv.RangesLength())
		var r ModelIndexRange
		for j := range t.Ranges {
			rcv.Ranges(&r, j)
			t.Ranges[j] = r.UnPack()
		}
	}
	if rcv.offset(modelMaterials) != 0 {
		t.Materials = make([]*MaterialDefT, rcv.MaterialsLength())
		var m MaterialDef
		for j := range t.Materials {
			rcv.Materials(&m, j)
			t.Materials[j] = m.UnPack()
		}
	}
	t.VertexAttributes = rcv.unpackAttributes(modelVertexAttributes)
	t.NumVertices = rcv.NumVertices()
	t.Interleaved = rcv.Interleaved()
	if b := rcv.ShaderToMeshBonesBytes(); b != nil {
		t.ShaderToMeshBones = append([]byte{}, b...)
	}
	if rcv.offset(modelBlendShapes) != 0 {
		t.BlendShapes = make([]*BlendShapeT, rcv.BlendShapesLength())
		var s BlendShape
		for j := range t.BlendShapes {
			rcv.BlendShapes(&s, j)
			t.BlendShapes[j] = s.UnPack()
		}
	}
	t.BlendAttributes = rcv.unpackAttributes(modelBlendAttributes)
	if rcv.offset(modelAabbs) != 0 {
		t.Aabbs = make([]*SubmeshAabbT, rcv.AabbsLength())
		var a SubmeshAabb
		for j := range t.Aabbs {
			rcv.Aabbs(&a, j)
			t.Aabbs[j] = a.UnPack()
		}
	}
}

func (rcv *ModelInstanceDef) unpackAttributes(slot int) []*VertexAttributeT {
	if rcv.offset(slot) == 0 {
		return nil
	}
	attrs := make([]*VertexAttributeT, rcv.vectorLen(slot))
	var a VertexAttribute
	for j := range attrs {
		rcv.attribute(slot, &a, j)
		attrs[j] = a.UnPack()
	}
	return attrs
}

func (rcv *ModelInstanceDef) UnPack() *ModelInstanceDefT {
	if rcv == nil {
		return nil
	}
	t := &ModelInstanceDefT{}
	rcv.UnPackTo(t)
	return t
}

// BuildModelInstanceDef encodes t as a finished buffer.
func BuildModelInstanceDef(t *ModelInstanceDefT) []byte {
	b := flatbuffers.NewBuilder(1024)
	b.Finish(t.Pack(b))
	return b.FinishedBytes()
}
