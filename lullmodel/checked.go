package lullmodel

import (
	"strings"

	"golang.org/x/xerrors"

	flatbuffers "github.com/blastbao/flatcodec/flatbuffers"
)

// ErrInvalidModel is returned by Validate for a well formed buffer whose
// contents contradict each other.
var ErrInvalidModel = xerrors.New("lullmodel: invalid model")

// ReadModelInstanceDef decodes a ModelInstanceDef from a buffer of unknown
// origin. Every offset is bounds checked: a corrupt buffer yields an error
// wrapping flatbuffers.ErrMalformedBuffer instead of a panic.
func ReadModelInstanceDef(buf []byte) (*ModelInstanceDefT, error) {
	root, err := flatbuffers.GetRoot(buf)
	if err != nil {
		return nil, xerrors.Errorf("model instance: %w", err)
	}
	return readModel(&root)
}

func readModel(tab *flatbuffers.Table) (*ModelInstanceDefT, error) {
	t := &ModelInstanceDefT{}
	var err error

	if t.VertexData, err = readBytes(tab, modelVertexData); err != nil {
		return nil, xerrors.Errorf("vertex_data: %w", err)
	}
	if t.Indices16, err = readUint16s(tab, modelIndices16); err != nil {
		return nil, xerrors.Errorf("indices16: %w", err)
	}
	if t.Indices32, err = readUint32s(tab, modelIndices32); err != nil {
		return nil, xerrors.Errorf("indices32: %w", err)
	}

	v, ok, err := optionalVector(tab, modelRanges, ModelIndexRangeSize)
	if err != nil {
		return nil, xerrors.Errorf("ranges: %w", err)
	}
	if ok {
		t.Ranges = make([]*ModelIndexRangeT, v.Len())
		for j := range t.Ranges {
			s, err := v.StructAt(j)
			if err != nil {
				return nil, xerrors.Errorf("ranges: %w", err)
			}
			var r ModelIndexRange
			r.Init(s.Bytes, s.Pos)
			t.Ranges[j] = r.UnPack()
		}
	}

	v, ok, err = optionalVector(tab, modelMaterials, flatbuffers.SizeUOffsetT)
	if err != nil {
		return nil, xerrors.Errorf("materials: %w", err)
	}
	if ok {
		t.Materials = make([]*MaterialDefT, v.Len())
		for j := range t.Materials {
			mt, err := v.TableAt(j)
			if err != nil {
				return nil, xerrors.Errorf("materials: %w", err)
			}
			if t.Materials[j], err = readMaterial(&mt); err != nil {
				return nil, xerrors.Errorf("materials[%d]: %w", j, err)
			}
		}
	}

	if t.VertexAttributes, err = readAttributes(tab, modelVertexAttributes); err != nil {
		return nil, xerrors.Errorf("vertex_attributes: %w", err)
	}

	if _, err := tab.FieldPos(modelNumVertices, flatbuffers.SizeUint32); err != nil {
		return nil, xerrors.Errorf("num_vertices: %w", err)
	}
	t.NumVertices = tab.GetUint32Slot(flatbuffers.SlotOffset(modelNumVertices), DefaultNumVertices)
	if _, err := tab.FieldPos(modelInterleaved, flatbuffers.SizeBool); err != nil {
		return nil, xerrors.Errorf("interleaved: %w", err)
	}
	t.Interleaved = tab.GetBoolSlot(flatbuffers.SlotOffset(modelInterleaved), DefaultInterleaved)

	if t.ShaderToMeshBones, err = readBytes(tab, modelShaderToMeshBones); err != nil {
		return nil, xerrors.Errorf("shader_to_mesh_bones: %w", err)
	}

	v, ok, err = optionalVector(tab, modelBlendShapes, flatbuffers.SizeUOffsetT)
	if err != nil {
		return nil, xerrors.Errorf("blend_shapes: %w", err)
	}
	if ok {
		t.BlendShapes = make([]*BlendShapeT, v.Len())
		for j := range t.BlendShapes {
			st, err := v.TableAt(j)
			if err != nil {
				return nil, xerrors.Errorf("blend_shapes: %w", err)
			}
			if t.BlendShapes[j], err = readBlendShape(&st); err != nil {
				return nil, xerrors.Errorf("blend_shapes[%d]: %w", j, err)
			}
		}
	}

	if t.BlendAttributes, err = readAttributes(tab, modelBlendAttributes); err != nil {
		return nil, xerrors.Errorf("blend_attributes: %w", err)
	}

	v, ok, err = optionalVector(tab, modelAabbs, flatbuffers.SizeUOffsetT)
	if err != nil {
		return nil, xerrors.Errorf("aabbs: %w", err)
	}
	if ok {
		t.Aabbs = make([]*SubmeshAabbT, v.Len())
		for j := range t.Aabbs {
			at, err := v.TableAt(j)
			if err != nil {
				return nil, xerrors.Errorf("aabbs: %w", err)
			}
			if t.Aabbs[j], err = readAabb(&at); err != nil {
				return nil, xerrors.Errorf("aabbs[%d]: %w", j, err)
			}
		}
	}
	return t, nil
}

// optionalVector is VectorField with an absent field reported as ok=false.
func optionalVector(tab *flatbuffers.Table, slot, elemSize int) (flatbuffers.Vector, bool, error) {
	v, err := tab.VectorField(slot, elemSize)
	if xerrors.Is(err, flatbuffers.ErrFieldAbsent) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}
	return v, true, nil
}

func readBytes(tab *flatbuffers.Table, slot int) ([]byte, error) {
	v, ok, err := optionalVector(tab, slot, flatbuffers.SizeByte)
	if !ok || err != nil {
		return nil, err
	}
	return append([]byte{}, v.Data()...), nil
}

func readUint16s(tab *flatbuffers.Table, slot int) ([]uint16, error) {
	v, ok, err := optionalVector(tab, slot, flatbuffers.SizeUint16)
	if !ok || err != nil {
		return nil, err
	}
	out := make([]uint16, v.Len())
	for j := range out {
		if out[j], err = v.Uint16At(j); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func readUint32s(tab *flatbuffers.Table, slot int) ([]uint32, error) {
	v, ok, err := optionalVector(tab, slot, flatbuffers.SizeUint32)
	if !ok || err != nil {
		return nil, err
	}
	out := make([]uint32, v.Len())
	for j := range out {
		if out[j], err = v.Uint32At(j); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func readAttributes(tab *flatbuffers.Table, slot int) ([]*VertexAttributeT, error) {
	v, ok, err := optionalVector(tab, slot, VertexAttributeSize)
	if !ok || err != nil {
		return nil, err
	}
	out := make([]*VertexAttributeT, v.Len())
	for j := range out {
		s, err := v.StructAt(j)
		if err != nil {
			return nil, err
		}
		var a VertexAttribute
		a.Init(s.Bytes, s.Pos)
		out[j] = a.UnPack()
	}
	return out, nil
}

func readMaterial(tab *flatbuffers.Table) (*MaterialDefT, error) {
	m := &MaterialDefT{}
	name, err := tab.StringField(materialDefName)
	switch {
	case xerrors.Is(err, flatbuffers.ErrFieldAbsent):
	case err != nil:
		return nil, xerrors.Errorf("name: %w", err)
	default:
		m.Name = strings.Clone(name)
	}

	v, ok, err := optionalVector(tab, materialDefTextures, flatbuffers.SizeUOffsetT)
	if err != nil {
		return nil, xerrors.Errorf("textures: %w", err)
	}
	if ok {
		m.Textures = make([]string, v.Len())
		for j := range m.Textures {
			s, err := v.StringAt(j)
			if err != nil {
				return nil, xerrors.Errorf("textures: %w", err)
			}
			m.Textures[j] = strings.Clone(s)
		}
	}
	return m, nil
}

func readBlendShape(tab *flatbuffers.Table) (*BlendShapeT, error) {
	if _, err := tab.FieldPos(blendShapeName, flatbuffers.SizeUint32); err != nil {
		return nil, xerrors.Errorf("name: %w", err)
	}
	s := &BlendShapeT{
		Name: tab.GetUint32Slot(flatbuffers.SlotOffset(blendShapeName), 0),
	}
	var err error
	if s.VertexData, err = readBytes(tab, blendShapeVertexData); err != nil {
		return nil, xerrors.Errorf("vertex_data: %w", err)
	}
	return s, nil
}

func readAabb(tab *flatbuffers.Table) (*SubmeshAabbT, error) {
	a := &SubmeshAabbT{}
	for _, c := range []struct {
		slot int
		dst  **Vec3T
	}{
		{submeshAabbMinPosition, &a.MinPosition},
		{submeshAabbMaxPosition, &a.MaxPosition},
	} {
		s, err := tab.StructField(c.slot, Vec3Size)
		if xerrors.Is(err, flatbuffers.ErrFieldAbsent) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var v Vec3
		v.Init(s.Bytes, s.Pos)
		*c.dst = v.UnPack()
	}
	return a, nil
}

// Stride returns the byte size of one interleaved vertex described by attrs.
func Stride(attrs []*VertexAttributeT) int {
	n := 0
	for _, a := range attrs {
		if a != nil {
			n += a.Type.Size()
		}
	}
	return n
}

// Validate checks the relations between fields that the wire format cannot
// express: only one index width, index ranges inside the index buffer,
// indices below NumVertices and, for interleaved data, a vertex buffer of
// NumVertices * Stride bytes.
func (t *ModelInstanceDefT) Validate() error {
	if t.Indices16 != nil && t.Indices32 != nil {
		return xerrors.Errorf("both 16-bit and 32-bit indices present: %w", ErrInvalidModel)
	}

	count := len(t.Indices16) + len(t.Indices32)
	for j, r := range t.Ranges {
		if r == nil {
			continue
		}
		if r.Start > r.End || int(r.End) > count {
			return xerrors.Errorf("range %d [%d, %d) outside %d indices: %w", j, r.Start, r.End, count, ErrInvalidModel)
		}
	}

	for j, idx := range t.Indices16 {
		if uint32(idx) >= t.NumVertices {
			return xerrors.Errorf("index %d = %d, only %d vertices: %w", j, idx, t.NumVertices, ErrInvalidModel)
		}
	}
	for j, idx := range t.Indices32 {
		if idx >= t.NumVertices {
			return xerrors.Errorf("index %d = %d, only %d vertices: %w", j, idx, t.NumVertices, ErrInvalidModel)
		}
	}

	if stride := Stride(t.VertexAttributes); t.Interleaved && stride > 0 && t.VertexData != nil {
		if want := int(t.NumVertices) * stride; len(t.VertexData) != want {
			return xerrors.Errorf("%d bytes of vertex data, want %d vertices of %d bytes: %w",
				len(t.VertexData), t.NumVertices, stride, ErrInvalidModel)
		}
	}
	return nil
}
