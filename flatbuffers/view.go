package flatbuffers

import "golang.org/x/xerrors"

// 生成代码走的是 Table 上不做边界检查的快路径 (GetUint32Slot 等)，
// 前提是 buffer 来自可信的 Builder 。这里的 checked 读取路径面向来源不可信的 buffer ：
// 每一次间接寻址之前都先确认目标区域落在 buffer 之内，越界时返回 ErrMalformedBuffer
// 而不是 panic 或读出垃圾数据。

// GetRoot reads the root offset at the start of buf and returns the table it
// points at, after checking that the table header and its vtable lie inside
// buf.
func GetRoot(buf []byte) (Table, error) {
	if len(buf) < SizeUOffsetT {
		return Table{}, malformed("buffer of %d bytes has no root offset", len(buf))
	}
	t := Table{Bytes: buf, Pos: GetUOffsetT(buf)}
	if err := t.Check(); err != nil {
		return Table{}, xerrors.Errorf("root table: %w", err)
	}
	return t, nil
}

// within reports whether [pos, pos+size) lies inside the buffer.
func (t *Table) within(pos UOffsetT, size uint64) bool {
	return uint64(pos)+size <= uint64(len(t.Bytes))
}

// Check verifies that the object header at Pos, the vtable it points to and
// the object body the vtable describes all lie inside Bytes.
func (t *Table) Check() error {
	if !t.within(t.Pos, SizeSOffsetT) {
		return malformed("table at %d outside buffer of %d bytes", t.Pos, len(t.Bytes))
	}
	vtable := int64(t.Pos) - int64(t.GetSOffsetT(t.Pos))
	if vtable < 0 || vtable+VtableMetadataFields*SizeVOffsetT > int64(len(t.Bytes)) {
		return malformed("vtable at %d for table at %d outside buffer", vtable, t.Pos)
	}
	vtSize := t.GetVOffsetT(UOffsetT(vtable))
	if vtSize < VtableMetadataFields*SizeVOffsetT || vtSize%SizeVOffsetT != 0 {
		return malformed("vtable at %d has invalid size %d", vtable, vtSize)
	}
	if vtable+int64(vtSize) > int64(len(t.Bytes)) {
		return malformed("vtable at %d of %d bytes overruns buffer", vtable, vtSize)
	}
	objSize := t.GetVOffsetT(UOffsetT(vtable) + SizeVOffsetT)
	if objSize < SizeSOffsetT || !t.within(t.Pos, uint64(objSize)) {
		return malformed("table at %d of %d bytes overruns buffer", t.Pos, objSize)
	}
	return nil
}

// FieldPos resolves field `slot` like FieldOffset and additionally checks
// that `size` bytes are readable there. An absent field yields (0, nil).
func (t *Table) FieldPos(slot int, size int) (UOffsetT, error) {
	pos := t.FieldOffset(slot)
	if pos == 0 {
		return 0, nil
	}
	if !t.within(pos, uint64(size)) {
		return 0, malformed("field %d at %d overruns buffer", slot, pos)
	}
	return pos, nil
}

// indirectField follows the self-relative offset stored in field `slot`.
func (t *Table) indirectField(slot int) (UOffsetT, error) {
	pos, err := t.FieldPos(slot, SizeUOffsetT)
	if err != nil {
		return 0, err
	}
	if pos == 0 {
		return 0, xerrors.Errorf("field %d: %w", slot, ErrFieldAbsent)
	}
	target := uint64(pos) + uint64(t.GetUOffsetT(pos))
	if target >= uint64(len(t.Bytes)) {
		return 0, malformed("field %d references %d outside buffer", slot, target)
	}
	return UOffsetT(target), nil
}

// VectorField returns the vector stored in field `slot` whose elements are
// elemSize bytes wide.
func (t *Table) VectorField(slot int, elemSize int) (Vector, error) {
	pos, err := t.indirectField(slot)
	if err != nil {
		return Vector{}, err
	}
	return newVector(t.Bytes, pos, elemSize)
}

// TableField returns the table referenced by field `slot`.
func (t *Table) TableField(slot int) (Table, error) {
	pos, err := t.indirectField(slot)
	if err != nil {
		return Table{}, err
	}
	child := Table{Bytes: t.Bytes, Pos: pos}
	if err := child.Check(); err != nil {
		return Table{}, xerrors.Errorf("field %d: %w", slot, err)
	}
	return child, nil
}

// StructField returns the inline struct of `size` bytes stored in field
// `slot`.
func (t *Table) StructField(slot int, size int) (Struct, error) {
	pos, err := t.FieldPos(slot, size)
	if err != nil {
		return Struct{}, err
	}
	if pos == 0 {
		return Struct{}, xerrors.Errorf("field %d: %w", slot, ErrFieldAbsent)
	}
	return Struct{Table{Bytes: t.Bytes, Pos: pos}}, nil
}

// StringField returns the string stored in field `slot`. The returned string
// aliases the buffer.
func (t *Table) StringField(slot int) (string, error) {
	v, err := t.VectorField(slot, SizeByte)
	if err != nil {
		return "", err
	}
	return byteSliceToString(v.Data()), nil
}

// Vector is a checked view of a length-prefixed vector: Start is the
// position of element 0, Count the element count read from the prefix.
type Vector struct {
	Bytes    []byte
	Start    UOffsetT
	Count    int
	ElemSize int
}

// newVector reads the count prefix at pos and checks the elements fit.
func newVector(buf []byte, pos UOffsetT, elemSize int) (Vector, error) {
	if elemSize <= 0 {
		panic("flatbuffers: vector element size must be positive")
	}
	if uint64(pos)+SizeUOffsetT > uint64(len(buf)) {
		return Vector{}, malformed("vector at %d outside buffer", pos)
	}
	count := GetUOffsetT(buf[pos:])
	start := pos + SizeUOffsetT
	if uint64(start)+uint64(count)*uint64(elemSize) > uint64(len(buf)) {
		return Vector{}, malformed("vector at %d with %d elements overruns buffer", pos, count)
	}
	return Vector{Bytes: buf, Start: start, Count: int(count), ElemSize: elemSize}, nil
}

// Len returns the element count.
func (v Vector) Len() int { return v.Count }

// At returns the position of element i.
func (v Vector) At(i int) (UOffsetT, error) {
	if i < 0 || i >= v.Count {
		return 0, xerrors.Errorf("element %d of %d: %w", i, v.Count, ErrIndexOutOfRange)
	}
	return v.Start + UOffsetT(i*v.ElemSize), nil
}

// Data returns the raw element bytes.
func (v Vector) Data() []byte {
	return v.Bytes[v.Start : v.Start+UOffsetT(v.Count*v.ElemSize)]
}

// indirect follows the self-relative offset stored in element i.
func (v Vector) indirect(i int) (UOffsetT, error) {
	pos, err := v.At(i)
	if err != nil {
		return 0, err
	}
	if uint64(pos)+SizeUOffsetT > uint64(len(v.Bytes)) {
		return 0, malformed("element %d at %d overruns buffer", i, pos)
	}
	target := uint64(pos) + uint64(GetUOffsetT(v.Bytes[pos:]))
	if target >= uint64(len(v.Bytes)) {
		return 0, malformed("element %d references %d outside buffer", i, target)
	}
	return UOffsetT(target), nil
}

// TableAt resolves element i, a reference to a table, and checks the table.
func (v Vector) TableAt(i int) (Table, error) {
	target, err := v.indirect(i)
	if err != nil {
		return Table{}, err
	}
	t := Table{Bytes: v.Bytes, Pos: target}
	if err := t.Check(); err != nil {
		return Table{}, xerrors.Errorf("element %d: %w", i, err)
	}
	return t, nil
}

// StringAt resolves element i, a reference to a string.
func (v Vector) StringAt(i int) (string, error) {
	target, err := v.indirect(i)
	if err != nil {
		return "", err
	}
	s, err := newVector(v.Bytes, target, SizeByte)
	if err != nil {
		return "", xerrors.Errorf("element %d: %w", i, err)
	}
	return byteSliceToString(s.Data()), nil
}

// StructAt returns element i as an inline struct.
func (v Vector) StructAt(i int) (Struct, error) {
	pos, err := v.At(i)
	if err != nil {
		return Struct{}, err
	}
	return Struct{Table{Bytes: v.Bytes, Pos: pos}}, nil
}

// ByteAt returns element i of a byte vector.
func (v Vector) ByteAt(i int) (byte, error) {
	pos, err := v.At(i)
	if err != nil {
		return 0, err
	}
	return GetByte(v.Bytes[pos:]), nil
}

// Uint16At returns element i of a ushort vector.
func (v Vector) Uint16At(i int) (uint16, error) {
	pos, err := v.At(i)
	if err != nil {
		return 0, err
	}
	return GetUint16(v.Bytes[pos:]), nil
}

// Uint32At returns element i of a uint vector.
func (v Vector) Uint32At(i int) (uint32, error) {
	pos, err := v.At(i)
	if err != nil {
		return 0, err
	}
	return GetUint32(v.Bytes[pos:]), nil
}

// Float32At returns element i of a float vector.
func (v Vector) Float32At(i int) (float32, error) {
	pos, err := v.At(i)
	if err != nil {
		return 0, err
	}
	return GetFloat32(v.Bytes[pos:]), nil
}
