package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blastbao/flatcodec/float16"
	"github.com/blastbao/flatcodec/memory"
)

// buildSample writes table {a: uint = 10, b: uint = 0 (default 0), c: [ubyte] = [1, 2, 3]}.
func buildSample(b *Builder) []byte {
	c := b.CreateByteVector([]byte{1, 2, 3})
	b.StartObject(3)
	b.PrependUint32Slot(0, 10, 0)
	b.PrependUint32Slot(1, 0, 0)
	b.AddOffsetField(2, c)
	b.Finish(b.EndObject())
	return b.FinishedBytes()
}

func TestBuilderSampleLayout(t *testing.T) {
	buf := buildSample(NewBuilder(0))

	want := []byte{
		16, 0, 0, 0, // root offset
		0, 0, // padding
		10, 0, 12, 0, 8, 0, 0, 0, 4, 0, // vtable
		10, 0, 0, 0, // soffset to vtable
		8, 0, 0, 0, // c
		10, 0, 0, 0, // a
		3, 0, 0, 0, 1, 2, 3, 0, // vector + padding
	}
	assert.Equal(t, want, buf)
}

func TestBuilderSampleRoundTrip(t *testing.T) {
	buf := buildSample(NewBuilder(0))

	root, err := GetRoot(buf)
	require.NoError(t, err)

	assert.NotZero(t, root.FieldOffset(0))
	assert.Equal(t, uint32(10), root.GetUint32Slot(SlotOffset(0), 0))

	assert.Zero(t, root.FieldOffset(1), "field equal to its default must be absent")
	assert.Equal(t, uint32(0), root.GetUint32Slot(SlotOffset(1), 0))

	c, err := root.VectorField(2, SizeByte)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []byte{1, 2, 3}, c.Data())
	for i, want := range []byte{1, 2, 3} {
		got, err := c.ByteAt(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBuilderDefaultCompaction(t *testing.T) {
	build := func(writeDefault bool) []byte {
		b := NewBuilder(0)
		b.StartObject(2)
		b.PrependUint32Slot(0, 10, 0)
		if writeDefault {
			b.PrependUint32Slot(1, 7, 7)
		}
		b.Finish(b.EndObject())
		return b.FinishedBytes()
	}

	without, with := build(false), build(true)
	assert.Equal(t, without, with, "writing a default value must add zero bytes")

	root, err := GetRoot(with)
	require.NoError(t, err)
	assert.Zero(t, root.FieldOffset(1))
	assert.Equal(t, uint32(7), root.GetUint32Slot(SlotOffset(1), 7))
}

func TestBuilderVtableDeduplication(t *testing.T) {
	build := func(n int) *Builder {
		b := NewBuilder(0)
		var last UOffsetT
		for i := 0; i < n; i++ {
			b.StartObject(2)
			b.PrependUint32Slot(0, uint32(i+1), 0)
			b.PrependUint32Slot(1, uint32(i+1), 0)
			last = b.EndObject()
		}
		b.Finish(last)
		return b
	}

	one, two, three := build(1), build(2), build(3)
	assert.Equal(t, 1, one.VtableCount())
	assert.Equal(t, 1, two.VtableCount())
	assert.Equal(t, 1, three.VtableCount())

	// every extra table costs only its soffset and its two uint32s
	assert.Equal(t, 24, len(one.FinishedBytes()))
	assert.Equal(t, 36, len(two.FinishedBytes()))
	assert.Equal(t, 48, len(three.FinishedBytes()))
}

// vtableOf returns the vtable size and object size recorded for the table
// at pos.
func vtableOf(buf []byte, pos UOffsetT) (vtableSize, objectSize VOffsetT) {
	vt := SOffsetT(pos) - GetSOffsetT(buf[pos:])
	return GetVOffsetT(buf[vt:]), GetVOffsetT(buf[vt+SizeVOffsetT:])
}

func TestBuilderVtableDedupComparesObjectSize(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependUint64Slot(0, 1, 0)
	wide := b.EndObject()
	b.StartObject(1)
	b.PrependUint16Slot(0, 1, 0)
	narrow := b.EndObject()
	b.Finish(narrow)

	// same field offsets, different object sizes
	assert.Equal(t, 2, b.VtableCount())

	buf := b.FinishedBytes()
	root, err := GetRoot(buf)
	require.NoError(t, err)
	vsize, osize := vtableOf(buf, root.Pos)
	assert.Equal(t, VOffsetT(6), vsize)
	assert.Equal(t, VOffsetT(6), osize)
	assert.Equal(t, uint16(1), root.GetUint16Slot(SlotOffset(0), 0))

	other := Table{Bytes: buf, Pos: UOffsetT(len(buf)) - wide}
	require.NoError(t, other.Check())
	vsize, osize = vtableOf(buf, other.Pos)
	assert.Equal(t, VOffsetT(6), vsize)
	assert.Equal(t, VOffsetT(12), osize)
	assert.Equal(t, uint64(1), other.GetUint64Slot(SlotOffset(0), 0))
}

func TestBuilderVtableDedupSkipsPaddedObject(t *testing.T) {
	b := NewBuilder(0)
	for i := 0; i < 3; i++ {
		b.StartObject(1)
		b.PrependUint32Slot(0, uint32(i+1), 0)
		b.EndObject()
	}
	// the 6-byte vtable of the first table forces 2 bytes of padding into
	// the second one, whose layout the third table then shares.
	assert.Equal(t, 2, b.VtableCount())
}

func TestBuilderDistinctLayoutsGetDistinctVtables(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(2)
	b.PrependUint32Slot(0, 1, 0)
	first := b.EndObject()
	b.StartObject(2)
	b.PrependUint32Slot(1, 1, 0)
	second := b.EndObject()
	b.Finish(second)
	assert.Equal(t, 2, b.VtableCount())

	buf := b.FinishedBytes()
	root, err := GetRoot(buf)
	require.NoError(t, err)
	assert.Zero(t, root.FieldOffset(0))
	assert.Equal(t, uint32(1), root.GetUint32Slot(SlotOffset(1), 0))

	// first is addressed from the end of the buffer
	other := Table{Bytes: buf, Pos: UOffsetT(len(buf)) - first}
	require.NoError(t, other.Check())
	assert.Equal(t, uint32(1), other.GetUint32Slot(SlotOffset(0), 0))
	assert.Zero(t, other.FieldOffset(1))
}

func TestBuilderScalarSlots(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(12)
	b.PrependBoolSlot(0, true, false)
	b.PrependByteSlot(1, 0xab, 0)
	b.PrependInt8Slot(2, -8, 0)
	b.PrependUint8Slot(3, 200, 0)
	b.PrependInt16Slot(4, -1600, 0)
	b.PrependUint16Slot(5, 60000, 0)
	b.PrependInt32Slot(6, -32_000_000, 0)
	b.PrependUint32Slot(7, 4_000_000_000, 0)
	b.PrependInt64Slot(8, -1<<40, 0)
	b.PrependUint64Slot(9, 1<<63, 0)
	b.PrependFloat32Slot(10, 1.5, 0)
	b.PrependFloat64Slot(11, -2.25, 0)
	b.Finish(b.EndObject())

	root, err := GetRoot(b.FinishedBytes())
	require.NoError(t, err)
	assert.True(t, root.GetBoolSlot(SlotOffset(0), false))
	assert.Equal(t, byte(0xab), root.GetByteSlot(SlotOffset(1), 0))
	assert.Equal(t, int8(-8), root.GetInt8Slot(SlotOffset(2), 0))
	assert.Equal(t, uint8(200), root.GetUint8Slot(SlotOffset(3), 0))
	assert.Equal(t, int16(-1600), root.GetInt16Slot(SlotOffset(4), 0))
	assert.Equal(t, uint16(60000), root.GetUint16Slot(SlotOffset(5), 0))
	assert.Equal(t, int32(-32_000_000), root.GetInt32Slot(SlotOffset(6), 0))
	assert.Equal(t, uint32(4_000_000_000), root.GetUint32Slot(SlotOffset(7), 0))
	assert.Equal(t, int64(-1<<40), root.GetInt64Slot(SlotOffset(8), 0))
	assert.Equal(t, uint64(1<<63), root.GetUint64Slot(SlotOffset(9), 0))
	assert.Equal(t, float32(1.5), root.GetFloat32Slot(SlotOffset(10), 0))
	assert.Equal(t, -2.25, root.GetFloat64Slot(SlotOffset(11), 0))
}

func TestBuilderFloat16Slot(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(2)
	b.PrependFloat16Slot(0, float16.New(0.5), float16.New(0))
	b.PrependFloat16Slot(1, float16.New(1), float16.New(1))
	b.Finish(b.EndObject())

	root, err := GetRoot(b.FinishedBytes())
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), root.GetFloat16Slot(SlotOffset(0), float16.New(0)).Float32())
	assert.Zero(t, root.FieldOffset(1))
	assert.Equal(t, float32(1), root.GetFloat16Slot(SlotOffset(1), float16.New(1)).Float32())
}

func TestBuilderInvertedBoolDefault(t *testing.T) {
	// a bool whose schema default is true: writing true stores nothing,
	// writing false stores a byte.
	build := func(v bool) Table {
		b := NewBuilder(0)
		b.StartObject(1)
		b.PrependBoolSlot(0, v, true)
		b.Finish(b.EndObject())
		root, err := GetRoot(b.FinishedBytes())
		require.NoError(t, err)
		return root
	}

	on := build(true)
	assert.Zero(t, on.FieldOffset(0))
	assert.True(t, on.GetBoolSlot(SlotOffset(0), true))

	off := build(false)
	assert.NotZero(t, off.FieldOffset(0))
	assert.False(t, off.GetBoolSlot(SlotOffset(0), true))
}

func TestBuilderStrings(t *testing.T) {
	b := NewBuilder(0)
	s1 := b.CreateString("moop")
	s2 := b.CreateByteString([]byte("hi"))
	b.StartObject(2)
	b.AddOffsetField(0, s1)
	b.AddOffsetField(1, s2)
	b.Finish(b.EndObject())

	buf := b.FinishedBytes()
	root, err := GetRoot(buf)
	require.NoError(t, err)

	got, err := root.StringField(0)
	require.NoError(t, err)
	assert.Equal(t, "moop", got)
	got, err = root.StringField(1)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)

	// null terminated on the wire
	pos := root.Indirect(root.FieldOffset(0))
	assert.Equal(t, byte(0), buf[pos+SizeUOffsetT+4])
	assert.Equal(t, "moop", root.String(root.FieldOffset(0)))
}

func TestBuilderTypedVectors(t *testing.T) {
	b := NewBuilder(0)
	u16 := b.CreateUint16Vector([]uint16{1, 2, 65535})
	u32 := b.CreateUint32Vector([]uint32{7, 1 << 31})
	f32 := b.CreateFloat32Vector([]float32{0.25, -1})
	empty := b.CreateUint32Vector(nil)
	b.StartObject(4)
	b.AddOffsetField(0, u16)
	b.AddOffsetField(1, u32)
	b.AddOffsetField(2, f32)
	b.AddOffsetField(3, empty)
	b.Finish(b.EndObject())

	root, err := GetRoot(b.FinishedBytes())
	require.NoError(t, err)

	v, err := root.VectorField(0, SizeUint16)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	last, err := v.Uint16At(2)
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), last)

	v, err = root.VectorField(1, SizeUint32)
	require.NoError(t, err)
	first, err := v.Uint32At(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), first)
	second, err := v.Uint32At(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<31), second)

	v, err = root.VectorField(2, SizeFloat32)
	require.NoError(t, err)
	f, err := v.Float32At(1)
	require.NoError(t, err)
	assert.Equal(t, float32(-1), f)

	v, err = root.VectorField(3, SizeUint32)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Data())

	// unchecked accessors agree with the checked ones
	o := UOffsetT(root.Offset(SlotOffset(0)))
	assert.Equal(t, 3, root.VectorLen(o))
	assert.Equal(t, uint16(2), root.GetUint16(root.Vector(o)+SizeUint16))
}

func TestBuilderStructSlotAndStructVector(t *testing.T) {
	createPair := func(b *Builder, x, y int32) UOffsetT {
		b.Prep(4, 8)
		b.PlaceInt32(y)
		b.PlaceInt32(x)
		return b.Offset()
	}

	b := NewBuilder(0)
	b.StartVector(8, 2, 4)
	createPair(b, 3, 4)
	createPair(b, 1, 2)
	pairs := b.EndVector(2)

	b.StartObject(2)
	b.AddOffsetField(1, pairs)
	b.PrependStructSlot(0, createPair(b, 5, 6), 0)
	b.Finish(b.EndObject())

	root, err := GetRoot(b.FinishedBytes())
	require.NoError(t, err)

	s, err := root.StructField(0, 8)
	require.NoError(t, err)
	assert.Equal(t, int32(5), s.GetInt32(s.Pos))
	assert.Equal(t, int32(6), s.GetInt32(s.Pos+4))

	v, err := root.VectorField(1, 8)
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
	for i, want := range [][2]int32{{1, 2}, {3, 4}} {
		e, err := v.StructAt(i)
		require.NoError(t, err)
		assert.Equal(t, want[0], e.GetInt32(e.Pos))
		assert.Equal(t, want[1], e.GetInt32(e.Pos+4))
	}
}

func TestBuilderFileIdentifier(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependUint32Slot(0, 42, 0)
	b.FinishWithFileIdentifier(b.EndObject(), []byte("LMDL"))

	buf := b.FinishedBytes()
	assert.True(t, BufferHasIdentifier(buf, []byte("LMDL")))
	assert.False(t, BufferHasIdentifier(buf, []byte("NOPE")))
	assert.False(t, BufferHasIdentifier(buf[:6], []byte("LMDL")))

	root, err := GetRoot(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), root.GetUint32Slot(SlotOffset(0), 0))

	assert.Panics(t, func() { NewBuilder(0).FinishWithFileIdentifier(0, []byte("toolong")) })
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder(0)
	first := append([]byte(nil), buildSample(b)...)

	b.Reset()
	assert.Equal(t, 0, b.VtableCount(), "vtable cache is scoped to one construction pass")
	second := buildSample(b)
	assert.Equal(t, first, second)
}

func TestBuilderGrowsThroughAllocator(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	b := NewBuilderWithAllocator(mem, 1)

	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i)
	}
	v := b.CreateByteVector(data)
	b.StartObject(1)
	b.AddOffsetField(0, v)
	b.Finish(b.EndObject())

	// every region replaced during growth went back to the allocator
	mem.AssertSize(t, len(b.Bytes))

	root, err := GetRoot(b.FinishedBytes())
	require.NoError(t, err)
	got, err := root.VectorField(0, SizeByte)
	require.NoError(t, err)
	assert.Equal(t, data, got.Data())
}

func TestBuilderProgrammerErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Builder)
	}{
		{"offset field to nothing", func(b *Builder) {
			b.StartObject(1)
			b.AddOffsetField(0, 0)
		}},
		{"forward offset", func(b *Builder) {
			b.StartObject(1)
			b.AddOffsetField(0, b.Offset()+64)
		}},
		{"vector element to nothing", func(b *Builder) {
			b.CreateUOffsetVector([]UOffsetT{0})
		}},
		{"too many fields", func(b *Builder) {
			b.StartObject(MaxFieldCount + 1)
		}},
		{"negative field count", func(b *Builder) {
			b.StartObject(-1)
		}},
		{"slot beyond field count", func(b *Builder) {
			b.StartObject(2)
			b.PrependUint32Slot(2, 1, 0)
		}},
		{"slot outside object", func(b *Builder) {
			b.PrependUint32Slot(0, 1, 0)
		}},
		{"nested object", func(b *Builder) {
			b.StartObject(1)
			b.StartObject(1)
		}},
		{"vector inside object", func(b *Builder) {
			b.StartObject(1)
			b.CreateByteVector([]byte{1})
		}},
		{"end object outside object", func(b *Builder) {
			b.EndObject()
		}},
		{"inline struct written elsewhere", func(b *Builder) {
			b.StartObject(1)
			b.PrependStructSlot(0, b.Offset()+8, 0)
		}},
		{"finish with no root", func(b *Builder) {
			b.Finish(0)
		}},
		{"finish with identifier and no root", func(b *Builder) {
			b.FinishWithFileIdentifier(0, []byte("LMDL"))
		}},
		{"bytes before finish", func(b *Builder) {
			b.FinishedBytes()
		}},
		{"write after finish", func(b *Builder) {
			b.StartObject(0)
			b.Finish(b.EndObject())
			b.PrependUint32(1)
		}},
		{"object after finish", func(b *Builder) {
			b.StartObject(0)
			b.Finish(b.EndObject())
			b.StartObject(1)
		}},
		{"vector after finish", func(b *Builder) {
			b.StartObject(0)
			b.Finish(b.EndObject())
			b.CreateByteVector([]byte{1})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { tt.fn(NewBuilder(0)) })
		})
	}
}

func TestBuilderMaxFieldCountFitsVtable(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(MaxFieldCount)
	b.PrependByteSlot(MaxFieldCount-1, 1, 0)
	b.Finish(b.EndObject())

	root, err := GetRoot(b.FinishedBytes())
	require.NoError(t, err)
	assert.Equal(t, byte(1), root.GetByteSlot(SlotOffset(MaxFieldCount-1), 0))
	assert.Zero(t, root.FieldOffset(MaxFieldCount-2))
}

func BenchmarkVtableDeduplication(b *testing.B) {
	prePop := 10
	builder := NewBuilder(0)

	// pre-populate some vtables:
	for i := 0; i < prePop; i++ {
		builder.StartObject(i)
		for j := 0; j < i; j++ {
			builder.PrependInt16Slot(j, int16(j), 0)
		}
		builder.EndObject()
	}

	// benchmark deduplication of a new vtable:
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lim := prePop

		builder.StartObject(lim)
		for j := 0; j < lim; j++ {
			builder.PrependInt16Slot(j, int16(j), 0)
		}
		builder.EndObject()
	}
}
