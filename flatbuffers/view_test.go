package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestGetRootMalformed(t *testing.T) {
	sample := func() []byte { return append([]byte(nil), buildSample(NewBuilder(0))...) }

	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"short", []byte{4, 0, 0}},
		{"root past end", []byte{100, 0, 0, 0}},
		{"vtable past end", []byte{4, 0, 0, 0, 0x9c, 0xff, 0xff, 0xff}},
		{"vtable before start", []byte{4, 0, 0, 0, 100, 0, 0, 0}},
		{"odd vtable size", func() []byte {
			b := sample()
			b[6] = 3
			return b
		}()},
		{"vtable size below metadata", func() []byte {
			b := sample()
			b[6] = 2
			return b
		}()},
		{"object overruns buffer", func() []byte {
			b := sample()
			b[8] = 200
			return b
		}()},
		{"truncated", sample()[:18]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetRoot(tt.buf)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedBuffer)
		})
	}
}

func TestCheckedFieldsMalformed(t *testing.T) {
	t.Run("vector count overruns buffer", func(t *testing.T) {
		buf := append([]byte(nil), buildSample(NewBuilder(0))...)
		buf[28] = 0xe8
		buf[29] = 0x03

		root, err := GetRoot(buf)
		require.NoError(t, err)
		_, err = root.VectorField(2, SizeByte)
		assert.ErrorIs(t, err, ErrMalformedBuffer)
	})

	t.Run("reference points outside buffer", func(t *testing.T) {
		buf := append([]byte(nil), buildSample(NewBuilder(0))...)
		buf[20] = 200

		root, err := GetRoot(buf)
		require.NoError(t, err)
		_, err = root.VectorField(2, SizeByte)
		assert.ErrorIs(t, err, ErrMalformedBuffer)
		_, err = root.StringField(2)
		assert.ErrorIs(t, err, ErrMalformedBuffer)
		_, err = root.TableField(2)
		assert.ErrorIs(t, err, ErrMalformedBuffer)
	})

	t.Run("struct wider than buffer", func(t *testing.T) {
		root, err := GetRoot(buildSample(NewBuilder(0)))
		require.NoError(t, err)
		_, err = root.StructField(0, 64)
		assert.ErrorIs(t, err, ErrMalformedBuffer)
	})
}

func TestSchemaEvolution(t *testing.T) {
	// written by a schema that knows one field
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependUint32Slot(0, 10, 0)
	b.Finish(b.EndObject())
	old := b.FinishedBytes()

	root, err := GetRoot(old)
	require.NoError(t, err)

	// read by a schema that knows five
	assert.Equal(t, uint32(10), root.GetUint32Slot(SlotOffset(0), 0))
	assert.Equal(t, uint32(99), root.GetUint32Slot(SlotOffset(1), 99))
	assert.True(t, root.GetBoolSlot(SlotOffset(2), true))
	assert.Zero(t, root.FieldOffset(4))

	_, err = root.VectorField(3, SizeUint32)
	assert.ErrorIs(t, err, ErrFieldAbsent)
	_, err = root.StringField(4)
	assert.ErrorIs(t, err, ErrFieldAbsent)
	_, err = root.TableField(4)
	assert.ErrorIs(t, err, ErrFieldAbsent)
	_, err = root.StructField(4, 8)
	assert.ErrorIs(t, err, ErrFieldAbsent)

	pos, err := root.FieldPos(4, SizeUint32)
	assert.NoError(t, err)
	assert.Zero(t, pos)

	// and a newer buffer read by the old schema ignores the extra fields
	root, err = GetRoot(buildSample(NewBuilder(0)))
	require.NoError(t, err)
	assert.Equal(t, uint32(10), root.GetUint32Slot(SlotOffset(0), 0))
}

func TestFieldOffsetOutOfRangeSlots(t *testing.T) {
	root, err := GetRoot(buildSample(NewBuilder(0)))
	require.NoError(t, err)

	assert.Zero(t, root.FieldOffset(-1))
	assert.Zero(t, root.FieldOffset(MaxFieldCount))
	assert.Zero(t, root.FieldOffset(1000))
}

func TestVectorBounds(t *testing.T) {
	root, err := GetRoot(buildSample(NewBuilder(0)))
	require.NoError(t, err)

	v, err := root.VectorField(2, SizeByte)
	require.NoError(t, err)

	_, err = v.At(v.Len())
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.ByteAt(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.TableAt(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.StringAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.StructAt(10)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Panics(t, func() { _, _ = root.VectorField(2, 0) })
}

// buildMonsters writes a root whose slot 0 is a vector of tables
// {hp: ushort = 100, name: string} and slot 1 a vector of strings.
func buildMonsters(t *testing.T) []byte {
	t.Helper()

	b := NewBuilder(0)
	names := []string{"orc", "troll", "imp"}
	hps := []uint16{100, 300, 5}

	monsters := make([]UOffsetT, len(names))
	for i, name := range names {
		n := b.CreateString(name)
		b.StartObject(2)
		b.AddOffsetField(1, n)
		b.PrependUint16Slot(0, hps[i], 100)
		monsters[i] = b.EndObject()
	}
	list := b.CreateUOffsetVector(monsters)

	tags := make([]UOffsetT, 2)
	tags[0] = b.CreateString("red")
	tags[1] = b.CreateString("blue")
	tagList := b.CreateUOffsetVector(tags)

	b.StartObject(2)
	b.AddOffsetField(1, tagList)
	b.AddOffsetField(0, list)
	b.Finish(b.EndObject())

	// three monsters share a single layout; the default hp of the first
	// one gives it a second, shorter vtable.
	assert.Equal(t, 3, b.VtableCount())
	return b.FinishedBytes()
}

func TestVectorOfTables(t *testing.T) {
	root, err := GetRoot(buildMonsters(t))
	require.NoError(t, err)

	list, err := root.VectorField(0, SizeUOffsetT)
	require.NoError(t, err)
	require.Equal(t, 3, list.Len())

	want := []struct {
		name string
		hp   uint16
	}{{"orc", 100}, {"troll", 300}, {"imp", 5}}
	for i, w := range want {
		m, err := list.TableAt(i)
		require.NoError(t, err)
		assert.Equal(t, w.hp, m.GetUint16Slot(SlotOffset(0), 100))
		name, err := m.StringField(1)
		require.NoError(t, err)
		assert.Equal(t, w.name, name)
	}

	first, err := list.TableAt(0)
	require.NoError(t, err)
	assert.Zero(t, first.FieldOffset(0), "default hp is not stored")

	tags, err := root.VectorField(1, SizeUOffsetT)
	require.NoError(t, err)
	for i, w := range []string{"red", "blue"} {
		s, err := tags.StringAt(i)
		require.NoError(t, err)
		assert.Equal(t, w, s)
	}
}

func TestMutateInPlace(t *testing.T) {
	buf := append([]byte(nil), buildSample(NewBuilder(0))...)
	root, err := GetRoot(buf)
	require.NoError(t, err)

	assert.True(t, root.MutateUint32Slot(SlotOffset(0), 11))
	assert.False(t, root.MutateUint32Slot(SlotOffset(1), 5), "absent field has no storage")

	again, err := GetRoot(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(11), again.GetUint32Slot(SlotOffset(0), 0))
	assert.Equal(t, uint32(0), again.GetUint32Slot(SlotOffset(1), 0))
}

func TestConcurrentReaders(t *testing.T) {
	buf := buildMonsters(t)

	var g errgroup.Group
	for r := 0; r < 8; r++ {
		g.Go(func() error {
			for n := 0; n < 100; n++ {
				root, err := GetRoot(buf)
				if err != nil {
					return err
				}
				list, err := root.VectorField(0, SizeUOffsetT)
				if err != nil {
					return err
				}
				for i := 0; i < list.Len(); i++ {
					m, err := list.TableAt(i)
					if err != nil {
						return err
					}
					if _, err := m.StringField(1); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
