package flatbuffers

import (
	"math"
	"unsafe"
)

const (
	// See http://golang.org/ref/spec#Numeric_types

	// SizeUint8 is the byte size of a uint8.
	SizeUint8 = 1
	// SizeUint16 is the byte size of a uint16.
	SizeUint16 = 2
	// SizeUint32 is the byte size of a uint32.
	SizeUint32 = 4
	// SizeUint64 is the byte size of a uint64.
	SizeUint64 = 8

	// SizeInt8 is the byte size of a int8.
	SizeInt8 = 1
	// SizeInt16 is the byte size of a int16.
	SizeInt16 = 2
	// SizeInt32 is the byte size of a int32.
	SizeInt32 = 4
	// SizeInt64 is the byte size of a int64.
	SizeInt64 = 8

	// SizeFloat16 is the byte size of a half precision float.
	SizeFloat16 = 2
	// SizeFloat32 is the byte size of a float32.
	SizeFloat32 = 4
	// SizeFloat64 is the byte size of a float64.
	SizeFloat64 = 8

	// SizeByte is the byte size of a byte.
	// The `byte` type is aliased (by Go definition) to uint8.
	SizeByte = 1

	// SizeBool is the byte size of a bool.
	// The `bool` type is aliased (by flatbuffers convention) to uint8.
	SizeBool = 1

	// SizeSOffsetT is the byte size of an SOffsetT.
	// The `SOffsetT` type is aliased (by flatbuffers convention) to int32.
	SizeSOffsetT = 4
	// SizeUOffsetT is the byte size of an UOffsetT.
	// The `UOffsetT` type is aliased (by flatbuffers convention) to uint32.
	SizeUOffsetT = 4
	// SizeVOffsetT is the byte size of an VOffsetT.
	// The `VOffsetT` type is aliased (by flatbuffers convention) to uint16.
	SizeVOffsetT = 2
)

// VtableMetadataFields is the count of metadata fields in each vtable:
// the vtable byte size and the object byte size.
const VtableMetadataFields = 2

// MaxFieldCount is the largest field count a single table may declare. Every
// slot costs one VOffsetT in the vtable and the vtable size itself must fit a
// VOffsetT.
const MaxFieldCount = math.MaxUint16/SizeVOffsetT - VtableMetadataFields

// SlotOffset converts a field slot index into the byte offset of its entry
// inside a vtable, the form generated accessors pass to Table.Offset.
//
// 第 0 个 field 对应 vtable 偏移 4 (跳过 2 个 meta field)，之后每个 field 占 2B 。
func SlotOffset(slot int) VOffsetT {
	return VOffsetT((VtableMetadataFields + slot) * SizeVOffsetT)
}

// byteSliceToString converts a []byte to string without a heap allocation.
func byteSliceToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}
