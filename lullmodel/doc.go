// Package lullmodel reads and writes ModelInstanceDef buffers: the per-LOD
// mesh payload (vertex data, index buffers, submesh ranges, materials, blend
// shapes and bounding boxes) of a Lullaby model asset.
//
// The accessors are written by hand on top of package flatbuffers and follow
// the shape of flatc's Go output, so they can be swapped for generated code:
//
//   - Each table and struct has an accessor type (ModelInstanceDef,
//     MaterialDef, VertexAttribute, ...) that wraps a position in a finished
//     buffer and reads fields in place without allocating.
//
//   - Each type has an object type with a "T" suffix (ModelInstanceDefT, ...)
//     with Pack, to encode it, and the accessor's UnPack, to decode it.
//
//   - ReadModelInstanceDef decodes a buffer of unknown origin through the
//     checked reader and never panics; the unchecked accessors expect a
//     buffer produced by a Builder.
//
// Slot numbers are part of the wire format. New fields are only appended.
package lullmodel

// 读路径的选择：
//	来自 Builder 或者已经校验过的 buffer ，直接用 GetRootAsModelInstanceDef 的零拷贝访问器；
//	来自磁盘或网络、不可信的 buffer ，用 ReadModelInstanceDef ，出错时返回 error 而不是 panic 。
