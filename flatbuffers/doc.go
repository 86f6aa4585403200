// Package flatbuffers provides facilities to read and write flatbuffers
// objects without a schema compiler: the Builder appends tables, structs and
// vectors back to front into one little-endian buffer, and Table, Struct and
// Vector read a finished buffer in place.
//
// The package is schema agnostic. Fields are addressed by numeric slot and
// every default value is supplied by the caller, so a typed accessor layer
// (generated or hand written) decides what each slot means.
package flatbuffers

// 简单来说 FlatBuffers 就是把对象数据保存在一个一维的 []byte 中，每个对象被分为两部分：
// 	元数据部分：负责存放索引 (vtable)。
// 	真实数据部分：存放实际的值。
//
// FlatBuffers 对序列化基本使用原则：
//	小端模式。各种基本数据的存储都按照小端模式进行，和大部分处理器的存储模式一致。
//	写入数据方向和读取数据方向不同。
//
// Builder 向 buffer 写入数据的顺序是从尾部向头部填充，自己维护 head 来指明有效数据的位置；
// 子对象总是先于父对象写入，所以父对象中保存的引用只会指向已经写好的数据。
// 读取的时候则按照正常的顺序从根偏移开始，最先读到的就是整个 buffer 的概要信息。
//
// table 是 FlatBuffers 的基石，为了解决数据结构变更的问题，table 通过 vtable 间接访问字段。
// 每个 table 都带有一个 vtable（可以在具有相同布局的多个 table 之间共享）。
// vtable 还可能表明该字段不存在（buffer 是旧版本 schema 写的，或者字段值等于默认值），
// 在这种情况下会返回默认值。因此 slot 编号只能追加，不能删除或重排。
//
// 成员如果是标量或者 struct ，那么值就直接存储在 table 的数据区中；
// 如果成员是 vector 、string 或 table ，数据区中存储的只是该成员相对于存储位置的偏移，
// 要获得真正的数据还要再进行一次相对寻址。
