package flatbuffers

// 以一个具体的 table 为例说明字节布局：
//
//	table Sample {
//	 a: uint;    // slot 0 ，默认值 0
//	 b: uint;    // slot 1 ，默认值 0
//	 c: [ubyte]; // slot 2
//	}
//
// 写入 a = 10 ， b = 0 ， c = [1, 2, 3] ：
//
//	b := flatbuffers.NewBuilder(0)
//	c := b.CreateByteVector([]byte{1, 2, 3})
//	b.StartObject(3)
//	b.PrependUint32Slot(0, 10, 0)
//	b.PrependUint32Slot(1, 0, 0) // 等于默认值，不写任何字节
//	b.AddOffsetField(2, c)
//	b.Finish(b.EndObject())
//
// 得到的 buffer 共 36 字节 (地址从小到大)：
//
//	0x00: 10 00 00 00     根偏移，table 位于 0x10
//	0x04: 00 00           对齐填充
//	0x06: 0a 00           vtable 大小 10 = 2 个 meta + 3 个 slot ，每项 2B
//	0x08: 0c 00           对象大小 12 = soffset + c 的引用 + a
//	0x0a: 08 00           slot 0 (a) 在对象内的偏移 8
//	0x0c: 00 00           slot 1 (b) 缺省
//	0x0e: 04 00           slot 2 (c) 在对象内的偏移 4
//	0x10: 0a 00 00 00     table 开头的 soffset ，0x10 - 0x0a = 0x06 即 vtable 位置
//	0x14: 08 00 00 00     c 的相对偏移，0x14 + 8 = 0x1c
//	0x18: 0a 00 00 00     a = 10
//	0x1c: 03 00 00 00     vector 元素个数 3
//	0x20: 01 02 03 00     vector 数据 + 填充
//
// 字段访问：
//	FieldOffset(0)：读 vtable 0x0a 处的 8 ，返回 0x10 + 8 = 0x18 。
//	FieldOffset(1)：vtable 中记录为 0 ，返回 0 ，GetUint32Slot 返回调用方给的默认值。
//	FieldOffset(3)：3 号 slot 超出了 vtable 大小 (旧 schema 写的 buffer)，同样返回 0 。
//	c 需要两跳：字段位置 0x14 加上其中存储的 8 得到 vector 0x1c ，前 4B 为个数，之后为元素。
//
// 末尾缺省的 slot 会在 EndObject 时被裁掉：如果 c 也缺省，vtable 只会记录 slot 0 。
