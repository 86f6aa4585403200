package flatbuffers

// FlatBuffer is the interface that represents a flatbuffer.
type FlatBuffer interface {
	Table() Table
	Init(buf []byte, i UOffsetT)
}

// GetRootAs is a generic helper to initialize a FlatBuffer with the provided buffer bytes and its data offset.
func GetRootAs(buf []byte, offset UOffsetT, fb FlatBuffer) {
	n := GetUOffsetT(buf[offset:])
	fb.Init(buf, n+offset)
}

// BufferHasIdentifier reports whether buf was finished with
// FinishWithFileIdentifier(root, fid).
//
// 文件标识紧跟在 4B 的根偏移之后。
func BufferHasIdentifier(buf []byte, fid []byte) bool {
	if len(fid) != fileIdentifierLength || len(buf) < SizeUOffsetT+fileIdentifierLength {
		return false
	}
	return string(buf[SizeUOffsetT:SizeUOffsetT+fileIdentifierLength]) == string(fid)
}
