// Package asset stores finished buffers. Each buffer is wrapped in a small
// frame (magic, version, compression, length and CRC32-C) and optionally
// compressed with lz4, zstd or snappy before it reaches a Store backend: a
// map in memory, a directory of files or a bbolt database.
//
// The frame never changes the buffer itself, so a decoded asset can be read
// in place with package flatbuffers exactly as it was built.
package asset
