package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blastbao/flatcodec/asset"
	flatbuffers "github.com/blastbao/flatcodec/flatbuffers"
	"github.com/blastbao/flatcodec/lullmodel"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func writeDemo(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "quad.bin")
	require.NoError(t, os.WriteFile(path, lullmodel.BuildModelInstanceDef(demoModel()), 0o644))
	return path
}

func TestDemoModelValidates(t *testing.T) {
	m := demoModel()
	require.NoError(t, m.Validate())
	assert.Equal(t, 32, lullmodel.Stride(m.VertexAttributes))
	assert.Len(t, m.VertexData, 4*32)
}

func TestSummarize(t *testing.T) {
	raw := lullmodel.BuildModelInstanceDef(demoModel())

	s, err := summarize("quad", raw)
	require.NoError(t, err)
	assert.Equal(t, "", s.Compression)
	assert.Equal(t, uint32(4), s.Vertices)
	assert.Equal(t, 32, s.Stride)
	assert.Equal(t, 128, s.VertexBytes)
	assert.True(t, s.Interleaved)
	assert.Equal(t, 6, s.Indices)
	assert.Equal(t, 16, s.IndexWidth)
	assert.Equal(t, 1, s.Submeshes)
	assert.Equal(t, []string{"Position:Vec3f", "Normal:Vec3f", "TexCoord:Vec2f"}, s.Attributes)
	assert.Equal(t, []string{"quad"}, s.Materials)
	assert.Empty(t, s.Problem)

	frame, err := asset.Encode(raw, asset.CompressionSnappy)
	require.NoError(t, err)
	framed, err := summarize("quad.fltc", frame)
	require.NoError(t, err)
	assert.Equal(t, len(frame), framed.Size)
	assert.Equal(t, framed.Vertices, s.Vertices)
	assert.Contains(t, []string{"snappy", "none"}, framed.Compression)

	_, err = summarize("junk", []byte{1, 2, 3})
	assert.ErrorIs(t, err, flatbuffers.ErrMalformedBuffer)
}

func TestSummarizeReportsProblem(t *testing.T) {
	m := demoModel()
	m.Indices16 = []uint16{0, 1, 9}
	s, err := summarize("bad", lullmodel.BuildModelInstanceDef(m))
	require.NoError(t, err)
	assert.NotEmpty(t, s.Problem)
}

func TestInspectFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, n := range []uint32{1, 2, 3, 4, 5} {
		m := lullmodel.NewModelInstanceDefT()
		m.NumVertices = n
		path := filepath.Join(dir, strings.Repeat("m", i+1))
		require.NoError(t, os.WriteFile(path, lullmodel.BuildModelInstanceDef(m), 0o644))
		paths = append(paths, path)
	}

	sums, err := inspectFiles(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, sums, len(paths))
	for i, s := range sums {
		assert.Equal(t, paths[i], s.File)
		assert.Equal(t, uint32(i+1), s.Vertices)
	}

	_, err = inspectFiles(context.Background(), append(paths, filepath.Join(dir, "missing")), 2)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInspectJSON(t *testing.T) {
	path := writeDemo(t, t.TempDir())

	out, err := run(t, "inspect", "--json", path)
	require.NoError(t, err)

	var sums []summary
	require.NoError(t, json.Unmarshal([]byte(out), &sums))
	require.Len(t, sums, 1)
	assert.Equal(t, path, sums[0].File)
	assert.Equal(t, uint32(4), sums[0].Vertices)
}

func TestInspectText(t *testing.T) {
	path := writeDemo(t, t.TempDir())

	out, err := run(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "vertices:    4 x 32 bytes")
	assert.Contains(t, out, "indices:     6 (16-bit)")
}

func TestPackUnpack(t *testing.T) {
	dir := t.TempDir()
	in := writeDemo(t, dir)
	framed := filepath.Join(dir, "quad.fltc")
	back := filepath.Join(dir, "quad.out")

	_, err := run(t, "--compression", "lz4", "pack", in, framed)
	require.NoError(t, err)
	frame, err := os.ReadFile(framed)
	require.NoError(t, err)
	assert.True(t, asset.IsFramed(frame))

	_, err = run(t, "unpack", framed, back)
	require.NoError(t, err)
	want, err := os.ReadFile(in)
	require.NoError(t, err)
	got, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// a framed file is not a model buffer
	_, err = run(t, "pack", framed, filepath.Join(dir, "twice"))
	assert.Error(t, err)

	_, err = run(t, "--compression", "brotli", "pack", in, framed)
	assert.ErrorIs(t, err, asset.ErrUnknownCompression)
}

func TestStoreCommands(t *testing.T) {
	for _, backend := range []string{"local", "bolt"} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			in := writeDemo(t, dir)
			var where []string
			if backend == "bolt" {
				where = []string{"--bolt", filepath.Join(dir, "assets.db")}
			} else {
				where = []string{"--store-dir", filepath.Join(dir, "assets")}
			}
			store := func(args ...string) (string, error) {
				return run(t, append(append([]string{}, where...), append([]string{"store"}, args...)...)...)
			}

			_, err := store("put", "quad", in)
			require.NoError(t, err)
			_, err = store("put", "quad-lod1", in)
			require.NoError(t, err)
			_, err = store("put", "tri", in)
			require.NoError(t, err)

			out, err := store("list", "quad")
			require.NoError(t, err)
			assert.Equal(t, "quad\nquad-lod1\n", out)

			got := filepath.Join(dir, "got.bin")
			_, err = store("get", "quad", got)
			require.NoError(t, err)
			want, err := os.ReadFile(in)
			require.NoError(t, err)
			data, err := os.ReadFile(got)
			require.NoError(t, err)
			assert.Equal(t, want, data)

			_, err = store("get", "nope", got)
			assert.ErrorIs(t, err, asset.ErrNotFound)
		})
	}
}

func TestDemoCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.bin")
	out, err := run(t, "demo", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	m, err := lullmodel.ReadModelInstanceDef(buf)
	require.NoError(t, err)
	assert.Equal(t, demoModel(), m)
}
