package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/blastbao/flatcodec/asset"
	"github.com/blastbao/flatcodec/lullmodel"
)

// summary is what inspect reports for one file.
type summary struct {
	File        string   `json:"file"`
	Size        int      `json:"size"`
	Compression string   `json:"compression,omitempty"`
	Vertices    uint32   `json:"vertices"`
	VertexBytes int      `json:"vertex_bytes"`
	Stride      int      `json:"stride"`
	Interleaved bool     `json:"interleaved"`
	Indices     int      `json:"indices"`
	IndexWidth  int      `json:"index_width,omitempty"`
	Submeshes   int      `json:"submeshes"`
	Attributes  []string `json:"attributes,omitempty"`
	Materials   []string `json:"materials,omitempty"`
	BlendShapes int      `json:"blend_shapes"`
	Problem     string   `json:"problem,omitempty"`
}

func newInspectCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Decode model buffers (framed or raw) and print a summary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sums, err := inspectFiles(cmd.Context(), args, flags.workers)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", " ")
				return enc.Encode(sums)
			}
			for _, s := range sums {
				printSummary(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

// inspectFiles summarizes paths with at most `workers` files in flight. The
// result keeps the order of paths; the first failure cancels the rest.
func inspectFiles(ctx context.Context, paths []string, workers int) ([]*summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}
	sums := make([]*summary, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			s, err := summarize(path, data)
			if err != nil {
				return xerrors.Errorf("%s: %w", path, err)
			}
			asset.Logger().Debug("inspected", zap.String("file", path), zap.Int("size", len(data)))
			sums[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sums, nil
}

// summarize decodes data, a framed asset or a bare finished buffer, through
// the checked reader.
func summarize(name string, data []byte) (*summary, error) {
	s := &summary{File: name, Size: len(data)}

	buf := data
	if asset.IsFramed(data) {
		h, err := asset.ReadHeader(data)
		if err != nil {
			return nil, err
		}
		if buf, err = asset.Decode(data); err != nil {
			return nil, err
		}
		s.Compression = h.Compression.String()
	}

	m, err := lullmodel.ReadModelInstanceDef(buf)
	if err != nil {
		return nil, err
	}

	s.Vertices = m.NumVertices
	s.VertexBytes = len(m.VertexData)
	s.Stride = lullmodel.Stride(m.VertexAttributes)
	s.Interleaved = m.Interleaved
	switch {
	case m.Indices32 != nil:
		s.Indices, s.IndexWidth = len(m.Indices32), 32
	case m.Indices16 != nil:
		s.Indices, s.IndexWidth = len(m.Indices16), 16
	}
	s.Submeshes = len(m.Ranges)
	for _, a := range m.VertexAttributes {
		s.Attributes = append(s.Attributes, a.Usage.String()+":"+a.Type.String())
	}
	for _, mat := range m.Materials {
		s.Materials = append(s.Materials, mat.Name)
	}
	s.BlendShapes = len(m.BlendShapes)
	if err := m.Validate(); err != nil {
		s.Problem = err.Error()
	}
	return s, nil
}

func printSummary(w io.Writer, s *summary) {
	fmt.Fprintf(w, "%s: %d bytes", s.File, s.Size)
	if s.Compression != "" {
		fmt.Fprintf(w, " (framed, %s)", s.Compression)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  vertices:    %d x %d bytes (%d total, interleaved=%t)\n", s.Vertices, s.Stride, s.VertexBytes, s.Interleaved)
	fmt.Fprintf(w, "  indices:     %d (%d-bit)\n", s.Indices, s.IndexWidth)
	fmt.Fprintf(w, "  submeshes:   %d\n", s.Submeshes)
	fmt.Fprintf(w, "  attributes:  %v\n", s.Attributes)
	fmt.Fprintf(w, "  materials:   %v\n", s.Materials)
	fmt.Fprintf(w, "  blendshapes: %d\n", s.BlendShapes)
	if s.Problem != "" {
		fmt.Fprintf(w, "  problem:     %s\n", s.Problem)
	}
}
