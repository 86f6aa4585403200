package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	flatbuffers "github.com/blastbao/flatcodec/flatbuffers"
	"github.com/blastbao/flatcodec/lullmodel"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo OUT",
		Short: "Write a small textured quad model buffer to OUT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := lullmodel.BuildModelInstanceDef(demoModel())
			if err := os.WriteFile(args[0], buf, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bytes\n", args[0], len(buf))
			return nil
		},
	}
}

// demoModel is a unit quad in the XY plane facing +Z, one submesh, one
// material.
func demoModel() *lullmodel.ModelInstanceDefT {
	// x, y, z, nx, ny, nz, u, v
	vertices := [][8]float32{
		{0, 0, 0, 0, 0, 1, 0, 0},
		{1, 0, 0, 0, 0, 1, 1, 0},
		{1, 1, 0, 0, 0, 1, 1, 1},
		{0, 1, 0, 0, 0, 1, 0, 1},
	}

	m := lullmodel.NewModelInstanceDefT()
	m.VertexAttributes = []*lullmodel.VertexAttributeT{
		{Usage: lullmodel.VertexAttributeUsagePosition, Type: lullmodel.VertexAttributeTypeVec3f},
		{Usage: lullmodel.VertexAttributeUsageNormal, Type: lullmodel.VertexAttributeTypeVec3f},
		{Usage: lullmodel.VertexAttributeUsageTexCoord, Type: lullmodel.VertexAttributeTypeVec2f},
	}
	stride := lullmodel.Stride(m.VertexAttributes)

	m.NumVertices = uint32(len(vertices))
	m.VertexData = make([]byte, len(vertices)*stride)
	for i, v := range vertices {
		for j, f := range v {
			flatbuffers.WriteFloat32(m.VertexData[i*stride+j*flatbuffers.SizeFloat32:], f)
		}
	}
	m.Indices16 = []uint16{0, 1, 2, 2, 3, 0}
	m.Ranges = []*lullmodel.ModelIndexRangeT{{Start: 0, End: 6}}
	m.Materials = []*lullmodel.MaterialDefT{{Name: "quad", Textures: []string{"albedo.png"}}}
	m.Aabbs = []*lullmodel.SubmeshAabbT{{
		MinPosition: &lullmodel.Vec3T{X: 0, Y: 0, Z: 0},
		MaxPosition: &lullmodel.Vec3T{X: 1, Y: 1, Z: 0},
	}}
	return m
}
