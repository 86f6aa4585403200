package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/blastbao/flatcodec/asset"
	"github.com/blastbao/flatcodec/lullmodel"
)

func newPackCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pack IN OUT",
		Short: "Wrap a finished model buffer in an asset frame",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := asset.ParseCompression(flags.compression)
			if err != nil {
				return err
			}
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			// refuse to frame something that is not a model
			if _, err := lullmodel.ReadModelInstanceDef(buf); err != nil {
				return xerrors.Errorf("%s: %w", args[0], err)
			}
			frame, err := asset.Encode(buf, c)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], frame, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d -> %d bytes\n", args[1], len(buf), len(frame))
			return nil
		},
	}
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack IN OUT",
		Short: "Verify an asset frame and write the model buffer it carries",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			buf, err := asset.Decode(frame)
			if err != nil {
				return xerrors.Errorf("%s: %w", args[0], err)
			}
			return os.WriteFile(args[1], buf, 0o644)
		},
	}
}
