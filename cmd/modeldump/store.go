package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blastbao/flatcodec/asset"
)

// openStore opens the bbolt store when --bolt is set and the directory
// store otherwise. The returned func releases it.
func openStore(flags *rootFlags) (asset.Store, func() error, error) {
	c, err := asset.ParseCompression(flags.compression)
	if err != nil {
		return nil, nil, err
	}
	opts := []asset.Option{asset.WithCompression(c), asset.WithLogger(asset.Logger())}

	if flags.boltPath != "" {
		s, err := asset.OpenBoltStore(flags.boltPath, opts...)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	s, err := asset.NewLocalStore(flags.storeDir, opts...)
	if err != nil {
		return nil, nil, err
	}
	return s, func() error { return nil }, nil
}

func newStoreCmd(flags *rootFlags) *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Put, get and list model buffers in an asset store",
	}

	putCmd := &cobra.Command{
		Use:   "put NAME FILE",
		Short: "Store the buffer in FILE under NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			s, closer, err := openStore(flags)
			if err != nil {
				return err
			}
			defer closer()
			return s.Put(cmd.Context(), args[0], buf)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get NAME OUT",
		Short: "Write the buffer stored under NAME to OUT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closer, err := openStore(flags)
			if err != nil {
				return err
			}
			defer closer()
			buf, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return os.WriteFile(args[1], buf, 0o644)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [PREFIX]",
		Short: "List stored names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			s, closer, err := openStore(flags)
			if err != nil {
				return err
			}
			defer closer()
			names, err := s.List(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	storeCmd.AddCommand(putCmd, getCmd, listCmd)
	return storeCmd
}
