// Command modeldump inspects, frames and stores ModelInstanceDef buffers.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blastbao/flatcodec/asset"
)

type rootFlags struct {
	verbose     bool
	compression string
	storeDir    string
	boltPath    string
	workers     int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var log *zap.Logger

	rootCmd := &cobra.Command{
		Use:           "modeldump",
		Short:         "inspect, pack and store model buffers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if flags.verbose {
				log, err = zap.NewDevelopment()
			} else {
				log, err = zap.NewProduction()
			}
			if err != nil {
				return err
			}
			asset.SetLogger(log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output")
	pf.StringVar(&flags.compression, "compression", "zstd", "payload compression for pack and store put: none, lz4, zstd or snappy")
	pf.StringVar(&flags.storeDir, "store-dir", "assets", "directory of the local asset store")
	pf.StringVar(&flags.boltPath, "bolt", "", "use the bbolt database at this path instead of --store-dir")
	pf.IntVar(&flags.workers, "workers", runtime.NumCPU(), "files decoded concurrently by inspect")

	rootCmd.AddCommand(
		newInspectCmd(flags),
		newPackCmd(flags),
		newUnpackCmd(),
		newStoreCmd(flags),
		newDemoCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "modeldump: %v\n", err)
		os.Exit(1)
	}
}
