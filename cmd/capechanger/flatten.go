package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kyaoi/capechanger/internal/app"
	"github.com/kyaoi/capechanger/internal/flatten"
	"github.com/kyaoi/capechanger/internal/logging"
)

// NewFlattenCmd creates the flatten command, which fills the images folder
// from a nested download folder.
func NewFlattenCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "flatten SRC [DST]",
		Short: "Copy every file below SRC into DST as <folder>_<name>.png",
		Long: `flatten walks SRC recursively and copies each file into DST, naming it after
the folder it was found in: SRC/red/cape becomes DST/red_cape.png.
DST defaults to the images folder.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.LoadSettings()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("log-level") {
				logLevel = settings.LogLevel
			}
			dst := settings.ImagesDir
			if len(args) == 2 {
				dst = args[1]
			}

			log := logging.New(os.Stderr, logLevel)
			res, err := flatten.Run(args[0], dst, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done: %d files copied to %s\n", res.Copied, dst)
			return nil
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	return cmd
}
