package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/kyaoi/capechanger/internal/app"
	"github.com/kyaoi/capechanger/internal/config"
	"github.com/kyaoi/capechanger/internal/logging"
)

// NewRootCmd creates the root command. Without a subcommand it opens the
// interactive image menu.
func NewRootCmd() *cobra.Command {
	var (
		configFile string
		imagesDir  string
		logLevel   string
		viewer     string
		scale      int
	)

	rootCmd := &cobra.Command{
		Use:   "capechanger",
		Short: "Pick an image variant and copy it into the target folder",
		Long: `capechanger lists the PNG files of the images folder in a terminal menu.

  ↑/↓    move the highlight
  Enter  replace the contents of the target folder with the highlighted image
  v      preview the highlighted image, magnified
  l      switch language (en/de)
  q      quit

The target is read from a two-line configuration file:
  line 1: the file name to write (e.g. cape.png)
  line 2: the target folder`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.LoadSettings()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("config") {
				settings.ConfigFile = configFile
			}
			if flags.Changed("images") {
				settings.ImagesDir = imagesDir
			}
			if flags.Changed("log-level") {
				settings.LogLevel = logLevel
			}
			if flags.Changed("viewer") {
				settings.Viewer = viewer
			}
			if flags.Changed("scale") {
				settings.PreviewScale = scale
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			log, closer, err := logging.OpenFile(settings.LogFile, settings.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()

			if err := app.Run(settings, log); err != nil {
				if !errors.Is(err, config.ErrConfigMissing) && !errors.Is(err, config.ErrConfigMalformed) {
					log.Error("capechanger stopped", "error", err)
				}
				return err
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "config.txt", "configuration file (line 1: target name, line 2: target folder)")
	flags.StringVar(&imagesDir, "images", "images", "folder with the image variants")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.StringVar(&viewer, "viewer", "", "external viewer command used for previews instead of the terminal")
	flags.IntVar(&scale, "scale", 8, "preview magnification (1-64)")

	rootCmd.AddCommand(NewFlattenCmd())

	return rootCmd
}
