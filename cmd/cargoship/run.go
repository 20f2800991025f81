// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cargoship/cargoship/internal/config"
)

func newRunCommand(app *App) *cobra.Command {
	var (
		format string
		strict bool
	)

	runCmd := &cobra.Command{
		Use:   "run <manifest>",
		Short: "Run a voyage manifest",
		Long: `Run a voyage manifest.

Steps are executed in order. Operation messages and ship information are
printed as they happen. A cargo overfill stops the voyage; ship rejections
(capacity or weight limits, unknown containers) are reported and the voyage
continues unless --strict is set.

With --format toml the ship messages are suppressed and the step results
and final ship state are printed as TOML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			return app.runVoyage(cmd.Context(), m, voyageRequest{
				Format:  config.OutputFormat(format),
				Strict:  strict,
				Summary: true,
			})
		},
	}

	runCmd.Flags().StringVarP(&format, "format", "f", "", "output format: text or toml (default from config)")
	runCmd.Flags().BoolVar(&strict, "strict", false, "fail when the ship rejects an operation")

	return runCmd
}
