// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cargoship/cargoship/internal/config"
	"github.com/cargoship/cargoship/internal/manifest"
)

func newDemoCommand(app *App) *cobra.Command {
	var source bool

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration voyage",
		Long: `Run the built-in demonstration voyage.

A hazardous liquid container KON-L-1 is loaded onto "Ship 1" and the ship
information is printed. Use --source to print the voyage manifest instead,
as a starting point for your own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source {
				_, err := fmt.Fprint(app.stdout, string(manifest.DemoSource()))
				return err
			}

			m, err := manifest.Demo()
			if err != nil {
				return err
			}
			return app.runVoyage(cmd.Context(), m, voyageRequest{Format: config.OutputText})
		},
	}

	demoCmd.Flags().BoolVar(&source, "source", false, "print the demonstration manifest")

	return demoCmd
}
