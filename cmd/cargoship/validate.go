// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cargoship/cargoship/internal/manifest"
)

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Validate a voyage manifest without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			// Building instantiates every container and the ship, which catches
			// limits the schema accepts but the constructors refuse.
			if _, err := m.Build(manifest.WithLogger(app.logger)); err != nil {
				return invalidManifestError(args[0], err)
			}

			fmt.Fprintf(app.stdout, "%s %s is valid: ship %s, %d containers, %d steps\n",
				SuccessStyle.Render("✓"), args[0], CmdStyle.Render(m.Ship.Name), len(m.Containers), len(m.Steps))
			return nil
		},
	}
}
