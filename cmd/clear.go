package cmd

import (
	"github.com/owais-io/sixer/internal/app"
	"github.com/spf13/cobra"
)

func clearCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every article from the content store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				cmd.Println("Refusing to clear without --yes")
				return nil
			}

			application, err := app.New(app.Options{
				ConfigPath: cfgFile,
				Version:    version,
			})
			if err != nil {
				return err
			}
			defer application.Close()

			return application.ClearStore()
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm irreversible deletion")

	return cmd
}
