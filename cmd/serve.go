package cmd

import (
	"github.com/owais-io/sixer/internal/app"
	"github.com/spf13/cobra"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New(app.Options{
				ConfigPath: cfgFile,
				Version:    version,
			})
			if err != nil {
				return err
			}
			defer application.Close()

			return application.Run(cmd.Context())
		},
	}
}
