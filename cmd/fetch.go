package cmd

import (
	"fmt"
	"time"

	"github.com/owais-io/sixer/internal/app"
	"github.com/owais-io/sixer/internal/guardian"
	"github.com/spf13/cobra"
)

const flagDateFormat = "2006-01-02"

func fetchCommand() *cobra.Command {
	var (
		fromDate    string
		toDate      string
		section     string
		keyword     string
		maxArticles int
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one ingestion for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse(flagDateFormat, fromDate)
			if err != nil {
				return fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", fromDate)
			}
			to, err := time.Parse(flagDateFormat, toDate)
			if err != nil {
				return fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", toDate)
			}

			application, err := app.New(app.Options{
				ConfigPath: cfgFile,
				Version:    version,
			})
			if err != nil {
				return err
			}
			defer application.Close()

			return application.Ingest(cmd.Context(), guardian.FetchRequest{
				From:        from,
				To:          to,
				Section:     section,
				Keyword:     keyword,
				MaxArticles: maxArticles,
			})
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&section, "section", "", "optional provider section filter")
	cmd.Flags().StringVar(&keyword, "keyword", "", "optional free-text query")
	cmd.Flags().IntVar(&maxArticles, "max-articles", 0, "cap on fetched articles (0 = no cap)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
