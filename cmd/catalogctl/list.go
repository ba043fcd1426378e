package main

import (
	"fmt"
	"text/tabwriter"

	"freshmart/internal/bootstrap"

	"github.com/spf13/cobra"
)

func newListCmd(e *env) *cobra.Command {
	var query, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog from the configured source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.cfg.ValidateCatalog(); err != nil {
				return err
			}
			svc, err := bootstrap.LoadCatalog(cmd.Context(), e.cfg, e.log)
			if err != nil {
				return err
			}

			products := svc.Filter(query, category)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tUNIT\tSALE")
			for _, p := range products {
				sale := ""
				if p.OnSale() {
					sale = fmt.Sprintf("-%d%%", p.DiscountPercent())
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%s\t%s\n",
					p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Unit, sale)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d product(s)\n", len(products))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "q", "q", "", "case-insensitive name search")
	cmd.Flags().StringVar(&category, "category", "", "category id to filter by")
	return cmd
}
