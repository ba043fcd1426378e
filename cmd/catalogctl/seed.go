package main

import (
	"fmt"

	"freshmart/internal/catalog"
	"freshmart/internal/db"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCmd(e *env) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:       "seed postgres|sqlite",
		Short:     "Replace the database catalog with the embedded fixture or a YAML file",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"postgres", "sqlite"},
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := seedProducts(cmd, file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch args[0] {
			case "postgres":
				pool, err := db.ConnectPostgres(ctx, e.cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer pool.Close()
				err = catalog.NewPostgresSource(pool).Replace(ctx, products)
				if err != nil {
					return err
				}
			case "sqlite":
				sqlDB, err := db.OpenSQLite(e.cfg.SQLitePath)
				if err != nil {
					return err
				}
				defer sqlDB.Close()
				if err := catalog.NewSQLiteSource(sqlDB).Replace(ctx, products); err != nil {
					return err
				}
			}

			e.log.Info("catalog seeded", zap.String("target", args[0]), zap.Int("products", len(products)))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d product(s) into %s\n", len(products), args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to seed instead of the embedded fixture")
	return cmd
}

func seedProducts(cmd *cobra.Command, file string) ([]catalog.Product, error) {
	if file == "" {
		return catalog.FixtureSource{}.Load(cmd.Context())
	}
	return catalog.FileSource{Path: file}.Load(cmd.Context())
}
