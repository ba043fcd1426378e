package main

import (
	"fmt"

	"freshmart/internal/bootstrap"
	"freshmart/internal/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPushCmd(e *env) *cobra.Command {
	var file, images string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the catalog document (and optionally product images) to the bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.cfg.ValidateS3(); err != nil {
				return err
			}
			ctx := cmd.Context()

			products, err := seedProducts(cmd, file)
			if err != nil {
				return err
			}

			client, err := bootstrap.OpenStorage(ctx, e.cfg)
			if err != nil {
				return err
			}

			url, err := catalog.NewS3Source(client, e.cfg.S3.CatalogKey).Replace(ctx, products)
			if err != nil {
				return err
			}
			e.log.Info("catalog pushed", zap.String("url", url), zap.Int("products", len(products)))
			fmt.Fprintf(cmd.OutOrStdout(), "catalog: %s\n", url)

			if images == "" {
				return nil
			}
			urls, err := client.UploadDir(ctx, images, "images")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d image(s)\n", len(urls))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to push instead of the embedded fixture")
	cmd.Flags().StringVar(&images, "images", "", "directory of product images to upload under images/")
	return cmd
}
