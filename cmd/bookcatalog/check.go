package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bookcatalog/modules/books"
	"github.com/dmitrymomot/bookcatalog/pkg/catalog"
	"github.com/dmitrymomot/bookcatalog/pkg/file"
	"github.com/dmitrymomot/bookcatalog/pkg/logger"
)

func newCheckCmd() *cobra.Command {
	var (
		recordElement string
		timeout       time.Duration
		indent        bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a local catalog file and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			storage, err := file.NewLocalStorage(filepath.Dir(path))
			if err != nil {
				return err
			}

			log := logger.Discard()
			if verbose {
				log = logger.New(logger.WithDevelopment("bookcatalog"), logger.WithOutput(cmd.ErrOrStderr()))
			}

			name := filepath.Base(path)
			svc := books.NewService(books.Config{
				File:              name,
				RecordElement:     recordElement,
				ProcessingTimeout: timeout,
			}, storage, books.WithLogger(log))

			set, err := svc.Catalog(cmd.Context())
			if errors.Is(err, catalog.ErrSourceNotFound) {
				return fmt.Errorf("%s NOT FOUND", name)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if indent {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(set)
		},
	}

	cmd.Flags().StringVar(&recordElement, "record", catalog.DefaultRecordElement, "local name of record elements")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "processing timeout, 0 disables")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent JSON output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log processing details to stderr")
	return cmd
}
