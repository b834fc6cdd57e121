package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pxfuri "github.com/machinafabric/pxf-uri-go"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <uri>",
		Short: "Parse a locator and print its parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			parsed, err := pxfuri.Parse(args[0], cfg.WarnPolicy())
			if err != nil {
				return err
			}

			if err := writeLocator(cmd.OutOrStdout(), cfg.Output, newLocatorView(parsed)); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}
	return cmd
}
