package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	pxfuri "github.com/machinafabric/pxf-uri-go"
	"github.com/machinafabric/pxf-uri-go/internal/config"
)

var errCheckFailed = errors.New("one or more locators failed validation")

func newCheckCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <uri>...",
		Short: "Parse locators and run the configured validators",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := false
			for _, uri := range args {
				if err := checkLocator(uri, cfg); err != nil {
					failed = true
					fmt.Fprintf(out, "FAIL %s\n", err)
					continue
				}
				fmt.Fprintf(out, "OK   %s\n", uri)
			}

			if failed {
				return errCheckFailed
			}
			return nil
		},
	}
	return cmd
}

func checkLocator(uri string, cfg *config.Config) error {
	parsed, err := pxfuri.Parse(uri, cfg.WarnPolicy())
	if err != nil {
		return err
	}
	if cfg.Checks.NoDuplicates {
		if err := parsed.VerifyNoDuplicateOptions(); err != nil {
			return err
		}
	}
	if len(cfg.Checks.CoreOptions) > 0 {
		if err := parsed.VerifyCoreOptionsExist(cfg.Checks.CoreOptions); err != nil {
			return err
		}
	}
	return nil
}
