package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/machinafabric/pxf-uri-go/internal/config"
)

type globalOptions struct {
	configPath string
	output     string
	noWarn     bool
	verbosity  int
}

// load resolves the config file and applies flag overrides on top of it.
func (o *globalOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("output") {
		if err := config.ValidateOutput(o.output); err != nil {
			return nil, err
		}
		cfg.Output = o.output
	}
	if o.noWarn {
		cfg.Warn = false
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbosity = o.verbosity
	}
	commonlog.Configure(cfg.Verbosity, nil)
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "pxfuri",
		Short:         "Parse and validate PXF external table locators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&opts.noWarn, "no-warn", false, "suppress deprecation warnings")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "log verbosity")

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newLegacyCmd(opts))

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(err)
		os.Exit(1)
	}
}
