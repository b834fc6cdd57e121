package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	pxfuri "github.com/machinafabric/pxf-uri-go"
)

func newLegacyCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legacy [FRAGMENTER|ACCESSOR|RESOLVER]",
		Short: "List deprecated plugin names and their replacements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.load(cmd); err != nil {
				return err
			}

			keys := pxfuri.CoreOptions
			if len(args) == 1 {
				key := strings.ToUpper(args[0])
				if pxfuri.LegacyNames(key) == nil {
					return fmt.Errorf("no legacy names for option: %s", args[0])
				}
				keys = []string{key}
			}

			out := cmd.OutOrStdout()
			for _, key := range keys {
				table := pxfuri.LegacyNames(key)
				names := make([]string, 0, len(table))
				for name := range table {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(out, "%s\t%s\t%s\n", key, name, table[name])
				}
			}
			return nil
		},
	}
	return cmd
}
