package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newConfigCmd(p *appProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change persisted settings",
	}

	cmd.AddCommand(newConfigShowCmd(p), newConfigSetCmd(p))

	return cmd
}

func newConfigShowCmd(p *appProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := p.get(cmd)
			if err != nil {
				return err
			}

			entries := a.config.Entries()
			if p.opts.jsonOutput {
				values := make(map[string]string, len(entries))
				for _, entry := range entries {
					values[entry.Key] = entry.Value
				}
				encoded, err := json.MarshalIndent(values, "", "  ")
				if err != nil {
					return fmt.Errorf("encode config: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "file\t%s\n", a.configRepo.Path())
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\n", entry.Key, entry.Value)
			}

			return w.Flush()
		},
	}
}

func newConfigSetCmd(p *appProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist one setting to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := p.configRepo(cmd)
			if err != nil {
				return err
			}

			if err := repo.Set(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("set %s: %w", args[0], err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
			return err
		},
	}
}
