package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"branch-builder/internal/branch"
	"branch-builder/internal/conflict"
	"branch-builder/internal/match"
	"branch-builder/internal/script"
)

const (
	flagScript = "script"
	flagBranch = "branch"
	flagReport = "report"
	flagDump   = "dump"
	flagWrite  = "write"
	flagAll    = "all"
)

func (a *app) conflictsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List the conflicts left after replaying inline directives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, _, err := a.session()
			if err != nil {
				return err
			}

			keep := func(c conflict.Conflict) bool { return !c.Solved }
			if a.v.GetBool(flagAll) {
				keep = nil
			}

			printConflicts(cmd.OutOrStdout(), b, keep)

			return nil
		},
	}

	cmd.Flags().Bool(flagAll, false, "include conflicts already solved by directives")

	return cmd
}

func (a *app) suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest renames of missing dimensions onto new ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, _, err := a.session()
			if err != nil {
				return err
			}

			suggestions := b.SuggestRenames()
			out := cmd.OutOrStdout()

			if len(suggestions) == 0 {
				fmt.Fprintln(out, "no rename suggestions")
			}

			for _, s := range suggestions {
				fmt.Fprintf(out, "%s:\n", s.Missing)

				for _, c := range s.Candidates {
					fmt.Fprintf(out, "  %-24s %.2f  %s\n", c.Name(), c.CombinedScore, c.Prior)
				}
			}

			if path := a.v.GetString(flagWrite); path != "" {
				draft := script.FromSuggestions(suggestions, match.DefaultAmbiguityThreshold)
				if err := script.WriteFile(draft, path); err != nil {
					return err
				}

				fmt.Fprintf(out, "draft script written to %s\n", path)
			}

			return nil
		},
	}

	cmd.Flags().String(flagWrite, "", "write a draft resolution script with the unambiguous renames")

	return cmd
}

func (a *app) resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Apply a resolution script and print the resulting adapters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, child, err := a.session()
			if err != nil {
				return err
			}

			if path := a.v.GetString(flagScript); path != "" {
				s, err := script.LoadFile(path)
				if err != nil {
					return err
				}

				if err := script.Apply(b, s); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			if name := a.v.GetString(flagBranch); name != "" && !b.ChangeExperimentName(name) {
				a.lggr.Warnw("Branch name ignored, it matches the parent", "branch", name)
			}

			if path := a.v.GetString(flagReport); path != "" {
				if err := writeReport(b, path); err != nil {
					return err
				}
			}

			adapters, diags, err := b.CreateAdaptors()
			if err != nil {
				printConflicts(cmd.ErrOrStderr(), b, func(c conflict.Conflict) bool { return !c.Solved })
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "experiment: %s\n", child.Name)

			for _, ad := range adapters {
				fmt.Fprintln(out, ad.String())
			}

			for _, w := range diags.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w.String())
			}

			if a.v.GetBool(flagDump) {
				spew.Fdump(out, b.Operations())
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP(flagScript, "s", "", "resolution script to apply (yaml or jsonc)")
	flags.StringP(flagBranch, "b", "", "name of the child experiment")
	flags.String(flagReport, "", "write a YAML report of the session to this path")
	flags.Bool(flagDump, false, "dump the resolved operations")

	return cmd
}

func printConflicts(w io.Writer, b *branch.Builder, keep func(conflict.Conflict) bool) {
	var n int

	for c := range b.FilterConflicts(keep) {
		n++

		line := fmt.Sprintf("%-8s %-24s %s", c.Status, c.Name(), c.Dimension.Prior)
		if old, ok := b.GetOldDimensionValue(c.Name()); ok && c.Status == conflict.StatusChanged {
			line += " (was " + old.Prior + ")"
		}

		if c.Solved {
			line += " [solved]"
		}

		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	if n == 0 {
		fmt.Fprintln(w, "no conflicts")
	}
}

func writeReport(b *branch.Builder, path string) error {
	data, err := branch.ExportYAML(b)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
