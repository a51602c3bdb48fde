package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/timexy/internal/languages"
	"github.com/custodia-labs/timexy/internal/logger"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Args:  cobra.NoArgs,
	RunE:  runLanguages,
}

var rulesCmd = &cobra.Command{
	Use:   "rules [language]",
	Short: "Show the date rules of a language",
	Long: `Prints each date rule of a language in matching order: the strptime
template its matches are parsed with and the literal fixtures it must
recognise. Without an argument the configured language is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRules,
}

var selftestCmd = &cobra.Command{
	Use:   "selftest [language...]",
	Short: "Check every rule against its fixtures",
	Long: `Annotates every rule fixture and checks exactly one entity is found
at the fixture offsets. Exits with an error when any fixture fails.`,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(selftestCmd)
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	cmd.Println("Languages:")
	for _, id := range languages.Supported() {
		t := languages.MustLookup(id)
		units := 0
		for _, u := range t.Units {
			units += len(u.Words)
		}
		cmd.Printf("  %-4s %s  %d rules, %d unit words, %d number words\n",
			id, t.Tag, len(t.Rules), units, len(t.NumberWords))
	}
	return nil
}

func runRules(cmd *cobra.Command, args []string) error {
	lang := ""
	if len(args) == 1 {
		lang = args[0]
	} else {
		_, configured, err := effectiveConfig()
		if err != nil {
			return err
		}
		lang = configured
	}

	t, err := languages.Lookup(lang)
	if err != nil {
		return err
	}

	cmd.Printf("Rules for %s:\n", t.ID)
	for i := range t.Rules {
		r := &t.Rules[i]
		cmd.Printf("  [%d] %s\n", i+1, r.Template)
		if r.NotAfterDigit {
			cmd.Println("      not after a digit")
		}
		if r.HasMonthName() {
			cmd.Println("      written month name")
		}
		for _, fx := range r.Fixtures {
			cmd.Printf("      %q (%d-%d)\n", fx.Text, fx.Start, fx.End)
		}
	}
	return nil
}

func runSelftest(cmd *cobra.Command, args []string) error {
	if annotatorFactory == nil {
		return errors.New("annotator not configured")
	}

	ids := args
	if len(ids) == 0 {
		ids = languages.Supported()
	}

	cfg, _, err := effectiveConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	failures := 0
	for _, id := range ids {
		t, err := languages.Lookup(id)
		if err != nil {
			return err
		}
		annotator, err := annotatorFactory(id)
		if err != nil {
			return err
		}

		logger.Section("selftest " + id)
		checked := 0
		for _, r := range t.Rules {
			for _, fx := range r.Fixtures {
				checked++
				result, err := annotator.AnnotateText(ctx, fx.Text, cfg)
				if err != nil {
					return fmt.Errorf("annotate %q: %w", fx.Text, err)
				}
				found := 0
				for _, s := range result.Document.Entities() {
					if s.Start == fx.Start && s.End == fx.End && s.Label == cfg.Label {
						found++
					}
				}
				if found != 1 {
					failures++
					cmd.Printf("FAIL %s %s: %q expected one entity at %d-%d, got %v\n",
						id, r.Template, fx.Text, fx.Start, fx.End, result.Document.Entities())
				}
			}
		}
		cmd.Printf("%s: %d fixtures checked\n", id, checked)
	}

	if failures > 0 {
		return fmt.Errorf("%d fixture(s) failed", failures)
	}
	cmd.Println("All fixtures passed.")
	return nil
}
