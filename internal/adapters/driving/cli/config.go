package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage annotation settings",
	Long: `View and change the settings stored in ~/.timexy/config.toml.

Keys:
  label       annotation label for recognised spans (default "timexy")
  kb_id_type  date value format: timex3 or timestamp
  overwrite   replace annotations carrying another label (true/false)
  language    default language of the rule table`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configService == nil {
		return errors.New("config service not configured")
	}

	cfg, err := configService.Get()
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("  label:      %s\n", cfg.Label)
	cmd.Printf("  kb_id_type: %s\n", cfg.KBIDType)
	cmd.Printf("  overwrite:  %t\n", cfg.Overwrite)
	cmd.Printf("  language:   %s\n", configService.GetLanguage())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configService == nil {
		return errors.New("config service not configured")
	}

	key, value := args[0], args[1]
	if err := configService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	if err := configService.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
