package cmd

import (
	"fmt"
	"strings"

	"pidboard/pkg/config"
	"pidboard/pkg/golemio"
	"pidboard/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pidboard configuration",
	Long:  "View or edit your local configuration (API key, stop, timestamp format). Without flags an interactive form is shown.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if show, _ := cmd.Flags().GetBool("show"); show {
			printConfig(cfg)
			return nil
		}

		changed := false
		for flag, field := range map[string]*string{
			"api-key":          &cfg.APIKey,
			"stop-id":          &cfg.StopID,
			"stop-name":        &cfg.StopName,
			"timestamp-format": &cfg.TimestampFormat,
			"accent-color":     &cfg.AccentColor,
		} {
			if cmd.Flags().Changed(flag) {
				*field, _ = cmd.Flags().GetString(flag)
				*field = strings.TrimSpace(*field)
				changed = true
			}
		}

		if !changed {
			return tui.RunConfigTUI(cfg)
		}

		if _, err := golemio.ParseTimestampFormat(cfg.TimestampFormat); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		tui.SetAccent(cfg.AccentColor)
		fmt.Println(tui.Accent(fmt.Sprintf("✅ Configuration saved. Board stop: %s (%s)", cfg.StopName, cfg.StopID)))
		return nil
	},
}

func printConfig(cfg *config.AppConfig) {
	tui.SetAccent(cfg.AccentColor)
	fmt.Println(tui.Accent("--- Current Configuration (~/.pidboard.json) ---"))

	if cfg.APIKey == "" {
		fmt.Println("API Key: Not set")
	} else {
		fmt.Printf("API Key: %s\n", maskKey(cfg.APIKey))
	}
	fmt.Printf("Stop: %s (%s)\n", cfg.StopName, cfg.StopID)
	fmt.Printf("API: %s\n", cfg.BaseURL)
	fmt.Printf("Timestamp Format: %s\n", cfg.TimestampFormat)
	fmt.Printf("Timezone: %s\n", cfg.Timezone)
	fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
}

// maskKey keeps the last four characters so users can tell keys apart
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("api-key", "k", "", "Golemio API key sent as X-Access-Token")
	configCmd.Flags().StringP("stop-id", "s", "", "PID stop ID to show (e.g. U138Z2P)")
	configCmd.Flags().StringP("stop-name", "n", "", "Display name of the stop")
	configCmd.Flags().String("timestamp-format", "", "How the API sends predicted times: iso8601 or epoch")
	configCmd.Flags().String("accent-color", "", "Accent color for terminal output (lipgloss color)")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
