package tui

import (
	"fmt"
	"strings"

	"pidboard/pkg/config"
	"pidboard/pkg/golemio"

	"github.com/charmbracelet/huh"
)

// RunConfigTUI walks the user through the settings the board needs and
// saves them to ~/.pidboard.json.
func RunConfigTUI(cfg *config.AppConfig) error {
	apiKey := cfg.APIKey
	stopID := cfg.StopID
	stopName := cfg.StopName
	format := cfg.TimestampFormat
	accent := cfg.AccentColor

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Golemio API key").
				Description("Sent as X-Access-Token on every request.").
				EchoMode(huh.EchoModePassword).
				Value(&apiKey).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("an API key is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Stop ID").
				Description("PID stop identifier, e.g. U138Z2P for Tyršův dům.").
				Value(&stopID),
			huh.NewInput().
				Title("Stop name").
				Value(&stopName),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How does the API send predicted departure times?").
				Options(
					huh.NewOption("ISO-8601 strings (Golemio default)", golemio.ISO8601.String()),
					huh.NewOption("Epoch seconds", golemio.EpochSeconds.String()),
				).
				Value(&format),
			huh.NewInput().
				Title("Accent color").
				Description("Any lipgloss color, e.g. 160 or #E30613.").
				Value(&accent),
		),
	).WithTheme(SetAccent(cfg.AccentColor))

	if err := form.Run(); err != nil {
		return err
	}

	cfg.APIKey = strings.TrimSpace(apiKey)
	cfg.StopID = strings.TrimSpace(stopID)
	cfg.StopName = strings.TrimSpace(stopName)
	cfg.TimestampFormat = format
	cfg.AccentColor = strings.TrimSpace(accent)

	if err := config.Save(cfg); err != nil {
		return err
	}

	SetAccent(cfg.AccentColor)
	fmt.Println(Accent(fmt.Sprintf("\n✅ Board configured for %s (%s)\n", cfg.StopName, cfg.StopID)))
	return nil
}
