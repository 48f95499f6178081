package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .guidekit.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to guidekit! Let's configure your help center.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Help-center base URL.
	urlPrompt := promptui.Prompt{
		Label: "Help center base URL (e.g. https://support.example.com)",
		Validate: func(s string) error {
			if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
				return fmt.Errorf("must start with http:// or https://")
			}
			return nil
		},
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base URL: %w", err)
	}
	cfg.HelpCenter.BaseURL = strings.TrimRight(baseURL, "/")

	// 2. Locale.
	localePrompt := promptui.Prompt{
		Label:   "Content locale",
		Default: cfg.HelpCenter.Locale,
	}
	locale, err := localePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	cfg.HelpCenter.Locale = locale

	// 3. Embed provider.
	embedPrompt := promptui.Prompt{
		Label:   "Embed provider base URL (empty to configure later)",
		Default: "",
	}
	embedURL, err := embedPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("embed provider: %w", err)
	}
	cfg.Embeds.BaseURL = strings.TrimRight(embedURL, "/")

	// 4. Gallery layout.
	layoutPrompt := promptui.Select{
		Label: "Default gallery layout",
		Items: []string{"grid", "carousel", "tabs"},
	}
	_, layout, err := layoutPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("layout selection: %w", err)
	}
	cfg.Gallery.Layout = Layout(layout)

	// 5. Port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("must be a port number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Save(".guidekit.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .guidekit.yml")
	return cfg, nil
}
