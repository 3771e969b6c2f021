package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/xgrid/ambassador-map/internal/embed"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the ambassador map site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to serve on",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Production origin used when the script cannot tell where it came from.
	originPrompt := promptui.Prompt{
		Label:   "Production origin (fallback for embed.js)",
		Default: cfg.Embed.FallbackOrigin,
		Validate: func(s string) error {
			if embed.ResolveOrigin(s, "") != s {
				return fmt.Errorf("enter a bare origin such as https://maps.example.com")
			}
			return nil
		},
	}
	cfg.Embed.FallbackOrigin, err = originPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("fallback origin: %w", err)
	}

	// 3. Who may frame the page.
	framePrompt := promptui.Select{
		Label: "Which sites may embed the map",
		Items: []string{
			"any site",
			"only listed origins",
		},
	}
	frameIdx, _, err := framePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("frame ancestors: %w", err)
	}
	if frameIdx == 1 {
		listPrompt := promptui.Prompt{
			Label: "Allowed origins (comma-separated)",
		}
		list, err := listPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("frame ancestors: %w", err)
		}
		cfg.Server.FrameAncestors = append([]string{"'self'"}, splitAndTrim(list)...)
		cfg.Server.AllowedOrigins = splitAndTrim(list)
	}

	// 4. Theme file.
	themePrompt := promptui.Prompt{
		Label:   "Theme file",
		Default: cfg.ThemeFile,
	}
	cfg.ThemeFile, err = themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme file: %w", err)
	}

	// 5. Public directory.
	publicPrompt := promptui.Prompt{
		Label:   "Public assets directory",
		Default: cfg.Public.Dir,
	}
	cfg.Public.Dir, err = publicPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("public dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops blank entries.
func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
