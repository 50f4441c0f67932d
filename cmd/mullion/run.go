package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/log"
	"github.com/mullion/mullion/internal/app"
	"github.com/mullion/mullion/internal/config"
	"github.com/mullion/mullion/internal/server"
	"github.com/mullion/mullion/internal/state"
	"github.com/mullion/mullion/internal/theme"
	"github.com/pelletier/go-toml/v2"
)

// layoutStatePath returns where layouts are saved, creating the parent
// directory as needed.
func layoutStatePath() (string, error) {
	path, err := xdg.StateFile("mullion/layout.yaml")
	if err != nil {
		return "", fmt.Errorf("could not determine layout path: %w", err)
	}
	return path, nil
}

func runLocal() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("Failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		log.Warn("Failed to initialize theme", "err", err)
	}

	statePath, err := layoutStatePath()
	if err != nil {
		return err
	}

	m := app.New(userConfig, statePath)
	p := tea.NewProgram(m)

	// Hot-reload the configuration while the program runs.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		err := config.Watch(ctx, func(cfg *config.UserConfig) {
			p.Send(app.ConfigReloadedMsg{Config: cfg})
		})
		if err != nil {
			log.Debug("Config watcher stopped", "err", err)
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info("Shutting down SSH server")
		cancel()
	}()

	err := server.Start(ctx, server.Config{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
	})
	if err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.LoadUserConfig(); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	defaultCfg := config.DefaultConfig()

	var sb strings.Builder
	sb.WriteString("# mullion configuration file\n")
	sb.WriteString("# Keybindings map actions to arrays of keys; all actions sit\n")
	sb.WriteString("# behind the leader key.\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n\n")

	data, err := toml.Marshal(defaultCfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: mullion config edit")
	return nil
}

func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}

	registry := config.NewKeybindRegistry(userConfig)
	printKeybindingsTable(userConfig, registry)
	return nil
}

// printKeybindingsTable prints keybindings in a pretty table format
func printKeybindingsTable(userConfig *config.UserConfig, registry *config.KeybindRegistry) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CLITableHeader()).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableBorder()).Render("mullion keybindings"))
	fmt.Println()

	for _, section := range config.GetKeybindings(registry) {
		rows := [][]string{}
		for _, b := range section.Bindings {
			rows = append(rows, []string{b.Key, b.Description})
		}
		if len(rows) == 0 {
			continue
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableDim())).
			Headers("Keys", "Action").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				return cellStyle
			})

		fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableKey()).Render(section.Title))
		fmt.Println(t.Render())
		fmt.Println()
	}

	note := lipgloss.NewStyle().
		Foreground(theme.CLITableDim()).
		Italic(true).
		Render(fmt.Sprintf("Note: %s is the leader key. Press it followed by another key.",
			userConfig.Keybindings.LeaderKey))
	fmt.Println(note)
	fmt.Println()
}

func showSavedLayout() error {
	path, err := layoutStatePath()
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("no saved layout at %s: %w", path, err)
	}
	defer file.Close()

	snap, err := state.Decode(file)
	if err != nil {
		return fmt.Errorf("could not read layout: %w", err)
	}

	fmt.Printf("Frame %q  %dx%d\n", snap.Frame, snap.Cols, snap.Lines)
	printWindowState(&snap.Root, 0)
	return nil
}

// exportSavedLayout copies the default layout file to dest, validating it
// on the way out.
func exportSavedLayout(dest string) error {
	path, err := layoutStatePath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("no saved layout at %s: %w", path, err)
	}
	if _, err := state.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("saved layout is not valid: %w", err)
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("could not write layout: %w", err)
	}
	fmt.Printf("Saved layout exported to %s\n", dest)
	return nil
}

// importLayout validates src and installs it as the default layout file,
// so the next restore in the app picks it up.
func importLayout(src string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", src, err)
	}
	snap, err := state.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s is not a valid layout: %w", src, err)
	}

	path, err := layoutStatePath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write layout: %w", err)
	}
	fmt.Printf("Installed layout %q (%dx%d) at %s\n", snap.Frame, snap.Cols, snap.Lines, path)
	return nil
}

func printWindowState(ws *state.WindowState, depth int) {
	indent := strings.Repeat("  ", depth)
	switch ws.Kind {
	case "leaf":
		name := ws.Buffer
		if name == "" {
			name = "(empty)"
		}
		marks := ""
		if ws.Dedicated != "" {
			marks += " dedicated=" + ws.Dedicated
		}
		if ws.Side != "" {
			marks += fmt.Sprintf(" side=%s slot=%d", ws.Side, ws.Slot)
		}
		fmt.Printf("%s- %s  %dx%d%s\n", indent, name, ws.Cols, ws.Lines, marks)
	default:
		fmt.Printf("%s+ %s  %dx%d\n", indent, ws.Kind, ws.Cols, ws.Lines)
		for i := range ws.Children {
			printWindowState(&ws.Children[i], depth+1)
		}
	}
}
