// Package main implements mullion, a tiling window layout manager for
// the terminal. Windows live in a slot-indexed tree per frame; splits,
// deletions and resizes keep the tree tiled exactly, and layouts can be
// saved to disk and restored later.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mullion",
		Short: "Tiling window layout manager for the terminal",
		Long: `mullion - tiling window layout manager

Splits the terminal into a tree of windows showing buffers: splitting,
deleting, balancing, atomic groups, side windows, and layout snapshots
saved to disk.`,
		Example: `  # Run mullion
  mullion

  # Run as SSH server
  mullion ssh --port 2222

  # Edit configuration
  mullion config edit

  # List all keybindings
  mullion keybinds list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run mullion as SSH server",
		Long: `Run mullion as an SSH server

Allows remote connections to mullion via SSH. The server will generate
a host key automatically if not specified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mullion configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the mullion configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect and manage saved layouts",
	}

	layoutShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved layout tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSavedLayout()
		},
	}

	layoutPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the saved layout file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := layoutStatePath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	layoutSaveCmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Export the saved layout to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportSavedLayout(args[0])
		},
	}

	layoutRestoreCmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Install a layout file as the saved layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importLayout(args[0])
		},
	}

	layoutCmd.AddCommand(layoutShowCmd, layoutPathCmd, layoutSaveCmd, layoutRestoreCmd)

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd, layoutCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
