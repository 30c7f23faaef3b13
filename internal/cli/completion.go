package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var completionShellOverride string

// supportedShells lists shells we can generate completions for.
var supportedShells = []string{"zsh", "bash", "fish", "powershell"}

// detectShell returns the normalized shell name, from override when set and
// from $SHELL otherwise.
func detectShell(override string) (string, error) {
	name := override
	if name == "" {
		sh := os.Getenv("SHELL")
		if sh == "" {
			return "", fmt.Errorf("could not detect shell: $SHELL is not set (use --shell to specify)")
		}
		name = filepath.Base(sh)
	}
	if name == "pwsh" {
		name = "powershell"
	}
	for _, s := range supportedShells {
		if name == s {
			return name, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %s (supported: %s)", name, strings.Join(supportedShells, ", "))
}

// completionPath returns the per-user location a completion script for shell
// is loaded from, or "" for an unknown shell.
func completionPath(shell string) string {
	home, _ := os.UserHomeDir()
	switch shell {
	case "zsh":
		return filepath.Join(home, ".local", "share", "zsh", "site-functions", "_moodlog")
	case "bash":
		return filepath.Join(home, ".local", "share", "bash-completion", "completions", "moodlog")
	case "fish":
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			configDir = filepath.Join(home, ".config")
		}
		return filepath.Join(configDir, "fish", "completions", "moodlog.fish")
	case "powershell":
		return filepath.Join(home, ".config", "powershell", "moodlog.ps1")
	default:
		return ""
	}
}

// generateCompletionScript renders the script for shell with cobra's generators.
func generateCompletionScript(root *cobra.Command, shell string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch shell {
	case "zsh":
		err = root.GenZshCompletion(&buf)
	case "bash":
		err = root.GenBashCompletionV2(&buf, true)
	case "fish":
		err = root.GenFishCompletion(&buf, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(&buf)
	default:
		return nil, fmt.Errorf("unknown shell: %s", shell)
	}
	if err != nil {
		return nil, fmt.Errorf("generate %s completion: %w", shell, err)
	}
	return buf.Bytes(), nil
}

// installCompletion writes the script for shell to dest, creating parent
// directories as needed.
func installCompletion(root *cobra.Command, shell, dest string) error {
	script, err := generateCompletionScript(root, shell)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(dest, script, 0o644); err != nil {
		return fmt.Errorf("write completion file: %w", err)
	}
	return nil
}

var completionInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Detect your shell and install completions",
	Long: `Detects your shell from $SHELL and writes a completion script where
the shell picks it up. Use --shell to override detection.

Supported shells: zsh, bash, fish, powershell`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		shell, err := detectShell(completionShellOverride)
		if err != nil {
			return err
		}
		dest := completionPath(shell)
		if err := installCompletion(cmd.Root(), shell, dest); err != nil {
			return err
		}
		debugf("installed %s completion", shell)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Wrote %s completions to %s\n", shell, dest)
		fmt.Fprintln(out, "Restart your shell to activate completions.")
		return nil
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [command]",
	Short: "Generate or install shell completions",
	Long: `Print a completion script for bash, zsh, fish or powershell to stdout,
or use "install" to write it where your shell looks for it.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	// Replace cobra's default completion command with one that can also install.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	for _, shell := range supportedShells {
		completionCmd.AddCommand(&cobra.Command{
			Use:   shell,
			Short: fmt.Sprintf("Print %s completion script to stdout", shell),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				script, err := generateCompletionScript(cmd.Root(), shell)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(script)
				return err
			},
		})
	}

	completionInstallCmd.Flags().StringVar(&completionShellOverride, "shell", "", "override shell detection (zsh, bash, fish, powershell)")
	completionCmd.AddCommand(completionInstallCmd)
	rootCmd.AddCommand(completionCmd)
}
