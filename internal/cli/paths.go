package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chaz8081/moodlog/internal/mood"
	"github.com/chaz8081/moodlog/internal/paths"
	"github.com/spf13/cobra"
)

func fileStatus(path string) string {
	if _, err := os.Stat(path); err == nil {
		return "[found]"
	}
	return "[not found]"
}

// formatPaths returns a human-readable summary of where moodlog reads its
// config and writes its database.
func formatPaths(configPath, dbPath string, dbErr error) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Config file:  %s  %s\n", configPath, fileStatus(configPath))

	if dbErr != nil {
		fmt.Fprintf(&b, "Database:     (unresolved: %v)\n", dbErr)
		return b.String()
	}
	absDB, err := filepath.Abs(dbPath)
	if err != nil {
		absDB = dbPath
	}
	fmt.Fprintf(&b, "Database:     %s  %s\n", absDB, fileStatus(dbPath))

	return b.String()
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show resolved config and database locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if dbPath != "" {
			if _, err := mood.ValidateDBPath(dbPath); err != nil {
				return err
			}
		}
		p, _, dbErr := effectiveDBPath(dbPath, cfg)
		fmt.Fprint(cmd.OutOrStdout(), formatPaths(paths.ConfigPath(), p, dbErr))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
