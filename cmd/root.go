package cmd

import (
	"github.com/abhisek/mathcat/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathcat",
	Short: "Adaptive math assessment engine",
	Long: "Mathcat is an IRT-based computerized adaptive testing engine for math\n" +
		"tutoring: ability estimation, adaptive item selection, mastery\n" +
		"tracking, and retention probing.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHCAT_DB env var)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHCAT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
