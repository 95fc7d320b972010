package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath  string
	token       string
	dryRun      bool
	deferBranch bool
}

// AddGlobalFlags adds the persistent flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("token", "",
		"GitHub token (overrides GITHUB_TOKEN / GH_TOKEN)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().Bool("defer-branch", false,
		"Create the branch only when at least one file needs a write")
}

func readGlobalFlags(cmd *cobra.Command) globalFlags {
	configPath, _ := cmd.Flags().GetString("config")
	token, _ := cmd.Flags().GetString("token")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	deferBranch, _ := cmd.Flags().GetBool("defer-branch")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	return globalFlags{
		configPath:  configPath,
		token:       token,
		dryRun:      dryRun,
		deferBranch: deferBranch,
	}
}
