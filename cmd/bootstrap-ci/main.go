package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bootstrap-ci/internal"
	"github.com/rios0rios0/bootstrap-ci/internal/infrastructure/controllers"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	root := appContext.GetRootController()
	bind := root.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          root.Execute,
	}
	controllers.AddGlobalFlags(cmd)

	for _, controller := range appContext.GetControllers() {
		subBind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		cmd.AddCommand(&cobra.Command{
			Use:   subBind.Use,
			Short: subBind.Short,
			Long:  subBind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		})
	}

	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext, err := injectAppContext()
	if err != nil {
		logger.Fatalf("Error wiring 'bootstrap-ci': %s", err)
	}

	if err := buildRootCommand(appContext).Execute(); err != nil {
		logger.Fatalf("Error executing 'bootstrap-ci': %s", err)
	}
}
