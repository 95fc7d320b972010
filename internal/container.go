package internal

import (
	"github.com/rios0rios0/bootstrap-ci/internal/domain/commands"
	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
	"github.com/rios0rios0/bootstrap-ci/internal/infrastructure/controllers"
	"github.com/rios0rios0/bootstrap-ci/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// AppInternal holds the root controller and the subcommand controllers.
type AppInternal struct {
	root        *controllers.BootstrapController
	controllers []entities.Controller
}

// NewAppInternal creates the application context.
func NewAppInternal(
	root *controllers.BootstrapController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{root: root, controllers: *subcommands}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.BootstrapController {
	return it.root
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}
