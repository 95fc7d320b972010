package entities

import (
	"context"
	"time"

	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings need a config file path, so they are loaded by the controllers layer.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() Clock {
		return time.Now
	}); err != nil {
		return err
	}

	if err := container.Provide(func() (*Environment, error) {
		return NewEnvironment(context.Background(), nil)
	}); err != nil {
		return err
	}

	return nil
}
