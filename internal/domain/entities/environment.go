package entities

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Environment holds the variables read from the process environment.
type Environment struct {
	GitHubToken string `env:"GITHUB_TOKEN"`
	GHToken     string `env:"GH_TOKEN"`
	Repository  string `env:"GITHUB_REPOSITORY"`
}

// NewEnvironment reads the environment from lookuper. A nil lookuper means the OS environment.
func NewEnvironment(ctx context.Context, lookuper envconfig.Lookuper) (*Environment, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var env Environment
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &env,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &env, nil
}

// Token returns GITHUB_TOKEN, falling back to GH_TOKEN.
func (e *Environment) Token() string {
	if e.GitHubToken != "" {
		return e.GitHubToken
	}
	return e.GHToken
}
