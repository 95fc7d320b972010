//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/commands"
	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
)

// StubBootstrapCommand is a stub implementation of commands.Bootstrap.
// Reports and Errors are keyed by repository identifier.
type StubBootstrapCommand struct {
	ExecuteCallCount int
	Reports          map[string]*entities.Report
	Errors           map[string]error
	LastSettings     *entities.Settings
	Calls            []commands.BootstrapOptions
}

var _ commands.Bootstrap = (*StubBootstrapCommand)(nil)

func (s *StubBootstrapCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.BootstrapOptions,
) (*entities.Report, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.Calls = append(s.Calls, opts)
	if err := s.Errors[opts.Repository]; err != nil {
		return nil, err
	}
	if report, ok := s.Reports[opts.Repository]; ok {
		return report, nil
	}
	return &entities.Report{}, nil
}

// LastOpts returns the options of the latest call.
func (s *StubBootstrapCommand) LastOpts() commands.BootstrapOptions {
	if len(s.Calls) == 0 {
		return commands.BootstrapOptions{}
	}
	return s.Calls[len(s.Calls)-1]
}
