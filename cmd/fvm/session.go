package fvm

import (
	"os"

	"github.com/arthur-debert/fvm/pkg/config"
	"github.com/arthur-debert/fvm/pkg/filesystem"
	"github.com/arthur-debert/fvm/pkg/installation"
	"github.com/arthur-debert/fvm/pkg/logging"
	"github.com/arthur-debert/fvm/pkg/paths"
	"github.com/arthur-debert/fvm/pkg/types"
	"github.com/arthur-debert/fvm/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session carries what commands share for one invocation. Settings and the
// registry are loaded on first use so help and completion work with a
// broken settings file.
type session struct {
	verbosity int
	format    string

	fs       types.FS
	paths    paths.Paths
	output   ui.Format
	renderer ui.Renderer
	logger   zerolog.Logger

	store    *config.Store
	registry *installation.Registry
	warnings []error
}

// setup runs before every command: paths, logging and the renderer.
func (s *session) setup(cmd *cobra.Command) error {
	p, err := paths.New()
	if err != nil {
		return err
	}
	s.paths = p
	s.fs = filesystem.NewOS()

	logging.SetupLogger(s.verbosity, p.LogFilePath())
	s.logger = logging.GetLogger("cli")
	s.logger.Debug().Str("command", cmd.CommandPath()).Msg("Command started")

	format, err := ui.ParseFormat(s.format)
	if err != nil {
		return err
	}
	if format == ui.FormatAuto {
		format = ui.FormatTerminal
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			format = ui.DetectFormat(f)
		}
	}
	s.output = format
	s.renderer, err = ui.NewRenderer(format, cmd.OutOrStdout())
	return err
}

func (s *session) settings() (*config.Store, error) {
	if s.store == nil {
		store, err := config.Load(s.fs, s.paths)
		if err != nil {
			return nil, err
		}
		s.store = store
	}
	return s.store, nil
}

// loadRegistry loads the installations. Problems that leave the registry
// usable are kept in s.warnings and logged.
func (s *session) loadRegistry() (*installation.Registry, error) {
	if s.registry != nil {
		return s.registry, nil
	}
	store, err := s.settings()
	if err != nil {
		return nil, err
	}

	reg := installation.NewRegistry(s.fs, store, s.paths.VendorAppDataDir())
	warnings, err := reg.Load()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		s.logger.Warn().Err(w).Msg("Problem while loading installations")
	}
	s.registry = reg
	s.warnings = warnings
	return reg, nil
}

// find loads the registry and looks up key.
func (s *session) find(key string) (*installation.Registry, *installation.Installation, error) {
	reg, err := s.loadRegistry()
	if err != nil {
		return nil, nil, err
	}
	inst, err := reg.Find(key)
	if err != nil {
		return nil, nil, err
	}
	return reg, inst, nil
}

// versionCompletion completes installation version strings.
func (s *session) versionCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if s.paths == nil {
		if err := s.setup(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	reg, err := s.loadRegistry()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := []string{installation.LatestKey}
	for _, inst := range reg.All() {
		names = append(names, inst.VersionString())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
