package fvm

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/fvm/pkg/config"
	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/ui"
	"github.com/arthur-debert/fvm/pkg/ui/display"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "config",
	}

	cmd.AddCommand(
		newConfigShowCmd(s),
		newConfigGetCmd(s),
		newConfigSetCmd(s),
		newConfigInitCmd(s),
	)
	return cmd
}

func keyCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys, cobra.ShellCompDirectiveNoFileComp
}

func newConfigShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := s.settings()
			if err != nil {
				return err
			}
			snap, err := store.Snapshot()
			if err != nil {
				return err
			}

			if s.output == ui.FormatJSON || s.output == ui.FormatYAML {
				return s.renderer.RenderResult(snap)
			}
			data, err := toml.Marshal(snap)
			if err != nil {
				return errors.Wrap(err, errors.ErrConfigParse, "failed to encode settings")
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", store.Path(), data)
			return err
		},
	}
}

func newConfigGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:               "get KEY",
		Short:             MsgConfigGetShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: keyCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.IsKnownKey(args[0]) {
				return errors.Newf(errors.ErrInvalidInput, "unknown setting %q", args[0])
			}
			store, err := s.settings()
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(&display.Setting{Key: args[0], Value: store.GetString(args[0])})
		},
	}
}

func newConfigSetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:               "set KEY VALUE",
		Short:             MsgConfigSetShort,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: keyCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := s.settings()
			if err != nil {
				return err
			}
			if err := store.Set(args[0], args[1]); err != nil {
				return err
			}
			return s.renderer.RenderMessage(fmt.Sprintf(MsgSettingSaved, args[0], args[1]))
		},
	}
}

func newConfigInitCmd(s *session) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := s.paths.ConfigFilePath()
			if _, err := s.fs.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, "%s already exists, use --force to overwrite", path).
					WithDetail("path", path)
			}

			if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
			}
			if err := s.fs.WriteFile(path, []byte(config.DefaultConfigContent()), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path)
			}
			return s.renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}
