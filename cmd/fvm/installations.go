package fvm

import (
	"fmt"

	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/installation"
	"github.com/arthur-debert/fvm/pkg/paths"
	"github.com/arthur-debert/fvm/pkg/probe"
	"github.com/arthur-debert/fvm/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s.loadRegistry()
			if err != nil {
				return err
			}

			result := &display.InstallationList{Installations: []display.Installation{}}
			for _, inst := range reg.All() {
				view, err := s.view(reg, inst)
				if err != nil {
					return err
				}
				result.Installations = append(result.Installations, view)
			}
			for _, w := range s.warnings {
				result.Warnings = append(result.Warnings, w.Error())
			}
			return s.renderer.RenderResult(result)
		},
	}
}

// view builds the display form of inst including its link states.
func (s *session) view(reg *installation.Registry, inst *installation.Installation) (display.Installation, error) {
	statuses, err := reg.LinkStatus(inst)
	if err != nil {
		return display.Installation{}, err
	}
	return display.FromInstallation(inst, statuses), nil
}

func newAddCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "add PATH",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := paths.NormalizePath(args[0])
			if err != nil {
				return err
			}
			reg, err := s.loadRegistry()
			if err != nil {
				return err
			}

			info, err := s.fs.Stat(source)
			if err != nil {
				return errors.Wrapf(err, errors.ErrNotFound, "cannot read %s", source)
			}

			var inst *installation.Installation
			if info.IsDir() {
				inst, err = reg.AddLocal(source)
			} else {
				inst, err = reg.AddFromArchive(source)
			}
			if inst == nil {
				return err
			}

			if rerr := s.renderer.RenderMessage(fmt.Sprintf(MsgAdded, inst.DisplayName(), inst.Directory())); rerr != nil {
				return rerr
			}
			return err
		},
	}
}

func newRenameCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:               "rename VERSION NEW-VERSION",
		Short:             MsgRenameShort,
		Long:              MsgRenameLong,
		Args:              cobra.ExactArgs(2),
		GroupID:           "core",
		ValidArgsFunction: s.versionCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			newVersion, err := factorio.ParseVersion(args[1])
			if err != nil {
				return err
			}
			reg, inst, err := s.find(args[0])
			if err != nil {
				return err
			}

			previous := inst.VersionString()
			if err := reg.RenameInstallation(inst, newVersion); err != nil {
				return err
			}
			return s.renderer.RenderMessage(fmt.Sprintf(MsgRenamed, previous, inst.VersionString()))
		},
	}
}

func newRemoveCmd(s *session) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:               "remove VERSION",
		Aliases:           []string{"rm"},
		Short:             MsgRemoveShort,
		Long:              MsgRemoveLong,
		Args:              cobra.ExactArgs(1),
		GroupID:           "core",
		ValidArgsFunction: s.versionCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, inst, err := s.find(args[0])
			if err != nil {
				return err
			}

			if err := reg.Remove(inst, purge); err != nil {
				return err
			}
			if purge && inst.IsFileSystemEditable() {
				return s.renderer.RenderMessage(fmt.Sprintf(MsgPurged, inst.DisplayName(), inst.Directory()))
			}
			return s.renderer.RenderMessage(fmt.Sprintf(MsgRemoved, inst.DisplayName()))
		},
	}
	cmd.Flags().BoolVar(&purge, "purge", false, MsgFlagPurge)
	return cmd
}

func newRelinkCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "relink",
		Short:   MsgRelinkShort,
		Long:    MsgRelinkLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s.loadRegistry()
			if err != nil {
				return err
			}
			if err := reg.Relink(); err != nil {
				return err
			}
			return s.renderer.RenderMessage(fmt.Sprintf(MsgRelinked, len(reg.All())))
		},
	}
}

func newRelocateCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "relocate NEW-ROOT",
		Short:   MsgRelocateShort,
		Long:    MsgRelocateLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			newRoot, err := paths.NormalizePath(args[0])
			if err != nil {
				return err
			}
			reg, err := s.loadRegistry()
			if err != nil {
				return err
			}
			if err := reg.MoveRoot(newRoot); err != nil {
				return err
			}
			return s.renderer.RenderMessage(fmt.Sprintf(MsgRelocated, len(reg.Local()), newRoot))
		},
	}
}

func newResolveCmd(s *session) *cobra.Command {
	var expand string

	cmd := &cobra.Command{
		Use:               "resolve SELECTOR",
		Short:             MsgResolveShort,
		Long:              MsgResolveLong,
		Args:              cobra.ExactArgs(1),
		GroupID:           "core",
		ValidArgsFunction: s.versionCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, sel, err := s.find(args[0])
			if err != nil {
				return err
			}
			inst, err := reg.Resolve(sel)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("expand") {
				return s.renderer.RenderMessage(inst.ExpandPathVariables(expand))
			}

			view, err := s.view(reg, inst)
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(&display.Resolution{Selector: args[0], Installation: view})
		},
	}
	cmd.Flags().StringVar(&expand, "expand", "", MsgFlagExpand)
	return cmd
}

func newProbeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "probe PATH",
		Short:   MsgProbeShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := paths.NormalizePath(args[0])
			if err != nil {
				return err
			}
			info, err := s.fs.Stat(target)
			if err != nil {
				return errors.Wrapf(err, errors.ErrNotFound, "cannot read %s", target)
			}

			prober := probe.New(s.fs)
			var result probe.Result
			if info.IsDir() {
				result, err = prober.ProbeDirectory(target)
			} else {
				result, err = prober.ProbeArchive(target)
			}
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(display.FromProbe(target, result))
		},
	}
}
