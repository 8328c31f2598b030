package fvm

import (
	"github.com/arthur-debert/fvm/pkg/config"
	"github.com/arthur-debert/fvm/pkg/paths"
	"github.com/spf13/cobra"
)

func newSteamCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "steam",
		Short:   MsgSteamShort,
		Long:    MsgSteamLong,
		GroupID: "core",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set PATH",
			Short: MsgSteamSetShort,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, err := paths.NormalizePath(args[0])
				if err != nil {
					return err
				}
				reg, err := s.loadRegistry()
				if err != nil {
					return err
				}
				inst, err := reg.SetVendorPath(dir)
				if err != nil {
					return err
				}
				view, err := s.view(reg, inst)
				if err != nil {
					return err
				}
				return s.renderer.RenderResult(&view)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: MsgSteamShowShort,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				reg, err := s.loadRegistry()
				if err != nil {
					return err
				}
				inst := reg.VendorInstallation()
				if inst == nil {
					return s.renderer.RenderMessage(MsgSteamNotSet)
				}
				view, err := s.view(reg, inst)
				if err != nil {
					return err
				}
				return s.renderer.RenderResult(&view)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: MsgSteamClearShort,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				reg, err := s.loadRegistry()
				if err != nil {
					return err
				}
				if inst := reg.VendorInstallation(); inst != nil {
					err = reg.Remove(inst, false)
				} else {
					err = s.store.Set(config.KeySteamPath, "")
				}
				if err != nil {
					return err
				}
				return s.renderer.RenderMessage(MsgSteamCleared)
			},
		},
	)
	return cmd
}
