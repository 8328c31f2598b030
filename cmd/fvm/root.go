package fvm

import (
	"embed"

	"github.com/arthur-debert/fvm/internal/version"
	"github.com/arthur-debert/fvm/pkg/cobrax/topics"
	"github.com/arthur-debert/fvm/pkg/ui"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	s := &session{}

	rootCmd := &cobra.Command{
		Use:     "fvm",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&s.format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "COMMANDS:"},
		&cobra.Group{ID: "config", Title: "CONFIGURATION:"},
		&cobra.Group{ID: "misc", Title: "MISC:"},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(
		newListCmd(s),
		newAddCmd(s),
		newRenameCmd(s),
		newRemoveCmd(s),
		newRelinkCmd(s),
		newRelocateCmd(s),
		newResolveCmd(s),
		newProbeCmd(s),
		newSteamCmd(s),
		newConfigCmd(s),
		newVersionCmd(),
		newCompletionCmd(),
		newManCmd(),
	)

	if _, err := topics.Initialize(rootCmd, topicFiles, "topics", topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	}); err == nil {
		rootCmd.SetHelpCommandGroupID("misc")
	}

	return rootCmd
}
