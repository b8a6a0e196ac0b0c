package main

import (
	"embed"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/minimessage/internal/version"
	"github.com/arthur-debert/minimessage/pkg/cobrax/topics"
	"github.com/arthur-debert/minimessage/pkg/logging"
	"github.com/arthur-debert/minimessage/pkg/render"
)

//go:embed topics/*.md
var topicFiles embed.FS

// newRootCmd creates and returns the root command
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "minimessage",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.Bool("strict", false, MsgFlagStrict)
	flags.Bool("debug", false, MsgFlagDebug)
	flags.StringSlice("tags", nil, MsgFlagTags)
	flags.String("presets", "", MsgFlagPresets)
	flags.String("format", "", MsgFlagFormat)
	flags.String("color", "", MsgFlagColor)

	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(render.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(render.ColorModes, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newTagsCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	installTopics(rootCmd)
	return rootCmd
}

func installTopics(rootCmd *cobra.Command) {
	source, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m, err := topics.New(source, topics.Options{
		Renderer: topics.NewGlamourRenderer(render.IsTerminal(os.Stdout)),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m.Install(rootCmd)
}
