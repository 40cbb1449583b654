package linkify

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/konradko/linkify/internal/version"
	"github.com/konradko/linkify/pkg/config"
	"github.com/konradko/linkify/pkg/filter"
	"github.com/konradko/linkify/pkg/logging"
	"github.com/konradko/linkify/pkg/paths"
	"github.com/konradko/linkify/pkg/ui"
)

// NewRootCmd creates the root command and all subcommands.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		cfgFile   string
		when      string
	)

	rootCmd := &cobra.Command{
		Use:     "linkify",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(cfgFile, when, os.Stdin, os.Stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/linkify/config.toml)")
	rootCmd.Flags().StringVar(&when, "when", "", "When to emit hyperlinks: auto, always or never (overrides config)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newDoctorCmd(&cfgFile))
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

// runStream wires config, context and filter together and processes the
// stream from in to out.
func runStream(cfgFile, when string, in io.Reader, out *os.File) error {
	defer logging.LogDuration(time.Now(), "stream")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if when == "" {
		when = cfg.Output.When
	}
	mode, err := ui.ParseMode(when)
	if err != nil {
		return err
	}

	if !ui.ShouldLink(mode, out) {
		log.Debug().Stringer("mode", mode).Msg("Hyperlinks disabled, passing stream through")
		_, err := io.Copy(out, in)
		return err
	}

	ctx, err := paths.NewContext()
	if err != nil {
		return err
	}

	return filter.New(ctx, cfg.Paths.AbsolutePrefixes).Run(in, out)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion script",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man [directory]",
		Short:  "Generate man pages",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{Title: "LINKIFY", Section: "1"}
			return doc.GenManTree(cmd.Root(), header, args[0])
		},
	}
}
