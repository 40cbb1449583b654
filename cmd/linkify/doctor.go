package linkify

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/konradko/linkify/pkg/config"
	"github.com/konradko/linkify/pkg/logging"
	"github.com/konradko/linkify/pkg/paths"
)

func newDoctorCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: MsgDoctorShort,
		Long:  MsgDoctorLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			ctx, err := paths.NewContext()
			if err != nil {
				return err
			}

			home := ctx.Home
			if home == "" {
				home = "(unknown, ~/ matching disabled)"
			}

			data := pterm.TableData{
				{"Fact", "Value"},
				{"Hostname", ctx.Hostname},
				{"Home directory", home},
				{"Working directory", ctx.WorkDir},
				{"Directory entries", pterm.Sprintf("%d", len(ctx.Entries))},
				{"Config file", config.UserConfigPath()},
				{"Log file", logging.LogFilePath()},
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return err
			}

			pterm.DefaultSection.Println("Recognized absolute prefixes")
			pterm.Println(strings.Join(cfg.Paths.AbsolutePrefixes, " "))
			return nil
		},
	}
}
