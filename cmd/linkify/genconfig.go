package linkify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/konradko/linkify/pkg/config"
	"github.com/konradko/linkify/pkg/errors"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()

			if !write {
				fmt.Print(content)
				return nil
			}

			path := config.UserConfigPath()
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrInvalidInput, "config file already exists: %s", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, "failed to create config directory")
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, "failed to write config file")
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to the user config path instead of stdout")

	return cmd
}
