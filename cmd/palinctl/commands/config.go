package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"palinview/internal/config"
)

func configCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(configShowCmd(st), configInitCmd(st))
	return cmd
}

func configShowCmd(st *state) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch format {
			case "toml":
				return st.cfg.WriteTOML(out)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(st.cfg)
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(st.cfg)
			default:
				return fmt.Errorf("unknown format %q (want toml, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml, json or yaml")
	return cmd
}

func configInitCmd(st *state) *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		// A broken existing file must not stop init from replacing it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init(config.DefaultConfig(), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = st.configPath
			}
			if path == "" {
				path = config.ConfigPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			if err := config.Save(config.DefaultConfig(), path); err != nil {
				return err
			}
			st.log.Info("config written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "destination file; extension picks toml, json or yaml")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
