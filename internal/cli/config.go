package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aam-007/syswiz/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one effective configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		v, ok := config.GetValue(cfg, args[0])
		if !ok {
			return fmt.Errorf("unknown key %q (known: %v)", args[0], config.Keys())
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a configuration value to the user config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, raw := args[0], args[1]
		v, err := config.ParseValue(key, raw)
		if err != nil {
			return err
		}
		path := config.UserConfigPath(flagConfig)

		// Never leave an invalid file behind: snapshot, write, reload,
		// and roll back if the result no longer validates.
		prior, priorErr := os.ReadFile(path)
		hadFile := priorErr == nil

		if err := config.WriteValue(path, key, v); err != nil {
			return err
		}
		if _, err := loadConfig(); err != nil {
			if hadFile {
				_ = os.WriteFile(path, prior, 0o600)
			} else {
				_ = os.Remove(path)
			}
			return fmt.Errorf("rejected %s = %v: %w", key, v, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v (written to %s)\n", key, v, path)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all effective configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := newOutput()
		if err != nil {
			return err
		}

		keys := config.Keys()
		if out.IsJSON() {
			m := make(map[string]any, len(keys))
			for _, k := range keys {
				v, _ := config.GetValue(cfg, k)
				m[k] = v
			}
			return out.Write(m)
		}

		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			v, _ := config.GetValue(cfg, k)
			rows = append(rows, []string{k, fmt.Sprint(v)})
		}
		return out.Table([]string{"KEY", "VALUE"}, rows)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}
