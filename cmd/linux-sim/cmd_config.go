package main

import (
	"errors"
	"fmt"
	"slices"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zoro11031/linux-sim/internal/common"
	"github.com/zoro11031/linux-sim/internal/config"
	"github.com/zoro11031/linux-sim/internal/ui"
)

var resetForce bool

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Defaults), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	return fmt.Errorf("unknown key %s, did you mean %s?", key, closest)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Defaults), cobra.ShellCompDirectiveNoFileComp
}

func checkKey(key string) error {
	if _, ok := config.Defaults[key]; !ok {
		return errUnknownKey(key)
	}
	return nil
}

// loadConfig opens the config file selected by --config, printing to cmd's output
func loadConfig(cmd *cobra.Command) (*config.Config, *ui.UI, error) {
	cfg := config.NewWithFs(appFs, configPath)
	if err := cfg.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, ui.NewWithWriter(cmd.OutOrStdout()), nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage simulator settings",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every setting, its value and where the value comes from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, out, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out.Header("Simulator Configuration")
		out.Infof("Configuration file: %s", cfg.FilePath())
		out.Separator()

		keys := lo.Keys(config.Defaults)
		slices.Sort(keys)
		for _, key := range keys {
			source := "default"
			if cfg.Exists(key) {
				source = "file"
			}
			out.Printf("  %-15s = %-20q (%s)", key, cfg.GetOrDefault(key, ""), source)
			out.Printf("      → %s", config.Descriptions[key])
		}

		unknown := lo.Filter(lo.Keys(cfg.GetAll()), func(key string, _ int) bool {
			return checkKey(key) != nil
		})
		if len(unknown) > 0 {
			slices.Sort(unknown)
			out.Separator()
			for _, key := range unknown {
				out.Warningf("Unknown key %s is ignored (remove it with: config unset %s)", key, key)
			}
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if err := checkKey(key); err != nil {
			return err
		}

		cfg, out, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		value, err := cfg.Get(key)
		if errors.Is(err, config.ErrKeyNotFound) {
			value = config.Defaults[key]
		} else if err != nil {
			return err
		}
		out.Print(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Change a setting",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := checkKey(key); err != nil {
			return err
		}
		if err := common.ValidateKey(key, value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		cfg, out, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Set(key, value); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		out.Successf("%s set to %q", key, value)
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:               "unset <key>",
	Short:             "Remove a setting so it falls back to its default",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		cfg, out, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// unknown keys left in the file can still be removed
		if !cfg.Exists(key) {
			if err := checkKey(key); err != nil {
				return err
			}
			out.Infof("%s is not set; using default %q", key, config.Defaults[key])
			return nil
		}

		if err := cfg.Delete(key); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		if def, ok := config.Defaults[key]; ok {
			out.Successf("%s unset (default %q)", key, def)
		} else {
			out.Successf("%s removed", key)
		}
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every setting to its default",
	Long: `Remove all settings from the configuration file so every key falls back
to its default value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, out, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// Confirmation prompt
		if !resetForce {
			out.Header("Reset Configuration")
			out.Warning("All settings will return to their defaults")
			out.Warningf("  %s", cfg.FilePath())
			out.Print("")

			confirm, err := out.PromptYesNo("Are you sure you want to reset?", false)
			if err != nil {
				return err
			}
			if !confirm {
				out.Info("Reset cancelled")
				return nil
			}
		}

		out.Step("Resetting configuration")
		if err := cfg.Reset(); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}

		out.Separator()
		out.Success("Reset complete!")
		return nil
	},
}

func init() {
	configResetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")

	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
