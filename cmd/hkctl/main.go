// Package main provides the hkctl command line tool for inspecting
// and exercising the global hotkey stack.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hotkey "github.com/uncrumpled2/jai-system-hotkey"
	"github.com/uncrumpled2/jai-system-hotkey/doctor"
	"github.com/uncrumpled2/jai-system-hotkey/internal/config"
)

// Build information set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hkctl",
	Short: "Inspect and exercise global hotkeys",
	Long:  `hkctl checks hotkey support on this machine, validates combos and configs, and lists the key names the parser accepts.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("hkctl %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", buildDate)
	},
}

var doctorCombo string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run interactive system diagnostics",
	Run: func(_ *cobra.Command, _ []string) {
		os.Exit(doctor.Run(doctorCombo))
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every key and modifier name the combo parser accepts",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("Modifiers: ctrl, shift, alt, super")
		fmt.Println("  aliases: control, option, opt, win, cmd, meta")
		fmt.Println()
		fmt.Println("Keys:")
		col := 0
		for _, k := range hotkey.Keys() {
			fmt.Printf("  %-14s", k)
			col++
			if col == 6 {
				fmt.Println()
				col = 0
			}
		}
		if col != 0 {
			fmt.Println()
		}
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <combo>",
	Short: "Parse a combo string and print its normalized form",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		hk, err := hotkey.ParseCombo(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("combo:     %s\n", hk)
		fmt.Printf("modifiers: %s\n", hk.Mods)
		fmt.Printf("key:       %s\n", hk.Key)
		return nil
	},
}

var configPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Work with the hktray config file",
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file and list its bindings",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		fmt.Printf("config OK: %d bindings\n", len(cfg.Bindings))
		for _, b := range cfg.Bindings {
			hk, _ := hotkey.ParseCombo(b.Combo)
			fmt.Printf("  %s -> %s\n", hk, b.Action)
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.Save(config.Default(), path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorCombo, "combo", "ctrl+shift+space", "Combo used for the press-detection check")
	configCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: per-user config dir)")
	configCmd.AddCommand(configCheckCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
