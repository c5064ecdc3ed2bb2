// Command tiltcard shows the tilt card in a window, plots its spring
// response and prints the default configuration.
package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/phanxgames/tiltcard"
	"github.com/spf13/cobra"
)

var (
	configFile    string
	scriptFile    string
	screenshotDir string
	watch         bool
	debug         bool
	showFPS       bool
	exitAfter     bool

	stiffness float64
	damping   float64
	duration  float64
	plotWidth int
	plotRows  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tiltcard",
		Short: "animated 3-D tilt card",
		RunE:  runCard,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "show the card in a window",
		RunE:  runCard,
	}
	runCmd.Flags().StringVar(&scriptFile, "script", "", "input script (YAML or JSON)")
	runCmd.Flags().BoolVar(&exitAfter, "exit", false, "exit when the script finishes")
	runCmd.Flags().StringVar(&screenshotDir, "screenshots", "", "screenshot output directory")
	runCmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
	runCmd.Flags().BoolVar(&debug, "debug", false, "log frame stats to stderr")
	runCmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS overlay")

	responseCmd := &cobra.Command{
		Use:   "response",
		Short: "plot the tilt spring's step response",
		RunE:  plotResponse,
	}
	responseCmd.Flags().Float64Var(&stiffness, "stiffness", 0, "override spring stiffness")
	responseCmd.Flags().Float64Var(&damping, "damping", 0, "override spring damping")
	responseCmd.Flags().Float64Var(&duration, "time", 1.0, "simulated seconds")
	responseCmd.Flags().IntVar(&plotWidth, "width", 72, "plot width in columns")
	responseCmd.Flags().IntVar(&plotRows, "height", 12, "plot height in rows")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		RunE:  printConfig,
	}

	rootCmd.AddCommand(runCmd, responseCmd, configCmd)
	return rootCmd
}

// loadConfig returns the config file's contents, or the defaults when no
// file was given.
func loadConfig() (tiltcard.Config, error) {
	if configFile == "" {
		return tiltcard.DefaultConfig(), nil
	}
	return tiltcard.LoadConfig(configFile)
}

func runCard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}
	if showFPS {
		cfg.Window.ShowFPS = true
	}

	rc := tiltcard.RunConfig{
		ScreenshotDir:      screenshotDir,
		ExitWhenScriptDone: exitAfter,
	}
	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		rc.Script, err = tiltcard.LoadScript(data)
		if err != nil {
			return err
		}
	}
	if watch {
		if configFile == "" {
			return fmt.Errorf("--watch needs --config")
		}
		w, err := tiltcard.WatchConfig(configFile)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		defer w.Close()
		rc.Reload = w.Configs
	}

	return tiltcard.Run(tiltcard.NewCard(cfg), rc)
}

func plotResponse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := cfg.Tilt
	if stiffness > 0 {
		p.Stiffness = stiffness
	}
	if damping > 0 {
		p.Damping = damping
	}
	if duration <= 0 || plotWidth < 2 {
		return fmt.Errorf("time and width must be positive")
	}
	samples := tiltcard.StepResponse(p, duration/float64(plotWidth-1), duration)
	graph := asciigraph.Plot(samples,
		asciigraph.Height(plotRows),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("step response, stiffness=%g damping=%g, %gs", p.Stiffness, p.Damping, duration)),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := tiltcard.MarshalConfig(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
