package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"qltview/internal/board"
	"qltview/internal/logging"
	"qltview/internal/tui"
)

var (
	cfgFile       string
	flagWidth     float64
	flagHeight    float64
	flagThickness float64
	logFile       string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "qltview [file]",
	Short: "Terminal viewer for QLT drill programs",
	Long: `qltview decodes a tab-separated QLT drill/route program, resolves its
coordinate expressions against the board dimensions (Dim1=height,
Dim2=width, Dim3=thickness), and plots the board outline and every
resolved hole in the terminal.

Malformed rows and expressions are skipped and reported, never fatal;
only an unreadable file aborts the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "board geometry TOML file")
	rootCmd.PersistentFlags().Float64Var(&flagWidth, "width", 0, "board width, overrides config")
	rootCmd.PersistentFlags().Float64Var(&flagHeight, "height", 0, "board height, overrides config")
	rootCmd.PersistentFlags().Float64Var(&flagThickness, "thickness", 0, "board thickness, overrides config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write diagnostics to this file (the TUI owns the terminal)")
}

// boardGeometry resolves the board dimensions: defaults, then the config
// file, then explicit flags.
func boardGeometry() (board.Geometry, error) {
	g := board.Default()
	if cfgFile != "" {
		var err error
		g, err = board.LoadConfig(cfgFile)
		if err != nil {
			return board.Geometry{}, err
		}
	}
	if flagWidth > 0 {
		g.Width = flagWidth
	}
	if flagHeight > 0 {
		g.Height = flagHeight
	}
	if flagThickness > 0 {
		g.Thickness = flagThickness
	}
	return g, nil
}

func logLevel() string {
	if verbose {
		return "debug"
	}
	return "warn"
}

func runView(cmd *cobra.Command, args []string) error {
	g, err := boardGeometry()
	if err != nil {
		return err
	}
	log := logging.Nop()
	if logFile != "" {
		log, err = logging.New(logging.Config{Level: logLevel(), Format: "json", OutputPath: logFile})
		if err != nil {
			return err
		}
		defer log.Sync()
	}
	var m tea.Model
	if len(args) == 1 {
		m = tui.NewWithPath(args[0], g, log)
	} else {
		m = tui.New(g, log)
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
