package tui

import (
	"fmt"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"rabbithole/internal/domain"
	"rabbithole/internal/encyclopedia"
	"rabbithole/internal/gen"
)

// App holds everything the TUI needs: the content generation service,
// the curated vocabulary, and session defaults.
type App struct {
	Encyclopedia encyclopedia.Service
	Vocabulary   domain.Vocabulary
	Log          *zap.Logger

	Temperature  float64
	InitialTopic string

	// Rand seeds the random-topic picker; nil gets a fixed source.
	Rand *rand.Rand

	// IsInteractive gates startup on a real terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "rabbithole" command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "rabbithole",
		Short: "Infinite encyclopedia in your terminal",
		Long: `An interactive encyclopedia where every word of every answer is a
link to the next lookup. Definitions, comparisons, disambiguation,
questionable ASCII art, and a pinboard for the good bits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				app.InitialTopic = args[0]
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("rabbithole needs an interactive terminal")
			}
			logFlags(app.Log, cmd.Flags())
			return runTUI(app)
		},
		Args: cobra.MaximumNArgs(1),
	}

	root.Flags().Float64VarP(&app.Temperature, "temperature", "t", app.Temperature,
		fmt.Sprintf("creativity in [%.1f, %.1f], clamped", gen.MinTemperature, gen.MaxTemperature))
	root.Flags().StringVar(&app.InitialTopic, "topic", app.InitialTopic, "starting topic")

	return root
}

// logFlags records the effective flag values once at startup.
func logFlags(log *zap.Logger, flags *pflag.FlagSet) {
	if log == nil {
		return
	}
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			log.Debug("flag", zap.String("name", f.Name), zap.String("value", f.Value.String()))
		}
	})
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
