package initializer

import (
	"io"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// SetupLogger builds a styled charmbracelet handler writing to out, installs it as
// the slog default and returns it.
func SetupLogger(cfg *config.Log, out io.Writer) *slog.Logger {
	// Define color styles for different log levels
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levels := []struct {
		level log.Level
		label string
		color lipgloss.AdaptiveColor
	}{
		{log.ErrorLevel, "ERROR", errorTxtColor},
		{log.InfoLevel, "INFO", infoTxtColor},
		{log.WarnLevel, "WARN", warnTxtColor},
		{log.DebugLevel, "DEBUG", debugTxtColor},
	}
	for _, l := range levels {
		styles.Levels[l.level] = lipgloss.NewStyle().
			SetString(l.label).
			Bold(true).
			Padding(0, 1).
			Foreground(l.color)
	}

	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["operation"] = lipgloss.NewStyle().Foreground(infoTxtColor)
	styles.Values["operation"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["account_id"] = lipgloss.NewStyle().Foreground(debugTxtColor)
	styles.Values["account_id"] = lipgloss.NewStyle().Bold(true)

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportCaller:    cfg.Level <= int(log.DebugLevel),
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
