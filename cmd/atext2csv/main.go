// Command atext2csv exports aText snippets to CSV, JSON, Espanso YAML, or
// plain text.
//
// With no input argument the default Data.atext location is auto-detected on
// Windows and macOS. With no format flags all formats are exported.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	atext "github.com/logicossoftware/go-atext"
	"github.com/urfave/cli/v3"
)

const version = "1.0.0"

type exportFormat struct {
	flag     string
	filename string
	write    func(io.Writer, []atext.Snippet) error
}

var formats = []exportFormat{
	{flag: "csv", filename: "atext_snippets.csv", write: atext.ExportCSV},
	{flag: "json", filename: "atext_snippets.json", write: atext.ExportJSON},
	{flag: "espanso", filename: "atext_espanso.yml", write: atext.ExportEspanso},
	{flag: "txt", filename: "atext_snippets.txt", write: atext.ExportTXT},
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("quiet") {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	input := cmd.Args().First()
	if input == "" {
		input = findDataFile()
		if input == "" {
			return fmt.Errorf("could not auto-detect Data.atext; pass the file path explicitly")
		}
		slog.Info("auto-detected data file", slog.String("path", input))
	}
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	outputDir := cmd.String("output-dir")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	slog.Info("parsing", slog.String("path", input), slog.Int64("bytes", info.Size()))

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	arc, err := atext.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}

	groups := make(map[string]struct{})
	for _, s := range arc.Snippets {
		groups[s.GroupPath()] = struct{}{}
	}
	slog.Info("decoded", slog.Int("snippets", len(arc.Snippets)), slog.Int("groups", len(groups)))

	if len(arc.Snippets) == 0 {
		slog.Warn("no snippets found in this file")
		return nil
	}

	exportAll := true
	for _, fm := range formats {
		if cmd.Bool(fm.flag) {
			exportAll = false
			break
		}
	}

	for _, fm := range formats {
		if !exportAll && !cmd.Bool(fm.flag) {
			continue
		}
		path := filepath.Join(outputDir, fm.filename)
		if err := writeExport(path, arc.Snippets, fm.write); err != nil {
			return fmt.Errorf("export %s: %w", fm.flag, err)
		}
		slog.Info("exported", slog.String("format", fm.flag), slog.String("path", path))
	}

	slog.Info("done", slog.Int("snippets", len(arc.Snippets)))
	return nil
}

func writeExport(path string, snippets []atext.Snippet, write func(io.Writer, []atext.Snippet) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(out, snippets); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// findDataFile locates the default aText database on the platforms the
// application ships for. Returns "" when nothing is found.
func findDataFile() string {
	switch runtime.GOOS {
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			return ""
		}
		return existing(filepath.Join(local, "com.trankynam.aText", "Data", "Data.atext"))
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return existing(filepath.Join(home, "Library", "Application Support", "com.trankynam.aText", "Data.atext"))
	}
	return ""
}

func existing(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func main() {
	cmd := &cli.Command{
		Name:      "atext2csv",
		Usage:     "Export aText snippets to open formats (CSV, JSON, Espanso YAML, TXT)",
		ArgsUsage: "[path/to/Data.atext]",
		Version:   version,
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "Directory to write export files to",
				Value:   ".",
				Sources: cli.EnvVars("ATEXT_OUTPUT_DIR"),
			},
			&cli.BoolFlag{Name: "csv", Usage: "Export as CSV (spreadsheet-compatible UTF-8 with BOM)"},
			&cli.BoolFlag{Name: "json", Usage: "Export as JSON"},
			&cli.BoolFlag{Name: "espanso", Usage: "Export as Espanso YAML match file"},
			&cli.BoolFlag{Name: "txt", Usage: "Export as human-readable text"},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress progress output",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
