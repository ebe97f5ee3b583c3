// Package main provides the CLI entry point for the calendar extraction
// engine: one spreadsheet in, one JSON result envelope out.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samankwah/agromet-sub000/internal/config"
	"github.com/samankwah/agromet-sub000/internal/service/calendar"
	"github.com/samankwah/agromet-sub000/internal/workbook"
)

var (
	outputPath  string
	pretty      bool
	asCSV       bool
	configPath  string
	region      string
	district    string
	commodity   string
	poultryType string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "agromet [calendar.xlsx]",
		Short: "Extract normalized production calendars from spreadsheet files",
		Long: `agromet reverse-engineers human-authored crop and poultry production
calendars (activity rows, month/week columns, fill color as the activity
signal) into a normalized JSON calendar model.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&asCSV, "csv", false, "Treat the input as CSV instead of a spreadsheet")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config.toml with vocabulary/palette overrides")
	rootCmd.Flags().StringVar(&region, "region", "", "Region passed through into result metadata")
	rootCmd.Flags().StringVar(&district, "district", "", "District passed through into result metadata")
	rootCmd.Flags().StringVar(&commodity, "commodity", "", "Commodity passed through into result metadata")
	rootCmd.Flags().StringVar(&poultryType, "poultry-type", "", "Poultry type passed through into result metadata")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	kind := workbook.KindSpreadsheet
	if asCSV || strings.EqualFold(filepath.Ext(inputPath), ".csv") {
		kind = workbook.KindCSV
	}

	engine := calendar.NewEngine(cfg)
	result := engine.Parse(data, calendar.Options{
		Filename:    filepath.Base(inputPath),
		Kind:        kind,
		Region:      region,
		District:    district,
		Commodity:   commodity,
		PoultryType: poultryType,
	})

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	out = append(out, '\n')

	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else {
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}
	}

	if !result.Success {
		fmt.Fprintf(os.Stderr, "parse failed: %s\n", result.Error)
		os.Exit(1)
	}
	return nil
}

func loadConfig() (*config.AppConfig, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadDefault()
}
