// Package main provides the CLI entry point for quizdeck.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"quizdeck/pkg/deck"
	"quizdeck/pkg/deck/output"
)

var (
	headerPattern string
	sheet         string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quizdeck [input.xlsx] [output.json]",
		Short: "Convert an XLSX quiz workbook into a JSON deck",
		Long: `quizdeck reads a quiz workbook where each question starts with a
header cell (default: cells beginning with TK) and the rows below it up
to the next header are its answers, and writes the result as JSON.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&headerPattern, "header-pattern", deck.DefaultHeaderPattern,
		"Pattern that matches question header cells, case-insensitive")
	rootCmd.Flags().StringVar(&sheet, "sheet", deck.DefaultSheet,
		"Worksheet XML name (sheet1, sheet2...)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := filepath.Join("public", "deck.json")
	if len(args) == 2 {
		outputPath = args[1]
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := deck.Options{
		HeaderPattern: headerPattern,
		Sheet:         sheet,
	}

	cards, err := deck.Convert(inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	jsonData, err := output.ToJSON(cards)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Wrote %d cards to %s\n", len(cards), outputPath)
	return nil
}
