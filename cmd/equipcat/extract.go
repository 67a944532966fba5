package main

import (
	"fmt"
	"os"

	"github.com/dm329/equipcat/pkg/equipcat"
	"github.com/dm329/equipcat/pkg/equipcat/output"
	"github.com/spf13/cobra"
)

var (
	outputPath  string
	compact     bool
	listsSheet  string
	modelsSheet string
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [workbook.xlsx]",
		Short: "Extract category, brand and model lists from the workbook as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Disable JSON indentation")
	cmd.Flags().StringVar(&listsSheet, "lists-sheet", equipcat.DefaultListsSheet, "Sheet holding category and brand lists")
	cmd.Flags().StringVar(&modelsSheet, "models-sheet", equipcat.DefaultModelsSheet, "Sheet holding model rows")
	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := equipcat.DefaultWorkbookPath
	if len(args) > 0 {
		inputPath = args[0]
	}

	opts := equipcat.Options{
		ListsSheet:  listsSheet,
		ModelsSheet: modelsSheet,
	}

	catalog, err := equipcat.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(catalog, !compact)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(jsonData)
	return err
}
