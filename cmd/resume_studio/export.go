package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	exportFormat         string
	exportFont           string
	exportPrimaryColor   string
	exportSecondaryColor string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored resume without starting the server",
	Long:  `Read the persisted resume document and write it as PDF, DOCX, HTML or all three.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "all", "Output format: pdf, docx, html or all")
	exportCmd.Flags().StringVar(&exportFont, "font", "", "Font family (overrides config default)")
	exportCmd.Flags().StringVar(&exportPrimaryColor, "primary-color", "", "Primary accent color")
	exportCmd.Flags().StringVar(&exportSecondaryColor, "secondary-color", "", "Secondary accent color")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	blobs, err := storage.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open state storage: %w", err)
	}
	defer blobs.Close()

	doc, _, err := loadState(blobs)
	if err != nil {
		return err
	}

	style := types.DefaultStyle()
	style.Template = types.Template(cfg.Template)
	if exportFont != "" {
		style.Font = exportFont
	}
	if exportPrimaryColor != "" {
		style.PrimaryColor = exportPrimaryColor
	}
	if exportSecondaryColor != "" {
		style.SecondaryColor = exportSecondaryColor
	}

	exporter, err := export.New(cfg.OutDir, cfg.ChromePath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if exportFormat == "all" {
		paths, err := exporter.ExportAll(ctx, doc, style)
		if err != nil {
			return err
		}
		for format, path := range paths {
			fmt.Printf("%s: %s\n", format, path)
		}
		return nil
	}

	format := export.Format(exportFormat)
	if !format.Valid() {
		return fmt.Errorf("unknown format %q (want pdf, docx, html or all)", exportFormat)
	}

	path, err := exporter.Export(ctx, doc, style, format)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
