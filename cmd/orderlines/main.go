// orderlines — пакетный режим: книга -> лист «訂單文字».
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"reorder-service/internal/config"
	"reorder-service/internal/fileio"
	orderSvc "reorder-service/internal/order/service"
	"reorder-service/internal/storage"
)

func main() {
	cfg := config.Load()

	workbook := flag.String("workbook", "", "xlsx/xls with source and catalog sheets")
	sourcePath := flag.String("source", "", "separate source file (csv/xlsx/xls)")
	catalogPath := flag.String("catalog", "", "separate catalog file (csv/xlsx/xls)")
	outPath := flag.String("out", "", "output file (.xlsx/.csv); default: write back into -workbook")
	includeSpec := flag.Bool("include-spec", cfg.IncludeSpec, "include 規格 in fragments")
	defaultUnit := flag.String("default-unit", cfg.DefaultUnit, "unit for bare numeric quantities")
	flag.Parse()

	logger := config.SetupLogger(cfg, true)
	cfg.IncludeSpec = *includeSpec
	cfg.DefaultUnit = *defaultUnit

	if err := run(cfg, logger, *workbook, *sourcePath, *catalogPath, *outPath); err != nil {
		logger.Error().Err(err).Msg("orderlines failed")
		os.Exit(1)
	}
}

func run(cfg config.Config, logger zerolog.Logger, workbook, sourcePath, catalogPath, outPath string) error {
	var (
		source, catalog [][]string
		srcName         string
		err             error
	)
	switch {
	case workbook != "":
		wb, err := readFile(workbook)
		if err != nil {
			return err
		}
		if source, err = wb.Lookup(cfg.SourceSheet); err != nil {
			return err
		}
		if catalog, err = wb.Lookup(cfg.CatalogSheet); err != nil {
			return err
		}
		srcName = workbook
		if outPath == "" {
			if wb.Format != fileio.FormatXLSX {
				return fmt.Errorf("-out is required for %s input", wb.Format)
			}
			outPath = workbook
		}
	case sourcePath != "" && catalogPath != "":
		src, err := readFile(sourcePath)
		if err != nil {
			return err
		}
		cat, err := readFile(catalogPath)
		if err != nil {
			return err
		}
		if source, err = src.SheetOrFirst(cfg.SourceSheet); err != nil {
			return err
		}
		if catalog, err = cat.SheetOrFirst(cfg.CatalogSheet); err != nil {
			return err
		}
		srcName = sourcePath
		if outPath == "" {
			return fmt.Errorf("-out is required with -source/-catalog")
		}
	default:
		flag.Usage()
		return fmt.Errorf("pass -workbook, or -source and -catalog")
	}

	// чтение и матчинг полностью до записи: при ошибке старый лист не трогаем
	res, err := orderSvc.Generate(source, catalog, cfg.Options(), logger)
	if err != nil {
		return err
	}
	if err := fileio.SaveTable(outPath, cfg.OutputSheet, orderSvc.OutputTable(res.Lines)); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Info().Str("out", outPath).Str("sheet", cfg.OutputSheet).Int("lines", len(res.Lines)).Msg("output written")

	if cfg.ArchiveDB != "" {
		a, err := storage.Open(cfg.ArchiveDB)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer a.Close()
		id, err := a.SaveRun(context.Background(), srcName, res)
		if err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
		logger.Info().Str("runId", id).Msg("run archived")
	}

	for _, l := range res.Lines {
		fmt.Println(l.Text)
	}
	return nil
}

func readFile(path string) (*fileio.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	wb, err := fileio.ReadWorkbook(f, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return wb, nil
}
