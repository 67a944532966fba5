package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dm329/equipcat/pkg/equipcat"
	"github.com/dm329/equipcat/pkg/equipcat/output"
	"github.com/dm329/equipcat/pkg/equipcat/report"
	"github.com/dm329/equipcat/pkg/equipcat/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	defaultDBPath = "equipment_catalog.db"
	dbPathEnv     = "EQUIPCAT_DB"
	maxSkipLines  = 10
)

var (
	dbPath      string
	dryRun      bool
	entriesPath string
	batchSize   int
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [catalog.json]",
		Short: "Import the extracted catalog into the SQLite equipment catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runImport,
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default: $"+dbPathEnv+" or "+defaultDBPath+")")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and summarize without writing to the database")
	cmd.Flags().StringVar(&entriesPath, "entries", "", "Also write the resolved entries as JSON to this path")
	cmd.Flags().IntVar(&batchSize, "batch-size", store.DefaultBatchSize, "Entries per transaction")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	inputPath := equipcat.DefaultCatalogPath
	if len(args) > 0 {
		inputPath = args[0]
	}

	catalog, err := equipcat.LoadCatalog(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	entries, skipped, err := equipcat.ResolveEntries(catalog, report.DefaultMapping())
	if err != nil {
		return fmt.Errorf("failed to resolve entries: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Righe valide: %d\n", len(entries))
	printSkipped(out, skipped)

	fmt.Fprintln(out, "\n=== STATISTICHE PER TIPOLOGIA ===")
	for _, c := range equipcat.CountByForm(entries) {
		fmt.Fprintf(out, "  %-25s : %d modelli\n", c.Label, c.Count)
	}

	if entriesPath != "" {
		data, err := output.EntriesToJSON(entries, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(entriesPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write entries: %w", err)
		}
	}

	if dryRun {
		return nil
	}

	path := resolveDBPath()
	slog.Info("importing catalog", "db", path, "entries", len(entries))

	ctx := cmd.Context()
	st, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer st.Close()

	res, err := st.Upsert(ctx, entries, batchSize)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	for _, batchErr := range res.BatchErrors {
		slog.Error("batch failed", "error", batchErr)
	}

	fmt.Fprintln(out, "\n=== RIEPILOGO IMPORTAZIONE ===")
	fmt.Fprintf(out, "  Inserite: %d\n", res.Inserted)
	fmt.Fprintf(out, "  Aggiornate: %d\n", res.Updated)
	fmt.Fprintf(out, "  Errori: %d\n", res.Failed)

	if total, err := st.CountActive(ctx); err != nil {
		slog.Warn("could not count catalog", "error", err)
	} else {
		fmt.Fprintf(out, "\nTotale apparecchiature nel catalogo: %d\n", total)
	}

	if res.Failed > 0 {
		return fmt.Errorf("%d entries failed to import", res.Failed)
	}
	return nil
}

func printSkipped(w io.Writer, skipped []equipcat.SkippedRow) {
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintf(w, "Righe saltate: %d\n", len(skipped))
	for i, s := range skipped {
		if i == maxSkipLines {
			fmt.Fprintf(w, "  ... e altre %d righe\n", len(skipped)-maxSkipLines)
			break
		}
		fmt.Fprintf(w, "  riga %d: %s\n", s.Row, s.Reason)
	}
}

// resolveDBPath picks the --db flag, then $EQUIPCAT_DB (a .env file is
// loaded first when present), then the default path.
func resolveDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env", "error", err)
	}
	if p := os.Getenv(dbPathEnv); p != "" {
		return p
	}
	return defaultDBPath
}
