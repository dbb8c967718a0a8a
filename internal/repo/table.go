package repo

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/typinglab/bigram-backend/internal/app/appconfig"
)

// Table persists result tables and charts under the configured output
// folders. Writers are plain files; reruns overwrite in place so identical
// input produces byte-identical output.
type Table struct {
	tablesFolder string
	plotsFolder  string
}

func NewTable(conf *appconfig.Config) *Table {
	return &Table{
		tablesFolder: conf.OutputTablesFolder,
		plotsFolder:  conf.OutputPlotsFolder,
	}
}

func (r *Table) WriteCSV(name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(r.tablesFolder, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output tables folder")
	}

	path := filepath.Join(r.tablesFolder, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write header of %s", path)
	}
	if err := w.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write rows of %s", path)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "failed to flush %s", path)
	}

	log.Info().Str("table", name).Int("rows", len(rows)).Msg("wrote table")
	return nil
}

func (r *Table) WriteJSON(name string, v interface{}) error {
	if err := os.MkdirAll(r.tablesFolder, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output tables folder")
	}

	path := filepath.Join(r.tablesFolder, name)
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", name)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	log.Info().Str("file", name).Msg("wrote json")
	return nil
}

// CreatePlot opens a writer for a rendered chart file.
func (r *Table) CreatePlot(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(r.plotsFolder, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create output plots folder")
	}

	path := filepath.Join(r.plotsFolder, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", path)
	}
	return f, nil
}
