package repo

import (
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"github.com/typinglab/bigram-backend/internal/app/appconfig"
	"github.com/typinglab/bigram-backend/internal/model"
)

// Observation loads raw trial rows from the experiment export tree: one CSV
// per participant session, grouped into subfolders per collection batch.
type Observation struct {
	root string
}

func NewObservation(conf *appconfig.Config) *Observation {
	return &Observation{
		root: conf.InputFolder,
	}
}

// Load walks the input tree and parses every *.csv file. The participant id
// comes from the filename (experiment_data_<USERID>_*.csv) and the group id
// from the subfolder. Rows whose trial id contains "intro-trial" are warmup
// rows and are dropped here.
func (r *Observation) Load(ctx context.Context) ([]*model.Observation, error) {
	var out []*model.Observation
	files := 0

	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".csv") {
			return nil
		}

		userID, ok := userIDFromFilename(d.Name())
		if !ok {
			log.Warn().Str("file", path).Msg("cannot derive user id from filename; skipping file")
			return nil
		}

		rel, err := filepath.Rel(r.root, filepath.Dir(path))
		if err != nil {
			return err
		}
		groupID := rel
		if groupID == "." {
			groupID = ""
		}

		rows, err := r.loadFile(path, userID, groupID, d.Name())
		if err != nil {
			return errors.Wrapf(err, "failed to load %s", path)
		}
		if len(rows) > 0 {
			files++
			out = append(out, rows...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk input folder %s", r.root)
	}

	log.Info().Int("files", files).Int("rows", len(out)).Str("folder", r.root).Msg("loaded observations")
	return out, nil
}

func (r *Observation) loadFile(path, userID, groupID, filename string) ([]*model.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cols := columnIndex(header)
	for _, required := range []string{"trialId", "chosenBigram", "unchosenBigram", "sliderValue"} {
		if _, ok := cols[required]; !ok {
			return nil, errors.Errorf("missing required column %q", required)
		}
	}

	var out []*model.Observation
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		trialID := field(record, cols, "trialId")
		if strings.Contains(trialID, "intro-trial") {
			continue
		}

		out = append(out, &model.Observation{
			GroupID:               groupID,
			UserID:                userID,
			Filename:              filename,
			TrialID:               trialID,
			ChosenBigram:          field(record, cols, "chosenBigram"),
			UnchosenBigram:        field(record, cols, "unchosenBigram"),
			ChosenBigramTime:      parseFloat(field(record, cols, "chosenBigramTime")),
			UnchosenBigramTime:    parseFloat(field(record, cols, "unchosenBigramTime")),
			ChosenBigramCorrect:   parseBool(field(record, cols, "chosenBigramCorrect")),
			UnchosenBigramCorrect: parseBool(field(record, cols, "unchosenBigramCorrect")),
			SliderValue:           parseFloat(field(record, cols, "sliderValue")),
			Text:                  field(record, cols, "text"),
		})
	}
	return out, nil
}

// userIDFromFilename extracts USERID from experiment_data_USERID_*.csv.
func userIDFromFilename(name string) (string, bool) {
	parts := strings.Split(name, "_")
	if len(parts) < 4 || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseFloat(s string) null.Float {
	if s == "" {
		return null.NewFloat(0, false)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.NewFloat(0, false)
	}
	return null.FloatFrom(v)
}

func parseBool(s string) null.Bool {
	switch strings.ToLower(s) {
	case "true", "1":
		return null.BoolFrom(true)
	case "false", "0":
		return null.BoolFrom(false)
	}
	return null.NewBool(false, false)
}
