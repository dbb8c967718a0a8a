package repo

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/typinglab/bigram-backend/internal/app/appconfig"
	"github.com/typinglab/bigram-backend/internal/model"
)

// ErrMalformedReference is returned when the easy-choice reference CSV does
// not carry the expected good_choice / bad_choice columns. Callers may fall
// back to an empty reference set.
var ErrMalformedReference = errors.New("easy-choice reference file is missing good_choice/bad_choice columns")

// Reference loads the easy-choice reference pairs and the optional removal
// list of pairs to exclude from the dataset.
type Reference struct {
	easyChoicePairsFile string
	removePairsFile     string
}

func NewReference(conf *appconfig.Config) *Reference {
	return &Reference{
		easyChoicePairsFile: conf.EasyChoicePairsFile,
		removePairsFile:     conf.RemovePairsFile,
	}
}

// LoadEasyChoicePairs reads the (good_choice, bad_choice) reference table.
// An unset file path yields an empty reference set.
func (r *Reference) LoadEasyChoicePairs(ctx context.Context) ([]model.EasyChoicePair, error) {
	if r.easyChoicePairsFile == "" {
		log.Info().Msg("no easy-choice pairs file configured; running with an empty reference set")
		return nil, nil
	}

	f, err := os.Open(r.easyChoicePairsFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open easy-choice pairs file")
	}
	defer f.Close()

	pairs, err := parseEasyChoicePairs(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", r.easyChoicePairsFile)
	}

	log.Info().Int("pairs", len(pairs)).Str("file", r.easyChoicePairsFile).Msg("loaded easy-choice pairs")
	return pairs, nil
}

func parseEasyChoicePairs(rd io.Reader) ([]model.EasyChoicePair, error) {
	cr := csv.NewReader(rd)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrMalformedReference
	}
	if err != nil {
		return nil, err
	}

	cols := columnIndex(header)
	goodIdx, goodOK := cols["good_choice"]
	badIdx, badOK := cols["bad_choice"]
	if !goodOK || !badOK {
		return nil, ErrMalformedReference
	}

	var pairs []model.EasyChoicePair
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if goodIdx >= len(record) || badIdx >= len(record) {
			continue
		}
		pairs = append(pairs, model.EasyChoicePair{
			Plausible:   record[goodIdx],
			Implausible: record[badIdx],
		})
	}
	return pairs, nil
}

// LoadRemovePairs reads the optional headerless two-column removal list,
// canonicalized to pair keys. An unset file path yields no removals.
func (r *Reference) LoadRemovePairs(ctx context.Context) ([]model.PairKey, error) {
	if r.removePairsFile == "" {
		return nil, nil
	}

	f, err := os.Open(r.removePairsFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open remove pairs file")
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	var keys []model.PairKey
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", r.removePairsFile)
		}
		if len(record) < 2 {
			continue
		}
		keys = append(keys, model.NewPairKey(record[0], record[1]))
	}

	log.Info().Int("pairs", len(keys)).Str("file", r.removePairsFile).Msg("loaded remove pairs")
	return keys, nil
}
