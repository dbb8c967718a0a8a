package appconfig

import (
	"github.com/typinglab/bigram-backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// InputFolder is the root folder walked for per-participant trial CSV
	// exports. Subfolder names become the rows' group id.
	InputFolder string `required:"true" split_words:"true"`

	// OutputTablesFolder receives the exported result tables.
	OutputTablesFolder string `split_words:"true" default:"output/tables"`

	// OutputPlotsFolder receives the rendered HTML charts.
	OutputPlotsFolder string `split_words:"true" default:"output/plots"`

	// EasyChoicePairsFile is the CSV of (good_choice, bad_choice) reference
	// pairs. Leaving this empty runs the pipeline with an empty reference
	// set: no row is flagged probable or improbable.
	EasyChoicePairsFile string `split_words:"true"`

	// RemovePairsFile is an optional headerless CSV of bigram pairs to drop
	// from the dataset before grouping, matched on the canonical pair key.
	RemovePairsFile string `split_words:"true"`

	// MaxImprobableChoices is the maximum number of improbable choices a
	// participant may make before being excluded. Negative means unlimited.
	MaxImprobableChoices int `split_words:"true" default:"0"`

	// MaxInconsistentChoices is the maximum number of inconsistent choices a
	// participant may make before being excluded. Negative means unlimited.
	MaxInconsistentChoices int `split_words:"true" default:"-1"`

	// EmitCharts controls whether per-user choice charts are rendered after
	// the tables are written.
	EmitCharts bool `split_words:"true" default:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print
	// logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// DevMode to indicate development mode. When true, logging is more
	// verbose.
	DevMode bool `split_words:"true"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}
