package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driving"
	"github.com/custodia-labs/timexy/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

const envPrefix = "TIMEXY"

// Options carries the locations resolved from flags and environment.
type Options struct {
	ConfigDir string
	DataDir   string
}

// AnnotatorFactory builds an annotator for a language identifier.
type AnnotatorFactory func(language string) (driving.AnnotationService, error)

// IngestorFactory builds an ingest service around an annotator.
// When save is false documents are annotated but not stored.
type IngestorFactory func(
	annotator driving.AnnotationService,
	cfg domain.Config,
	save bool,
	onResult driving.ResultHandler,
) driving.IngestService

// Services bundles what the commands need. Nil fields disable the
// commands that depend on them.
type Services struct {
	Config    driving.ConfigService
	Documents driving.DocumentService
	Annotator AnnotatorFactory
	Ingestor  IngestorFactory

	// Close releases stores opened by the bootstrap.
	Close func() error
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var (
	configService    driving.ConfigService
	documentService  driving.DocumentService
	annotatorFactory AnnotatorFactory
	ingestorFactory  IngestorFactory
	closeServices    func() error

	bootstrap Bootstrap
	v         = newViper()
)

var rootCmd = &cobra.Command{
	Use:   "timexy",
	Short: "Recognise dates and durations in text",
	Long: `timexy finds temporal expressions in plain text and annotates them
with normalised values: calendar dates as TIMEX3 dates or Unix timestamps,
and durations as ISO-8601 periods.

Settings are read from ~/.timexy/config.toml and can be overridden with
TIMEXY_* environment variables or the flags below.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("lang", "", "language of the rule table (en, de, fr)")
	flags.String("label", "", "annotation label for recognised spans")
	flags.String("kb-id-type", "", "date value format (timex3, timestamp)")
	flags.Bool("overwrite", false, "replace annotations carrying another label")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("config-dir", "", "configuration directory (default ~/.timexy)")
	flags.String("data-dir", "", "document database directory (default ~/.timexy/data)")

	for _, name := range []string{"lang", "label", "kb-id-type", "overwrite", "verbose", "config-dir", "data-dir"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// newViper layers TIMEXY_* environment variables over the flags, so
// TIMEXY_KB_ID_TYPE resolves the "kb-id-type" key.
func newViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	return vp
}

// Configure installs services directly, bypassing the bootstrap.
func Configure(s *Services) {
	if s == nil {
		s = &Services{}
	}
	configService = s.Config
	documentService = s.Documents
	annotatorFactory = s.Annotator
	ingestorFactory = s.Ingestor
	closeServices = s.Close
}

// Execute runs the root command. The bootstrap is invoked once, after
// flag parsing, unless services were installed with Configure.
func Execute(b Bootstrap) error {
	bootstrap = b
	defer func() { bootstrap = nil }()

	err := rootCmd.Execute()
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil && err == nil {
			err = cerr
		}
		closeServices = nil
	}
	return err
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(v.GetBool("verbose"))

	if bootstrap == nil || annotatorFactory != nil {
		return nil
	}
	s, err := bootstrap(Options{
		ConfigDir: v.GetString("config-dir"),
		DataDir:   v.GetString("data-dir"),
	})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	Configure(s)
	return nil
}

// effectiveConfig merges stored settings with flag and environment
// overrides and returns the config with the language to annotate in.
func effectiveConfig() (domain.Config, string, error) {
	cfg := domain.DefaultConfig()
	lang := ""
	if configService != nil {
		stored, err := configService.Get()
		if err != nil {
			return cfg, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = stored
		lang = configService.GetLanguage()
	}

	if v.IsSet("label") {
		cfg.Label = v.GetString("label")
	}
	if v.IsSet("kb-id-type") {
		kbid, err := domain.ParseKBIDType(v.GetString("kb-id-type"))
		if err != nil {
			return cfg, "", err
		}
		cfg.KBIDType = kbid
	}
	if v.IsSet("overwrite") {
		cfg.Overwrite = v.GetBool("overwrite")
	}
	if v.IsSet("lang") {
		lang = v.GetString("lang")
	}
	if lang == "" {
		lang = "en"
	}

	return cfg, lang, cfg.Validate()
}

// newAnnotator resolves the effective settings and builds an annotator.
func newAnnotator() (driving.AnnotationService, domain.Config, error) {
	if annotatorFactory == nil {
		return nil, domain.Config{}, errors.New("annotator not configured")
	}
	cfg, lang, err := effectiveConfig()
	if err != nil {
		return nil, cfg, err
	}
	annotator, err := annotatorFactory(lang)
	if err != nil {
		return nil, cfg, err
	}
	return annotator, cfg, nil
}
