package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/dada-poem/internal/config"
	"github.com/ironsheep/dada-poem/internal/dada"
	"github.com/ironsheep/dada-poem/internal/language"
	"github.com/ironsheep/dada-poem/internal/ocr"
	"github.com/ironsheep/dada-poem/internal/wordclass"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad invocations, which exit with status 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// exitCodeError carries an exit status for errors that were already reported.
type exitCodeError int

func (e exitCodeError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

type options struct {
	configPath string
	lang       string
	lines      int
	addr       string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and returns the process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var code exitCodeError
	if errors.As(err, &code) {
		return int(code)
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	var usage usageError
	if errors.As(err, &usage) {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		return exitUsage
	}
	return exitError
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dada-poem [flags] <image>",
		Short: "Turn a screenshot into a Dada poem",
		Long: `dada-poem reads the text in a screenshot, keeps its nouns and verbs and
shuffles them into a nonsensical poem.

Environment variables:
  DADA_POEM_LOG_LEVEL=debug    Enable debug logging
  DADA_POEM_MODEL_DIR          Directory with the part-of-speech models
  DADA_POEM_OCR_LANGUAGES      Tesseract languages, e.g. deu+eng`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{fmt.Errorf("expected exactly one image path, got %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoem(cmd, opts, args[0])
		},
	}
	root.SetVersionTemplate(versionText())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.Flags().StringVar(&opts.lang, "lang", "", "language override (de or en); detected when empty")
	root.Flags().IntVar(&opts.lines, "lines", 0, "number of poem lines (default from config, 6)")

	root.AddCommand(newServeCmd(opts), newVersionCmd())
	return root
}

// loadConfig reads the config file and environment and applies flag
// overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("lines"); f != nil && f.Changed {
		cfg.Lines = opts.lines
	}
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		cfg.Addr = opts.addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, usageError{err}
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.Debugf("dada-poem v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	return log
}

func newEngine(cfg *config.Config) *ocr.Engine {
	return ocr.NewEngine(ocr.Options{
		Languages:      cfg.OCRLanguages,
		TessdataPrefix: cfg.TessdataPrefix,
		Preprocess:     cfg.Preprocess,
	})
}

func newGenerator(cfg *config.Config, extractor dada.TextExtractor, log logrus.FieldLogger) *dada.Generator {
	return &dada.Generator{
		Extractor: extractor,
		Models:    wordclass.NewRegistry(cfg.ModelDir),
		Lines:     cfg.Lines,
		Log:       log,
	}
}

func runPoem(cmd *cobra.Command, opts *options, imagePath string) error {
	var override language.Code
	if opts.lang != "" {
		code, err := language.Parse(opts.lang)
		if err != nil {
			return usageError{err}
		}
		override = code
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	if _, err := os.Stat(imagePath); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: file '%s' does not exist.\n", imagePath)
		return exitCodeError(exitError)
	}

	gen := newGenerator(cfg, newEngine(cfg), log)
	return printPoem(cmd.Context(), cmd.OutOrStdout(), gen, imagePath, override)
}

// poemGenerator is the part of dada.Generator the CLI uses.
type poemGenerator interface {
	Generate(ctx context.Context, imagePath string, override language.Code) (*dada.Result, error)
}

func printPoem(ctx context.Context, out io.Writer, gen poemGenerator, imagePath string, override language.Code) error {
	res, err := gen.Generate(ctx, imagePath, override)
	if err != nil {
		return err
	}

	switch res.Outcome {
	case dada.OutcomeNoText:
		fmt.Fprintln(out, "No text detected in the image.")
	case dada.OutcomeNoWords:
		fmt.Fprintf(out, "%s (no nouns or verbs found).\n", dada.NoWordsLine)
	default:
		fmt.Fprintln(out)
		for _, line := range res.Lines {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
