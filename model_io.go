package saxvsm

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/timeseries-at-ytg/saxvsm/bow"
	"github.com/timeseries-at-ytg/saxvsm/compress"
	"github.com/timeseries-at-ytg/saxvsm/errs"
	"github.com/timeseries-at-ytg/saxvsm/format"
	"github.com/timeseries-at-ytg/saxvsm/internal/hash"
	"github.com/timeseries-at-ytg/saxvsm/internal/label"
	"github.com/timeseries-at-ytg/saxvsm/internal/options"
	"github.com/timeseries-at-ytg/saxvsm/sax"
	"github.com/timeseries-at-ytg/saxvsm/section"
	"github.com/timeseries-at-ytg/saxvsm/vsm"
)

// modelState is the serialized form of a fitted classifier. It captures both
// the configuration and every fitted artifact, so loading reproduces
// predictions exactly.
type modelState struct {
	NBins    int    `json:"n_bins"`
	Strategy string `json:"strategy"`
	Alphabet string `json:"alphabet,omitempty"`

	WindowSize         int     `json:"window_size,omitempty"`
	WindowFraction     float64 `json:"window_fraction,omitempty"`
	WindowStep         int     `json:"window_step,omitempty"`
	WindowStepFraction float64 `json:"window_step_fraction,omitempty"`

	NumerosityReduction bool `json:"numerosity_reduction"`
	UseIDF              bool `json:"use_idf"`
	SmoothIDF           bool `json:"smooth_idf"`
	SublinearTF         bool `json:"sublinear_tf"`

	Classes    []string    `json:"classes"`
	Vocabulary []string    `json:"vocabulary"`
	TFIDF      [][]float64 `json:"tfidf"`
	IDF        []float64   `json:"idf,omitempty"`
}

// saveConfig holds Save options.
type saveConfig struct {
	compression format.CompressionType
}

// SaveOption is a functional option for Save.
type SaveOption = options.Option[*saveConfig]

// WithCompression sets the codec used for the model payload. The default is
// Zstd.
func WithCompression(compression format.CompressionType) SaveOption {
	return options.NoError(func(cfg *saveConfig) {
		cfg.compression = compression
	})
}

// Save writes the fitted classifier to w as a model file: a fixed header
// (magic, version, codec, payload size, xxHash64 checksum) followed by the
// compressed state payload.
//
// Returns errs.ErrNotFitted when the classifier has not been fitted.
func (c *Classifier) Save(w io.Writer, opts ...SaveOption) error {
	if !c.fitted {
		return fmt.Errorf("%w: cannot save an unfitted classifier", errs.ErrNotFitted)
	}

	cfg := saveConfig{compression: format.CompressionZstd}
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(c.state())
	if err != nil {
		return fmt.Errorf("failed to serialize model state: %w", err)
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("failed to compress model payload: %w", err)
	}

	header := section.NewModelHeader(cfg.compression)
	header.PayloadSize = uint64(len(payload))
	header.Checksum = hash.Checksum(payload)

	if _, err := w.Write(header.Bytes()); err != nil {
		return fmt.Errorf("failed to write model header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write model payload: %w", err)
	}

	return nil
}

// maxPayloadSize bounds the payload allocation when loading a model file.
// Real payloads are a few MB at most even for large vocabularies; the header
// field is untrusted input and must not drive an arbitrary allocation.
const maxPayloadSize = 1 << 30

// Load reads a model file written by Save and returns a fitted classifier.
//
// Corrupted files fail with errs.ErrInvalidMagic, errs.ErrUnsupportedVersion,
// errs.ErrChecksumMismatch, or errs.ErrInvalidPayload.
func Load(r io.Reader) (*Classifier, error) {
	headerBytes := make([]byte, section.HeaderSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", errs.ErrInvalidHeaderSize, err)
	}

	var header section.ModelHeader
	if err := header.Parse(headerBytes); err != nil {
		return nil, err
	}

	if header.PayloadSize > maxPayloadSize {
		return nil, fmt.Errorf("%w: payload size %d exceeds the %d byte limit",
			errs.ErrInvalidPayload, header.PayloadSize, maxPayloadSize)
	}

	payload := make([]byte, header.PayloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: failed to read payload: %w", errs.ErrInvalidPayload, err)
	}
	if checksum := hash.Checksum(payload); checksum != header.Checksum {
		return nil, fmt.Errorf("%w: header records %#x, payload hashes to %#x",
			errs.ErrChecksumMismatch, header.Checksum, checksum)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	var state modelState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return fromState(&state)
}

// state captures the fitted classifier as a modelState.
func (c *Classifier) state() *modelState {
	s := &modelState{
		NBins:               c.cfg.nBins,
		Strategy:            c.cfg.strategy.String(),
		Alphabet:            string(c.cfg.alphabet),
		WindowSize:          c.cfg.windowSize.Size,
		WindowFraction:      c.cfg.windowSize.Fraction,
		WindowStep:          c.cfg.windowStep.Size,
		WindowStepFraction:  c.cfg.windowStep.Fraction,
		NumerosityReduction: c.cfg.numerosityReduction,
		UseIDF:              c.cfg.useIDF,
		SmoothIDF:           c.cfg.smoothIDF,
		SublinearTF:         c.cfg.sublinearTF,
		Classes:             c.labels.Classes(),
		Vocabulary:          c.vec.Terms(),
		IDF:                 c.vec.IDF(),
	}

	tfidf := c.vec.TFIDF()
	rows, cols := tfidf.Dims()
	s.TFIDF = make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		copy(row, tfidf.RawRowView(i))
		s.TFIDF[i] = row
	}

	return s
}

// fromState rebuilds a fitted classifier, re-validating every parameter
// through the same constructors Fit uses.
func fromState(s *modelState) (*Classifier, error) {
	strategy := format.StrategyFromString(s.Strategy)
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: unknown strategy %q", errs.ErrInvalidPayload, s.Strategy)
	}

	var alphabet []rune
	if s.Alphabet != "" {
		alphabet = []rune(s.Alphabet)
	}

	cfg := config{
		nBins:               s.NBins,
		strategy:            strategy,
		alphabet:            alphabet,
		windowSize:          bow.Window{Size: s.WindowSize, Fraction: s.WindowFraction},
		windowStep:          bow.Window{Size: s.WindowStep, Fraction: s.WindowStepFraction},
		numerosityReduction: s.NumerosityReduction,
		useIDF:              s.UseIDF,
		smoothIDF:           s.SmoothIDF,
		sublinearTF:         s.SublinearTF,
	}

	disc, err := sax.NewDiscretizer(cfg.nBins, cfg.strategy, cfg.alphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	ext, err := bow.NewExtractor(cfg.windowSize, cfg.windowStep, cfg.numerosityReduction)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	if len(s.Classes) != len(s.TFIDF) {
		return nil, fmt.Errorf("%w: %d classes but %d tf-idf rows",
			errs.ErrInvalidPayload, len(s.Classes), len(s.TFIDF))
	}

	c := &Classifier{cfg: cfg}
	vec, err := vsm.Restore(c.vsmConfig(), s.Vocabulary, s.TFIDF, s.IDF)
	if err != nil {
		return nil, err
	}

	c.disc = disc
	c.ext = ext
	c.vec = vec
	c.labels = label.Restore(s.Classes)
	c.fitted = true

	return c, nil
}
