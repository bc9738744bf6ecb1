package parser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"funilaria_xpto/internal/domain/entities"
)

// ParseError is the fatal outcome of a single Parse call: the input was not
// parseable at all. Record-level problems never produce a ParseError — they
// are logged and skipped so parsing stays best-effort.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("estimate parse failed: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Parser turns raw EMS (pipe-delimited tabular) estimate exports into the
// canonical estimate shape shared with the BMS/XML parser.
type Parser struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// estimateBuilder is the parse-time accumulator. It lives on the stack of a
// single Parse call and is handed through the dispatch loop explicitly; there
// is no shared state between concurrent parses.
type estimateBuilder struct {
	est entities.CanonicalEstimate
}

// Parse converts the raw text of one EMS export into a CanonicalEstimate.
//
// Lines are tokenized and dispatched in order; unknown record types and short
// records degrade gracefully (see dispatch). Only catastrophic input — empty
// content or a panic inside tokenization/dispatch — returns an error, always
// a *ParseError carrying the original cause.
func (p *Parser) Parse(content string) (est entities.CanonicalEstimate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ParseError{Cause: fmt.Errorf("panic while parsing record: %v", r)}
		}
	}()

	if strings.TrimSpace(content) == "" {
		return entities.CanonicalEstimate{}, &ParseError{Cause: errors.New("empty estimate content")}
	}

	b := &estimateBuilder{}
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		fields := TokenizeRecord(line)
		if len(fields) == 0 {
			continue
		}
		b.est.Metadata.RawLineCount++
		p.dispatch(b, fields)
	}

	return b.snapshot(), nil
}

// snapshot finalizes the accumulator into the immutable canonical value.
func (b *estimateBuilder) snapshot() entities.CanonicalEstimate {
	est := b.est
	est.Metadata.SourceFormat = entities.SourceFormatEMS
	est.Metadata.ParsedAt = time.Now().UTC()

	// Some vendors omit the grand total from the TTL record; derive it so the
	// diff engine always has a comparable figure.
	if est.Financial.GrandTotal.IsZero() {
		est.Financial.GrandTotal = est.Financial.PartsTotal.
			Add(est.Financial.LaborTotal).
			Add(est.Financial.MaterialsTotal).
			Add(est.Financial.TaxTotal)
	}
	return est
}
