// Package format turns displayed counter values into strings.
//
// Formatting is locale-aware through golang.org/x/text: plain values are
// rounded to whole numbers and digit-grouped for the configured locale,
// currency values get the configured symbol with zero decimals, and compact
// values use SI suffixes (1.2k, 3.4M).
//
// The mode is always chosen by the caller. DetectMode exists for callers that
// receive decorated strings (e.g. "₹1,200") and want to decide once, up front.
package format

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rileyhilliard/statdeck/internal/errors"
)

// Mode selects how a value is presented.
type Mode int

const (
	ModePlain Mode = iota
	ModeCurrency
	ModeCompact
)

// Placeholder is shown for values that are not finite numbers.
const Placeholder = "—"

// Defaults for the single supported locale/currency pair.
const (
	DefaultLocale   = "en-IN"
	DefaultCurrency = "INR"
	DefaultSymbol   = "₹"
)

// String returns the config name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeCurrency:
		return "currency"
	case ModeCompact:
		return "compact"
	default:
		return "plain"
	}
}

// ParseMode converts a config string into a Mode. Empty means plain.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return ModePlain, nil
	case "currency":
		return ModeCurrency, nil
	case "compact":
		return ModeCompact, nil
	default:
		return ModePlain, errors.New(errors.ErrFormat,
			fmt.Sprintf("Unknown format mode '%s'", s),
			"Use one of: plain, currency, compact")
	}
}

// DetectMode returns ModeCurrency when s contains a currency symbol
// (Unicode category Sc), ModePlain otherwise.
func DetectMode(s string) Mode {
	for _, r := range s {
		if unicode.Is(unicode.Sc, r) {
			return ModeCurrency
		}
	}
	return ModePlain
}

// Options configures a Formatter.
type Options struct {
	Locale   string // BCP 47 tag, e.g. "en-IN"
	Currency string // ISO 4217 code, e.g. "INR"
	Symbol   string // Symbol override; derived from Currency when empty
}

// DefaultOptions returns the en-IN / INR / ₹ options.
func DefaultOptions() Options {
	return Options{
		Locale:   DefaultLocale,
		Currency: DefaultCurrency,
		Symbol:   DefaultSymbol,
	}
}

// Formatter renders numbers for one locale and currency.
// It is immutable after construction and safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	symbol  string
	printer *message.Printer
}

// New builds a Formatter, validating the locale and currency code.
func New(opts Options) (*Formatter, error) {
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}

	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFormat,
			fmt.Sprintf("Invalid locale '%s'", opts.Locale),
			"Use a BCP 47 tag like en-IN or en-US")
	}

	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFormat,
			fmt.Sprintf("Unknown currency code '%s'", opts.Currency),
			"Use an ISO 4217 code like INR or USD")
	}

	p := message.NewPrinter(tag)

	symbol := opts.Symbol
	if symbol == "" {
		symbol = p.Sprint(currency.NarrowSymbol(unit))
	}

	return &Formatter{
		tag:     tag,
		unit:    unit,
		symbol:  symbol,
		printer: p,
	}, nil
}

// Default returns a Formatter for DefaultOptions. It panics only if the
// built-in defaults stop parsing, which would be a programming error.
func Default() *Formatter {
	f, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag { return f.tag }

// Currency returns the formatter's currency unit.
func (f *Formatter) Currency() currency.Unit { return f.unit }

// Symbol returns the currency symbol used for ModeCurrency.
func (f *Formatter) Symbol() string { return f.symbol }

// Format renders v in the given mode. Non-finite values render as Placeholder.
//
// Plain and currency values round half away from zero (see Round), so -1.5
// renders as -2 rather than the half-up -1. Magnitudes beyond the int64
// range render as ±9,223,372,036,854,775,807 in the locale's grouping.
func (f *Formatter) Format(v float64, mode Mode) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}

	switch mode {
	case ModeCurrency:
		return f.formatCurrency(v)
	case ModeCompact:
		return f.formatCompact(v)
	default:
		return f.Group(Round(v))
	}
}

// Group renders a whole number with the locale's digit grouping.
func (f *Formatter) Group(n int64) string {
	return f.printer.Sprintf("%d", n)
}

func (f *Formatter) formatCurrency(v float64) string {
	n := Round(v)
	if n < 0 {
		return "-" + f.symbol + f.Group(-n)
	}
	return f.symbol + f.Group(n)
}

func (f *Formatter) formatCompact(v float64) string {
	if math.Abs(v) < 1000 {
		return f.Group(Round(v))
	}
	return strings.ReplaceAll(humanize.SIWithDigits(v, 1, ""), " ", "")
}

// maxWhole is 2^63, the first float64 past the int64 range.
const maxWhole = float64(1 << 63)

// Round rounds half away from zero to a whole number. Values outside the
// int64 range saturate at ±math.MaxInt64, so the sign always survives.
func Round(v float64) int64 {
	r := math.Round(v)
	switch {
	case r >= maxWhole:
		return math.MaxInt64
	case r <= -maxWhole:
		return -math.MaxInt64
	}
	return int64(r)
}
