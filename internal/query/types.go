// Package query turns raw launcher input into a ranked, typed list of
// candidate actions.
//
// An ordered chain of interpreters examines each query; the first one to
// produce results wins. Interpreters that cannot handle a query decline
// silently and the chain continues, down to a fuzzy application match and
// finally a synthesized web search, so a non-empty query always resolves
// to at least one result.
package query

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/lumen-sh/lumen/internal/inventory"
)

// Kind tags the variant of a Result.
type Kind int

const (
	// KindApp launches an application from the inventory.
	KindApp Kind = iota
	// KindCalculation shows an evaluated arithmetic result.
	KindCalculation
	// KindShellCommand runs a shell command. Also used for the "type
	// more" placeholder hints produced by prefix interpreters with an
	// empty argument.
	KindShellCommand
	// KindWebSearch opens a web search for the query.
	KindWebSearch
	// KindURL opens a URL in the browser.
	KindURL
	// KindFile opens a file path.
	KindFile
	// KindEmoji copies an emoji glyph.
	KindEmoji
	// KindCurrency shows a currency conversion.
	KindCurrency
)

// String returns the lowercase tag name, used by the CLI output.
func (k Kind) String() string {
	switch k {
	case KindApp:
		return "app"
	case KindCalculation:
		return "calculation"
	case KindShellCommand:
		return "command"
	case KindWebSearch:
		return "web-search"
	case KindURL:
		return "url"
	case KindFile:
		return "file"
	case KindEmoji:
		return "emoji"
	case KindCurrency:
		return "currency"
	default:
		return "unknown"
	}
}

// Result is one candidate action. It is immutable once constructed; the
// ResultSet owning it is rebuilt from scratch on every query change.
type Result struct {
	Kind Kind

	// App is set for KindApp, carrying the matched inventory entry
	// (including the fuzzy match span when the name matched).
	App *inventory.Entry

	// Text carries the variant payload for calculation display, shell
	// command, web-search phrase, and URL results.
	Text string

	// Path is set for KindFile.
	Path string

	// EmojiName and Glyph are set for KindEmoji.
	EmojiName string
	Glyph     string

	// From, To, Amount are set for KindCurrency. Amount is the converted
	// value in the To currency.
	From   string
	To     string
	Amount float64
}

// AppResult wraps an inventory entry.
func AppResult(e inventory.Entry) Result {
	return Result{Kind: KindApp, App: &e}
}

// CalculationResult holds a formatted numeric result.
func CalculationResult(display string) Result {
	return Result{Kind: KindCalculation, Text: display}
}

// ShellCommandResult holds a command line (or a placeholder hint).
func ShellCommandResult(cmd string) Result {
	return Result{Kind: KindShellCommand, Text: cmd}
}

// WebSearchResult holds a search phrase.
func WebSearchResult(q string) Result {
	return Result{Kind: KindWebSearch, Text: q}
}

// URLResult holds a fully qualified URL.
func URLResult(u string) Result {
	return Result{Kind: KindURL, Text: u}
}

// FileResult holds a file path.
func FileResult(path string) Result {
	return Result{Kind: KindFile, Path: path}
}

// EmojiResult holds an emoji name and glyph.
func EmojiResult(name, glyph string) Result {
	return Result{Kind: KindEmoji, EmojiName: name, Glyph: glyph}
}

// CurrencyResult holds a conversion between two ISO codes.
func CurrencyResult(from, to string, amount float64) Result {
	return Result{Kind: KindCurrency, From: from, To: to, Amount: amount}
}

// Title renders a one-line human-readable label for the result.
func (r Result) Title() string {
	switch r.Kind {
	case KindApp:
		return r.App.Name
	case KindCalculation:
		return "= " + r.Text
	case KindShellCommand:
		return r.Text
	case KindWebSearch:
		return "Search the web: " + r.Text
	case KindURL:
		return "Open: " + r.Text
	case KindFile:
		return fmt.Sprintf("%s (%s)", filepath.Base(r.Path), filepath.Base(filepath.Dir(r.Path)))
	case KindEmoji:
		return r.Glyph + " :" + r.EmojiName
	case KindCurrency:
		return fmt.Sprintf("= %s %s", FormatAmount(r.Amount), r.To)
	default:
		return ""
	}
}

// FormatAmount renders a converted amount with two decimal places.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ResultSet is the ordered result list plus the selection cursor.
type ResultSet struct {
	results   []Result
	selection int
}

// NewResultSet wraps results with the selection at 0.
func NewResultSet(results []Result) *ResultSet {
	return &ResultSet{results: results}
}

// Results returns the ordered results.
func (s *ResultSet) Results() []Result {
	return s.results
}

// Len returns the result count.
func (s *ResultSet) Len() int {
	return len(s.results)
}

// Empty reports whether the set has no results.
func (s *ResultSet) Empty() bool {
	return len(s.results) == 0
}

// Selection returns the current cursor index. Meaningless when empty.
func (s *ResultSet) Selection() int {
	return s.selection
}

// Selected returns the result under the cursor.
func (s *ResultSet) Selected() (Result, bool) {
	if s.Empty() {
		return Result{}, false
	}
	return s.results[s.selection], true
}

// SetSelection carries a cursor position into this set. An index outside
// the valid range resets to 0 rather than clamping to the end.
func (s *ResultSet) SetSelection(i int) {
	if i < 0 || i >= len(s.results) {
		s.selection = 0
		return
	}
	s.selection = i
}

// Next moves the cursor down, wrapping to the top.
func (s *ResultSet) Next() {
	if s.Empty() {
		return
	}
	s.selection = (s.selection + 1) % len(s.results)
}

// Prev moves the cursor up, wrapping to the bottom.
func (s *ResultSet) Prev() {
	if s.Empty() {
		return
	}
	if s.selection == 0 {
		s.selection = len(s.results) - 1
		return
	}
	s.selection--
}
