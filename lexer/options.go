package lexer

// CommentStyle selects which comment syntax the scanner recognizes.
type CommentStyle int

const (
	// CommentStyleCPP recognizes "//" line comments and "/* */" block comments.
	CommentStyleCPP CommentStyle = iota
	// CommentStyleShell recognizes "#" line comments only.
	CommentStyleShell
)

// Options holds the six behavioral knobs described in the tokenizer's
// external interface. The zero value is not the default configuration --
// use NewOptions (or New, which applies it) to get RequireSpaceAfterNumber
// defaulted on.
type Options struct {
	AllowFAfterFloat        bool
	CommentStyle            CommentStyle
	RequireSpaceAfterNumber bool
	AllowMultilineStrings   bool
	ReportWhitespace        bool
	ReportNewlines          bool
}

// NewOptions returns the default configuration: C++-style comments, a
// required space between a number and a following identifier, everything
// else off.
func NewOptions() Options {
	return Options{RequireSpaceAfterNumber: true}
}

// Option configures a Tokenizer at construction time.
type Option func(*Tokenizer)

// WithAllowFAfterFloat allows a trailing f/F suffix to force FLOAT
// classification on an otherwise-integer-looking number.
func WithAllowFAfterFloat(v bool) Option {
	return func(t *Tokenizer) { t.opts.AllowFAfterFloat = v }
}

// WithCommentStyle selects "//"/"/* */" comments or "#" comments.
func WithCommentStyle(style CommentStyle) Option {
	return func(t *Tokenizer) { t.opts.CommentStyle = style }
}

// WithRequireSpaceAfterNumber controls whether an identifier character
// immediately following a number is an error.
func WithRequireSpaceAfterNumber(v bool) Option {
	return func(t *Tokenizer) { t.opts.RequireSpaceAfterNumber = v }
}

// WithAllowMultilineStrings permits literal newlines inside string literals.
func WithAllowMultilineStrings(v bool) Option {
	return func(t *Tokenizer) { t.SetAllowMultilineStrings(v) }
}

// WithReportWhitespace enables emitting WHITESPACE tokens. Disabling it also
// disables newline reporting, same as the runtime setter.
func WithReportWhitespace(v bool) Option {
	return func(t *Tokenizer) { t.SetReportWhitespace(v) }
}

// WithReportNewlines enables emitting NEWLINE tokens distinct from
// WHITESPACE. Enabling it also enables whitespace reporting, same as the
// runtime setter.
func WithReportNewlines(v bool) Option {
	return func(t *Tokenizer) { t.SetReportNewlines(v) }
}

// All six options are settable after construction too; report_whitespace and
// report_newlines are coupled exactly as described in the external
// interface: turning off whitespace reporting also turns off newline
// reporting, and turning on newline reporting also turns on whitespace
// reporting.

func (t *Tokenizer) AllowFAfterFloat() bool { return t.opts.AllowFAfterFloat }
func (t *Tokenizer) SetAllowFAfterFloat(v bool) {
	t.opts.AllowFAfterFloat = v
}

func (t *Tokenizer) CommentStyle() CommentStyle { return t.opts.CommentStyle }
func (t *Tokenizer) SetCommentStyle(style CommentStyle) {
	t.opts.CommentStyle = style
}

func (t *Tokenizer) RequireSpaceAfterNumber() bool { return t.opts.RequireSpaceAfterNumber }
func (t *Tokenizer) SetRequireSpaceAfterNumber(v bool) {
	t.opts.RequireSpaceAfterNumber = v
}

func (t *Tokenizer) AllowMultilineStrings() bool { return t.opts.AllowMultilineStrings }
func (t *Tokenizer) SetAllowMultilineStrings(v bool) {
	t.opts.AllowMultilineStrings = v
}

func (t *Tokenizer) ReportWhitespace() bool { return t.opts.ReportWhitespace }
func (t *Tokenizer) SetReportWhitespace(v bool) {
	t.opts.ReportWhitespace = v
	if !v {
		t.opts.ReportNewlines = false
	}
}

func (t *Tokenizer) ReportNewlines() bool { return t.opts.ReportNewlines }
func (t *Tokenizer) SetReportNewlines(v bool) {
	t.opts.ReportNewlines = v
	if v {
		t.opts.ReportWhitespace = true
	}
}
