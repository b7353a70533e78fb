// Package css pulls color values out of CSS text: inline declarations,
// rulesets or bare values surrounded by property noise.
package css

import (
	"io"
	"slices"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// ColorProperties are declarations which may carry color or gradient.
var ColorProperties = []string{"background", "background-image", "background-color", "color"}

// Declaration is a single property declaration.
type Declaration struct {
	Selector  string // empty for inline declarations
	Property  string // lower case
	Value     string
	Important bool
}

// Parser extracts declarations and color values from CSS text.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Declarations returns declarations found in text in document order. Text
// with braces is parsed as a stylesheet, otherwise as a list of inline
// declarations.
func (p *Parser) Declarations(text string) []Declaration {
	inline := !strings.Contains(text, "{")
	parser := css.NewParser(parse.NewInput(strings.NewReader(text)), inline)

	var (
		decls    []Declaration
		selector string
	)
	// every grammar consumes at least one byte, so this bounds recovery loop
	for range len(text) + 1 {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			if err == nil || err == io.EOF {
				return decls
			}
			p.log.Debug("CSS parse error", zap.Error(err))

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selector = parseSelector(parser.Values())

		case css.EndRulesetGrammar:
			selector = ""

		case css.DeclarationGrammar:
			d := Declaration{Selector: selector, Property: strings.ToLower(strings.TrimSpace(string(data)))}
			d.Value, d.Important = joinValue(parser.Values())
			if d.Value == "" {
				p.log.Debug("Skipping empty declaration", zap.String("property", d.Property))
				continue
			}
			decls = append(decls, d)

		case css.CustomPropertyGrammar:
			// custom properties (--var) never carry final colors
			continue
		}
	}
	return decls
}

// ExtractValue returns color value of the first color carrying declaration
// in raw. When raw has no declarations, raw itself is returned with wrapper
// noise removed: property names, ';', ':', braces, comments and vendor
// prefixes. Result is lower case.
func (p *Parser) ExtractValue(raw string) string {
	if strings.Contains(raw, ":") {
		for _, d := range p.Declarations(raw) {
			if slices.Contains(ColorProperties, d.Property) {
				p.log.Debug("Using declaration", zap.String("selector", d.Selector), zap.String("property", d.Property))
				return Clean(d.Value)
			}
		}
	}
	return Clean(raw)
}

var vendorPrefixes = strings.NewReplacer("-webkit-", "", "-moz-", "")

// Clean removes wrapper noise from CSS value text.
func Clean(raw string) string {
	l := css.NewLexer(parse.NewInput(strings.NewReader(raw)))

	var sb strings.Builder
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			s := vendorPrefixes.Replace(strings.ToLower(sb.String()))
			s = strings.Join(strings.Fields(s), " ")
			return strings.TrimSpace(strings.TrimRight(trimImportant(s), ", "))
		case css.CommentToken, css.ColonToken, css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken:
			sb.WriteByte(' ')
		case css.IdentToken:
			if slices.Contains(ColorProperties, strings.ToLower(string(data))) {
				continue
			}
			sb.Write(data)
		default:
			sb.Write(data)
		}
	}
}

// trimImportant drops trailing "!important" flag.
func trimImportant(s string) string {
	rest, ok := strings.CutSuffix(strings.TrimRight(s, ", "), "important")
	if !ok {
		return s
	}
	if rest, ok = strings.CutSuffix(strings.TrimSpace(rest), "!"); !ok {
		return s
	}
	return strings.TrimSpace(rest)
}

// joinValue builds value text from declaration tokens, whitespace runs become
// single space. Trailing "!important" is reported separately.
func joinValue(tokens []css.Token) (string, bool) {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	value := strings.TrimSpace(strings.Join(parts, ""))

	lower := strings.ToLower(value)
	if !strings.HasSuffix(lower, "important") {
		return value, false
	}
	rest := strings.TrimSpace(value[:len(value)-len("important")])
	if !strings.HasSuffix(rest, "!") {
		return value, false
	}
	return strings.TrimSpace(strings.TrimSuffix(rest, "!")), true
}

// parseSelector builds selector string from ruleset prelude tokens.
func parseSelector(values []css.Token) string {
	var sb strings.Builder
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}
