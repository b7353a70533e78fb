package gradient

import "strings"

// span is a half open byte range of scanned text.
type span struct {
	start, end int
}

// scanner splits text on separators found outside of parentheses. Nesting
// depth is the only state it keeps.
type scanner struct {
	text  string
	depth int
}

// split returns spans separated by top level bytes for which isSep returns
// true. isSep receives the remaining text starting at the separator.
func (s *scanner) split(isSep func(rest string) bool) []span {
	var spans []span
	start := 0
	s.depth = 0
	for i := 0; i < len(s.text); i++ {
		switch s.text[i] {
		case '(':
			s.depth++
		case ')':
			if s.depth > 0 {
				s.depth--
			}
		default:
			if s.depth == 0 && isSep(s.text[i:]) {
				spans = append(spans, span{start, i})
				start = i + 1
			}
		}
	}
	return append(spans, span{start, len(s.text)})
}

func (s *scanner) strings(spans []span) []string {
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, s.text[sp.start:sp.end])
	}
	return out
}

var layerKeywords = []string{",linear", ",radial", ",conic", ",repeating"}

// splitLayers separates stacked gradients. Layers are split only on top level
// commas immediately followed by gradient function name.
func splitLayers(text string) []string {
	s := &scanner{text: text}
	return s.strings(s.split(func(rest string) bool {
		if rest[0] != ',' {
			return false
		}
		for _, kw := range layerKeywords {
			if strings.HasPrefix(rest, kw) {
				return true
			}
		}
		return false
	}))
}

// splitArgs separates function arguments on top level commas.
func splitArgs(text string) []string {
	s := &scanner{text: text}
	return s.strings(s.split(func(rest string) bool {
		return rest[0] == ','
	}))
}

// splitWords separates stop token into words on top level whitespace. Closing
// parenthesis also ends the word, so "rgb(0,0,0)50%" gives two words.
func splitWords(text string) []string {
	var (
		words []string
		depth int
		start = -1
	)
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, text[start:end])
		}
		start = -1
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '(':
			if start < 0 {
				start = i
			}
			depth++
		case c == ')':
			if start < 0 {
				start = i
			}
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				flush(i + 1)
			}
		case depth == 0 && (c == ' ' || c == '\t' || c == '\n' || c == '\r'):
			flush(i)
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(text))
	return words
}
