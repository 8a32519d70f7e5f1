// Package lexer tokenizes SLU-C source text.
//
// The algorithm mirrors the reference implementation this language was
// distilled from: a single "split pattern" regular expression is built
// from the union of comment, string, signed-exponent float, and
// operator/delimiter alternatives, and each physical source line is split against it. Non-empty fragments
// left over after the split are classified in priority order (keyword or
// operator table, numeric literal, identifier, string literal, comment).
package lexer

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/sluc-lang/sluc/internal/diagnostics"
	"github.com/sluc-lang/sluc/internal/token"
)

var identRe = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)
var intRe = regexp.MustCompile(`^[0-9](_?[0-9])*$`)
var floatRe = regexp.MustCompile(`^(?:` +
	`[0-9](?:_?[0-9])*\.[0-9](?:_?[0-9])*(?:[eE][+-]?[0-9](?:_?[0-9])*)?` + // 1.5 or 1.5e2
	`|[0-9](?:_?[0-9])*[eE][+-]?[0-9](?:_?[0-9])*` + // 1e2, dotless exponent
	`|\.[0-9](?:_?[0-9])*(?:[eE][+-]?[0-9](?:_?[0-9])*)?` + // .5 or .5e2
	`)$`)

// splitPattern is built once from token.Operators: the longest lexemes are
// listed first so the alternation prefers "==" over "=", "<=" over "<",
// and so on, plus alternatives for double-quoted strings and line
// comments so both are kept intact as single fragments instead of being
// shredded by the operator alternatives.
//
// A float literal whose exponent carries a sign ("1e+2", "1.5e-3") is
// also an alternative, so the sign is not split off as an operator.
var splitPattern = buildSplitPattern()

func buildSplitPattern() *regexp.Regexp {
	ops := make([]string, 0, len(token.Operators))
	for lexeme := range token.Operators {
		ops = append(ops, regexp.QuoteMeta(lexeme))
	}
	// Longest-first so multi-character operators are not pre-empted by a
	// single-character prefix alternative.
	slices.SortFunc(ops, func(a, b string) int { return len(b) - len(a) })

	alternatives := []string{
		`"(?:[^"\\]|\\.)*"`, // string literal, backslash-escapes honored
		`//.*$`,             // line comment, consumes to end of line
		// float with a signed exponent
		`(?:\b[0-9](?:_?[0-9])*(?:\.[0-9](?:_?[0-9])*)?|\.[0-9](?:_?[0-9])*)[eE][+-][0-9](?:_?[0-9])*`,
	}
	alternatives = append(alternatives, ops...)

	pattern := `(` + strings.Join(alternatives, `|`) + `)`
	return regexp.MustCompile(pattern)
}

// Lexer scans SLU-C source text into a flat token slice. The zero value is
// not usable; construct with New.
type Lexer struct {
	tokens []token.Token
	pos    int
}

// New tokenizes source in full and returns a ready-to-use Lexer. Lexical
// errors (an input fragment that classifies as none of the recognized
// categories) are reported immediately as a *diagnostics.Error.
func New(source string) (*Lexer, error) {
	toks, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	return &Lexer{tokens: toks}, nil
}

func tokenize(source string) ([]token.Token, error) {
	var toks []token.Token
	scanner := bufio.NewScanner(strings.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		rawLine := scanner.Text()
		fragments := splitPattern.Split(rawLine, -1)
		matches := splitPattern.FindAllString(rawLine, -1)

		// regexp.Split interleaves the non-matching fragments; reassemble
		// the ordered token stream by walking fragments and matches in
		// lockstep the way the original line-splitting generator does.
		mi := 0
		for _, frag := range fragments {
			for _, piece := range strings.Fields(frag) {
				tok, err := classify(piece, line)
				if err != nil {
					return nil, err
				}
				toks = append(toks, tok)
			}
			if mi < len(matches) {
				m := matches[mi]
				mi++
				if strings.HasPrefix(m, "//") {
					continue // line comment: drop, do not emit a token
				}
				if strings.HasPrefix(m, `"`) {
					toks = append(toks, token.Token{Kind: token.STRINGLIT, Lexeme: m, Line: line})
					continue
				}
				if floatRe.MatchString(m) {
					toks = append(toks, token.Token{Kind: token.FLOATLIT, Lexeme: m, Line: line})
					continue
				}
				kind, ok := token.Operators[m]
				if !ok {
					return nil, diagnostics.Syntax(line, fmt.Sprintf("Unrecognized operator %q", m))
				}
				toks = append(toks, token.Token{Kind: kind, Lexeme: m, Line: line})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, diagnostics.Runtime(line, "failed reading source: "+err.Error())
	}
	toks = append(toks, token.Token{Kind: token.EOF, Lexeme: "EOF", Line: line + 1})
	return toks, nil
}

// classify assigns a Kind to a whitespace-delimited fragment that was not
// itself one of the split pattern's alternatives: a keyword, identifier,
// or numeric literal.
func classify(piece string, line int) (token.Token, error) {
	if token.Keywords[piece] {
		return token.Token{Kind: token.KEYWORD, Lexeme: piece, Line: line}, nil
	}
	if intRe.MatchString(piece) {
		return token.Token{Kind: token.INTLIT, Lexeme: piece, Line: line}, nil
	}
	if floatRe.MatchString(piece) {
		return token.Token{Kind: token.FLOATLIT, Lexeme: piece, Line: line}, nil
	}
	if identRe.MatchString(piece) {
		return token.Token{Kind: token.ID, Lexeme: piece, Line: line}, nil
	}
	return token.Token{}, diagnostics.Syntax(line, fmt.Sprintf("Unrecognized token %q", piece))
}

// Peek returns the token n positions ahead of the current position without
// consuming anything (n=0 is the next token to be returned by Next).
func (l *Lexer) Peek(n int) token.Token {
	idx := l.pos + n
	if idx >= len(l.tokens) {
		return l.tokens[len(l.tokens)-1] // EOF
	}
	return l.tokens[idx]
}

// Next consumes and returns the next token, repeating EOF once reached.
func (l *Lexer) Next() token.Token {
	tok := l.Peek(0)
	if l.pos < len(l.tokens) {
		l.pos++
	}
	return tok
}

// All returns every token scanned, including the trailing EOF. Used by the
// "tokens" dump external collaborator.
func (l *Lexer) All() []token.Token {
	return l.tokens
}
