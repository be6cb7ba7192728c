package scalar

import "strconv"

type tokKind int

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokOp // one of + - * / ^ ( )
)

type token struct {
	kind tokKind
	pos  int    // byte offset in the source expression
	text string // ident text; op text is the single operator byte
	val  float64
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

// lex splits expr into tokens, appending a terminal tokEOF. The only
// failures are characters outside the grammar and malformed numbers.
func lex(expr string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^' || c == '(' || c == ')':
			toks = append(toks, token{kind: tokOp, pos: i, text: string(c)})
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(expr) && (isDigit(expr[i]) || expr[i] == '.') {
				i++
			}
			if i < len(expr) && (expr[i] == 'e' || expr[i] == 'E') {
				j := i + 1
				if j < len(expr) && (expr[j] == '+' || expr[j] == '-') {
					j++
				}
				if j < len(expr) && isDigit(expr[j]) {
					i = j
					for i < len(expr) && isDigit(expr[i]) {
						i++
					}
				}
			}
			v, err := strconv.ParseFloat(expr[start:i], 64)
			if err != nil {
				return nil, &ParseError{Expr: expr, Pos: start, Msg: "malformed number " + strconv.Quote(expr[start:i])}
			}
			toks = append(toks, token{kind: tokNumber, pos: start, val: v})
		case isIdentStart(c):
			start := i
			for i < len(expr) && isIdentPart(expr[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: expr[start:i]})
		default:
			return nil, &ParseError{Expr: expr, Pos: i, Msg: "unexpected character " + strconv.QuoteRune(rune(c))}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(expr)})
	return toks, nil
}
