package scalar

import "strconv"

// parser is a precedence-climbing parser over a pre-lexed token stream.
// Grammar, loosest to tightest binding:
//
//	expr   = unary { binop expr }     climbing on binop precedence
//	unary  = - unary | atom
//	atom   = number | ident | ident ( expr ) | ( expr )
//
// '^' is right-associative and binds tighter than unary minus, so -x^2
// parses as -(x^2) while -x*y parses as (-x)*y.
type parser struct {
	expr string
	toks []token
	i    int
}

// parse turns expression text into a tree. All returned errors are *ParseError.
func parse(expr string) (node, error) {
	toks, err := lex(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{expr: expr, toks: toks}
	n, err := p.parseExpr(precAdd)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok.pos, "unexpected trailing input")
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) errorf(pos int, msg string) error {
	return &ParseError{Expr: p.expr, Pos: pos, Msg: msg}
}

// parseExpr consumes operators of precedence >= min. Left-associative
// operators re-enter one level tighter; '^' re-enters at its own level to
// stay right-associative.
func (p *parser) parseExpr(min int) (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp || tok.text == "(" || tok.text == ")" {
			return left, nil
		}
		op := tok.text[0]
		prec := binPrec(op)
		if prec < min {
			return left, nil
		}
		p.next()
		nextMin := prec + 1
		if op == '^' {
			nextMin = prec
		}
		right, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, l: left, r: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	if tok := p.peek(); tok.kind == tokOp && tok.text == "-" {
		p.next()
		// The operand climbs at precUnary, so an exponent chain is
		// consumed before the minus wraps it.
		x, err := p.parseExpr(precUnary)
		if err != nil {
			return nil, err
		}
		return negNode{x: x}, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return litNode{v: tok.val}, nil
	case tokIdent:
		return p.parseIdent(tok)
	case tokOp:
		if tok.text == "(" {
			inner, err := p.parseExpr(precAdd)
			if err != nil {
				return nil, err
			}
			if closing := p.next(); !(closing.kind == tokOp && closing.text == ")") {
				return nil, p.errorf(closing.pos, "missing closing parenthesis")
			}
			return inner, nil
		}
		return nil, p.errorf(tok.pos, "unexpected operator "+strconv.Quote(tok.text))
	default:
		return nil, p.errorf(tok.pos, "unexpected end of expression")
	}
}

func (p *parser) parseIdent(tok token) (node, error) {
	if next := p.peek(); next.kind == tokOp && next.text == "(" {
		if _, ok := functions[tok.text]; !ok {
			return nil, p.errorf(tok.pos, "unknown function "+strconv.Quote(tok.text))
		}
		p.next() // consume "("
		arg, err := p.parseExpr(precAdd)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); !(closing.kind == tokOp && closing.text == ")") {
			return nil, p.errorf(closing.pos, "missing closing parenthesis")
		}
		return callNode{fn: tok.text, arg: arg}, nil
	}
	if v, ok := constants[tok.text]; ok {
		return constNode{name: tok.text, v: v}, nil
	}
	return varNode{name: tok.text}, nil
}
