// Package expr parses and evaluates small arithmetic expressions over
// real numbers: + - * /, parentheses, unary minus, decimal literals and
// named symbols resolved against a caller-supplied table. The grammar is
// deliberately closed; there is no function call or assignment form.
package expr

// Node is a parsed expression tree node.
type Node interface{ node() }

// Literal is a decimal number.
type Literal struct {
	Value float64
}

// Unary is a negation of its operand.
type Unary struct {
	X Node
}

// Binary applies Op ('+', '-', '*', '/') to L and R.
type Binary struct {
	Op   byte
	L, R Node
}

// Ident references a named symbol, resolved at evaluation time.
type Ident struct {
	Name string
}

func (Literal) node() {}
func (Unary) node()   {}
func (Binary) node()  {}
func (Ident) node()   {}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// Parse turns src into an expression tree.
func Parse(src string) (Node, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, &TokenError{Pos: t.pos, Got: t.text}
	}
	return n, nil
}

// parseSum handles + and - (lowest precedence).
func (p *parser) parseSum() (Node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '+', L: left, R: right}
		case tokMinus:
			p.next()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '-', L: left, R: right}
		default:
			return left, nil
		}
	}
}

// parseProduct handles * and /.
func (p *parser) parseProduct() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '*', L: left, R: right}
		case tokSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '/', L: left, R: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (Node, error) {
	if p.peek().kind == tokMinus {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Unary{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return Literal{Value: t.num}, nil
	case tokIdent:
		return Ident{Name: t.text}, nil
	case tokLParen:
		n, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, &TokenError{Pos: c.pos, Got: c.text}
		}
		return n, nil
	}
	return nil, &TokenError{Pos: t.pos, Got: t.text}
}
