package analyzer

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexhholmes/pktlayout/internal/parser"
	"github.com/alexhholmes/pktlayout/packet"
)

// ExprKind selects the meaning of an Expr node.
type ExprKind int

const (
	ExprLit    ExprKind = iota // unsigned integer literal
	ExprField                  // earlier primitive field of the same packet
	ExprConst                  // external integer constant
	ExprCall                   // external integer function
	ExprBinary                 // Left Op Right
	ExprParen                  // (Left)
)

// Expr is a translated length expression. Lengths are byte counts.
type Expr struct {
	Kind  ExprKind
	Value uint64 // ExprLit
	Text  string // literal as written, ExprLit only
	Name  string // ExprField, ExprConst, ExprCall
	Index int    // ExprField: index of the referenced field
	Op    byte   // ExprBinary: one of + - * / %
	Left  *Expr  // ExprBinary, ExprParen
	Right *Expr  // ExprBinary
	Args  []*Expr
}

// Scope supplies values for the non-literal leaves of an expression.
type Scope interface {
	Field(index int) uint64
	Call(name string, args []int) int
	Const(name string) int
}

// Eval computes the expression in saturating int arithmetic. Division and
// remainder by zero yield 0. The result is not clamped; see Length.
func (e *Expr) Eval(s Scope) int {
	switch e.Kind {
	case ExprLit:
		return int(e.Value)
	case ExprField:
		return int(s.Field(e.Index))
	case ExprConst:
		return s.Const(e.Name)
	case ExprCall:
		args := make([]int, len(e.Args))
		for i, a := range e.Args {
			args[i] = a.Eval(s)
		}
		return s.Call(e.Name, args)
	case ExprParen:
		return e.Left.Eval(s)
	case ExprBinary:
		l, r := e.Left.Eval(s), e.Right.Eval(s)
		switch e.Op {
		case '+':
			return packet.Add(l, r)
		case '-':
			return packet.Sub(l, r)
		case '*':
			return packet.Mul(l, r)
		case '/':
			return packet.Div(l, r)
		case '%':
			return packet.Mod(l, r)
		}
	}
	panic(fmt.Sprintf("pktlayout: bad expression node %d", e.Kind))
}

// Length evaluates the expression as a byte count, negative results are 0.
func (e *Expr) Length(s Scope) int {
	return packet.Clamp(e.Eval(s))
}

func (e *Expr) String() string {
	switch e.Kind {
	case ExprLit:
		return e.Text
	case ExprField, ExprConst:
		return e.Name
	case ExprCall:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = a.String()
		}
		return e.Name + "(" + strings.Join(args, ", ") + ")"
	case ExprParen:
		return "(" + e.Left.String() + ")"
	case ExprBinary:
		return e.Left.String() + " " + string(e.Op) + " " + e.Right.String()
	}
	return "?"
}

// External is a name a length expression needs bound from outside the
// schema.
type External struct {
	Name string
	Call bool
}

// Externals lists the external names the expression references, sorted.
func (e *Expr) Externals() []External {
	seen := map[External]bool{}
	e.walk(func(n *Expr) {
		switch n.Kind {
		case ExprConst:
			seen[External{Name: n.Name}] = true
		case ExprCall:
			seen[External{Name: n.Name, Call: true}] = true
		}
	})
	out := make([]External, 0, len(seen))
	for x := range seen {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return !out[i].Call
	})
	return out
}

func (e *Expr) walk(fn func(*Expr)) {
	if e == nil {
		return
	}
	fn(e)
	e.Left.walk(fn)
	e.Right.walk(fn)
	for _, a := range e.Args {
		a.walk(fn)
	}
}

// TranslateLength turns the length expression of field at into an Expr.
//
// Grammar:
//
//	expr    = term { ("+" | "-") term }
//	term    = primary { ("*" | "/" | "%") primary }
//	primary = uint | ident | ident "(" [ expr { "," expr } ] ")" | "(" expr ")"
//
// An identifier naming a field of pkt resolves to that field's value; it
// must be an earlier primitive field. Other identifiers are externals.
func TranslateLength(src string, pkt *parser.Packet, at int) (*Expr, error) {
	f := &pkt.Fields[at]
	fail := func(kind parser.Kind, format string, args ...any) error {
		return parser.FieldError(kind, pkt.Base, f, "length %q: %s", src, fmt.Sprintf(format, args...))
	}

	toks, err := tokenize(src)
	if err != nil {
		var le *lexError
		if errors.As(err, &le) {
			return nil, fail(le.kind, "%s", le.msg)
		}
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fail(parser.KindNonIntegerLengthToken, "empty expression")
	}

	p := &exprParser{toks: toks, pkt: pkt, at: at, fail: fail}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		t := p.toks[p.pos]
		if t.kind == tokRParen {
			return nil, fail(parser.KindUnbalancedLength, "unexpected ')' at %d", t.at)
		}
		return nil, fail(parser.KindNonIntegerLengthToken, "unexpected %q at %d", t.text, t.at)
	}
	return e, nil
}

type tokKind int

const (
	tokNum tokKind = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokKind
	text string
	at   int
}

type lexError struct {
	kind parser.Kind
	msg  string
}

func (e *lexError) Error() string { return e.msg }

func isIdentByte(c byte, first bool) bool {
	switch {
	case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		return true
	case !first && c >= '0' && c <= '9':
		return true
	}
	return false
}

func tokenize(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(src) && (isIdentByte(src[j], false) || src[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNum, src[i:j], i})
			i = j
		case isIdentByte(c, true):
			j := i + 1
			for j < len(src) && isIdentByte(src[j], false) {
				j++
			}
			toks = append(toks, token{tokIdent, src[i:j], i})
			i = j
		case strings.IndexByte("+-*/%", c) >= 0:
			toks = append(toks, token{tokOp, string(c), i})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ",", i})
			i++
		default:
			return nil, &lexError{parser.KindNonIntegerLengthToken, fmt.Sprintf("unexpected %q at %d", c, i)}
		}
	}
	return toks, nil
}

type exprParser struct {
	toks []token
	pos  int
	pkt  *parser.Packet
	at   int
	fail func(kind parser.Kind, format string, args ...any) error
}

func (p *exprParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *exprParser) expr() (*Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Expr{Kind: ExprBinary, Op: t.text[0], Left: left, Right: right}
	}
}

func (p *exprParser) term() (*Expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || (t.text != "*" && t.text != "/" && t.text != "%") {
			return left, nil
		}
		p.pos++
		right, err := p.primary()
		if err != nil {
			return nil, err
		}
		left = &Expr{Kind: ExprBinary, Op: t.text[0], Left: left, Right: right}
	}
}

func (p *exprParser) primary() (*Expr, error) {
	t, ok := p.peek()
	if !ok {
		return nil, p.fail(parser.KindNonIntegerLengthToken, "unexpected end of expression")
	}
	p.pos++

	switch t.kind {
	case tokNum:
		v, err := strconv.ParseUint(t.text, 0, 63)
		if err != nil {
			return nil, p.fail(parser.KindInvalidLengthLiteral, "%s", t.text)
		}
		return &Expr{Kind: ExprLit, Value: v, Text: t.text}, nil

	case tokLParen:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if c, ok := p.peek(); !ok || c.kind != tokRParen {
			return nil, p.fail(parser.KindUnbalancedLength, "missing ')' for '(' at %d", t.at)
		}
		p.pos++
		return &Expr{Kind: ExprParen, Left: inner}, nil

	case tokIdent:
		if next, ok := p.peek(); ok && next.kind == tokLParen {
			return p.call(t)
		}
		return p.ident(t)

	case tokRParen:
		return nil, p.fail(parser.KindUnbalancedLength, "unexpected ')' at %d", t.at)
	}
	return nil, p.fail(parser.KindNonIntegerLengthToken, "unexpected %q at %d", t.text, t.at)
}

func (p *exprParser) ident(t token) (*Expr, error) {
	for i := range p.pkt.Fields {
		f := &p.pkt.Fields[i]
		if f.Name != t.text {
			continue
		}
		if i >= p.at {
			return nil, p.fail(parser.KindForwardLengthReference, "%s is field #%d", f.Name, i)
		}
		if f.Type.Kind != parser.PrimitiveKind {
			return nil, p.fail(parser.KindNonIntegerLengthToken, "%s is a %s field", f.Name, f.Type.Kind)
		}
		return &Expr{Kind: ExprField, Name: f.Name, Index: i}, nil
	}
	return &Expr{Kind: ExprConst, Name: t.text}, nil
}

func (p *exprParser) call(name token) (*Expr, error) {
	if p.pkt.Field(name.text) != nil {
		return nil, p.fail(parser.KindNonIntegerLengthToken, "field %s is not callable", name.text)
	}
	open := p.toks[p.pos]
	p.pos++ // (

	e := &Expr{Kind: ExprCall, Name: name.text}
	if t, ok := p.peek(); ok && t.kind == tokRParen {
		p.pos++
		return e, nil
	}
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		e.Args = append(e.Args, arg)

		t, ok := p.peek()
		switch {
		case !ok:
			return nil, p.fail(parser.KindUnbalancedLength, "missing ')' for '(' at %d", open.at)
		case t.kind == tokComma:
			p.pos++
		case t.kind == tokRParen:
			p.pos++
			return e, nil
		default:
			return nil, p.fail(parser.KindNonIntegerLengthToken, "unexpected %q at %d", t.text, t.at)
		}
	}
}
