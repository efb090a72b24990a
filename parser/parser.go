// This file is part of ic4.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/zannabianca1997/ic4/command"
	"github.com/zannabianca1997/ic4/escape"
	"github.com/zannabianca1997/ic4/expr"
	"github.com/zannabianca1997/ic4/source"
	"github.com/zannabianca1997/ic4/version"
)

var opcodeByName = map[string]command.OpCode{
	"ADD": command.ADD, "MUL": command.MUL, "IN": command.IN, "OUT": command.OUT,
	"JNZ": command.JNZ, "JZ": command.JZ, "SLT": command.SLT, "SEQ": command.SEQ,
	"INCB": command.INCB, "HALT": command.HALT,
}

// Parser consumes assembly source text and produces a source.File.
type Parser struct {
	lx   *lexer
	tok  rune
	text string
	pos  scanner.Position
}

// New creates a Parser reading from r. name is used in reported
// positions (typically the source file's path, or "<stdin>").
func New(name string, r io.Reader) *Parser {
	p := &Parser{lx: newLexer(name, r)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.tok = p.lx.next()
	p.text = p.lx.s.TokenText()
	p.pos = p.lx.s.Position
}

func (p *Parser) skipNewlines() {
	for p.tok == '\n' {
		p.advance()
	}
}

// Parse consumes the whole token stream and returns the assembled
// source.File, or the first SyntaxError encountered.
func Parse(name string, r io.Reader) (source.File, error) {
	return New(name, r).Parse()
}

// Parse runs the parser to completion.
func (p *Parser) Parse() (source.File, error) {
	p.skipNewlines()
	header, err := p.parseHeader()
	if err != nil {
		return source.File{}, err
	}
	var body []command.Command
	for p.tok != scanner.EOF {
		cmds, err := p.parseLine()
		if err != nil {
			return source.File{}, err
		}
		body = append(body, cmds...)
	}
	return source.File{Header: header, Body: body}, nil
}

func (p *Parser) parseHeader() (source.Header, error) {
	if p.tok != scanner.Ident {
		return nil, p.errorf("expected EXECUTABLE or OBJECTS header, got %q", p.text)
	}
	kind := p.text
	p.advance()

	vtext, err := p.parseVersionText()
	if err != nil {
		return nil, err
	}
	ver, err := version.Parse(vtext)
	if err != nil {
		return nil, p.wrap(err)
	}
	p.skipNewlines()

	switch kind {
	case "EXECUTABLE":
		return source.Executable{Version: ver}, nil
	case "OBJECTS":
		return p.parseObjectsTail(ver)
	default:
		return nil, p.errorf("unknown header kind %q: expected EXECUTABLE or OBJECTS", kind)
	}
}

// parseVersionText reassembles the major.minor[.patch][_extra] literal
// out of the Int/'.'/ Ident tokens the scanner splits it into (it has
// no notion of this grammar's version literal).
func (p *Parser) parseVersionText() (string, error) {
	if p.tok != scanner.Int {
		return "", p.errorf("expected version number, got %q", p.text)
	}
	var b strings.Builder
	b.WriteString(p.text)
	p.advance()
	for i := 0; i < 2 && p.tok == '.'; i++ {
		b.WriteByte('.')
		p.advance()
		if p.tok != scanner.Int {
			return "", p.errorf("expected version number after '.', got %q", p.text)
		}
		b.WriteString(p.text)
		p.advance()
	}
	if p.tok == scanner.Ident && strings.HasPrefix(p.text, "_") {
		b.WriteString(p.text)
		p.advance()
	}
	return b.String(), nil
}

func (p *Parser) parseObjectsTail(ver version.Version) (source.Header, error) {
	obj := source.Objects{Version: ver}
	for p.tok == scanner.Ident && (p.text == "EXPORT" || p.text == "EXTERN" || p.text == "ENTRY") {
		kw := p.text
		p.advance()
		switch kw {
		case "EXPORT":
			for p.tok == scanner.Ident {
				obj.Export = append(obj.Export, p.text)
				p.advance()
			}
		case "EXTERN":
			for p.tok == scanner.Ident {
				obj.Extern = append(obj.Extern, p.text)
				p.advance()
			}
		case "ENTRY":
			if p.tok != scanner.Ident {
				return nil, p.errorf("ENTRY expects one identifier, got %q", p.text)
			}
			obj.Entry = p.text
			p.advance()
		}
		p.skipNewlines()
	}
	return obj, nil
}

// parseLine consumes zero or more "IDENT ':'" labels followed by
// exactly one instruction or directive, then the line terminator.
func (p *Parser) parseLine() ([]command.Command, error) {
	var cmds []command.Command
	for {
		if p.tok != scanner.Ident {
			return nil, p.errorf("expected label or instruction, got %q", p.text)
		}
		name := p.text
		p.advance()
		if p.tok == ':' {
			cmds = append(cmds, command.Label{Name: name})
			p.advance()
			p.skipNewlines()
			continue
		}
		cmd, err := p.parseInstrOrDirective(name)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
		break
	}
	if p.tok != '\n' && p.tok != scanner.EOF {
		return nil, p.errorf("expected end of line, got %q", p.text)
	}
	p.skipNewlines()
	return cmds, nil
}

func (p *Parser) consumeComma() {
	if p.tok == ',' {
		p.advance()
	}
}

func (p *Parser) atLineEnd() bool {
	return p.tok == '\n' || p.tok == scanner.EOF
}

func (p *Parser) parseInstrOrDirective(name string) (command.Command, error) {
	if op, ok := opcodeByName[name]; ok {
		params, err := p.parseParams(op.Arity())
		if err != nil {
			return nil, err
		}
		return command.Instruction{Op: op, Params: params}, nil
	}

	switch name {
	case "INTS":
		return p.parseINTS()
	case "ZEROS":
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return command.ZEROS{Len: e}, nil
	case "INC":
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		return command.INC{Param: param}, nil
	case "DEC":
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		return command.DEC{Param: param}, nil
	case "MOV":
		return p.parseMOV()
	case "LOAD":
		srcPtr, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		p.consumeComma()
		dest, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		return command.LOAD{SrcPtr: srcPtr, Dest: dest}, nil
	case "STORE":
		src, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		p.consumeComma()
		destPtr, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		return command.STORE{Src: src, DestPtr: destPtr}, nil
	case "JMP":
		dest, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		return command.JMP{Dest: dest}, nil
	case "PUSH":
		return p.parsePushPop(true)
	case "POP":
		return p.parsePushPop(false)
	case "CALL":
		dest, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		return command.CALL{Dest: dest}, nil
	case "RET":
		return command.RET{}, nil
	default:
		return nil, p.errorf("unknown instruction or directive %q", name)
	}
}

func (p *Parser) parseParams(n int) ([]command.Param, error) {
	params := make([]command.Param, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			p.consumeComma()
		}
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

func (p *Parser) parseParam() (command.Param, error) {
	mode := command.Absolute
	switch p.tok {
	case '#':
		mode = command.Immediate
		p.advance()
	case '@':
		mode = command.Relative
		p.advance()
	}
	e, err := p.parseExpr()
	if err != nil {
		return command.Param{}, err
	}
	return command.Param{Mode: mode, Value: e}, nil
}

func (p *Parser) parseINTS() (command.Command, error) {
	if p.tok == scanner.String {
		body := unquote(p.text)
		vals, err := escape.DecodeString(body, true)
		if err != nil {
			return nil, p.wrap(err)
		}
		p.advance()
		exprs := make([]expr.Expr, len(vals))
		for i, v := range vals {
			exprs[i] = expr.Constant(v)
		}
		return command.INTS{Values: exprs}, nil
	}
	var vals []expr.Expr
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		vals = append(vals, e)
		p.consumeComma()
		if p.atLineEnd() {
			break
		}
	}
	return command.INTS{Values: vals}, nil
}

func (p *Parser) parseMOV() (command.Command, error) {
	src, err := p.parseParam()
	if err != nil {
		return nil, err
	}
	p.consumeComma()
	dest, err := p.parseParam()
	if err != nil {
		return nil, err
	}
	size := expr.Expr(expr.Constant(1))
	if !p.atLineEnd() {
		p.consumeComma()
		size, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return command.MOV{Src: src, Dest: dest, Size: size}, nil
}

// parsePushPop handles PUSH/POP's "(param)? ((,)? expr)?" shape. A
// leading comma with nothing before it signals "no value, just the
// size"; otherwise the first token(s) are parsed as the optional
// value parameter, and a trailing comma introduces an explicit size.
func (p *Parser) parsePushPop(isPush bool) (command.Command, error) {
	var value *command.Param
	size := expr.Expr(expr.Constant(1))

	switch {
	case p.tok == ',':
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		size = e
	case !p.atLineEnd():
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		value = &param
		if p.tok == ',' {
			p.advance()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			size = e
		}
	}

	if isPush {
		return command.PUSH{Value: value, Size: size}, nil
	}
	return command.POP{Dest: value, Size: size}, nil
}

func (p *Parser) parseExpr() (expr.Expr, error) { return p.parseAddSub() }

func (p *Parser) parseAddSub() (expr.Expr, error) {
	l, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.advance()
		r, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			l = expr.Sum{L: l, R: r}
		} else {
			l = expr.Subtract{L: l, R: r}
		}
	}
	return l, nil
}

func (p *Parser) parseMulDiv() (expr.Expr, error) {
	l, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		p.advance()
		r, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			l = expr.Multiply{L: l, R: r}
		} else {
			l = expr.Divide{L: l, R: r}
		}
	}
	return l, nil
}

func (p *Parser) parseUnary() (expr.Expr, error) {
	if p.tok == '-' {
		p.advance()
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.Subtract{L: expr.Constant(0), R: e}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (expr.Expr, error) {
	switch p.tok {
	case scanner.Int:
		n, err := strconv.ParseInt(p.text, 0, 64)
		if err != nil {
			return nil, p.wrap(err)
		}
		p.advance()
		return expr.Constant(n), nil
	case scanner.Char:
		v, err := escape.DecodeChar(unquote(p.text))
		if err != nil {
			return nil, p.wrap(err)
		}
		p.advance()
		return expr.Constant(v), nil
	case scanner.Ident:
		name := p.text
		if !expr.ValidName(name) {
			return nil, p.errorf("invalid identifier %q", name)
		}
		p.advance()
		return expr.Reference(name), nil
	case '(':
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok != ')' {
			return nil, p.errorf("expected ')', got %q", p.text)
		}
		p.advance()
		return e, nil
	default:
		return nil, p.errorf("expected expression, got %q", p.text)
	}
}

// unquote strips the leading and trailing quote byte off a
// scanner.Char or scanner.String token's raw text, leaving the escape
// body for the escape package to decode.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	return s[1 : len(s)-1]
}
