package minilisp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var macros map[rune]func(r *bufio.Reader) (Expr, error)

func init() {
	macros = map[rune]func(r *bufio.Reader) (Expr, error){
		'"':  stringReader,
		';':  commentReader,
		'(':  listReader,
		')':  unmatchedDelimiterReader,
		'\'': quoteReader,
	}
}

func isWhitespace(ch rune) bool {
	return unicode.IsSpace(ch) || ch == ','
}

// Read parses the next expression from r. It returns io.EOF when r holds
// nothing but whitespace and comments, and io.ErrUnexpectedEOF when input
// ends inside a list or string.
func Read(r *bufio.Reader) (Expr, error) {
	for {
		ch, _, err := r.ReadRune()

		for err == nil && isWhitespace(ch) {
			ch, _, err = r.ReadRune()
		}

		if err != nil {
			return nil, err
		}

		if unicode.IsDigit(ch) {
			return readNumber(r, ch)
		}

		macroFn, isMacro := macros[ch]
		if isMacro {
			ret, err := macroFn(r)
			if ret == r { //no op macros return the reader
				continue
			}
			return ret, err
		}

		if ch == '+' || ch == '-' {
			ch2, _, err := r.ReadRune()
			if err == nil {
				r.UnreadRune()
				if unicode.IsDigit(ch2) {
					return readNumber(r, ch)
				}
			}
		}

		return interpretToken(readToken(r, ch)), nil
	}
}

// ReadString parses every expression in src.
func ReadString(src string) ([]Expr, error) {
	r := bufio.NewReader(strings.NewReader(src))
	var exprs []Expr
	for {
		expr, err := Read(r)
		if err == io.EOF {
			return exprs, nil
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
}

func readToken(r *bufio.Reader, initch rune) string {
	var sb strings.Builder
	sb.WriteRune(initch)

	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return sb.String()
		}
		if isWhitespace(ch) || isMacro(ch) {
			r.UnreadRune()
			return sb.String()
		}
		sb.WriteRune(ch)
	}
}

func readNumber(r *bufio.Reader, initch rune) (Expr, error) {
	return matchNumber(readToken(r, initch))
}

func interpretToken(s string) Expr {
	switch s {
	case "nil":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	return Symbol(s)
}

func matchNumber(s string) (Expr, error) {
	i, erri := strconv.Atoi(s)
	if erri == nil {
		return i, nil
	}
	f, errf := strconv.ParseFloat(s, 64)
	if errf == nil {
		return f, nil
	}
	return nil, fmt.Errorf("invalid number: %s", s)
}

func isMacro(ch rune) bool {
	_, ismacro := macros[ch]
	return ismacro
}

func stringReader(r *bufio.Reader) (Expr, error) {
	var sb strings.Builder

	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return nil, io.ErrUnexpectedEOF
		}
		if ch == '"' {
			return sb.String(), nil
		}
		if ch == '\\' {
			ch, _, err = r.ReadRune()
			if err != nil {
				return nil, io.ErrUnexpectedEOF
			}
			switch ch {
			case 't':
				ch = '\t'
			case 'r':
				ch = '\r'
			case 'n':
				ch = '\n'
			case 'b':
				ch = '\b'
			case 'f':
				ch = '\f'
			case '\\':
			case '"':
			default:
				return nil, fmt.Errorf("unsupported escape character: \\%s", string(ch))
			}
		}
		sb.WriteRune(ch)
	}
}

func commentReader(r *bufio.Reader) (Expr, error) {
	ch, _, err := r.ReadRune()
	for err == nil && ch != '\n' && ch != '\r' {
		ch, _, err = r.ReadRune()
	}
	return r, nil
}

// 'x reads as (quote x)
func quoteReader(r *bufio.Reader) (Expr, error) {
	quoted, err := Read(r)
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}
	return List{SymQuote, quoted}, nil
}

func listReader(r *bufio.Reader) (Expr, error) {
	l := List{}
	err := readDelimitedList(r, ')', func(item Expr) {
		l = append(l, item)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func unmatchedDelimiterReader(r *bufio.Reader) (Expr, error) {
	return nil, errors.New("unmatched delimiter")
}

func readDelimitedList(r *bufio.Reader, delim rune, add func(Expr)) error {
	for {
		ch, _, err := r.ReadRune()

		for err == nil && isWhitespace(ch) {
			ch, _, err = r.ReadRune()
		}

		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}

		if ch == delim {
			return nil
		}

		macroFn, isMacro := macros[ch]
		if isMacro {
			mret, err := macroFn(r)
			if err != nil {
				return err
			}
			if mret != r {
				add(mret)
			}
		} else {
			r.UnreadRune()
			o, err := Read(r)
			if err != nil {
				return err
			}
			add(o)
		}
	}
}
