package ir

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SavvyHex/econocode/typing"
	"github.com/pkg/errors"
)

// ParseError is a syntax error in an IR listing.
type ParseError struct {
	// Line is the 1-based line number of the error.
	Line int

	Message string
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", pe.Line, pe.Message)
}

// Parse reads an IR listing in the textual form produced by Program.Repr.
// Blank lines and lines beginning with `#` are skipped.  The text form does not
// carry widths for constants, moves, and reads: these are parsed as I64.
func Parse(r io.Reader) (Program, error) {
	var prog Program

	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		instr, msg := parseLine(line)
		if msg != "" {
			return nil, &ParseError{Line: ln, Message: msg}
		}

		prog = append(prog, instr)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading IR listing")
	}

	return prog, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (Program, error) {
	return Parse(strings.NewReader(s))
}

// parseLine parses one non-empty line.  The returned message is non-empty if
// the line is malformed.
func parseLine(line string) (Instr, string) {
	// labels
	if strings.HasSuffix(line, ":") {
		name := strings.TrimSuffix(line, ":")
		if !isName(name) {
			return nil, fmt.Sprintf("invalid label name `%s`", name)
		}

		return Label{Name: name}, ""
	}

	// terminators
	if rest, ok := cutKeyword(line, "jmp"); ok {
		if !isName(rest) {
			return nil, fmt.Sprintf("invalid jump target `%s`", rest)
		}

		return Jmp{Target: rest}, ""
	}

	if rest, ok := cutKeyword(line, "br_if"); ok {
		ops, msg := splitOperands(rest, 3)
		if msg != "" {
			return nil, "br_if: " + msg
		}

		return BrIf{Cond: ops[0], Then: ops[1], Else: ops[2]}, ""
	}

	// everything else is a binding
	dst, rhs, ok := strings.Cut(line, "=")
	if !ok {
		return nil, fmt.Sprintf("unrecognized instruction `%s`", line)
	}

	dst = strings.TrimSpace(dst)
	rhs = strings.TrimSpace(rhs)
	if !isName(dst) {
		return nil, fmt.Sprintf("invalid destination `%s`", dst)
	}

	if rest, ok := cutKeyword(rhs, "const"); ok {
		v, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return nil, fmt.Sprintf("invalid constant `%s`", rest)
		}

		return LoadConst{Value: v, Dst: dst, Type: typing.PrimKindI64}, ""
	}

	if rest, ok := cutKeyword(rhs, "read"); ok {
		typ, msg := parseTypeSuffix(rest)
		if msg != "" {
			return nil, "read: " + msg
		}

		return Read{Dst: dst, Type: typ}, ""
	}

	for k, name := range binOpNames {
		if rest, ok := cutKeyword(rhs, name); ok {
			operands, typeSpec, found := strings.Cut(rest, "(")
			if !found {
				return nil, fmt.Sprintf("%s: missing type annotation", name)
			}

			typ, msg := parseTypeSuffix("(" + typeSpec)
			if msg != "" {
				return nil, name + ": " + msg
			}

			ops, msg := splitOperands(operands, 2)
			if msg != "" {
				return nil, name + ": " + msg
			}

			return BinOp{Op: BinOpKind(k), Type: typ, Lhs: ops[0], Rhs: ops[1], Dst: dst}, ""
		}
	}

	for k, name := range cmpNames {
		if rest, ok := cutKeyword(rhs, name); ok {
			ops, msg := splitOperands(rest, 2)
			if msg != "" {
				return nil, name + ": " + msg
			}

			return Cmp{Op: CmpKind(k), Lhs: ops[0], Rhs: ops[1], Dst: dst}, ""
		}
	}

	if isName(rhs) {
		return Move{Src: rhs, Dst: dst, Type: typing.PrimKindI64}, ""
	}

	return nil, fmt.Sprintf("unrecognized right-hand side `%s`", rhs)
}

// cutKeyword tests whether s begins with the keyword kw followed by whitespace
// and returns the trimmed remainder.
func cutKeyword(s, kw string) (string, bool) {
	if !strings.HasPrefix(s, kw) || len(s) == len(kw) {
		return "", false
	}

	if c := s[len(kw)]; c != ' ' && c != '\t' {
		return "", false
	}

	return strings.TrimSpace(s[len(kw):]), true
}

// splitOperands splits a comma separated operand list of exactly n names.
func splitOperands(s string, n int) ([]string, string) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Sprintf("expected %d operands but got %d", n, len(parts))
	}

	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
		if !isName(parts[i]) {
			return nil, fmt.Sprintf("invalid operand `%s`", parts[i])
		}
	}

	return parts, ""
}

// parseTypeSuffix parses a parenthesized type such as `(I64)`.
func parseTypeSuffix(s string) (typing.PrimitiveType, string) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return 0, fmt.Sprintf("expected parenthesized type but got `%s`", s)
	}

	inner := strings.TrimSpace(s[1 : len(s)-1])
	typ, ok := typing.ParsePrimitive(inner)
	if !ok {
		return 0, fmt.Sprintf("unknown type `%s`", inner)
	}

	return typ, ""
}

// isName reports whether s is a valid variable, temporary, or label name.
func isName(s string) bool {
	if s == "" {
		return false
	}

	for i, c := range s {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
