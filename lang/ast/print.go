package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indentStep = "  "

// Fprint writes an indented dump of the program tree to w.
// It is intended for debugging and the ast subcommand, not for
// round-tripping source.
func Fprint(w io.Writer, prog *Program) error {
	for _, stmt := range prog.Statements {
		if err := fprintStmt(w, stmt, 0); err != nil {
			return err
		}
	}

	return nil
}

func fprintStmt(w io.Writer, stmt Statement, depth int) error {
	pad := strings.Repeat(indentStep, depth)

	var err error

	switch s := stmt.(type) {
	case VarDecl:
		_, err = fmt.Fprintf(w, "%slet %s =\n", pad, s.Name)
		if err == nil {
			err = fprintExpr(w, s.Value, depth+1)
		}

	case Assign:
		_, err = fmt.Fprintf(w, "%sassign %s =\n", pad, s.Name)
		if err == nil {
			err = fprintExpr(w, s.Value, depth+1)
		}

	case If:
		_, err = fmt.Fprintf(w, "%sif\n", pad)
		if err == nil {
			err = fprintExpr(w, s.Cond, depth+1)
		}

		if err == nil {
			err = fprintBlock(w, "then", s.Then, depth)
		}

		if err == nil && s.Else != nil {
			err = fprintBlock(w, "else", s.Else, depth)
		}

	case While:
		_, err = fmt.Fprintf(w, "%swhile\n", pad)
		if err == nil {
			err = fprintExpr(w, s.Cond, depth+1)
		}

		if err == nil {
			err = fprintBlock(w, "do", s.Body, depth)
		}

	case FnDecl:
		_, err = fmt.Fprintf(w, "%sfn %s(%s)\n", pad, s.Name, strings.Join(s.Params, ", "))
		if err == nil {
			err = fprintBlock(w, "body", s.Body, depth)
		}

	case Return:
		_, err = fmt.Fprintf(w, "%sreturn\n", pad)
		if err == nil {
			err = fprintExpr(w, s.Value, depth+1)
		}

	case Print:
		_, err = fmt.Fprintf(w, "%sprint\n", pad)
		if err == nil {
			err = fprintExpr(w, s.Value, depth+1)
		}

	case Input:
		_, err = fmt.Fprintf(w, "%sinput %s\n", pad, s.Name)
	}

	return err
}

func fprintBlock(w io.Writer, label string, body []Statement, depth int) error {
	pad := strings.Repeat(indentStep, depth)

	_, err := fmt.Fprintf(w, "%s%s\n", pad, label)
	if err != nil {
		return err
	}

	for _, stmt := range body {
		if err := fprintStmt(w, stmt, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func fprintExpr(w io.Writer, expr Expression, depth int) error {
	pad := strings.Repeat(indentStep, depth)

	var err error

	switch e := expr.(type) {
	case IntLit:
		_, err = fmt.Fprintf(w, "%sint %d\n", pad, e.Value)

	case FloatLit:
		_, err = fmt.Fprintf(w, "%sfloat %s\n", pad,
			strconv.FormatFloat(e.Value, 'g', -1, 64))

	case BoolLit:
		_, err = fmt.Fprintf(w, "%sbool %t\n", pad, e.Value)

	case StringLit:
		_, err = fmt.Fprintf(w, "%sstring %q\n", pad, e.Value)

	case Ident:
		_, err = fmt.Fprintf(w, "%sident %s\n", pad, e.Name)

	case Call:
		_, err = fmt.Fprintf(w, "%scall %s\n", pad, e.Name)
		for _, arg := range e.Args {
			if err != nil {
				break
			}

			err = fprintExpr(w, arg, depth+1)
		}

	case Unary:
		_, err = fmt.Fprintf(w, "%sunary %s\n", pad, e.Op)
		if err == nil {
			err = fprintExpr(w, e.Right, depth+1)
		}

	case Binary:
		_, err = fmt.Fprintf(w, "%sbinary %s\n", pad, e.Op)
		if err == nil {
			err = fprintExpr(w, e.Left, depth+1)
		}

		if err == nil {
			err = fprintExpr(w, e.Right, depth+1)
		}
	}

	return err
}
