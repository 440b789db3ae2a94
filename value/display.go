package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/loadgraph/loadgraph/internal/termutil"
)

// Display renders v in compact form, the way it would appear embedded in a
// snapshot or a log line.
func Display(v V) string {
	p := termutil.NewBufferPrinter()
	writeCompact(p, v)
	return p.String()
}

// explainMaxDepth bounds how deep Explain recurses into an Unknown's inner
// cause before it stops pushing further hints.
const explainMaxDepth = 4

// Explain renders v's body plus its out-of-band hint lines. Hints are
// addressed from the body by a numbered reference like "*0*"; an Unknown
// with an inner cause pushes a hint recording that inner value (recursed up
// to explainMaxDepth) and its explainer string.
func Explain(v V) string {
	p := termutil.NewBufferPrinter()
	var hints []string
	writeExplain(p, v, 0, &hints)
	if len(hints) == 0 {
		return p.String()
	}
	var b strings.Builder
	b.WriteString(p.String())
	for i, hint := range hints {
		b.WriteString("\n*")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("* ")
		b.WriteString(hint)
	}
	return b.String()
}

func writeCompact(p *termutil.BufferPrinter, v V) {
	switch v.Kind {
	case ConstantKind:
		p.WriteString(literalDisplay(v.Literal))
	case URLKind:
		if v.URL == nil {
			p.WriteString("url()")
			return
		}
		p.WriteString("url(" + v.URL.String() + ")")
	case ArrayKind:
		p.WriteString("[")
		writeCompactList(p, v.List, ", ")
		p.WriteString("]")
	case AlternativesKind:
		p.WriteString("(")
		writeCompactList(p, v.List, " | ")
		p.WriteString(")")
	case ConcatKind:
		p.WriteString("concat(")
		writeCompactList(p, v.List, ", ")
		p.WriteString(")")
	case AddKind:
		writeCompactList(p, v.List, " + ")
	case CallKind:
		writeCompact(p, *v.Callee)
		p.WriteString("(")
		writeCompactList(p, v.Args, ", ")
		p.WriteString(")")
	case MemberKind:
		writeCompact(p, *v.Object)
		p.WriteString(".")
		writeCompact(p, *v.Property)
	case FunctionKind:
		p.WriteString("function(...) => ")
		writeCompact(p, *v.Return)
	case ArgumentKind:
		p.WriteString("arg#")
		p.WriteInt(int64(v.Index))
	case VariableKind:
		p.WriteString("var(")
		p.WriteInt(int64(v.VarKey.Symbol))
		p.WriteString(")")
	case FreeVarKind:
		if v.FreeVar == OtherFreeVar {
			p.WriteString("freevar(" + v.FreeVarName + ")")
		} else {
			p.WriteString(v.FreeVar.String())
		}
	case ModuleKind:
		p.WriteString("module(" + v.ModuleSpecifier + ")")
	case WellKnownObjectKind:
		p.WriteString(v.WKObject.String())
	case WellKnownFunctionKind:
		if v.WKFunction == FSReadMethod {
			p.WriteString("fs." + v.WKFunctionName)
		} else {
			p.WriteString(v.WKFunction.String())
		}
	case UnknownKind:
		p.WriteString("unknown")
	default:
		p.WriteString(fmt.Sprintf("<invalid Kind %d>", v.Kind))
	}
}

func writeCompactList(p *termutil.BufferPrinter, list []V, sep string) {
	for i, elem := range list {
		if i > 0 {
			p.WriteString(sep)
		}
		writeCompact(p, elem)
	}
}

func literalDisplay(l Literal) string {
	switch l.Kind {
	case StringLiteral:
		return strconv.Quote(l.Str)
	case NumberLiteral:
		return strconv.FormatFloat(l.Num, 'g', -1, 64)
	case BoolLiteral:
		return strconv.FormatBool(l.Bool)
	case NullLiteral:
		return "null"
	case RegexLiteral:
		return l.Str
	case BigIntLiteral:
		return l.Str + "n"
	default:
		return "<invalid literal>"
	}
}

// writeExplain renders like writeCompact for every variant except Unknown
// and WellKnownObject/WellKnownFunction at depth>0, which additionally push
// a numbered hint marker.
func writeExplain(p *termutil.BufferPrinter, v V, depth int, hints *[]string) {
	switch v.Kind {
	case UnknownKind:
		p.WriteString("unknown")
		if v.Explainer != "" || v.Inner != nil {
			ref := pushHint(hints, explainHint(v, depth))
			p.WriteString(ref)
		}
	case WellKnownObjectKind:
		p.WriteString(v.WKObject.String())
		if depth > 0 {
			p.WriteString(pushHint(hints, v.WKObject.String()+" is a recognized host built-in"))
		}
	case WellKnownFunctionKind:
		name := v.WKFunction.String()
		if v.WKFunction == FSReadMethod {
			name = "fs." + v.WKFunctionName
		}
		p.WriteString(name)
		if depth > 0 {
			p.WriteString(pushHint(hints, name+" is a recognized host built-in"))
		}
	case ArrayKind:
		p.WriteString("[")
		writeExplainList(p, v.List, ", ", depth, hints)
		p.WriteString("]")
	case AlternativesKind:
		p.WriteString("(")
		writeExplainList(p, v.List, " | ", depth, hints)
		p.WriteString(")")
	case ConcatKind:
		p.WriteString("concat(")
		writeExplainList(p, v.List, ", ", depth, hints)
		p.WriteString(")")
	case AddKind:
		writeExplainList(p, v.List, " + ", depth, hints)
	case CallKind:
		writeExplain(p, *v.Callee, depth+1, hints)
		p.WriteString("(")
		writeExplainList(p, v.Args, ", ", depth+1, hints)
		p.WriteString(")")
	case MemberKind:
		writeExplain(p, *v.Object, depth+1, hints)
		p.WriteString(".")
		writeExplain(p, *v.Property, depth+1, hints)
	case FunctionKind:
		p.WriteString("function(...) => ")
		writeExplain(p, *v.Return, depth+1, hints)
	default:
		writeCompact(p, v)
	}
}

func writeExplainList(p *termutil.BufferPrinter, list []V, sep string, depth int, hints *[]string) {
	for i, elem := range list {
		if i > 0 {
			p.WriteString(sep)
		}
		writeExplain(p, elem, depth+1, hints)
	}
}

func pushHint(hints *[]string, hint string) string {
	idx := len(*hints)
	*hints = append(*hints, hint)
	return "*" + strconv.Itoa(idx) + "*"
}

func explainHint(v V, depth int) string {
	var b strings.Builder
	if v.Explainer != "" {
		b.WriteString(v.Explainer)
	}
	if v.Inner != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		if depth >= explainMaxDepth {
			b.WriteString("...")
		} else {
			innerHints := []string{}
			inner := termutil.NewBufferPrinter()
			writeExplain(inner, *v.Inner, depth+1, &innerHints)
			b.WriteString(inner.String())
			for _, h := range innerHints {
				b.WriteString("; ")
				b.WriteString(h)
			}
		}
	}
	return b.String()
}
