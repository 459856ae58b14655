package expr

import (
	"fmt"
	"strings"
)

type CodePrinter interface {
	Indent(n int)
	Unindent(n int)
	Print(str string)
	Printf(fmt string, args ...any)
	Println(str string)
	String() string
}

func WithIndent(n int, cp CodePrinter, block func(cp CodePrinter)) {
	cp.Indent(n)
	defer cp.Unindent(n)
	block(cp)
}

type codePrinter struct {
	indent  int
	line    int
	col     int
	builder strings.Builder
}

func NewCodePrinter() CodePrinter {
	return &codePrinter{}
}

func (c *codePrinter) Indent(n int) {
	c.indent += n
}

func (c *codePrinter) Unindent(n int) {
	c.indent -= n
	if c.indent < 0 {
		c.indent = 0
	}
}

// Print writes str, prefixing the indent whenever a new line starts.
func (c *codePrinter) Print(str string) {
	lines := strings.Split(str, "\n")
	for idx, l := range lines {
		if l != "" {
			if c.col == 0 {
				c.builder.WriteString(c.IndentString())
			}
			c.builder.WriteString(l)
			c.col += len(l)
		}
		if idx < len(lines)-1 {
			c.builder.WriteByte('\n')
			c.line++
			c.col = 0
		}
	}
}

func (c *codePrinter) Println(str string) {
	c.Print(str + "\n")
}

func (c *codePrinter) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

func (c *codePrinter) IndentString() string {
	return strings.Repeat("  ", c.indent)
}

func (c *codePrinter) String() string {
	return c.builder.String()
}

// Dump renders root as an indented listing with one node per line:
//
//	Sum
//	  Constant 12
//	  Product
//	    Variable a
//	    Variable b
func Dump(root Expr) string {
	d := &dumper{cp: NewCodePrinter()}
	root.Accept(d)
	return d.cp.String()
}

type dumper struct {
	cp CodePrinter
}

func (d *dumper) VisitConstant(c *Constant) { d.cp.Printf("Constant %d\n", c.Value()) }
func (d *dumper) VisitVariable(v *Variable) { d.cp.Printf("Variable %s\n", v.Name()) }
func (d *dumper) VisitSum(s *Sum)           { d.binary("Sum", &s.binaryNode) }
func (d *dumper) VisitProduct(p *Product)   { d.binary("Product", &p.binaryNode) }

func (d *dumper) binary(kind string, b *binaryNode) {
	d.cp.Println(kind)
	WithIndent(1, d.cp, func(CodePrinter) {
		b.Left().Accept(d)
		b.Right().Accept(d)
	})
}
