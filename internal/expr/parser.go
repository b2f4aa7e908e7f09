// Package expr parses and applies assignment expressions such as
// `columns = 4; item[2].colSpan = 2; item[0].text = "Hero"`.
package expr

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#[0-9A-Za-z]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ratio", Pattern: `\d+:\d+`},
		{Name: "Word", Pattern: `\d+[A-Za-z][A-Za-z0-9]*`},
		{Name: "Number", Pattern: `-?\d+(?:\.\d+)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[][=.;]`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
)

// Script is a sequence of statements separated by semicolons.
type Script struct {
	Statements []*Statement `parser:"';'* ( @@ ';'* )*"`
}

// Statement is either a reset or an assignment.
type Statement struct {
	Pos    lexer.Position `parser:""`
	Reset  *Reset         `parser:"  @@"`
	Assign *Assignment    `parser:"| @@"`
}

// Reset returns a cell to the grid defaults.
type Reset struct {
	Item *ItemRef `parser:"'reset' @@"`
}

// Assignment sets a grid field, or a cell field when Item is present.
type Assignment struct {
	Item  *ItemRef `parser:"( @@ '.' )?"`
	Field string   `parser:"@Ident"`
	Value *Value   `parser:"'=' @@"`
}

// ItemRef addresses a cell by zero-based index.
type ItemRef struct {
	Index int `parser:"'item' '[' @Number ']'"`
}

// Value is the right-hand side of an assignment.
type Value struct {
	Color  *string  `parser:"  @Color"`
	Quoted *string  `parser:"| @String"`
	Number *float64 `parser:"| @Number"`
	Bool   *Boolean `parser:"| @('true' | 'false')"`
	Word   *string  `parser:"| @(Ratio | Word | Ident)"`
}

// Boolean captures the true and false keywords.
type Boolean bool

// Capture implements participle.Capture.
func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// Interface returns the value in the form the grid mutators accept.
func (v *Value) Interface() any {
	switch {
	case v == nil:
		return nil
	case v.Color != nil:
		return *v.Color
	case v.Quoted != nil:
		return *v.Quoted
	case v.Number != nil:
		return *v.Number
	case v.Bool != nil:
		return bool(*v.Bool)
	case v.Word != nil:
		return *v.Word
	default:
		return nil
	}
}

// String renders the value as it would be written in an expression.
func (v *Value) String() string {
	switch {
	case v == nil:
		return ""
	case v.Quoted != nil:
		return strconv.Quote(*v.Quoted)
	case v.Number != nil:
		return strconv.FormatFloat(*v.Number, 'f', -1, 64)
	case v.Bool != nil:
		return strconv.FormatBool(bool(*v.Bool))
	case v.Color != nil:
		return *v.Color
	case v.Word != nil:
		return *v.Word
	default:
		return ""
	}
}

// Parse parses src into a script without applying it.
func Parse(src string) (*Script, error) {
	return scriptParser.ParseString("", src)
}
