package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/monkey/token"
)

func TestString_LetStatement(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.New(token.LET, "let"),
				Name: &Identifier{
					Token: token.New(token.IDENT, "myVar"),
					Value: "myVar",
				},
				Value: &Identifier{
					Token: token.New(token.IDENT, "anotherVar"),
					Value: "anotherVar",
				},
			},
		},
	}

	assert.Equal(t, "let myVar = anotherVar;", program.String())
}

func TestString_InfixAndPrefix(t *testing.T) {
	expr := &InfixExpression{
		Token:    token.New(token.PLUS, "+"),
		Left:     &PrefixExpression{Token: token.New(token.MINUS, "-"), Operator: "-", Right: &IntegerLiteral{Token: token.New(token.INT, "5"), Value: 5}},
		Operator: "+",
		Right:    &IntegerLiteral{Token: token.New(token.INT, "10"), Value: 10},
	}

	assert.Equal(t, "((-5) + 10)", expr.String())
}

func TestString_FunctionLiteralConcatenatesParams(t *testing.T) {
	fn := &FunctionLiteral{
		Token: token.New(token.FUNCTION, "fn"),
		Parameters: []*Identifier{
			{Token: token.New(token.IDENT, "x"), Value: "x"},
			{Token: token.New(token.IDENT, "y"), Value: "y"},
		},
		Body: &BlockStatement{
			Token: token.New(token.LBRACE, "{"),
			Statements: []Statement{
				&ExpressionStatement{
					Token:      token.New(token.IDENT, "x"),
					Expression: &Identifier{Token: token.New(token.IDENT, "x"), Value: "x"},
				},
			},
		},
	}

	assert.Equal(t, "fn(xy) x", fn.String())
}
