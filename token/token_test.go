package token_test

import (
	"testing"

	qt "github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/token"
)

func TestPositionString(t *testing.T) {
	cases := []struct {
		pos  token.Position
		want string
	}{
		{token.Position{}, "-"},
		{token.Position{Filename: "a.wisp"}, "a.wisp"},
		{token.Position{Line: 3, Column: 5}, "3:5"},
		{token.Position{Filename: "a.wisp", Line: 3, Column: 5}, "a.wisp:3:5"},
	}
	for _, c := range cases {
		qt.Assert(t, qt.Equals(c.pos.String(), c.want))
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	qt.Assert(t, qt.IsTrue(token.TUPLE < token.TEST))
	qt.Assert(t, qt.IsTrue(token.TEST < token.BOOLOR))
	qt.Assert(t, qt.IsTrue(token.BOOLOR < token.BOOLAND))
	qt.Assert(t, qt.IsTrue(token.BOOLAND < token.NOTPREC))
	qt.Assert(t, qt.IsTrue(token.NOTPREC < token.CMP))
	qt.Assert(t, qt.IsTrue(token.CMP < token.BOR))
	qt.Assert(t, qt.IsTrue(token.BOR < token.BXOR))
	qt.Assert(t, qt.IsTrue(token.BXOR < token.BAND))
	qt.Assert(t, qt.IsTrue(token.BAND < token.SHIFT))
	qt.Assert(t, qt.IsTrue(token.SHIFT < token.ARITH))
	qt.Assert(t, qt.IsTrue(token.ARITH < token.TERM))
	qt.Assert(t, qt.IsTrue(token.TERM < token.FACTOR))
	qt.Assert(t, qt.IsTrue(token.FACTOR < token.POWER))
	qt.Assert(t, qt.IsTrue(token.POWER < token.AWAIT))
	qt.Assert(t, qt.IsTrue(token.AWAIT < token.ATOM))
	qt.Assert(t, qt.Equals(token.EXPR, token.BOR))
}

func TestOperatorPrecedence(t *testing.T) {
	qt.Assert(t, qt.Equals(token.LOR.Precedence(), token.BOOLOR))
	qt.Assert(t, qt.Equals(token.LAND.Precedence(), token.BOOLAND))
	qt.Assert(t, qt.Equals(token.EQL.Precedence(), token.CMP))
	qt.Assert(t, qt.Equals(token.OR.Precedence(), token.BOR))
	qt.Assert(t, qt.Equals(token.XOR.Precedence(), token.BXOR))
	qt.Assert(t, qt.Equals(token.AND.Precedence(), token.BAND))
	qt.Assert(t, qt.Equals(token.SHL.Precedence(), token.SHIFT))
	qt.Assert(t, qt.Equals(token.ADD.Precedence(), token.ARITH))
	qt.Assert(t, qt.Equals(token.MUL.Precedence(), token.TERM))
	qt.Assert(t, qt.Equals(token.POW.Precedence(), token.POWER))
}

func TestTokenString(t *testing.T) {
	qt.Assert(t, qt.Equals(token.NOT.String(), "not "))
	qt.Assert(t, qt.Equals(token.ISNOT.String(), "is not"))
	qt.Assert(t, qt.Equals(token.POW.String(), "**"))
}
