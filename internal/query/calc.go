package query

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	lumenerr "github.com/lumen-sh/lumen/internal/errors"
)

// calcParams exposes the constants the expression language accepts.
var calcParams = map[string]interface{}{
	"pi": math.Pi,
	"e":  math.E,
}

// CalcInterpreter evaluates arithmetic expressions. The trigger is
// deliberately narrow: the query must carry an operator and a digit,
// contain no letters beyond the e/pi constants, and stay between 2 and
// 50 characters, so ordinary words never evaluate.
type CalcInterpreter struct{}

func (CalcInterpreter) Name() string { return "calc" }

func (CalcInterpreter) Interpret(_ context.Context, query string) ([]Result, error) {
	expr := strings.TrimSpace(query)
	if !isCalculation(expr) {
		return nil, nil
	}

	// The expression language spells exponentiation ** rather than ^
	// (which it reserves for bitwise xor).
	rewritten := strings.ReplaceAll(expr, "^", "**")

	// A half-typed expression like "1+" passes the lexical gate but
	// fails to parse; that is ordinary typing, not an error worth a
	// log line, so failures decline quietly.
	parsed, err := govaluate.NewEvaluableExpression(rewritten)
	if err != nil {
		return nil, lumenerr.Decline(lumenerr.Wrap(lumenerr.ErrCodeEvaluationFailed, err))
	}
	value, err := parsed.Evaluate(calcParams)
	if err != nil {
		return nil, lumenerr.Decline(lumenerr.Wrap(lumenerr.ErrCodeEvaluationFailed, err))
	}
	f, ok := value.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, lumenerr.Decline(lumenerr.New(lumenerr.ErrCodeEvaluationFailed,
			"expression result is not numeric", nil))
	}

	return []Result{CalculationResult(strconv.FormatFloat(f, 'f', -1, 64))}, nil
}

// isCalculation gates evaluation on cheap lexical checks.
func isCalculation(s string) bool {
	if len(s) < 2 || len(s) > 50 {
		return false
	}
	hasOp := false
	hasDigit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '%' || c == '^':
			hasOp = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			switch c {
			case 'e', 'E', 'p', 'P', 'i', 'I':
				// constant letters
			default:
				return false
			}
		}
	}
	return hasOp && hasDigit
}
