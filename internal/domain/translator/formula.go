package translator

import "github.com/Knetic/govaluate"

// Evaluate applies a formula like "x * 2.54" or "x / 2.54 + 7" to x. An
// empty, unparsable or non-numeric formula leaves x unchanged.
func Evaluate(formula string, x float64) float64 {
	if formula == "" {
		return x
	}
	expression, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return x
	}
	result, err := expression.Evaluate(map[string]interface{}{"x": x})
	if err != nil {
		return x
	}
	if val, ok := result.(float64); ok {
		return val
	}
	return x
}
