package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalNumber evaluates an attribute expression down to a cty number. The
// fleet definition language has no variables, so expressions evaluate in an
// empty context.
func evalNumber(expr hcl.Expression) (cty.Value, bool, error) {
	if expr == nil {
		return cty.NilVal, false, nil
	}

	value, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false, diags
	}
	if value.IsNull() {
		return cty.NilVal, false, nil
	}

	converted, err := convert.Convert(value, cty.Number)
	if err != nil {
		return cty.NilVal, false, fmt.Errorf("cannot convert %s to number: %w",
			value.Type().FriendlyName(), err)
	}
	return converted, true, nil
}

// evalQty evaluates a qty expression, applying the implicit default of 1
// when the attribute is absent. Out-of-range values pass through for the
// validator to reject.
func evalQty(expr hcl.Expression) (int, error) {
	value, present, err := evalNumber(expr)
	if err != nil {
		return 0, err
	}
	if !present {
		return 1, nil
	}

	var qty int
	if err := gocty.FromCtyValue(value, &qty); err != nil {
		return 0, fmt.Errorf("qty must be an integer: %w", err)
	}
	return qty, nil
}

// evalOptionalNumber evaluates an optional characterization attribute,
// returning nil when it is absent.
func evalOptionalNumber(expr hcl.Expression) (*float64, error) {
	value, present, err := evalNumber(expr)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	var f float64
	if err := gocty.FromCtyValue(value, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
