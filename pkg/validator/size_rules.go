package validator

// Required passes when value is present and not empty. Zero and false are
// present values.
func Required(_ string, value any, _ []any) (bool, error) {
	return !isEmpty(value), nil
}

// Min passes when size(value) >= params[0].
func Min(attribute string, value any, params []any) (bool, error) {
	if err := requireParameterCount(1, params, RuleMin); err != nil {
		return false, err
	}
	min, err := requireNumber(RuleMin, params, 0)
	if err != nil {
		return false, err
	}
	return size(attribute, value) >= min, nil
}

// Max passes when size(value) <= params[0].
func Max(attribute string, value any, params []any) (bool, error) {
	if err := requireParameterCount(1, params, RuleMax); err != nil {
		return false, err
	}
	max, err := requireNumber(RuleMax, params, 0)
	if err != nil {
		return false, err
	}
	return size(attribute, value) <= max, nil
}
