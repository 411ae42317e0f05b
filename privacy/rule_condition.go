package privacy

import (
	"strings"
)

// ConditionRule matches on the component an activity call targets. Empty clause
// lists are unrestricted.
type ConditionRule struct {
	result        ActivityResult
	componentName []string
	componentType []string
}

// NewConditionRule builds an immutable component rule with a fixed outcome.
func NewConditionRule(allowed bool, componentNames []string, componentTypes []string) ConditionRule {
	return ConditionRule{
		result:        resultFromAllowed(allowed),
		componentName: componentNames,
		componentType: componentTypes,
	}
}

func resultFromAllowed(allowed bool) ActivityResult {
	if allowed {
		return ActivityAllow
	}
	return ActivityDeny
}

func (r ConditionRule) Evaluate(request ActivityRequest) ActivityResult {
	if matched := evaluateComponentName(request.Component, r.componentName); !matched {
		return ActivityAbstain
	}

	if matched := evaluateComponentType(request.Component, r.componentType); !matched {
		return ActivityAbstain
	}

	return r.result
}

func evaluateComponentName(target Component, componentNames []string) bool {
	// no clauses are considered a match
	if len(componentNames) == 0 {
		return true
	}

	// if there are clauses, at least one needs to match
	for _, n := range componentNames {
		if target.MatchesName(n) {
			return true
		}
	}

	return false
}

func evaluateComponentType(target Component, componentTypes []string) bool {
	// no clauses are considered a match
	if len(componentTypes) == 0 {
		return true
	}

	// if there are clauses, at least one needs to match
	for _, s := range componentTypes {
		if strings.EqualFold(s, target.Type) {
			return true
		}
	}

	return false
}
