package privacy

type ActivityResult int

const (
	ActivityAbstain ActivityResult = iota
	ActivityAllow
	ActivityDeny
)

// Rule is one entry in an activity plan. Evaluation must be pure: rules are built
// once from policy configuration and evaluated concurrently from many auction
// goroutines with no synchronization.
type Rule interface {
	Evaluate(request ActivityRequest) ActivityResult
}
