package privacy

import (
	"github.com/DridgerVE/openbidder/config"
)

const defaultActivityResult = true

// ActivityControl answers "is this activity allowed against this component" for one
// account. It is immutable after construction and safe for concurrent use.
type ActivityControl struct {
	plans map[Activity]ActivityPlan
}

func NewActivityControl(cfg *config.AccountPrivacy) ActivityControl {
	ac := ActivityControl{}

	if cfg == nil || cfg.AllowActivities == nil {
		return ac
	}

	plans := make(map[Activity]ActivityPlan, 8)
	plans[ActivitySyncUser] = buildPlan(cfg.AllowActivities.SyncUser)
	plans[ActivityFetchBids] = buildPlan(cfg.AllowActivities.FetchBids)
	plans[ActivityEnrichUserFPD] = buildPlan(cfg.AllowActivities.EnrichUserFPD)
	plans[ActivityReportAnalytics] = buildPlan(cfg.AllowActivities.ReportAnalytics)
	plans[ActivityTransmitUserFPD] = buildPlan(cfg.AllowActivities.TransmitUserFPD)
	plans[ActivityTransmitPreciseGeo] = buildPlan(cfg.AllowActivities.TransmitPreciseGeo)
	plans[ActivityTransmitUniqueRequestIds] = buildPlan(cfg.AllowActivities.TransmitUniqueRequestIds)
	plans[ActivityTransmitTids] = buildPlan(cfg.AllowActivities.TransmitTids)
	ac.plans = plans

	return ac
}

func buildPlan(activity config.Activity) ActivityPlan {
	return ActivityPlan{
		rules:         cfgToRules(activity.Rules),
		defaultResult: cfgToDefaultResult(activity.Default),
	}
}

func cfgToRules(rules []config.ActivityRule) []Rule {
	var enfRules []Rule

	for _, r := range rules {
		er := NewConditionRule(r.Allow, r.Condition.ComponentName, r.Condition.ComponentType)
		enfRules = append(enfRules, er)
	}
	return enfRules
}

func cfgToDefaultResult(activityDefault *bool) bool {
	if activityDefault == nil {
		return defaultActivityResult
	}
	return *activityDefault
}

func (e ActivityControl) Allow(activity Activity, request ActivityRequest) bool {
	plan, planDefined := e.plans[activity]

	if !planDefined {
		return defaultActivityResult
	}

	return plan.Evaluate(request)
}

// ActivityPlan is the ordered rule list for one activity: the first rule that does
// not abstain decides, otherwise the configured default applies.
type ActivityPlan struct {
	defaultResult bool
	rules         []Rule
}

func (p ActivityPlan) Evaluate(request ActivityRequest) bool {
	for _, rule := range p.rules {
		result := rule.Evaluate(request)
		if result == ActivityDeny || result == ActivityAllow {
			return result == ActivityAllow
		}
	}
	return p.defaultResult
}
