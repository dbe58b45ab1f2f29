package common

import (
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

// DecodeSequencing walks an <imsss:sequencing> Node into a model.Sequencing.
// Returns nil when n is nil, so callers can assign Item.Sequencing directly
// and rely on nil meaning "not declared" for the sequencing-level
// classification rule. Numeric/boolean/duration coercions that fail to
// parse their raw attribute value append a warning to warnings instead of
// silently keeping their default.
func DecodeSequencing(n *xmlutil.Node, warnings *elmerrors.WarningList) *model.Sequencing {
	if n == nil {
		return nil
	}
	s := &model.Sequencing{
		ControlMode:      model.DefaultControlMode(),
		DeliveryControls: model.DefaultDeliveryControls(),
	}
	if cm := n.Child("controlmode"); cm != nil {
		s.ControlMode = decodeControlMode(cm, warnings)
	}
	s.SequencingRules = decodeSequencingRules(n.Child("sequencingrules"))
	if lc := n.Child("limitconditions"); lc != nil {
		s.LimitConditions = decodeLimitConditions(lc, warnings)
	}
	for _, rr := range n.ChildrenNamed("rollupruleset") {
		for _, rule := range rr.ChildrenNamed("rolluprule") {
			s.RollupRules = append(s.RollupRules, decodeRollupRule(rule, warnings))
		}
	}
	if obj := n.Child("objectives"); obj != nil {
		s.Objectives = decodeObjectives(obj, warnings)
	}
	if rc := n.Child("randomizationcontrols"); rc != nil {
		s.RandomizationControls = decodeRandomizationControls(rc, warnings)
	}
	if dc := n.Child("deliverycontrols"); dc != nil {
		s.DeliveryControls = decodeDeliveryControls(dc, warnings)
	}
	if rcons := n.Child("rollupconsiderations"); rcons != nil {
		s.RollupConsiderations = decodeRollupConsiderations(rcons, warnings)
	}
	return s
}

func boolAttr(n *xmlutil.Node, name string, def bool, warnings *elmerrors.WarningList) bool {
	raw, ok := n.Attr(name)
	if !ok {
		return def
	}
	v, warn := xmlutil.ParseBoolLenient("sequencing."+name, raw, def)
	if warn != nil {
		warnings.Add(warn.FieldPath, warn.Message)
	}
	return v
}

func decodeControlMode(n *xmlutil.Node, warnings *elmerrors.WarningList) model.ControlMode {
	def := model.DefaultControlMode()
	return model.ControlMode{
		Choice:                         boolAttr(n, "choice", def.Choice, warnings),
		ChoiceExit:                     boolAttr(n, "choiceexit", def.ChoiceExit, warnings),
		Flow:                           boolAttr(n, "flow", def.Flow, warnings),
		ForwardOnly:                    boolAttr(n, "forwardonly", def.ForwardOnly, warnings),
		UseCurrentAttemptObjectiveInfo: boolAttr(n, "usecurrentattemptobjectiveinfo", def.UseCurrentAttemptObjectiveInfo, warnings),
		UseCurrentAttemptProgressInfo:  boolAttr(n, "usecurrentattemptprogressinfo", def.UseCurrentAttemptProgressInfo, warnings),
	}
}

func decodeRuleCondition(n *xmlutil.Node) model.RuleCondition {
	cond, _ := n.Attr("condition")
	op, _ := n.Attr("operator")
	return model.RuleCondition{Condition: model.RuleConditionType(cond), Operator: op}
}

func decodeRuleSet(nodes []*xmlutil.Node) []model.SequencingRule {
	var out []model.SequencingRule
	for _, ruleNode := range nodes {
		rule := model.SequencingRule{Action: model.RuleActionUnknown}
		if conds := ruleNode.Child("ruleconditions"); conds != nil {
			combo, _ := conds.Attr("conditioncombination")
			rule.ConditionCombination = model.ParseCombinatorType(combo)
			for _, c := range conds.ChildrenNamed("rulecondition") {
				rule.Conditions = append(rule.Conditions, decodeRuleCondition(c))
			}
		}
		if action := ruleNode.Child("ruleaction"); action != nil {
			if a, ok := action.Attr("action"); ok {
				rule.Action = model.RuleActionType(a)
			}
		}
		out = append(out, rule)
	}
	return out
}

func decodeSequencingRules(n *xmlutil.Node) model.SequencingRules {
	if n == nil {
		return model.SequencingRules{}
	}
	return model.SequencingRules{
		PreConditionRules:  decodeRuleSet(n.ChildrenNamed("preconditionrule")),
		PostConditionRules: decodeRuleSet(n.ChildrenNamed("postconditionrule")),
		ExitConditionRules: decodeRuleSet(n.ChildrenNamed("exitconditionrule")),
	}
}

func decodeLimitConditions(n *xmlutil.Node, warnings *elmerrors.WarningList) model.LimitConditions {
	lc := model.LimitConditions{}
	if raw, ok := n.Attr("attemptlimit"); ok {
		v, warn := xmlutil.ParseIntLenient("sequencing.limitConditions.attemptLimit", raw, 0)
		if warn != nil {
			warnings.Add(warn.FieldPath, warn.Message)
		}
		lc.AttemptLimit = &v
	}
	if raw, ok := n.Attr("attemptabsolutedurationlimit"); ok {
		d, warn := xmlutil.ParseISO8601Duration("sequencing.limitConditions.attemptAbsoluteDurationLimit", raw)
		if warn != nil {
			warnings.Add(warn.FieldPath, warn.Message)
		}
		lc.AttemptAbsoluteDurationLimit = &d
	}
	return lc
}

func decodeRollupRule(n *xmlutil.Node, warnings *elmerrors.WarningList) model.RollupRule {
	rule := model.RollupRule{Action: model.RollupActionUnknown}
	childSet, _ := n.Attr("childactivityset")
	rule.ChildActivitySet = model.ParseChildActivitySetType(childSet)
	if raw, ok := n.Attr("minimumcount"); ok {
		v, warn := xmlutil.ParseIntLenient("sequencing.rollupRule.minimumCount", raw, 0)
		if warn != nil {
			warnings.Add(warn.FieldPath, warn.Message)
		}
		rule.MinimumCount = v
	}
	if raw, ok := n.Attr("minimumpercent"); ok {
		v, warn := xmlutil.ParseFloatLenient("sequencing.rollupRule.minimumPercent", raw, 0)
		if warn != nil {
			warnings.Add(warn.FieldPath, warn.Message)
		}
		rule.MinimumPercent = v
	}
	if conds := n.Child("rollupconditions"); conds != nil {
		combo, _ := conds.Attr("conditioncombination")
		rule.ConditionCombination = model.ParseCombinatorType(combo)
		for _, c := range conds.ChildrenNamed("rollupcondition") {
			cond, _ := c.Attr("condition")
			op, _ := c.Attr("operator")
			rule.Conditions = append(rule.Conditions, model.RollupCondition{Condition: cond, Operator: op})
		}
	}
	if action := n.Child("rollupaction"); action != nil {
		if a, ok := action.Attr("action"); ok {
			rule.Action = model.RollupActionType(a)
		}
	}
	return rule
}

func decodeObjectiveMapping(n *xmlutil.Node, warnings *elmerrors.WarningList) model.ObjectiveMapping {
	m := model.DefaultObjectiveMapping()
	target, _ := n.Attr("targetobjectiveid")
	m.TargetObjectiveID = target
	m.ReadSatisfiedStatus = boolAttr(n, "readsatisfiedstatus", m.ReadSatisfiedStatus, warnings)
	m.ReadNormalizedMeasure = boolAttr(n, "readnormalizedmeasure", m.ReadNormalizedMeasure, warnings)
	m.ReadCompletionStatus = boolAttr(n, "readcompletionstatus", m.ReadCompletionStatus, warnings)
	m.ReadProgressMeasure = boolAttr(n, "readprogressmeasure", m.ReadProgressMeasure, warnings)
	m.WriteSatisfiedStatus = boolAttr(n, "writesatisfiedstatus", m.WriteSatisfiedStatus, warnings)
	m.WriteNormalizedMeasure = boolAttr(n, "writenormalizedmeasure", m.WriteNormalizedMeasure, warnings)
	m.WriteCompletionStatus = boolAttr(n, "writecompletionstatus", m.WriteCompletionStatus, warnings)
	m.WriteProgressMeasure = boolAttr(n, "writeprogressmeasure", m.WriteProgressMeasure, warnings)
	return m
}

func decodeObjective(n *xmlutil.Node, warnings *elmerrors.WarningList) model.Objective {
	obj := model.Objective{}
	id, _ := n.Attr("objectiveid")
	obj.ObjectiveID = id
	obj.SatisfiedByMeasure = boolAttr(n, "satisfiedbymeasure", false, warnings)
	if mm := n.Child("minnormalizedmeasure"); mm != nil {
		v, warn := xmlutil.ParseFloatLenient("sequencing.objective.minNormalizedMeasure", mm.Text, 1.0)
		if warn != nil {
			warnings.Add(warn.FieldPath, warn.Message)
		}
		obj.MinNormalizedMeasure = v
	} else {
		obj.MinNormalizedMeasure = 1.0
	}
	for _, mapping := range n.ChildrenNamed("mapinfo") {
		obj.Mapping = append(obj.Mapping, decodeObjectiveMapping(mapping, warnings))
	}
	return obj
}

func decodeObjectives(n *xmlutil.Node, warnings *elmerrors.WarningList) model.Objectives {
	objs := model.Objectives{}
	if primary := n.Child("primaryobjective"); primary != nil {
		o := decodeObjective(primary, warnings)
		objs.Primary = &o
	}
	for _, extra := range n.ChildrenNamed("objective") {
		objs.Additional = append(objs.Additional, decodeObjective(extra, warnings))
	}
	return objs
}

func decodeRandomizationControls(n *xmlutil.Node, warnings *elmerrors.WarningList) model.RandomizationControls {
	rc := model.RandomizationControls{RandomizationTiming: model.TimingNever, SelectionTiming: model.TimingNever}
	if raw, ok := n.Attr("randomizationtiming"); ok {
		rc.RandomizationTiming = model.RandomizationTiming(raw)
	}
	if raw, ok := n.Attr("selectcount"); ok {
		v, warn := xmlutil.ParseIntLenient("sequencing.randomizationControls.selectCount", raw, 0)
		if warn != nil {
			warnings.Add(warn.FieldPath, warn.Message)
		}
		rc.SelectCount = &v
	}
	rc.Reorder = boolAttr(n, "reordenchildren", false, warnings) || boolAttr(n, "reorderchildren", false, warnings)
	if raw, ok := n.Attr("selectiontiming"); ok {
		rc.SelectionTiming = model.RandomizationTiming(raw)
	}
	return rc
}

func decodeDeliveryControls(n *xmlutil.Node, warnings *elmerrors.WarningList) model.DeliveryControls {
	def := model.DefaultDeliveryControls()
	return model.DeliveryControls{
		Tracked:                boolAttr(n, "tracked", def.Tracked, warnings),
		CompletionSetByContent: boolAttr(n, "completionsetbycontent", def.CompletionSetByContent, warnings),
		ObjectiveSetByContent:  boolAttr(n, "objectivesetbycontent", def.ObjectiveSetByContent, warnings),
	}
}

func decodeRollupConsiderations(n *xmlutil.Node, warnings *elmerrors.WarningList) model.RollupConsiderations {
	return model.RollupConsiderations{
		RequiredForSatisfied:        boolAttr(n, "requiredforsatisfied", false, warnings),
		RequiredForNotSatisfied:     boolAttr(n, "requiredfornotsatisfied", false, warnings),
		RequiredForCompleted:        boolAttr(n, "requiredforcompleted", false, warnings),
		RequiredForIncomplete:       boolAttr(n, "requiredforincomplete", false, warnings),
		MeasureSatisfactionIfActive: boolAttr(n, "measuresatisfactionifactive", true, warnings),
	}
}
