package model

import "time"

// ControlMode is the IMS SS <imsss:controlMode> flag set attached to an
// item's sequencing. Defaults follow the IMS SS specification's own
// defaults.
type ControlMode struct {
	Choice                           bool // default true
	ChoiceExit                       bool // default true
	Flow                             bool // default false
	ForwardOnly                      bool // default false
	UseCurrentAttemptObjectiveInfo   bool // default true
	UseCurrentAttemptProgressInfo    bool // default true
}

// DefaultControlMode returns the IMS SS default flag set.
func DefaultControlMode() ControlMode {
	return ControlMode{
		Choice:                         true,
		ChoiceExit:                     true,
		Flow:                           false,
		ForwardOnly:                    false,
		UseCurrentAttemptObjectiveInfo: true,
		UseCurrentAttemptProgressInfo:  true,
	}
}

// RuleConditionType enumerates the IMS SS rule-condition vocabulary. This
// admits Unknown since authoring tools occasionally emit ADL-extension
// condition names alongside the IMS SS core set.
type RuleConditionType string

const RuleConditionUnknown RuleConditionType = "unknown"

// RuleCondition is a single condition inside a sequencing rule.
type RuleCondition struct {
	Condition RuleConditionType
	Operator  string // "" or "not"
}

// RuleActionType enumerates pre/post/exit condition rule actions.
type RuleActionType string

const RuleActionUnknown RuleActionType = "unknown"

// SequencingRule binds a condition set to an action.
type SequencingRule struct {
	Conditions           []RuleCondition
	ConditionCombination CombinatorType
	Action               RuleActionType
}

// SequencingRules groups the three rule categories IMS SS defines.
type SequencingRules struct {
	PreConditionRules  []SequencingRule
	PostConditionRules []SequencingRule
	ExitConditionRules []SequencingRule
}

// LimitConditions bounds attempts and duration on an activity.
type LimitConditions struct {
	AttemptLimit                 *int
	AttemptAbsoluteDurationLimit *time.Duration
}

// RollupCondition is a single condition inside a rollup rule.
type RollupCondition struct {
	Condition string
	Operator  string
}

// RollupActionType enumerates rollup rule actions.
type RollupActionType string

const RollupActionUnknown RollupActionType = "unknown"

// RollupRule derives a parent's status from a subset of its children
//.
type RollupRule struct {
	ChildActivitySet     ChildActivitySetType
	MinimumCount         int
	MinimumPercent       float64
	Conditions           []RollupCondition
	ConditionCombination CombinatorType
	Action               RollupActionType
}

// RollupConsiderations are the adlseq rollup consideration booleans.
type RollupConsiderations struct {
	RequiredForSatisfied        bool
	RequiredForNotSatisfied     bool
	RequiredForCompleted        bool
	RequiredForIncomplete       bool
	MeasureSatisfactionIfActive bool // default true
}

// ObjectiveMapping binds an activity's internal objective to a shared
// global objective with eight read/write permission booleans. Defaults follow the ADL sequencing
// extension: reads default true, writes default false.
type ObjectiveMapping struct {
	TargetObjectiveID     string
	ReadSatisfiedStatus   bool
	ReadNormalizedMeasure bool
	ReadCompletionStatus  bool
	ReadProgressMeasure   bool
	WriteSatisfiedStatus   bool
	WriteNormalizedMeasure bool
	WriteCompletionStatus  bool
	WriteProgressMeasure   bool
}

// DefaultObjectiveMapping returns the ADL-specified read/write defaults.
func DefaultObjectiveMapping() ObjectiveMapping {
	return ObjectiveMapping{
		ReadSatisfiedStatus:   true,
		ReadNormalizedMeasure: true,
		ReadCompletionStatus:  true,
		ReadProgressMeasure:   true,
	}
}

// Objective is a single <imsss:objective>, either the primary one or a
// member of the non-primary objectives list.
type Objective struct {
	ObjectiveID          string
	SatisfiedByMeasure   bool
	MinNormalizedMeasure float64
	Mapping              []ObjectiveMapping
}

// Objectives groups the primary objective with any additional ones.
type Objectives struct {
	Primary    *Objective
	Additional []Objective
}

// RandomizationTiming/SelectionTiming enumerate when randomization or
// selection is (re-)applied.
type RandomizationTiming string

const (
	TimingNever            RandomizationTiming = "never"
	TimingOnce             RandomizationTiming = "once"
	TimingOnEachNewAttempt RandomizationTiming = "on_each_new_attempt"
)

// RandomizationControls governs child-activity selection and reordering.
type RandomizationControls struct {
	RandomizationTiming RandomizationTiming
	SelectCount         *int
	Reorder             bool
	SelectionTiming     RandomizationTiming
}

// DeliveryControls governs tracking and content-vs-sequencing status
// ownership for an activity.
type DeliveryControls struct {
	Tracked                bool // default true
	CompletionSetByContent bool // default false
	ObjectiveSetByContent  bool // default false
}

// DefaultDeliveryControls returns the IMS SS defaults.
func DefaultDeliveryControls() DeliveryControls {
	return DeliveryControls{Tracked: true}
}

// Sequencing is the full IMS Simple Sequencing declaration attached to a
// SCORM 2004 Item. Every field is optional in the source; omitted
// sub-elements keep their IMS SS defaults or zero values. An item with no
// <sequencing> element has a nil *Sequencing, and that nil is what the
// classification rule uses to tell `none` apart from `minimal`.
type Sequencing struct {
	ControlMode           ControlMode
	SequencingRules        SequencingRules
	LimitConditions       LimitConditions
	RollupRules           []RollupRule
	Objectives            Objectives
	RandomizationControls RandomizationControls
	DeliveryControls      DeliveryControls
	RollupConsiderations  RollupConsiderations
}

// HasRollup reports whether any rollup rule is declared.
func (s *Sequencing) HasRollup() bool {
	return s != nil && len(s.RollupRules) > 0
}

// HasObjectiveMapping reports whether any objective declares a
// cross-activity mapping.
func (s *Sequencing) HasObjectiveMapping() bool {
	if s == nil {
		return false
	}
	if s.Objectives.Primary != nil && len(s.Objectives.Primary.Mapping) > 0 {
		return true
	}
	for _, obj := range s.Objectives.Additional {
		if len(obj.Mapping) > 0 {
			return true
		}
	}
	return false
}
