package domain

import (
	"fmt"

	dErrors "dochub/pkg/domain-errors"
)

// DecoderTopic is a controlled identifier for a legal concern that can carry
// jurisdiction-specific notes. It is the union of CreditTopic and
// CriminalEvictionTopic.
//
// Usage: construct via ParseDecoderTopic before persisting anything keyed by
// topic; this keeps arbitrary strings out of jurisdiction records.
type DecoderTopic string

// CreditTopic is a topic owned by the credit decoder.
type CreditTopic string

// CriminalEvictionTopic is a topic owned by the criminal/eviction decoder.
type CriminalEvictionTopic string

// Credit decoder topics, in display order.
const (
	TopicSourceOfIncome        CreditTopic = "source_of_income"
	TopicIncomeRequirements    CreditTopic = "income_requirements"
	TopicCreditScoreCriteria   CreditTopic = "credit_score_criteria"
	TopicSecurityDepositLimits CreditTopic = "security_deposit_limits"
	TopicApplicationFeeLimits  CreditTopic = "application_fee_limits"
)

// Criminal/eviction decoder topics, in display order.
const (
	TopicCriminalHistoryLookback CriminalEvictionTopic = "criminal_history_lookback"
	TopicArrestRecords           CriminalEvictionTopic = "arrest_records"
	TopicConvictionCategories    CriminalEvictionTopic = "conviction_categories"
	TopicIndividualizedReview    CriminalEvictionTopic = "individualized_assessment"
	TopicFairChanceNotice        CriminalEvictionTopic = "fair_chance_notice"
	TopicEvictionHistoryLookback CriminalEvictionTopic = "eviction_history_lookback"
	TopicSealedEvictionRecords   CriminalEvictionTopic = "sealed_eviction_records"
)

// Topic widens a credit topic to the union type.
func (t CreditTopic) Topic() DecoderTopic { return DecoderTopic(t) }

// Topic widens a criminal/eviction topic to the union type.
func (t CriminalEvictionTopic) Topic() DecoderTopic { return DecoderTopic(t) }

// topicRow declares one topic with its label and risk flag. Rows are written
// as positional literals so a topic cannot be added without a label.
type topicRow[T ~string] struct {
	topic    T
	label    string
	highRisk bool
}

var creditRows = [...]topicRow[CreditTopic]{
	{TopicSourceOfIncome, "Source of Income Protections", true},
	{TopicIncomeRequirements, "Income-to-Rent Requirements", false},
	{TopicCreditScoreCriteria, "Credit Score Criteria", false},
	{TopicSecurityDepositLimits, "Security Deposit Limits", true},
	{TopicApplicationFeeLimits, "Application Fee Limits", false},
}

var criminalEvictionRows = [...]topicRow[CriminalEvictionTopic]{
	{TopicCriminalHistoryLookback, "Criminal History Lookback Period", true},
	{TopicArrestRecords, "Arrest Records", true},
	{TopicConvictionCategories, "Conviction Categories", false},
	{TopicIndividualizedReview, "Individualized Assessment", true},
	{TopicFairChanceNotice, "Fair Chance Notice", false},
	{TopicEvictionHistoryLookback, "Eviction History Lookback Period", false},
	{TopicSealedEvictionRecords, "Sealed Eviction Records", true},
}

// Minimum topics a jurisdiction must cover to be decoder-ready. Typed per
// category so a cross-category entry does not compile.
var (
	requiredCredit = []CreditTopic{
		TopicSourceOfIncome,
		TopicIncomeRequirements,
		TopicSecurityDepositLimits,
	}
	requiredCriminalEviction = []CriminalEvictionTopic{
		TopicCriminalHistoryLookback,
		TopicIndividualizedReview,
		TopicEvictionHistoryLookback,
	}
)

// topicRegistry is derived once from the row tables and never mutated.
type topicRegistry struct {
	credit           []CreditTopic
	criminalEviction []CriminalEvictionTopic
	all              []DecoderTopic
	labels           map[DecoderTopic]string
	highRisk         []DecoderTopic
	highRiskSet      map[DecoderTopic]bool
	category         map[DecoderTopic]DecoderCategory
	byCategory       map[DecoderCategory][]DecoderTopic
	required         map[DecoderCategory][]DecoderTopic
}

var registry = buildTopicRegistry()

func buildTopicRegistry() *topicRegistry {
	reg := &topicRegistry{
		labels:      make(map[DecoderTopic]string),
		highRiskSet: make(map[DecoderTopic]bool),
		category:    make(map[DecoderTopic]DecoderCategory),
		byCategory:  make(map[DecoderCategory][]DecoderTopic),
		required:    make(map[DecoderCategory][]DecoderTopic),
	}

	add := func(t DecoderTopic, label string, highRisk bool, c DecoderCategory) {
		if _, dup := reg.category[t]; dup {
			panic(fmt.Sprintf("decoder topic %q declared twice", t))
		}
		if label == "" {
			panic(fmt.Sprintf("decoder topic %q has no label", t))
		}
		reg.all = append(reg.all, t)
		reg.labels[t] = label
		reg.category[t] = c
		reg.byCategory[c] = append(reg.byCategory[c], t)
		if highRisk {
			reg.highRisk = append(reg.highRisk, t)
			reg.highRiskSet[t] = true
		}
	}

	for _, row := range creditRows {
		reg.credit = append(reg.credit, row.topic)
		add(row.topic.Topic(), row.label, row.highRisk, DecoderCredit)
	}
	for _, row := range criminalEvictionRows {
		reg.criminalEviction = append(reg.criminalEviction, row.topic)
		add(row.topic.Topic(), row.label, row.highRisk, DecoderCriminalEviction)
	}

	for _, t := range requiredCredit {
		reg.required[DecoderCredit] = append(reg.required[DecoderCredit], t.Topic())
	}
	for _, t := range requiredCriminalEviction {
		reg.required[DecoderCriminalEviction] = append(reg.required[DecoderCriminalEviction], t.Topic())
	}
	for c, topics := range reg.required {
		for _, t := range topics {
			if reg.category[t] != c {
				panic(fmt.Sprintf("required topic %q is not a %s topic", t, c))
			}
		}
	}
	return reg
}

func cloneTopics[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// CreditTopics returns the credit decoder's topics in declared order.
func CreditTopics() []CreditTopic {
	return cloneTopics(registry.credit)
}

// CriminalEvictionTopics returns the criminal/eviction decoder's topics in
// declared order.
func CriminalEvictionTopics() []CriminalEvictionTopic {
	return cloneTopics(registry.criminalEviction)
}

// AllTopics returns every topic: credit first, then criminal/eviction.
func AllTopics() []DecoderTopic {
	return cloneTopics(registry.all)
}

// TopicLabels returns a copy of the topic → label mapping. Every topic has
// exactly one label.
func TopicLabels() map[DecoderTopic]string {
	out := make(map[DecoderTopic]string, len(registry.labels))
	for k, v := range registry.labels {
		out[k] = v
	}
	return out
}

// HighRiskTopics returns topics that warrant a stronger warning when a
// jurisdiction has no notes for them.
func HighRiskTopics() []DecoderTopic {
	return cloneTopics(registry.highRisk)
}

// RequiredCreditTopics returns the credit decoder's required subset.
func RequiredCreditTopics() []CreditTopic {
	return cloneTopics(requiredCredit)
}

// RequiredCriminalEvictionTopics returns the criminal/eviction decoder's
// required subset.
func RequiredCriminalEvictionTopics() []CriminalEvictionTopic {
	return cloneTopics(requiredCriminalEviction)
}

// RequiredTopicsForDecoder returns the minimum topics for the category.
// Unknown categories yield nil.
func RequiredTopicsForDecoder(category DecoderCategory) []DecoderTopic {
	return cloneTopics(registry.required[category])
}

// TopicsForDecoder returns every topic of the category in declared order.
// Unknown categories yield nil.
func TopicsForDecoder(category DecoderCategory) []DecoderTopic {
	return cloneTopics(registry.byCategory[category])
}

// IsTopicForDecoder reports whether topic belongs to category. It returns
// false for unknown strings and for topics of the other category, and is safe
// to call with untrusted input.
func IsTopicForDecoder(topic string, category DecoderCategory) bool {
	c, ok := registry.category[DecoderTopic(topic)]
	return ok && c == category
}

// TopicLabel returns the human-readable label, or "" for unknown topics.
func TopicLabel(topic DecoderTopic) string {
	return registry.labels[topic]
}

// ParseDecoderTopic validates an identifier against the category's
// vocabulary.
//
// Errors: returns CodeInvalidInput when the value is empty, unknown, or
// belongs to another decoder.
func ParseDecoderTopic(s string, category DecoderCategory) (DecoderTopic, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "topic cannot be empty")
	}
	if !category.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unsupported decoder category")
	}
	if !IsTopicForDecoder(s, category) {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("topic %q is not a %s topic", s, category))
	}
	return DecoderTopic(s), nil
}

// IsValid reports whether the topic belongs to any decoder.
func (t DecoderTopic) IsValid() bool {
	_, ok := registry.category[t]
	return ok
}

// IsHighRisk reports whether the topic is in the high-risk subset.
func (t DecoderTopic) IsHighRisk() bool {
	return registry.highRiskSet[t]
}

// Category returns the decoder owning the topic.
func (t DecoderTopic) Category() (DecoderCategory, bool) {
	c, ok := registry.category[t]
	return c, ok
}

// Label returns the topic's human-readable label.
func (t DecoderTopic) Label() string {
	return registry.labels[t]
}

// String returns the string representation of the topic.
func (t DecoderTopic) String() string {
	return string(t)
}
