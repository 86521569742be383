package handler

import (

	"dochub/pkg/domain"
	dErrors "dochub/pkg/domain-errors"
)

// maxTopicsPerRequest bounds validation and readiness request bodies.
const maxTopicsPerRequest = 100

// TopicResponse describes one topic for the admin UI.
type TopicResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	HighRisk bool   `json:"high_risk"`
	Required bool   `json:"required"`
}

// CatalogResponse is the full topic catalog.
type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryResponse lists one decoder's topics in declared order.
type CategoryResponse struct {
	Category string          `json:"category"`
	Topics   []TopicResponse `json:"topics"`
	Required []string        `json:"required"`
}

// ValidateTopicsRequest is the body of POST /decoder/{category}/topics/validate.
type ValidateTopicsRequest struct {
	Topics []string `json:"topics"`
}

// Validate implements httputil.Validatable.
func (r *ValidateTopicsRequest) Validate() error {
	return validateTopicList(r.Topics, "topics")
}

// ValidateTopicsResponse splits the input into accepted and rejected topics.
type ValidateTopicsResponse struct {
	Category string   `json:"category"`
	Valid    []string `json:"valid"`
	Rejected []string `json:"rejected"`
}

// ReadinessRequest is the body of POST /decoder/{category}/readiness.
type ReadinessRequest struct {
	AuthoredTopics []string `json:"authored_topics"`
}

// Validate implements httputil.Validatable.
func (r *ReadinessRequest) Validate() error {
	return validateTopicList(r.AuthoredTopics, "authored_topics")
}

// ReadinessResponse reports decoder readiness for a set of authored topics.
type ReadinessResponse struct {
	Category        string          `json:"category"`
	Ready           bool            `json:"ready"`
	Missing         []TopicResponse `json:"missing"`
	MissingHighRisk []TopicResponse `json:"missing_high_risk"`
	Rejected        []string        `json:"rejected"`
}

func validateTopicList(topics []string, field string) error {
	if len(topics) > maxTopicsPerRequest {
		return dErrors.New(dErrors.CodeValidation, field+" has too many entries")
	}
	return nil
}

func toTopicResponse(t domain.DecoderTopic, required map[domain.DecoderTopic]bool) TopicResponse {
	c, _ := t.Category()
	return TopicResponse{
		ID:       t.String(),
		Label:    t.Label(),
		Category: c.String(),
		HighRisk: t.IsHighRisk(),
		Required: required[t],
	}
}

func requiredSet(c domain.DecoderCategory) map[domain.DecoderTopic]bool {
	set := make(map[domain.DecoderTopic]bool)
	for _, t := range domain.RequiredTopicsForDecoder(c) {
		set[t] = true
	}
	return set
}

func categoryResponse(c domain.DecoderCategory) CategoryResponse {
	required := requiredSet(c)
	resp := CategoryResponse{Category: c.String(), Topics: []TopicResponse{}, Required: []string{}}
	for _, t := range domain.TopicsForDecoder(c) {
		resp.Topics = append(resp.Topics, toTopicResponse(t, required))
	}
	for _, t := range domain.RequiredTopicsForDecoder(c) {
		resp.Required = append(resp.Required, t.String())
	}
	return resp
}

func toTopicResponses(topics []domain.DecoderTopic, required map[domain.DecoderTopic]bool) []TopicResponse {
	out := make([]TopicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t, required))
	}
	return out
}

func fromReadiness(r domain.Readiness) ReadinessResponse {
	required := requiredSet(r.Category)
	rejected := r.Rejected
	if rejected == nil {
		rejected = []string{}
	}
	return ReadinessResponse{
		Category:        r.Category.String(),
		Ready:           r.Ready,
		Missing:         toTopicResponses(r.Missing, required),
		MissingHighRisk: toTopicResponses(r.MissingHighRisk, required),
		Rejected:        rejected,
	}
}
