package domain

// Readiness summarizes how far a jurisdiction's authored notes are from
// covering a decoder.
type Readiness struct {
	Category DecoderCategory
	// Ready is true when every required topic of the category is authored.
	Ready bool
	// Missing lists unauthored required topics in declared order.
	Missing []DecoderTopic
	// MissingHighRisk lists unauthored high-risk topics of the category,
	// required or not.
	MissingHighRisk []DecoderTopic
	// Rejected lists inputs that are not topics of the category, deduplicated
	// in input order.
	Rejected []string
}

// EvaluateReadiness checks authored topic identifiers against the category's
// required and high-risk subsets. Inputs that are not topics of the category
// are reported in Rejected and otherwise ignored.
func EvaluateReadiness(category DecoderCategory, authored []string) Readiness {
	r := Readiness{Category: category}

	have := make(map[DecoderTopic]bool, len(authored))
	seenRejected := make(map[string]bool)
	for _, s := range authored {
		if IsTopicForDecoder(s, category) {
			have[DecoderTopic(s)] = true
			continue
		}
		if !seenRejected[s] {
			seenRejected[s] = true
			r.Rejected = append(r.Rejected, s)
		}
	}

	for _, t := range registry.required[category] {
		if !have[t] {
			r.Missing = append(r.Missing, t)
		}
	}
	for _, t := range registry.byCategory[category] {
		if registry.highRiskSet[t] && !have[t] {
			r.MissingHighRisk = append(r.MissingHighRisk, t)
		}
	}

	r.Ready = category.IsValid() && len(r.Missing) == 0
	return r
}
