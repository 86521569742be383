package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "dochub/pkg/domain-errors"
)

// TestTopicCatalogIntegrity validates the static tables: the union is exactly
// the two category lists, and every derived subset references real topics.
func TestTopicCatalogIntegrity(t *testing.T) {
	all := AllTopics()
	credit := CreditTopics()
	criminal := CriminalEvictionTopics()

	t.Run("all topics is the concatenation of both categories", func(t *testing.T) {
		require.Len(t, all, len(credit)+len(criminal))
		for i, c := range credit {
			assert.Equal(t, c.Topic(), all[i])
		}
		for i, c := range criminal {
			assert.Equal(t, c.Topic(), all[len(credit)+i])
		}
	})

	t.Run("no duplicates", func(t *testing.T) {
		seen := make(map[DecoderTopic]bool, len(all))
		for _, topic := range all {
			assert.False(t, seen[topic], "duplicate topic %s", topic)
			seen[topic] = true
		}
	})

	t.Run("category sizes", func(t *testing.T) {
		assert.Len(t, credit, 5)
		assert.Len(t, criminal, 7)
	})

	t.Run("every topic has exactly one non-empty label", func(t *testing.T) {
		labels := TopicLabels()
		assert.Len(t, labels, len(all))
		for _, topic := range all {
			assert.NotEmpty(t, labels[topic], "missing label for %s", topic)
			assert.Equal(t, labels[topic], TopicLabel(topic))
		}
	})

	t.Run("high risk and required topics are catalog members", func(t *testing.T) {
		for _, topic := range HighRiskTopics() {
			assert.Contains(t, all, topic)
			assert.True(t, topic.IsHighRisk())
		}
		for _, topic := range RequiredCreditTopics() {
			assert.Contains(t, all, topic.Topic())
		}
		for _, topic := range RequiredCriminalEvictionTopics() {
			assert.Contains(t, all, topic.Topic())
		}
	})
}

func TestTopicsForDecoder(t *testing.T) {
	t.Run("credit preserves declared order", func(t *testing.T) {
		want := []DecoderTopic{
			"source_of_income",
			"income_requirements",
			"credit_score_criteria",
			"security_deposit_limits",
			"application_fee_limits",
		}
		assert.Equal(t, want, TopicsForDecoder(DecoderCredit))

		credit := CreditTopics()
		got := TopicsForDecoder(DecoderCredit)
		for i := range credit {
			assert.Equal(t, credit[i].Topic(), got[i])
		}
	})

	t.Run("criminal eviction preserves declared order", func(t *testing.T) {
		got := TopicsForDecoder(DecoderCriminalEviction)
		criminal := CriminalEvictionTopics()
		require.Len(t, got, len(criminal))
		for i := range criminal {
			assert.Equal(t, criminal[i].Topic(), got[i])
		}
	})

	t.Run("unknown category is empty", func(t *testing.T) {
		assert.Empty(t, TopicsForDecoder(DecoderCategory("housing")))
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		got := TopicsForDecoder(DecoderCredit)
		got[0] = "tampered"
		assert.Equal(t, DecoderTopic("source_of_income"), TopicsForDecoder(DecoderCredit)[0])

		labels := TopicLabels()
		labels["source_of_income"] = "tampered"
		assert.NotEqual(t, "tampered", TopicLabel("source_of_income"))
	})
}

func TestRequiredTopicsForDecoder(t *testing.T) {
	credit := RequiredTopicsForDecoder(DecoderCredit)
	require.NotEmpty(t, credit)
	for _, topic := range credit {
		c, ok := topic.Category()
		require.True(t, ok)
		assert.Equal(t, DecoderCredit, c)
	}

	criminal := RequiredTopicsForDecoder(DecoderCriminalEviction)
	require.NotEmpty(t, criminal)
	for _, topic := range criminal {
		assert.True(t, IsTopicForDecoder(topic.String(), DecoderCriminalEviction))
	}

	assert.Nil(t, RequiredTopicsForDecoder(DecoderCategory("")))
}

func TestIsTopicForDecoder(t *testing.T) {
	cases := []struct {
		topic    string
		category DecoderCategory
		want     bool
	}{
		{"source_of_income", DecoderCredit, true},
		{"source_of_income", DecoderCriminalEviction, false},
		{"not_a_real_topic", DecoderCredit, false},
		{"arrest_records", DecoderCriminalEviction, true},
		{"arrest_records", DecoderCredit, false},
		{"", DecoderCredit, false},
		{"SOURCE_OF_INCOME", DecoderCredit, false},
		{" source_of_income", DecoderCredit, false},
		{"source_of_income", DecoderCategory("bogus"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsTopicForDecoder(tc.topic, tc.category), "%q in %q", tc.topic, tc.category)
	}
}

func TestParseDecoderTopic(t *testing.T) {
	t.Run("accepts topic of the category", func(t *testing.T) {
		topic, err := ParseDecoderTopic("sealed_eviction_records", DecoderCriminalEviction)
		require.NoError(t, err)
		assert.Equal(t, TopicSealedEvictionRecords.Topic(), topic)
		assert.Equal(t, "Sealed Eviction Records", topic.Label())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseDecoderTopic("", DecoderCredit)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects cross category", func(t *testing.T) {
		_, err := ParseDecoderTopic("arrest_records", DecoderCredit)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := ParseDecoderTopic("arrest_records", DecoderCategory("x"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestParseDecoderCategory(t *testing.T) {
	c, err := ParseDecoderCategory("credit")
	require.NoError(t, err)
	assert.Equal(t, DecoderCredit, c)

	c, err = ParseDecoderCategory("criminal_eviction")
	require.NoError(t, err)
	assert.Equal(t, DecoderCriminalEviction, c)

	for _, bad := range []string{"", "Credit", "criminal-eviction", "eviction"} {
		_, err := ParseDecoderCategory(bad)
		require.Error(t, err, bad)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	}

	assert.Equal(t, []DecoderCategory{DecoderCredit, DecoderCriminalEviction}, DecoderCategories())
}

func TestTopicCategoryAndLabelOfUnknown(t *testing.T) {
	unknown := DecoderTopic("not_a_real_topic")
	_, ok := unknown.Category()
	assert.False(t, ok)
	assert.False(t, unknown.IsValid())
	assert.False(t, unknown.IsHighRisk())
	assert.Empty(t, TopicLabel(unknown))
}
