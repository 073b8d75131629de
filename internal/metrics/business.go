package metrics

// IncrementIdeaCreated increments idea creation counter
func (m *Metrics) IncrementIdeaCreated() {
	m.safeExecute("IncrementIdeaCreated", func() {
		m.IdeaCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementSuggestionGenerated increments the generated-suggestion counter
func (m *Metrics) IncrementSuggestionGenerated() {
	m.safeExecute("IncrementSuggestionGenerated", func() {
		m.SuggestionGeneratedTotal.Inc()
	})
}

// IncrementSuggestionApplied increments the applied-suggestion counter
func (m *Metrics) IncrementSuggestionApplied() {
	m.safeExecute("IncrementSuggestionApplied", func() {
		m.SuggestionAppliedTotal.Inc()
	})
}

// IncrementAchievementUnlocked increments the achievement counter
func (m *Metrics) IncrementAchievementUnlocked() {
	m.safeExecute("IncrementAchievementUnlocked", func() {
		m.AchievementUnlockedTotal.Inc()
	})
}

// IncrementNotificationDelivery records one delivery attempt per channel
func (m *Metrics) IncrementNotificationDelivery(channel, status string) {
	m.safeExecute("IncrementNotificationDelivery", func() {
		m.NotificationDeliveryTotal.WithLabelValues(channel, status).Inc()
	})
}

// SetIdeasTotal sets total ideas gauge
func (m *Metrics) SetIdeasTotal(count int64) {
	m.safeExecute("SetIdeasTotal", func() {
		m.IdeasTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}
