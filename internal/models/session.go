// Package models defines the core data structures for Sunshine.
//
// This file holds the per-session conversation state: memory carried across
// turns and the bounded response history used by anti-repeat selection.
package models

import "time"

// MaxResponseHistory bounds the per-category anti-repeat window.
const MaxResponseHistory = 5

// Rapport thresholds derived from session length.
const (
	RapportBuildingThreshold    = 5
	RapportEstablishedThreshold = 10
)

// ConversationMemory is the mutable cross-turn record for one session.
type ConversationMemory struct {
	ClientName      string         `json:"client_name,omitempty"`
	RecurringTopics map[string]int `json:"recurring_topics"`
	FollowUpTopics  []string       `json:"follow_up_topics,omitempty"`
	PreviousIssues  []Issue        `json:"previous_issues,omitempty"`
	LastEmotion     Emotion        `json:"last_emotion"`
	SessionLength   int            `json:"session_length"`
	RapportLevel    RapportLevel   `json:"rapport_level"`
	Style           Style          `json:"style"`
	CrisisDetected  bool           `json:"crisis_detected"`
}

// RecordTopic increments the topic counter and promotes topics mentioned more
// than once into the follow-up set, preserving first-mention order.
func (m *ConversationMemory) RecordTopic(topic string) {
	if m.RecurringTopics == nil {
		m.RecurringTopics = make(map[string]int)
	}
	m.RecurringTopics[topic]++
	if m.RecurringTopics[topic] > 1 && !m.HasFollowUpTopic(topic) {
		m.FollowUpTopics = append(m.FollowUpTopics, topic)
	}
}

// HasFollowUpTopic reports whether the topic is already queued for follow-up.
func (m *ConversationMemory) HasFollowUpTopic(topic string) bool {
	for _, t := range m.FollowUpTopics {
		if t == topic {
			return true
		}
	}
	return false
}

// RefreshRapport recomputes the rapport level from the session length.
// Rapport only moves forward; the thresholds are strict.
func (m *ConversationMemory) RefreshRapport() {
	if m.SessionLength > RapportEstablishedThreshold {
		m.RapportLevel = RapportEstablished
	} else if m.SessionLength > RapportBuildingThreshold {
		m.RapportLevel = RapportBuilding
	}
}

// ResponseHistory tracks recently returned responses per category so the
// selector can bias away from immediate repeats. Bounded to MaxResponseHistory
// entries per category, oldest first.
type ResponseHistory map[string][]string

// Recent returns the recorded history for a category, oldest first.
func (h ResponseHistory) Recent(category string) []string {
	return h[category]
}

// Record appends a chosen response, evicting the oldest entry beyond the cap.
func (h ResponseHistory) Record(category, response string) {
	entries := append(h[category], response)
	if len(entries) > MaxResponseHistory {
		entries = entries[len(entries)-MaxResponseHistory:]
	}
	h[category] = entries
}

// Contains reports whether the response is in the category's recent window.
func (h ResponseHistory) Contains(category, response string) bool {
	for _, r := range h[category] {
		if r == response {
			return true
		}
	}
	return false
}

// SessionState bundles everything the engine reads and writes for one session.
// One instance exists per session id; the session manager serializes access.
type SessionState struct {
	ID        string             `json:"id"`
	Memory    ConversationMemory `json:"memory"`
	History   ResponseHistory    `json:"history"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewSessionState creates a session with default memory and empty history.
func NewSessionState(id string) *SessionState {
	now := time.Now()
	return &SessionState{
		ID: id,
		Memory: ConversationMemory{
			RecurringTopics: make(map[string]int),
			LastEmotion:     EmotionNeutral,
			RapportLevel:    RapportInitial,
			Style:           StyleFormal,
		},
		History:   make(ResponseHistory),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Summary builds the read-only API view of the session.
func (s *SessionState) Summary() SessionSummary {
	return SessionSummary{
		SessionID:       s.ID,
		SessionLength:   s.Memory.SessionLength,
		RapportLevel:    s.Memory.RapportLevel,
		Style:           s.Memory.Style,
		LastEmotion:     s.Memory.LastEmotion,
		ClientName:      s.Memory.ClientName,
		CrisisDetected:  s.Memory.CrisisDetected,
		RecurringTopics: s.Memory.RecurringTopics,
		FollowUpTopics:  s.Memory.FollowUpTopics,
	}
}
