// Package state provides a thread-safe cache of vehicle analyses shared by
// the TUI and the background commands that compute them.
package state

import (
	"slices"
	"sync"
	"time"

	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/report"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventAnalyzed      EventType = "ANALYZED"
	EventPayloadsReady EventType = "PAYLOADS_READY"
	EventFailed        EventType = "FAILED"
	EventInvalidated   EventType = "INVALIDATED"
)

// Event records a change to a vehicle's cached analysis.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Vehicle   string    `json:"vehicle"`
	Detail    string    `json:"detail,omitempty"`
}

// Entry is the cached analysis of one vehicle.
type Entry struct {
	Analysis   report.Analysis
	ComputedAt time.Time
	Duration   time.Duration
	Err        error

	// PayloadsReady is set once the payload search has finished.
	PayloadsReady bool
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	entries map[string]Entry

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	payloadOpts  mission.PayloadOptions
	safetyMargin float64
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents      int
	SafetyMargin   float64
	PayloadOptions mission.PayloadOptions
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:      50,
		SafetyMargin:   mission.DefaultSafetyMargin,
		PayloadOptions: mission.DefaultPayloadOptions(),
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		entries:      make(map[string]Entry),
		maxEvents:    maxEvents,
		events:       make([]Event, 0, maxEvents),
		payloadOpts:  cfg.PayloadOptions,
		safetyMargin: cfg.SafetyMargin,
	}
}

// PayloadOptions returns the options payload searches should run with.
func (m *Manager) PayloadOptions() mission.PayloadOptions {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payloadOpts
}

// SafetyMargin returns the margin reachability is assessed with.
func (m *Manager) SafetyMargin() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.safetyMargin
}

// Update stores the analysis of a vehicle, or the error that prevented it.
// Payload capacities already cached for the vehicle are kept.
func (m *Manager) Update(vehicle string, a report.Analysis, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.entries[vehicle]
	entry := Entry{
		Analysis:   a,
		ComputedAt: time.Now(),
		Duration:   duration,
		Err:        err,
	}
	if err == nil && prev.PayloadsReady {
		entry.Analysis.Payloads = prev.Analysis.Payloads
		entry.PayloadsReady = true
	}
	m.entries[vehicle] = entry

	if err != nil {
		m.addEvent(Event{Type: EventFailed, Timestamp: entry.ComputedAt, Vehicle: vehicle, Detail: err.Error()})
		return
	}
	m.addEvent(Event{Type: EventAnalyzed, Timestamp: entry.ComputedAt, Vehicle: vehicle})
}

// SetPayloads attaches payload capacities to a vehicle's analysis.
// It reports false if the vehicle has no successful analysis yet.
func (m *Manager) SetPayloads(vehicle string, caps []mission.PayloadCapacity) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[vehicle]
	if !ok || entry.Err != nil {
		return false
	}
	entry.Analysis.Payloads = slices.Clone(caps)
	entry.PayloadsReady = true
	m.entries[vehicle] = entry

	m.addEvent(Event{Type: EventPayloadsReady, Timestamp: time.Now(), Vehicle: vehicle})
	return true
}

// Invalidate drops a vehicle's cached analysis.
func (m *Manager) Invalidate(vehicle string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[vehicle]; !ok {
		return
	}
	delete(m.entries, vehicle)
	m.addEvent(Event{Type: EventInvalidated, Timestamp: time.Now(), Vehicle: vehicle})
}

// Get returns the cached entry for a vehicle.
func (m *Manager) Get(vehicle string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[vehicle]
	return e, ok
}

// HasData reports whether any vehicle has been analyzed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries) > 0
}

// addEvent adds an event to the ring buffer. Caller must hold the lock.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
		return
	}
	m.events[m.eventWriteAt] = e
	m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
}

// Snapshot is a point-in-time copy of the state.
type Snapshot struct {
	Entries map[string]Entry
	Events  []Event
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make(map[string]Entry, len(m.entries))
	for k, v := range m.entries {
		entries[k] = v
	}
	return Snapshot{Entries: entries, Events: m.eventsOrdered()}
}

// eventsOrdered returns events oldest first. Caller must hold the lock.
func (m *Manager) eventsOrdered() []Event {
	if len(m.events) < m.maxEvents {
		return slices.Clone(m.events)
	}
	out := make([]Event, 0, m.maxEvents)
	out = append(out, m.events[m.eventWriteAt:]...)
	out = append(out, m.events[:m.eventWriteAt]...)
	return out
}

// RecentEvents returns the last n events, newest first.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := m.eventsOrdered()
	slices.Reverse(events)
	if n > 0 && len(events) > n {
		events = events[:n]
	}
	return events
}
