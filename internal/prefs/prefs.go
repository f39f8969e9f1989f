// Package prefs manages the preference keys stored alongside the session:
// theme, language, notification toggles, privacy options, and the profile
// fields. Values are plain strings with per-key defaults; booleans follow the
// "false"/"true" sentinel convention and are never validated beyond that.
package prefs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vkstore/resume-dashboard/internal/storage"
)

// Preference keys. These live in the same store as the session keys but are
// written by the settings and profile screens, never by the session store.
const (
	KeyTheme                = "theme"
	KeyLanguage             = "language"
	KeyEmailNotifications   = "emailNotifications"
	KeyTwoFactorAuth        = "twoFactorAuth"
	KeyResumeDataVisibility = "resumeDataVisibility"
	KeyAnalysisAlerts       = "analysisAlerts"
	KeyWeeklySummary        = "weeklySummary"
	KeyDisplayName          = "displayName"
	KeyPhone                = "phone"
)

// Settings is the snapshot the settings screen works on.
type Settings struct {
	EmailNotifications   bool
	Theme                string
	Language             string
	TwoFactorAuth        bool
	ResumeDataVisibility string
	AnalysisAlerts       bool
	WeeklySummary        bool
}

// Manager reads and writes preferences on the shared store.
type Manager struct {
	kv *storage.Store
}

// New wraps the given key/value store.
func New(kv *storage.Store) *Manager {
	return &Manager{kv: kv}
}

// Load reads all settings, applying per-key defaults: notifications and
// summaries default on, two-factor defaults off, theme "light", language
// "en", visibility "private".
func (m *Manager) Load() Settings {
	return Settings{
		EmailNotifications:   m.kv.GetBoolDefaultTrue(KeyEmailNotifications),
		Theme:                m.kv.GetDefault(KeyTheme, "light"),
		Language:             m.kv.GetDefault(KeyLanguage, "en"),
		TwoFactorAuth:        m.kv.GetBoolDefaultFalse(KeyTwoFactorAuth),
		ResumeDataVisibility: m.kv.GetDefault(KeyResumeDataVisibility, "private"),
		AnalysisAlerts:       m.kv.GetBoolDefaultTrue(KeyAnalysisAlerts),
		WeeklySummary:        m.kv.GetBoolDefaultTrue(KeyWeeklySummary),
	}
}

// Save writes every setting back as its string form.
func (m *Manager) Save(s Settings) {
	m.kv.Set(KeyEmailNotifications, strconv.FormatBool(s.EmailNotifications))
	m.kv.Set(KeyTheme, s.Theme)
	m.kv.Set(KeyLanguage, s.Language)
	m.kv.Set(KeyTwoFactorAuth, strconv.FormatBool(s.TwoFactorAuth))
	m.kv.Set(KeyResumeDataVisibility, s.ResumeDataVisibility)
	m.kv.Set(KeyAnalysisAlerts, strconv.FormatBool(s.AnalysisAlerts))
	m.kv.Set(KeyWeeklySummary, strconv.FormatBool(s.WeeklySummary))
}

// settableKeys are the keys `settings --set` accepts.
var settableKeys = map[string]bool{
	KeyTheme:                true,
	KeyLanguage:             true,
	KeyEmailNotifications:   true,
	KeyTwoFactorAuth:        true,
	KeyResumeDataVisibility: true,
	KeyAnalysisAlerts:       true,
	KeyWeeklySummary:        true,
}

// SetKey updates one preference by name. Unknown keys are rejected with the
// valid key list so a typo is caught instead of silently stored.
func (m *Manager) SetKey(key, value string) error {
	if !settableKeys[key] {
		return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(SettableKeys(), ", "))
	}
	m.kv.Set(key, value)
	return nil
}

// SettableKeys lists the accepted setting names in stable order.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Profile is the snapshot the profile screen works on.
type Profile struct {
	DisplayName        string
	Phone              string
	Theme              string
	EmailNotifications bool
}

// LoadProfile reads the profile fields with their defaults.
func (m *Manager) LoadProfile() Profile {
	return Profile{
		DisplayName:        m.kv.GetDefault(KeyDisplayName, ""),
		Phone:              m.kv.GetDefault(KeyPhone, ""),
		Theme:              m.kv.GetDefault(KeyTheme, "light"),
		EmailNotifications: m.kv.GetBoolDefaultTrue(KeyEmailNotifications),
	}
}

// SaveProfile persists the editable profile fields. The display name is
// required; an empty phone leaves any stored phone untouched.
func (m *Manager) SaveProfile(p Profile) error {
	if strings.TrimSpace(p.DisplayName) == "" {
		return fmt.Errorf("display name is required")
	}
	m.kv.Set(KeyDisplayName, p.DisplayName)
	m.kv.Set(KeyTheme, p.Theme)
	m.kv.Set(KeyEmailNotifications, strconv.FormatBool(p.EmailNotifications))
	if p.Phone != "" {
		m.kv.Set(KeyPhone, p.Phone)
	}
	return nil
}
