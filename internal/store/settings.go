package store

import "strings"

// Secondary scalar state: display name, onboarding flag, theme preference.
// Each lives under its own key; present-or-absent is the only invariant.
const (
	onboardingKey = "onboarding_v1"
	userNameKey   = "username_v1"
	themeKey      = "theme_v1"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

func (s *Store) OnboardingDone() bool {
	var done bool
	s.KV.Load(onboardingKey, &done)
	return done
}

func (s *Store) SetOnboardingDone(done bool) {
	s.KV.Save(onboardingKey, done)
}

func (s *Store) UserName() string {
	var name string
	s.KV.Load(userNameKey, &name)
	return name
}

func (s *Store) SetUserName(name string) {
	s.KV.Save(userNameKey, strings.TrimSpace(name))
}

func (s *Store) Theme() Theme {
	t := ThemeSystem
	s.KV.Load(themeKey, &t)
	if !t.Valid() {
		return ThemeSystem
	}
	return t
}

func (s *Store) SetTheme(t Theme) {
	if !t.Valid() {
		t = ThemeSystem
	}
	s.KV.Save(themeKey, t)
}
