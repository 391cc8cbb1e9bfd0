// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SiteSetting represents a single configuration key-value pair.
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSettings is a convenience map for accessing settings by key.
type SiteSettings map[string]string

// Get returns the value for a key, or the fallback if the key doesn't exist.
func (s SiteSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Keys of the general settings group, stored as rows in site_settings.
const (
	SettingSiteName  = "site_name"
	SettingLogo      = "logo"
	SettingTagline   = "tagline"
	SettingPhone     = "phone"
	SettingEmail     = "email"
	SettingAddress   = "address"
	SettingHours     = "opening_hours"
	SettingInstagram = "instagram"
	SettingFacebook  = "facebook"
	SettingWhatsApp  = "whatsapp"
)

// GeneralSettings is the site-wide settings record served at
// /settings/general.
type GeneralSettings struct {
	SiteName     string `json:"site_name"`
	Logo         string `json:"logo"`
	Tagline      string `json:"tagline"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	OpeningHours string `json:"opening_hours"`
	Instagram    string `json:"instagram"`
	Facebook     string `json:"facebook"`
	WhatsApp     string `json:"whatsapp"`
}

// GeneralFromSettings maps the key/value rows onto GeneralSettings.
func GeneralFromSettings(s SiteSettings) GeneralSettings {
	return GeneralSettings{
		SiteName:     s.Get(SettingSiteName, ""),
		Logo:         s.Get(SettingLogo, ""),
		Tagline:      s.Get(SettingTagline, ""),
		Phone:        s.Get(SettingPhone, ""),
		Email:        s.Get(SettingEmail, ""),
		Address:      s.Get(SettingAddress, ""),
		OpeningHours: s.Get(SettingHours, ""),
		Instagram:    s.Get(SettingInstagram, ""),
		Facebook:     s.Get(SettingFacebook, ""),
		WhatsApp:     s.Get(SettingWhatsApp, ""),
	}
}

// Map flattens GeneralSettings back into key/value rows.
func (g GeneralSettings) Map() map[string]string {
	return map[string]string{
		SettingSiteName:  g.SiteName,
		SettingLogo:      g.Logo,
		SettingTagline:   g.Tagline,
		SettingPhone:     g.Phone,
		SettingEmail:     g.Email,
		SettingAddress:   g.Address,
		SettingHours:     g.OpeningHours,
		SettingInstagram: g.Instagram,
		SettingFacebook:  g.Facebook,
		SettingWhatsApp:  g.WhatsApp,
	}
}

// SEO is the metadata for one public page.
type SEO struct {
	PageName    string    `json:"page_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords"`
	OGImage     string    `json:"og_image"`
	UpdatedAt   time.Time `json:"updated_at"`
}
