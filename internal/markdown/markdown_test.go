// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{"heading", "## Trial session", []string{"<h2", "Trial session</h2>"}, nil},
		{"list", "- Airbrush base\n- Lashes", []string{"<ul>", "<li>Airbrush base</li>"}, nil},
		{"emphasis", "**long-wear** finish", []string{"<strong>long-wear</strong>"}, nil},
		{"autolink", "Book at https://example.com", []string{`href="https://example.com"`}, nil},
		{"raw html escaped", "<script>alert(1)</script>", nil, []string{"<script>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.input)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output %q missing %q", got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("output %q contains %q", got, bad)
				}
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q", got)
	}
}
