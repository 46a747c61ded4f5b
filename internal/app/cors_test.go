package app

import "testing"

func TestOriginAllowed(t *testing.T) {
	allowed := originAllowed("https://nightmare.example", []string{
		"share.nightmare.example",
		"*.partner.example",
	})

	cases := []struct {
		origin string
		want   bool
	}{
		{"https://nightmare.example", true},
		{"http://nightmare.example", true}, // scheme is not part of the match
		{"https://share.nightmare.example", true},
		{"https://partner.example", true},
		{"https://embed.partner.example", true},
		{"https://evil.example", false},
		{"https://nightmare.example.evil.example", false},
		{"https://notpartner.example", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := allowed(tc.origin); got != tc.want {
			t.Errorf("allowed(%q) = %v, want %v", tc.origin, got, tc.want)
		}
	}
}

func TestOriginAllowedSiteOnlyConfig(t *testing.T) {
	// No allowed_origins entries: only the site origin itself passes.
	allowed := originAllowed("https://nightmare.example", nil)
	if !allowed("https://nightmare.example") {
		t.Error("site origin rejected")
	}
	if allowed("https://other.example") {
		t.Error("foreign origin allowed with empty pattern list")
	}
}

func TestMatchHostPattern(t *testing.T) {
	cases := []struct {
		pattern, host string
		want          bool
	}{
		{"a.example", "a.example", true},
		{"a.example", "b.example", false},
		{"*.example.com", "example.com", true},
		{"*.example.com", "x.example.com", true},
		{"*.example.com", "xexample.com", false},
		{"*.example.com", "x.example.com.evil.net", false},
	}
	for _, tc := range cases {
		if got := matchHostPattern(tc.pattern, tc.host); got != tc.want {
			t.Errorf("matchHostPattern(%q, %q) = %v, want %v", tc.pattern, tc.host, got, tc.want)
		}
	}
}
