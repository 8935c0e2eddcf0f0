package browser

import "testing"

func TestMatchesDomain(t *testing.T) {
	tests := []struct {
		name         string
		cookieDomain string
		targetDomain string
		want         bool
	}{
		{"exact match", "example.com", "example.com", true},
		{"leading dot stripped", ".example.com", "example.com", true},
		{"subdomain match", "example.com", "news.example.com", true},
		{"dotted subdomain match", ".example.com", "news.example.com", true},
		{"different domain", "example.com", "example.org", false},
		{"suffix is not subdomain", "ample.com", "example.com", false},
		{"empty cookie domain", "", "example.com", false},
		{"empty target domain", "example.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesDomain(tt.cookieDomain, tt.targetDomain); got != tt.want {
				t.Errorf("matchesDomain(%q, %q) = %v, want %v", tt.cookieDomain, tt.targetDomain, got, tt.want)
			}
		})
	}
}

func TestDomainAllowed(t *testing.T) {
	tests := []struct {
		name    string
		domains []string
		exclude []string
		host    string
		want    bool
	}{
		{"no lists allows everything", nil, nil, "example.com", true},
		{"wildcard allow", []string{"*"}, nil, "example.com", true},
		{"allow list match", []string{"example.com"}, nil, "example.com", true},
		{"allow list subdomain", []string{"example.com"}, nil, "news.example.com", true},
		{"allow list miss", []string{"example.com"}, nil, "example.org", false},
		{"exclude wins over allow", []string{"example.com"}, []string{"example.com"}, "example.com", false},
		{"exclude only", nil, []string{"bank.example.com"}, "bank.example.com", false},
		{"exclude does not block others", nil, []string{"bank.example.com"}, "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := NewCookieExtractor(BrowserAuto, tt.domains, tt.exclude)
			if got := ce.domainAllowed(tt.host); got != tt.want {
				t.Errorf("domainAllowed(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	if got := expandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute path should pass through, got %q", got)
	}
	if got := expandPath("~/profile"); got == "~/profile" {
		t.Error("tilde prefix should be expanded")
	}
}
