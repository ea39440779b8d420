package utils

import "testing"

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"google.com", "http://google.com"},
		{"http://google.com", "http://google.com"},
		{"https://google.com", "https://google.com"},
		{"ftp.example.com", "http://ftp.example.com"},
	}
	for _, c := range cases {
		if got := NormalizeURL(c.in); got != c.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	valid := []string{
		"http://google.com",
		"https://google.com",
		"http://google.com/path?q=1",
		"http://sub.domain.example.co.uk",
		"http://localhost",
		"http://localhost:8080",
		"http://127.0.0.1:3000",
	}
	for _, u := range valid {
		if !IsValidHTTPURL(u) {
			t.Errorf("IsValidHTTPURL(%q) = false, want true", u)
		}
	}

	invalid := []string{
		"http://googlecom", // no TLD-like structure
		"googlecom",
		"google.com", // no scheme
		"http://",    // no host
		"ftp://example.com",
		"http://exa mple.com",
		"http://.com",
		"",
	}
	for _, u := range invalid {
		if IsValidHTTPURL(u) {
			t.Errorf("IsValidHTTPURL(%q) = true, want false", u)
		}
	}
}
