package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/profile", nil)
	if IsHTTPS(req, SchemePolicy{}) {
		t.Fatal("plain request reported as https")
	}
	req.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(req, SchemePolicy{}) {
		t.Fatal("forwarded proto trusted without policy")
	}
	if !IsHTTPS(req, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("forwarded proto ignored with policy")
	}
	tlsReq := httptest.NewRequest(http.MethodGet, "https://example.com/profile", nil)
	tlsReq.TLS = &tls.ConnectionState{}
	if !IsHTTPS(tlsReq, SchemePolicy{}) {
		t.Fatal("tls request not reported as https")
	}
}

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{name: "matching origin", origin: "http://example.com", want: true},
		{name: "explicit default port", origin: "http://example.com:80", want: true},
		{name: "foreign origin", origin: "http://evil.test", want: false},
		{name: "scheme mismatch", origin: "https://example.com", want: false},
		{name: "referer fallback", referer: "http://example.com/profile/view", want: true},
		{name: "no proof", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "http://example.com/profile/interests", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			if got := HasSameOriginProof(req, SchemePolicy{}); got != tc.want {
				t.Fatalf("HasSameOriginProof() = %t, want %t", got, tc.want)
			}
		})
	}
}
