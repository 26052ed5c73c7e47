package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name           string
		xLocale        string
		acceptLanguage string
		fallback       string
		want           string
	}{
		{name: "explicit header wins", xLocale: "JA", acceptLanguage: "en-US", want: "ja"},
		{name: "accept language base tag", acceptLanguage: "pt-BR,pt;q=0.9", want: "pt"},
		{name: "wildcard ignored", acceptLanguage: "*", fallback: "fr", want: "fr"},
		{name: "default fallback", want: "en"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.xLocale != "" {
				req.Header.Set("X-Locale", tc.xLocale)
			}
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}
			if got := detectLocale(req, tc.fallback); got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveCountry(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		lookup  CountryLookup
		want    string
	}{
		{
			name:    "edge header wins",
			headers: map[string]string{"CF-IPCountry": "de", "Accept-Language": "en-US"},
			want:    "DE",
		},
		{
			name:    "locale region",
			headers: map[string]string{"Accept-Language": "pt-BR"},
			want:    "BR",
		},
		{
			name:    "geoip fallback",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.9"},
			lookup: func(ip string) (string, error) {
				if ip != "203.0.113.9" {
					return "", errors.New("unexpected ip")
				}
				return "jp", nil
			},
			want: "JP",
		},
		{
			name: "lookup error yields empty",
			lookup: func(ip string) (string, error) {
				return "", errors.New("db unavailable")
			},
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "198.51.100.7:4000"
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := resolveCountry(req, tc.lookup); got != tc.want {
				t.Fatalf("resolveCountry() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestI18NStoresContextValues(t *testing.T) {
	var gotLocale, gotCountry string
	handler := I18N("en", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = LocaleFromContext(r.Context())
		gotCountry = CountryFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ja-JP")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotLocale != "ja" {
		t.Fatalf("locale = %q, want ja", gotLocale)
	}
	if gotCountry != "JP" {
		t.Fatalf("country = %q, want JP", gotCountry)
	}
}
