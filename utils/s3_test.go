package utils

import (
	"testing"
	"time"
)

func TestImageKey(t *testing.T) {
	at := time.Unix(0, 42)
	tests := []struct {
		prefix string
		ext    string
		want   string
	}{
		{"scans", ".png", "scans/42.png"},
		{"/scans/", ".png", "scans/42.png"},
		{"scans/", ".jpg", "scans/42.jpg"},
		{"archive/scans", ".webp", "archive/scans/42.webp"},
		{"scans", "", "scans/42"},
	}
	for _, tt := range tests {
		if got := ImageKey(tt.prefix, &DecodedImage{Ext: tt.ext}, at); got != tt.want {
			t.Errorf("ImageKey(%q, %q) = %q, want %q", tt.prefix, tt.ext, got, tt.want)
		}
	}
}

func TestImageBaseURL(t *testing.T) {
	tests := []struct {
		name       string
		cloudFront string
		want       string
	}{
		{"bucket endpoint", "", "https://healthscan-scans.s3.eu-west-1.amazonaws.com"},
		{"cloudfront", "https://cdn.healthscan.app", "https://cdn.healthscan.app"},
		{"cloudfront trailing slash", "https://cdn.healthscan.app/", "https://cdn.healthscan.app"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageBaseURL("eu-west-1", "healthscan-scans", tt.cloudFront); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
