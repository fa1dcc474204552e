package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{
			name:      "iphone ios 17",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15",
			want:      "iPhone (iOS 17+)",
		},
		{
			name:      "iphone ios 18",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 18_0 like Mac OS X) AppleWebKit/605.1.15",
			want:      "iPhone (iOS 17+)",
		},
		{
			name:      "iphone ios 15",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 15_6 like Mac OS X) AppleWebKit/605.1.15",
			want:      "iPhone (iOS 14-16)",
		},
		{
			name:      "iphone ios 12",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 12_5 like Mac OS X) AppleWebKit/605.1.15",
			want:      "iPhone (iOS 12)",
		},
		{
			name:      "iphone without version",
			userAgent: "Mozilla/5.0 (iPhone) AppleWebKit/605.1.15",
			want:      "iPhone",
		},
		{
			name:      "ipad",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15",
			want:      "iPad",
		},
		{
			name:      "android phone",
			userAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36",
			want:      "Android",
		},
		{
			name:      "mac",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15",
			want:      "Mac",
		},
		{
			name:      "windows",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			want:      "Windows PC",
		},
		{
			name:      "linux desktop",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
			want:      "Linux PC",
		},
		{
			name:      "empty user agent",
			userAgent: "",
			want:      "Unknown Device",
		},
		{
			name:      "curl",
			userAgent: "curl/8.4.0",
			want:      "Unknown Device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.userAgent))
		})
	}
}
