package assets

import (
	"errors"
	"net"
	"testing"
)

func TestIsSafeURL(t *testing.T) {
	orig := lookupIP
	t.Cleanup(func() { lookupIP = orig })
	lookupIP = func(host string) ([]net.IP, error) {
		switch host {
		case "cdn.example.com":
			return []net.IP{net.ParseIP("93.184.216.34")}, nil
		case "internal.example.com":
			return []net.IP{net.ParseIP("93.184.216.34"), net.ParseIP("10.0.0.5")}, nil
		}
		return nil, errors.New("no such host")
	}

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"正常なパブリックURL", "https://cdn.example.com/product.png", false},
		{"パブリックIPの直接指定", "http://8.8.8.8/image.png", false},

		{"不正なスキーム", "gopher://example.com", true},
		{"GCSスキームはここでは扱わない", "gs://bucket/image.png", true},
		{"ループバック", "http://127.0.0.1/admin", true},
		{"プライベートIP (クラスA)", "http://10.255.255.254/metadata", true},
		{"リンクローカル", "http://169.254.169.254/latest/meta-data", true},
		{"解決結果の一部がプライベート", "https://internal.example.com/a.png", true},
		{"名前解決できないドメイン", "http://this.should.not.exist.invalid", true},
		{"相対パス", "/images/a.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, err := IsSafeURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("IsSafeURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !safe {
				t.Errorf("%s: safe URL was flagged as unsafe", tt.url)
			}
			if tt.wantErr && safe {
				t.Errorf("%s: unsafe URL was flagged as safe", tt.url)
			}
		})
	}
}
