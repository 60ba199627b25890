package storage

import (
	"strings"
	"testing"

	"ccps-chaser-go/internal/config"
)

func TestPublicURL_FromEndpoint(t *testing.T) {
	cfg := config.MinIOConfig{Endpoint: "minio.internal:9000"}
	got := PublicURL(cfg, "ccps-pdfs", "2019/september.pdf")
	want := "http://minio.internal:9000/ccps-pdfs/2019/september.pdf"
	if got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}

func TestPublicURL_SSL(t *testing.T) {
	cfg := config.MinIOConfig{Endpoint: "minio.internal:9000", UseSSL: true}
	got := PublicURL(cfg, "ccps-pdfs", "a.pdf")
	if !strings.HasPrefix(got, "https://") {
		t.Errorf("UseSSL 时应使用 https 前缀: %q", got)
	}
}

func TestPublicURL_PublicBaseOverrides(t *testing.T) {
	cfg := config.MinIOConfig{
		Endpoint:      "minio.internal:9000",
		PublicBaseURL: "https://files.example.org/",
	}
	got := PublicURL(cfg, "ccps-pdfs", "2019/september.pdf")
	want := "https://files.example.org/ccps-pdfs/2019/september.pdf"
	if got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}

func TestPublicURL_EscapesObjectPath(t *testing.T) {
	cfg := config.MinIOConfig{Endpoint: "minio.internal:9000"}
	got := PublicURL(cfg, "ccps-pdfs", "2019/process safety.pdf")
	if strings.Contains(got, " ") {
		t.Errorf("对象路径中的空格未转义: %q", got)
	}
	if !strings.Contains(got, "process%20safety.pdf") {
		t.Errorf("转义结果不符合预期: %q", got)
	}
}
