package service_test

import (
	"testing"

	"github.com/yeisme/studiovault/pkg/internal/service"
)

// TestUploadSignatureVector 测试签名结果与已知向量一致.
func TestUploadSignatureVector(t *testing.T) {
	params := map[string]string{
		"timestamp":     "1700000000",
		"api_key":       "1234567890",
		"resource_type": "video",
		"folder":        "studio/videos",
	}

	got := service.UploadSignature(params, "studio-secret")
	want := "0ca847f0aa6b1e4a965ce3fbc9342374aa296759"

	if got != want {
		t.Errorf("UploadSignature() = %s, want %s", got, want)
	}
}

// TestUploadSignatureDeterministic 测试相同输入的签名稳定，与 map 遍历顺序无关.
func TestUploadSignatureDeterministic(t *testing.T) {
	params := map[string]string{
		"timestamp": "1700000000",
		"folder":    "a",
		"api_key":   "k",
	}

	first := service.UploadSignature(params, "s")
	for range 10 {
		if got := service.UploadSignature(params, "s"); got != first {
			t.Fatalf("signature not deterministic: %s != %s", got, first)
		}
	}

	if len(first) != 40 {
		t.Errorf("expected 40 hex chars, got %d", len(first))
	}
}

// TestUploadSignatureSecretMatters 测试不同密钥产生不同签名.
func TestUploadSignatureSecretMatters(t *testing.T) {
	params := map[string]string{"timestamp": "1700000000"}

	if service.UploadSignature(params, "a") == service.UploadSignature(params, "b") {
		t.Error("expected different signatures for different secrets")
	}
}
