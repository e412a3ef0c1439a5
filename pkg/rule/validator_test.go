package rule_test

import (
	"testing"

	"github.com/yeisme/studiovault/pkg/rule"
)

// mediaLimits 用于测试 ValidateStruct 的示例结构体.
type mediaLimits struct {
	Category     string `rule:"required"`
	MaxPerUpload int    `rule:"min=1"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	if rule.Engine() == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	valid := mediaLimits{Category: "weddingphotos", MaxPerUpload: 10}
	if err := rule.ValidateStruct(valid); err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	missingCategory := mediaLimits{Category: "", MaxPerUpload: 10}
	if err := rule.ValidateStruct(missingCategory); err == nil {
		t.Error("Expected error for missing category, got nil")
	}

	zeroLimit := mediaLimits{Category: "weddingphotos", MaxPerUpload: 0}
	if err := rule.ValidateStruct(zeroLimit); err == nil {
		t.Error("Expected error for zero upload limit, got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	if err := rule.ValidateVar("weddingphotos", "required"); err != nil {
		t.Errorf("Expected no error for non-empty category, got %v", err)
	}

	if err := rule.ValidateVar("", "required"); err == nil {
		t.Error("Expected error for empty category, got nil")
	}
}
