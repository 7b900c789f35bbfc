package model_test

import (
	"testing"

	"task-management/internal/model"
)

func TestSplitContent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantT    string
		wantDesc string
	}{
		{name: "Title only", text: "买牛奶", wantT: "买牛奶", wantDesc: ""},
		{name: "Newline", text: "写周报\n包含本周进展\n和下周计划", wantT: "写周报", wantDesc: "包含本周进展\n和下周计划"},
		{name: "Em dash", text: "开会——讨论预算", wantT: "开会", wantDesc: "讨论预算"},
		{name: "Double hyphen", text: "Deploy -- after review", wantT: "Deploy", wantDesc: "after review"},
		{name: "Leading blank lines", text: "\n\n  Fix bug \n", wantT: "Fix bug", wantDesc: ""},
		{name: "Empty", text: "", wantT: "", wantDesc: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, desc := model.SplitContent(tt.text)
			if title != tt.wantT {
				t.Errorf("title = %q, want %q", title, tt.wantT)
			}
			if desc != tt.wantDesc {
				t.Errorf("description = %q, want %q", desc, tt.wantDesc)
			}
		})
	}
}

func TestJoinContent(t *testing.T) {
	if got := model.JoinContent("a", ""); got != "a" {
		t.Errorf("JoinContent(a, \"\") = %q", got)
	}
	if got := model.JoinContent("a", "b"); got != "a\nb" {
		t.Errorf("JoinContent(a, b) = %q", got)
	}
	if got := model.JoinContent("", "b"); got != "b" {
		t.Errorf("JoinContent(\"\", b) = %q", got)
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := map[string]model.Status{
		"completed":   model.StatusCompleted,
		"done":        model.StatusCompleted,
		"Completed":   model.StatusCompleted,
		"pending":     model.StatusPending,
		"in-progress": model.StatusPending,
		"":            model.StatusPending,
		"whatever":    model.StatusPending,
	}
	for in, want := range tests {
		if got := model.NormalizeStatus(in); got != want {
			t.Errorf("NormalizeStatus(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := model.NormalizeCategory("  "); got != model.DefaultCategory {
		t.Errorf("blank category = %q, want %q", got, model.DefaultCategory)
	}
	if got := model.NormalizeCategory(" work "); got != "work" {
		t.Errorf("category = %q, want work", got)
	}
}
