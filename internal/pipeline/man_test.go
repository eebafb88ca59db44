package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type recordingRenderer struct {
	got string
}

func (r *recordingRenderer) RenderMan(_ context.Context, markdown string) (string, error) {
	r.got = markdown
	return "rendered", nil
}

func TestToManPage(t *testing.T) {
	t.Parallel()

	r := &recordingRenderer{}
	meta := Meta{Title: "npm-view", Section: "1", Description: "View registry info"}

	got, err := ToManPage(context.Background(), "### Synopsis\n", meta, r)
	if err != nil {
		t.Fatalf("ToManPage() error = %v", err)
	}
	if got != "rendered" {
		t.Errorf("ToManPage() = %q, want renderer output", got)
	}
	if want := "# npm-view(1) - View registry info\n\n### Synopsis\n"; r.got != want {
		t.Errorf("renderer input = %q, want %q", r.got, want)
	}
}

func TestManPagePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, section, want string
	}{
		{"npm-view", "1", "man1/npm-view.1"},
		{"package-json", "5", "man5/package-json.5"},
		{"config", "7", "man7/config.7"},
	}

	for _, tt := range tests {
		if got := ManPagePath(tt.name, tt.section); got != tt.want {
			t.Errorf("ManPagePath(%q, %q) = %q, want %q", tt.name, tt.section, got, tt.want)
		}
	}
}

func TestMd2ManRenderer(t *testing.T) {
	t.Parallel()

	r := &Md2ManRenderer{Source: "NPM@10.9.0", Date: "October 2026"}
	meta := Meta{Title: "npm-view", Section: "1", Description: "View registry info"}

	got, err := ToManPage(context.Background(), "### Synopsis\n\nSome text.\n", meta, r)
	if err != nil {
		t.Fatalf("ToManPage() error = %v", err)
	}

	for _, want := range []string{
		".TH NPM",
		`1 "October 2026" "NPM@10.9.0"`,
		".SH NAME",
		"View registry info",
		"Synopsis",
		"Some text.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMd2ManRenderer_Errors(t *testing.T) {
	t.Parallel()

	r := &Md2ManRenderer{}

	if _, err := r.RenderMan(context.Background(), "no header\n"); !errors.Is(err, ErrManRender) {
		t.Errorf("RenderMan() error = %v, want ErrManRender", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.RenderMan(ctx, "# x(1) - y\n"); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderMan() error = %v, want context.Canceled", err)
	}
}
