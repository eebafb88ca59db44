package npmdocs

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const testRegistryYAML = `commands:
  view:
    usage: ["[<package-spec>] [<field>[.subfield]...]"]
    params: [json, workspace]
  install:
    usage: ["[<package-spec> ...]"]
    params: [save]
    workspaces: true
  token:
    usage: ["list", "revoke <id|token>"]
    workspaces: false
  exec:
    usage: ["-- <pkg>[@<version>] [args...]"]
    params: [package]
aliases:
  i: install
  info: view
  v: view
definitions:
  json:
    default: "false"
    type: Boolean
    description: Whether or not to output JSON data.
  workspace:
    default: ""
    type: String
    description: Enable running a command in the context of a workspace.
    exclusive: [workspaces]
  workspaces:
    default: "null"
    type: "null or Boolean"
    description: Run in all workspaces.
  save:
    default: "true"
    type: Boolean
    description: Save installed packages to package.json.
  package:
    type: String
    description: The package to install.
  global-style:
    type: Boolean
    deprecated: Use --install-strategy=shallow instead.
shorthands:
  g: [--global]
  S: [--save]
  reg: [--registry]
`

func newTestRegistry(t *testing.T) Registry {
	t.Helper()

	reg, err := ParseRegistry([]byte(testRegistryYAML))
	if err != nil {
		t.Fatalf("ParseRegistry() error = %v", err)
	}
	return reg
}

// stubMan records the markdown it receives.
type stubMan struct {
	got string
	err error
}

func (s *stubMan) RenderMan(_ context.Context, markdown string) (string, error) {
	s.got = markdown
	if s.err != nil {
		return "", s.err
	}
	return ".TH STUB\n", nil
}

type stubHTML struct {
	page HTMLPage
}

func (s *stubHTML) Render(_ context.Context, src string, page HTMLPage) (string, error) {
	s.page = page
	return "<html>" + src + "</html>", nil
}

func mustParse(t *testing.T, path, raw string) *Document {
	t.Helper()

	doc, err := ParseDocument(path, raw)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	return doc
}

func TestNewBuilder_NilRegistry(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(nil)
	if !errors.Is(err, ErrNilRegistry) {
		t.Errorf("NewBuilder(nil) error = %v, want ErrNilRegistry", err)
	}
}

func TestBuilder_Expand(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	b, err := NewBuilder(reg, WithVersion("10.9.0"), WithOutputs(Outputs{}))
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	tests := []struct {
		name    string
		path    string
		body    string
		want    []string
		notWant []string
		wantErr error
	}{
		{
			name: "command document",
			path: "commands/npm-view.md",
			body: "### Synopsis\n\n<!-- AUTOGENERATED USAGE DESCRIPTIONS -->\n\n### Configuration\n\n<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->\n\nnpm@@VERSION@\n",
			want: []string{
				"```bash\nnpm view [<package-spec>] [<field>[.subfield]...]\n\naliases: info, v\n```",
				"#### `json`",
				"#### `workspace`",
				"#### `workspaces`",
				"npm@10.9.0",
			},
			notWant: []string{"AUTOGENERATED", "@VERSION@"},
		},
		{
			name: "command unaware of workspaces",
			path: "commands/npm-token.md",
			body: "<!-- AUTOGENERATED USAGE DESCRIPTIONS -->\n",
			want: []string{
				"npm token list\nnpm token revoke <id|token>\n```",
				"Note: This command is unaware of workspaces.",
			},
		},
		{
			name: "launcher document",
			path: "commands/npx.md",
			body: "<!-- AUTOGENERATED USAGE DESCRIPTIONS -->\n",
			want: []string{"npx -- <pkg>[@<version>] [args...]"},
			// npx has no config section of its own.
			notWant: []string{"#### `package`"},
		},
		{
			name: "config document",
			path: "using-npm/config.md",
			body: "<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->\n\n<!-- AUTOGENERATED CONFIG SHORTHANDS -->\n",
			want: []string{
				"#### `json`",
				"* `-S`: `--save`",
				"* `--reg`: `--registry`",
				"* `-g`: `--global`",
			},
		},
		{
			name:    "other document only gets the version",
			path:    "using-npm/scripts.md",
			body:    "<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->\n@VERSION@",
			want:    []string{"<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->\n10.9.0"},
			notWant: []string{"@VERSION@"},
		},
		{
			name:    "missing usage tag",
			path:    "commands/npm-install.md",
			body:    "<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->\n",
			wantErr: ErrMissingPlaceholder,
		},
		{
			name:    "unknown command",
			path:    "commands/npm-frobnicate.md",
			body:    "<!-- AUTOGENERATED USAGE DESCRIPTIONS -->\n",
			wantErr: ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := b.Expand(&Document{Path: tt.path, Body: tt.body})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expand() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Expand() missing %q in:\n%s", want, got)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(got, notWant) {
					t.Errorf("Expand() contains %q in:\n%s", notWant, got)
				}
			}
		})
	}
}

func TestBuilder_Expand_ConfigOrder(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(newTestRegistry(t), WithOutputs(Outputs{}))
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	got, err := b.Expand(&Document{
		Path: "using-npm/config.md",
		Body: "<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->\n<!-- AUTOGENERATED CONFIG SHORTHANDS -->",
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	order := []string{"`json`", "`package`", "`save`", "`workspace`", "`workspaces`", "`global-style`"}
	last := -1
	for _, key := range order {
		idx := strings.Index(got, "#### "+key)
		if idx == -1 {
			t.Fatalf("Expand() missing %s", key)
		}
		if idx < last {
			t.Errorf("Expand() %s out of order", key)
		}
		last = idx
	}
}

func TestBuilder_Expand_AlreadyExpanded(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(newTestRegistry(t), WithOutputs(Outputs{}))
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	doc := &Document{Path: "commands/npm-install.md", Body: "<!-- AUTOGENERATED USAGE DESCRIPTIONS -->\n<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->"}
	once, err := b.Expand(doc)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	_, err = b.Expand(&Document{Path: doc.Path, Body: once})
	var missing *MissingPlaceholderError
	if !errors.As(err, &missing) {
		t.Fatalf("second Expand() error = %v, want MissingPlaceholderError", err)
	}
	if missing.Path != doc.Path {
		t.Errorf("MissingPlaceholderError.Path = %q, want %q", missing.Path, doc.Path)
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	man := &stubMan{}
	html := &stubHTML{}
	b, err := NewBuilder(newTestRegistry(t),
		WithVersion("10.9.0"),
		WithManRenderer(man),
		WithHTMLRenderer(html),
	)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	raw := "---\ntitle: npm-install\nsection: 1\ndescription: Install a package\n---\n\n" +
		"<!-- AUTOGENERATED USAGE DESCRIPTIONS -->\n\n<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->\n\n" +
		"See [`npm view`](/commands/npm-view).\n"
	doc := mustParse(t, "commands/npm-install.md", raw)

	res, err := b.Build(context.Background(), doc)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(res.Artifacts) != 3 {
		t.Fatalf("Build() artifacts = %d, want 3", len(res.Artifacts))
	}

	md, ok := res.Artifact(KindMarkdown)
	if !ok {
		t.Fatal("missing markdown artifact")
	}
	if md.Path != "commands/npm-install.md" {
		t.Errorf("markdown path = %q", md.Path)
	}
	if !strings.HasPrefix(md.Content, "---\ntitle: npm-install\nsection: 1\ndescription: Install a package\n---\n\n```bash") {
		t.Errorf("markdown content = %q", md.Content)
	}

	manPage, ok := res.Artifact(KindMan)
	if !ok {
		t.Fatal("missing man artifact")
	}
	if manPage.Path != "man1/npm-install.1" {
		t.Errorf("man path = %q, want man1/npm-install.1", manPage.Path)
	}
	if !strings.HasPrefix(man.got, "# npm-install(1) - Install a package\n\n") {
		t.Errorf("man input header = %q", man.got)
	}
	if !strings.Contains(man.got, "See `npm help view`.") {
		t.Errorf("man input missing help link in:\n%s", man.got)
	}

	htmlPage, ok := res.Artifact(KindHTML)
	if !ok {
		t.Fatal("missing html artifact")
	}
	if htmlPage.Path != "commands/npm-install.html" {
		t.Errorf("html path = %q", htmlPage.Path)
	}
	if html.page.Title != "npm-install" || html.page.Path != doc.Path {
		t.Errorf("html page = %+v", html.page)
	}
	if !strings.Contains(htmlPage.Content, "[`npm view`](/commands/npm-view)") {
		t.Error("html input should keep site links")
	}
}

func TestBuilder_Build_NoSectionSkipsMan(t *testing.T) {
	t.Parallel()

	man := &stubMan{}
	b, err := NewBuilder(newTestRegistry(t), WithManRenderer(man), WithOutputs(Outputs{Man: true, Markdown: true}))
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	res, err := b.Build(context.Background(), mustParse(t, "using-npm/scripts.md", "# Scripts\n"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := res.Artifact(KindMan); ok {
		t.Error("Build() produced a man page without a section")
	}
	if man.got != "" {
		t.Error("man renderer should not be called")
	}
	if _, ok := res.Artifact(KindHTML); ok {
		t.Error("Build() produced HTML while disabled")
	}
}

func TestBuilder_Build_Errors(t *testing.T) {
	t.Parallel()

	renderErr := errors.New("boom")
	b, err := NewBuilder(newTestRegistry(t), WithManRenderer(&stubMan{err: renderErr}), WithOutputs(Outputs{Man: true}))
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		doc     *Document
		wantErr error
	}{
		{"nil document", context.Background(), nil, ErrNilDocument},
		{"empty path", context.Background(), &Document{}, ErrEmptyPath},
		{"canceled", canceled, &Document{Path: "a.md"}, context.Canceled},
		{"man renderer failure", context.Background(), &Document{Path: "a.md", Section: "7"}, renderErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := b.Build(tt.ctx, tt.doc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Error("Build() returned a partial result")
			}
		})
	}
}

func TestNewBuilder_DefaultRenderers(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(newTestRegistry(t), WithVersion("10.9.0"))
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	raw := "---\ntitle: npm-token\nsection: 1\ndescription: Manage your authentication tokens\n---\n\n" +
		"## Synopsis\n\n<!-- AUTOGENERATED USAGE DESCRIPTIONS -->\n\nSee [npm adduser](/commands/npm-adduser).\n"
	res, err := b.Build(context.Background(), mustParse(t, "commands/npm-token.md", raw))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	manPage, _ := res.Artifact(KindMan)
	for _, want := range []string{".TH", "TOKEN", "NPM@10.9.0"} {
		if !strings.Contains(manPage.Content, want) {
			t.Errorf("man page missing %q in:\n%s", want, manPage.Content)
		}
	}

	htmlPage, _ := res.Artifact(KindHTML)
	for _, want := range []string{"<title>npm-token</title>", `href="npm-adduser.html"`, `id="synopsis"`, "npm@10.9.0"} {
		if !strings.Contains(htmlPage.Content, want) {
			t.Errorf("html page missing %q", want)
		}
	}
}
