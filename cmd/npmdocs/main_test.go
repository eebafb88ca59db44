package main

// Notes:
// - runMain: we test exit codes and the files a full build writes, using a
//   temp project with an explicit config so the working directory is never
//   searched.
// - Man page content is checked loosely; roff formatting belongs to go-md2man.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testRegistry = `commands:
  ping:
    usage: [""]
    params: [registry]
    workspaces: false
aliases:
  pong: ping
definitions:
  registry:
    default: '"https://registry.npmjs.org/"'
    type: URL
    description: The base URL of the npm registry.
  global:
    default: "false"
    type: Boolean
    description: Operates in "global" mode.
shorthands:
  g: [--global]
`

const testNav = `- title: CLI Commands
  shortName: Commands
  url: /commands
  children:
    - title: npm ping
      url: /commands/npm-ping
- title: Using npm
  url: /using-npm
  children:
    - title: config
      url: /using-npm/config
`

const testPing = `---
title: npm-ping
section: 1
description: Ping npm registry
---

### Synopsis

<!-- AUTOGENERATED USAGE DESCRIPTIONS -->

### Configuration

<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->

### See Also

* [npm config](/using-npm/config)
`

const testConfigDoc = `---
title: config
section: 7
description: More than you probably want to know about npm configuration
---

### Shorthands

<!-- AUTOGENERATED CONFIG SHORTHANDS -->

### Config Settings

<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->

Built with npm@@VERSION@.
`

// setupProject writes a complete project and returns its config path.
func setupProject(t *testing.T, docs map[string]string) (string, string) {
	t.Helper()

	files := map[string]string{
		"npmdocs.yaml":    "version: 10.9.0\nregistry: registry.yaml\nman:\n  date: October 2026\n",
		"registry.yaml":   testRegistry,
		"content/nav.yml": testNav,
	}
	for k, v := range docs {
		files["content/"+k] = v
	}

	dir := setupTestDir(t, files)
	return dir, filepath.Join(dir, "npmdocs.yaml")
}

func newTestEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:     func() time.Time { return time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC) },
		Stdout:  &stdout,
		Stderr:  &stderr,
		Getenv:  fakeGetenv(vars),
		Environ: func() []string { return nil },
	}, &stdout, &stderr
}

func readOutput(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRunMain_Build - Full build
// ---------------------------------------------------------------------------

func TestRunMain_Build(t *testing.T) {
	t.Parallel()

	dir, cfgPath := setupProject(t, map[string]string{
		"commands/npm-ping.md": testPing,
		"using-npm/config.md":  testConfigDoc,
	})
	env, stdout, stderr := newTestEnv(nil)

	code := runMain([]string{"build", "-c", cfgPath, "-w", "2"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"Built ", "npm-ping.md", "config.md", "2 succeeded, 0 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q in %q", want, out)
		}
	}

	md := readOutput(t, filepath.Join(dir, "md", "commands", "npm-ping.md"))
	for _, want := range []string{
		"---\ntitle: npm-ping\nsection: 1\ndescription: Ping npm registry\n---\n\n",
		"```bash\nnpm ping\n\nalias: pong\n```\n\nNote: This command is unaware of workspaces.",
		"#### `registry`",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q in:\n%s", want, md)
		}
	}

	config := readOutput(t, filepath.Join(dir, "md", "using-npm", "config.md"))
	for _, want := range []string{"* `-g`: `--global`", "#### `global`", "Built with npm@10.9.0."} {
		if !strings.Contains(config, want) {
			t.Errorf("config markdown missing %q", want)
		}
	}

	man := readOutput(t, filepath.Join(dir, "man", "man1", "npm-ping.1"))
	for _, want := range []string{".TH", "PING", "October 2026", "NPM@10.9.0", "npm help config"} {
		if !strings.Contains(man, want) {
			t.Errorf("man page missing %q in:\n%s", want, man)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "man", "man7", "config.7")); err != nil {
		t.Errorf("config man page: %v", err)
	}

	html := readOutput(t, filepath.Join(dir, "output", "commands", "npm-ping.html"))
	for _, want := range []string{
		"<title>npm-ping</title>",
		`href="../using-npm/config.html"`,
		`class="active"`,
		`<a href="#synopsis">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "output", "nav.html")); !os.IsNotExist(err) {
		t.Error("nav.yml must not be built")
	}
}

func TestRunMain_BuildSelectedOutputs(t *testing.T) {
	t.Parallel()

	dir, cfgPath := setupProject(t, map[string]string{"commands/npm-ping.md": testPing})
	env, _, stderr := newTestEnv(map[string]string{"NPMDOCS_VERSION": "11.0.0"})

	code := runMain([]string{"build", "-c", cfgPath, "--no-man", "--no-html", "--md-dir", filepath.Join(dir, "alt"), "-q"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr.String())
	}

	if _, err := os.Stat(filepath.Join(dir, "alt", "commands", "npm-ping.md")); err != nil {
		t.Errorf("markdown output: %v", err)
	}
	for _, skipped := range []string{"man", "output", "md"} {
		if _, err := os.Stat(filepath.Join(dir, skipped)); !os.IsNotExist(err) {
			t.Errorf("%s should not exist", skipped)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_ExitCodes - Error classes
// ---------------------------------------------------------------------------

func TestRunMain_ExitCodes(t *testing.T) {
	t.Parallel()

	drifted := "---\ntitle: npm-ping\n---\n\n### Configuration\n\n<!-- AUTOGENERATED CONFIG DESCRIPTIONS -->\n"
	unknown := "<!-- AUTOGENERATED USAGE DESCRIPTIONS -->\n"

	tests := []struct {
		name       string
		docs       map[string]string
		args       func(dir, cfg string) []string
		want       int
		wantStderr string
	}{
		{
			name:       "missing placeholder",
			docs:       map[string]string{"commands/npm-ping.md": drifted},
			args:       func(_, cfg string) []string { return []string{"build", "-c", cfg} },
			want:       ExitDrift,
			wantStderr: "hint: restore <!-- AUTOGENERATED USAGE DESCRIPTIONS -->",
		},
		{
			name:       "unknown command",
			docs:       map[string]string{"commands/npm-frobnicate.md": unknown},
			args:       func(_, cfg string) []string { return []string{"build", "-c", cfg} },
			want:       ExitDrift,
			wantStderr: "FAILED ",
		},
		{
			name:       "missing config",
			args:       func(dir, _ string) []string { return []string{"build", "-c", filepath.Join(dir, "nope.yaml")} },
			want:       ExitUsage,
			wantStderr: "config file not found",
		},
		{
			name:       "missing registry",
			docs:       map[string]string{"commands/npm-ping.md": testPing},
			args:       func(dir, cfg string) []string { return []string{"build", "-c", cfg, "-r", filepath.Join(dir, "nope.yaml")} },
			want:       ExitIO,
			wantStderr: "hint: set registry",
		},
		{
			name:       "empty content",
			args:       func(_, cfg string) []string { return []string{"build", "-c", cfg} },
			want:       ExitIO,
			wantStderr: "no markdown documents found",
		},
		{
			name: "bad flag",
			args: func(_, _ string) []string { return []string{"build", "--bogus"} },
			want: ExitUsage,
		},
		{
			name: "bad workers",
			args: func(_, cfg string) []string { return []string{"build", "-c", cfg, "-w", "-1"} },
			want: ExitUsage,
		},
		{
			name: "unknown subcommand",
			args: func(_, _ string) []string { return []string{"frobnicate"} },
			want: ExitUsage,
		},
		{
			name: "no subcommand",
			args: func(_, _ string) []string { return nil },
			want: ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir, cfg := setupProject(t, tt.docs)
			env, _, stderr := newTestEnv(nil)

			if got := runMain(tt.args(dir, cfg), env); got != tt.want {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", got, tt.want, stderr.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q in %q", tt.wantStderr, stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Info - version and help
// ---------------------------------------------------------------------------

func TestRunMain_Info(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"version"}, "npmdocs " + Version},
		{[]string{"help"}, "Usage: npmdocs <command>"},
		{[]string{"help", "build"}, "Usage: npmdocs build [content-dir] [flags]"},
		{[]string{"build", "--help"}, "--version-string"},
		{[]string{"help", "version"}, "Show version information."},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := newTestEnv(nil)
			if code := runMain(tt.args, env); code != ExitSuccess {
				t.Errorf("runMain() = %d, want %d", code, ExitSuccess)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout missing %q in %q", tt.want, stdout.String())
			}
		})
	}

	env, _, stderr := newTestEnv(nil)
	if code := runHelp([]string{"nope"}, env); code != ExitUsage {
		t.Errorf("runHelp(nope) = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "Unknown command: nope") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
