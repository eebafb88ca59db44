package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-npmdocs/internal/yamlutil"
)

type testDoc struct {
	Title   string `yaml:"title"`
	Section int    `yaml:"section"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "valid YAML", data: []byte("title: npm-view\nsection: 1"), dest: &testDoc{}},
		{name: "nil data", data: nil, dest: &testDoc{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testDoc{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("title: x"), dest: nil, wantErr: yamlutil.ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			doc := tt.dest.(*testDoc)
			if doc.Title != "npm-view" || doc.Section != 1 {
				t.Errorf("Unmarshal() = %+v", doc)
			}
		})
	}
}

func TestUnmarshal_InvalidSyntax(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("title: [unclosed"), &testDoc{})
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error %q should be prefixed with yamlutil:", err)
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	data := []byte("title: " + strings.Repeat("x", yamlutil.MaxInputSize))
	err := yamlutil.Unmarshal(data, &testDoc{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("title: x\nunknown: y"), &testDoc{})
	if err == nil {
		t.Fatal("UnmarshalStrict() expected error for unknown field")
	}

	if err := yamlutil.UnmarshalStrict([]byte("title: x"), &testDoc{}); err != nil {
		t.Errorf("UnmarshalStrict() unexpected error: %v", err)
	}
}

func TestMapSlice_PreservesOrder(t *testing.T) {
	t.Parallel()

	var got struct {
		Aliases yamlutil.MapSlice `yaml:"aliases"`
	}
	data := []byte("aliases:\n  zeta: view\n  alpha: view\n  mid: install\n")
	if err := yamlutil.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	if len(got.Aliases) != len(want) {
		t.Fatalf("got %d items, want %d", len(got.Aliases), len(want))
	}
	for i, item := range got.Aliases {
		if item.Key != want[i] {
			t.Errorf("item %d key = %v, want %s", i, item.Key, want[i])
		}
	}
}
