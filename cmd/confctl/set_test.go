package main

import (
	"os"
	"testing"
)

const testConfigSrc = `module.exports = {
	entry: "./src/index.js",
	output: {
		filename: "main.js"
	}
};
`

func TestSetCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		reassign       bool
		ident          bool
		dryRun         bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "append to existing section",
			args:        []string{"output", "publicPath=/assets/"},
			dryRun:      true,
			wantContain: []string{"main.js", "publicPath", "/assets/"},
		},
		{
			name:        "create missing section",
			args:        []string{"devServer", "port=9000", "hot=true"},
			dryRun:      true,
			wantContain: []string{"devServer", "port", "9000", "hot", "true"},
		},
		{
			name:           "reassign existing value",
			args:           []string{"output", "filename=bundle.js"},
			reassign:       true,
			dryRun:         true,
			wantContain:    []string{"bundle.js"},
			wantNotContain: []string{"main.js"},
		},
		{
			name:     "reassign missing section",
			args:     []string{"resolve", "extensions=.ts"},
			reassign: true,
			wantErr:  true,
		},
		{
			name:        "identifier value",
			args:        []string{"output", "path=outputPath"},
			ident:       true,
			dryRun:      true,
			wantContain: []string{"outputPath"},
			// outputPath must be a bare reference, not a string literal.
			wantNotContain: []string{`"outputPath"`},
		},
		{
			name:    "malformed pair",
			args:    []string{"output", "filename"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			quiet = false
			verbose = false
			dryRun = tt.dryRun
			setReassign = tt.reassign
			setIdent = tt.ident

			path := writeTestConfig(t, testConfigSrc)
			args := append([]string{path}, tt.args...)

			output, err := captureOutput(t, func() error {
				return runSet(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runSet() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestSetWritesFile(t *testing.T) {
	quiet = false
	verbose = false
	dryRun = false
	setReassign = false
	setIdent = false

	path := writeTestConfig(t, testConfigSrc)

	output, err := captureOutput(t, func() error {
		return runSet([]string{path, "output", "publicPath=/assets/"})
	})
	if err != nil {
		t.Fatalf("runSet() error = %v\nOutput: %s", err, output)
	}
	assertContains(t, output, []string{"1 change(s) applied"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config back: %v", err)
	}
	assertContains(t, string(data), []string{"publicPath"})
}

func TestParsePairs(t *testing.T) {
	desc, err := parsePairs([]string{"a=1", "b=x=y"}, false)
	if err != nil {
		t.Fatalf("parsePairs() error = %v", err)
	}
	if got := desc.Len(); got != 2 {
		t.Errorf("parsePairs() len = %d, want 2", got)
	}
	// Only the first = separates key and value.
	v, ok := desc.Get("b")
	if !ok || v.Str != "x=y" {
		t.Errorf("parsePairs() b = %+v, want x=y", v)
	}

	if _, err := parsePairs([]string{"=v"}, false); err == nil {
		t.Error("parsePairs() accepted empty key")
	}
}
