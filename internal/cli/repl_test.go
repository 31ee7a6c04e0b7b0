package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/wordcalc/internal/eval"
)

func runREPL(t *testing.T, cfg REPLConfig, script string) string {
	t.Helper()
	r := NewREPL(eval.NewDefaultRegistry(), cfg)
	var out bytes.Buffer
	r.SetInput(strings.NewReader(script))
	r.SetOutput(&out)
	r.Start()
	return out.String()
}

func TestREPLCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		cfg    REPLConfig
		script string
		want   []string
	}{
		{"evaluate", REPLConfig{Type: "u8"}, "add 200 100\nexit\n", []string{"add", "44", "overflow (wrapped)", "Goodbye!"}},
		{"change type", REPLConfig{Type: "u8"}, "type u16\nadd 200 100\n", []string{"Type changed to: u16", "300", "exact"}},
		{"unknown type", REPLConfig{Type: "u8"}, "type u7\n", []string{"Unknown type: u7"}},
		{"hex base", REPLConfig{Type: "u32"}, "base 16\nmul 16 16\n", []string{"Output base: 16", "0x100"}},
		{"bad base", REPLConfig{}, "base 7\n", []string{"Invalid base: 7"}},
		{"trap", REPLConfig{Type: "i8"}, "policy trap\nneg -128\n", []string{"Overflow policy: trap", "Trapped"}},
		{"bad operand", REPLConfig{Type: "u8"}, "add 256 1\n", []string{"Error", "out of range"}},
		{"compare", REPLConfig{}, "compare mul 255 255\n", []string{"Comparison for mul", "u8", "overflow", "u16", "65025"}},
		{"list", REPLConfig{Type: "i128"}, "list\n", []string{"uxl", "unbounded", "128 bits", "signed"}},
		{"status", REPLConfig{Type: "ixl", Base: 2}, "status\n", []string{"ixl", "Base:           2"}},
		{"unknown command", REPLConfig{}, "frobnicate\n", []string{"Unknown command: frobnicate"}},
		{"default type", REPLConfig{Type: "nope"}, "status\n", []string{"u8"}},
		{"no trailing newline", REPLConfig{Type: "u64"}, "sub 5 7", []string{"sub", "18446744073709551614"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := runREPL(t, tt.cfg, tt.script)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestREPLOnResult(t *testing.T) {
	t.Parallel()
	var got []eval.Result
	runREPL(t, REPLConfig{Type: "u16", OnResult: func(r eval.Result) { got = append(got, r) }}, "add 1 2\nadd x 1\nneg 1\n")
	if len(got) != 2 {
		t.Fatalf("OnResult called %d times, want 2", len(got))
	}
	if got[1].Op != "neg" || !got[1].Overflow {
		t.Errorf("second result = %+v", got[1])
	}
}
