package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/wordcalc/internal/config"
	"github.com/agbru/wordcalc/internal/ui"
)

// CompletionNames holds the dynamic value lists offered by completion
// scripts.
type CompletionNames struct {
	Types  []string
	Ops    []string
	Suites []string
}

// Dynamic value sources of a flag.
const (
	dynTypes  = "types"
	dynOps    = "ops"
	dynSuites = "suites"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag only needs an entry there.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // static suggestions (nil = boolean or free value)
	ValueName string   // label for the value, empty for boolean flags
	IsFile    bool     // the flag takes a file path
	Dynamic   string   // one of dynTypes, dynOps, dynSuites
}

var completionModes = []string{"eval", "verify", "calibrate", "repl"}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "mode", Help: "Mode of operation", Values: completionModes, ValueName: "mode"},
	{Long: "type", Help: "Operand type", Dynamic: dynTypes, ValueName: "type"},
	{Long: "op", Help: "Operation", Dynamic: dynOps, ValueName: "operation"},
	{Long: "base", Help: "Output base", Values: []string{"2", "8", "10", "16"}, ValueName: "base"},
	{Long: "overflow", Help: "Overflow policy", Values: []string{"wrap", "trap"}, ValueName: "policy"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "karatsuba-threshold", Help: "Karatsuba threshold in digits", Values: []string{"0", "8", "16", "24", "32"}, ValueName: "digits"},
	{Long: "max-depth", Help: "Maximum Karatsuba depth", ValueName: "depth"},
	{Long: "seed", Help: "Verification seed", ValueName: "seed"},
	{Long: "iterations", Help: "Cases per suite", Values: []string{"100", "1000", "10000"}, ValueName: "count"},
	{Long: "suites", Help: "Suites to verify", Dynamic: dynSuites, ValueName: "suites"},
	{Long: "reference", Help: "Reference arithmetic", Values: []string{"math/big", "gmp"}, ValueName: "reference"},
	{Long: "timeout", Help: "Maximum run time", Values: []string{"30s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "calibration-profile", Help: "Calibration profile file", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Print only results"},
	{Long: "verbose", Short: "v", Help: "Print details and debug logs"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "theme", Help: "Color theme", Values: ui.ThemeNames(), ValueName: "theme"},
	{Long: "log-format", Help: "Log output format", Values: config.LogFormats, ValueName: "format"},
	{Long: "metrics", Help: "Print Prometheus metrics after the run"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh",
// "fish" or "powershell") to out.
func GenerateCompletion(out io.Writer, shell string, names CompletionNames) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, names)
	case "zsh":
		return generateZshCompletion(out, names)
	case "fish":
		return generateFishCompletion(out, names)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, names)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// values returns the suggestions of f, resolving dynamic lists.
func (f FlagCompletion) values(names CompletionNames) []string {
	switch f.Dynamic {
	case dynTypes:
		return names.Types
	case dynOps:
		return names.Ops
	case dynSuites:
		return append([]string{"all"}, names.Suites...)
	}
	return f.Values
}

func generateBashCompletion(out io.Writer, names CompletionNames) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	var cases strings.Builder
	var filePatterns []string
	for _, f := range flagRegistry {
		if f.IsFile {
			filePatterns = append(filePatterns, "--"+f.Long)
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
			continue
		}
		vals := f.values(names)
		if len(vals) == 0 {
			continue
		}
		fmt.Fprintf(&cases, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
			f.Long, strings.Join(vals, " "))
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	script := fmt.Sprintf(`# Bash completion script for wordcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_wordcalc_completions() {
    local cur prev opts modes
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    modes="%s"

    case "${prev}" in
%s    esac

    if [[ ${COMP_CWORD} -eq 1 && "${cur}" != -* ]]; then
        COMPREPLY=( $(compgen -W "${modes}" -- "${cur}") )
        return 0
    fi
    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _wordcalc_completions wordcalc
`, strings.Join(opts, " "), strings.Join(completionModes, " "), cases.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

func generateZshCompletion(out io.Writer, names CompletionNames) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f, names))
	}
	args = append(args, fmt.Sprintf("        '1:mode:(%s)'", strings.Join(completionModes, " ")))

	script := fmt.Sprintf(`#compdef wordcalc

# Zsh completion script for wordcalc
# Add this to your ~/.zshrc or place in $fpath

_wordcalc() {
    _arguments -s \
%s
}

_wordcalc "$@"
`, strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats f as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion, names CompletionNames) string {
	valueSuffix := ""
	if f.IsFile {
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	} else if vals := f.values(names); len(vals) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(vals, " "))
	} else if f.ValueName != "" {
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func generateFishCompletion(out io.Writer, names CompletionNames) error {
	lines := []string{
		"# Fish completion script for wordcalc",
		"# Add this to ~/.config/fish/completions/wordcalc.fish",
		"",
		"# Disable file completion by default",
		"complete -c wordcalc -f",
		"",
		"# Modes",
		fmt.Sprintf("complete -c wordcalc -n '__fish_use_subcommand' -a '%s'", strings.Join(completionModes, " ")),
		"",
		"# Options",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, names))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats f as a fish complete command.
func fishCompleteLine(f FlagCompletion, names CompletionNames) string {
	parts := []string{"complete -c wordcalc"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsFile {
		parts = append(parts, "-rF")
	} else if vals := f.values(names); len(vals) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(vals, " ")))
	} else if f.ValueName != "" {
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func generatePowerShellCompletion(out io.Writer, names CompletionNames) error {
	var optionEntries []string
	for _, f := range flagRegistry {
		if f.Short != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '-%s'; Description = '%s' }", f.Short, f.Help))
		}
		optionEntries = append(optionEntries, fmt.Sprintf(
			"        @{Name = '--%s'; Description = '%s' }", f.Long, f.Help))
	}

	var switchEntries []string
	for _, f := range flagRegistry {
		vals := f.values(names)
		if f.IsFile || len(vals) == 0 {
			continue
		}
		quoted := make([]string, len(vals))
		for i, v := range vals {
			quoted[i] = fmt.Sprintf("'%s'", v)
		}
		switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quoted, ", ")))
	}

	script := fmt.Sprintf(`# PowerShell completion script for wordcalc
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'wordcalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
