package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/agbru/wordcalc/internal/errors"
	"github.com/agbru/wordcalc/internal/eval"
	"github.com/agbru/wordcalc/internal/ui"
	"github.com/agbru/wordcalc/internal/words"
)

// REPLConfig holds the initial settings of an interactive session.
type REPLConfig struct {
	// Type is the integer type operations start with.
	Type string
	// Base is the output base: 2, 8, 10 or 16.
	Base int
	// Policy is eval.PolicyWrap or eval.PolicyTrap.
	Policy string
	Words  words.Options
	// OnResult, when set, is called after every successful evaluation.
	OnResult func(eval.Result)
}

// REPL is an interactive evaluation session over an eval.Registry.
type REPL struct {
	config   REPLConfig
	registry *eval.Registry
	in       io.Reader
	out      io.Writer
}

// NewREPL creates a session reading os.Stdin and writing os.Stdout. An
// unknown or empty config.Type falls back to the first registered type.
func NewREPL(registry *eval.Registry, config REPLConfig) *REPL {
	if _, err := registry.Get(config.Type); err != nil {
		if types := registry.List(); len(types) > 0 {
			config.Type = types[0]
		}
	}
	if config.Base == 0 {
		config.Base = 10
	}
	if config.Policy == "" {
		config.Policy = eval.PolicyWrap
	}
	return &REPL{
		config:   config,
		registry: registry,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// SetInput sets a custom input reader.
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start runs the session until "exit" or end of input.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprintf(r.out, "%s%s> %s", ui.ColorGreen(), r.config.Type, ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		eof := errors.Is(err, io.EOF)

		if input = strings.TrimSpace(input); input != "" {
			if !r.processCommand(input) {
				return
			}
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 wordcalc - Interactive Mode%s                        %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<op> <a> [b]%s     - Evaluate with the current type (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(eval.Ops, ", "))
	fmt.Fprintf(r.out, "  %stype <name>%s      - Change type (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(r.registry.List(), ", "))
	fmt.Fprintf(r.out, "  %scompare <op> ..%s  - Evaluate on every type the operands fit\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbase <2|8|10|16>%s - Change output base\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %spolicy <wrap|trap>%s - Change overflow policy\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s             - List available types\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s           - Display current settings\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s             - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s      - Leave interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand executes one line. It returns false when the session ends.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "type", "t":
		r.cmdType(args)
	case "compare", "cmpall":
		r.cmdCompare(args)
	case "base":
		r.cmdBase(args)
	case "policy":
		r.cmdPolicy(args)
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if slices.Contains(eval.Ops, cmd) {
			r.evaluate(r.config.Type, cmd, args)
			break
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func (r *REPL) request(typ, op string, operands []string) eval.Request {
	return eval.Request{Type: typ, Op: op, Operands: operands, Policy: r.config.Policy, Words: r.config.Words}
}

func (r *REPL) evaluate(typ, op string, operands []string) {
	res, err := r.registry.Evaluate(r.request(typ, op, operands))
	if err != nil {
		var arith apperrors.ArithmeticError
		if !errors.As(err, &arith) {
			fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		fmt.Fprintf(r.out, "%sTrapped: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	if r.config.OnResult != nil {
		r.config.OnResult(res)
	}
	DisplayEvalResult(res, r.config.Base, false, r.out)
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdType(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: type <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available types: %s\n", strings.Join(r.registry.List(), ", "))
		return
	}
	name := strings.ToLower(args[0])
	if _, err := r.registry.Get(name); err != nil {
		fmt.Fprintf(r.out, "%sUnknown type: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available types: %s\n", strings.Join(r.registry.List(), ", "))
		return
	}
	r.config.Type = name
	fmt.Fprintf(r.out, "Type changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

// cmdCompare evaluates one operation on every type whose range holds all
// operands, showing where each width wraps.
func (r *REPL) cmdCompare(args []string) {
	if len(args) == 0 || !slices.Contains(eval.Ops, strings.ToLower(args[0])) {
		fmt.Fprintf(r.out, "%sUsage: compare <op> <a> [b]%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	op := strings.ToLower(args[0])

	fmt.Fprintf(r.out, "\n%sComparison for %s %s:%s\n", ui.ColorBold(), op, strings.Join(args[1:], " "), ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	for _, typ := range r.registry.List() {
		res, err := r.registry.Evaluate(eval.Request{Type: typ, Op: op, Operands: args[1:], Policy: eval.PolicyWrap, Words: r.config.Words})
		if err != nil {
			var validation apperrors.ValidationError
			if errors.As(err, &validation) {
				continue
			}
			fmt.Fprintf(r.out, "  %s%-6s%s: %sError - %v%s\n", ui.ColorYellow(), typ, ui.ColorReset(), ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		status := ui.ColorGreen() + "exact" + ui.ColorReset()
		if res.Overflow {
			status = ui.ColorRed() + "overflow" + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-6s%s: %s%s%s %s\n",
			ui.ColorYellow(), typ, ui.ColorReset(),
			ui.ColorCyan(), FormatQuietResult(res, r.config.Base), ui.ColorReset(), status)
	}
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) cmdBase(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: base <2|8|10|16>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	base, err := strconv.Atoi(args[0])
	if err != nil || (base != 10 && basePrefixes[base] == "") {
		fmt.Fprintf(r.out, "%sInvalid base: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.Base = base
	fmt.Fprintf(r.out, "Output base: %s%d%s\n", ui.ColorGreen(), base, ui.ColorReset())
}

func (r *REPL) cmdPolicy(args []string) {
	if len(args) == 0 || (args[0] != eval.PolicyWrap && args[0] != eval.PolicyTrap) {
		fmt.Fprintf(r.out, "%sUsage: policy <%s|%s>%s\n", ui.ColorRed(), eval.PolicyWrap, eval.PolicyTrap, ui.ColorReset())
		return
	}
	r.config.Policy = args[0]
	fmt.Fprintf(r.out, "Overflow policy: %s%s%s\n", ui.ColorGreen(), args[0], ui.ColorReset())
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable types:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.registry.List() {
		e, _ := r.registry.Get(name)
		marker := "  "
		if name == r.config.Type {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		width := "unbounded"
		if e.Bits() > 0 {
			width = fmt.Sprintf("%d bits", e.Bits())
		}
		sign := "unsigned"
		if e.Signed() {
			sign = "signed"
		}
		fmt.Fprintf(r.out, "%s%s%-6s%s - %s, %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), sign, width)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent settings:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Type:           %s%s%s\n", ui.ColorCyan(), r.config.Type, ui.ColorReset())
	fmt.Fprintf(r.out, "  Base:           %s%d%s\n", ui.ColorCyan(), r.config.Base, ui.ColorReset())
	fmt.Fprintf(r.out, "  Overflow:       %s%s%s\n", ui.ColorCyan(), r.config.Policy, ui.ColorReset())
	fmt.Fprintf(r.out, "  Karatsuba from: %s%d%s digits\n", ui.ColorCyan(), r.config.Words.KaratsubaThreshold, ui.ColorReset())
	fmt.Fprintln(r.out)
}
