package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/ecscan"
	"github.com/wippyai/ecscan/asl"
	"github.com/wippyai/ecscan/layout"
	"github.com/wippyai/ecscan/view"
)

var actions = []string{"show", "scan", "query", "monitor"}

type config struct {
	action   string
	file     string
	fields   []string
	memPath  string
	dumpPath string
	interval time.Duration
	strict   bool
	verbose  bool
	noColor  bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	log := zap.NewNop()
	if cfg.verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer log.Sync()
	layout.SetLogger(log)
	view.SetLogger(log)

	color := !cfg.noColor && term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(cfg, newPrinter(os.Stdout, color), log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("ecscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.memPath, "mem", "/dev/mem", "Memory device to map the region from")
	fs.StringVar(&cfg.dumpPath, "dump", "", "Read region bytes from a snapshot file instead of the memory device")
	fs.DurationVar(&cfg.interval, "interval", time.Second, "Polling interval for monitor")
	fs.BoolVar(&cfg.strict, "strict", false, "Reject repeated field names")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose logging")
	fs.BoolVar(&cfg.noColor, "no-color", false, "Disable styled output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ecscan [flags] show <file.asl>")
		fmt.Fprintln(stderr, "       ecscan [flags] scan <file.asl>")
		fmt.Fprintln(stderr, "       ecscan [flags] query <file.asl> FIELD...")
		fmt.Fprintln(stderr, "       ecscan [flags] monitor <file.asl> [FIELD...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return nil, fmt.Errorf("expected an action and a file")
	}
	cfg.action, cfg.file, cfg.fields = rest[0], rest[1], rest[2:]

	if !slices.Contains(actions, cfg.action) {
		return nil, fmt.Errorf("unknown action %q (want one of %s)", cfg.action, strings.Join(actions, ", "))
	}
	if cfg.action == "query" && len(cfg.fields) == 0 {
		return nil, fmt.Errorf("query needs at least one field name")
	}
	if cfg.interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", cfg.interval)
	}
	return cfg, nil
}

func run(cfg *config, p *printer, log *zap.Logger) error {
	src, err := os.ReadFile(cfg.file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var opts []layout.Option
	if cfg.strict {
		opts = append(opts, layout.WithStrict())
	}
	region, tbl, err := ecscan.Compile(string(src), opts...)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	log.Debug("declaration compiled",
		zap.String("file", cfg.file),
		zap.Stringer("region", region),
		zap.Int("fields", tbl.Len()))

	if cfg.action == "show" {
		p.show(tbl)
		return nil
	}

	mem, closeView, err := openView(cfg, region)
	if err != nil {
		return err
	}
	defer closeView()

	switch cfg.action {
	case "scan":
		return p.values(ecscan.ReadAll(tbl, mem))

	case "query":
		failed := 0
		for _, name := range cfg.fields {
			v, ok := ecscan.ReadOne(tbl, mem, name)
			if !ok {
				p.notFound(name)
				continue
			}
			if !p.value(v) {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d field(s) could not be read", failed)
		}
		return nil

	case "monitor":
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("monitor needs an interactive terminal")
		}
		fields := selectFields(tbl, cfg.fields, p)
		return runMonitor(newMonitorModel(cfg.file, region, fields, mem, cfg.interval))
	}
	return nil
}

func openView(cfg *config, region asl.Region) (view.Memory, func(), error) {
	if cfg.dumpPath != "" {
		mem, err := view.OpenFile(cfg.dumpPath)
		if err != nil {
			return nil, nil, err
		}
		return mem, func() {}, nil
	}

	mem, err := view.OpenPhysical(cfg.memPath, region.Address, region.Size)
	if err != nil {
		return nil, nil, err
	}
	return mem, func() { mem.Close() }, nil
}

// selectFields returns the named fields, or all of them when names is empty.
func selectFields(tbl *layout.Table, names []string, p *printer) []layout.Field {
	if len(names) == 0 {
		return tbl.Fields
	}
	var out []layout.Field
	for _, name := range names {
		f, ok := tbl.Lookup(name)
		if !ok {
			p.notFound(name)
			continue
		}
		out = append(out, f)
	}
	return out
}
