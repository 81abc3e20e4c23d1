package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/leodido/hwcap"
	"github.com/leodido/structcli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
	"github.com/xyproto/env/v2"
)

// Build metadata injected via ldflags.
// When built without ldflags (e.g., plain `go build`), these remain
// at their zero values and the version command omits them gracefully.
var (
	version = ""
	commit  = ""
	date    = ""
)

// Exit codes, following sysexits(3) for the failure cases.
const (
	exitOK       = 0
	exitFalse    = 1
	exitUsage    = 64
	exitSoftware = 70
)

// Environment variables providing flag defaults.
const (
	envSource = "HWCAP_SOURCE"
	envDebug  = "HWCAP_DEBUG"
)

// errQueryFalse signals a query whose answer is no. It is never printed.
var errQueryFalse = errors.New("query not satisfied")

// usageError marks a malformed invocation.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil && !errors.Is(err, errQueryFalse) {
		fmt.Fprintf(stderr, "hwcap: %v\n", err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errQueryFalse):
		return exitFalse
	case errors.As(err, &ue), errors.Is(err, hwcap.ErrSourceUnsupported):
		return exitUsage
	default:
		return exitSoftware
	}
}

func rootCmd() *cobra.Command {
	root := listCmd()
	root.Use = "hwcap [names...]"
	root.Short = "CPU instruction-set capability detection"
	root.Long = fmt.Sprintf(`hwcap reports which instruction-set features the running CPU supports.

It lists the detected capabilities, resolves the highest architecture level
they satisfy and prints the compiler flags that enable them. Positional
names restrict the output to those capabilities. Without a subcommand it
behaves like "list".

This binary was built for %s. Available capabilities:
%s`, hwcap.Native().Name, formatWrappedList(hwcap.Native().Names(), "  ", 80))
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err}
	})

	root.AddCommand(listCmd())
	root.AddCommand(describeCmd())
	root.AddCommand(cflagsCmd())
	root.AddCommand(levelCmd())
	root.AddCommand(queryCmd())
	root.AddCommand(infoCmd())
	root.AddCommand(versionCmd())

	return root
}

// Options defines the flags shared by the detection subcommands.
type Options struct {
	Source hwcap.Source `flag:"source" flagshort:"s" flagdescr:"Where capabilities come from (hwcap, cpuid, all)" flagcustom:"true"`
	JSON   bool         `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
	Debug  bool         `flag:"debug" flagdescr:"Log the source and raw vector to stderr"`
}

// newOptions returns options seeded from the environment. An invalid
// HWCAP_SOURCE is reported when the command runs, not when it is built.
func newOptions() (*Options, error) {
	o := &Options{Debug: env.Bool(envDebug)}
	if name := env.Str(envSource); name != "" {
		src, err := hwcap.ParseSource(name)
		if err != nil {
			return o, fmt.Errorf("%s: %w", envSource, err)
		}
		o.Source = src
	}
	return o, nil
}

func (o *Options) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

var sourceIdentifiers = func() map[hwcap.Source][]string {
	ids := make(map[hwcap.Source][]string, len(hwcap.SourceValues()))
	for _, s := range hwcap.SourceValues() {
		ids[s] = []string{s.String()}
	}
	return ids
}()

func (o *Options) DefineSource(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*hwcap.Source)
	return enumflag.New(fieldPtr, "source", sourceIdentifiers, enumflag.EnumCaseInsensitive), descr
}

func (o *Options) DecodeSource(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}
	return hwcap.ParseSource(s)
}

func (o *Options) CompleteSource(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := strings.ToLower(toComplete)
	var out []string
	for _, s := range hwcap.SourceValues() {
		if strings.HasPrefix(s.String(), prefix) {
			out = append(out, s.String())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func (o *Options) logger(c *cobra.Command) *slog.Logger {
	return newLogger(c.ErrOrStderr(), o.Debug)
}

func (o *Options) probe(c *cobra.Command, names []string) (*hwcap.Detection, error) {
	d, err := hwcap.Probe(hwcap.WithSource(o.Source), hwcap.WithFilter(names...))
	if err != nil {
		return nil, err
	}
	o.logger(c).Debug("probed capabilities",
		"arch", d.Arch.Name,
		"source", d.Source.String(),
		"vector", d.Vector.String(),
		"registered", d.Registry.Len(),
	)
	return d, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if err := validate(c, args); err != nil {
			return &usageError{err}
		}
		return nil
	}
}

// detectionCmd builds a subcommand that probes once, filtered by its
// positional arguments, and renders the detection.
func detectionCmd(use, short string, render func(c *cobra.Command, opts *Options, d *hwcap.Detection) error) *cobra.Command {
	opts, envErr := newOptions()

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			if envErr != nil {
				return &usageError{envErr}
			}
			if err := structcli.Unmarshal(c, opts); err != nil {
				return &usageError{err}
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			d, err := opts.probe(c, args)
			if err != nil {
				return err
			}
			return render(c, opts, d)
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func listCmd() *cobra.Command {
	return detectionCmd("list [names...]", "List detected capabilities on one line",
		func(c *cobra.Command, opts *Options, d *hwcap.Detection) error {
			if opts.JSON {
				return printJSON(c.OutOrStdout(), d.Report())
			}
			return hwcap.WriteList(c.OutOrStdout(), d.Registry)
		})
}

func describeCmd() *cobra.Command {
	return detectionCmd("describe [names...]", "List detected capabilities with descriptions",
		func(c *cobra.Command, opts *Options, d *hwcap.Detection) error {
			if opts.JSON {
				return printJSON(c.OutOrStdout(), d.Report())
			}
			return hwcap.WriteVerbose(c.OutOrStdout(), d.Registry)
		})
}

func cflagsCmd() *cobra.Command {
	return detectionCmd("cflags [names...]", "Print compiler flags enabling the detected capabilities",
		func(c *cobra.Command, opts *Options, d *hwcap.Detection) error {
			flags := d.CFlags()
			if opts.JSON {
				return printJSON(c.OutOrStdout(), map[string]any{"cflags": flags})
			}
			_, err := fmt.Fprintln(c.OutOrStdout(), flags)
			return err
		})
}

func levelCmd() *cobra.Command {
	return detectionCmd("level [names...]", "Print the highest detected architecture level",
		func(c *cobra.Command, opts *Options, d *hwcap.Detection) error {
			lvl, ok := d.Level()
			if opts.JSON {
				out := map[string]any{"level": nil}
				if ok {
					out["level"] = lvl.Name
				}
				return printJSON(c.OutOrStdout(), out)
			}
			if !ok {
				return nil
			}
			_, err := fmt.Fprintln(c.OutOrStdout(), lvl.Name)
			return err
		})
}

func queryCmd() *cobra.Command {
	opts, envErr := newOptions()

	cmd := &cobra.Command{
		Use:   "query [names...]",
		Short: "Exit 0 if every named capability is present, 1 otherwise",
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			if envErr != nil {
				return &usageError{envErr}
			}
			if err := structcli.Unmarshal(c, opts); err != nil {
				return &usageError{err}
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			d, err := opts.probe(c, nil)
			if err != nil {
				return err
			}
			if err := d.Check(args...); err != nil {
				var ce *hwcap.CapabilityError
				if !errors.As(err, &ce) {
					return err
				}
				opts.logger(c).Debug("query not satisfied", "capability", ce.Capability, "reason", ce.Reason)
				if opts.JSON {
					if err := printJSON(c.OutOrStdout(), map[string]any{
						"ok":         false,
						"capability": ce.Capability,
						"reason":     ce.Reason,
					}); err != nil {
						return err
					}
				}
				return errQueryFalse
			}
			if opts.JSON {
				return printJSON(c.OutOrStdout(), map[string]any{"ok": true})
			}
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// InfoOptions defines flags for the info subcommand.
type InfoOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *InfoOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

// cpuInfo is the diagnostic summary printed by the info subcommand.
type cpuInfo struct {
	Arch          string   `json:"arch"`
	DefaultSource string   `json:"default_source"`
	Vendor        string   `json:"vendor"`
	Brand         string   `json:"brand"`
	PhysicalCores int      `json:"physical_cores"`
	LogicalCores  int      `json:"logical_cores"`
	Family        int      `json:"family"`
	Model         int      `json:"model"`
	X64Level      int      `json:"x86_64_level,omitempty"`
	Features      []string `json:"features"`
}

func collectCPUInfo() cpuInfo {
	native := hwcap.Native()
	return cpuInfo{
		Arch:          native.Name,
		DefaultSource: native.DefaultSource.String(),
		Vendor:        cpuid.CPU.VendorString,
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		Family:        cpuid.CPU.Family,
		Model:         cpuid.CPU.Model,
		X64Level:      cpuid.CPU.X64Level(),
		Features:      cpuid.CPU.FeatureSet(),
	}
}

func (i cpuInfo) write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Architecture:   %s (default source %s)\n", i.Arch, i.DefaultSource)
	fmt.Fprintf(&b, "Vendor:         %s\n", orUnknown(i.Vendor))
	fmt.Fprintf(&b, "Brand:          %s\n", orUnknown(i.Brand))
	fmt.Fprintf(&b, "Cores:          %d physical, %d logical\n", i.PhysicalCores, i.LogicalCores)
	fmt.Fprintf(&b, "Family/Model:   %d/%d\n", i.Family, i.Model)
	if i.X64Level > 0 {
		fmt.Fprintf(&b, "x86-64 level:   v%d\n", i.X64Level)
	}
	fmt.Fprintf(&b, "\nFeatures (%d):\n%s\n", len(i.Features), formatWrappedList(i.Features, "  ", 80))
	_, err := io.WriteString(w, b.String())
	return err
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func infoCmd() *cobra.Command {
	opts := &InfoOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show CPU identification and diagnostics",
		Args:  usageArgs(cobra.NoArgs),
		PreRunE: func(c *cobra.Command, args []string) error {
			if err := structcli.Unmarshal(c, opts); err != nil {
				return &usageError{err}
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			info := collectCPUInfo()
			if opts.JSON {
				return printJSON(c.OutOrStdout(), info)
			}
			return info.write(c.OutOrStdout())
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tool version and target architecture",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(c *cobra.Command, args []string) error {
			out := c.OutOrStdout()
			if version != "" {
				fmt.Fprintf(out, "hwcap %s", version)
				if commit != "" {
					fmt.Fprintf(out, " (%s)", commit)
				}
				if date != "" {
					fmt.Fprintf(out, " built %s", date)
				}
				fmt.Fprintln(out)
			} else {
				fmt.Fprintln(out, "hwcap (dev)")
			}
			_, err := fmt.Fprintf(out, "Architecture: %s\n", hwcap.Native().Name)
			return err
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatWrappedList(items []string, indent string, maxWidth int) string {
	if len(items) == 0 {
		return indent + "(none)"
	}

	lines := make([]string, 0, len(items))
	line := indent
	for i, item := range items {
		token := item
		if i < len(items)-1 {
			token += ", "
		}

		if len(line)+len(token) > maxWidth && line != indent {
			lines = append(lines, strings.TrimRight(line, " "))
			line = indent + token
			continue
		}

		line += token
	}

	lines = append(lines, strings.TrimRight(line, " "))
	return strings.Join(lines, "\n")
}
