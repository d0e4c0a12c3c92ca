// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/roster/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// HandlerFunc adapts a plain function to the Handler interface
type HandlerFunc func(ctx context.Context, args *Arguments) (any, error)

// Execute calls f(ctx, args)
func (f HandlerFunc) Execute(ctx context.Context, args *Arguments) (any, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// NewArguments collects the flags the user set on cmd
func NewArguments(cmd *cobra.Command, args []string) *Arguments {
	return &Arguments{
		Flags: parseFlagsToMap(cmd),
		Args:  args,
		cmd:   cmd,
	}
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Commands without output flags fall back to human output
		jsonOutput, quietMode, err := NewFlagParser(cmd).OutputFormats()
		if err != nil {
			slog.Debug("output flags unavailable", "command", cmd.Name(), "error", err)
		}
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

		// Parse flags
		if err := parseFlags(cmd); err != nil {
			return formatter.Fail("INVALID_FLAGS", &cli.ValidationError{Err: err})
		}

		// Execute handler
		result, err := handler.Execute(ctx, NewArguments(cmd, args))
		if err != nil {
			return formatter.Fail(errorCode(err), err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

func errorCode(err error) string {
	switch cli.ExitCodeFor(err) {
	case cli.ExitNotFound:
		return "NOT_FOUND"
	case cli.ExitDataErr:
		return "MALFORMED_RECORD"
	case cli.ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "COMMAND_FAILED"
	}
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "float64":
			if v, err := cmd.Flags().GetFloat64(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetFloat64 retrieves a float64 flag with default
func (a *Arguments) GetFloat64(name string, defaultVal float64) float64 {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(float64)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}

// Has reports whether the flag was explicitly set
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// Require returns an error naming the first flag that was not set
func (a *Arguments) Require(names ...string) error {
	for _, name := range names {
		if !a.Has(name) {
			return fmt.Errorf("--%s is required", name)
		}
	}
	return nil
}
