package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/itsatony/go-mustache"
	"github.com/spf13/cobra"
)

// validationResult is the outcome for one template
type validationResult struct {
	Template string `json:"template"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

func (c *cli) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     ValidateUse,
		Short:   ValidateShort,
		Example: ValidateExample,
		Args:    cobra.MinimumNArgs(1),
		RunE:    c.runValidate,
	}

	flags := cmd.Flags()
	flags.StringP(FlagFormat, FlagFormatShort, FlagDefaultFormat, UsageFormat)
	return cmd
}

func (c *cli) runValidate(cmd *cobra.Command, args []string) error {
	format := c.config.GetString(FlagFormat)
	if format != OutputFormatText && format != OutputFormatJSON {
		return newCLIError(ExitCodeUsageError, ErrMsgInvalidFormat, errors.New(format))
	}

	engine, err := c.newEngine()
	if err != nil {
		return err
	}

	results := make([]validationResult, 0, len(args))
	invalid := 0
	for _, path := range args {
		result := c.validateOne(engine, path)
		if !result.Valid {
			invalid++
		}
		results = append(results, result)
	}

	if format == OutputFormatJSON {
		outputValidationJSON(results, c.stdout)
	} else {
		outputValidationText(results, c.stdout)
	}

	if invalid > 0 {
		return newCLIError(ExitCodeError, ErrMsgValidationFailed, fmt.Errorf(ValidationSummary, invalid, len(results)))
	}
	return nil
}

// validateOne compiles a single template file
func (c *cli) validateOne(engine *mustache.Engine, path string) validationResult {
	result := validationResult{Template: path}

	source, err := readInput(path, c.stdin)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if _, err := engine.Compile(string(source)); err != nil {
		result.Error, result.Line, result.Column = describeCompileError(err)
		return result
	}

	result.Valid = true
	return result
}

// describeCompileError extracts a message and position from a compile error
func describeCompileError(err error) (string, int, int) {
	var syntaxErr *mustache.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Reason.String(), syntaxErr.Position.Line, syntaxErr.Position.Column
	}

	var compilerErr *mustache.CompilerError
	if errors.As(err, &compilerErr) {
		msg := fmt.Sprintf(CompilerDetailFormat, compilerErr.Reason, compilerErr.Got, compilerErr.Expected)
		return msg, compilerErr.Position.Line, compilerErr.Position.Column
	}

	return err.Error(), 0, 0
}

func outputValidationText(results []validationResult, w io.Writer) {
	for _, r := range results {
		switch {
		case r.Valid:
			fmt.Fprintf(w, ValidationTextValid, r.Template)
		case r.Line > 0:
			fmt.Fprintf(w, ValidationTextInvalid, r.Template, r.Line, r.Column, r.Error)
		default:
			fmt.Fprintf(w, ValidationTextFailed, r.Template, r.Error)
		}
	}
}

func outputValidationJSON(results []validationResult, w io.Writer) {
	jsonBytes, _ := json.MarshalIndent(results, "", "  ")
	fmt.Fprintln(w, string(jsonBytes))
}
