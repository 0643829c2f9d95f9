package main

import (
	"context"
	"errors"
	"os"

	"github.com/itsatony/go-mustache"
	"github.com/spf13/cobra"
)

func (c *cli) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     RenderUse,
		Short:   RenderShort,
		Example: RenderExample,
		Args:    cobra.ExactArgs(1),
		RunE:    c.runRender,
	}

	flags := cmd.Flags()
	flags.StringP(FlagData, FlagDataShort, "", UsageData)
	flags.StringP(FlagPartials, FlagPartialsShort, "", UsagePartials)
	flags.String(FlagExtension, mustache.DefaultTemplateExtension, UsageExtension)
	flags.StringP(FlagOutput, FlagOutputShort, FlagDefaultOutput, UsageOutput)
	flags.Int(FlagMaxDepth, mustache.DefaultMaxDepth, UsageMaxDepth)
	return cmd
}

func (c *cli) runRender(cmd *cobra.Command, args []string) error {
	source, err := readInput(args[0], c.stdin)
	if err != nil {
		return newCLIError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}

	data, err := loadData(c.config.GetString(FlagData))
	if err != nil {
		return newCLIError(ExitCodeInputError, ErrMsgInvalidData, err)
	}

	engine, err := c.newEngine()
	if err != nil {
		return err
	}

	tmpl, err := engine.Compile(string(source))
	if err != nil {
		return newCLIError(ExitCodeError, ErrMsgParseTemplateFailed, err)
	}

	partials, err := c.loadPartials(cmd.Context(), engine)
	if err != nil {
		return err
	}

	result := tmpl.RenderValue(data, partials)
	if err := writeOutput(c.config.GetString(FlagOutput), []byte(result), c.stdout); err != nil {
		return newCLIError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// loadPartials compiles every template in the configured partials
// directory. No directory means no partials.
func (c *cli) loadPartials(ctx context.Context, engine *mustache.Engine) (mustache.Partials, error) {
	dir := c.config.GetString(FlagPartials)
	if dir == "" {
		return mustache.Partials{}, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, newCLIError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}
	if !info.IsDir() {
		return nil, newCLIError(ExitCodeInputError, ErrMsgPartialsNotDir, errors.New(dir))
	}

	storage, err := mustache.NewFilesystemStorageWithExtension(dir, c.config.GetString(FlagExtension))
	if err != nil {
		return nil, newCLIError(ExitCodeInputError, ErrMsgLoadPartialsFailed, err)
	}
	defer storage.Close()

	set := mustache.NewTemplateSet(engine)
	if err := set.Load(ctx, storage); err != nil {
		return nil, newCLIError(ExitCodeError, ErrMsgLoadPartialsFailed, err)
	}
	return set.Partials(), nil
}
