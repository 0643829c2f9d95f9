package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
)

// Flag names, also used as configuration keys
const (
	FlagConfig    = "config"
	FlagData      = "data"
	FlagPartials  = "partials"
	FlagExtension = "ext"
	FlagOutput    = "output"
	FlagFormat    = "format"
	FlagMaxDepth  = "max-depth"
	FlagLogLevel  = "log-level"
)

// Flag names - short form
const (
	FlagDataShort     = "d"
	FlagPartialsShort = "p"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput   = "-" // stdout
	FlagDefaultFormat   = OutputFormatText
	FlagDefaultLogLevel = "warn"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Configuration file lookup
const (
	ConfigFileName  = ".mustache"
	ConfigFileType  = "yaml"
	ConfigFilePath  = "."
	ConfigEnvPrefix = "MUSTACHE"
)

// Data file extensions
const (
	DataExtJSON = ".json"
	DataExtYAML = ".yaml"
	DataExtYML  = ".yml"
)

// Error messages - ALL must be constants
const (
	ErrMsgUsage               = "usage error"
	ErrMsgReadConfigFailed    = "failed to read config file"
	ErrMsgInvalidLogLevel     = "invalid log level"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgInvalidData         = "invalid data file"
	ErrMsgPartialsNotDir      = "partials path is not a directory"
	ErrMsgLoadPartialsFailed  = "failed to load partials"
	ErrMsgEngineFailed        = "invalid engine configuration"
	ErrMsgParseTemplateFailed = "template compilation failed"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgValidationFailed    = "templates failed validation"
)

// Help text
const (
	CLIName        = "mustache"
	CLIDescription = "Mustache templating CLI"
	CLILong        = `mustache renders and validates Mustache templates.

Configuration is read from .mustache.yaml in the current directory (or the
file given with --config) and from MUSTACHE_* environment variables, e.g.
MUSTACHE_PARTIALS=./partials or MUSTACHE_MAX_DEPTH=64. Flags override both.`

	RenderShort   = "Render a template with data"
	RenderUse     = "render TEMPLATE"
	RenderExample = `  mustache render page.mustache --data data.json
  mustache render page.mustache --data data.yaml --partials ./partials
  cat page.mustache | mustache render - -o page.html`

	ValidateShort   = "Compile templates and report errors"
	ValidateUse     = "validate TEMPLATE..."
	ValidateExample = `  mustache validate templates/*.mustache
  mustache validate page.mustache --format json`

	VersionShort = "Show version information"
)

// Flag usage strings
const (
	UsageConfig    = "config file (default is ./.mustache.yaml)"
	UsageData      = "data file, JSON or YAML by extension"
	UsagePartials  = "directory of partial templates"
	UsageExtension = "extension of partial template files"
	UsageOutput    = "output file (default: stdout)"
	UsageFormat    = "output format: text, json"
	UsageMaxDepth  = "maximum partial nesting depth, 0 for unlimited"
	UsageLogLevel  = "log level: debug, info, warn, error"
)

// Version output format templates
const (
	VersionTextTemplate = "go-mustache version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Validation output format templates
const (
	ValidationTextValid   = "%s: valid\n"
	ValidationTextInvalid = "%s:%d:%d: %s\n"
	ValidationTextFailed  = "%s: %v\n"
	ValidationSummary     = "%d of %d"
	CompilerDetailFormat  = "%s (got %q, expected %q)"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithCause = "%s: %v\n"
)
