package mustache

import "time"

// Default delimiters
const (
	DefaultOpenDelim  = "{{"
	DefaultCloseDelim = "}}"
)

// Default configuration values
const (
	// DefaultMaxDepth bounds nested partial and parent expansion
	DefaultMaxDepth = 256
)

// Error code constants for categorization
const (
	ErrCodeSyntax  = "MUSTACHE_SYNTAX"
	ErrCodeCompile = "MUSTACHE_COMPILE"
	ErrCodeData    = "MUSTACHE_DATA"
	ErrCodeStorage = "MUSTACHE_STORAGE"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Compile errors
	ErrMsgSyntax             = "template syntax error"
	ErrMsgCompile            = "template structure error"
	ErrMsgTemplateCompile    = "failed to compile template"
	ErrMsgEmptyTemplateName  = "template name cannot be empty"
	ErrMsgTemplateNotFound   = "template not found"
	ErrMsgNilTemplate        = "template is nil"
	ErrMsgInvalidDelimiters  = "delimiters cannot be empty"
	ErrMsgDelimitersSpaced   = "delimiters cannot contain whitespace or '='"
	ErrMsgNegativeMaxDepth   = "max depth cannot be negative"
	ErrMsgUnsupportedData    = "data cannot be converted to a template value"
	ErrMsgInvalidJSONData    = "invalid JSON data"
	ErrMsgInvalidYAMLData    = "invalid YAML data"
	ErrMsgWatchFailed        = "failed to watch template directory"
	ErrMsgWatchNotFilesystem = "watch requires a filesystem template directory"
)

// Storage error message constants
const (
	ErrMsgNilStorageDriver        = "storage driver is nil"
	ErrMsgDriverAlreadyRegistered = "storage driver already registered"
	ErrMsgStorageDriverNotFound   = "storage driver not found"
	ErrMsgStorageClosed           = "storage is closed"
	ErrMsgInvalidTemplateName     = "invalid template name"
	ErrMsgPathTraversalDetected   = "path traversal detected in template name"
	ErrMsgInvalidStorageRoot      = "invalid storage root path"
	ErrMsgCreateStorageDir        = "failed to create storage directory"
	ErrMsgReadStorageDir          = "failed to read storage directory"
	ErrMsgReadTemplateFile        = "failed to read template file"
	ErrMsgWriteTemplateFile       = "failed to write template file"
	ErrMsgDeleteTemplateFile      = "failed to delete template file"

	ErrMsgPostgresConnectionFailed = "failed to connect to PostgreSQL"
	ErrMsgPostgresQueryFailed      = "PostgreSQL query failed"
	ErrMsgPostgresMigrationFailed  = "PostgreSQL migration failed"
	ErrMsgPostgresEmptyConnString  = "PostgreSQL connection string is empty"
	ErrMsgTemplateExists           = "template already exists"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLine         = "line"
	MetaKeyColumn       = "column"
	MetaKeyOffset       = "offset"
	MetaKeyReason       = "reason"
	MetaKeyExpected     = "expected"
	MetaKeyActual       = "actual"
	MetaKeyTemplateName = "template_name"
	MetaKeyPath         = "path"
	MetaKeyValueType    = "value_type"
	MetaKeyOpenDelim    = "open_delimiter"
	MetaKeyCloseDelim   = "close_delimiter"
	MetaKeyMaxDepth     = "max_depth"
	MetaKeyKind         = "kind"
)

// Error kinds stored under MetaKeyKind
const (
	ErrKindTemplateNotFound = "template_not_found"
)

// Storage driver names
const (
	StorageDriverNameMemory     = "memory"
	StorageDriverNameFilesystem = "filesystem"
	StorageDriverNamePostgres   = "postgres"
)

// Filesystem storage constants
const (
	FilesystemDirPermissions  = 0755
	FilesystemFilePermissions = 0644
	DefaultTemplateExtension  = ".mustache"
)

// PostgreSQL storage defaults
const (
	PostgresTablePrefix            = "mustache_"
	PostgresTableName              = "templates"
	PostgresMigrationsTableName    = "schema_migrations"
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
	PostgresUniqueViolationCode    = "23505"
)

// Cache configuration defaults
const (
	DefaultCacheTTL         = 5 * time.Minute
	DefaultCacheMaxEntries  = 1000
	DefaultNegativeCacheTTL = 30 * time.Second
)

// Log message constants
const (
	LogMsgEngineCreated     = "engine created"
	LogMsgTemplateCompiled  = "template compiled"
	LogMsgTemplateAdded     = "template added to set"
	LogMsgSetLoaded         = "template set loaded"
	LogMsgSetReloaded       = "template set reloaded"
	LogMsgSetReloadFailed   = "template set reload failed, keeping previous templates"
	LogMsgWatchStarted      = "watching template directory"
	LogMsgWatchStopped      = "stopped watching template directory"
	LogMsgWatchEvent        = "template directory changed"
	LogMsgWatchError        = "template watcher error"
)

// Log field names
const (
	LogFieldTemplate  = "template"
	LogFieldTemplates = "template_count"
	LogFieldDir       = "dir"
	LogFieldFile      = "file"
	LogFieldOp        = "op"
	LogFieldSource    = "source_length"
)
