// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Search Behavior - these keys shape the queries sent to the torrent index.
const (
	SearchQuality              = "search.quality"
	SearchSubtitleLabel        = "search.subtitle_label"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Metadata Configuration - these keys govern title resolution through the Anilist API.
const (
	MetadataFetchAnilist = "metadata.fetch_anilist"
)

// Library Handling - these keys configure how the local anime library is scanned.
const (
	LibraryVideoExtensions = "library.video_extensions"
)

// Download Behavior - these keys control subtitle archive handling.
const (
	DownloadKeepArchives = "download.keep_archives"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Diagnostics - these keys configure the persistent logging backend.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Command Line Interface - these keys define the CLI presentation and update behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
