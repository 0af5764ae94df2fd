// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Defaults - these keys select the storefront region and response language for vendor catalog calls.
const (
	CatalogRegion   = "catalog.region"
	CatalogLanguage = "catalog.language"
)

// Thumbnail Shaping - these keys control the artwork URL template applied to vendor thumbnails.
const (
	ThumbnailMaxWidth  = "thumbnail.max_width"
	ThumbnailMaxHeight = "thumbnail.max_height"
	ThumbnailExtension = "thumbnail.extension"
	ThumbnailQuality   = "thumbnail.quality"
)

// Playback Negotiation - these keys tune the video-service playback request.
const (
	PlaybackScenario = "playback.scenario"
)

// Token Lifecycle - these keys manage the persistent bearer-token cache shared by the session layer.
const (
	TokenCacheEnable = "token.cache"
)

// Network Transport - these keys govern the shared HTTP client behavior.
const (
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// MP4Box Post-Processing - these keys configure the external muxer invocation.
const (
	MP4BoxPath           = "mp4box.path"
	MP4BoxEmbedMetadata  = "mp4box.embed_metadata"
	MP4BoxEmbedThumbnail = "mp4box.embed_thumbnail"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)
