// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SourceKind identifies which pass a configuration source belongs to.
// The declaration order of the kinds is also the merge precedence order:
// a later kind overwrites keys loaded by an earlier one.
type SourceKind string

const (
	// RelativeFile is a file resolved against the bundled resource
	// filesystem, or against ExternalConfigFileAbsolutePath when that key
	// is set.
	RelativeFile SourceKind = "relative-file"

	// AbsoluteFile is a plain file opened at the literal path given.
	AbsoluteFile SourceKind = "absolute-file"

	// URL is a properties document fetched over HTTP or HTTPS.
	URL SourceKind = "url"
)

// Keys read from the configuration map to discover external sources.
// List-valued keys hold comma-separated locations.
const (
	// ExternalConfigFileName lists relative filenames. When the key is
	// absent the merger falls back to "/<deploymentId>.properties".
	ExternalConfigFileName = "externalConfig.fileName"

	// ExternalConfigFileAbsolutePath is a directory prefix applied to every
	// entry of ExternalConfigFileName.
	ExternalConfigFileAbsolutePath = "externalConfig.fileAbsolutePath"

	// ExternalConfigFileNameAbsolute lists absolute file paths.
	ExternalConfigFileNameAbsolute = "externalConfig.fileNameAbsolute"

	// ExternalConfigURL lists http:// or https:// locations.
	ExternalConfigURL = "externalConfig.URL"
)

// ScopePrefix marks an environment-scoped key: "%<deploymentId>.<key>".
const ScopePrefix = "%"

// SourcePrecedence returns the pass order used by the merger, lowest
// precedence first.
func SourcePrecedence() []SourceKind {
	return []SourceKind{RelativeFile, AbsoluteFile, URL}
}
