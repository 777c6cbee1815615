// SPDX-License-Identifier: MPL-2.0

// Package bundlefile loads and serializes robot bundle metadata files.
//
// A bundle file is a TOML document with exactly three sections and exactly
// the fields listed below, all required:
//
//	[bundle]
//	version = "2.0.0"
//
//	[kit]
//	name = "Student Robotics"
//	version = "2022.1.4.0"        # kitversion grammar
//
//	[wifi]
//	ssid = "robot-ABC"
//	psk = "beeeeees"
//	enabled = true
//	region = "GB"
//
// The schema is closed at every level: a document with any field missing,
// any unrecognized field (top level or nested), or a field of the wrong
// type is rejected in full. There is no defaulting, coercion, or partial
// result. Schema problems are reported as [SchemaError] values carrying
// the dotted path of the offending field; TOML syntax problems surface as
// the codec's own errors.
//
// Serialization is the inverse of loading: [BundleInfo.Marshal] re-encodes
// the typed value, formatting kit.version through the kitversion grammar.
// The output is not guaranteed byte-identical to arbitrary input text, but
// always re-parses to an equal value.
package bundlefile
