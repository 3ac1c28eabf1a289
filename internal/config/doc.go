// Package config loads fevertrack's runtime configuration.
//
// Process settings come from the environment (see Config). The roster of
// subjects comes from an optional YAML or CUE file; without one the built-in
// household roster is used.
//
// A YAML roster:
//
//	default_danger_limit: 39.0
//	subjects:
//	  - id: ayul
//	    name: 아율
//	  - id: hyuk
//	    name: 혁
//	    danger_limit: 38.0
//
// The same roster in CUE is validated against an embedded schema, so a typo
// in a field name or a limit outside (37.5, 42.0] is reported with its
// position.
package config
