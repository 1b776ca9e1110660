// Package config loads reconstruction parameters from a YAML file.
//
// The file mirrors reco.Params field for field; keys absent from the file
// keep their DefaultParams value, so a partial override like
//
//	jetMinPt: 25
//	jetConeSize: 0.8
//
// is a complete configuration. Validation is deferred to reco.New, keeping
// this package a pure boundary helper for the host framework.
//
// Errors:
//
//   - ErrRead — the file could not be read.
//   - ErrParse — the file is not valid YAML for reco.Params.
package config
