// Package format names the output formats packet trees can be rendered in.
//
// # Related Packages
//
//   - github.com/signadot/bits-format/bits/encode - renders packet trees
package format
