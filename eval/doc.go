// Package eval evaluates decoded packet trees.
//
// Two independent passes are provided. VersionSum totals the version of
// every packet. Evaluate reads the tree as an expression: literals are
// numbers, operators combine the values of their children.
//
//	root, _ := decode.Decode(data)
//	total := eval.VersionSum(root)
//	value, err := eval.Evaluate(root)
//
// Operators are looked up by type id in a registry holding sum, product,
// min, max, gt, lt and eq. Arithmetic wraps modulo 2^64.
//
// Neither pass modifies the tree, so both may run at the same time over
// one tree; Run does that.
package eval
