package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Cursor bool
	Decode bool
	Eval   bool
	Expr   bool
}

var d *debug

// out receives all debug output.
var out io.Writer = os.Stderr

func init() {
	d = &debug{}
	d.Cursor = boolEnv("BITS_DEBUG_CURSOR")
	d.Decode = boolEnv("BITS_DEBUG_DECODE")
	d.Eval = boolEnv("BITS_DEBUG_EVAL")
	d.Expr = boolEnv("BITS_DEBUG_EXPR")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Cursor() bool {
	return d.Cursor
}
func Decode() bool {
	return d.Decode
}
func Eval() bool {
	return d.Eval
}
func Expr() bool {
	return d.Expr
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]any, []any:
			b, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(b)
		case fmt.Stringer:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// LogAny writes v as one line of JSON, or with %v if it does not marshal.
func LogAny(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(b, '\n'))
}
