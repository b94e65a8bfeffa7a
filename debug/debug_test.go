package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestBoolEnv(t *testing.T) {
	t.Setenv("BITS_TEST_FLAG", "true")
	if !boolEnv("BITS_TEST_FLAG") {
		t.Errorf("expected true")
	}
	t.Setenv("BITS_TEST_FLAG", "nope")
	if boolEnv("BITS_TEST_FLAG") {
		t.Errorf("unparseable value should be false")
	}
	if boolEnv("BITS_TEST_FLAG_UNSET") {
		t.Errorf("unset should be false")
	}
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	prev := out
	out = buf
	t.Cleanup(func() { out = prev })
	return buf
}

func TestLogAny(t *testing.T) {
	buf := capture(t)
	LogAny(map[string]any{"bits": 21, "kind": "literal"})
	if got, want := buf.String(), `{"bits":21,"kind":"literal"}`+"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}

	buf.Reset()
	LogAny(func() {})
	if !strings.HasPrefix(buf.String(), "0x") {
		t.Errorf("unmarshalable value should fall back to %%v, got %q", buf.String())
	}
}

type name string

func (n name) String() string { return "name:" + string(n) }

func TestLogf(t *testing.T) {
	buf := capture(t)
	Logf("%s %s\n", name("x"), []any{1})
	if got, want := buf.String(), "name:x [\n   |  1\n   |]\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
