package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/bits-format/bits/decode"
	"github.com/signadot/bits-format/bits/format"
	"github.com/signadot/bits-format/bits/hexbits"
	"github.com/signadot/bits-format/bits/packet"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

func mustDecode(t *testing.T, s string, opts ...decode.DecodeOption) *packet.Packet {
	t.Helper()
	d, err := hexbits.Decode(s)
	if err != nil {
		t.Fatal(err)
	}
	p, err := decode.Decode(d, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEncodeTree(t *testing.T) {
	p := mustDecode(t, "9C0141080250320F1802104A08")
	want := `eq v4
  sum v2
    1 v2
    3 v4
  product v6
    2 v0
    2 v2`
	if got := MustString(p); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeTreeAnnotated(t *testing.T) {
	pos := map[*packet.Packet]decode.Span{}
	p := mustDecode(t, "38006F45291200", decode.Positions(pos))
	got := MustString(p, EncodePositions(pos), EncodeValues(true), Indent(4))
	want := `lt v1 @[0,49) = 1
    10 v6 @[22,33)
    20 v2 @[33,49)`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeValuesSkipsFailures(t *testing.T) {
	p := packet.Operator(0, packet.Sum, packet.Operator(1, packet.EqualTo, packet.Literal(0, 1)))
	got := MustString(p, EncodeValues(true))
	if strings.Contains(got, "=") {
		t.Errorf("unexpected value annotation:\n%s", got)
	}
}

func TestEncodeValuesPartial(t *testing.T) {
	good := packet.Operator(2, packet.Maximum, packet.Literal(0, 4), packet.Literal(0, 9))
	p := packet.Operator(0, packet.Sum, good, packet.Operator(1, packet.GreaterThan))
	got := MustString(p, EncodeValues(true))
	want := `sum v0
  max v2 = 9
    4 v0
    9 v0
  gt v1`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeValuesDeep(t *testing.T) {
	p := packet.Literal(0, 1)
	for range 2000 {
		p = packet.Operator(0, packet.Product, p)
	}
	var v struct {
		Result   uint64
		Children []json.RawMessage
	}
	if err := json.Unmarshal([]byte(MustString(p, EncodeFormat(format.JSONFormat), EncodeValues(true))), &v); err != nil {
		t.Fatal(err)
	}
	if v.Result != 1 || len(v.Children) != 1 {
		t.Errorf("root result %d with %d children", v.Result, len(v.Children))
	}
}

func TestEncodeJSON(t *testing.T) {
	pos := map[*packet.Packet]decode.Span{}
	p := mustDecode(t, "EE00D40C823060", decode.Positions(pos))
	buf := bytes.NewBuffer(nil)
	err := Encode(p, buf, EncodeFormat(format.JSONFormat), EncodePositions(pos), EncodeValues(true))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["op"] != "max" || got["result"] != float64(3) || got["kind"] != "operator" {
		t.Errorf("root %v", got)
	}
	children, _ := got["children"].([]any)
	if len(children) != 3 {
		t.Fatalf("children %v", got["children"])
	}
	first := children[0].(map[string]any)
	if first["value"] != float64(1) || first["version"] != float64(2) {
		t.Errorf("first child %v", first)
	}
	if bits := first["bits"].(map[string]any); bits["start"] != float64(18) || bits["end"] != float64(29) {
		t.Errorf("first child bits %v", bits)
	}
}

func TestEncodeYAML(t *testing.T) {
	p := mustDecode(t, "C200B40A82")
	buf := bytes.NewBuffer(nil)
	if err := Encode(p, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	var got view
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid yaml %q: %v", buf.String(), err)
	}
	one, two := uint64(1), uint64(2)
	want := view{
		Kind:    "operator",
		Version: 6,
		Op:      "sum",
		Children: []*view{
			{Kind: "literal", Version: 6, Value: &one},
			{Kind: "literal", Version: 2, Value: &two},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml (-want +got):\n%s", diff)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	p := packet.Operator(3, packet.Sum, packet.Literal(1, 5))
	plain := MustString(p)
	colored := MustString(p, EncodeColors(NewColors()))
	if plain == colored {
		t.Fatalf("expected escape sequences in %q", colored)
	}
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("no escape sequences in %q", colored)
	}
	c := NewColors()
	if got := c.Color(packet.Kind(9), LabelColor, "x"); got != "x" {
		t.Errorf("default color %q", got)
	}
}
