package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/bits-format/bits/decode"
	"github.com/signadot/bits-format/bits/eval"
	"github.com/signadot/bits-format/bits/format"
	"github.com/signadot/bits-format/bits/packet"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	indent    int
	format    format.Format
	values    bool
	positions map[*packet.Packet]decode.Span
	results   map[*packet.Packet]uint64

	Color func(packet.Kind, ColorAttr, string) string
}

func Encode(p *packet.Packet, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.values {
		es.results = eval.Values(p)
	}
	switch es.format {
	case format.TreeFormat:
		return encodeTree(p, w, es, 0)
	case format.JSONFormat:
		d, err := json.MarshalIndent(es.view(p), "", strings.Repeat(" ", es.indent))
		if err != nil {
			return err
		}
		return writeString(w, string(d)+"\n")
	case format.YAMLFormat:
		d, err := yaml.MarshalWithOptions(es.view(p), yaml.Indent(es.indent))
		if err != nil {
			return err
		}
		return writeString(w, string(d))
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func encodeTree(p *packet.Packet, w io.Writer, es *EncState, depth int) error {
	buf := &strings.Builder{}
	buf.WriteString(strings.Repeat(" ", depth*es.indent))
	buf.WriteString(es.color(p.Kind, LabelColor, label(p)))
	buf.WriteString(" " + es.color(p.Kind, VersionColor, "v"+strconv.Itoa(int(p.Version))))
	if span, ok := es.positions[p]; ok {
		buf.WriteString(" " + es.color(p.Kind, SpanColor, fmt.Sprintf("@[%d,%d)", span.Start, span.End)))
	}
	if v, ok := es.result(p); ok {
		buf.WriteString(" " + es.color(p.Kind, ResultColor, "= "+strconv.FormatUint(v, 10)))
	}
	buf.WriteByte('\n')
	if err := writeString(w, buf.String()); err != nil {
		return err
	}
	for _, c := range p.Children {
		if err := encodeTree(c, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func label(p *packet.Packet) string {
	if p.IsLiteral() {
		return strconv.FormatUint(p.Value, 10)
	}
	return p.TypeID.String()
}

func (es *EncState) color(k packet.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) result(p *packet.Packet) (uint64, bool) {
	if p.IsLiteral() {
		return 0, false
	}
	v, ok := es.results[p]
	return v, ok
}

type spanView struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

type view struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Version  uint8     `json:"version" yaml:"version"`
	Op       string    `json:"op,omitempty" yaml:"op,omitempty"`
	Value    *uint64   `json:"value,omitempty" yaml:"value,omitempty"`
	Result   *uint64   `json:"result,omitempty" yaml:"result,omitempty"`
	Bits     *spanView `json:"bits,omitempty" yaml:"bits,omitempty"`
	Children []*view   `json:"children,omitempty" yaml:"children,omitempty"`
}

func (es *EncState) view(p *packet.Packet) *view {
	res := &view{Kind: p.Kind.String(), Version: p.Version}
	if p.IsLiteral() {
		v := p.Value
		res.Value = &v
	} else {
		res.Op = p.TypeID.String()
	}
	if v, ok := es.result(p); ok {
		res.Result = &v
	}
	if span, ok := es.positions[p]; ok {
		res.Bits = &spanView{Start: span.Start, End: span.End}
	}
	for _, c := range p.Children {
		res.Children = append(res.Children, es.view(c))
	}
	return res
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
