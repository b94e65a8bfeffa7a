package encode

import (
	"strings"

	"github.com/signadot/bits-format/bits/packet"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind packet.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	LabelColor ColorAttr = iota
	VersionColor
	SpanColor
	ResultColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range []packet.Kind{packet.LiteralKind, packet.OperatorKind} {
		able := Colorable{Kind: k, Attr: VersionColor}
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = SpanColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = ResultColor
		colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	}
	colors.Map[Colorable{Kind: packet.LiteralKind, Attr: LabelColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: packet.OperatorKind, Attr: LabelColor}] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k packet.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k packet.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
