package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/bits-format/bits/packet"
)

func MustString(p *packet.Packet, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(p, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
