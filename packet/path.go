package packet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a packet by child indices from the root. The empty path
// is the root itself and prints as "$".
type Path []int

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, i := range p {
		fmt.Fprintf(buf, "[%d]", i)
	}
	return buf.String()
}

// Child returns a new path extended by index i.
func (p Path) Child(i int) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = i
	return res
}

func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "$") {
		return nil, fmt.Errorf("%w: %q must start with $", ErrBadPath, s)
	}
	rest := s[1:]
	res := Path{}
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: %q: expected [ at %q", ErrBadPath, s, rest)
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return nil, fmt.Errorf("%w: %q: unterminated index", ErrBadPath, s)
		}
		i, err := strconv.Atoi(rest[1:end])
		if err != nil || i < 0 {
			return nil, fmt.Errorf("%w: %q: bad index %q", ErrBadPath, s, rest[1:end])
		}
		res = append(res, i)
		rest = rest[end+1:]
	}
	return res, nil
}

// At returns the packet addressed by path relative to p.
func (p *Packet) At(path Path) (*Packet, error) {
	x := p
	for n, i := range path {
		if i < 0 || i >= len(x.Children) {
			return nil, fmt.Errorf("%w: %s (%s has %d children)", ErrNoChild, path[:n+1], path[:n], len(x.Children))
		}
		x = x.Children[i]
	}
	return x, nil
}
