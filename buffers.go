package rose

import (
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/rose/surface"
)

// Role identifies one offscreen layer of the gauge.
type Role int

// Buffer roles, in compositing order except for the plot, which is drawn
// between the background and the odometer.
const (
	RoleFrame Role = iota
	RoleBackground
	RolePlot
	RoleForeground
	roleCount
)

var roleNames = [...]string{"frame", "background", "plot", "foreground"}

func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// roleSet is a bit set of roles.
type roleSet uint8

const (
	setFrame      = roleSet(1 << RoleFrame)
	setBackground = roleSet(1 << RoleBackground)
	setPlot       = roleSet(1 << RolePlot)
	setForeground = roleSet(1 << RoleForeground)
)

func (s roleSet) has(r Role) bool {
	return s&(1<<r) != 0
}

func (s roleSet) String() string {
	var names []string
	for r := Role(0); r < roleCount; r++ {
		if s.has(r) {
			names = append(names, r.String())
		}
	}
	return strings.Join(names, ",")
}

// bufferSet holds one offscreen context per role, plus the composited
// image of each, rebuilt only after the context has been redrawn.
type bufferSet struct {
	ctx  [roleCount]*gg.Context
	dims [roleCount]int
	snap [roleCount]*gg.ImageBuf
}

func newBufferSet(size, plotSize int) *bufferSet {
	b := &bufferSet{}
	for r := Role(0); r < roleCount; r++ {
		d := size
		if r == RolePlot {
			d = plotSize
		}
		b.dims[r] = d
		b.ctx[r] = gg.NewContext(d, d)
	}
	return b
}

// context returns the drawing context for r.
func (b *bufferSet) context(r Role) *gg.Context {
	return b.ctx[r]
}

// reset reallocates r at its role size, discarding its content.
func (b *bufferSet) reset(r Role) error {
	b.snap[r] = nil
	return surface.Reset(b.ctx[r], b.dims[r], b.dims[r])
}

// touch marks r as redrawn so the next image call re-reads it.
func (b *bufferSet) touch(r Role) {
	b.snap[r] = nil
}

// image returns the content of r ready for compositing.
func (b *bufferSet) image(r Role) *gg.ImageBuf {
	if b.snap[r] == nil {
		b.snap[r] = gg.ImageBufFromImage(b.ctx[r].Image())
	}
	return b.snap[r]
}
