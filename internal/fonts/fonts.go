// Package fonts loads the Go fonts bundled with golang.org/x/image once
// per process.
package fonts

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularOnce sync.Once
	regular     *text.FontSource
	regularErr  error

	boldOnce sync.Once
	bold     *text.FontSource
	boldErr  error

	monoOnce sync.Once
	mono     *text.FontSource
	monoErr  error
)

// Regular returns the Go Regular font, used for labels and titles.
func Regular() (*text.FontSource, error) {
	regularOnce.Do(func() {
		regular, regularErr = text.NewFontSource(goregular.TTF)
	})
	return regular, regularErr
}

// Bold returns the Go Bold font, used for bold titles.
func Bold() (*text.FontSource, error) {
	boldOnce.Do(func() {
		bold, boldErr = text.NewFontSource(gobold.TTF)
	})
	return bold, boldErr
}

// Mono returns the Go Mono font, used for odometer digits.
func Mono() (*text.FontSource, error) {
	monoOnce.Do(func() {
		mono, monoErr = text.NewFontSource(gomono.TTF)
	})
	return mono, monoErr
}
