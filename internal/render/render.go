// Package render draws the itinerary views on the terminal. It maps the
// engine's presentation hints (icons, color classes) onto terminal glyphs
// and colors; all layout decisions were already made upstream.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/username/trip-itinerary/internal/itinerary"
)

// Renderer writes formatted views to an output stream.
type Renderer struct {
	out io.Writer
}

// New creates a Renderer writing to color.Output by default.
func New(out io.Writer) *Renderer {
	if out == nil {
		out = color.Output
	}
	return &Renderer{out: out}
}

// iconGlyphs maps engine icon names to terminal glyphs.
var iconGlyphs = map[string]string{
	itinerary.IconPlane:       "✈",
	itinerary.IconTrain:       "🚄",
	itinerary.IconBed:         "🛏",
	itinerary.IconTicket:      "🎫",
	itinerary.IconBanknote:    "💴",
	itinerary.IconCheckSquare: "☐",
	itinerary.IconMoon:        "🌙",
	itinerary.IconMapPin:      "📍",
}

func glyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}

// classColors maps the engine's color classes onto terminal colors. Unknown
// classes render unstyled.
var classColors = map[string]*color.Color{
	"bg-blue-100 text-blue-600":     color.New(color.FgBlue),
	"bg-indigo-100 text-indigo-700": color.New(color.FgBlue, color.Bold),
	"bg-orange-100 text-orange-700": color.New(color.FgYellow, color.Bold),
	"bg-slate-800 text-white":       color.New(color.FgWhite, color.Bold),
	"bg-green-100 text-green-700":   color.New(color.FgGreen),
	"bg-green-100 text-green-600":   color.New(color.FgGreen),
	"bg-green-600 text-white":       color.New(color.FgGreen, color.Bold),
	"bg-purple-100 text-purple-600": color.New(color.FgMagenta),
	"bg-purple-100 text-purple-700": color.New(color.FgMagenta),
	"bg-yellow-100 text-yellow-600": color.New(color.FgYellow),
	"bg-red-50 text-red-600":        color.New(color.FgRed),
	"bg-gray-100 text-gray-600":     color.New(color.Faint),
	"bg-slate-100 text-slate-500":   color.New(color.Faint),
	"bg-emerald-100 text-emerald-800 border-emerald-200 border": color.New(color.FgGreen),
}

func styled(colorClass, s string) string {
	if c, ok := classColors[colorClass]; ok {
		return c.Sprint(s)
	}
	return s
}

func (r *Renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) println(args ...interface{}) {
	_, _ = fmt.Fprintln(r.out, args...)
}
