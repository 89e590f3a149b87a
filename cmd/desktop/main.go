package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"minilang/pkg/config"
	"minilang/pkg/grid"
	"minilang/pkg/lang"
	"minilang/pkg/utils"
)

const (
	charWidth  = 7  // basicfont.Face7x13 advance
	lineHeight = 16 // 13px glyphs plus leading
	margin     = 8
)

const sampleSource = `let x = 2 + 3;
print(x);
`

var (
	backgroundColor = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	editorColor     = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
	outputColor     = color.RGBA{0x9c, 0xe6, 0x9c, 0xff}
	errorColor      = color.RGBA{0xff, 0x7a, 0x7a, 0xff}
	dividerColor    = color.RGBA{0x44, 0x44, 0x55, 0xff}
)

// Game is the editor window: a text box holding the program, and an output
// pane showing the result of the last run.
type Game struct {
	width, height int
	cols          int
	buffer        []rune
	result        string
	interp        lang.Interpreter
	face          text.Face
	ticks         int
}

func newGame(cfg *config.Config, src string) *Game {
	return &Game{
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		cols:   cfg.Editor.Columns,
		buffer: []rune(src),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// typeRunes inserts runes at the end of the buffer.
func (g *Game) typeRunes(rs []rune) {
	g.buffer = append(g.buffer, rs...)
}

// backspace deletes the last rune, if any.
func (g *Game) backspace() {
	if len(g.buffer) > 0 {
		g.buffer = g.buffer[:len(g.buffer)-1]
	}
}

// execute runs the buffer and keeps the displayable result.
func (g *Game) execute() {
	out, err := g.interp.Execute(string(g.buffer))
	g.result = lang.FormatResult(out, err)
	if err != nil {
		log.Printf("run failed: %v", err)
	}
}

// repeating reports whether a held key should fire this tick.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%4 == 0)
}

func (g *Game) Update() error {
	g.ticks++

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) || (ctrl && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		g.execute()
		return nil
	}

	g.typeRunes(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.typeRunes([]rune{'\n'})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.typeRunes([]rune("    "))
	}
	if repeating(ebiten.KeyBackspace) {
		g.backspace()
	}
	return nil
}

// splitY is the y coordinate of the divider between editor and output.
func (g *Game) splitY() int {
	return g.height * 2 / 3
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.LineSpacing = lineHeight
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// Editor pane
	rows := grid.Wrap(g.buffer, g.cols)
	visible := (g.splitY() - 2*margin) / lineHeight
	first := 0
	if len(rows) > visible {
		first = len(rows) - visible
	}
	g.drawText(screen, strings.Join(rows[first:], "\n"), margin, margin, editorColor)

	if (g.ticks/30)%2 == 0 {
		cx, cy := grid.Caret(g.buffer, g.cols)
		g.drawText(screen, "_", margin+cx*charWidth, margin+(cy-first)*lineHeight, editorColor)
	}

	// Divider and hint
	split := g.splitY()
	screen.SubImage(image.Rect(0, split, g.width, split+1)).(*ebiten.Image).Fill(dividerColor)
	g.drawText(screen, "F5 / Ctrl+Enter: run", margin, split+margin/2, dividerColor)

	// Output pane
	clr := outputColor
	if strings.HasPrefix(g.result, "Error:") {
		clr = errorColor
	}
	out := grid.Wrap([]rune(g.result), g.cols)
	g.drawText(screen, strings.Join(out, "\n"), margin, split+margin+lineHeight, clr)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "path to minilang.yml")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	src := sampleSource
	sourcePath := cfg.Editor.Source
	if flag.NArg() > 0 {
		sourcePath = flag.Arg(0)
	}
	if sourcePath != "" {
		src, _, err = utils.ReadSource(sourcePath, os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read source file: %v", err)
		}
	}

	game := newGame(cfg, src)
	if cfg.Trace {
		game.interp.Trace = log.New(os.Stderr, "trace: ", 0)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
