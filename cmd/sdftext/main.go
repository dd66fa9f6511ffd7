// Command sdftext converts text into line geometry for the SDF text shader.
//
// Usage:
//
//	sdftext --text Hello --format json
//	sdftext --text Go --font lmroman --format preview --png go.png
//	sdftext --config settings.toml --tolerance 1.2
//
// Settings are layered: built-in defaults, then the TOML file given with
// --config, then flags given on the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/gogpu/sdftext"
	"github.com/gogpu/sdftext/internal/preview"
	"github.com/gogpu/sdftext/outline"
)

// settings is everything one invocation needs. The TOML file uses the same
// layout.
type settings struct {
	Text    string               `toml:"text"`
	Font    string               `toml:"font"`
	Backend string               `toml:"backend"`
	Params  sdftext.Params       `toml:"params"`
	Shader  sdftext.ShaderParams `toml:"shader"`
}

// output is the json format.
type output struct {
	Text     string         `json:"text"`
	Font     string         `json:"font"`
	Pipeline sdftext.Params `json:"pipeline"`
	sdftext.Frame
}

type cli struct {
	app *kingpin.Application
	set map[string]bool // flags given on the command line

	text, font, backend *string
	count               *int
	tolerance, cluster  *float64
	radius, smoothing   *float64
	config, format, png *string
	cols, rows          *int
	pngWidth, pngHeight *int
	verbose, listFonts  *bool
}

func newCLI() *cli {
	c := &cli{set: map[string]bool{}}
	app := kingpin.New("sdftext", "Convert text into line geometry for an SDF text shader.")
	mark := func(name string) kingpin.Action {
		return func(*kingpin.ParseContext) error {
			c.set[name] = true
			return nil
		}
	}
	defaults := sdftext.DefaultParams()
	shader := sdftext.DefaultShaderParams()

	c.text = app.Flag("text", "Text to convert.").Default("Hello").Action(mark("text")).String()
	c.font = app.Flag("font", "Registered font name or .ttf/.otf path.").Default(outline.DefaultFont).Action(mark("font")).String()
	c.backend = app.Flag("backend", "Font parsing backend.").Default(outline.DefaultBackend).Action(mark("backend")).Enum(outline.Backends()...)
	c.count = app.Flag("count", "Total sample budget shared by all contours.").Default(fmt.Sprint(defaults.DiscretizeCount)).Action(mark("count")).Int()
	c.tolerance = app.Flag("tolerance", "Douglas-Peucker tolerance.").Default(fmt.Sprint(defaults.SimplifyTolerance)).Action(mark("tolerance")).Float64()
	c.cluster = app.Flag("cluster", "Snap points onto this fraction of k-means centroids.").PlaceHolder("FRACTION").Action(mark("cluster")).Float64()
	c.radius = app.Flag("radius", "Shader stroke radius.").Default(fmt.Sprint(shader.Radius)).Action(mark("radius")).Float64()
	c.smoothing = app.Flag("smoothing", "Shader edge smoothing.").Default(fmt.Sprint(shader.Smoothing)).Action(mark("smoothing")).Float64()
	c.config = app.Flag("config", "TOML settings file.").PlaceHolder("FILE").String()
	c.format = app.Flag("format", "Output format.").Default("json").Enum("json", "buffer", "shader", "preview")
	c.png = app.Flag("png", "Also write a PNG preview to FILE.").PlaceHolder("FILE").String()
	c.cols = app.Flag("cols", "Terminal preview width in cells.").Default("72").Int()
	c.rows = app.Flag("rows", "Terminal preview height in cells.").Default("18").Int()
	c.pngWidth = app.Flag("png-width", "PNG preview width.").Default("800").Int()
	c.pngHeight = app.Flag("png-height", "PNG preview height.").Default("400").Int()
	c.verbose = app.Flag("verbose", "Log pipeline stages to stderr.").Short('v').Bool()
	c.listFonts = app.Flag("list-fonts", "List registered fonts and exit.").Bool()
	c.app = app
	return c
}

// settings layers the config file and explicit flags over the defaults.
func (c *cli) settings() (settings, error) {
	s := settings{
		Text:    *c.text,
		Font:    *c.font,
		Backend: *c.backend,
		Params: sdftext.Params{
			DiscretizeCount:   *c.count,
			SimplifyTolerance: *c.tolerance,
		},
		Shader: sdftext.ShaderParams{Radius: *c.radius, Smoothing: *c.smoothing},
	}
	if *c.config != "" {
		data, err := os.ReadFile(*c.config)
		if err != nil {
			return s, fmt.Errorf("read config: %w", err)
		}
		// Keys missing from the file keep their current values.
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse config %s: %w", *c.config, err)
		}
	}

	if c.set["text"] {
		s.Text = *c.text
	}
	if c.set["font"] {
		s.Font = *c.font
	}
	if c.set["backend"] {
		s.Backend = *c.backend
	}
	if c.set["count"] {
		s.Params.DiscretizeCount = *c.count
	}
	if c.set["tolerance"] {
		s.Params.SimplifyTolerance = *c.tolerance
	}
	if c.set["cluster"] {
		s.Params.Cluster = true
		s.Params.ClusterPercentage = *c.cluster
	}
	if c.set["radius"] {
		s.Shader.Radius = *c.radius
	}
	if c.set["smoothing"] {
		s.Shader.Smoothing = *c.smoothing
	}
	return s, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := newCLI()
	c.app.UsageWriter(stderr)
	c.app.ErrorWriter(stderr)
	if _, err := c.app.Parse(args); err != nil {
		return err
	}

	if *c.listFonts {
		for _, name := range outline.Fonts() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}
	if *c.verbose {
		sdftext.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer sdftext.SetLogger(nil)
	}

	s, err := c.settings()
	if err != nil {
		return err
	}

	p := sdftext.New(sdftext.WithOutlineOptions(outline.WithBackend(s.Backend)))
	geom, err := p.Run(ctx, sdftext.Request{Text: s.Text, FontID: s.Font, Params: s.Params})
	if err != nil {
		return err
	}
	frame := sdftext.NewFrame(geom, s.Shader)

	if *c.png != "" {
		if err := preview.SavePNG(*c.png, geom, *c.pngWidth, *c.pngHeight, s.Shader); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	}

	switch *c.format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output{Text: s.Text, Font: s.Font, Pipeline: s.Params, Frame: frame.WithShader()})
	case "buffer":
		buf := geom.Buffer()
		for i := 0; i < len(buf); i += sdftext.LineStride {
			fmt.Fprintf(stdout, "%g %g %g %g\n", buf[i], buf[i+1], buf[i+2], buf[i+3])
		}
		return nil
	case "shader":
		_, err := io.WriteString(stdout, frame.WithShader().Shader)
		return err
	case "preview":
		title := strings.Join(strings.Fields(s.Text), " ")
		_, err := fmt.Fprintln(stdout, preview.Terminal(geom, title, *c.cols, *c.rows))
		return err
	}
	return fmt.Errorf("unknown format %q", *c.format)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "sdftext:", err)
		os.Exit(1)
	}
}
