// SPDX-License-Identifier: MIT

package table

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orbital/indent"
	"github.com/katalvlaran/orbital/license"
	"github.com/katalvlaran/orbital/radial"
)

// step is the indentation added per nesting level.
const step = 2

// Options configures Generate.
type Options struct {
	MaxN    int           // orbitals n = 1..MaxN
	Workers int           // concurrent cells; <= 0 means runtime.NumCPU()
	Header  string        // file named in the #include line
	Style   license.Style // license comment syntax
	Logger  *zap.Logger   // nil means zap.NewNop()
}

// DefaultOptions mirrors the shipped data file.
func DefaultOptions() Options {
	return Options{
		MaxN:    16,
		Workers: runtime.NumCPU(),
		Header:  "radial_data.hh",
		Style:   license.C,
	}
}

// Tables holds the computed data, indexed [n-1][L].
type Tables struct {
	MaxN    int
	Nodes   [][][]float64
	Maxima  [][][]float64
	Extent  [][]float64
	Extent2 [][]float64

	header string
	style  license.Style
}

// Generate computes every cell of the four tables.
//
// Errors:
//   - ErrMaxN if opts.MaxN < 1.
//   - the first radial or rootfind error, wrapped with its (n, L) cell.
//   - ctx.Err() if ctx is cancelled first.
func Generate(ctx context.Context, opts Options) (*Tables, error) {
	if opts.MaxN < 1 {
		return nil, fmt.Errorf("Generate: max n %d: %w", opts.MaxN, ErrMaxN)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	t := &Tables{
		MaxN:    opts.MaxN,
		Nodes:   make([][][]float64, opts.MaxN),
		Maxima:  make([][][]float64, opts.MaxN),
		Extent:  make([][]float64, opts.MaxN),
		Extent2: make([][]float64, opts.MaxN),
		header:  opts.Header,
		style:   opts.Style,
	}
	for i := 0; i < opts.MaxN; i++ {
		n := i + 1
		t.Nodes[i] = make([][]float64, n)
		t.Maxima[i] = make([][]float64, n)
		t.Extent[i] = make([]float64, n)
		t.Extent2[i] = make([]float64, n)
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for n := 1; n <= opts.MaxN; n++ {
		for L := 0; L < n; L++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := t.fill(n, L); err != nil {
					return fmt.Errorf("cell n=%d L=%d: %w", n, L, err)
				}
				log.Debug("cell computed", zap.Int("n", n), zap.Int("L", L),
					zap.Int("nodes", len(t.Nodes[n-1][L])), zap.Int("maxima", len(t.Maxima[n-1][L])))

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup only reports cell errors; a parent cancelled after the last
	// cell finished still counts as cancelled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info("radial tables generated",
		zap.Int("max_n", opts.MaxN),
		zap.Int("cells", opts.MaxN*(opts.MaxN+1)/2),
		zap.Int("workers", opts.Workers),
		zap.Duration("elapsed", time.Since(start)))

	return t, nil
}

// fill computes the (n, L) slot of every table.
func (t *Tables) fill(n, L int) error {
	nodes, err := radial.Nodes(n, L)
	if err != nil {
		return err
	}
	maxima, err := radial.Maxima(n, L)
	if err != nil {
		return err
	}
	extent, err := radial.Extent(n, L)
	if err != nil {
		return err
	}
	extent2, err := radial.Extent2(n, L)
	if err != nil {
		return err
	}

	t.Nodes[n-1][L] = nodes
	t.Maxima[n-1][L] = maxima
	t.Extent[n-1][L] = extent
	t.Extent2[n-1][L] = extent2

	return nil
}

// WriteTo emits the complete C++ source to w.
func (t *Tables) WriteTo(w io.Writer) (int64, error) {
	iw := indent.NewWriter(w)
	for _, l := range license.Lines(t.style) {
		iw.Raw(l)
	}
	iw.Raw("")
	iw.Raw(fmt.Sprintf("#include %q", t.header))
	iw.Raw("")
	t.writeTable3(iw, "radial_nodes", t.Nodes)
	iw.Raw("")
	t.writeTable3(iw, "radial_maxima", t.Maxima)
	iw.Raw("")
	t.writeTable2(iw, "radial_extent", t.Extent)
	iw.Raw("")
	t.writeTable2(iw, "radial_extent2", t.Extent2)

	return iw.Written(), iw.Err()
}

// writeTable3 emits a [N][N][N] table of value lists.
func (t *Tables) writeTable3(iw *indent.Writer, name string, cells [][][]float64) {
	sn := strconv.Itoa(t.MaxN)
	iw.Line("const double %s[%s][%s][%s] = {", name, sn, sn, sn)
	t.writeRows(iw, func(n, L int) {
		vals := cells[n-1][L]
		sep := separator(L, n)
		if len(vals) == 0 {
			iw.Line("{}%s", sep)

			return
		}
		iw.Line("{")
		iw.Indent(step)
		for i, v := range vals {
			iw.Line("%s%s", formatFloat(v), separator(i, len(vals)))
		}
		iw.Dedent()
		iw.Line("}%s", sep)
	})
	iw.Line("};")
}

// writeTable2 emits a [N][N] table of single values.
func (t *Tables) writeTable2(iw *indent.Writer, name string, cells [][]float64) {
	sn := strconv.Itoa(t.MaxN)
	iw.Line("const double %s[%s][%s] = {", name, sn, sn)
	t.writeRows(iw, func(n, L int) {
		iw.Line("%s%s", formatFloat(cells[n-1][L]), separator(L, n))
	})
	iw.Line("};")
}

// writeRows walks n = 1..MaxN and L = 0..n-1 with the shared
// "// n ==" / "// L ==" framing, delegating each cell to cell.
func (t *Tables) writeRows(iw *indent.Writer, cell func(n, L int)) {
	iw.Indent(step)
	for n := 1; n <= t.MaxN; n++ {
		iw.Line("// n == %d", n)
		iw.Line("{")
		iw.Indent(step)
		for L := 0; L < n; L++ {
			iw.Line("// L == %d", L)
			cell(n, L)
		}
		iw.Dedent()
		iw.Line("}%s", separator(n-1, t.MaxN))
	}
	iw.Dedent()
}

// separator returns "," for every element but the last of count.
func separator(i, count int) string {
	if i == count-1 {
		return ""
	}

	return ","
}

// formatFloat renders v with the fewest digits that round-trip.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
