// kernelbench measures the throughput of the arithmetic kernels across a
// range of sizes and writes a CSV table plus an HTML report with one chart
// per kernel.
//
// Example:
//
//	go run ./cmd/kernelbench -min 8 -max 16 -runs 5 -out report
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/bits"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	frfft "github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/sync/errgroup"

	"github.com/ocelot-zk/garith/fft"
	"github.com/ocelot-zk/garith/internal/testutil"
	"github.com/ocelot-zk/garith/logger"
	"github.com/ocelot-zk/garith/msm"
)

type result struct {
	op       string
	n        int
	logN     uint
	strategy string
	millis   float64
}

func main() {
	minLog := flag.Int("min", 8, "smallest size to measure, as log2(n)")
	maxLog := flag.Int("max", 16, "largest size to measure, as log2(n)")
	runs := flag.Int("runs", 3, "measurements per size, the best one is kept")
	out := flag.String("out", "kernelbench", "output directory for the report")
	withMSM := flag.Bool("msm", true, "measure the multi-scalar multiplication kernel")
	withFFT := flag.Bool("fft", true, "measure the FFT kernel")
	flag.Parse()

	log := logger.Logger()
	if *minLog < 1 || *maxLog < *minLog {
		log.Fatal().Int("min", *minLog).Int("max", *maxLog).Msg("invalid size range")
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create output directory")
	}

	var results []result
	for logN := *minLog; logN <= *maxLog; logN++ {
		n := 1 << logN
		if *withFFT {
			results = append(results, benchFFT(n, uint(logN), *runs))
		}
		if *withMSM {
			results = append(results, benchMSM(n, uint(logN), *runs))
		}
	}

	csvPath := filepath.Join(*out, "kernelbench.csv")
	htmlPath := filepath.Join(*out, "kernelbench.html")
	var g errgroup.Group
	g.Go(func() error { return writeCSV(csvPath, results) })
	g.Go(func() error { return writeHTML(htmlPath, results) })
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("write report")
	}
	fmt.Println("CSV table:", csvPath)
	fmt.Println("HTML report:", htmlPath)
}

func benchFFT(n int, logN uint, runs int) result {
	base := testutil.Scalars(n, "kernelbench/fft")
	domain := frfft.NewDomain(uint64(n))
	work := make([]fr.Element, n)
	var best time.Duration
	for r := 0; r < runs; r++ {
		copy(work, base)
		start := time.Now()
		fft.FFT(fft.FrOps{}, work, domain.Generator, logN)
		if took := time.Since(start); r == 0 || took < best {
			best = took
		}
	}
	// mirrors the size cutoff inside the kernel
	strategy := "recursive"
	if logN <= uint(bits.Len(uint(runtime.NumCPU()))-1) {
		strategy = "iterative"
	}
	return result{op: "fft", n: n, logN: logN, strategy: strategy, millis: toMillis(best)}
}

func benchMSM(n int, logN uint, runs int) result {
	scalars := testutil.Scalars(n, "kernelbench/msm/scalars")
	points := testutil.Points(n, "kernelbench/msm/points")
	var best time.Duration
	for r := 0; r < runs; r++ {
		start := time.Now()
		_ = msm.MultiExp(scalars, points)
		if took := time.Since(start); r == 0 || took < best {
			best = took
		}
	}
	return result{op: "msm", n: n, logN: logN, strategy: "bucket", millis: toMillis(best)}
}

func toMillis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

func writeCSV(path string, results []result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"op", "n", "logN", "strategy", "ms"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			r.op,
			strconv.Itoa(r.n),
			strconv.Itoa(int(r.logN)),
			r.strategy,
			strconv.FormatFloat(r.millis, 'f', 3, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func chartTitle(op string) string {
	switch op {
	case "fft":
		return "FFT over the BN254 scalar field"
	case "msm":
		return "G1 multi-scalar multiplication"
	default:
		return op
	}
}

func newKernelChart(op string, rs []result) *charts.Line {
	labels := make([]string, 0, len(rs))
	items := make([]opts.LineData, 0, len(rs))
	for _, r := range rs {
		labels = append(labels, fmt.Sprintf("2^%d", r.logN))
		items = append(items, opts.LineData{Value: r.millis})
	}
	title := chartTitle(op)
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "best of runs, milliseconds"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)
	line.SetXAxis(labels).
		AddSeries("ms", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return line
}

func writeHTML(path string, results []result) error {
	byOp := make(map[string][]result)
	var order []string
	for _, r := range results {
		if _, ok := byOp[r.op]; !ok {
			order = append(order, r.op)
		}
		byOp[r.op] = append(byOp[r.op], r)
	}
	page := components.NewPage()
	for _, op := range order {
		page.AddCharts(newKernelChart(op, byOp[op]))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
