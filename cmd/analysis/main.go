package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"zk-falcon/circuits"
	"zk-falcon/cs"
	"zk-falcon/cs/bn254"
	"zk-falcon/falcon"
	"zk-falcon/gadgets"
	"zk-falcon/prof"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type gadgetReport struct {
	Name        string `json:"name"`
	Constraints int    `json:"constraints"`
	Linear      int    `json:"linear"`
	Quadratic   int    `json:"quadratic"`
	Range       int    `json:"range"`
	Witness     int    `json:"witness"`
}

type circuitReport struct {
	Variant     string `json:"variant"`
	N           int    `json:"n"`
	Constraints int    `json:"constraints"`
	Linear      int    `json:"linear"`
	Quadratic   int    `json:"quadratic"`
	Range       int    `json:"range"`
	Witness     int    `json:"witness"`
	Public      int    `json:"public"`
	BuildUS     int64  `json:"build_us"`
	EvalUS      int64  `json:"eval_us"`
}

type report struct {
	GeneratedAt string           `json:"generated_at"`
	Gadgets     []gadgetReport   `json:"gadgets"`
	Circuits    []circuitReport  `json:"circuits"`
	TimingsUS   map[string]int64 `json:"timings_us"`
}

type variantBuilder struct {
	name  string
	build func(cs.System, *falcon.PublicKey, []byte, *falcon.Signature) ([]*big.Int, error)
}

var variants = []variantBuilder{
	{"schoolbook", circuits.Schoolbook},
	{"ntt", circuits.NTT},
	{"dualntt", circuits.DualNTT},
}

// --------------------------- gadget measurement ---------------------------

func witnessLin(sys *bn254.System, v uint64) cs.Lin {
	return cs.FromVar(sys.AllocWitness(new(big.Int).SetUint64(v)))
}

func measureGadget(name string, build func(sys *bn254.System) error) gadgetReport {
	sys := bn254.NewSystem()
	if err := build(sys); err != nil {
		log.Fatalf("gadget %s: %v", name, err)
	}
	lin, mul, rng := sys.Counts()
	rep := gadgetReport{
		Name:        name,
		Constraints: sys.NumConstraints(),
		Linear:      lin,
		Quadratic:   mul,
		Range:       rng,
		Witness:     sys.NumWitness(),
	}
	log.Printf("[analysis] gadget %-16s constraints=%d witness=%d", name, rep.Constraints, rep.Witness)
	return rep
}

func collectGadgetReports() []gadgetReport {
	par512, err := falcon.NewParams(512)
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	par1024, err := falcon.NewParams(1024)
	if err != nil {
		log.Fatalf("params: %v", err)
	}

	var out []gadgetReport
	out = append(out, measureGadget("modq", func(sys *bn254.System) error {
		_, err := gadgets.ModQ(sys, witnessLin(sys, 1<<27))
		return err
	}))
	out = append(out, measureGadget("mulmod", func(sys *bn254.System) error {
		_, err := gadgets.MulMod(sys, witnessLin(sys, 12288), witnessLin(sys, 12288))
		return err
	}))
	out = append(out, measureGadget("inner-product-8", func(sys *bn254.System) error {
		a := make([]cs.Lin, 8)
		b := make([]cs.Lin, 8)
		for i := range a {
			a[i] = witnessLin(sys, uint64(i+1))
			b[i] = witnessLin(sys, uint64(2*i+1))
		}
		_, err := gadgets.InnerProductMod(sys, a, b)
		return err
	}))
	out = append(out, measureGadget("decompose-14", func(sys *bn254.System) error {
		_, err := gadgets.Decompose(sys, witnessLin(sys, 12288), 14)
		return err
	}))
	out = append(out, measureGadget("less-than-q", func(sys *bn254.System) error {
		return gadgets.EnforceLessThanQ(sys, witnessLin(sys, 12288))
	}))
	out = append(out, measureGadget("less-than-6144", func(sys *bn254.System) error {
		_, err := gadgets.IsLessThan6144(sys, witnessLin(sys, 6143))
		return err
	}))
	out = append(out, measureGadget("less-than-1024", func(sys *bn254.System) error {
		return gadgets.EnforceLessThan1024(sys, witnessLin(sys, 1023))
	}))
	out = append(out, measureGadget("leq-765", func(sys *bn254.System) error {
		return gadgets.EnforceLeq765(sys, witnessLin(sys, 765))
	}))
	out = append(out, measureGadget("norm-bound-512", func(sys *bn254.System) error {
		return gadgets.EnforceLessThanNormBound(sys, witnessLin(sys, par512.L2Bound-1), par512)
	}))
	out = append(out, measureGadget("norm-bound-1024", func(sys *bn254.System) error {
		return gadgets.EnforceLessThanNormBound(sys, witnessLin(sys, par1024.L2Bound-1), par1024)
	}))
	for _, par := range []falcon.Params{par512, par1024} {
		out = append(out, measureGadget(fmt.Sprintf("ntt-%d", par.N), func(sys *bn254.System) error {
			gp, err := gadgets.NTTParams(par, sys.FieldModulus())
			if err != nil {
				return err
			}
			in := gadgets.AllocWitnessPoly(sys, falcon.NewPolynomial(par.N))
			_, err = gadgets.NTTCircuit(sys, in, gp)
			return err
		}))
		out = append(out, measureGadget(fmt.Sprintf("l2-norm-%d", par.N), func(sys *bn254.System) error {
			in := gadgets.AllocWitnessPoly(sys, falcon.NewPolynomial(par.N))
			_, err := gadgets.L2NormVar(sys, []gadgets.PolyVar{in})
			return err
		}))
	}
	return out
}

// --------------------------- circuit measurement ---------------------------

func collectCircuitReports(seed, msg string, full bool) []circuitReport {
	var out []circuitReport
	for _, n := range []int{512, 1024} {
		par, err := falcon.NewParams(n)
		if err != nil {
			log.Fatalf("params: %v", err)
		}
		pk, sig, err := falcon.GenerateTestVector([]byte(seed), []byte(msg), par)
		if err != nil {
			log.Fatalf("fixture n=%d: %v", n, err)
		}
		for _, v := range variants {
			if v.name == "schoolbook" && n == 1024 && !full {
				log.Printf("[analysis] skipping schoolbook n=1024 (rerun with -full)")
				continue
			}
			log.Printf("[analysis] building %s n=%d", v.name, n)
			sys := bn254.NewSystem()
			start := time.Now()
			publics, err := v.build(sys, pk, []byte(msg), sig)
			if err != nil {
				log.Fatalf("%s n=%d: build: %v", v.name, n, err)
			}
			buildDur := time.Since(start)
			prof.Track(start, fmt.Sprintf("build/%s/%d", v.name, n))

			start = time.Now()
			ok, err := sys.IsSatisfiable(publics)
			if err != nil {
				log.Fatalf("%s n=%d: evaluate: %v", v.name, n, err)
			}
			evalDur := time.Since(start)
			prof.Track(start, fmt.Sprintf("eval/%s/%d", v.name, n))
			if !ok {
				log.Fatalf("%s n=%d: constraint system unsatisfied", v.name, n)
			}

			lin, mul, rng := sys.Counts()
			out = append(out, circuitReport{
				Variant:     v.name,
				N:           n,
				Constraints: sys.NumConstraints(),
				Linear:      lin,
				Quadratic:   mul,
				Range:       rng,
				Witness:     sys.NumWitness(),
				Public:      sys.NumPublic(),
				BuildUS:     buildDur.Microseconds(),
				EvalUS:      evalDur.Microseconds(),
			})
		}
	}
	return out
}

// ------------------------- plotting: go-echarts HTML -------------------------

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

type barSeries struct {
	name string
	vals []int
}

func newCountChart(title, subtitle string, labels []string, series []barSeries) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels)
	for _, s := range series {
		bar.AddSeries(s.name, toBarItems(s.vals))
	}
	bar.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// ------------------------------ JSON and I/O ------------------------------

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ------------------------------- main routine -------------------------------

func main() {
	outDir := flag.String("out", "Constraint_Reports", "output directory for reports")
	seed := flag.String("seed", "zkfalcon analysis", "fixture seed")
	mstr := flag.String("m", "analysis message", "message string")
	full := flag.Bool("full", false, "include the schoolbook circuit at n=1024")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	gadgetRows := collectGadgetReports()
	circuitRows := collectCircuitReports(*seed, *mstr, *full)

	timings := make(map[string]int64)
	for _, e := range prof.SnapshotAndReset() {
		timings[e.Label] = e.Dur.Microseconds()
	}

	rep := report{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Gadgets:     gadgetRows,
		Circuits:    circuitRows,
		TimingsUS:   timings,
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("constraint_counts_%s.json", ts))
	if err := saveJSON(jsonPath, rep); err != nil {
		log.Printf("warn: save report: %v", err)
	}

	page := components.NewPage()

	gadgetLabels := make([]string, len(gadgetRows))
	gadgetCounts := make([]int, len(gadgetRows))
	for i, g := range gadgetRows {
		gadgetLabels[i] = g.Name
		gadgetCounts[i] = g.Constraints
	}
	page.AddCharts(newCountChart(
		"constraints per gadget",
		fmt.Sprintf("gadgets=%d", len(gadgetRows)),
		gadgetLabels,
		[]barSeries{{"constraints", gadgetCounts}},
	))

	circuitLabels := make([]string, len(circuitRows))
	circuitCounts := make([]int, len(circuitRows))
	circuitWitness := make([]int, len(circuitRows))
	for i, c := range circuitRows {
		circuitLabels[i] = fmt.Sprintf("%s/%d", c.Variant, c.N)
		circuitCounts[i] = c.Constraints
		circuitWitness[i] = c.Witness
	}
	page.AddCharts(newCountChart(
		"constraints per circuit",
		fmt.Sprintf("variants=%d", len(circuitRows)),
		circuitLabels,
		[]barSeries{{"constraints", circuitCounts}, {"witness", circuitWitness}},
	))

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("constraint_charts_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Charts page:", htmlPath)
	fmt.Println("Report JSON:", jsonPath)
}
