// Command poverty-graphs parses the configured government statistics CSVs
// and renders each series as plain and annotated line charts.
package main

import (
	"flag"
	"log"

	"github.com/banshee-data/poverty.report/internal/dataset"
	"github.com/banshee-data/poverty.report/internal/fsutil"
	"github.com/banshee-data/poverty.report/internal/report"
	"github.com/banshee-data/poverty.report/internal/version"
)

func main() {
	dataDir := flag.String("data", "raw-data", "directory containing the source CSV files")
	outDir := flag.String("out", "output", "directory to write charts into")
	html := flag.Bool("html", false, "also write interactive HTML charts")
	flag.Parse()

	log.Printf("poverty-graphs %s", version.String())

	runner := &report.Runner{
		FS:        fsutil.OSFileSystem{},
		InputDir:  *dataDir,
		OutputDir: *outDir,
		HTML:      *html,
	}
	if err := runner.Run(dataset.Defaults()); err != nil {
		log.Fatalf("poverty-graphs: %v", err)
	}
	log.Println("all requested charts created (where data was available)")
}
