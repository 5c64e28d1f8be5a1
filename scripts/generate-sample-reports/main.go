// Command generate-sample-reports renders the sample URL set with the text
// and html renderers into an output directory. Useful when eyeballing
// renderer changes without wiring a full application.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/phishguard/guardkit"
	"github.com/phishguard/guardkit/pkg/report"
	"github.com/phishguard/guardkit/pkg/report/web"

	"github.com/phishguard/guardkit/examples/internal/exampleutil"
)

func main() {
	outDir := flag.String("out", "tmp/reports", "directory to write rendered reports into")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", *outDir, err)
	}

	htmlRenderer, err := web.New()
	if err != nil {
		log.Fatal(err)
	}
	engine, err := guardkit.New(guardkit.WithRenderer(htmlRenderer))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for i, rawURL := range exampleutil.SampleURLs() {
		rep := engine.AnalyzeURL(rawURL)

		for name, ext := range map[string]string{"text": "txt", "html": "html"} {
			out, err := engine.RenderReport(ctx, name, rep, report.Options{})
			if err != nil {
				log.Fatalf("render %s: %v", rawURL, err)
			}
			path := filepath.Join(*outDir, fmt.Sprintf("report-%02d.%s", i+1, ext))
			if err := os.WriteFile(path, out, 0o644); err != nil {
				log.Fatalf("write %s: %v", path, err)
			}
			fmt.Printf("wrote %s\n", path)
		}
	}
}
