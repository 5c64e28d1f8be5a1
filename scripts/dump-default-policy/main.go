// Command dump-default-policy writes the embedded analysis policy to a file
// so deployments can start an overlay from the shipped defaults.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phishguard/guardkit/pkg/policy"
)

func main() {
	out := flag.String("out", "policy.yaml", "file to write the default policy to")
	flag.Parse()

	if err := os.WriteFile(*out, policy.DefaultYAML(), 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("wrote %s\n", *out)
}
