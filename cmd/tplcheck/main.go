package main

import (
	"flag"
	"log"
	"os"

	"github.com/planclip/planclip/internal/template"
)

// tplcheck validates a template file and lists its rectangles.
func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Println("Uso: tplcheck PLANTILLA.json")
		os.Exit(2)
	}
	path := flag.Arg(0)

	tpl, err := template.Load(path)
	if err != nil {
		log.Fatalf("plantilla: FAIL (%v)", err)
	}
	log.Printf("plantilla: OK (%d rectángulos)", tpl.Len())
	for _, label := range tpl.Labels() {
		r, _ := tpl.Get(label)
		log.Printf("- %s %s", label, r)
	}
}
