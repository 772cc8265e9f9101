// registerdump loads a serialized register cache and prints every stored
// register with its decode metadata and rendered value.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/britkat1980/givenergy-modbus/internal/pkg/register"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/registercache"
)

func main() {
	file := flag.String("file", "registers.json", "serialized register cache to dump")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal(err)
	}

	cache, err := registercache.FromJSON(data)
	if err != nil {
		log.Fatal(err)
	}

	dump(cache)
}

func dump(cache *registercache.Cache) {
	snapshot := cache.Snapshot()
	ids := make([]register.Identity, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Bank != ids[j].Bank {
			return ids[i].Bank < ids[j].Bank
		}
		return ids[i].Offset < ids[j].Offset
	})

	var bank register.Bank
	for _, id := range ids {
		if id.Bank != bank {
			bank = id.Bank
			fmt.Printf("### %s %s\n", bank, "####################################################################")
		}
		raw := snapshot[id]
		spec, ok := register.Lookup(id)
		if !ok {
			fmt.Printf("%-8s %38s  %-20s |  %-8s %-6s 0x%04x  %5d\n",
				id, "(undefined)", "", "", "", raw, raw)
			continue
		}
		rendered := register.Render(spec.Kind, spec.Scaling, raw)
		fmt.Printf("%-8s %38s: %-20s |  %-8s %-6s 0x%04x  %5d\n",
			id, spec.Name, rendered, spec.Kind, spec.Scaling, raw, raw)
	}
}
