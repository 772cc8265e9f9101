// plantserver exposes a plant over HTTP, pre-loaded from a serialized
// register snapshot, and optionally mirrors updates into MongoDB.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/britkat1980/givenergy-modbus/internal/pkg/database/mongodb"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/plant"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/registercache"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/webservice"
)

func main() {
	snapshot := flag.String("snapshot", "", "serialized register cache to pre-load")
	addr := flag.Uint("addr", plant.InverterAddr, "device address the snapshot belongs to")
	port := flag.String("port", "8080", "listen port")
	mongoConfig := flag.String("mongo", "", "mongodb handler config path (disabled when empty)")
	flag.Parse()

	log.Println("[Main] Building Plant")
	p, err := plant.New()
	if err != nil {
		log.Fatal(err)
	}

	if *snapshot != "" {
		data, err := os.ReadFile(*snapshot)
		if err != nil {
			log.Fatal(err)
		}
		cache, err := registercache.FromJSON(data)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("[Main] Loaded %d registers from %s", cache.Len(), *snapshot)
		p.LoadSnapshot(byte(*addr), cache)
	}

	if *mongoConfig != "" {
		log.Println("[Main] Building MongoDB Handler")
		handler, err := mongodb.New(*mongoConfig, p)
		if err != nil {
			log.Fatal(err)
		}
		go handler.Process()
	}

	log.Println("[Main] Starting Webservice")
	if err := webservice.New(p).Serve(*port); err != nil {
		log.Fatal(err)
	}
}
