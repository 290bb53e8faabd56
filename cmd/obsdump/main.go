// obsdump converts a daily observations CSV export into the packed binary
// format read by the mmap mapper.
package main

import (
	"encoding/binary"
	"flag"
	"log"
	"os"

	"github.com/skycastdev/skycast/internal/data/mapper"
	"github.com/skycastdev/skycast/internal/weather"
)

func main() {
	csvPath := flag.String("csv", "", "observations CSV file")
	outPath := flag.String("out", "observations.bin", "output binary file")
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("-csv is required")
	}

	obs, err := weather.ReadCSV(*csvPath)
	if err != nil {
		log.Fatal(err)
	}

	binFile, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer func(binFile *os.File) {
		_ = binFile.Close()
	}(binFile)

	for _, o := range obs {
		if err := binary.Write(binFile, binary.LittleEndian, mapper.FromObservation(o)); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("wrote %d observations to %s", len(obs), *outPath)
}
