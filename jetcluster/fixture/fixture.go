// Package fixture loads and saves particle-input fixtures: flat lists
// of four-momenta used to drive reconstruction runs and benchmarks.
// It is deliberately input-only — a ClusterSequence itself is never
// serialised here, per spec.md's "persistence of the cluster sequence"
// non-goal.
package fixture

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/thcabral/fastjet/jetcluster/preprocess"
)

// recordSize is the on-disk width of one particle: four float64s.
const recordSize = 32

// Save writes particles to filename as a zstd-compressed stream of a
// uint32 count followed by fixed-width records, mirroring the
// teacher's SaveCompressed layout.
func Save(filename string, particles []preprocess.PxPyPzE) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	bufWriter := bufio.NewWriterSize(file, 1<<20)
	enc, err := zstd.NewWriter(bufWriter, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %v", err)
	}
	defer enc.Close()

	if err := binary.Write(enc, binary.LittleEndian, uint32(len(particles))); err != nil {
		return fmt.Errorf("failed to write count: %v", err)
	}
	for _, p := range particles {
		binary.Write(enc, binary.LittleEndian, p.Px)
		binary.Write(enc, binary.LittleEndian, p.Py)
		binary.Write(enc, binary.LittleEndian, p.Pz)
		binary.Write(enc, binary.LittleEndian, p.E)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close encoder: %v", err)
	}
	return bufWriter.Flush()
}

// Load reads a fixture written by Save.
func Load(filename string) ([]preprocess.PxPyPzE, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	dec, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer dec.Close()

	var count uint32
	if err := binary.Read(dec, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read count: %v", err)
	}

	particles := make([]preprocess.PxPyPzE, count)
	for i := range particles {
		if err := binary.Read(dec, binary.LittleEndian, &particles[i].Px); err != nil {
			return nil, fmt.Errorf("failed to read particle %d: %v", i, err)
		}
		binary.Read(dec, binary.LittleEndian, &particles[i].Py)
		binary.Read(dec, binary.LittleEndian, &particles[i].Pz)
		binary.Read(dec, binary.LittleEndian, &particles[i].E)
	}
	return particles, nil
}
