package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/klauspost/cpuid/v2"
	"github.com/klauspost/crc32"

	"github.com/hupe1980/crcfold"
)

var allImpls = []crcfold.Impl{crcfold.Generic, crcfold.CRC32, crcfold.PCLMUL, crcfold.VPCLMUL}

// cpuCommand prints the detected CPU and the bound implementation.
type cpuCommand struct {
	name     string
	out      io.Writer
	selfTest *bool
}

func addCPUCommand(app *kingpin.Application, out io.Writer) *cpuCommand {
	cmd := &cpuCommand{out: out}
	c := app.Command("cpu", "Print CPU features and the selected CRC implementation.")
	cmd.name = c.FullCommand()
	cmd.selfTest = c.Flag("self-test", "Cross-check every usable implementation against a reference.").Bool()
	return cmd
}

func (cmd *cpuCommand) run() error {
	f := crcfold.DetectedFeatures()

	fmt.Fprintf(cmd.out, "cpu:       %s (%s)\n", cpuid.CPU.BrandName, cpuid.CPU.VendorString)
	fmt.Fprintf(cmd.out, "cores:     %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(cmd.out, "isa:       %s\n", strings.Join(cpuid.CPU.FeatureSet(), " "))
	fmt.Fprintf(cmd.out, "features:  %s\n", f)
	fmt.Fprintf(cmd.out, "impl:      %s\n", crcfold.ActiveImpl())

	var usable []string
	for _, impl := range allImpls {
		if !crcfold.Supports(impl, f) {
			continue
		}
		name := impl.String()
		if impl != crcfold.Generic && !crcfold.Accelerated(impl) {
			name += "(portable)"
		}
		usable = append(usable, name)
	}
	fmt.Fprintf(cmd.out, "usable:    %s\n", strings.Join(usable, " "))

	if !*cmd.selfTest {
		return nil
	}
	return selfTest(cmd.out, f)
}

var selfTestLengths = []int{0, 1, 15, 16, 63, 64, 65, 255, 256, 257, 4096 + 7, 1 << 20}

// selfTest compares every usable implementation with an independent
// CRC-32 implementation, both one-shot and through fold sessions.
func selfTest(out io.Writer, f crcfold.Features) error {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, selfTestLengths[len(selfTestLengths)-1])
	rng.Read(data)

	var failed []string
	for _, impl := range allImpls {
		if !crcfold.Supports(impl, f) {
			continue
		}
		engine, err := crcfold.New(crcfold.WithImpl(impl))
		if err != nil {
			return err
		}

		ok := true
		for _, n := range selfTestLengths {
			p := data[:n]
			want := crc32.ChecksumIEEE(p)
			if engine.Checksum(p) != want {
				ok = false
				break
			}

			var s crcfold.FoldState
			for rest := p; len(rest) > 0; {
				k := min(len(rest), 1+rng.Intn(300))
				engine.Fold(&s, rest[:k], 0)
				rest = rest[k:]
			}
			if engine.FoldFinal(&s) != want {
				ok = false
				break
			}
		}

		result := "ok"
		if !ok {
			result = "FAILED"
			failed = append(failed, impl.String())
		}
		fmt.Fprintf(out, "self-test: %-8s %s\n", impl, result)
	}

	if len(failed) > 0 {
		return fmt.Errorf("self-test failed for %s", strings.Join(failed, ", "))
	}
	return nil
}
