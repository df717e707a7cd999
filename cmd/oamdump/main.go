package main

import (
	"flag"
	"fmt"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/thelolagemann/agbsprite/internal/digest"
	"github.com/thelolagemann/agbsprite/internal/hw"
	"github.com/thelolagemann/agbsprite/internal/oam"
	"github.com/thelolagemann/agbsprite/internal/preview"
	"github.com/thelolagemann/agbsprite/internal/ram"
	"github.com/thelolagemann/agbsprite/internal/snapshot"
	"github.com/thelolagemann/agbsprite/internal/types"
	"github.com/thelolagemann/agbsprite/pkg/log"
	"github.com/thelolagemann/agbsprite/pkg/utils"
)

func main() {
	var logger = log.New()

	input := flag.String("in", "", "OAM dump (raw, .gz, .zip or .7z) or snapshot (.agbs) to decode")
	mapped := flag.String("map", "", "shared OAM file to read instead of -in")
	count := flag.Int("count", -1, "number of slots to decode, -1 for all")
	all := flag.Bool("all", false, "list hidden slots too")
	pngFile := flag.String("png", "", "write a layout preview to this file")
	scale := flag.Int("scale", 2, "preview scale factor")
	chartFile := flag.String("chart", "", "write a sprites per scanline chart to this file")
	saveFile := flag.String("save", "", "write the decoded slots as a snapshot (.agbs) to this file")
	serve := flag.String("serve", "", "listen on this address for remote commits and log their digests")
	flag.Parse()

	if *serve != "" {
		if err := runSink(*serve, logger); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	table, n, err := load(*input, *mapped)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if *count >= 0 && *count < n {
		n = *count
	}

	region := ram.NewRAM(types.OAMSize)
	buf := make([]byte, types.OAMSize)
	table.Encode(buf, types.Slots)
	if err := region.Store(0, buf); err != nil {
		logger.Fatal(err.Error())
	}
	sum, err := digest.Sum(region)
	if err != nil {
		logger.Fatal(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
	fmt.Fprintln(w, "slot\tmode\tshape\tsize\tx\ty\ttile\tpal\tprio\tbpp\t")
	for i := 0; i < n; i++ {
		e := table[i]
		if e.Hidden() && !*all {
			continue
		}
		bpp := 4
		if e.EightBitsPerPixel() {
			bpp = 8
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t\n", i, e.Mode(), e.Shape(), e.Dimensions(), e.X(), e.Y(), e.Tile(), e.Palette(), e.BGPriority(), bpp)
	}
	w.Flush()
	fmt.Printf("\n%d slots, digest %016x\n", n, sum)

	if *pngFile != "" {
		if err := writePreview(*pngFile, table, n, *scale); err != nil {
			logger.Fatal(err.Error())
		}
		logger.Infof("wrote preview to %s", *pngFile)
	}

	if *saveFile != "" {
		f, err := os.Create(*saveFile)
		if err != nil {
			logger.Fatal(err.Error())
		}
		if err := snapshot.Write(f, table, n); err != nil {
			logger.Fatal(err.Error())
		}
		if err := f.Close(); err != nil {
			logger.Fatal(err.Error())
		}
		logger.Infof("wrote snapshot of %d slots to %s", n, *saveFile)
	}

	if *chartFile != "" {
		f, err := os.Create(*chartFile)
		if err != nil {
			logger.Fatal(err.Error())
		}
		format := strings.TrimPrefix(filepath.Ext(*chartFile), ".")
		if err := preview.WriteChart(f, table, n, format); err != nil {
			logger.Fatal(err.Error())
		}
		if err := f.Close(); err != nil {
			logger.Fatal(err.Error())
		}
		logger.Infof("wrote scanline chart to %s", *chartFile)
	}
}

func load(input, mapped string) (*oam.Table, int, error) {
	switch {
	case mapped != "":
		m, err := hw.OpenMapped(mapped, types.OAMSize, nil)
		if err != nil {
			return nil, 0, err
		}
		defer m.Close()
		buf := make([]byte, m.Len())
		if err := m.Load(0, buf); err != nil {
			return nil, 0, err
		}
		t, n := oam.DecodeTable(buf)
		return t, n, nil
	case input == "":
		return nil, 0, fmt.Errorf("no input, use -in or -map")
	}

	data, err := utils.LoadFile(input)
	if err != nil {
		return nil, 0, err
	}
	if filepath.Ext(input) == ".agbs" {
		return snapshot.Decode(data)
	}
	t, n := oam.DecodeTable(data)
	return t, n, nil
}

func writePreview(name string, table *oam.Table, count, scale int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, preview.Scale(preview.Render(table, count), scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runSink(addr string, logger log.Logger) error {
	region := ram.NewRAM(types.OAMSize)
	chain := &digest.Chain{}
	var frame uint64
	sink := hw.NewSink(region, hw.SinkLogger(logger), hw.OnStore(func(offset int, p []byte) {
		frame++
		chain.Committed(frame, p)
		logger.Infof("frame %d: %d bytes at %d, chain %s", frame, len(p), offset, chain.Hash())
	}))

	logger.Infof("listening for commits on %s", addr)
	return http.ListenAndServe(addr, sink)
}
