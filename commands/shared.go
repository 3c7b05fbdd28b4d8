package commands

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var logger lager.Logger

func init() {
	logger = lager.NewLogger("evalys")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
}

//outputPath decides where a chart lands: the optional explicit argument if
//given, otherwise defaultName, both under outputDir.
func outputPath(outputDir string, args []string, position int, defaultName string) string {
	name := defaultName
	if len(args) > position {
		name = args[position]
	}
	return filepath.Join(outputDir, name)
}

//savePlot writes a single plot to file and logs the result.
func savePlot(p *plot.Plot, width, height float64, file string) error {
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, file); err != nil {
		return err
	}
	logger.Info("saved-chart", lager.Data{"file": file})
	return nil
}
