package commands

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/converters"
	"github.com/vivian-hafener-lanl/Evalys-LANL/viz"
)

type MachineStates struct{}

func (m *MachineStates) Usage() string {
	return "mstates MSTATES_CSV <OPTIONAL-OUTPUT.png>"
}

func (m *MachineStates) Description() string {
	return `
Takes a machine-state table (Batsim mstates CSV) and renders the
machine counts as a stacked step-area chart: sleeping, switching on,
switching off, idle and computing machines over time.

e.g. mstates out_machine_states.csv
`
}

func (m *MachineStates) Command(outputDir string, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("First argument must be a machine-state CSV")
	}

	states, err := converters.MachineStatesFromCSVFile(args[0])
	if err != nil {
		return err
	}
	logger.Info("loaded-machine-states", lager.Data{"samples": len(states.Times)})

	p := plot.New()
	err = viz.PlotMachineStates(p, states, viz.MachineStatesConfig{Title: "Machine states"})
	if err != nil {
		return err
	}

	return savePlot(p, 10, 5, outputPath(outputDir, args, 1, "mstates.png"))
}

type GanttPStates struct{}

func (g *GanttPStates) Usage() string {
	return "gantt-pstates JOBS_CSV PSTATES_CSV <OPTIONAL-OUTPUT.png>"
}

func (g *GanttPStates) Description() string {
	return `
Takes a job table and a power-state change table and renders the gantt
chart with the power-state intervals overlaid: OFF in black, switching
ON in green, switching OFF in red.

e.g. gantt-pstates out_jobs.csv out_pstate_changes.csv
`
}

func (g *GanttPStates) Command(outputDir string, args ...string) error {
	if len(args) < 2 {
		return fmt.Errorf("First two arguments must be a job table CSV and a pstate change CSV")
	}

	jobset, err := converters.JobsFromCSVFile(args[0])
	if err != nil {
		return err
	}
	pstates, err := converters.PStatesFromCSVFile(args[1])
	if err != nil {
		return err
	}
	logger.Info("loaded-pstates", lager.Data{
		"pseudo-jobs": len(pstates.PseudoJobs),
		"resources":   pstates.ResBounds,
	})

	p := plot.New()
	err = viz.PlotGanttPStates(p, jobset, pstates, viz.GanttPStatesConfig{
		Title: jobset.Name,
		// Batsim convention: pstate 13 is the sleep state, 14 wakes the
		// machine up, 15 shuts it down.
		PStates: viz.PStateConfig{
			Off:       []int{13},
			SwitchOn:  []int{14},
			SwitchOff: []int{15},
		},
	})
	if err != nil {
		return err
	}

	return savePlot(p, 12, 6, outputPath(outputDir, args, 2, jobset.Name+"-pstates.png"))
}
