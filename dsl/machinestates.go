package dsl

//MachineStates counts, per sample time, how many machines sit in each power
//state.  All five state slices share the Times axis.
type MachineStates struct {
	Times        []float64
	Sleeping     []float64
	SwitchingOn  []float64
	SwitchingOff []float64
	Idle         []float64
	Computing    []float64
}

//StackOrder returns the state series in the fixed order they are stacked
//bottom-up on the machine-state chart.
func (m MachineStates) StackOrder() []NamedSeries {
	return []NamedSeries{
		{Name: "nb_sleeping", Series: Series{Times: m.Times, Values: m.Sleeping}},
		{Name: "nb_switching_on", Series: Series{Times: m.Times, Values: m.SwitchingOn}},
		{Name: "nb_switching_off", Series: Series{Times: m.Times, Values: m.SwitchingOff}},
		{Name: "nb_idle", Series: Series{Times: m.Times, Values: m.Idle}},
		{Name: "nb_computing", Series: Series{Times: m.Times, Values: m.Computing}},
	}
}
