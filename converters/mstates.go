package converters

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//MachineStatesFromCSVFile reads a Batsim machine-state table (columns: time,
//nb_sleeping, nb_switching_on, nb_switching_off, nb_idle, nb_computing) into
//a MachineStates sample set.
func MachineStatesFromCSVFile(filename string) (dsl.MachineStates, error) {
	file, err := os.Open(filename)
	if err != nil {
		return dsl.MachineStates{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return dsl.MachineStates{}, err
	}
	if len(records) == 0 {
		return dsl.MachineStates{}, fmt.Errorf("%s: empty machine-state table", filename)
	}
	columns := indexColumns(records[0])

	states := dsl.MachineStates{}
	targets := []struct {
		column string
		values *[]float64
	}{
		{"time", &states.Times},
		{"nb_sleeping", &states.Sleeping},
		{"nb_switching_on", &states.SwitchingOn},
		{"nb_switching_off", &states.SwitchingOff},
		{"nb_idle", &states.Idle},
		{"nb_computing", &states.Computing},
	}
	for i, record := range records[1:] {
		for _, target := range targets {
			v, err := floatColumn(record, columns, target.column)
			if err != nil {
				return dsl.MachineStates{}, fmt.Errorf("%s row %d: %s", filename, i+2, err)
			}
			*target.values = append(*target.values, v)
		}
	}

	return states, nil
}
