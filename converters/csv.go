package converters

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//JobsFromCSVFile reads a Batsim-style job table into a JobSet.  Required
//columns: jobID (or job_id), submission_time, execution_time,
//allocated_resources (interval-set form, e.g. "0-3 5").  Optional columns:
//workload_name (defaults to the file's base name), starting_time,
//waiting_time (each derivable from the other), proc_alloc (or
//requested_number_of_resources).  Resource bounds are inferred from the
//allocations.
func JobsFromCSVFile(filename string) (dsl.JobSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return dsl.JobSet{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return dsl.JobSet{}, err
	}
	if len(records) == 0 {
		return dsl.JobSet{}, fmt.Errorf("%s: empty job table", filename)
	}

	columns := indexColumns(records[0])
	defaultWorkload := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	jobs := dsl.Jobs{}
	for i, record := range records[1:] {
		job, err := jobFromRecord(record, columns, defaultWorkload)
		if err != nil {
			return dsl.JobSet{}, fmt.Errorf("%s row %d: %s", filename, i+2, err)
		}
		jobs = append(jobs, job)
	}

	return dsl.NewJobSet(defaultWorkload, jobs, dsl.Interval{}), nil
}

func jobFromRecord(record []string, columns map[string]int, defaultWorkload string) (dsl.Job, error) {
	job := dsl.Job{WorkloadName: defaultWorkload}

	var err error
	if job.JobID, err = stringColumn(record, columns, "jobID", "job_id"); err != nil {
		return dsl.Job{}, err
	}
	if name, err := stringColumn(record, columns, "workload_name"); err == nil && name != "" {
		job.WorkloadName = name
	}

	if job.SubmissionTime, err = floatColumn(record, columns, "submission_time"); err != nil {
		return dsl.Job{}, err
	}
	if job.ExecutionTime, err = floatColumn(record, columns, "execution_time"); err != nil {
		return dsl.Job{}, err
	}

	starting, startErr := floatColumn(record, columns, "starting_time")
	waiting, waitErr := floatColumn(record, columns, "waiting_time")
	switch {
	case startErr == nil && waitErr == nil:
		job.StartingTime, job.WaitingTime = starting, waiting
	case startErr == nil:
		job.StartingTime, job.WaitingTime = starting, starting-job.SubmissionTime
	case waitErr == nil:
		job.WaitingTime, job.StartingTime = waiting, job.SubmissionTime+waiting
	default:
		job.StartingTime = job.SubmissionTime
	}

	if alloc, err := stringColumn(record, columns, "allocated_resources"); err == nil {
		if job.AllocatedResources, err = dsl.ParseIntervalSet(alloc); err != nil {
			return dsl.Job{}, err
		}
	}

	if procs, err := floatColumn(record, columns, "proc_alloc", "requested_number_of_resources"); err == nil {
		job.ProcAlloc = int(procs)
	} else {
		job.ProcAlloc = job.AllocatedResources.Count()
	}

	return job, nil
}

//SeriesFromCSVFile reads a two-column (time, value) table into a named
//series.  The value column may be named load or value; the name of the
//series is the file's base name.
func SeriesFromCSVFile(filename string) (dsl.NamedSeries, error) {
	file, err := os.Open(filename)
	if err != nil {
		return dsl.NamedSeries{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return dsl.NamedSeries{}, err
	}
	if len(records) == 0 {
		return dsl.NamedSeries{}, fmt.Errorf("%s: empty series table", filename)
	}

	columns := indexColumns(records[0])
	series := dsl.NamedSeries{
		Name: strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
	}
	for i, record := range records[1:] {
		t, err := floatColumn(record, columns, "time")
		if err != nil {
			return dsl.NamedSeries{}, fmt.Errorf("%s row %d: %s", filename, i+2, err)
		}
		v, err := floatColumn(record, columns, "load", "value")
		if err != nil {
			return dsl.NamedSeries{}, fmt.Errorf("%s row %d: %s", filename, i+2, err)
		}
		series.Times = append(series.Times, t)
		series.Values = append(series.Values, v)
	}

	return series, nil
}

func indexColumns(header []string) map[string]int {
	columns := map[string]int{}
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

func stringColumn(record []string, columns map[string]int, names ...string) (string, error) {
	for _, name := range names {
		if i, ok := columns[name]; ok && i < len(record) {
			return strings.TrimSpace(record[i]), nil
		}
	}
	return "", fmt.Errorf("missing column %q", names[0])
}

func floatColumn(record []string, columns map[string]int, names ...string) (float64, error) {
	s, err := stringColumn(record, columns, names...)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %s", names[0], err)
	}
	return v, nil
}
