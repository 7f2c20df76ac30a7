// Package params holds the canned ParaVision parameter table served by GetParam.
package params

import (
	"sort"

	"github.com/aledsdavies/pvcmd/core/dataset"
	"github.com/aledsdavies/pvcmd/core/invariant"
	"github.com/aledsdavies/pvcmd/core/suggest"
)

// Table is an immutable parameter table. The zero value is an empty table.
type Table struct {
	values map[string]Value
	names  []string // sorted
}

// NewTable builds a table from values. The map is copied, so later changes
// to it do not affect the table.
func NewTable(values map[string]Value) *Table {
	t := &Table{
		values: make(map[string]Value, len(values)),
		names:  make([]string, 0, len(values)),
	}
	for name, v := range values {
		invariant.NotEmpty(name, "parameter name")
		invariant.Precondition(v.Kind >= KindInt && v.Kind <= KindString,
			"parameter %s has invalid kind %d", name, uint8(v.Kind))
		t.values[name] = v
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)

	invariant.Postcondition(len(t.names) == len(t.values),
		"table has %d names for %d values", len(t.names), len(t.values))
	return t
}

// Default returns the table of acquisition metadata for the canned
// amt_20160627_mrf5 study.
func Default() *Table {
	return NewTable(map[string]Value{
		// Acquisition
		"RG":                 Int(10),
		"NA":                 Int(1),
		"NR":                 Int(1),
		"NI":                 Int(1),
		"BF1":                Float(600.522),
		"SFO1":               Float(600.5245),
		"O1":                 Float(2452.5),
		"SW_h":               Float(50000.0),
		"Method":             String("MRF_FISP"),
		"ACQ_method":         String("MRF_FISP"),
		"ACQ_protocol_name":  String("MRF_FISP_5"),
		"ACQ_institution":    String("Technische Universitaet Muenchen"),
		"ACQ_operator":       String("amt"),
		"ACQ_station":        String("AV600"),
		"ACQ_sw_version":     String("PV 5.1"),
		"PVM_Nucleus1":       String("1H"),
		"PVM_GradCalConst":   Float(2569.42),
		"PVM_RepetitionTime": Float(10.5),
		"PVM_EchoTime":       Float(3.2),
		"PVM_NRepetitions":   Int(1),

		// Dataset identity, consistent with the dataset path table
		"NAME":   String(dataset.StudyName),
		"EXPNO":  Int(dataset.ExpNo),
		"PROCNO": Int(dataset.ProcNo),
	})
}

// Lookup returns the value stored under name. An unknown name yields a
// *LookupError carrying the closest known name.
func (t *Table) Lookup(name string) (Value, error) {
	if v, ok := t.values[name]; ok {
		return v, nil
	}
	return Value{}, &LookupError{
		Name:       name,
		Suggestion: suggest.Closest(name, t.names),
	}
}
