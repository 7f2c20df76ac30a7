// Package dataset builds the canned study/experiment/processing directory
// layout that pvDsetPath reports.
//
// The layout mirrors a ParaVision data tree:
//
//	<home>/data/amt_20160627_mrf5          STUDY
//	<home>/data/amt_20160627_mrf5/1        EXPNO
//	<home>/data/amt_20160627_mrf5/1/pdata/1 PROCNO
package dataset

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/pvcmd/core/invariant"
)

const (
	// StudyName is the directory name of the canned study.
	StudyName = "amt_20160627_mrf5"
	// ExpNo is the experiment number inside the study.
	ExpNo = 1
	// ProcNo is the processed-data number inside the experiment.
	ProcNo = 1

	baseSuffix = "/data/" + StudyName
)

// Level names one level of the dataset hierarchy.
type Level int

const (
	LevelStudy Level = iota + 1
	LevelExpno
	LevelProcno
)

var levelNames = map[string]Level{
	"STUDY":  LevelStudy,
	"EXPNO":  LevelExpno,
	"PROCNO": LevelProcno,
}

// ParseLevel maps a pvDsetPath argument to a Level. Matching is exact.
func ParseLevel(name string) (Level, bool) {
	l, ok := levelNames[name]
	return l, ok
}

func (l Level) String() string {
	switch l {
	case LevelStudy:
		return "STUDY"
	case LevelExpno:
		return "EXPNO"
	case LevelProcno:
		return "PROCNO"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Paths is the resolved path table. Procno always descends from Expno,
// which always descends from Study.
type Paths struct {
	Study  string
	Expno  string
	Procno string
}

// New derives the path table from a home directory.
func New(home string) Paths {
	study := home + baseSuffix
	expno := study + "/" + strconv.Itoa(ExpNo)
	p := Paths{
		Study:  study,
		Expno:  expno,
		Procno: expno + "/pdata/" + strconv.Itoa(ProcNo),
	}

	invariant.Postcondition(descendsFrom(p.Expno, p.Study),
		"EXPNO path %q must descend from %q", p.Expno, p.Study)
	invariant.Postcondition(descendsFrom(p.Procno, p.Expno),
		"PROCNO path %q must descend from %q", p.Procno, p.Expno)
	return p
}

// descendsFrom reports whether child is strictly below parent in
// slash-separated terms ("/a/b" is below "/a", "/ab" is not).
func descendsFrom(child, parent string) bool {
	return strings.HasPrefix(child, parent+"/") && len(child) > len(parent)+1
}

// Resolve returns the path for a level.
func (p Paths) Resolve(l Level) string {
	switch l {
	case LevelStudy:
		return p.Study
	case LevelExpno:
		return p.Expno
	case LevelProcno:
		return p.Procno
	default:
		panic("dataset: resolve of invalid level " + l.String())
	}
}
