package readfiles

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/sem1d/SEM1D"
)

// ReadGrid1D reads a whitespace separated table of (z, rho, mu) per global
// DOF, one DOF per line. Blank lines and lines starting with '#' are skipped.
// The file must contain exactly nGlob rows.
func ReadGrid1D(filename string, nGlob int) (z, rho, mu []float64, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return nil, nil, nil, &SEM1D.DataLoadError{Path: filename, Reason: "cannot open grid file", Err: err}
	}
	defer file.Close()

	z = make([]float64, 0, nGlob)
	rho = make([]float64, 0, nGlob)
	mu = make([]float64, 0, nGlob)
	scanner := bufio.NewScanner(file)
	var lineNo int
	for scanner.Scan() {
		lineNo++
		fields, skip := splitDataLine(scanner.Text())
		if skip {
			continue
		}
		if len(fields) != 3 {
			return nil, nil, nil, &SEM1D.DataLoadError{Path: filename,
				Reason: fmt.Sprintf("line %d: expected 3 columns (z, rho, mu), got %d", lineNo, len(fields))}
		}
		vals, errP := parseFloats(fields)
		if errP != nil {
			return nil, nil, nil, &SEM1D.DataLoadError{Path: filename,
				Reason: fmt.Sprintf("line %d: malformed number", lineNo), Err: errP}
		}
		z = append(z, vals[0])
		rho = append(rho, vals[1])
		mu = append(mu, vals[2])
	}
	if err = scanner.Err(); err != nil {
		return nil, nil, nil, &SEM1D.DataLoadError{Path: filename, Reason: "read failed", Err: err}
	}
	if len(z) != nGlob {
		return nil, nil, nil, &SEM1D.DataLoadError{Path: filename,
			Reason: fmt.Sprintf("expected %d rows, got %d", nGlob, len(z))}
	}
	return
}

// ReadTicks1D reads the nSpec+1 element boundary coordinates, one or more
// per line.
func ReadTicks1D(filename string, nSpec int) (ticks []float64, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return nil, &SEM1D.DataLoadError{Path: filename, Reason: "cannot open ticks file", Err: err}
	}
	defer file.Close()

	ticks = make([]float64, 0, nSpec+1)
	scanner := bufio.NewScanner(file)
	var lineNo int
	for scanner.Scan() {
		lineNo++
		fields, skip := splitDataLine(scanner.Text())
		if skip {
			continue
		}
		vals, errP := parseFloats(fields)
		if errP != nil {
			return nil, &SEM1D.DataLoadError{Path: filename,
				Reason: fmt.Sprintf("line %d: malformed number", lineNo), Err: errP}
		}
		ticks = append(ticks, vals...)
	}
	if err = scanner.Err(); err != nil {
		return nil, &SEM1D.DataLoadError{Path: filename, Reason: "read failed", Err: err}
	}
	if len(ticks) != nSpec+1 {
		return nil, &SEM1D.DataLoadError{Path: filename,
			Reason: fmt.Sprintf("expected %d ticks, got %d", nSpec+1, len(ticks))}
	}
	return
}

// ReadGridData loads both files for the file grid policy.
func ReadGridData(gridFile, ticksFile string, nGlob, nSpec int) (gd SEM1D.GridData, err error) {
	gd.Path = gridFile
	if gd.Z, gd.Rho, gd.Mu, err = ReadGrid1D(gridFile, nGlob); err != nil {
		return
	}
	gd.Ticks, err = ReadTicks1D(ticksFile, nSpec)
	return
}

func splitDataLine(line string) (fields []string, skip bool) {
	line = strings.TrimSpace(line)
	if len(line) == 0 || strings.HasPrefix(line, "#") {
		return nil, true
	}
	fields = strings.Fields(line)
	return
}

func parseFloats(fields []string) (vals []float64, err error) {
	vals = make([]float64, len(fields))
	for i, f := range fields {
		if vals[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, err
		}
	}
	return
}
