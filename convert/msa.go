package convert

import (
	"bufio"
	"io"
	"strings"
)

// MSAToEDS reads a FASTA-formatted multiple sequence alignment (one
// '>'-prefixed header per record, followed by equal-length sequence lines
// using '-' for gaps) and produces EDS text: columns where every record
// agrees become a single alternative; columns with disagreement become a
// degenerate symbol over the distinct characters observed, with '-'
// mapped to the empty alternative. Consecutive agreeing columns are
// merged into a single common run for compactness.
func MSAToEDS(r io.Reader) (string, error) {
	records, err := readFasta(r)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", errNoRecords
	}
	width := len(records[0])
	for _, rec := range records {
		if len(rec) != width {
			return "", errUnequalLength
		}
	}

	var out strings.Builder
	var run strings.Builder
	flushRun := func() {
		if run.Len() > 0 {
			out.WriteString("{")
			out.WriteString(run.String())
			out.WriteString("}")
			run.Reset()
		}
	}

	for col := 0; col < width; col++ {
		seen := make(map[byte]bool)
		var distinct []byte
		for _, rec := range records {
			c := rec[col]
			if !seen[c] {
				seen[c] = true
				distinct = append(distinct, c)
			}
		}
		if len(distinct) == 1 && distinct[0] != '-' {
			run.WriteByte(distinct[0])
			continue
		}
		flushRun()
		out.WriteString("{")
		for k, c := range distinct {
			if k > 0 {
				out.WriteString(",")
			}
			if c != '-' {
				out.WriteByte(c)
			}
		}
		out.WriteString("}")
	}
	flushRun()
	return out.String(), nil
}

func readFasta(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var records []string
	var cur strings.Builder
	started := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if started {
				records = append(records, cur.String())
				cur.Reset()
			}
			started = true
			continue
		}
		if !started {
			return nil, errMalformedFasta
		}
		cur.WriteString(line)
	}
	if started {
		records = append(records, cur.String())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
