package convert

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"
)

// variant is one decoded VCF data line: a reference span [pos, pos+len(ref))
// replaced by ref plus zero or more alt alleles, each used by some set of
// 1-indexed sample path ids.
type variant struct {
	pos     int // 0-indexed offset into the reference sequence
	ref     string
	alts    []string
	usedBy  [][]uint32 // usedBy[0] = ref's users, usedBy[1+k] = alts[k]'s users
}

// VCFToEDS reads a single-record reference FASTA and a VCF variant file
// and produces EDS text plus matching source text: common runs between
// variants carry the universal source marker, and at each variant
// position every allele (reference and alternates) becomes an
// alternative whose source set is the 1-indexed sample columns that carry
// it. Alleles with no carrying sample are dropped (a source set must be
// non-empty); when no allele has a carrying sample, the reference allele
// alone is kept with the universal source. Overlapping or malformed variant
// records are skipped.
func VCFToEDS(fasta, vcf io.Reader) (edsText string, sourcesText string, err error) {
	refRecords, err := readFasta(fasta)
	if err != nil {
		return "", "", err
	}
	if len(refRecords) == 0 {
		return "", "", errNoRecords
	}
	ref := refRecords[0]

	variants, err := readVCF(vcf)
	if err != nil {
		return "", "", err
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i].pos < variants[j].pos })

	var eds strings.Builder
	var srcs strings.Builder
	var run strings.Builder
	flushRun := func() {
		if run.Len() > 0 {
			eds.WriteString("{")
			eds.WriteString(run.String())
			eds.WriteString("}")
			srcs.WriteString("{0}")
			run.Reset()
		}
	}

	cursor := 0
	lastEnd := -1
	for _, v := range variants {
		if v.pos < lastEnd {
			continue // overlapping variant: skip
		}
		if v.pos < cursor || v.pos+len(v.ref) > len(ref) {
			continue // out of range or malformed
		}
		if ref[v.pos:v.pos+len(v.ref)] != v.ref {
			continue // REF does not match the reference sequence at pos
		}

		run.WriteString(ref[cursor:v.pos])
		flushRun()

		alleles := append([]string{v.ref}, v.alts...)
		type kept struct {
			allele string
			users  []uint32
		}
		var keepList []kept
		for i, a := range alleles {
			if len(v.usedBy[i]) == 0 {
				continue
			}
			keepList = append(keepList, kept{allele: a, users: v.usedBy[i]})
		}
		if len(keepList) == 0 {
			keepList = append(keepList, kept{allele: v.ref, users: nil})
		}

		eds.WriteString("{")
		srcs.WriteString("{")
		for k, a := range keepList {
			if k > 0 {
				eds.WriteString(",")
				srcs.WriteString("}{")
			}
			eds.WriteString(a.allele)
			if len(a.users) == 0 {
				srcs.WriteString("0")
			} else {
				for ui, u := range a.users {
					if ui > 0 {
						srcs.WriteString(",")
					}
					srcs.WriteString(strconv.FormatUint(uint64(u), 10))
				}
			}
		}
		eds.WriteString("}")
		srcs.WriteString("}")

		cursor = v.pos + len(v.ref)
		lastEnd = cursor
	}
	run.WriteString(ref[cursor:])
	flushRun()

	return eds.String(), srcs.String(), nil
}

func readVCF(r io.Reader) ([]variant, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var variants []variant
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "##") {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 8 {
			continue // malformed line: skip rather than fail the whole conversion
		}
		posVal, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		ref := fields[3]
		alts := strings.Split(fields[4], ",")

		numAlleles := 1 + len(alts)
		usedBy := make([][]uint32, numAlleles)

		if len(fields) > 8 {
			formatKeys := strings.Split(fields[8], ":")
			gtIdx := -1
			for k, key := range formatKeys {
				if key == "GT" {
					gtIdx = k
					break
				}
			}
			if gtIdx >= 0 {
				for sampleIdx, sampleField := range fields[9:] {
					pathID := uint32(sampleIdx + 1)
					parts := strings.Split(sampleField, ":")
					if gtIdx >= len(parts) {
						continue
					}
					gt := parts[gtIdx]
					gt = strings.NewReplacer("|", "/").Replace(gt)
					for _, tok := range strings.Split(gt, "/") {
						alleleIdx, err := strconv.Atoi(tok)
						if err != nil || alleleIdx < 0 || alleleIdx >= numAlleles {
							continue
						}
						usedBy[alleleIdx] = appendUnique(usedBy[alleleIdx], pathID)
					}
				}
			}
		}

		variants = append(variants, variant{
			pos:    posVal - 1,
			ref:    ref,
			alts:   alts,
			usedBy: usedBy,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return variants, nil
}

func appendUnique(ids []uint32, id uint32) []uint32 {
	for _, x := range ids {
		if x == id {
			return ids
		}
	}
	return append(ids, id)
}
