package convert

import "errors"

var (
	errUnequalLength  = errors.New("convert: alignment records have differing lengths")
	errNoRecords       = errors.New("convert: input contains no sequence records")
	errMalformedFasta  = errors.New("convert: malformed FASTA input")
	errMalformedVCF    = errors.New("convert: malformed VCF line")
)
