// Package icons: This file resolves the four character type codes of the
// Apple .icns format. Every chunk of an .icns container is tagged with such a
// code, and macOS picks the rendition for a given size by its code.
package icons

import (
	"fmt"
	"strings"
)

// TypeCode is the 4-byte ASCII tag of an .icns chunk. Codes shorter than
// four characters are space padded ("s32 ") and the padding is part of the
// code.
type TypeCode [4]byte

// String returns the code including any trailing space.
func (c TypeCode) String() string {
	return string(c[:])
}

// ParseTypeCode validates an explicit type code. The code must be exactly
// four printable ASCII bytes; nothing is trimmed or padded.
func ParseTypeCode(s string) (TypeCode, error) {
	var code TypeCode
	if len(s) != len(code) {
		return code, fmt.Errorf("type code %q must be exactly 4 bytes, got %d", s, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return code, fmt.Errorf("type code %q contains non printable byte 0x%02x", s, s[i])
		}
		code[i] = s[i]
	}
	return code, nil
}

// mustTypeCode is ParseTypeCode for the constants of this package.
func mustTypeCode(s string) TypeCode {
	code, err := ParseTypeCode(s)
	if err != nil {
		panic(err)
	}
	return code
}

// typeCodeRow is one logical icon size with its standard and @2x codes.
type typeCodeRow struct {
	label    string   // size token searched for in the label, e.g. "16x16"
	standard TypeCode // code of the 1x rendition
	retina   TypeCode // code of the @2x rendition
}

// typeCodeTable is searched in order, the first size token contained in a
// label wins.
var typeCodeTable = []typeCodeRow{
	{"16x16", mustTypeCode("is32"), mustTypeCode("s32 ")},
	{"32x32", mustTypeCode("il32"), mustTypeCode("l32 ")},
	{"128x128", mustTypeCode("ic08"), mustTypeCode("ic09")},
	{"256x256", mustTypeCode("ic10"), mustTypeCode("ic11")},
	{"512x512", mustTypeCode("ic12"), mustTypeCode("ic13")},
}

// retinaMarker flags the high resolution variant of a size.
const retinaMarker = "@2x"

// TypeCodeForLabel maps a size/variant label, typically an iconset file
// name such as "icon_32x32@2x.png", to its type code. The boolean is false
// when the label names no known size.
func TypeCodeForLabel(label string) (TypeCode, bool) {
	for _, row := range typeCodeTable {
		if !strings.Contains(label, row.label) {
			continue
		}
		if strings.Contains(label, retinaMarker) {
			return row.retina, true
		}
		return row.standard, true
	}
	return TypeCode{}, false
}
