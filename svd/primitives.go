package svd

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Integer is an SVD scalar value. The format accepts both hexadecimal
// (0x-prefixed) and decimal spellings; values are always written back as
// hexadecimal.
type Integer uint64

func (h *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v string
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}

	var value uint64
	var err error
	if strings.Contains(v, "0x") {
		value, err = strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 64)
	} else {
		value, err = strconv.ParseUint(v, 10, 64)
	}
	if err != nil {
		return err
	}
	*h = Integer(value)
	return nil
}

func (h Integer) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(fmt.Sprintf("0x%X", uint64(h)), start)
}
