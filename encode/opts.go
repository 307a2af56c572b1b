package encode

type EncodeOption func(*EncState)

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Header writes the XML declaration before the root element.
func Header(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

// DocType writes <!DOCTYPE root SYSTEM "sys"> before the root element.
func DocType(sys string) EncodeOption {
	return func(es *EncState) { es.docType = sys }
}

// EncodeWire writes the document on a single line.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
