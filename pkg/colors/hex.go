package colors

// nibbleToHex converts a nibble (0x0 - 0xF) into an upper case hex digit.
func nibbleToHex(nibble byte) byte {
	if nibble < 10 {
		return '0' + nibble
	}
	return 'A' + nibble - 10
}

// hexToNibble converts a hex digit of either case into a nibble.
func hexToNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// OctetToHex converts an octet (0x00 - 0xFF) into a two digit hex string ("00" - "FF").
func OctetToHex(octet uint8) string {
	return string([]byte{nibbleToHex(octet >> 4), nibbleToHex(octet & 0xF)})
}

// HexToOctet converts the two hex digits of s starting at offset into an octet.
func HexToOctet(s string, offset int) (uint8, bool) {
	if offset < 0 || offset+2 > len(s) {
		return 0, false
	}
	hi, ok := hexToNibble(s[offset])
	if !ok {
		return 0, false
	}
	lo, ok := hexToNibble(s[offset+1])
	if !ok {
		return 0, false
	}
	return hi<<4 | lo, true
}

// IsHex reports whether s is exactly "#RRGGBB".
func IsHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		if _, ok := hexToNibble(s[i]); !ok {
			return false
		}
	}
	return true
}
