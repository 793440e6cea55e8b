package bignum

import "fmt"

// formatNumber writes an unsigned textual body with the sign, quotes and
// padding requested by the state.
// The body is rendered as is, so it may already contain a decimal point
// or a fraction bar.
func formatNumber(state fmt.State, verb rune, neg bool, body []byte) {

	// Arithmetic sign
	rsign := 0
	if neg || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(body) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && lquote == 0:
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case neg:
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, body...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	state.Write(buf)
}

// writeBadVerb reports an unsupported verb the way package fmt does.
func writeBadVerb(state fmt.State, verb rune, typ string, text []byte) {
	state.Write([]byte("%!"))
	state.Write([]byte(string(verb)))
	state.Write([]byte("(" + typ + "="))
	state.Write(text)
	state.Write([]byte(")"))
}
