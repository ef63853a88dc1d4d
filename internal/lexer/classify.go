package lexer

// intState is the state of the integer-literal automaton.
type intState uint8

const (
	intStart intState = iota
	intSignSeen
	intDigits
	intError
	intFinish
)

// IsInteger reports whether s is an optional '+' or '-' followed by one or
// more ASCII digits. The automaton rejects on the first disqualifying
// character and accepts end of input only from the digits state, so "", "+"
// and "-" are rejected.
func IsInteger(s string) bool {
	state := intStart
	runes := []rune(s)
	i := 0

	for state != intError && state != intFinish {
		if i == len(runes) {
			if state == intDigits {
				state = intFinish
			} else {
				state = intError
			}
			break
		}
		ch := runes[i]
		switch state {
		case intStart:
			switch {
			case isSign(ch):
				state = intSignSeen
			case isDec(ch):
				state = intDigits
			default:
				state = intError
			}
		case intSignSeen, intDigits:
			if isDec(ch) {
				state = intDigits
			} else {
				state = intError
			}
		}
		i++
	}

	return state == intFinish
}

// identState is the state of the identifier automaton.
type identState uint8

const (
	identStart identState = iota
	identChars
	identError
	identFinish
)

// IsIdentifier reports whether s is a letter followed by letters or ASCII digits.
func IsIdentifier(s string) bool {
	state := identStart
	runes := []rune(s)
	i := 0

	for state != identError && state != identFinish {
		if i == len(runes) {
			if state == identChars {
				state = identFinish
			} else {
				state = identError
			}
			break
		}
		ch := runes[i]
		switch state {
		case identStart:
			if isLetter(ch) {
				state = identChars
			} else {
				state = identError
			}
		case identChars:
			if isLetter(ch) || isDec(ch) {
				state = identChars
			} else {
				state = identError
			}
		}
		i++
	}

	return state == identFinish
}
