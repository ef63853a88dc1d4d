package analyzer

// State is a node of the declaration automaton.
type State uint8

const (
	StateStart State = iota
	StateDefinition
	StateIdentifier
	StateType
	StateSimpleType
	StateArray
	StateRangesStart
	StateFirstRangeBeginValue
	StateFirstRangeDelimiter
	StateFirstRangeEndValue
	StateRangesDelimiter
	StateSecondRangeBeginValue
	StateSecondRangeDelimiter
	StateSecondRangeEndValue
	StateRangesEnd
	StateOf
	StateArrayType
	StateFinish
	StateError
)

var stateNames = [...]string{
	StateStart:                 "Start",
	StateDefinition:            "Definition",
	StateIdentifier:            "Identifier",
	StateType:                  "Type",
	StateSimpleType:            "SimpleType",
	StateArray:                 "Array",
	StateRangesStart:           "RangesStart",
	StateFirstRangeBeginValue:  "FirstRangeBeginValue",
	StateFirstRangeDelimiter:   "FirstRangeDelimiter",
	StateFirstRangeEndValue:    "FirstRangeEndValue",
	StateRangesDelimiter:       "RangesDelimiter",
	StateSecondRangeBeginValue: "SecondRangeBeginValue",
	StateSecondRangeDelimiter:  "SecondRangeDelimiter",
	StateSecondRangeEndValue:   "SecondRangeEndValue",
	StateRangesEnd:             "RangesEnd",
	StateOf:                    "Of",
	StateArrayType:             "ArrayType",
	StateFinish:                "Finish",
	StateError:                 "Error",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Terminal reports whether the automaton stops in s.
func (s State) Terminal() bool {
	return s == StateFinish || s == StateError
}
