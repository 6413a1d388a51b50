package automata

// Version is the release of the engine and the fsa binary.
const Version = "0.3.0"
