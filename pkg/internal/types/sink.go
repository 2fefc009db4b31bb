package types

// Sink is the outbound write contract for rendered event records. The engine
// invokes Write exactly once per event with a complete, newline-terminated
// record; implementations must make each call atomic with respect to
// concurrent writers so that two records' bytes never interleave.
type Sink interface {
	Write(p []byte) error
	Close() error
}
