package packet

// Message is one typed command payload. Decode and Encode never return
// errors directly; failures stick to the Reader/Writer and are checked
// once at the dispatch/framing boundary.
type Message interface {
	ID() CommandID
	Decode(*Reader)
	Encode(*Writer)
}

// Decoder is implemented by sub-record types readable from a payload.
type Decoder interface {
	Decode(*Reader)
}

// Encoder is implemented by sub-record types writable to a payload.
type Encoder interface {
	Encode(*Writer)
}
