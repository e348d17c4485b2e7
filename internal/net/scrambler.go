package net

import "errors"

// Scrambler is the keyed XOR obfuscation applied to inbound frame
// bodies only; outbound traffic is never scrambled. Each payload byte
// is XORed with the key byte selected by its position (i mod 4), which
// makes Apply its own inverse. A zero key is the identity transform.
//
// This is obfuscation, not encryption: it keeps casual tools from
// reading the stream and nothing more.
type Scrambler struct {
	key uint32
}

// ErrKeyAlreadySet is returned when rekeying an already keyed
// scrambler. The key is negotiated exactly once, inside the
// authentication-success payload; changing it afterwards would
// desynchronize the cipher permanently, so it is refused outright.
var ErrKeyAlreadySet = errors.New("scrambler key already set")

// Key returns the current key (0 until authentication).
func (s *Scrambler) Key() uint32 {
	return s.key
}

// Rekey installs the session key. Allowed exactly once per session.
func (s *Scrambler) Rekey(key uint32) error {
	if s.key != 0 {
		return ErrKeyAlreadySet
	}
	s.key = key
	return nil
}

// Apply transforms data in place. Involution: applying twice with the
// same key restores the original bytes.
func (s *Scrambler) Apply(data []byte) {
	if s.key == 0 {
		return
	}
	for i := range data {
		data[i] ^= byte(s.key >> (8 * (i & 3)))
	}
}
