package protocol

// Session tracks one connection's phase across the handshake (spec.md §3
// "Per-connection record"). It never touches socket I/O; the runtime in
// internal/server owns reads and writes and drives Session from decoded packets.
type Session struct {
	State ConnectionState
}

// NewSession starts a connection in Handshake, per spec.md §3.
func NewSession() *Session {
	return &Session{State: Handshake}
}

// LookupState returns the state used to resolve a packet's registry entry.
// Transfer is treated identically to Login for packet dispatch (an open question
// spec.md §4.4 leaves to the implementation; SPEC_FULL.md resolves it this way
// since the source defines no distinct Transfer packet set).
func (s *Session) LookupState() ConnectionState {
	if s.State == Transfer {
		return Login
	}
	return s.State
}

// Advance applies a decoded packet's effect on the connection state, per the
// transition table in spec.md §4.4. Packets with no state effect return s.State
// unchanged.
func (s *Session) Advance(p ServerboundPacket) ConnectionState {
	switch pk := p.(type) {
	case *HandshakePacket:
		// spec.md §7: a next_state outside {Status, Login, Transfer} is a
		// handler-level protocol violation — ignored, no state change.
		switch pk.NextState {
		case Status, Login, Transfer:
			s.State = pk.NextState
		}
	case *LoginAcknowledgedPacket:
		s.State = Configuration
	case *AcknowledgeFinishConfigurationPacket:
		s.State = Play
	}
	return s.State
}
