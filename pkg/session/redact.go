package session

// Redacted returns a copy of the session that is safe to show the given
// viewer: while hands are hidden, other players' cards are masked, and the
// undealt deck order never leaves the server.
func (s *Session) Redacted(viewerUID string) *Session {
	clone := s.Clone()

	if clone.Status == StatusPlaying && !clone.Reveal {
		for uid, p := range clone.Players {
			if uid != viewerUID {
				p.Cards = nil
			}
		}
	}

	clone.Deck = nil
	return clone
}
