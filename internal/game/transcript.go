package game

// Transcript is the serializable record of a session, suitable for logging
// once the game has ended.
type Transcript struct {
	SessionID string   `json:"sessionId"`
	Rules     Rules    `json:"rules"`
	Status    Status   `json:"status"`
	Turns     []Turn   `json:"turns"`
	Solution  Sequence `json:"solution,omitempty"` // set only after the session ends
}

func (s *Session) Transcript() Transcript {
	return Transcript{
		SessionID: s.ID,
		Rules:     s.Rules,
		Status:    s.status,
		Turns:     s.History(),
		Solution:  s.Reveal(),
	}
}
