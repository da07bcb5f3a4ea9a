package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	J  bool `json:"j,omitempty"`  // Jump held
	JP bool `json:"jp,omitempty"` // JumpPressed
	JR bool `json:"jr,omitempty"` // JumpReleased
	P  bool `json:"p,omitempty"`  // Pause
}

// ReplayData contains all data needed to replay a run. Frames hold
// only the edges and holds of the jump key; combined with the seed
// they reproduce the run exactly.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
