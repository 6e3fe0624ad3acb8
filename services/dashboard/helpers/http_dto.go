package helpers

// Request/Response DTOs
type SelectionRequest struct {
	Key string `json:"key" binding:"required"`
}

type OptionResponse struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type SelectionResponse struct {
	Key     string           `json:"key"`
	Options []OptionResponse `json:"options"`
}

type BannerResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	ShownAt   string `json:"shown_at"`
	ExpiresAt string `json:"expires_at"`
}

type SliceStatusResponse struct {
	Slice     string `json:"slice"`
	Loaded    bool   `json:"loaded"`
	Tick      uint64 `json:"tick,omitempty"`
	AppliedAt string `json:"applied_at,omitempty"`
}

type StatusResponse struct {
	Scheduler string                `json:"scheduler"`
	LastTick  uint64                `json:"last_tick"`
	Slices    []SliceStatusResponse `json:"slices"`
}
