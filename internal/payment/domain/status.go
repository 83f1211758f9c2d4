package domain

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Mode selects how a session in processing resolves.
type Mode string

const (
	// ModeManual waits for the shopper to confirm and always settles.
	ModeManual Mode = "manual"
	// ModeAuto settles with a configurable chance of a simulated decline.
	ModeAuto Mode = "auto"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeManual:
		return ModeManual, nil
	case ModeAuto:
		return ModeAuto, nil
	}
	return "", fmt.Errorf("unknown payment mode %q", s)
}
