package models

import "time"

// Snapshot is an archived copy of a roster file
type Snapshot struct {
	ID        int       `json:"id"`
	Label     string    `json:"label"`
	Source    string    `json:"source"` // Path of the roster file the snapshot was taken from
	CreatedAt time.Time `json:"created_at"`
	Count     int       `json:"count"`
}

// GetID implements the GetID interface for quiet mode output
func (s *Snapshot) GetID() int {
	return s.ID
}

// SnapshotDetail is a snapshot together with its students in roster order
type SnapshotDetail struct {
	Snapshot
	Students []Student `json:"students"`
}
