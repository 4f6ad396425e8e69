package client

import "time"

// Client is an organisation that owns projects.
type Client struct {
	ID       int      `json:"id" bson:"id" yaml:"id"`
	Name     string   `json:"name" bson:"name" yaml:"name"`
	Settings Settings `json:"settings" bson:"settings" yaml:"settings"`
}

// Settings holds per-client knobs read by the code scanner.
type Settings struct {
	// CodeScanInterval is the delay between scans, in milliseconds.
	CodeScanInterval int64 `json:"code_scan_interval" bson:"code_scan_interval" yaml:"code_scan_interval"`
}

// Interval returns CodeScanInterval as a duration.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.CodeScanInterval) * time.Millisecond
}
