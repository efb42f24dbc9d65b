// Package fleet is the narrow boundary to the VPN fleet backend. The real
// backend (database, Docker, protocol servers) lives outside this repo; the
// UI consumes it through Service and never deeper.
package fleet

import (
	"context"
	"time"
)

// User is a VPN account.
type User struct {
	Name    string
	Email   string
	Active  bool
	QuotaMB int64
	UsedMB  int64
}

// Server is one protocol server in the fleet.
type Server struct {
	Name    string
	Proto   string // e.g. "wireguard", "shadowsocks"
	Region  string
	Online  bool
	LoadPct int
}

// BandwidthSnapshot is an aggregate traffic reading.
type BandwidthSnapshot struct {
	RxMBps    float64
	TxMBps    float64
	Peers     int
	Timestamp time.Time
}

// Summary aggregates fleet-wide counts for the dashboard.
type Summary struct {
	Users         int
	ActiveUsers   int
	Servers       int
	OnlineServers int
}

// Service is what the screens fetch from. Implementations must observe ctx:
// section timeouts and unmount cancellation arrive through it.
type Service interface {
	Summary(ctx context.Context) (Summary, error)
	ListUsers(ctx context.Context) ([]User, error)
	ListServers(ctx context.Context) ([]Server, error)
	Bandwidth(ctx context.Context) (BandwidthSnapshot, error)
}
