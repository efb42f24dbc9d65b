package fleet

import (
	"context"
	"time"
)

// StaticService is a deterministic in-memory Service used by the binary
// until a real backend is wired in, and by tests. An optional latency delays
// every call (observing ctx), which exercises spinners and timeouts.
type StaticService struct {
	Users     []User
	Servers   []Server
	Snapshot  BandwidthSnapshot
	Latency   time.Duration
	FailWith  error // when set, every call fails after the latency
}

// NewStaticService returns a service populated with a small demo fleet.
func NewStaticService() *StaticService {
	return &StaticService{
		Users: []User{
			{Name: "ada", Email: "ada@example.net", Active: true, QuotaMB: 51200, UsedMB: 10240},
			{Name: "brin", Email: "brin@example.net", Active: true, QuotaMB: 51200, UsedMB: 48100},
			{Name: "cole", Email: "cole@example.net", Active: false, QuotaMB: 10240, UsedMB: 10240},
		},
		Servers: []Server{
			{Name: "wg-fra-1", Proto: "wireguard", Region: "eu-central", Online: true, LoadPct: 34},
			{Name: "wg-nyc-1", Proto: "wireguard", Region: "us-east", Online: true, LoadPct: 61},
			{Name: "ss-sgp-1", Proto: "shadowsocks", Region: "ap-southeast", Online: false, LoadPct: 0},
		},
		Snapshot: BandwidthSnapshot{RxMBps: 41.2, TxMBps: 38.7, Peers: 128},
	}
}

func (s *StaticService) wait(ctx context.Context) error {
	if s.Latency > 0 {
		select {
		case <-time.After(s.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.FailWith != nil {
		return s.FailWith
	}
	return ctx.Err()
}

// Summary implements Service.
func (s *StaticService) Summary(ctx context.Context) (Summary, error) {
	if err := s.wait(ctx); err != nil {
		return Summary{}, err
	}
	sum := Summary{Users: len(s.Users), Servers: len(s.Servers)}
	for _, u := range s.Users {
		if u.Active {
			sum.ActiveUsers++
		}
	}
	for _, srv := range s.Servers {
		if srv.Online {
			sum.OnlineServers++
		}
	}
	return sum, nil
}

// ListUsers implements Service.
func (s *StaticService) ListUsers(ctx context.Context) ([]User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]User, len(s.Users))
	copy(out, s.Users)
	return out, nil
}

// ListServers implements Service.
func (s *StaticService) ListServers(ctx context.Context) ([]Server, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]Server, len(s.Servers))
	copy(out, s.Servers)
	return out, nil
}

// Bandwidth implements Service.
func (s *StaticService) Bandwidth(ctx context.Context) (BandwidthSnapshot, error) {
	if err := s.wait(ctx); err != nil {
		return BandwidthSnapshot{}, err
	}
	snap := s.Snapshot
	snap.Timestamp = time.Now()
	return snap, nil
}
