package net

import (
	"fmt"
	"net"
	"os"
	"time"

	"GeoBoard/internal/logging"

	"github.com/hashicorp/mdns"
)

const serviceType = "_geoboard._tcp"

// Advertise announces a host on port over mDNS. Shut the returned server
// down when the host exits.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"",
		"",
		port,
		[]net.IP{localIPv4()},
		[]string{"GeoBoard"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	logging.Logger().Info("[NET] advertising", "service", serviceType, "port", port)
	return server, nil
}

// Browse looks for a host for up to timeout and returns the address of
// the first one found.
func Browse(timeout time.Duration) (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make(chan string, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			select {
			case found <- net.JoinHostPort(e.AddrV4.String(), fmt.Sprint(e.Port)):
			default:
			}
		}
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return "", fmt.Errorf("mDNS query: %w", err)
	}

	select {
	case addr := <-found:
		logging.Logger().Info("[NET] found host", "addr", addr)
		return addr, nil
	default:
		return "", fmt.Errorf("no %s host found within %s", serviceType, timeout)
	}
}
