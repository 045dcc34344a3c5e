package net

import (
	"fmt"
	"net"
	"strings"

	"GeoBoard/internal/logging"
)

// ShareScheme prefixes share links handed to viewers.
const ShareScheme = "geoboard://"

// ShareLink builds the link a viewer passes on its command line.
func ShareLink(ip string, port int) string {
	return fmt.Sprintf("%s%s", ShareScheme, net.JoinHostPort(ip, fmt.Sprint(port)))
}

// IsShareLink reports whether s looks like a share link.
func IsShareLink(s string) bool {
	return strings.HasPrefix(s, ShareScheme)
}

// ParseShareLink extracts the host:port address from a share link.
func ParseShareLink(link string) (string, error) {
	if !IsShareLink(link) {
		return "", fmt.Errorf("not a share link: %q", link)
	}
	addr := strings.TrimSuffix(strings.TrimPrefix(link, ShareScheme), "/")
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", fmt.Errorf("bad share address %q: %w", addr, err)
	}
	return addr, nil
}

// GetOutgoingIP finds the preferred local IP address for the host to share.
// Without a default route it falls back to the first LAN address, then to
// loopback.
func GetOutgoingIP() string {
	return localIPv4().String()
}

func localIPv4() net.IP {
	// UDP dial sends no packets; it only asks the kernel for a route.
	if conn, err := net.Dial("udp", "8.8.8.8:80"); err == nil {
		defer conn.Close()
		if ip := conn.LocalAddr().(*net.UDPAddr).IP.To4(); ip != nil {
			return ip
		}
	}
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		logging.Logger().Warn("[NET] listing addresses failed", "err", err)
	}
	if ip := lanIPv4(addrs); ip != nil {
		return ip
	}
	logging.Logger().Warn("[NET] no LAN address, sharing on loopback")
	return net.IPv4(127, 0, 0, 1)
}

// lanIPv4 picks the first non-loopback IPv4 address from addrs.
func lanIPv4(addrs []net.Addr) net.IP {
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip := ipnet.IP.To4(); ip != nil {
			return ip
		}
	}
	return nil
}
