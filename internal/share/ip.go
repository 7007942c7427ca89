package share

import (
	"log/slog"
	"net"
)

// OutgoingIP finds the address viewers on the LAN should use to reach this
// host.
func OutgoingIP() string {
	// UDP dial sends nothing; it only asks the kernel for a route.
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return firstIPv4().String()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// firstIPv4 is used on networks without a default route.
func firstIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		slog.Warn("list interfaces", "err", err)
		return net.IPv4(127, 0, 0, 1)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	slog.Warn("no LAN address found, share link uses loopback")
	return net.IPv4(127, 0, 0, 1)
}
