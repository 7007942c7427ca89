package share

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_vectorboard._tcp"

func advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("advertise: hostname: %w", err)
	}
	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, []string{"VectorBoard"})
	if err != nil {
		return nil, fmt.Errorf("advertise: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("advertise: start mdns: %w", err)
	}
	return server, nil
}

// Discover lists the share links of boards advertised on the LAN.
func Discover(timeout time.Duration) ([]string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan []string)
	go func() {
		var links []string
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			links = append(links, fmt.Sprintf("%s%s:%d", Scheme, e.AddrV4, e.Port))
		}
		done <- links
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	links := <-done
	if err != nil {
		return links, fmt.Errorf("discover: %w", err)
	}
	return links, nil
}
