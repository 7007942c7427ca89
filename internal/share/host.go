package share

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/mdns"
)

// Host serves a Hub on a TCP port and optionally advertises it over mDNS.
type Host struct {
	*Hub
	ln   net.Listener
	srv  *http.Server
	mdns *mdns.Server
}

// Listen starts sharing on port (0 picks a free one).
func Listen(port int, announce bool) (*Host, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("share: listen on %d: %w", port, err)
	}
	h := &Host{
		Hub: NewHub(),
		ln:  ln,
	}
	h.srv = &http.Server{Handler: h.Hub, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := h.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("share server stopped", "err", err)
		}
	}()
	if announce {
		if h.mdns, err = advertise(h.Port()); err != nil {
			slog.Warn("share not advertised", "err", err)
		}
	}
	slog.Info("sharing drawing", "port", h.Port(), "advertised", h.mdns != nil)
	return h, nil
}

func (h *Host) Port() int {
	return h.ln.Addr().(*net.TCPAddr).Port
}

// Link is the address viewers pass on the command line.
func (h *Host) Link() string {
	return fmt.Sprintf("%s%s:%d", Scheme, OutgoingIP(), h.Port())
}

func (h *Host) Close() error {
	if h.mdns != nil {
		if err := h.mdns.Shutdown(); err != nil {
			slog.Warn("mdns shutdown", "err", err)
		}
	}
	h.Hub.Close()
	return h.srv.Close()
}
