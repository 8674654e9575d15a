package credential

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
)

// publicDialer resolves the target itself and only connects to public unicast
// addresses. The connection goes to the address that was checked, so a second
// DNS answer cannot redirect it.
type publicDialer struct {
	resolver *net.Resolver
	dialer   net.Dialer
}

func newPublicDialer() *publicDialer {
	return &publicDialer{resolver: net.DefaultResolver}
}

func (d *publicDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return nil, err
	}

	addrs, err := d.resolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no addresses for %s", host)
	}
	for _, addr := range addrs {
		if !isPublicAddr(addr) {
			return nil, fmt.Errorf("%w: %s resolves to %s", ErrForbiddenTarget, host, addr)
		}
	}

	var errs []error
	for _, addr := range addrs {
		conn, err := d.dialer.DialContext(ctx, network, net.JoinHostPort(addr.Unmap().String(), port))
		if err == nil {
			return conn, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func isPublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsValid() &&
		addr.IsGlobalUnicast() &&
		!addr.IsPrivate() &&
		!addr.IsLoopback() &&
		!addr.IsLinkLocalUnicast() &&
		!addr.IsUnspecified()
}
