// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// clientIPKey holds the visitor address the login limiter keyed on.
const clientIPKey contextKey = "client_ip"

// ProxyTrust lists the peers allowed to report the visitor's address in
// X-Forwarded-For or X-Real-IP. A nil *ProxyTrust trusts nobody, so the
// address is always the TCP peer.
type ProxyTrust struct {
	prefixes []netip.Prefix
}

// NewProxyTrust creates a ProxyTrust for the given networks. Returns nil
// when prefixes is empty.
func NewProxyTrust(prefixes []netip.Prefix) *ProxyTrust {
	if len(prefixes) == 0 {
		return nil
	}
	return &ProxyTrust{prefixes: prefixes}
}

// Trusts reports whether addr belongs to a trusted proxy.
func (p *ProxyTrust) Trusts(addr netip.Addr) bool {
	if p == nil || !addr.IsValid() {
		return false
	}
	addr = addr.Unmap()
	for _, pfx := range p.prefixes {
		if pfx.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP returns the visitor's address. Forwarding headers are read only
// when the TCP peer is trusted; X-Forwarded-For is walked from the right,
// skipping trusted hops, so entries a visitor prepends are ignored.
func (p *ProxyTrust) ClientIP(r *http.Request) string {
	peer := RemoteIP(r)
	peerAddr, err := netip.ParseAddr(peer)
	if err != nil || !p.Trusts(peerAddr) {
		return peer
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			addr, err := netip.ParseAddr(hop)
			if err != nil {
				break
			}
			if !p.Trusts(addr) || i == 0 {
				return addr.Unmap().String()
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if addr, err := netip.ParseAddr(xri); err == nil {
			return addr.Unmap().String()
		}
	}
	return peer
}

// RemoteIP returns the host part of r.RemoteAddr.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ClientIPFromCtx returns the visitor address recorded by the login rate
// limiter, or "" outside a limited route.
func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

func withClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}
